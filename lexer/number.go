package lexer

import "github.com/relgqlx/relgraph/token"

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// consumeNumber consumes an Int or Float literal per spec §4.1: optional leading '-', a digit
// run with leading-zero integers rejected, an optional fractional part requiring >=1 digit, and
// an optional (possibly signed) exponent requiring >=1 digit. It sets l.token on success.
func (l *Lexer) consumeNumber() bool {
	if l.nextRune != '-' && !isDigit(l.nextRune) {
		return false
	}

	if l.nextRune == '-' && !isDigit(l.peek()) {
		return false
	}
	if l.nextRune == '-' {
		l.consumeRune()
	}

	if l.nextRune == '0' {
		l.consumeRune()
		if isDigit(l.nextRune) {
			l.errorf("leading zero integers are not allowed")
			for !l.isDone() && isDigit(l.nextRune) {
				l.consumeRune()
			}
		}
	} else {
		for !l.isDone() && isDigit(l.nextRune) {
			l.consumeRune()
		}
	}

	isFloat := false

	if l.nextRune == '.' {
		if !isDigit(l.peek()) {
			l.errorf("expected digit after decimal point")
		} else {
			isFloat = true
			l.consumeRune()
			for !l.isDone() && isDigit(l.nextRune) {
				l.consumeRune()
			}
		}
	}

	if l.nextRune == 'e' || l.nextRune == 'E' {
		isFloat = true
		l.consumeRune()
		if l.nextRune == '+' || l.nextRune == '-' {
			l.consumeRune()
		}
		if !isDigit(l.nextRune) {
			l.errorf("expected digit in exponent")
		}
		for !l.isDone() && isDigit(l.nextRune) {
			l.consumeRune()
		}
	}

	if isFloat {
		l.token = token.FLOAT_VALUE
	} else {
		l.token = token.INT_VALUE
	}
	return true
}
