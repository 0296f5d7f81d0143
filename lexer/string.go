package lexer

func isSourceCharacter(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' || (r >= 0x20 && r <= 0xffff)
}

func hexRuneValue(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return 10 + r - 'a'
	case r >= 'A' && r <= 'F':
		return 10 + r - 'A'
	default:
		return -1
	}
}

// consumeStringValue consumes a (non-block) string literal. Triple-quoted block strings are
// reserved by the grammar but not supported by this core (spec §4.1); encountering one is a lex
// error.
func (l *Lexer) consumeStringValue() string {
	l.consumeRune() // opening '"'

	if l.nextRune == '"' && l.peek() == '"' {
		l.errorf("block strings are not supported")
		l.consumeRune()
		l.consumeRune()
		return ""
	}

	var value []rune

	terminated := false
	isEscaped := false
	for !terminated && !l.isDone() {
		if isEscaped {
			switch r := l.consumeRune(); r {
			case '"', '\\', '/':
				value = append(value, r)
			case 'b':
				value = append(value, '\b')
			case 'f':
				value = append(value, '\f')
			case 'n':
				value = append(value, '\n')
			case 'r':
				value = append(value, '\r')
			case 't':
				value = append(value, '\t')
			case 'u':
				var code rune
				ok := true
				for i := 0; i < 4; i++ {
					if v := hexRuneValue(l.nextRune); v < 0 {
						l.errorf("illegal unicode escape sequence")
						ok = false
						break
					} else {
						code = (code << 4) | v
						l.consumeRune()
					}
				}
				if ok {
					value = append(value, code)
				}
			default:
				l.errorf("illegal escape sequence")
			}
			isEscaped = false
			continue
		}

		switch {
		case l.nextRune == '\n' || l.nextRune == '\r':
			l.errorf("unterminated string")
			terminated = true
		case l.nextRune == '\\':
			l.consumeRune()
			isEscaped = true
		case l.nextRune == '"':
			l.consumeRune()
			terminated = true
		case !isSourceCharacter(l.nextRune):
			l.errorf("illegal character %#U in string", l.nextRune)
			l.consumeRune()
		default:
			value = append(value, l.nextRune)
			l.consumeRune()
		}
	}

	if !terminated {
		l.errorf("unterminated string")
	}

	return string(value)
}
