// Package lexer turns source text into a stream of tokens, as described in spec §4.1. Position
// tracking is opt-in: the happy path never computes line/column information, and a second pass
// with PositionMode enabled is used only when error locations are actually needed (see
// parser.ParseDocument and relgraph's re-parse-on-failure policy).
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/relgqlx/relgraph/token"
)

// Error is a lexical error, with a Location populated only when the lexer was run in
// PositionMode.
type Error struct {
	Message  string
	Location token.Position
}

func (err *Error) Error() string {
	return err.Message
}

// Mode controls optional lexer behaviors.
type Mode uint

const (
	// ScanIgnored causes ignorable tokens (whitespace, commas, comments, BOM) to be returned by
	// Scan instead of being skipped.
	ScanIgnored Mode = 1 << iota
	// PositionMode causes the lexer to track line/column positions, at some cost to scan speed.
	PositionMode
)

// Lexer scans a byte slice into a sequence of tokens.
type Lexer struct {
	src    []byte
	mode   Mode
	offset int
	errors []*Error

	nextRune     rune
	nextRuneSize int

	line   int
	column int

	token            token.Token
	tokenOffset      int
	tokenLength      int
	tokenPosition    token.Position
	tokenStringValue string
}

// New creates a Lexer over src.
func New(src []byte, mode Mode) *Lexer {
	l := &Lexer{
		src:    src,
		mode:   mode,
		line:   1,
		column: 1,
	}
	l.readNextRune()
	return l
}

func (l *Lexer) Errors() []*Error {
	return l.errors
}

func (l *Lexer) errorf(message string, args ...interface{}) {
	l.errors = append(l.errors, &Error{
		Message:  fmt.Sprintf(message, args...),
		Location: l.currentPosition(),
	})
}

func (l *Lexer) currentPosition() token.Position {
	if l.mode&PositionMode == 0 {
		return token.Position{}
	}
	return token.Position{Line: l.line, Column: l.column}
}

func (l *Lexer) readNextRune() {
	if l.isDone() {
		l.nextRune = -1
		l.nextRuneSize = 0
	} else if r, size := utf8.DecodeRune(l.src[l.offset:]); r == utf8.RuneError && size != 0 {
		l.nextRune = r
		l.nextRuneSize = 1
	} else {
		l.nextRune = r
		l.nextRuneSize = size
	}
}

func (l *Lexer) peek() rune {
	r, _ := utf8.DecodeRune(l.src[l.offset+l.nextRuneSize:])
	return r
}

func (l *Lexer) consumeRune() rune {
	r := l.nextRune
	l.offset += l.nextRuneSize
	if l.mode&PositionMode != 0 {
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
	l.readNextRune()
	return r
}

func (l *Lexer) consumeName() bool {
	if r := l.nextRune; r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		l.consumeRune()
		for !l.isDone() {
			if r := l.nextRune; r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
				l.consumeRune()
			} else {
				break
			}
		}
		return true
	}
	return false
}

const maxErrors = 10

func (l *Lexer) isDone() bool {
	return len(l.errors) >= maxErrors || len(l.src) == l.offset
}

// Scan advances to the next significant token, returning false at end of input (or once too many
// errors have accumulated).
func (l *Lexer) Scan() bool {
	for {
		if l.isDone() {
			return false
		}

		l.token = token.INVALID
		l.tokenOffset = l.offset
		l.tokenPosition = l.currentPosition()

		switch l.nextRune {
		case '\t', ' ':
			l.consumeRune()
			l.token = token.WHITE_SPACE
		case '!', '$', '&', '(', ')', ':', '=', '@', '[', ']', '{', '|', '}':
			l.consumeRune()
			l.token = token.PUNCTUATOR
		case ',':
			l.consumeRune()
			l.token = token.COMMA
		case '\r', '\n':
			if l.consumeRune() == '\r' && l.nextRune == '\n' {
				l.consumeRune()
			}
			l.token = token.LINE_TERMINATOR
		case '#':
			for l.nextRune != '\r' && l.nextRune != '\n' && !l.isDone() {
				l.consumeRune()
			}
			l.token = token.COMMENT
		case '.':
			l.consumeRune()
			if l.nextRune == '.' && l.peek() == '.' {
				l.consumeRune()
				l.consumeRune()
				l.token = token.PUNCTUATOR
			} else {
				l.errorf("illegal character")
			}
		case '"':
			l.tokenStringValue = l.consumeStringValue()
			l.token = token.STRING_VALUE
		case utf8.RuneError:
			l.errorf("invalid utf-8 character")
			l.consumeRune()
		case 0xfeff:
			if l.offset == 0 {
				l.token = token.UNICODE_BOM
			} else {
				l.errorf("illegal byte order mark")
			}
			l.consumeRune()
		default:
			if l.consumeNumber() {
				// token set by consumeNumber
			} else if l.consumeName() {
				l.token = token.NAME
			} else {
				l.errorf("illegal character %#U", l.nextRune)
				l.consumeRune()
			}
		}

		if l.token == token.INVALID || (l.token.IsIgnored() && l.mode&ScanIgnored == 0) {
			continue
		}

		l.tokenLength = l.offset - l.tokenOffset
		return true
	}
}

// Token returns the kind of the most recently scanned token.
func (l *Lexer) Token() token.Token {
	return l.token
}

// Literal returns the raw source text of the most recently scanned token.
func (l *Lexer) Literal() string {
	return string(l.src[l.tokenOffset : l.tokenOffset+l.tokenLength])
}

// StringValue returns the unescaped value for STRING_VALUE tokens, or the raw literal otherwise.
func (l *Lexer) StringValue() string {
	if l.token == token.STRING_VALUE {
		return l.tokenStringValue
	}
	return l.Literal()
}

// Position returns the position of the most recently scanned token. It is only meaningful when
// the lexer was created with PositionMode.
func (l *Lexer) Position() token.Position {
	return l.tokenPosition
}
