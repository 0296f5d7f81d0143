// Package parser turns a token stream into an ast.Document, per spec §4.2.
package parser

import (
	"fmt"

	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/lexer"
	"github.com/relgqlx/relgraph/token"
)

// Error is a syntax error. Location is populated only when the parser was run with
// lexer.PositionMode (see ParseDocument).
type Error struct {
	Message  string
	Location token.Position
}

func (err *Error) Error() string {
	return err.Message
}

// ParseDocument parses src into a Document. When trackPositions is false (the default, fast
// path), Error.Location and every AST node's Position() will be the zero value; callers that need
// locations (e.g. to report a syntax error to a client) should re-parse with trackPositions set,
// per spec §7's re-parse-on-failure policy.
func ParseDocument(src []byte, trackPositions bool) (doc *ast.Document, errs []*Error) {
	p := newParser(src, trackPositions)
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Error); ok {
				errs = p.errors
			} else {
				panic(r)
			}
		}
	}()
	return p.parseDocument(), p.errors
}

type parserToken struct {
	Token    token.Token
	Value    string
	Position token.Position
}

var eof = &parserToken{}

type parser struct {
	errors    []*Error
	tokens    []*parserToken
	recursion int
}

func newParser(src []byte, trackPositions bool) *parser {
	mode := lexer.Mode(0)
	if trackPositions {
		mode |= lexer.PositionMode
	}
	l := lexer.New(src, mode)
	var tokens []*parserToken
	for l.Scan() {
		tokens = append(tokens, &parserToken{
			Token:    l.Token(),
			Value:    l.StringValue(),
			Position: l.Position(),
		})
	}
	p := &parser{
		tokens: tokens,
	}
	for _, err := range l.Errors() {
		p.errors = append(p.errors, &Error{
			Message:  err.Message,
			Location: err.Location,
		})
	}
	return p
}

const maxRecursion = 1000

func (p *parser) enter() {
	p.recursion++
	if p.recursion > maxRecursion {
		panic(p.errorfAt(p.peek().Position, "maximum recursion depth exceeded"))
	}
}

func (p *parser) exit() {
	p.recursion--
}

func (p *parser) peek() *parserToken {
	if len(p.tokens) > 0 {
		return p.tokens[0]
	}
	return eof
}

func (p *parser) consumeToken() {
	if len(p.tokens) > 0 {
		p.tokens = p.tokens[1:]
	}
}

func (p *parser) errorfAt(pos token.Position, message string, args ...interface{}) *Error {
	err := &Error{
		Message:  fmt.Sprintf(message, args...),
		Location: pos,
	}
	p.errors = append(p.errors, err)
	return err
}

func (p *parser) errorf(message string, args ...interface{}) *Error {
	return p.errorfAt(p.peek().Position, message, args...)
}

func isPunctuator(t *parserToken, v string) bool {
	return t.Token == token.PUNCTUATOR && t.Value == v
}

func (p *parser) parseDocument() *ast.Document {
	p.enter()
	defer p.exit()

	ret := &ast.Document{}
	if p.peek() == eof {
		panic(p.errorf("expected at least one definition"))
	}
	for p.peek() != eof {
		ret.Definitions = append(ret.Definitions, p.parseDefinition())
	}
	return ret
}

func (p *parser) parseDefinition() ast.Definition {
	p.enter()
	defer p.exit()

	if t := p.peek(); t.Token == token.NAME && t.Value == "fragment" {
		return p.parseFragmentDefinition()
	}
	return p.parseOperationDefinition()
}

func (p *parser) parseFragmentDefinition() *ast.FragmentDefinition {
	p.enter()
	defer p.exit()

	if t := p.peek(); t.Token != token.NAME || t.Value != "fragment" {
		panic(p.errorf(`expected "fragment"`))
	}
	fragmentPos := p.peek().Position
	p.consumeToken()

	return &ast.FragmentDefinition{
		Fragment:      fragmentPos,
		Name:          p.parseName(),
		TypeCondition: p.parseTypeCondition(),
		Directives:    p.parseOptionalDirectives(),
		SelectionSet:  p.parseSelectionSet(),
	}
}

func (p *parser) parseOperationDefinition() *ast.OperationDefinition {
	p.enter()
	defer p.exit()

	ret := &ast.OperationDefinition{}
	if ss := p.parseOptionalSelectionSet(); ss != nil {
		ret.SelectionSet = ss
		return ret
	}

	t := p.peek()
	if t.Token != token.NAME {
		panic(p.errorf("expected operation type or selection set"))
	}
	opType := &ast.OperationType{Value: t.Value, ValuePosition: t.Position}
	if !opType.IsValid() {
		panic(p.errorf("expected operation type"))
	}
	ret.OperationType = opType
	p.consumeToken()

	if t := p.peek(); t.Token == token.NAME {
		ret.Name = p.parseName()
	}

	ret.Directives = p.parseOptionalDirectives()
	ret.SelectionSet = p.parseSelectionSet()
	return ret
}

func (p *parser) parseOptionalSelectionSet() *ast.SelectionSet {
	p.enter()
	defer p.exit()

	if isPunctuator(p.peek(), "{") {
		return p.parseSelectionSet()
	}
	return nil
}

func (p *parser) parseSelectionSet() *ast.SelectionSet {
	p.enter()
	defer p.exit()

	if !isPunctuator(p.peek(), "{") {
		panic(p.errorf("expected selection set"))
	}
	opening := p.peek().Position
	p.consumeToken()

	ret := &ast.SelectionSet{Opening: opening}
	for {
		if isPunctuator(p.peek(), "}") {
			if len(ret.Selections) == 0 {
				panic(p.errorf("selection sets must not be empty"))
			}
			ret.Closing = p.peek().Position
			p.consumeToken()
			break
		}
		if p.peek() == eof {
			panic(p.errorf("expected selection or }"))
		}
		ret.Selections = append(ret.Selections, p.parseSelection())
	}
	return ret
}

func (p *parser) parseSelection() ast.Selection {
	p.enter()
	defer p.exit()

	if !isPunctuator(p.peek(), "...") {
		return p.parseField()
	}
	ellipsis := p.peek().Position
	p.consumeToken()

	if t := p.peek(); t.Token == token.NAME && t.Value != "on" {
		return &ast.FragmentSpread{
			FragmentName: p.parseName(),
			Directives:   p.parseOptionalDirectives(),
			Ellipsis:     ellipsis,
		}
	}

	ret := &ast.InlineFragment{Ellipsis: ellipsis}
	if t := p.peek(); t.Token == token.NAME {
		ret.TypeCondition = p.parseTypeCondition()
	}
	ret.Directives = p.parseOptionalDirectives()
	ret.SelectionSet = p.parseSelectionSet()
	return ret
}

func (p *parser) parseField() *ast.Field {
	p.enter()
	defer p.exit()

	ret := &ast.Field{}
	ret.Name = p.parseName()
	if isPunctuator(p.peek(), ":") {
		p.consumeToken()
		ret.Alias = ret.Name
		ret.Name = p.parseName()
	}
	ret.Arguments = p.parseOptionalArguments()
	ret.Directives = p.parseOptionalDirectives()
	ret.SelectionSet = p.parseOptionalSelectionSet()
	return ret
}

func (p *parser) parseTypeCondition() *ast.NamedType {
	p.enter()
	defer p.exit()

	if t := p.peek(); t.Token != token.NAME || t.Value != "on" {
		panic(p.errorf(`expected "on"`))
	}
	p.consumeToken()
	return p.parseNamedType()
}

func (p *parser) parseOptionalArguments() []*ast.Argument {
	p.enter()
	defer p.exit()

	var ret []*ast.Argument
	if isPunctuator(p.peek(), "(") {
		p.consumeToken()
		for {
			if isPunctuator(p.peek(), ")") {
				if len(ret) == 0 {
					panic(p.errorf("argument lists must not be empty"))
				}
				p.consumeToken()
				break
			}
			if p.peek() == eof {
				panic(p.errorf("expected argument or )"))
			}
			ret = append(ret, p.parseArgument())
		}
	}
	return ret
}

func (p *parser) parseArgument() *ast.Argument {
	p.enter()
	defer p.exit()

	ret := &ast.Argument{}
	ret.Name = p.parseName()
	if !isPunctuator(p.peek(), ":") {
		panic(p.errorf("expected colon"))
	}
	p.consumeToken()
	ret.Value = p.parseValue()
	return ret
}

func (p *parser) parseOptionalDirectives() []*ast.Directive {
	p.enter()
	defer p.exit()

	var ret []*ast.Directive
	for isPunctuator(p.peek(), "@") {
		at := p.peek().Position
		p.consumeToken()
		ret = append(ret, &ast.Directive{
			Name:      p.parseName(),
			Arguments: p.parseOptionalArguments(),
			At:        at,
		})
	}
	return ret
}

func (p *parser) parseNamedType() *ast.NamedType {
	p.enter()
	defer p.exit()

	return &ast.NamedType{Name: p.parseName()}
}

func (p *parser) parseName() *ast.Name {
	p.enter()
	defer p.exit()

	t := p.peek()
	if t.Token != token.NAME {
		panic(p.errorf("expected name"))
	}
	p.consumeToken()
	return &ast.Name{Name: t.Value, NamePosition: t.Position}
}

func (p *parser) parseValue() ast.Value {
	p.enter()
	defer p.exit()

	t := p.peek()
	switch t.Token {
	case token.INT_VALUE:
		p.consumeToken()
		return &ast.IntValue{Value: t.Value, Literal: t.Position}
	case token.STRING_VALUE:
		p.consumeToken()
		return &ast.StringValue{Value: t.Value, Literal: t.Position}
	case token.NAME:
		p.consumeToken()
		switch t.Value {
		case "true", "false":
			return &ast.BooleanValue{Value: t.Value == "true", Literal: t.Position}
		case "null":
			return &ast.NullValue{Literal: t.Position}
		default:
			return &ast.EnumValue{Value: t.Value, Literal: t.Position}
		}
	}
	panic(p.errorf("expected value"))
}
