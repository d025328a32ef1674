package tomlex

import (
	"regexp"
	"strconv"
	"strings"
)

// dateLike matches the leading shape of TOML date and date-time literals.
var dateLike = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// Parse tokenizes and parses raw configuration text into a table. The file
// name is used in error positions only and may be empty. Any grammar
// violation aborts parsing; no partial table is returned.
func Parse(input, file string) (*Table, error) {
	tokens, err := NewLexer(input, file).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, root: NewTable(), declared: make(map[string]bool)}
	p.current = p.root
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.root, nil
}

// parser consumes a token stream with one token of lookahead and fills the
// root table. Table headers switch the scope all following assignments land
// in.
type parser struct {
	tokens   []Token
	pos      int
	root     *Table
	current  *Table
	declared map[string]bool
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parse() error {
	for {
		switch tok := p.peek(); tok.Type {
		case TokenEOF:
			return nil
		case TokenNewline:
			p.next()
		case TokenLBracket:
			if err := p.parseHeader(); err != nil {
				return err
			}
		default:
			if err := p.parseAssignment(); err != nil {
				return err
			}
		}
	}
}

// parseHeader handles a [name] or [parent.child] table header, creating
// intermediate tables as needed and switching the current scope.
func (p *parser) parseHeader() error {
	open := p.next() // [

	name := p.next()
	if name.Type != TokenBare {
		return NewParseErrorf(name.Pos, "expected table name after %q", "[")
	}
	if close := p.next(); close.Type != TokenRBracket {
		return NewParseErrorf(close.Pos, "expected %q to close table header", "]")
	}
	if err := p.expectLineEnd(); err != nil {
		return err
	}

	path := strings.Split(name.Text, ".")
	for _, part := range path {
		if part == "" {
			return NewParseError(name.Pos, "empty table name")
		}
	}
	joined := strings.Join(path, ".")
	if p.declared[joined] {
		return NewParseErrorf(open.Pos, "table %q declared twice", joined)
	}
	p.declared[joined] = true

	table := p.root
	for _, part := range path {
		v, ok := table.Get(part)
		if !ok {
			child := NewTable()
			table.Set(part, TableValue(child))
			table = child
			continue
		}
		if v.Kind() != KindTable {
			return NewParseErrorf(name.Pos, "key %q is already a %s, not a table", part, v.Kind())
		}
		table = v.Table()
	}
	p.current = table
	return nil
}

// parseAssignment handles one key = value line in the current scope.
func (p *parser) parseAssignment() error {
	key := p.next()
	switch key.Type {
	case TokenBare:
		// ok
	case TokenEquals:
		return NewParseError(key.Pos, "empty key")
	case TokenString:
		return NewParseError(key.Pos, "unsupported construct: quoted keys are not supported")
	default:
		return NewParseErrorf(key.Pos, "expected key, found %s", key.Type)
	}
	if strings.Contains(key.Text, ".") {
		return NewParseError(key.Pos, "unsupported construct: dotted keys are not supported")
	}

	if eq := p.next(); eq.Type != TokenEquals {
		return NewParseErrorf(eq.Pos, "expected %q after key %q", "=", key.Text)
	}

	value, err := p.parseValue()
	if err != nil {
		return err
	}
	if err := p.expectLineEnd(); err != nil {
		return err
	}

	if !p.current.Set(key.Text, value) {
		return NewParseErrorf(key.Pos, "duplicate key %q", key.Text)
	}
	return nil
}

// parseValue dispatches on the next token: quoted string, numeric literal,
// or array of scalars. Everything else the full grammar would accept here
// is an explicit unsupported-construct error.
func (p *parser) parseValue() (Value, error) {
	switch tok := p.next(); tok.Type {
	case TokenString:
		return StringValue(tok.Text), nil
	case TokenBare:
		return p.parseScalar(tok)
	case TokenLBracket:
		return p.parseArray()
	case TokenLBrace:
		return Value{}, NewParseError(tok.Pos, "unsupported construct: inline tables are not supported")
	case TokenNewline, TokenEOF:
		return Value{}, NewParseError(tok.Pos, "missing value")
	default:
		return Value{}, NewParseErrorf(tok.Pos, "invalid primitive: unexpected %s", tok.Type)
	}
}

// parseScalar converts a bare run at value position into a number.
func (p *parser) parseScalar(tok Token) (Value, error) {
	switch tok.Text {
	case "true", "false":
		return Value{}, NewParseError(tok.Pos, "unsupported construct: boolean values are not supported")
	}
	if dateLike.MatchString(tok.Text) || strings.Contains(tok.Text, ":") {
		return Value{}, NewParseError(tok.Pos, "unsupported construct: date values are not supported")
	}

	// Underscore digit separators are stripped before conversion.
	lit := strings.ReplaceAll(tok.Text, "_", "")
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return IntegerValue(n), nil
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return FloatValue(f), nil
	}
	return Value{}, NewParseErrorf(tok.Pos, "invalid numeric literal %q", tok.Text)
}

// parseArray handles [elem, elem, ...] with scalar elements. Line breaks
// and a trailing comma are permitted inside the brackets.
func (p *parser) parseArray() (Value, error) {
	var elems []Value
	for {
		p.skipNewlines()
		tok := p.peek()
		if tok.Type == TokenRBracket {
			p.next()
			return ArrayValue(elems), nil
		}
		if tok.Type == TokenEOF {
			return Value{}, NewParseError(tok.Pos, "unterminated array")
		}
		if tok.Type == TokenLBracket {
			return Value{}, NewParseError(tok.Pos, "unsupported construct: nested arrays are not supported")
		}

		elem, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, elem)

		p.skipNewlines()
		switch sep := p.peek(); sep.Type {
		case TokenComma:
			p.next()
		case TokenRBracket:
			// closing bracket handled on the next pass
		case TokenEOF:
			return Value{}, NewParseError(sep.Pos, "unterminated array")
		default:
			return Value{}, NewParseErrorf(sep.Pos, "expected %q or %q in array, found %s", ",", "]", sep.Type)
		}
	}
}

func (p *parser) skipNewlines() {
	for p.peek().Type == TokenNewline {
		p.next()
	}
}

// expectLineEnd enforces that nothing but a line break or end of input
// follows a complete construct.
func (p *parser) expectLineEnd() error {
	switch tok := p.peek(); tok.Type {
	case TokenNewline:
		p.next()
		return nil
	case TokenEOF:
		return nil
	default:
		return NewParseErrorf(tok.Pos, "invalid primitive: unexpected %s before end of line", tok.Type)
	}
}
