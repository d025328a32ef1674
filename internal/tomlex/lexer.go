package tomlex

import "strings"

// TokenType identifies the type of token.
type TokenType int

// TokenType constants for configuration tokens.
const (
	TokenBare     TokenType = iota // bare run: key, number, or unquoted word
	TokenString                    // quoted string (contents, quotes removed)
	TokenEquals                    // =
	TokenLBracket                  // [
	TokenRBracket                  // ]
	TokenLBrace                    // {
	TokenComma                     // ,
	TokenNewline                   // \n
	TokenEOF                       // end of input
)

func (t TokenType) String() string {
	switch t {
	case TokenBare:
		return "BARE"
	case TokenString:
		return "STRING"
	case TokenEquals:
		return "EQUALS"
	case TokenLBracket:
		return "LBRACKET"
	case TokenRBracket:
		return "RBRACKET"
	case TokenLBrace:
		return "LBRACE"
	case TokenComma:
		return "COMMA"
	case TokenNewline:
		return "NEWLINE"
	case TokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token.
type Token struct {
	Type TokenType
	Text string
	Pos  Position
}

// bareChars are the characters a bare run may contain beyond letters and
// digits. The dot and sign characters keep numeric literals in one token;
// the colon lets date-like input surface as a single bad literal instead of
// scattered garbage.
const bareChars = "_-+.:"

// Lexer tokenizes raw configuration text.
type Lexer struct {
	input string
	file  string
	pos   int
	line  int
	col   int
}

// NewLexer creates a lexer over input. The file name is used in error
// positions only and may be empty.
func NewLexer(input, file string) *Lexer {
	return &Lexer{input: input, file: file, line: 1, col: 1}
}

// Tokenize converts the whole input into a token slice ending in TokenEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) position() Position {
	return Position{File: l.file, Line: l.line, Column: l.col}
}

// advance moves past the current byte, maintaining line/column counters.
func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) nextToken() (Token, error) {
	l.skipSpace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.position()}, nil
	}

	pos := l.position()
	switch c := l.input[l.pos]; c {
	case '\n':
		l.advance()
		return Token{Type: TokenNewline, Pos: pos}, nil
	case '#':
		l.skipComment()
		return l.nextToken()
	case '=':
		l.advance()
		return Token{Type: TokenEquals, Pos: pos}, nil
	case '[':
		l.advance()
		return Token{Type: TokenLBracket, Pos: pos}, nil
	case ']':
		l.advance()
		return Token{Type: TokenRBracket, Pos: pos}, nil
	case '{':
		l.advance()
		return Token{Type: TokenLBrace, Pos: pos}, nil
	case ',':
		l.advance()
		return Token{Type: TokenComma, Pos: pos}, nil
	case '"', '\'':
		return l.scanString()
	default:
		if isBareChar(c) {
			return l.scanBare(), nil
		}
		return Token{}, NewLexErrorf(pos, "unexpected character %q", string(c))
	}
}

// skipSpace skips horizontal whitespace. Newlines are significant and are
// emitted as tokens.
func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c != ' ' && c != '\t' && c != '\r' {
			return
		}
		l.advance()
	}
}

// skipComment skips from a # marker to the end of the line, leaving the
// newline in place.
func (l *Lexer) skipComment() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.advance()
	}
}

// scanString copies characters verbatim until the matching quote. There is
// no escape processing: backslash sequences pass through literally. Strings
// are single-line; a raw line break before the closing quote is fatal.
func (l *Lexer) scanString() (Token, error) {
	pos := l.position()
	quote := l.input[l.pos]
	l.advance()

	start := l.pos
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == quote {
			text := l.input[start:l.pos]
			l.advance()
			return Token{Type: TokenString, Text: text, Pos: pos}, nil
		}
		if c == '\n' {
			return Token{}, NewLexError(pos, "unterminated string: raw line break inside single-line string")
		}
		l.advance()
	}
	return Token{}, NewLexError(pos, "unterminated string: input ends inside string")
}

// scanBare consumes a run of bare characters: a key, a numeric literal, or
// an unquoted word the parser will reject at value position.
func (l *Lexer) scanBare() Token {
	pos := l.position()
	start := l.pos
	for l.pos < len(l.input) && isBareChar(l.input[l.pos]) {
		l.advance()
	}
	return Token{Type: TokenBare, Text: l.input[start:l.pos], Pos: pos}
}

func isBareChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	default:
		return strings.IndexByte(bareChars, c) >= 0
	}
}
