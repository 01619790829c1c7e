package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// petitLexer tokenizes petit source text. The parser works on the converted
// token stream, not on lexer tokens directly.
var petitLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*`},

		// Keywords and identifiers (keywords are resolved after matching)
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

		// Integer literals
		{Name: "Integer", Pattern: `[0-9]+`},

		// Operators (multi-character variants must come first)
		{Name: "Operator", Pattern: `(&&|\|\||==|!=|<=|>=|[-+*/<>=!])`},

		// Punctuation
		{Name: "Punct", Pattern: `[(){};]`},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // optional: how many characters it covers
}

type Scanner struct {
	filename string
	source   string
	tokens   []Token
	errors   []ScanError
}

func NewScanner(filename, source string) *Scanner {
	return &Scanner{
		filename: filename,
		source:   source,
	}
}

// ScanTokens runs the lexer over the whole input and converts its tokens into
// the parser's token stream. Whitespace and comments are dropped here, the
// same way the parser never sees them.
func (s *Scanner) ScanTokens() []Token {
	symbols := lexer.SymbolsByRune(petitLexer)

	lex, err := petitLexer.LexString(s.filename, s.source)
	if err != nil {
		s.recordLexError(err)
		return s.finish()
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			s.recordLexError(err)
			break
		}
		if tok.EOF() {
			break
		}

		switch symbols[tok.Type] {
		case "Whitespace", "Comment":
			continue
		case "Ident":
			s.addToken(s.identifierType(tok.Value), tok)
		case "Integer":
			s.addToken(NUMBER, tok)
		case "Operator":
			s.addToken(OPERATORS[tok.Value], tok)
		case "Punct":
			s.addToken(PUNCTUATION[tok.Value], tok)
		default:
			s.errors = append(s.errors, ScanError{
				Message:  fmt.Sprintf("unexpected token %q", tok.Value),
				Position: convertPosition(tok.Pos),
				Length:   len(tok.Value),
			})
		}
	}

	return s.finish()
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) identifierType(lexeme string) TokenType {
	if keyword, ok := KEYWORDS[lexeme]; ok {
		return keyword
	}
	return IDENTIFIER
}

func (s *Scanner) addToken(tokenType TokenType, tok lexer.Token) {
	if tokenType == ILLEGAL {
		s.errors = append(s.errors, ScanError{
			Message:  fmt.Sprintf("unexpected character %q", tok.Value),
			Position: convertPosition(tok.Pos),
			Length:   len(tok.Value),
		})
		return
	}

	s.tokens = append(s.tokens, Token{
		Type:     tokenType,
		Lexeme:   tok.Value,
		Position: convertPosition(tok.Pos),
	})
}

func (s *Scanner) finish() []Token {
	end := Position{Line: 1, Column: 1}
	if n := len(s.tokens); n > 0 {
		last := s.tokens[n-1]
		end = Position{
			Line:   last.Position.Line,
			Column: last.Position.Column + len(last.Lexeme),
			Offset: last.Position.Offset + len(last.Lexeme),
		}
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: end})
	return s.tokens
}

func (s *Scanner) recordLexError(err error) {
	pos := Position{Line: 1, Column: 1}
	if positioned, ok := err.(interface{ Position() lexer.Position }); ok {
		pos = convertPosition(positioned.Position())
	}
	s.errors = append(s.errors, ScanError{
		Message:  err.Error(),
		Position: pos,
		Length:   1,
	})
}

func convertPosition(pos lexer.Position) Position {
	return Position{
		Line:   pos.Line,
		Column: pos.Column,
		Offset: pos.Offset,
	}
}
