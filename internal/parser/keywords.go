package parser

var KEYWORDS = map[string]TokenType{
	"num":    NUM_TYPE,
	"bool":   BOOL_TYPE,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"func":   FUNC,
	"return": RETURN,
}

var OPERATORS = map[string]TokenType{
	"+":  PLUS,
	"-":  MINUS,
	"*":  STAR,
	"/":  SLASH,
	"!":  BANG,
	"!=": BANG_EQUAL,
	"=":  EQUAL,
	"==": EQUAL_EQUAL,
	"<":  LESS,
	"<=": LESS_EQUAL,
	">":  GREATER,
	">=": GREATER_EQUAL,
	"&&": AND,
	"||": OR,
}

var PUNCTUATION = map[string]TokenType{
	";": SEMICOLON,
	"(": LEFT_PAREN,
	")": RIGHT_PAREN,
	"{": LEFT_BRACE,
	"}": RIGHT_BRACE,
}
