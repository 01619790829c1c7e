package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanDeclarationAndAssignment(t *testing.T) {
	scanner := NewScanner("test.pt", "num x; x = 5;")
	tokens := scanner.ScanTokens()

	assert.Empty(t, scanner.Errors())

	expected := []TokenType{NUM_TYPE, IDENTIFIER, SEMICOLON, IDENTIFIER, EQUAL, NUMBER, SEMICOLON, EOF}
	assert.Len(t, tokens, len(expected))
	for i, tokenType := range expected {
		assert.Equal(t, tokenType, tokens[i].Type, "token %d", i)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	scanner := NewScanner("test.pt", "if else while func return true false bool whileish")
	tokens := scanner.ScanTokens()

	assert.Empty(t, scanner.Errors())

	expected := []TokenType{IF, ELSE, WHILE, FUNC, RETURN, TRUE, FALSE, BOOL_TYPE, IDENTIFIER, EOF}
	assert.Len(t, tokens, len(expected))
	for i, tokenType := range expected {
		assert.Equal(t, tokenType, tokens[i].Type, "token %d", i)
	}
}

func TestScanMultiCharacterOperators(t *testing.T) {
	scanner := NewScanner("test.pt", "== != <= >= && || < > = !")
	tokens := scanner.ScanTokens()

	assert.Empty(t, scanner.Errors())

	expected := []TokenType{EQUAL_EQUAL, BANG_EQUAL, LESS_EQUAL, GREATER_EQUAL, AND, OR, LESS, GREATER, EQUAL, BANG, EOF}
	assert.Len(t, tokens, len(expected))
	for i, tokenType := range expected {
		assert.Equal(t, tokenType, tokens[i].Type, "token %d", i)
	}
}

func TestScanDropsComments(t *testing.T) {
	scanner := NewScanner("test.pt", "num a; // trailing note\nnum b;")
	tokens := scanner.ScanTokens()

	assert.Empty(t, scanner.Errors())
	assert.Len(t, tokens, 7) // two declarations plus EOF
}

func TestScanTracksPositions(t *testing.T) {
	scanner := NewScanner("test.pt", "num a;\nbool b;")
	tokens := scanner.ScanTokens()

	assert.Empty(t, scanner.Errors())
	assert.Equal(t, 1, tokens[0].Position.Line)
	assert.Equal(t, 1, tokens[0].Position.Column)
	assert.Equal(t, 2, tokens[3].Position.Line)
	assert.Equal(t, 1, tokens[3].Position.Column)
}

func TestScanInvalidCharacter(t *testing.T) {
	scanner := NewScanner("test.pt", "num a @ b;")
	scanner.ScanTokens()

	assert.NotEmpty(t, scanner.Errors())
}
