package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"petit/internal/parser"
	"petit/internal/semantic"
)

func TestConvertParseErrors(t *testing.T) {
	_, parseErrors, _ := parser.ParseSource("test.pt", "num a")
	assert.NotEmpty(t, parseErrors)

	diagnostics := ConvertParseErrors(parseErrors)

	assert.Len(t, diagnostics, len(parseErrors))
	assert.Equal(t, "petit-parser", *diagnostics[0].Source)
	assert.Equal(t, parseErrors[0].Message, diagnostics[0].Message)
	// LSP positions are 0-based
	assert.Equal(t, uint32(parseErrors[0].Position.Line-1), diagnostics[0].Range.Start.Line)
}

func TestConvertScanErrors(t *testing.T) {
	scanner := parser.NewScanner("test.pt", "num a @ b;")
	scanner.ScanTokens()
	scanErrors := scanner.Errors()
	assert.NotEmpty(t, scanErrors)

	diagnostics := ConvertScanErrors(scanErrors)

	assert.Len(t, diagnostics, len(scanErrors))
	assert.Equal(t, "petit-scanner", *diagnostics[0].Source)
}

func TestConvertSemanticError(t *testing.T) {
	program, parseErrors, _ := parser.ParseSource("test.pt", "num a;\nbool a;")
	assert.Empty(t, parseErrors)

	analyzer := semantic.NewAnalyzer(nil)
	_, err := analyzer.Analyze(program)
	assert.Error(t, err)

	diagnostics := ConvertSemanticError(err)

	assert.Len(t, diagnostics, 1)
	assert.Equal(t, "petit-semantic", *diagnostics[0].Source)
	assert.Equal(t, "Identifier a has multiple declarations", diagnostics[0].Message)
	assert.Equal(t, uint32(1), diagnostics[0].Range.Start.Line)
}

func TestCollectSemanticTokens(t *testing.T) {
	program, parseErrors, _ := parser.ParseSource("test.pt", "num a; a = a + 1;")
	assert.Empty(t, parseErrors)

	tokens := collectSemanticTokens(program)

	// type keyword, declared name, assignment target, read, literal
	assert.Len(t, tokens, 5)
	assert.Equal(t, uint32(0), tokens[0].Line)
}
