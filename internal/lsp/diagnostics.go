package lsp

import (
	"petit/internal/errors"
	"petit/internal/parser"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ConvertParseErrors transforms parser errors into LSP diagnostics for IDE
// display. These provide immediate feedback about syntax issues like missing
// semicolons, unbalanced braces, and other parsing problems.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),   // Convert to 0-based indexing
					Character: uint32(parseErr.Position.Column - 1), // Convert to 0-based indexing
				},
				End: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column + 5), // Rough span for visibility
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("petit-parser"),
			Message:  parseErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// ConvertScanErrors transforms scanner errors into LSP diagnostics for IDE
// display. These handle tokenization issues like invalid characters.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: uint32(scanErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: uint32(scanErr.Position.Column + 3), // Default small span
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("petit-scanner"),
			Message:  scanErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// ConvertSemanticError transforms the analyzer's failure into an LSP
// diagnostic. The analyzer stops at the first violation, so at most one
// diagnostic comes out of it.
func ConvertSemanticError(err error) []protocol.Diagnostic {
	compilerErr, ok := err.(*errors.CompilerError)
	if !ok {
		return []protocol.Diagnostic{}
	}

	length := compilerErr.Length
	if length <= 0 {
		length = 1
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(compilerErr.Position.Line - 1),
				Character: uint32(compilerErr.Position.Column - 1),
			},
			End: protocol.Position{
				Line:      uint32(compilerErr.Position.Line - 1),
				Character: uint32(compilerErr.Position.Column - 1 + length),
			},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("petit-semantic"),
		Message:  compilerErr.Message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
