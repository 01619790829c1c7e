package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionAccumulatesProgram(t *testing.T) {
	in := strings.NewReader("num a;\na = 1;\n")
	var out bytes.Buffer

	Start(in, &out)

	output := out.String()
	assert.Contains(t, output, PROMPT)
	assert.Contains(t, output, "{VAR:1, WHILE:0, IF:0, FUNC:0, OP:0}")
}

func TestSessionReportsFirstError(t *testing.T) {
	in := strings.NewReader("a = 1;\n")
	var out bytes.Buffer

	Start(in, &out)

	assert.Contains(t, out.String(), "Invalid use of undefined Identifier a")
}

func TestFailedLineIsDiscarded(t *testing.T) {
	in := strings.NewReader("num a;\nnum a;\na = 2;\n")
	var out bytes.Buffer

	Start(in, &out)

	output := out.String()
	assert.Contains(t, output, "Identifier a has multiple declarations")
	// The duplicate declaration did not stick, so the assignment still works
	assert.Contains(t, output, "{VAR:1, WHILE:0, IF:0, FUNC:0, OP:0}")
}

func TestParseErrorDoesNotEndSession(t *testing.T) {
	in := strings.NewReader("num\nnum b;\n")
	var out bytes.Buffer

	Start(in, &out)

	output := out.String()
	assert.Contains(t, output, "parse error:")
	assert.Contains(t, output, "{VAR:1, WHILE:0, IF:0, FUNC:0, OP:0}")
}
