// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"petit/internal/parser"
	"petit/internal/semantic"
)

const PROMPT = ">> "

// Start runs a line-oriented loop. Each entered line extends the program
// built so far; the whole program is re-parsed and re-analyzed after every
// line, printing either the metrics summary or the first error. A line that
// fails is discarded so the session can continue.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var program strings.Builder

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		candidate := program.String() + line + "\n"

		parsed, parseErrors, scanErrors := parser.ParseSource("repl", candidate)
		if len(scanErrors) > 0 {
			fmt.Fprintf(out, "scan error: %s\n", scanErrors[0].Message)
			continue
		}
		if len(parseErrors) > 0 {
			fmt.Fprintf(out, "parse error: %s\n", parseErrors[0].Message)
			continue
		}

		analyzer := semantic.NewAnalyzer(nil)
		metrics, err := analyzer.Analyze(parsed)
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err.Error())
			continue
		}

		program.Reset()
		program.WriteString(candidate)
		fmt.Fprintln(out, metrics.String())
	}
}
