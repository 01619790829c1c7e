package semantic

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"

	"petit/internal/parser"
)

func TestMetricsSummaryFormat(t *testing.T) {
	metrics := Metrics{Var: 3, While: 1, If: 2, Func: 1, Op: 7}

	assert.Equal(t, "{VAR:3, WHILE:1, IF:2, FUNC:1, OP:7}", metrics.String())
}

func TestMetricsZeroValue(t *testing.T) {
	assert.Equal(t, "{VAR:0, WHILE:0, IF:0, FUNC:0, OP:0}", Metrics{}.String())
}

func TestMetricsCoverAllConstructs(t *testing.T) {
	source := `num n;
bool done;
n = 0;
done = false;
while (!done) {
    n = n + 1;
    if (n >= 10) {
        done = true;
    }
}
func num double() {
    return n * 2;
}`

	program, parseErrors, scanErrors := parser.ParseSource("test.pt", source)
	assert.Empty(t, scanErrors)
	assert.Empty(t, parseErrors)

	analyzer := NewAnalyzer(nil)
	metrics, err := analyzer.Analyze(program)
	assert.NoError(t, err)

	expected := Metrics{Var: 2, While: 1, If: 1, Func: 1, Op: 4}
	if diff := deep.Equal(expected, metrics); diff != nil {
		t.Error(diff)
	}
}

func TestAnalysisIsIdempotent(t *testing.T) {
	source := `bool b; num x; if (b) { x = 1 + 2; } while (b) { x = x * 2; }`

	program, parseErrors, _ := parser.ParseSource("test.pt", source)
	assert.Empty(t, parseErrors)

	first, firstErr := NewAnalyzer(nil).Analyze(program)
	second, secondErr := NewAnalyzer(nil).Analyze(program)

	assert.NoError(t, firstErr)
	assert.NoError(t, secondErr)
	if diff := deep.Equal(first, second); diff != nil {
		t.Error(diff)
	}
}

func TestAnalyzerInstanceIsReusable(t *testing.T) {
	program, parseErrors, _ := parser.ParseSource("test.pt", `num a; a = 1;`)
	assert.Empty(t, parseErrors)

	analyzer := NewAnalyzer(nil)
	first, firstErr := analyzer.Analyze(program)
	second, secondErr := analyzer.Analyze(program)

	assert.NoError(t, firstErr)
	assert.NoError(t, secondErr)
	if diff := deep.Equal(first, second); diff != nil {
		t.Error(diff)
	}
}
