package semantic

import "fmt"

// Metrics records structural usage counts over one whole program: declared
// variables, loops, conditionals, functions and applied operators. Operator
// nodes count once each, no matter how many operator tokens they group.
type Metrics struct {
	Var   int
	While int
	If    int
	Func  int
	Op    int
}

func (m Metrics) String() string {
	return fmt.Sprintf("{VAR:%d, WHILE:%d, IF:%d, FUNC:%d, OP:%d}",
		m.Var, m.While, m.If, m.Func, m.Op)
}
