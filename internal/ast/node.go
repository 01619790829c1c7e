package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

// Stmt is implemented by every node that can appear in a statement position.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every node that synthesizes a value type.
type Expr interface {
	Node
	exprNode()
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (d *Declaration) NodePos() Position    { return d.Pos }
func (d *Declaration) NodeEndPos() Position { return d.EndPos }
func (*Declaration) NodeType() NodeType     { return DECLARATION }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (w *WhileStmt) NodePos() Position    { return w.Pos }
func (w *WhileStmt) NodeEndPos() Position { return w.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (f *FunctionStmt) NodePos() Position    { return f.Pos }
func (f *FunctionStmt) NodeEndPos() Position { return f.EndPos }
func (*FunctionStmt) NodeType() NodeType     { return FUNCTION_STMT }

func (b *FunctionBlock) NodePos() Position    { return b.Pos }
func (b *FunctionBlock) NodeEndPos() Position { return b.EndPos }
func (*FunctionBlock) NodeType() NodeType     { return FUNCTION_BLOCK }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (a *AssignStmt) NodePos() Position    { return a.Pos }
func (a *AssignStmt) NodeEndPos() Position { return a.EndPos }
func (*AssignStmt) NodeType() NodeType     { return ASSIGN_STMT }

func (c *CompExpr) NodePos() Position    { return c.Pos }
func (c *CompExpr) NodeEndPos() Position { return c.EndPos }
func (*CompExpr) NodeType() NodeType     { return COMP_EXPR }

func (a *AddExpr) NodePos() Position    { return a.Pos }
func (a *AddExpr) NodeEndPos() Position { return a.EndPos }
func (*AddExpr) NodeType() NodeType     { return ADD_EXPR }

func (m *MulExpr) NodePos() Position    { return m.Pos }
func (m *MulExpr) NodeEndPos() Position { return m.EndPos }
func (*MulExpr) NodeType() NodeType     { return MUL_EXPR }

func (b *BoolExpr) NodePos() Position    { return b.Pos }
func (b *BoolExpr) NodeEndPos() Position { return b.EndPos }
func (*BoolExpr) NodeType() NodeType     { return BOOL_EXPR }

func (n *NotExpr) NodePos() Position    { return n.Pos }
func (n *NotExpr) NodeEndPos() Position { return n.EndPos }
func (*NotExpr) NodeType() NodeType     { return NOT_EXPR }

func (u *UnaExpr) NodePos() Position    { return u.Pos }
func (u *UnaExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaExpr) NodeType() NodeType     { return UNA_EXPR }

func (g *GenValue) NodePos() Position    { return g.Pos }
func (g *GenValue) NodeEndPos() Position { return g.EndPos }
func (*GenValue) NodeType() NodeType     { return GEN_VALUE }

func (b *BoolValue) NodePos() Position    { return b.Pos }
func (b *BoolValue) NodeEndPos() Position { return b.EndPos }
func (*BoolValue) NodeType() NodeType     { return BOOL_VALUE }

func (i *IntValue) NodePos() Position    { return i.Pos }
func (i *IntValue) NodeEndPos() Position { return i.EndPos }
func (*IntValue) NodeType() NodeType     { return INT_VALUE }

func (i *Identifier) NodePos() Position    { return i.Pos }
func (i *Identifier) NodeEndPos() Position { return i.EndPos }
func (*Identifier) NodeType() NodeType     { return IDENTIFIER }

func (*Declaration) stmtNode()  {}
func (*Block) stmtNode()        {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*FunctionStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
func (*AssignStmt) stmtNode()   {}

func (*CompExpr) exprNode()   {}
func (*AddExpr) exprNode()    {}
func (*MulExpr) exprNode()    {}
func (*BoolExpr) exprNode()   {}
func (*NotExpr) exprNode()    {}
func (*UnaExpr) exprNode()    {}
func (*GenValue) exprNode()   {}
func (*BoolValue) exprNode()  {}
func (*IntValue) exprNode()   {}
func (*Identifier) exprNode() {}
