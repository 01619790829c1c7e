package ast

type NodeType int

const (
	PROGRAM NodeType = iota
	DECLARATION
	BLOCK
	IF_STMT
	WHILE_STMT
	FUNCTION_STMT
	FUNCTION_BLOCK
	RETURN_STMT
	ASSIGN_STMT
	COMP_EXPR
	ADD_EXPR
	MUL_EXPR
	BOOL_EXPR
	NOT_EXPR
	UNA_EXPR
	GEN_VALUE
	BOOL_VALUE
	INT_VALUE
	IDENTIFIER
)
