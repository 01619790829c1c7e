package lsp

import (
	"petit/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

func collectSemanticTokens(program *ast.Program) []SemanticToken {
	var tokens []SemanticToken

	if program == nil {
		return tokens
	}

	for _, stmt := range program.Stmts {
		tokens = append(tokens, walkStatement(stmt)...)
	}

	return tokens
}

func walkStatement(stmt ast.Stmt) []SemanticToken {
	var tokens []SemanticToken

	if stmt == nil {
		return tokens
	}

	switch v := stmt.(type) {
	case *ast.Declaration:
		// Type keyword, then the declared name
		tokens = append(tokens, makeToken(v.Pos, v.Pos, v.Keyword, "type", 0)...)
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "variable", 1)...)
	case *ast.Block:
		for _, inner := range v.Stmts {
			tokens = append(tokens, walkStatement(inner)...)
		}
	case *ast.IfStmt:
		tokens = append(tokens, walkExpression(v.Cond)...)
		tokens = append(tokens, walkStatement(v.Then)...)
		if v.Else != nil {
			tokens = append(tokens, walkStatement(v.Else)...)
		}
	case *ast.WhileStmt:
		tokens = append(tokens, walkExpression(v.Cond)...)
		tokens = append(tokens, walkStatement(v.Body)...)
	case *ast.FunctionStmt:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "function", 1)...)
		for _, inner := range v.Body.Stmts {
			tokens = append(tokens, walkStatement(inner)...)
		}
	case *ast.ReturnStmt:
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.AssignStmt:
		tokens = append(tokens, makeToken(v.Target.Pos, v.Target.EndPos, v.Target.Value, "variable", 0)...)
		tokens = append(tokens, walkExpression(v.Value)...)
	}

	return tokens
}

func walkExpression(expr ast.Expr) []SemanticToken {
	var tokens []SemanticToken

	if expr == nil {
		return tokens
	}

	switch v := expr.(type) {
	case *ast.Identifier:
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.Value, "variable", 0)...)
	case *ast.CompExpr:
		for _, operand := range v.Operands {
			tokens = append(tokens, walkExpression(operand)...)
		}
	case *ast.AddExpr:
		for _, operand := range v.Operands {
			tokens = append(tokens, walkExpression(operand)...)
		}
	case *ast.MulExpr:
		for _, operand := range v.Operands {
			tokens = append(tokens, walkExpression(operand)...)
		}
	case *ast.BoolExpr:
		for _, operand := range v.Operands {
			tokens = append(tokens, walkExpression(operand)...)
		}
	case *ast.NotExpr:
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.UnaExpr:
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.GenValue:
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.IntValue:
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.String(), "number", 0)...)
	case *ast.BoolValue:
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.String(), "keyword", 0)...)
	}

	return tokens
}

// makeToken creates a semantic token for a given position and text
func makeToken(pos, endPos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
