package parser

import (
	"fmt"
	"strconv"

	"petit/internal/ast"
)

type ParseError struct {
	Message  string
	Position Position
}

type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// ParseSource scans and parses a whole source file. The program may be
// partially populated when errors are present; callers must treat a non-empty
// error slice as a failed parse.
func ParseSource(path string, source string) (*ast.Program, []ParseError, []ScanError) {
	scanner := NewScanner(path, source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	program := parser.ParseProgram()

	return program, parser.errors, scanner.Errors()
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Pos: p.pos(p.peek())}

	for !p.isAtEnd() {
		stmt := p.parseTopLevel()
		if stmt != nil {
			program.Stmts = append(program.Stmts, stmt)
		}
	}

	program.EndPos = p.pos(p.peek())
	return program
}

// parseTopLevel accepts everything a statement position accepts plus function
// declarations, which are only legal at the top level.
func (p *Parser) parseTopLevel() ast.Stmt {
	if p.check(FUNC) {
		return p.parseFunction()
	}
	return p.parseDeclOrStmt()
}

func (p *Parser) parseDeclOrStmt() ast.Stmt {
	if p.check(NUM_TYPE) || p.check(BOOL_TYPE) {
		return p.parseDeclaration()
	}
	return p.parseStatement()
}

func (p *Parser) parseDeclaration() ast.Stmt {
	keyword := p.advance()

	name, ok := p.expect(IDENTIFIER, "expected variable name after type keyword")
	if !ok {
		p.synchronize()
		return nil
	}

	end, ok := p.expect(SEMICOLON, "expected ';' after declaration")
	if !ok {
		p.synchronize()
		return nil
	}

	return &ast.Declaration{
		Pos:     p.pos(keyword),
		EndPos:  p.endPos(end),
		Keyword: keyword.Lexeme,
		Name:    p.identifier(name),
	}
}

func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case p.check(IF):
		return p.parseIf()
	case p.check(WHILE):
		return p.parseWhile()
	case p.check(RETURN):
		return p.parseReturn()
	case p.check(LEFT_BRACE):
		return p.parseBlock()
	case p.check(IDENTIFIER):
		return p.parseAssign()
	case p.check(FUNC):
		p.addError("function declarations are only allowed at the top level", p.peek())
		p.synchronize()
		return nil
	default:
		p.addError(fmt.Sprintf("unexpected token %q", p.peek().Lexeme), p.peek())
		p.synchronize()
		return nil
	}
}

func (p *Parser) parseBlock() ast.Stmt {
	open := p.advance() // consume '{'

	block := &ast.Block{Pos: p.pos(open)}
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.parseDeclOrStmt()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}

	end, ok := p.expect(RIGHT_BRACE, "expected '}' to close block")
	if !ok {
		return nil
	}

	block.EndPos = p.endPos(end)
	return block
}

func (p *Parser) parseIf() ast.Stmt {
	keyword := p.advance() // consume 'if'

	cond := p.parseParenCondition()
	if cond == nil {
		return nil
	}

	then := p.parseStatement()
	if then == nil {
		return nil
	}

	stmt := &ast.IfStmt{
		Pos:    p.pos(keyword),
		EndPos: then.NodeEndPos(),
		Cond:   cond,
		Then:   then,
	}

	if p.match(ELSE) {
		stmt.Else = p.parseStatement()
		if stmt.Else == nil {
			return nil
		}
		stmt.EndPos = stmt.Else.NodeEndPos()
	}

	return stmt
}

func (p *Parser) parseWhile() ast.Stmt {
	keyword := p.advance() // consume 'while'

	cond := p.parseParenCondition()
	if cond == nil {
		return nil
	}

	body := p.parseStatement()
	if body == nil {
		return nil
	}

	return &ast.WhileStmt{
		Pos:    p.pos(keyword),
		EndPos: body.NodeEndPos(),
		Cond:   cond,
		Body:   body,
	}
}

func (p *Parser) parseParenCondition() ast.Expr {
	if _, ok := p.expect(LEFT_PAREN, "expected '(' before condition"); !ok {
		p.synchronize()
		return nil
	}

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	if _, ok := p.expect(RIGHT_PAREN, "expected ')' after condition"); !ok {
		p.synchronize()
		return nil
	}

	return cond
}

func (p *Parser) parseFunction() ast.Stmt {
	keyword := p.advance() // consume 'func'

	if !p.check(NUM_TYPE) && !p.check(BOOL_TYPE) {
		p.addError("expected return type keyword after 'func'", p.peek())
		p.synchronize()
		return nil
	}
	returnType := p.advance()

	name, ok := p.expect(IDENTIFIER, "expected function name")
	if !ok {
		p.synchronize()
		return nil
	}

	if _, ok := p.expect(LEFT_PAREN, "expected '(' after function name"); !ok {
		p.synchronize()
		return nil
	}
	if _, ok := p.expect(RIGHT_PAREN, "expected ')' in function declaration"); !ok {
		p.synchronize()
		return nil
	}

	body := p.parseFunctionBlock()
	if body == nil {
		return nil
	}

	return &ast.FunctionStmt{
		Pos:     p.pos(keyword),
		EndPos:  body.EndPos,
		Keyword: returnType.Lexeme,
		Name:    p.identifier(name),
		Body:    body,
	}
}

func (p *Parser) parseFunctionBlock() *ast.FunctionBlock {
	open, ok := p.expect(LEFT_BRACE, "expected '{' to open function body")
	if !ok {
		p.synchronize()
		return nil
	}

	block := &ast.FunctionBlock{Pos: p.pos(open)}
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.parseDeclOrStmt()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}

	end, ok := p.expect(RIGHT_BRACE, "expected '}' to close function body")
	if !ok {
		return nil
	}

	block.EndPos = p.endPos(end)
	return block
}

func (p *Parser) parseReturn() ast.Stmt {
	keyword := p.advance() // consume 'return'

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	end, ok := p.expect(SEMICOLON, "expected ';' after return value")
	if !ok {
		p.synchronize()
		return nil
	}

	return &ast.ReturnStmt{
		Pos:    p.pos(keyword),
		EndPos: p.endPos(end),
		Value:  value,
	}
}

func (p *Parser) parseAssign() ast.Stmt {
	target := p.advance() // consume identifier

	if _, ok := p.expect(EQUAL, "expected '=' in assignment"); !ok {
		p.synchronize()
		return nil
	}

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	end, ok := p.expect(SEMICOLON, "expected ';' after assignment")
	if !ok {
		p.synchronize()
		return nil
	}

	return &ast.AssignStmt{
		Pos:    p.pos(target),
		EndPos: p.endPos(end),
		Target: p.identifier(target),
		Value:  value,
	}
}

// Expression precedence runs comparison -> additive -> multiplicative ->
// logical -> not -> unary minus -> value. A level without an operator returns
// the lower node directly instead of a single-operand wrapper.

func (p *Parser) parseExpr() ast.Expr {
	return p.parseComp()
}

func (p *Parser) parseComp() ast.Expr {
	left := p.parseAdd()
	if left == nil {
		return nil
	}

	if !p.checkAny(EQUAL_EQUAL, BANG_EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL) {
		return left
	}

	op := p.advance()
	right := p.parseAdd()
	if right == nil {
		return nil
	}

	return &ast.CompExpr{
		Pos:      left.NodePos(),
		EndPos:   right.NodeEndPos(),
		Op:       op.Lexeme,
		Operands: []ast.Expr{left, right},
	}
}

func (p *Parser) parseAdd() ast.Expr {
	return p.parseChain(func() ast.Expr { return p.parseMul() },
		func(operands []ast.Expr, ops []string) ast.Expr {
			return &ast.AddExpr{
				Pos:      operands[0].NodePos(),
				EndPos:   operands[len(operands)-1].NodeEndPos(),
				Ops:      ops,
				Operands: operands,
			}
		}, PLUS, MINUS)
}

func (p *Parser) parseMul() ast.Expr {
	return p.parseChain(func() ast.Expr { return p.parseBool() },
		func(operands []ast.Expr, ops []string) ast.Expr {
			return &ast.MulExpr{
				Pos:      operands[0].NodePos(),
				EndPos:   operands[len(operands)-1].NodeEndPos(),
				Ops:      ops,
				Operands: operands,
			}
		}, STAR, SLASH)
}

func (p *Parser) parseBool() ast.Expr {
	return p.parseChain(func() ast.Expr { return p.parseNot() },
		func(operands []ast.Expr, ops []string) ast.Expr {
			return &ast.BoolExpr{
				Pos:      operands[0].NodePos(),
				EndPos:   operands[len(operands)-1].NodeEndPos(),
				Ops:      ops,
				Operands: operands,
			}
		}, AND, OR)
}

// parseChain folds a run of same-level operators into a single node with an
// ordered operand list, so `a + b - c` is one node with two operator tokens.
func (p *Parser) parseChain(next func() ast.Expr, build func([]ast.Expr, []string) ast.Expr, tokenTypes ...TokenType) ast.Expr {
	first := next()
	if first == nil {
		return nil
	}

	operands := []ast.Expr{first}
	var ops []string
	for p.checkAny(tokenTypes...) {
		ops = append(ops, p.advance().Lexeme)

		operand := next()
		if operand == nil {
			return nil
		}
		operands = append(operands, operand)
	}

	if len(ops) == 0 {
		return first
	}
	return build(operands, ops)
}

func (p *Parser) parseNot() ast.Expr {
	start := p.peek()

	var ops []string
	for p.check(BANG) {
		ops = append(ops, p.advance().Lexeme)
	}

	value := p.parseUna()
	if value == nil {
		return nil
	}

	if len(ops) == 0 {
		return value
	}
	return &ast.NotExpr{
		Pos:    p.pos(start),
		EndPos: value.NodeEndPos(),
		Ops:    ops,
		Value:  value,
	}
}

func (p *Parser) parseUna() ast.Expr {
	start := p.peek()

	var ops []string
	for p.check(MINUS) {
		ops = append(ops, p.advance().Lexeme)
	}

	value := p.parseGenValue()
	if value == nil {
		return nil
	}

	if len(ops) == 0 {
		return value
	}
	return &ast.UnaExpr{
		Pos:    p.pos(start),
		EndPos: value.NodeEndPos(),
		Ops:    ops,
		Value:  value,
	}
}

func (p *Parser) parseGenValue() ast.Expr {
	tok := p.peek()

	switch tok.Type {
	case IDENTIFIER:
		p.advance()
		ident := p.identifier(tok)
		return &ast.GenValue{Pos: ident.Pos, EndPos: ident.EndPos, Value: ident}

	case TRUE, FALSE:
		p.advance()
		value := &ast.BoolValue{Pos: p.pos(tok), EndPos: p.endPos(tok), Value: tok.Type == TRUE}
		return &ast.GenValue{Pos: value.Pos, EndPos: value.EndPos, Value: value}

	case NUMBER:
		p.advance()
		parsed, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			p.addError(fmt.Sprintf("integer literal %q out of range", tok.Lexeme), tok)
			return nil
		}
		value := &ast.IntValue{Pos: p.pos(tok), EndPos: p.endPos(tok), Value: parsed}
		return &ast.GenValue{Pos: value.Pos, EndPos: value.EndPos, Value: value}

	case LEFT_PAREN:
		p.advance()
		inner := p.parseExpr()
		if inner == nil {
			return nil
		}
		end, ok := p.expect(RIGHT_PAREN, "expected ')' after expression")
		if !ok {
			return nil
		}
		return &ast.GenValue{Pos: p.pos(tok), EndPos: p.endPos(end), Value: inner}

	default:
		p.addError(fmt.Sprintf("expected a value, found %q", tok.Lexeme), tok)
		return nil
	}
}

// Token stream helpers

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.current]
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) check(tokenType TokenType) bool {
	return p.peek().Type == tokenType
}

func (p *Parser) checkAny(tokenTypes ...TokenType) bool {
	for _, tokenType := range tokenTypes {
		if p.check(tokenType) {
			return true
		}
	}
	return false
}

func (p *Parser) match(tokenType TokenType) bool {
	if p.check(tokenType) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(tokenType TokenType, message string) (Token, bool) {
	if p.check(tokenType) {
		return p.advance(), true
	}
	p.addError(message, p.peek())
	return p.peek(), false
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) addError(message string, tok Token) {
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Position: tok.Position,
	})
}

// synchronize skips ahead to the next statement boundary so a single mistake
// does not cascade into a wall of follow-on errors.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.advance().Type == SEMICOLON {
			return
		}
		switch p.peek().Type {
		case NUM_TYPE, BOOL_TYPE, IF, WHILE, FUNC, RETURN, RIGHT_BRACE:
			return
		}
	}
}

func (p *Parser) identifier(tok Token) *ast.Identifier {
	return &ast.Identifier{
		Pos:    p.pos(tok),
		EndPos: p.endPos(tok),
		Value:  tok.Lexeme,
	}
}

func (p *Parser) pos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) endPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}
