package prettyprinter

import (
	"bytes"

	"github.com/funvibe/funlang/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[ast.Operator]int{
	ast.OpOr:  1,
	ast.OpAnd: 2,
	ast.OpEQ:  3,
	ast.OpNE:  3,
	ast.OpLT:  4,
	ast.OpGT:  4,
	ast.OpLE:  4,
	ast.OpGE:  4,
	ast.OpAdd: 5,
	ast.OpSub: 5,
	ast.OpMul: 6,
	ast.OpDiv: 6,
	ast.OpMod: 6,
}

func getPrecedence(op ast.Operator) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10 // Default high precedence for unknown ops
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

// writeStatements prints one statement per line at the current indent.
func (p *CodePrinter) writeStatements(stmts []ast.Statement) {
	for _, stmt := range stmts {
		p.writeIndent()
		stmt.Accept(p)
		p.write("\n")
	}
}

// writeBraced prints "{", the statements one level deeper, and "}".
func (p *CodePrinter) writeBraced(b *ast.Block) {
	if b == nil || len(b.Statements) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent++
	p.writeStatements(b.Statements)
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitFile(node *ast.File) {
	if node.Block != nil {
		p.writeStatements(node.Block.Statements)
	}
}

func (p *CodePrinter) VisitBlock(node *ast.Block) {
	p.writeBraced(node)
}

func (p *CodePrinter) VisitFunctionDecl(node *ast.FunctionDecl) {
	p.write("fun ")
	p.write(node.Name.Value)
	node.Parameters.Accept(p)
	p.write(" ")
	p.writeBraced(node.Body)
}

func (p *CodePrinter) VisitParameterList(node *ast.ParameterList) {
	p.write("(")
	for i, param := range node.Parameters {
		if i > 0 {
			p.write(", ")
		}
		p.write(param.Value)
	}
	p.write(")")
}

func (p *CodePrinter) VisitVariableDecl(node *ast.VariableDecl) {
	p.write("var ")
	p.write(node.Name.Value)
	if node.Value != nil {
		p.write(" = ")
		node.Value.Accept(p)
	}
}

func (p *CodePrinter) VisitWhileLoop(node *ast.WhileLoop) {
	p.write("while (")
	node.Condition.Accept(p)
	p.write(") ")
	p.writeBraced(node.Body)
}

func (p *CodePrinter) VisitConditional(node *ast.Conditional) {
	p.write("if (")
	node.Condition.Accept(p)
	p.write(") ")
	p.writeBraced(node.Then)
	if node.Else != nil {
		p.write(" else ")
		p.writeBraced(node.Else)
	}
}

func (p *CodePrinter) VisitAssignment(node *ast.Assignment) {
	p.write(node.Name.Value)
	p.write(" = ")
	node.Value.Accept(p)
}

func (p *CodePrinter) VisitReturnStatement(node *ast.ReturnStatement) {
	p.write("return ")
	node.Value.Accept(p)
}

func (p *CodePrinter) VisitFunctionCall(node *ast.FunctionCall) {
	p.write(node.Function.Value)
	if node.Arguments == nil {
		p.write("()")
		return
	}
	node.Arguments.Accept(p)
}

func (p *CodePrinter) VisitArgumentList(node *ast.ArgumentList) {
	p.write("(")
	for i, arg := range node.Arguments {
		if i > 0 {
			p.write(", ")
		}
		arg.Accept(p)
	}
	p.write(")")
}

func (p *CodePrinter) VisitBinaryExpression(node *ast.BinaryExpression) {
	prec := getPrecedence(node.Operator)
	p.writeOperand(node.Left, prec, false)
	p.write(" ")
	p.write(node.Operator.Symbol())
	p.write(" ")
	p.writeOperand(node.Right, prec, true)
}

// writeOperand adds parentheses where the tree shape differs from what
// precedence and left associativity would produce on re-parsing.
func (p *CodePrinter) writeOperand(operand ast.Expression, parentPrec int, right bool) {
	inner, ok := operand.(*ast.BinaryExpression)
	if !ok {
		operand.Accept(p)
		return
	}
	prec := getPrecedence(inner.Operator)
	if prec < parentPrec || (right && prec == parentPrec) {
		p.write("(")
		operand.Accept(p)
		p.write(")")
		return
	}
	operand.Accept(p)
}

func (p *CodePrinter) VisitIdentifier(node *ast.Identifier) {
	p.write(node.Value)
}

func (p *CodePrinter) VisitNumberLiteral(node *ast.NumberLiteral) {
	p.write(node.Literal)
}

// Format renders node as source code.
func Format(node ast.Node) string {
	p := NewCodePrinter()
	node.Accept(p)
	return p.String()
}
