package prettyprinter

import (
	"bytes"
	"fmt"

	"github.com/funvibe/funlang/internal/ast"
)

// TreePrinter dumps the AST structure, one node per line, children
// indented by two spaces.
type TreePrinter struct {
	buf   bytes.Buffer
	depth int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(format string, args ...interface{}) {
	for i := 0; i < p.depth; i++ {
		p.buf.WriteString("  ")
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *TreePrinter) children(nodes ...ast.Node) {
	p.depth++
	for _, n := range nodes {
		n.Accept(p)
	}
	p.depth--
}

func (p *TreePrinter) VisitFile(node *ast.File) {
	p.line("File")
	p.children(ast.Children(node)...)
}

func (p *TreePrinter) VisitBlock(node *ast.Block) {
	p.line("Block")
	p.children(ast.Children(node)...)
}

func (p *TreePrinter) VisitFunctionDecl(node *ast.FunctionDecl) {
	p.line("FunctionDecl %s/%d", node.Name.Value, node.Arity())
	p.children(node.Parameters, node.Body)
}

func (p *TreePrinter) VisitParameterList(node *ast.ParameterList) {
	p.line("ParameterList")
	p.children(ast.Children(node)...)
}

func (p *TreePrinter) VisitVariableDecl(node *ast.VariableDecl) {
	p.line("VariableDecl %s", node.Name.Value)
	if node.Value != nil {
		p.children(node.Value)
	}
}

func (p *TreePrinter) VisitWhileLoop(node *ast.WhileLoop) {
	p.line("WhileLoop")
	p.children(ast.Children(node)...)
}

func (p *TreePrinter) VisitConditional(node *ast.Conditional) {
	p.line("Conditional")
	p.children(ast.Children(node)...)
}

func (p *TreePrinter) VisitAssignment(node *ast.Assignment) {
	p.line("Assignment %s", node.Name.Value)
	p.children(node.Value)
}

func (p *TreePrinter) VisitReturnStatement(node *ast.ReturnStatement) {
	p.line("ReturnStatement")
	p.children(node.Value)
}

func (p *TreePrinter) VisitFunctionCall(node *ast.FunctionCall) {
	p.line("FunctionCall %s", node.Function.Value)
	if node.Arguments != nil {
		p.children(node.Arguments)
	}
}

func (p *TreePrinter) VisitArgumentList(node *ast.ArgumentList) {
	p.line("ArgumentList")
	p.children(ast.Children(node)...)
}

func (p *TreePrinter) VisitBinaryExpression(node *ast.BinaryExpression) {
	p.line("BinaryExpression %s", node.Operator.Symbol())
	p.children(node.Left, node.Right)
}

func (p *TreePrinter) VisitIdentifier(node *ast.Identifier) {
	p.line("Identifier %s", node.Value)
}

func (p *TreePrinter) VisitNumberLiteral(node *ast.NumberLiteral) {
	p.line("NumberLiteral %s", node.Literal)
}

// Tree renders the structure of node.
func Tree(node ast.Node) string {
	p := NewTreePrinter()
	node.Accept(p)
	return p.String()
}
