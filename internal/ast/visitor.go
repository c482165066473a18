package ast

// Visitor has one method per node kind. New traversals implement it
// without touching the node definitions.
type Visitor interface {
	VisitFile(node *File)
	VisitBlock(node *Block)
	VisitFunctionDecl(node *FunctionDecl)
	VisitVariableDecl(node *VariableDecl)
	VisitParameterList(node *ParameterList)
	VisitWhileLoop(node *WhileLoop)
	VisitConditional(node *Conditional)
	VisitAssignment(node *Assignment)
	VisitReturnStatement(node *ReturnStatement)
	VisitFunctionCall(node *FunctionCall)
	VisitArgumentList(node *ArgumentList)
	VisitBinaryExpression(node *BinaryExpression)
	VisitIdentifier(node *Identifier)
	VisitNumberLiteral(node *NumberLiteral)
}

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		switch n := n.(type) {
		case nil:
		case *Block:
			if n != nil {
				out = append(out, n)
			}
		case *Identifier:
			if n != nil {
				out = append(out, n)
			}
		case *ParameterList:
			if n != nil {
				out = append(out, n)
			}
		case *ArgumentList:
			if n != nil {
				out = append(out, n)
			}
		default:
			out = append(out, n)
		}
	}

	switch n := node.(type) {
	case *File:
		add(n.Block)
	case *Block:
		for _, s := range n.Statements {
			add(s)
		}
	case *FunctionDecl:
		add(n.Name)
		add(n.Parameters)
		add(n.Body)
	case *ParameterList:
		for _, p := range n.Parameters {
			add(p)
		}
	case *VariableDecl:
		add(n.Name)
		if n.Value != nil {
			add(n.Value)
		}
	case *WhileLoop:
		add(n.Condition)
		add(n.Body)
	case *Conditional:
		add(n.Condition)
		add(n.Then)
		add(n.Else)
	case *Assignment:
		add(n.Name)
		add(n.Value)
	case *ReturnStatement:
		add(n.Value)
	case *FunctionCall:
		add(n.Function)
		add(n.Arguments)
	case *ArgumentList:
		for _, a := range n.Arguments {
			add(a)
		}
	case *BinaryExpression:
		add(n.Left)
		add(n.Right)
	}
	return out
}
