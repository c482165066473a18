package evaluator

import (
	"github.com/funvibe/funlang/internal/ast"
)

func (e *Evaluator) evalBlock(block *ast.Block) (Result, error) {
	e.scopes.EnterScope()
	defer e.scopes.LeaveScope()

	for _, stmt := range block.Statements {
		res, err := e.Eval(stmt)
		if err != nil {
			return none, err
		}
		if res.Returning {
			return res, nil
		}
	}
	return none, nil
}

func (e *Evaluator) evalFunctionDecl(node *ast.FunctionDecl) (Result, error) {
	if err := e.scopes.DeclareFunction(node); err != nil {
		return none, err
	}
	e.log.Debug("function declared", "name", node.Name.Value, "arity", node.Arity(), "depth", e.scopes.Depth())
	return none, nil
}

func (e *Evaluator) evalVariableDecl(node *ast.VariableDecl) (Result, error) {
	value := Unset
	if node.Value != nil {
		v, err := e.evalInt(node.Value)
		if err != nil {
			return none, err
		}
		value = Int(v)
	}
	if err := e.scopes.DeclareVariable(node.Name.Value, value); err != nil {
		return none, err
	}
	return none, nil
}

func (e *Evaluator) evalWhileLoop(node *ast.WhileLoop) (Result, error) {
	for {
		cond, err := e.evalInt(node.Condition)
		if err != nil {
			return none, err
		}
		if !intToBool(cond) {
			return none, nil
		}
		res, err := e.Eval(node.Body)
		if err != nil {
			return none, err
		}
		if res.Returning {
			return res, nil
		}
	}
}

func (e *Evaluator) evalConditional(node *ast.Conditional) (Result, error) {
	cond, err := e.evalInt(node.Condition)
	if err != nil {
		return none, err
	}
	if intToBool(cond) {
		return e.Eval(node.Then)
	}
	if node.Else != nil {
		return e.Eval(node.Else)
	}
	return none, nil
}

func (e *Evaluator) evalAssignment(node *ast.Assignment) (Result, error) {
	name := node.Name.Value
	_, owner, err := e.scopes.LookupVariable(name)
	if err != nil {
		return none, err
	}
	v, err := e.evalInt(node.Value)
	if err != nil {
		return none, err
	}
	e.scopes.SetVariable(owner, name, v)
	return none, nil
}

func (e *Evaluator) evalReturnStatement(node *ast.ReturnStatement) (Result, error) {
	v, err := e.evalInt(node.Value)
	if err != nil {
		return none, err
	}
	return Result{Value: Int(v), Returning: true}, nil
}
