package evaluator

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/funvibe/funlang/internal/ast"
)

func (e *Evaluator) evalFunctionCall(node *ast.FunctionCall) (Result, error) {
	name := node.Function.Value

	// Arguments are evaluated in the caller's scope before the callee is resolved.
	args := make([]int32, 0, len(node.Args()))
	for _, arg := range node.Args() {
		v, err := e.evalInt(arg)
		if err != nil {
			return none, err
		}
		args = append(args, v)
	}

	fn, builtin, err := e.scopes.LookupFunction(name, len(args))
	if err != nil {
		return none, err
	}
	if builtin {
		return e.println(args)
	}

	if e.MaxCallDepth > 0 && len(e.CallStack) >= e.MaxCallDepth {
		return none, newRuntimeError(CallDepthExceeded, name,
			"maximum call depth %d exceeded calling %s", e.MaxCallDepth, name)
	}

	tok := node.GetToken()
	e.PushCall(name, e.CurrentFile, tok.Line, tok.Column)
	defer e.PopCall()
	e.log.Debug("call", "function", name, "args", args, "depth", len(e.CallStack))

	res, err := e.applyFunction(fn, args)
	if err != nil {
		return none, err
	}
	// The call absorbs the return signal.
	if res.Returning {
		return Result{Value: res.Value}, nil
	}
	return Result{Value: Int(0)}, nil
}

// applyFunction binds args in a fresh scope and runs the body in a nested one.
func (e *Evaluator) applyFunction(fn *ast.FunctionDecl, args []int32) (Result, error) {
	e.scopes.EnterScope()
	defer e.scopes.LeaveScope()

	if fn.Parameters != nil {
		for i, param := range fn.Parameters.Parameters {
			if err := e.scopes.DeclareVariable(param.Value, Int(args[i])); err != nil {
				return none, err
			}
		}
	}
	if fn.Body == nil {
		return none, nil
	}
	return e.Eval(fn.Body)
}

// println writes all values on one line, separated by spaces.
func (e *Evaluator) println(args []int32) (Result, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.FormatInt(int64(a), 10)
	}
	out := e.Out
	if out == nil {
		out = io.Discard
	}
	if _, err := io.WriteString(out, strings.Join(parts, " ")+"\n"); err != nil {
		return none, fmt.Errorf("println: %w", err)
	}
	return Result{Value: Int(0)}, nil
}

func (e *Evaluator) evalBinaryExpression(node *ast.BinaryExpression) (Result, error) {
	left, err := e.evalInt(node.Left)
	if err != nil {
		return none, err
	}
	right, err := e.evalInt(node.Right)
	if err != nil {
		return none, err
	}
	v, err := applyOperator(node.Operator, left, right)
	if err != nil {
		return none, err
	}
	return Result{Value: Int(v)}, nil
}

// applyOperator computes left op right on int32 with wrap-around.
func applyOperator(op ast.Operator, left, right int32) (int32, error) {
	switch op {
	case ast.OpMul:
		return left * right, nil
	case ast.OpDiv, ast.OpMod:
		if right == 0 {
			return 0, newRuntimeError(ArithmeticError, "", "Arithmetic error: %d %s %d", left, op.Symbol(), right)
		}
		if op == ast.OpDiv {
			return left / right, nil
		}
		return left % right, nil
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpGT:
		return boolToInt(left > right), nil
	case ast.OpLT:
		return boolToInt(left < right), nil
	case ast.OpGE:
		return boolToInt(left >= right), nil
	case ast.OpLE:
		return boolToInt(left <= right), nil
	case ast.OpEQ:
		return boolToInt(left == right), nil
	case ast.OpNE:
		return boolToInt(left != right), nil
	case ast.OpOr:
		return boolToInt(intToBool(left) || intToBool(right)), nil
	case ast.OpAnd:
		return boolToInt(intToBool(left) && intToBool(right)), nil
	}
	return 0, fmt.Errorf("unknown operator %q", string(op))
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier) (Result, error) {
	v, _, err := e.scopes.LookupVariable(node.Value)
	if err != nil {
		return none, err
	}
	return Result{Value: v}, nil
}

func (e *Evaluator) evalNumberLiteral(node *ast.NumberLiteral) (Result, error) {
	n, err := strconv.ParseInt(node.Literal, 10, 32)
	if err != nil {
		return none, newRuntimeError(NumberOutOfRange, node.Literal, "Number %s is too large.", node.Literal)
	}
	return Result{Value: Int(int32(n))}, nil
}
