package evaluator

import (
	"github.com/funvibe/funlang/internal/ast"
	"github.com/funvibe/funlang/internal/config"
)

// Scope is one namespace frame. Variables and functions live in separate
// maps and are resolved independently.
type Scope struct {
	variables map[string]Value
	functions map[string]*ast.FunctionDecl
}

func NewScope() *Scope {
	return &Scope{
		variables: make(map[string]Value),
		functions: make(map[string]*ast.FunctionDecl),
	}
}

// Context is the stack of active scopes for one interpretation run,
// innermost last. It is not safe for concurrent use.
type Context struct {
	scopes []*Scope
}

func NewContext() *Context {
	return &Context{}
}

func (c *Context) EnterScope() {
	c.scopes = append(c.scopes, NewScope())
}

// LeaveScope pops the innermost scope. Calling it without a matching
// EnterScope is a bug in the caller.
func (c *Context) LeaveScope() {
	if len(c.scopes) == 0 {
		panic("evaluator: LeaveScope without matching EnterScope")
	}
	c.scopes[len(c.scopes)-1] = nil
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// Depth is the number of active scopes.
func (c *Context) Depth() int {
	return len(c.scopes)
}

func (c *Context) current() *Scope {
	if len(c.scopes) == 0 {
		panic("evaluator: declaration outside of any scope")
	}
	return c.scopes[len(c.scopes)-1]
}

// DeclareFunction binds fn in the current scope. A second function with the
// same name in the same scope is rejected whatever its arity.
func (c *Context) DeclareFunction(fn *ast.FunctionDecl) error {
	scope := c.current()
	name := fn.Name.Value
	if _, exists := scope.functions[name]; exists {
		return newRuntimeError(FunctionRedeclared, name, "Redeclaration of %s", name)
	}
	scope.functions[name] = fn
	return nil
}

// DeclareVariable binds name in the current scope.
func (c *Context) DeclareVariable(name string, value Value) error {
	scope := c.current()
	if _, exists := scope.variables[name]; exists {
		return newRuntimeError(VariableRedeclared, name, "Redeclaration of %s", name)
	}
	scope.variables[name] = value
	return nil
}

// LookupVariable searches from the innermost scope outwards and returns the
// value together with the scope that owns the binding.
func (c *Context) LookupVariable(name string) (Value, *Scope, error) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if v, ok := c.scopes[i].variables[name]; ok {
			return v, c.scopes[i], nil
		}
	}
	return Unset, nil, newRuntimeError(VariableUndefined, name, "%s variable is not defined.", name)
}

// LookupFunction searches from the innermost scope outwards for a function
// called name taking exactly arity parameters. A binding with another arity
// does not match and the search continues outwards. When nothing matches and
// name is println, builtin is true.
func (c *Context) LookupFunction(name string, arity int) (fn *ast.FunctionDecl, builtin bool, err error) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if f, ok := c.scopes[i].functions[name]; ok && f.Arity() == arity {
			return f, false, nil
		}
	}
	if name == config.PrintFuncName {
		return nil, true, nil
	}
	return nil, false, newRuntimeError(FunctionUndefined, name, "Undefined function %s", name)
}

// SetVariable updates name in the given scope, which is the owner returned
// by LookupVariable and not necessarily the innermost one.
func (c *Context) SetVariable(scope *Scope, name string, value int32) {
	scope.variables[name] = Int(value)
}
