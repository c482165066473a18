package evaluator

import "strconv"

// Value is an optional int32. The zero Value is unset: a variable that was
// declared without an initializer.
type Value struct {
	v   int32
	set bool
}

// Unset is the value of a declared but uninitialized variable.
var Unset = Value{}

func Int(v int32) Value { return Value{v: v, set: true} }

// Int returns the integer and whether the value is set.
func (v Value) Int() (int32, bool) { return v.v, v.set }

func (v Value) IsSet() bool { return v.set }

func (v Value) String() string {
	if !v.set {
		return "<unset>"
	}
	return strconv.FormatInt(int64(v.v), 10)
}

// Result is produced by every evaluation step. Returning is true only on the
// path from a return statement up to the enclosing function call.
type Result struct {
	Value     Value
	Returning bool
}

var none = Result{}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int32) bool {
	return i != 0
}
