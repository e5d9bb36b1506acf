package lox

// returnSignal unwinds a function body. It travels the error path of
// execute but is consumed by LoxFunction.Call and never reaches a caller
// of the interpreter.
type returnSignal struct {
	value interface{}
}

func newReturnSignal(value interface{}) *returnSignal {
	return &returnSignal{value: value}
}

func (*returnSignal) Error() string {
	return "return outside of a function call"
}
