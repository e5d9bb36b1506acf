package lox

// LoxCallable is anything a call expression can invoke: functions, bound
// methods, classes and natives.
type LoxCallable interface {
	Arity() int
	Call(interpreter *Interpreter, arguments []interface{}) (interface{}, error)
}
