package lox

func NewLoxFunction(decl *Function, closure *Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{declaration: decl, closure: closure, isInitializer: isInitializer}
}

type LoxFunction struct {
	declaration   *Function
	closure       *Environment //闭包环境
	isInitializer bool
}

// Bind wraps the closure in a scope holding "this". The copy shares the
// declaration and outer closure with the unbound method.
func (this *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	environment := NewEnvironment(this.closure)
	environment.Define("this", instance)
	return NewLoxFunction(this.declaration, environment, this.isInitializer)
}

func (this *LoxFunction) Arity() int {
	return len(this.declaration.params)
}

func (this *LoxFunction) Call(interpreter *Interpreter, arguments []interface{}) (interface{}, error) {
	env := NewEnvironment(this.closure) //parent 指向创造函数的环境
	for i, param := range this.declaration.params {
		env.Define(param.Lexeme, arguments[i])
	}

	var value interface{}
	err := interpreter.executeBlock(this.declaration.body, env)
	if ret, ok := err.(*returnSignal); ok {
		value, err = ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	if this.isInitializer {
		return this.closure.values["this"], nil
	}
	return value, nil
}

func (this *LoxFunction) String() string {
	return "<fn " + this.declaration.name.Lexeme + ">"
}
