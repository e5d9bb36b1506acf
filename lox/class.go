package lox

func NewLoxClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{name: name, superclass: superclass, methods: methods}
}

type LoxClass struct {
	name       string
	methods    map[string]*LoxFunction
	superclass *LoxClass
}

// FindMethod walks the superclass chain, most derived first.
func (this *LoxClass) FindMethod(name string) *LoxFunction {
	for class := this; class != nil; class = class.superclass {
		if method, ok := class.methods[name]; ok {
			return method
		}
	}
	return nil
}

// Call instantiates the class and runs the nearest init with the
// arguments. The instance is the result whatever init returns.
func (this *LoxClass) Call(interpreter *Interpreter, arguments []interface{}) (interface{}, error) {
	instance := NewLoxInstance(this)
	if initializer := this.FindMethod("init"); initializer != nil {
		if _, err := initializer.Bind(instance).Call(interpreter, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (this *LoxClass) Arity() int {
	initializer := this.FindMethod("init")
	if initializer == nil {
		return 0
	}
	return initializer.Arity()
}

func (this *LoxClass) Name() string {
	return this.name
}

func (this *LoxClass) Superclass() *LoxClass {
	return this.superclass
}

func (this *LoxClass) String() string {
	return this.name
}
