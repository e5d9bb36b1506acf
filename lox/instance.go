package lox

func NewLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: map[string]interface{}{}}
}

type LoxInstance struct {
	class  *LoxClass
	fields map[string]interface{}
}

// Get prefers fields over methods, so a field can shadow a method.
func (this *LoxInstance) Get(name *Token) (interface{}, error) {
	if value, ok := this.fields[name.Lexeme]; ok {
		return value, nil
	}
	if method := this.class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(this), nil
	}
	return nil, NewRuntimeError(name, "Undefined property '"+name.Lexeme+"'.")
}

func (this *LoxInstance) Set(name *Token, value interface{}) {
	this.fields[name.Lexeme] = value
}

// Class is the class the instance was created from.
func (this *LoxInstance) Class() *LoxClass {
	return this.class
}

func (this *LoxInstance) String() string {
	return this.class.Name() + " instance"
}
