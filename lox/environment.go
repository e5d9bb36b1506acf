package lox

// Environment is one runtime scope. Closures hold on to it, so it lives as
// long as the longest-lived function declared inside it.
type Environment struct {
	enclosing *Environment           //作用域
	values    map[string]interface{} //变量存储空间
}

func NewEnvironment(env *Environment) *Environment {
	return &Environment{enclosing: env, values: make(map[string]interface{})}
}

// Define puts value into the local map, overwriting any previous binding
func (this *Environment) Define(name string, value interface{}) {
	this.values[name] = value
}

// Get looks the name up here and then outward
func (this *Environment) Get(name *Token) (interface{}, error) {
	if v, ok := this.values[name.Lexeme]; ok {
		return v, nil
	}
	if this.enclosing != nil {
		return this.enclosing.Get(name)
	}
	return nil, NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// GetAt reads name from the environment exactly distance hops out
func (this *Environment) GetAt(distance int, name *Token) (interface{}, error) {
	if v, ok := this.ancestor(distance).values[name.Lexeme]; ok {
		return v, nil
	}
	return nil, NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// ancestor
func (this *Environment) ancestor(distance int) *Environment {
	environment := this
	for i := 0; i < distance; i++ {
		environment = environment.enclosing
	}
	return environment
}

// Assign assign new value to an existing variable
func (this *Environment) Assign(name *Token, value interface{}) error {
	if _, ok := this.values[name.Lexeme]; ok {
		this.values[name.Lexeme] = value
		return nil
	}
	if this.enclosing != nil {
		return this.enclosing.Assign(name, value)
	}
	return NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// AssignAt
func (this *Environment) AssignAt(distance int, name *Token, value interface{}) error {
	scope := this.ancestor(distance)
	if _, ok := scope.values[name.Lexeme]; !ok {
		return NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
	}
	scope.values[name.Lexeme] = value
	return nil
}

// Enclosing returns the parent scope, nil for the globals.
func (this *Environment) Enclosing() *Environment {
	return this.enclosing
}
