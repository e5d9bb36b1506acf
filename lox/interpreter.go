package lox

import (
	"fmt"
	"io"
	"strconv"
)

// DefaultMaxCallDepth bounds nested Lox calls before "Stack overflow.".
const DefaultMaxCallDepth = 4096

type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[Expr]int
	out         io.Writer
	depth       int
	maxDepth    int
}

// NewInterpreter returns an interpreter printing to out. A maxDepth of zero
// or less selects DefaultMaxCallDepth.
func NewInterpreter(out io.Writer, maxDepth int) *Interpreter {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxCallDepth
	}
	globals := NewEnvironment(nil)
	/**
	 * 注册内置函数
	 */
	globals.Define("clock", NewClock())

	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      map[Expr]int{},
		out:         out,
		maxDepth:    maxDepth,
	}
}

// Globals is the outermost environment, shared by every Interpret call.
func (this *Interpreter) Globals() *Environment {
	return this.globals
}

// Interpret runs the statements in order and stops at the first runtime
// error, which it returns. Globals defined before the error persist.
func (this *Interpreter) Interpret(statements []Stmt) error {
	for _, statement := range statements {
		if err := this.execute(statement); err != nil {
			return err
		}
	}
	return nil
}

// Resolve records that expr refers to a binding depth scopes out. Called by
// the resolver only.
func (this *Interpreter) Resolve(expr Expr, depth int) {
	this.locals[expr] = depth
}

// execute
func (this *Interpreter) execute(stmt Stmt) error {
	switch stmt := stmt.(type) {
	case *Block:
		return this.visitBlockStmt(stmt)
	case *Class:
		return this.visitClassStmt(stmt)
	case *Expression:
		return this.visitExpressionStmt(stmt)
	case *Function:
		return this.visitFunctionStmt(stmt)
	case *If:
		return this.visitIfStmt(stmt)
	case *Print:
		return this.visitPrintStmt(stmt)
	case *Return:
		return this.visitReturnStmt(stmt)
	case *Var:
		return this.visitVarStmt(stmt)
	case *While:
		return this.visitWhileStmt(stmt)
	}
	panic(fmt.Sprintf("interpreter: unexpected statement %T", stmt))
}

func (this *Interpreter) evaluate(expr Expr) (interface{}, error) {
	switch expr := expr.(type) {
	case *Assign:
		return this.visitAssignExpr(expr)
	case *Binary:
		return this.visitBinaryExpr(expr)
	case *Call:
		return this.visitCallExpr(expr)
	case *Get:
		return this.visitGetExpr(expr)
	case *Grouping:
		return this.evaluate(expr.expression)
	case *Literal:
		return expr.value, nil
	case *Logical:
		return this.visitLogicalExpr(expr)
	case *Set:
		return this.visitSetExpr(expr)
	case *Super:
		return this.visitSuperExpr(expr)
	case *This:
		return this.lookUpVariable(expr.keyword, expr)
	case *Unary:
		return this.visitUnaryExpr(expr)
	case *Variable:
		return this.lookUpVariable(expr.name, expr)
	}
	panic(fmt.Sprintf("interpreter: unexpected expression %T", expr))
}

// executeBlock runs statements in env and restores the previous
// environment on every exit, including errors and returns.
func (this *Interpreter) executeBlock(statements []Stmt, env *Environment) error {
	previous := this.environment
	defer func() {
		this.environment = previous
	}()
	this.environment = env
	for _, statement := range statements {
		if err := this.execute(statement); err != nil {
			return err
		}
	}
	return nil
}

// visitBlockStmt
func (this *Interpreter) visitBlockStmt(stmt *Block) error {
	return this.executeBlock(stmt.statements, NewEnvironment(this.environment))
}

// visitClassStmt
func (this *Interpreter) visitClassStmt(stmt *Class) error {
	var superclass *LoxClass
	if stmt.superclass != nil {
		value, err := this.evaluate(stmt.superclass)
		if err != nil {
			return err
		}
		class, ok := value.(*LoxClass)
		if !ok {
			return NewRuntimeError(stmt.superclass.name, "Superclass must be a class.")
		}
		superclass = class
	}

	this.environment.Define(stmt.name.Lexeme, nil)

	// methods of a subclass close over a scope holding "super"
	closure := this.environment
	if superclass != nil {
		closure = NewEnvironment(this.environment)
		closure.Define("super", superclass)
	}

	methods := map[string]*LoxFunction{}
	for _, method := range stmt.methods {
		methods[method.name.Lexeme] = NewLoxFunction(method, closure, method.name.Lexeme == "init")
	}

	class := NewLoxClass(stmt.name.Lexeme, superclass, methods)
	return this.environment.Assign(stmt.name, class)
}

func (this *Interpreter) visitExpressionStmt(stmt *Expression) error {
	_, err := this.evaluate(stmt.expression)
	return err
}

func (this *Interpreter) visitFunctionStmt(stmt *Function) error {
	function := NewLoxFunction(stmt, this.environment, false)
	this.environment.Define(stmt.name.Lexeme, function)
	return nil
}

func (this *Interpreter) visitIfStmt(stmt *If) error {
	condition, err := this.evaluate(stmt.condition)
	if err != nil {
		return err
	}
	if isTruthy(condition) {
		return this.execute(stmt.thenBranch)
	} else if stmt.elseBranch != nil {
		return this.execute(stmt.elseBranch)
	}
	return nil
}

func (this *Interpreter) visitPrintStmt(stmt *Print) error {
	value, err := this.evaluate(stmt.expression)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(this.out, stringify(value))
	return err
}

func (this *Interpreter) visitReturnStmt(stmt *Return) error {
	var value interface{}
	if stmt.value != nil {
		var err error
		if value, err = this.evaluate(stmt.value); err != nil {
			return err
		}
	}
	return newReturnSignal(value)
}

func (this *Interpreter) visitVarStmt(stmt *Var) error {
	var value interface{}
	if stmt.initializer != nil {
		var err error
		if value, err = this.evaluate(stmt.initializer); err != nil {
			return err
		}
	}
	this.environment.Define(stmt.name.Lexeme, value)
	return nil
}

func (this *Interpreter) visitWhileStmt(stmt *While) error {
	for {
		condition, err := this.evaluate(stmt.condition)
		if err != nil {
			return err
		}
		if !isTruthy(condition) {
			return nil
		}
		if err := this.execute(stmt.body); err != nil {
			return err
		}
	}
}

func (this *Interpreter) visitAssignExpr(expr *Assign) (interface{}, error) {
	value, err := this.evaluate(expr.value)
	if err != nil {
		return nil, err
	}

	if distance, ok := this.locals[expr]; ok {
		err = this.environment.AssignAt(distance, expr.name, value)
	} else {
		err = this.globals.Assign(expr.name, value)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// visitBinaryExpr evaluates both operands left to right before checking
// their kinds.
func (this *Interpreter) visitBinaryExpr(expr *Binary) (interface{}, error) {
	left, err := this.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := this.evaluate(expr.right)
	if err != nil {
		return nil, err
	}

	switch expr.operator.Type {
	case BANG_EQUAL:
		return !isEqual(left, right), nil
	case EQUAL_EQUAL:
		return isEqual(left, right), nil
	case PLUS:
		v1, ok1 := left.(float64)
		v2, ok2 := right.(float64)
		if ok1 && ok2 {
			return v1 + v2, nil
		}

		s1, ok1 := left.(string)
		s2, ok2 := right.(string)
		if ok1 && ok2 {
			return s1 + s2, nil
		}
		return nil, NewRuntimeError(expr.operator, "Operands must be two numbers or two strings.")
	}

	v1, v2, err := checkNumberOperands(expr.operator, left, right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.Type {
	case GREATER:
		return v1 > v2, nil
	case GREATER_EQUAL:
		return v1 >= v2, nil
	case LESS:
		return v1 < v2, nil
	case LESS_EQUAL:
		return v1 <= v2, nil
	case MINUS:
		return v1 - v2, nil
	case SLASH:
		return v1 / v2, nil
	case STAR:
		return v1 * v2, nil
	}
	panic("interpreter: unexpected binary operator " + expr.operator.Lexeme)
}

func (this *Interpreter) visitCallExpr(expr *Call) (interface{}, error) {
	callee, err := this.evaluate(expr.callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, 0, len(expr.arguments))
	for _, argument := range expr.arguments {
		value, err := this.evaluate(argument)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, value)
	}

	function, ok := callee.(LoxCallable)
	if !ok {
		return nil, NewRuntimeError(expr.paren, "Can only call functions and classes.")
	}
	if len(arguments) != function.Arity() {
		return nil, NewRuntimeError(expr.paren, "Expected "+strconv.Itoa(function.Arity())+
			" arguments but got "+strconv.Itoa(len(arguments))+".")
	}

	if this.depth >= this.maxDepth {
		return nil, NewRuntimeError(expr.paren, "Stack overflow.")
	}
	this.depth++
	defer func() {
		this.depth--
	}()
	return function.Call(this, arguments)
}

func (this *Interpreter) visitGetExpr(expr *Get) (interface{}, error) {
	object, err := this.evaluate(expr.object)
	if err != nil {
		return nil, err
	}
	if instance, ok := object.(*LoxInstance); ok {
		return instance.Get(expr.name)
	}
	return nil, NewRuntimeError(expr.name, "Only instances have properties.")
}

// visitLogicalExpr yields the operand that decided the result
func (this *Interpreter) visitLogicalExpr(expr *Logical) (interface{}, error) {
	left, err := this.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	if expr.operator.Type == OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return this.evaluate(expr.right)
}

// visitSetExpr
func (this *Interpreter) visitSetExpr(expr *Set) (interface{}, error) {
	object, err := this.evaluate(expr.object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*LoxInstance)
	if !ok {
		return nil, NewRuntimeError(expr.name, "Only instances have fields.")
	}
	value, err := this.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	instance.Set(expr.name, value)
	return value, nil
}

// visitSuperExpr looks the method up starting at the superclass captured
// when the class was declared, so it does not depend on the runtime class
// of "this". "this" lives one scope inside the "super" scope.
func (this *Interpreter) visitSuperExpr(expr *Super) (interface{}, error) {
	distance := this.locals[expr]
	superclass, _ := this.environment.ancestor(distance).values["super"].(*LoxClass)
	object, _ := this.environment.ancestor(distance - 1).values["this"].(*LoxInstance)

	method := superclass.FindMethod(expr.method.Lexeme)
	if method == nil {
		return nil, NewRuntimeError(expr.method, "Undefined property '"+expr.method.Lexeme+"'.")
	}
	return method.Bind(object), nil
}

// visitUnaryExpr
func (this *Interpreter) visitUnaryExpr(expr *Unary) (interface{}, error) {
	right, err := this.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.Type {
	case MINUS:
		value, ok := right.(float64)
		if !ok {
			return nil, NewRuntimeError(expr.operator, "Operand must be a number.")
		}
		return -value, nil
	case BANG:
		return !isTruthy(right), nil
	}
	panic("interpreter: unexpected unary operator " + expr.operator.Lexeme)
}

func (this *Interpreter) lookUpVariable(name *Token, expr Expr) (interface{}, error) {
	if distance, ok := this.locals[expr]; ok {
		return this.environment.GetAt(distance, name)
	}
	return this.globals.Get(name)
}

// isTruthy: nil and false are falsey, everything else is truthy
func isTruthy(obj interface{}) bool {
	if obj == nil {
		return false
	}
	if v, ok := obj.(bool); ok {
		return v
	}
	return true
}

// isEqual never fails; values of different kinds are never equal
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		return false
	}
	return a == b
}

func checkNumberOperands(operator *Token, left, right interface{}) (float64, float64, error) {
	v1, ok1 := left.(float64)
	v2, ok2 := right.(float64)
	if ok1 && ok2 {
		return v1, v2, nil
	}
	return 0, 0, NewRuntimeError(operator, "Operands must be numbers.")
}

// stringify renders a value for print
func stringify(obj interface{}) string {
	switch v := obj.(type) {
	case nil:
		return "nil"
	case float64:
		return FloatVal(v)
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprintf("%v", obj)
}
