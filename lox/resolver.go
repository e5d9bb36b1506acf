package lox

type FunctionType int

type ClassType int

const (
	FT_NONE FunctionType = iota
	FT_FUNCTION
	FT_INITIALIZER
	FT_METHOD
)

const (
	CT_NONE ClassType = iota
	CT_CLASS
	CT_SUBCLASS
)

// NewResolver returns a resolver that records binding distances into
// interpreter and reports static errors to reporter.
func NewResolver(interpreter *Interpreter, reporter ErrorReporter) *Resolver {
	return &Resolver{
		interpreter:     interpreter,
		reporter:        reporter,
		scopes:          NewStack[map[string]bool](),
		globals:         map[string]bool{},
		currentFunction: FT_NONE,
		currentClass:    CT_NONE,
	}
}

// Resolver is the static pass between parsing and execution. Each scope
// maps a name to whether its initializer has finished (false while the
// name is declared but not yet defined). The global scope is not on the
// stack; globals only records the names declared at top level so far.
type Resolver struct {
	interpreter     *Interpreter
	reporter        ErrorReporter
	scopes          *Stack[map[string]bool]
	globals         map[string]bool
	currentFunction FunctionType
	currentClass    ClassType
}

// Resolve walks the statements once. It never stops early; every static
// error is reported.
func (this *Resolver) Resolve(statements []Stmt) {
	for _, statement := range statements {
		this.resolveStmt(statement)
	}
}

func (this *Resolver) resolveStmt(stmt Stmt) {
	switch stmt := stmt.(type) {
	case *Block:
		this.beginScope()
		this.Resolve(stmt.statements)
		this.endScope()
	case *Var:
		this.declare(stmt.name)
		if stmt.initializer != nil {
			this.resolveExpr(stmt.initializer)
		}
		this.define(stmt.name)
	case *Class:
		this.resolveClass(stmt)
	case *Function:
		this.declare(stmt.name)
		this.define(stmt.name)
		this.resolveFunction(stmt, FT_FUNCTION)
	case *Expression:
		this.resolveExpr(stmt.expression)
	case *If:
		this.resolveExpr(stmt.condition)
		this.resolveStmt(stmt.thenBranch)
		if stmt.elseBranch != nil {
			this.resolveStmt(stmt.elseBranch)
		}
	case *Print:
		this.resolveExpr(stmt.expression)
	case *Return:
		if this.currentFunction == FT_NONE {
			this.error(stmt.keyword, "Can't return from top-level code.")
		}
		if stmt.value != nil {
			if this.currentFunction == FT_INITIALIZER {
				this.error(stmt.keyword, "Can't return a value from an initializer.")
			}
			this.resolveExpr(stmt.value)
		}
	case *While:
		this.resolveExpr(stmt.condition)
		this.resolveStmt(stmt.body)
	default:
		panic("resolver: unexpected statement type")
	}
}

func (this *Resolver) resolveExpr(expr Expr) {
	switch expr := expr.(type) {
	case *Variable:
		if !this.scopes.IsEmpty() {
			if defined, ok := this.scopes.Top()[expr.name.Lexeme]; ok && !defined {
				// inside its own initializer the name still means the
				// outer binding, if there is one
				if !this.resolveShadowed(expr, expr.name) {
					this.error(expr.name, "Can't read local variable in its own initializer.")
				}
				return
			}
		}
		this.resolveLocal(expr, expr.name)
	case *Assign:
		this.resolveExpr(expr.value)
		this.resolveLocal(expr, expr.name)
	case *Binary:
		this.resolveExpr(expr.left)
		this.resolveExpr(expr.right)
	case *Call:
		this.resolveExpr(expr.callee)
		for _, argument := range expr.arguments {
			this.resolveExpr(argument)
		}
	case *Get:
		this.resolveExpr(expr.object)
	case *Grouping:
		this.resolveExpr(expr.expression)
	case *Literal:
	case *Logical:
		this.resolveExpr(expr.left)
		this.resolveExpr(expr.right)
	case *Set:
		this.resolveExpr(expr.value)
		this.resolveExpr(expr.object)
	case *Super:
		if this.currentClass == CT_NONE {
			this.error(expr.keyword, "Can't use 'super' outside of a class.")
		} else if this.currentClass != CT_SUBCLASS {
			this.error(expr.keyword, "Can't use 'super' in a class with no superclass.")
		}
		this.resolveLocal(expr, expr.keyword)
	case *This:
		if this.currentClass == CT_NONE {
			this.error(expr.keyword, "Can't use 'this' outside of a class.")
			return
		}
		this.resolveLocal(expr, expr.keyword)
	case *Unary:
		this.resolveExpr(expr.right)
	default:
		panic("resolver: unexpected expression type")
	}
}

func (this *Resolver) beginScope() {
	this.scopes.Push(map[string]bool{})
}

func (this *Resolver) endScope() {
	_, _ = this.scopes.Pop()
}

func (this *Resolver) declare(name *Token) {
	if this.scopes.IsEmpty() {
		this.globals[name.Lexeme] = true
		return
	}
	scope := this.scopes.Top()
	if _, ok := scope[name.Lexeme]; ok {
		this.error(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (this *Resolver) define(name *Token) {
	if this.scopes.IsEmpty() {
		return
	}
	this.scopes.Top()[name.Lexeme] = true
}

// resolveLocal records how many scopes out the name lives. Names found
// nowhere are left for the globals.
func (this *Resolver) resolveLocal(expr Expr, name *Token) {
	for i := this.scopes.Size() - 1; i >= 0; i-- {
		if scope, err := this.scopes.Get(i); err == nil {
			if _, ok := scope[name.Lexeme]; ok {
				this.interpreter.Resolve(expr, this.scopes.Size()-1-i)
				return
			}
		}
	}
}

// resolveShadowed resolves name past the innermost scope. It reports
// whether an enclosing local or a known global binds the name.
func (this *Resolver) resolveShadowed(expr Expr, name *Token) bool {
	for i := this.scopes.Size() - 2; i >= 0; i-- {
		if scope, err := this.scopes.Get(i); err == nil {
			if _, ok := scope[name.Lexeme]; ok {
				this.interpreter.Resolve(expr, this.scopes.Size()-1-i)
				return true
			}
		}
	}
	if this.globals[name.Lexeme] {
		return true
	}
	_, ok := this.interpreter.globals.values[name.Lexeme]
	return ok
}

func (this *Resolver) resolveClass(stmt *Class) {
	enclosingClass := this.currentClass
	this.currentClass = CT_CLASS

	this.declare(stmt.name)
	this.define(stmt.name)

	if stmt.superclass != nil && stmt.name.Lexeme == stmt.superclass.name.Lexeme {
		this.error(stmt.superclass.name, "A class can't inherit from itself.")
	}

	if stmt.superclass != nil {
		this.currentClass = CT_SUBCLASS
		this.resolveExpr(stmt.superclass)

		this.beginScope()
		this.scopes.Top()["super"] = true
	}

	this.beginScope()
	this.scopes.Top()["this"] = true
	for _, method := range stmt.methods {
		declaration := FT_METHOD
		if method.name.Lexeme == "init" {
			declaration = FT_INITIALIZER
		}
		this.resolveFunction(method, declaration)
	}
	this.endScope()

	if stmt.superclass != nil {
		this.endScope()
	}
	this.currentClass = enclosingClass
}

func (this *Resolver) resolveFunction(function *Function, ft FunctionType) {
	enclosingFunction := this.currentFunction
	this.currentFunction = ft

	this.beginScope()
	for _, param := range function.params {
		this.declare(param)
		this.define(param)
	}
	this.Resolve(function.body)
	this.endScope()

	this.currentFunction = enclosingFunction
}

func (this *Resolver) error(token *Token, message string) {
	this.reporter.Report(NewResolveError(token, message))
}
