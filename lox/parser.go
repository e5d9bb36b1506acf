package lox

const maxArguments = 255

type Parser struct {
	tokens   []*Token
	current  int
	reporter ErrorReporter
}

// NewParser expects tokens to end with an EOF token.
func NewParser(tokens []*Token, reporter ErrorReporter) *Parser {
	return &Parser{
		tokens:   tokens,
		current:  0,
		reporter: reporter,
	}
}

// Parse returns every statement that parsed cleanly. Syntax errors go to the
// reporter; the offending statement is dropped and parsing resumes at the
// next statement boundary.
func (this *Parser) Parse() []Stmt {
	var statements []Stmt
	for !this.isAtEnd() {
		if stmt := this.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration 解析文法`声明语句`, var a ='2';
func (this *Parser) declaration() (stmt Stmt) {
	defer func(parser *Parser) {
		if r := recover(); r != nil {
			if _, ok := r.(*ParseError); !ok {
				panic(r)
			}
			parser.synchronize()
			stmt = nil
		}
	}(this)
	if this.match(CLASS) {
		return this.classDeclaration()
	}
	if this.match(FUN) {
		return this.function("function")
	}
	if this.match(VAR) { //匹配`var`关键字
		return this.varDeclaration() //解析声明语句
	}
	// 如果不是声明语句,则是普通语句
	return this.statement()
}

// classDeclaration 解析class声明
func (this *Parser) classDeclaration() Stmt {
	name := this.consume(IDENTIFIER, "Expect class name.")

	var superclass *Variable
	if this.match(LESS) {
		this.consume(IDENTIFIER, "Expect superclass name.")
		superclass = NewVariable(this.previous())
	}

	this.consume(LEFT_BRACE, "Expect '{' before class body.")

	var methods []*Function
	for !this.check(RIGHT_BRACE) && !this.isAtEnd() {
		methods = append(methods, this.function("method"))
	}

	this.consume(RIGHT_BRACE, "Expect '}' after class body.")
	return NewClass(name, superclass, methods)
}

func (this *Parser) varDeclaration() Stmt {
	name := this.consume(IDENTIFIER, "Expect variable name.")
	var initializer Expr
	if this.match(EQUAL) { //带初始化表达式
		initializer = this.expression()
	}
	this.consume(SEMICOLON, "Expect ';' after variable declaration.")
	return NewVar(name, initializer)
}

// whileStatement 解析while语句
func (this *Parser) whileStatement() Stmt {
	this.consume(LEFT_PAREN, "Expect '(' after 'while'.")
	condition := this.expression()
	this.consume(RIGHT_PAREN, "Expect ')' after condition.")
	body := this.statement()

	return NewWhile(condition, body)
}

// statement 解析文法`语句`
func (this *Parser) statement() Stmt {
	if this.match(FOR) {
		return this.forStatement()
	}
	if this.match(IF) {
		return this.ifStatement()
	}
	if this.match(PRINT) {
		return this.printStatement()
	}
	if this.match(RETURN) {
		return this.returnStatement()
	}
	if this.match(WHILE) {
		return this.whileStatement()
	}
	if this.match(LEFT_BRACE) {
		return NewBlock(this.block())
	}
	return this.expressionStatement()
}

// forStatement desugars into an optional initializer and a while loop with
// the increment appended to the body.
func (this *Parser) forStatement() Stmt {
	this.consume(LEFT_PAREN, "Expect '(' after 'for'.")

	//解析初始化表达式
	var initializer Stmt
	if this.match(SEMICOLON) {
		initializer = nil
	} else if this.match(VAR) {
		initializer = this.varDeclaration()
	} else {
		initializer = this.expressionStatement()
	}

	//解析条件
	var condition Expr
	if !this.check(SEMICOLON) {
		condition = this.expression()
	}
	this.consume(SEMICOLON, "Expect ';' after loop condition.")

	//解析步长
	var increment Expr
	if !this.check(RIGHT_PAREN) {
		increment = this.expression()
	}
	this.consume(RIGHT_PAREN, "Expect ')' after for clauses.")

	body := this.statement()

	if increment != nil {
		body = NewBlock([]Stmt{body, NewExpression(increment)})
	}

	if condition == nil {
		condition = NewLiteral(true)
	}
	body = NewWhile(condition, body)

	if initializer != nil {
		body = NewBlock([]Stmt{initializer, body})
	}
	return body
}

// ifStatement 解析if语句
func (this *Parser) ifStatement() Stmt {
	this.consume(LEFT_PAREN, "Expect '(' after 'if'.")
	condition := this.expression()
	this.consume(RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := this.statement()
	var elseBranch Stmt
	if this.match(ELSE) {
		elseBranch = this.statement()
	}
	return NewIf(condition, thenBranch, elseBranch)
}

// printStatement 解析print语名
func (this *Parser) printStatement() Stmt {
	value := this.expression()
	this.consume(SEMICOLON, "Expect ';' after value.")
	return NewPrint(value)
}

// returnStatement 解析return 语句
func (this *Parser) returnStatement() Stmt {
	keyword := this.previous()
	var value Expr
	if !this.check(SEMICOLON) {
		value = this.expression()
	}
	this.consume(SEMICOLON, "Expect ';' after return value.")
	return NewReturn(keyword, value)
}

// expressionStatement 解析表达式语句
func (this *Parser) expressionStatement() Stmt {
	expr := this.expression()
	this.consume(SEMICOLON, "Expect ';' after expression.")
	return NewExpression(expr)
}

// function 解析function声明, kind is "function" or "method"
func (this *Parser) function(kind string) *Function {
	name := this.consume(IDENTIFIER, "Expect "+kind+" name.")
	this.consume(LEFT_PAREN, "Expect '(' after "+kind+" name.")
	var parameters []*Token
	if !this.check(RIGHT_PAREN) {
		for {
			if len(parameters) >= maxArguments {
				this.error(this.peek(), "Can't have more than 255 parameters.")
			}
			parameters = append(parameters, this.consume(IDENTIFIER, "Expect parameter name."))
			if !this.match(COMMA) {
				break
			}
		}
	}
	this.consume(RIGHT_PAREN, "Expect ')' after parameters.")
	this.consume(LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := this.block()
	return NewFunction(name, parameters, body)
}

// block 解析{}语句块, the opening brace is already consumed
func (this *Parser) block() []Stmt {
	var statements []Stmt
	for !this.check(RIGHT_BRACE) && !this.isAtEnd() {
		if stmt := this.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	this.consume(RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

// expression 解析文法`运算表达式`
func (this *Parser) expression() Expr {
	return this.assignment()
}

// assignment 解析赋值语句
func (this *Parser) assignment() Expr {
	expr := this.or()
	if this.match(EQUAL) {
		equals := this.previous()
		value := this.assignment()

		switch v := expr.(type) {
		case *Variable:
			return NewAssign(v.name, value)
		case *Get:
			return NewSet(v.object, v.name, value)
		}
		// reported, not thrown: the parser is not confused
		this.error(equals, "Invalid assignment target.")
	}
	return expr
}

// or 解析or运算符
func (this *Parser) or() Expr {
	expr := this.and()

	for this.match(OR) {
		operator := this.previous()
		right := this.and()
		expr = NewLogical(expr, operator, right)
	}
	return expr
}

func (this *Parser) and() Expr {
	expr := this.equality()

	for this.match(AND) {
		operator := this.previous()
		right := this.equality()
		expr = NewLogical(expr, operator, right)
	}
	return expr
}

// equality 解析==,!=后面的的表达式
func (this *Parser) equality() Expr {
	expr := this.comparison()
	for this.match(BANG_EQUAL, EQUAL_EQUAL) {
		operator := this.previous()
		right := this.comparison()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

// comparison 解析比较运算符
func (this *Parser) comparison() Expr {
	expr := this.term()
	for this.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		operator := this.previous()
		right := this.term()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

// term 解析加/减法运算符
func (this *Parser) term() Expr {
	expr := this.factor()
	for this.match(MINUS, PLUS) {
		operator := this.previous()
		right := this.factor()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

// 解析乘/除法运算符
func (this *Parser) factor() Expr {
	expr := this.unary()
	for this.match(SLASH, STAR) {
		operator := this.previous()
		right := this.unary()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

// unary 解析一元运算符
func (this *Parser) unary() Expr {
	if this.match(BANG, MINUS) {
		operator := this.previous()
		right := this.unary()
		return NewUnary(operator, right)
	}
	return this.call()
}

// call 解析函数调用 and property access, left to right
func (this *Parser) call() Expr {
	expr := this.primary()
	for {
		if this.match(LEFT_PAREN) {
			expr = this.finishCall(expr)
		} else if this.match(DOT) {
			name := this.consume(IDENTIFIER, "Expect property name after '.'.")
			expr = NewGet(expr, name)
		} else {
			break
		}
	}
	return expr
}

func (this *Parser) finishCall(callee Expr) Expr {
	var arguments []Expr
	if !this.check(RIGHT_PAREN) {
		for {
			if len(arguments) >= maxArguments {
				this.error(this.peek(), "Can't have more than 255 arguments.")
			}
			arguments = append(arguments, this.expression())
			if !this.match(COMMA) {
				break
			}
		}
	}

	paren := this.consume(RIGHT_PAREN, "Expect ')' after arguments.")
	return NewCall(callee, paren, arguments)
}

// primary 解析字面量
func (this *Parser) primary() Expr {
	if this.match(FALSE) {
		return NewLiteral(false)
	}
	if this.match(TRUE) {
		return NewLiteral(true)
	}
	if this.match(NIL) {
		return NewLiteral(nil)
	}
	if this.match(NUMBER, STRING) {
		return NewLiteral(this.previous().Literal)
	}
	if this.match(SUPER) {
		keyword := this.previous()
		this.consume(DOT, "Expect '.' after 'super'.")
		method := this.consume(IDENTIFIER, "Expect superclass method name.")
		return NewSuper(keyword, method)
	}
	if this.match(THIS) {
		return NewThis(this.previous())
	}
	if this.match(IDENTIFIER) {
		return NewVariable(this.previous())
	}
	if this.match(LEFT_PAREN) {
		expr := this.expression()
		this.consume(RIGHT_PAREN, "Expect ')' after expression.")
		return NewGrouping(expr)
	}
	panic(this.error(this.peek(), "Expect expression."))
}

// match 匹配token, 如果匹配成功,游标current向前走一步
func (this *Parser) match(types ...TokenType) bool {
	for _, ty := range types {
		if this.check(ty) {
			this.advance()
			return true
		}
	}
	return false
}

// check 检测当前游标current指向的token类型是否与ty一致
func (this *Parser) check(ty TokenType) bool {
	if this.isAtEnd() {
		return false
	}
	return this.peek().Type == ty
}

// advance 游标current往前走一步, 并返回当前token
func (this *Parser) advance() *Token {
	if !this.isAtEnd() {
		this.current++
	}
	return this.previous()
}

// isAtEnd 是否到了Token序列的末端
func (this *Parser) isAtEnd() bool {
	return this.peek().Type == EOF
}

// peek 获取当前游标current指向的token
func (this *Parser) peek() *Token {
	return this.tokens[this.current]
}

// previous 返回当前游标current的前一个token
func (this *Parser) previous() *Token {
	return this.tokens[this.current-1]
}

// consume 消耗当前等于ty的token,并前进一步
func (this *Parser) consume(ty TokenType, message string) *Token {
	if this.check(ty) {
		return this.advance()
	}
	panic(this.error(this.peek(), message))
}

// error reports a syntax error and returns it so the caller can decide
// whether to unwind to the enclosing declaration.
func (this *Parser) error(token *Token, message string) *ParseError {
	pe := NewParseError(token, message)
	this.reporter.Report(pe)
	return pe
}

// synchronize discards tokens until a statement boundary.
func (this *Parser) synchronize() {
	this.advance()

	for !this.isAtEnd() {
		if this.previous().Type == SEMICOLON {
			return
		}
		switch this.peek().Type {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}

		this.advance()
	}
}
