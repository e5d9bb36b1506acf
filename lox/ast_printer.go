package lox

//go:generate go run ./tool/generate_ast.go .

import (
	"strconv"
	"strings"
)

// PrintExpr renders expr as a parenthesized prefix form, e.g.
// (* (- 123) (group 45.67)).
func PrintExpr(expr Expr) string {
	switch expr := expr.(type) {
	case *Assign:
		return parenthesize("= "+expr.name.Lexeme, expr.value)
	case *Binary:
		return parenthesize(expr.operator.Lexeme, expr.left, expr.right)
	case *Call:
		return parenthesize("call", append([]Expr{expr.callee}, expr.arguments...)...)
	case *Get:
		return parenthesize(". "+expr.name.Lexeme, expr.object)
	case *Grouping:
		return parenthesize("group", expr.expression)
	case *Literal:
		return literalText(expr.value, false)
	case *Logical:
		return parenthesize(expr.operator.Lexeme, expr.left, expr.right)
	case *Set:
		return parenthesize("= "+expr.name.Lexeme, expr.object, expr.value)
	case *Super:
		return "(super " + expr.method.Lexeme + ")"
	case *This:
		return "this"
	case *Unary:
		return parenthesize(expr.operator.Lexeme, expr.right)
	case *Variable:
		return expr.name.Lexeme
	}
	return "?"
}

// PrintStmt renders stmt in the same prefix form as PrintExpr.
func PrintStmt(stmt Stmt) string {
	var bs strings.Builder
	switch stmt := stmt.(type) {
	case *Block:
		bs.WriteString("(block")
		for _, statement := range stmt.statements {
			bs.WriteString(" " + PrintStmt(statement))
		}
		bs.WriteString(")")
	case *Class:
		bs.WriteString("(class " + stmt.name.Lexeme)
		if stmt.superclass != nil {
			bs.WriteString(" < " + PrintExpr(stmt.superclass))
		}
		for _, method := range stmt.methods {
			bs.WriteString(" " + PrintStmt(method))
		}
		bs.WriteString(")")
	case *Expression:
		return parenthesize(";", stmt.expression)
	case *Function:
		bs.WriteString("(fun " + stmt.name.Lexeme + " (")
		for i, param := range stmt.params {
			if i > 0 {
				bs.WriteString(" ")
			}
			bs.WriteString(param.Lexeme)
		}
		bs.WriteString(")")
		for _, body := range stmt.body {
			bs.WriteString(" " + PrintStmt(body))
		}
		bs.WriteString(")")
	case *If:
		bs.WriteString("(if " + PrintExpr(stmt.condition) + " " + PrintStmt(stmt.thenBranch))
		if stmt.elseBranch != nil {
			bs.WriteString(" " + PrintStmt(stmt.elseBranch))
		}
		bs.WriteString(")")
	case *Print:
		return parenthesize("print", stmt.expression)
	case *Return:
		if stmt.value == nil {
			return "(return)"
		}
		return parenthesize("return", stmt.value)
	case *Var:
		if stmt.initializer == nil {
			return "(var " + stmt.name.Lexeme + ")"
		}
		return parenthesize("var "+stmt.name.Lexeme, stmt.initializer)
	case *While:
		return "(while " + PrintExpr(stmt.condition) + " " + PrintStmt(stmt.body) + ")"
	default:
		return "?"
	}
	return bs.String()
}

// FormatExpr renders expr back to Lox source. Groupings are kept as
// written, so parsing the result yields the same tree.
func FormatExpr(expr Expr) string {
	switch expr := expr.(type) {
	case *Assign:
		return expr.name.Lexeme + " = " + FormatExpr(expr.value)
	case *Binary:
		return FormatExpr(expr.left) + " " + expr.operator.Lexeme + " " + FormatExpr(expr.right)
	case *Call:
		args := make([]string, len(expr.arguments))
		for i, argument := range expr.arguments {
			args[i] = FormatExpr(argument)
		}
		return FormatExpr(expr.callee) + "(" + strings.Join(args, ", ") + ")"
	case *Get:
		return FormatExpr(expr.object) + "." + expr.name.Lexeme
	case *Grouping:
		return "(" + FormatExpr(expr.expression) + ")"
	case *Literal:
		return literalText(expr.value, true)
	case *Logical:
		return FormatExpr(expr.left) + " " + expr.operator.Lexeme + " " + FormatExpr(expr.right)
	case *Set:
		return FormatExpr(expr.object) + "." + expr.name.Lexeme + " = " + FormatExpr(expr.value)
	case *Super:
		return "super." + expr.method.Lexeme
	case *This:
		return "this"
	case *Unary:
		return expr.operator.Lexeme + FormatExpr(expr.right)
	case *Variable:
		return expr.name.Lexeme
	}
	return "?"
}

func parenthesize(name string, exprs ...Expr) string {
	var bs strings.Builder
	bs.WriteString("(")
	bs.WriteString(name)
	for _, expr := range exprs {
		bs.WriteString(" ")
		bs.WriteString(PrintExpr(expr))
	}
	bs.WriteString(")")
	return bs.String()
}

func literalText(value interface{}, quote bool) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return FloatVal(v)
	case bool:
		return strconv.FormatBool(v)
	case string:
		if quote {
			return `"` + v + `"`
		}
		return v
	}
	return "?"
}
