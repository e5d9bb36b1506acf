package lox

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, source string) (*Interpreter, []Stmt, ErrorList) {
	t.Helper()
	statements, errs := parseSource(t, source)
	require.False(t, errs.HasErrors(), "parse errors: %v", errs)
	interpreter := NewInterpreter(&bytes.Buffer{}, 0)
	NewResolver(interpreter, &errs).Resolve(statements)
	return interpreter, statements, errs
}

// distances lists the resolved hop count of every variable-like node named
// name, in traversal order; -1 marks a global.
func distances(interpreter *Interpreter, statements []Stmt, name string) []int {
	var got []int
	var walkExpr func(Expr)
	var walkStmt func(Stmt)
	record := func(expr Expr, lexeme string) {
		if lexeme != name {
			return
		}
		if d, ok := interpreter.locals[expr]; ok {
			got = append(got, d)
		} else {
			got = append(got, -1)
		}
	}
	walkExpr = func(expr Expr) {
		switch e := expr.(type) {
		case *Variable:
			record(e, e.name.Lexeme)
		case *Assign:
			walkExpr(e.value)
			record(e, e.name.Lexeme)
		case *This:
			record(e, "this")
		case *Super:
			record(e, "super")
		case *Binary:
			walkExpr(e.left)
			walkExpr(e.right)
		case *Logical:
			walkExpr(e.left)
			walkExpr(e.right)
		case *Unary:
			walkExpr(e.right)
		case *Grouping:
			walkExpr(e.expression)
		case *Call:
			walkExpr(e.callee)
			for _, a := range e.arguments {
				walkExpr(a)
			}
		case *Get:
			walkExpr(e.object)
		case *Set:
			walkExpr(e.value)
			walkExpr(e.object)
		}
	}
	walkStmt = func(stmt Stmt) {
		switch s := stmt.(type) {
		case *Block:
			for _, st := range s.statements {
				walkStmt(st)
			}
		case *Var:
			if s.initializer != nil {
				walkExpr(s.initializer)
			}
		case *Expression:
			walkExpr(s.expression)
		case *Print:
			walkExpr(s.expression)
		case *Return:
			if s.value != nil {
				walkExpr(s.value)
			}
		case *Function:
			for _, st := range s.body {
				walkStmt(st)
			}
		case *Class:
			for _, m := range s.methods {
				walkStmt(m)
			}
		case *If:
			walkExpr(s.condition)
			walkStmt(s.thenBranch)
			if s.elseBranch != nil {
				walkStmt(s.elseBranch)
			}
		case *While:
			walkExpr(s.condition)
			walkStmt(s.body)
		}
	}
	for _, stmt := range statements {
		walkStmt(stmt)
	}
	return got
}

func TestResolveDistances(t *testing.T) {
	tests := []struct {
		name   string
		source string
		ident  string
		want   []int
	}{
		{"global", `var a = 1; print a;`, "a", []int{-1}},
		{"block local", `{ var a = 1; print a; }`, "a", []int{0}},
		{"outer block", `{ var a = 1; { { print a; } } }`, "a", []int{2}},
		{"shadowed initializer reads outer", `{ var a = 1; { var a = a + 1; print a; } }`, "a", []int{1, 0}},
		{"closure capture", `fun f() { var i = 0; fun g() { i = i + 1; return i; } }`, "i", []int{1, 1, 1}},
		{"parameter", `fun f(x) { { print x; } }`, "x", []int{1}},
		{"recursive global function", `fun f() { f(); }`, "f", []int{-1}},
		{"recursive local function", `{ fun f() { f(); } }`, "f", []int{1}},
		{"this in method", `class A { m() { return this; } }`, "this", []int{1}},
		{"super in method", `class A {} class B < A { m() { return super.m; } }`, "super", []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interpreter, statements, errs := resolveSource(t, tt.source)
			require.False(t, errs.HasErrors(), "resolve errors: %v", errs)
			got := distances(interpreter, statements, tt.ident)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s\nlocals: %s", diff, spew.Sdump(interpreter.locals))
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"own initializer", `{ var a = a; }`,
			[]string{"[line 1] Error at 'a': Can't read local variable in its own initializer."}},
		{"own initializer in function", `fun f() { var x = x; }`,
			[]string{"[line 1] Error at 'x': Can't read local variable in its own initializer."}},
		{"duplicate local", `{ var a = 1; var a = 2; }`,
			[]string{"[line 1] Error at 'a': Already a variable with this name in this scope."}},
		{"duplicate parameter", `fun f(a, a) {}`,
			[]string{"[line 1] Error at 'a': Already a variable with this name in this scope."}},
		{"inherit from itself", `class A < A {}`,
			[]string{"[line 1] Error at 'A': A class can't inherit from itself."}},
		{"top-level return", `return;`,
			[]string{"[line 1] Error at 'return': Can't return from top-level code."}},
		{"return value from init", `class A { init() { return 1; } }`,
			[]string{"[line 1] Error at 'return': Can't return a value from an initializer."}},
		{"this outside class", `print this;`,
			[]string{"[line 1] Error at 'this': Can't use 'this' outside of a class."}},
		{"this in plain function", `fun f() { return this; }`,
			[]string{"[line 1] Error at 'this': Can't use 'this' outside of a class."}},
		{"super outside class", `super.m();`,
			[]string{"[line 1] Error at 'super': Can't use 'super' outside of a class."}},
		{"super without superclass", `class A { m() { super.m(); } }`,
			[]string{"[line 1] Error at 'super': Can't use 'super' in a class with no superclass."}},
		{"keeps going", "{ var a = a; }\nreturn;\nprint this;", []string{
			"[line 1] Error at 'a': Can't read local variable in its own initializer.",
			"[line 2] Error at 'return': Can't return from top-level code.",
			"[line 3] Error at 'this': Can't use 'this' outside of a class.",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, errs := resolveSource(t, tt.source)
			if diff := cmp.Diff(tt.want, errorTexts(errs)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveAllowsGlobalRedeclaration(t *testing.T) {
	_, _, errs := resolveSource(t, `var a = 1; var a = a; print a;`)
	assert.False(t, errs.HasErrors())
}

func TestResolveInitializerSeesOuterBinding(t *testing.T) {
	interpreter, statements, errs := resolveSource(t, `var a = 1; { var a = a + 1; print a; }`)
	require.False(t, errs.HasErrors(), "unexpected errors: %v", errs)
	// the initializer's a is the global, the printed one the block's
	assert.Equal(t, []int{-1, 0}, distances(interpreter, statements, "a"))
}

func TestResolveInitializerSeesEarlierSessionGlobal(t *testing.T) {
	// a REPL line declared b earlier
	interpreter := NewInterpreter(&bytes.Buffer{}, 0)
	interpreter.Globals().Define("b", 2.0)

	statements, errs := parseSource(t, `{ var b = b; }`)
	require.False(t, errs.HasErrors())
	NewResolver(interpreter, &errs).Resolve(statements)
	assert.False(t, errs.HasErrors())
}

func TestResolveRestoresContext(t *testing.T) {
	// after a class body, this is illegal again; after a function, return is
	_, _, errs := resolveSource(t, `class A { m() { return this; } } fun f() { return 1; } print this; return;`)
	assert.Equal(t, []string{
		"[line 1] Error at 'this': Can't use 'this' outside of a class.",
		"[line 1] Error at 'return': Can't return from top-level code.",
	}, errorTexts(errs))
}

func TestSelfInitializerFailsBeforeExecution(t *testing.T) {
	lines, errText, err := run(t, `print "side effect"; { var a = a; }`)
	require.ErrorIs(t, err, ErrStatic)
	assert.Empty(t, lines)
	assert.Contains(t, errText, "Can't read local variable in its own initializer.")
}
