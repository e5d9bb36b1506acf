package lox

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, source string) ([]Stmt, ErrorList) {
	t.Helper()
	var errs ErrorList
	tokens := NewScanner(source, &errs).ScanTokens()
	require.False(t, errs.HasErrors(), "scan errors: %v", errs)
	return NewParser(tokens, &errs).Parse(), errs
}

func parseExpr(t *testing.T, source string) Expr {
	t.Helper()
	statements, errs := parseSource(t, source+";")
	require.False(t, errs.HasErrors(), "parse errors: %v", errs)
	require.Len(t, statements, 1)
	stmt, ok := statements[0].(*Expression)
	require.True(t, ok, "want expression statement, got %T", statements[0])
	return stmt.expression
}

func errorTexts(errs ErrorList) []string {
	var texts []string
	for _, err := range errs {
		texts = append(texts, err.Error())
	}
	return texts
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"a or b and c", "(or a (and b c))"},
		{"a or b or c", "(or (or a b) c)"},
		{"1 < 2 == 3 >= 4", "(== (< 1 2) (>= 3 4))"},
		{"!-x", "(! (- x))"},
		{"a = b = c", "(= a (= b c))"},
		{"a.b.c = 1", "(= c (. b a) 1)"},
		{"f(a)(b).x(c)", "(call (. x (call (call f a) b)) c)"},
		{"f()", "(call f)"},
		{`"s" + nil`, "(+ s nil)"},
		{"true == false", "(== true false)"},
		{"super.m", "(super m)"},
		{"this.x", "(. x this)"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, PrintExpr(parseExpr(t, tt.source)))
		})
	}
}

func TestFormatExprIsStable(t *testing.T) {
	sources := []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"-(-1)",
		"- -1",
		"!!true",
		"a = b = c",
		"a.b.c = f(1, \"two\", nil)(x).y",
		"(a or b) and !(c == d)",
		"1 - (2 - 3) - 4",
		"super.method(this)",
		"2.5 / 0.125 >= 10",
	}
	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			once := FormatExpr(parseExpr(t, source))
			twice := FormatExpr(parseExpr(t, once))
			assert.Equal(t, once, twice)
			assert.Equal(t, PrintExpr(parseExpr(t, source)), PrintExpr(parseExpr(t, once)))
		})
	}
}

func TestParseForDesugars(t *testing.T) {
	statements, errs := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, errs.HasErrors())
	require.Len(t, statements, 1)
	assert.Equal(t,
		"(block (var i 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))",
		PrintStmt(statements[0]))

	statements, errs = parseSource(t, "for (;;) print 1;")
	require.False(t, errs.HasErrors())
	assert.Equal(t, "(while true (print 1))", PrintStmt(statements[0]))

	statements, errs = parseSource(t, "for (x = 0; x < 1;) {}")
	require.False(t, errs.HasErrors())
	assert.Equal(t, "(block (; (= x 0)) (while (< x 1) (block)))", PrintStmt(statements[0]))
}

func TestParseDeclarations(t *testing.T) {
	statements, errs := parseSource(t, `
class B < A {
  init(x) { this.x = x; }
  get() { return this.x; }
}
fun add(a, b) { return a + b; }
var v;
if (v) print 1; else print 2;
while (false) {}
`)
	require.False(t, errs.HasErrors(), "%v", errs)
	var got []string
	for _, stmt := range statements {
		got = append(got, PrintStmt(stmt))
	}
	want := []string{
		"(class B < A (fun init (x) (; (= x this x))) (fun get () (return (. x this))))",
		"(fun add (a b) (return (+ a b)))",
		"(var v)",
		"(if v (print 1) (print 2))",
		"(while false (block))",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecoversAtStatementBoundaries(t *testing.T) {
	statements, errs := parseSource(t, `
print 1
var ok = 2;
var = 3;
fun (x) {}
print ok;
class { }
print (1;
`)
	want := []string{
		"[line 3] Error at 'var': Expect ';' after value.",
		"[line 4] Error at '=': Expect variable name.",
		"[line 5] Error at '(': Expect function name.",
		"[line 7] Error at '{': Expect class name.",
		"[line 8] Error at ';': Expect ')' after expression.",
	}
	if diff := cmp.Diff(want, errorTexts(errs)); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}

	// the token that triggered an error is discarded with the rest of its
	// statement, so the declaration of ok on line 3 is lost too
	require.Len(t, statements, 1)
	assert.Equal(t, "(print ok)", PrintStmt(statements[0]))
}

func TestParseErrorAtEnd(t *testing.T) {
	_, errs := parseSource(t, "print 1")
	assert.Equal(t, []string{"[line 1] Error at end: Expect ';' after value."}, errorTexts(errs))

	_, errs = parseSource(t, "{ print 1;")
	assert.Equal(t, []string{"[line 1] Error at end: Expect '}' after block."}, errorTexts(errs))
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	statements, errs := parseSource(t, "1 + 2 = 3; a + b = c; print \"still parsed\";")
	assert.Equal(t, []string{
		"[line 1] Error at '=': Invalid assignment target.",
		"[line 1] Error at '=': Invalid assignment target.",
	}, errorTexts(errs))
	// the statements are kept, nothing was discarded
	require.Len(t, statements, 3)
	assert.Equal(t, "(; (+ 1 2))", PrintStmt(statements[0]))
}

func TestParseArgumentLimit(t *testing.T) {
	args := make([]string, 256)
	for i := range args {
		args[i] = "1"
	}
	statements, errs := parseSource(t, "f("+strings.Join(args, ", ")+");")
	assert.Equal(t, []string{"[line 1] Error at '1': Can't have more than 255 arguments."}, errorTexts(errs))
	require.Len(t, statements, 1)

	params := make([]string, 256)
	for i := range params {
		params[i] = "p" + strings.Repeat("x", i)
	}
	_, errs = parseSource(t, "fun f("+strings.Join(params, ", ")+") {}")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Can't have more than 255 parameters.")

	_, errs = parseSource(t, "f("+strings.Join(args[:255], ", ")+");")
	assert.False(t, errs.HasErrors())
}
