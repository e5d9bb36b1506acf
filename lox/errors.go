package lox

import (
	"strconv"
)

// ErrorReporter is the sink for every diagnostic the pipeline produces.
// Scanner, parser and resolver report and keep going; the interpreter
// returns its first runtime error and the driver forwards it here.
type ErrorReporter interface {
	Report(err error)
}

// ErrorList collects reported errors in order.
type ErrorList []error

func (el *ErrorList) Report(err error) {
	*el = append(*el, err)
}

// HasErrors reports whether anything was collected.
func (el ErrorList) HasErrors() bool {
	return len(el) > 0
}

// ScanError is a lexical error.
type ScanError struct {
	Line    int
	Message string
}

func NewScanError(line int, message string) *ScanError {
	return &ScanError{Line: line, Message: message}
}

func (se *ScanError) Error() string {
	return "[line " + strconv.Itoa(se.Line) + "] Error: " + se.Message
}

// ParseError 语法解析错误类型
type ParseError struct {
	Token   *Token
	Message string
}

func NewParseError(token *Token, message string) *ParseError {
	return &ParseError{Token: token, Message: message}
}

func (pe *ParseError) Error() string {
	return staticErrorText(pe.Token, pe.Message)
}

// ResolveError is a scope-discipline violation found before execution.
type ResolveError struct {
	Token   *Token
	Message string
}

func NewResolveError(token *Token, message string) *ResolveError {
	return &ResolveError{Token: token, Message: message}
}

func (re *ResolveError) Error() string {
	return staticErrorText(re.Token, re.Message)
}

// RuntimeError 运行时错误类型
type RuntimeError struct {
	Token   *Token
	Message string
}

func NewRuntimeError(token *Token, message string) *RuntimeError {
	return &RuntimeError{Token: token, Message: message}
}

func (re *RuntimeError) Error() string {
	return re.Message + "\n[line " + strconv.Itoa(re.Token.Line) + "]"
}

func staticErrorText(token *Token, message string) string {
	where := " at '" + token.Lexeme + "'"
	if token.Type == EOF {
		where = " at end"
	}
	return "[line " + strconv.Itoa(token.Line) + "] Error" + where + ": " + message
}

func NewStackError(top int, message string) *stackError {
	return &stackError{top: top, message: message}
}

type stackError struct {
	top     int
	message string
}

func (se stackError) Error() string {
	return "out of bound:" + strconv.Itoa(se.top) + ", " + se.message
}
