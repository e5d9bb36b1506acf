package lox

import (
	"strconv"
)

var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Scanner turns source text into tokens. It works on runes so that a
// string literal may hold any UTF-8 text; identifiers stay ASCII.
type Scanner struct {
	source   []rune
	tokens   []*Token
	start    int
	current  int
	line     int
	reporter ErrorReporter
}

// NewScanner returns a scanner over source. Lexical errors go to reporter
// and scanning carries on.
func NewScanner(source string, reporter ErrorReporter) *Scanner {
	return &Scanner{source: []rune(source), line: 1, reporter: reporter}
}

// ScanTokens scans to the end of the source. The result always ends with
// an EOF token.
func (this *Scanner) ScanTokens() []*Token {
	for !this.isAtEnd() {
		// we are at the beginning of the next lexeme.
		this.start = this.current
		this.scanToken()
	}
	this.tokens = append(this.tokens, NewToken(EOF, "", nil, this.line))
	return this.tokens
}

func (this *Scanner) isAtEnd() bool {
	return this.current >= len(this.source)
}

// single maps one-character lexemes to their token type.
var single = map[rune]TokenType{
	'(': LEFT_PAREN, ')': RIGHT_PAREN, '{': LEFT_BRACE, '}': RIGHT_BRACE,
	',': COMMA, '.': DOT, '-': MINUS, '+': PLUS, ';': SEMICOLON, '*': STAR,
}

// pairs holds the operators that may be followed by '=': the type without
// and with the '='.
var pairs = map[rune][2]TokenType{
	'!': {BANG, BANG_EQUAL},
	'=': {EQUAL, EQUAL_EQUAL},
	'<': {LESS, LESS_EQUAL},
	'>': {GREATER, GREATER_EQUAL},
}

func (this *Scanner) scanToken() {
	c := this.advance()
	if typ, ok := single[c]; ok {
		this.addToken(typ)
		return
	}
	if pair, ok := pairs[c]; ok {
		if this.match('=') {
			this.addToken(pair[1])
		} else {
			this.addToken(pair[0])
		}
		return
	}

	switch {
	case c == '/' && this.match('/'):
		// a comment runs to the end of the line
		for this.peek() != '\n' && !this.isAtEnd() {
			this.advance()
		}
	case c == '/':
		this.addToken(SLASH)
	case c == ' ' || c == '\r' || c == '\t':
	case c == '\n':
		this.line++
	case c == '"':
		this.strings()
	case this.isDigit(c):
		this.number()
	case this.isAlpha(c):
		this.identifier()
	default:
		this.reporter.Report(NewScanError(this.line, "Unexpected character."))
	}
}

func (this *Scanner) advance() rune {
	this.current++
	return this.source[this.current-1]
}

func (this *Scanner) addToken(typ TokenType) {
	this.addTokenWithLiteral(typ, nil)
}

func (this *Scanner) addTokenWithLiteral(typ TokenType, literal interface{}) {
	text := string(this.source[this.start:this.current])
	this.tokens = append(this.tokens, NewToken(typ, text, literal, this.line))
}

func (this *Scanner) match(expected rune) bool {
	if this.isAtEnd() || this.source[this.current] != expected {
		return false
	}
	this.current++
	return true
}

func (this *Scanner) peek() rune {
	if this.isAtEnd() {
		return '\x00'
	}
	return this.source[this.current]
}

func (this *Scanner) peekNext() rune {
	if this.current+1 >= len(this.source) {
		return '\x00'
	}
	return this.source[this.current+1]
}

func (this *Scanner) strings() {
	for this.peek() != '"' && !this.isAtEnd() {
		if this.peek() == '\n' {
			this.line++
		}
		this.advance()
	}
	if this.isAtEnd() {
		this.reporter.Report(NewScanError(this.line, "Unterminated string."))
		return
	}
	this.advance()
	// no escape sequences; the literal is the text between the quotes
	this.addTokenWithLiteral(STRING, string(this.source[this.start+1:this.current-1]))
}

func (this *Scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (this *Scanner) number() {
	for this.isDigit(this.peek()) {
		this.advance()
	}

	// a fraction needs a digit after the dot: "7." is NUMBER then DOT
	if this.peek() == '.' && this.isDigit(this.peekNext()) {
		this.advance()
		for this.isDigit(this.peek()) {
			this.advance()
		}
	}

	// the lexeme is digits with at most one dot, so this cannot fail
	value, _ := strconv.ParseFloat(string(this.source[this.start:this.current]), 64)
	this.addTokenWithLiteral(NUMBER, value)
}

func (this *Scanner) isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func (this *Scanner) isAlphaNumeric(c rune) bool {
	return this.isAlpha(c) || this.isDigit(c)
}

func (this *Scanner) identifier() {
	for this.isAlphaNumeric(this.peek()) {
		this.advance()
	}
	if typ, ok := keywords[string(this.source[this.start:this.current])]; ok {
		this.addToken(typ)
		return
	}
	this.addToken(IDENTIFIER)
}
