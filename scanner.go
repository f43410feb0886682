package main

import "fmt"

type tokenKind int

// Token kinds, named after the source words they classify.
const (
	tokenEOF tokenKind = iota
	tokenError
	tokenInt
	tokenIdentifier
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenTrue
	tokenFalse
	tokenDup
	tokenDrop
	tokenOver
	tokenRot
	tokenSwap
	tokenPrintln
)

var tokenKindNames = map[tokenKind]string{
	tokenEOF:        "EndOfFile",
	tokenError:      "Error",
	tokenInt:        "Int",
	tokenIdentifier: "Identifier",
	tokenPlus:       "Plus",
	tokenMinus:      "Minus",
	tokenStar:       "Star",
	tokenSlash:      "Slash",
	tokenTrue:       "True",
	tokenFalse:      "False",
	tokenDup:        "Dup",
	tokenDrop:       "Drop",
	tokenOver:       "Over",
	tokenRot:        "Rot",
	tokenSwap:       "Swap",
	tokenPrintln:    "PrintLn",
}

func (kind tokenKind) String() string {
	if name, def := tokenKindNames[kind]; def {
		return name
	}
	return fmt.Sprintf("invalid tokenKind %d", int(kind))
}

var keywords = map[string]tokenKind{
	"dup":     tokenDup,
	"drop":    tokenDrop,
	"false":   tokenFalse,
	"over":    tokenOver,
	"println": tokenPrintln,
	"rot":     tokenRot,
	"swap":    tokenSwap,
	"true":    tokenTrue,
}

// token is a classified, positioned fragment of source text; its lexeme
// is a substring of the scanner's buffer, so a token must not outlive it.
type token struct {
	kind   tokenKind
	lexeme string
	line   int
	column int
	length int
}

func (tok token) String() string {
	return fmt.Sprintf("Token [ type: %v, length: %v, line: %v, column: %v, text: '%s' ]",
		tok.kind, tok.length, tok.line, tok.column, tok.lexeme)
}

// scanner turns a source buffer into tokens on demand. Scanning is a
// pure function of the buffer and position: once the end is reached it
// keeps returning EOF tokens.
type scanner struct {
	src    string
	start  int
	pos    int
	line   int
	column int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1, column: 1}
}

// scanToken skips any whitespace and then consumes exactly one token.
func (sc *scanner) scanToken() token {
	sc.skipSpace()
	sc.start = sc.pos

	if sc.atEnd() {
		return sc.makeToken(tokenEOF)
	}

	c := sc.advance()
	switch {
	case isDigit(c):
		return sc.number()
	case isAlpha(c):
		return sc.word()
	}

	switch c {
	case '+':
		return sc.makeToken(tokenPlus)
	case '-':
		return sc.makeToken(tokenMinus)
	case '*':
		return sc.makeToken(tokenStar)
	case '/':
		return sc.makeToken(tokenSlash)
	}
	return sc.makeToken(tokenError)
}

func (sc *scanner) atEnd() bool { return sc.pos >= len(sc.src) }

func (sc *scanner) advance() byte {
	c := sc.src[sc.pos]
	sc.pos++
	sc.column++
	return c
}

func (sc *scanner) skipSpace() {
	for !sc.atEnd() {
		switch sc.src[sc.pos] {
		case '\n':
			sc.advance()
			sc.line++
			sc.column = 1
		case ' ', '\r':
			sc.advance()
		default:
			return
		}
	}
}

func (sc *scanner) number() token {
	for !sc.atEnd() && isDigit(sc.src[sc.pos]) {
		sc.advance()
	}
	return sc.makeToken(tokenInt)
}

func (sc *scanner) word() token {
	for !sc.atEnd() && isWordChar(sc.src[sc.pos]) {
		sc.advance()
	}
	if kind, def := keywords[sc.src[sc.start:sc.pos]]; def {
		return sc.makeToken(kind)
	}
	return sc.makeToken(tokenIdentifier)
}

func (sc *scanner) makeToken(kind tokenKind) token {
	length := sc.pos - sc.start
	return token{
		kind:   kind,
		lexeme: sc.src[sc.start:sc.pos],
		line:   sc.line,
		column: sc.column - length,
		length: length,
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isWordChar(c byte) bool { return isAlpha(c) || isDigit(c) || c == '_' }
