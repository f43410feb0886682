package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// errUnhandledData aborts compilation when the type stack is not empty
// after the final token: the program would leave values behind.
var errUnhandledData = errors.New("unhandled data on the stack")

// compiler consumes the token stream, checking every operation against
// a compile-time model of the stack (types only, no values) and
// emitting one bytecode op per valid token. The type stack is mutated
// in lock-step with emission so that, at every point, it has exactly
// the shape the runtime stack will have when the VM reaches the same
// program prefix. The first invalid construct aborts the whole pass.
type compiler struct {
	path string
	src  string

	sc    *scanner
	stack []dataType
	prog  Program

	reporter Reporter
	logfn    func(mess string, args ...interface{})
}

func (comp *compiler) logf(mess string, args ...interface{}) {
	if comp.logfn != nil {
		comp.logfn(mess, args...)
	}
}

func (comp *compiler) compile() (Program, error) {
	for {
		tok := comp.sc.scanToken()
		comp.logf("%v", tok)

		var err error
		switch tok.kind {
		case tokenEOF:
			if len(comp.stack) > 0 {
				return nil, errUnhandledData
			}
			return comp.prog, nil

		case tokenInt:
			err = comp.integer(tok)
		case tokenTrue:
			comp.emit(pushOp(boolValue(true)))
		case tokenFalse:
			comp.emit(pushOp(boolValue(false)))

		case tokenPlus:
			err = comp.arith(tok, opAdd, "addition")
		case tokenMinus:
			err = comp.arith(tok, opSub, "subtraction")
		case tokenStar:
			err = comp.arith(tok, opMul, "multiplication")
		case tokenSlash:
			err = comp.arith(tok, opDiv, "division")

		case tokenDup:
			if len(comp.stack) == 0 {
				err = comp.errorf(tok, "no data on the stack to dup")
			} else {
				comp.emit(op{code: opDup})
			}
		case tokenDrop:
			if len(comp.stack) == 0 {
				err = comp.errorf(tok, "no data on the stack to drop")
			} else {
				comp.emit(op{code: opDrop})
			}
		case tokenPrintln:
			if len(comp.stack) == 0 {
				err = comp.errorf(tok, "nothing on stack to print")
			} else {
				comp.emit(op{code: opPrintln})
			}
		case tokenOver:
			if n := len(comp.stack); n < 2 {
				err = comp.errorf(tok, "need 2 elements on the stack to perform over but found %d", n)
			} else {
				comp.emit(op{code: opOver})
			}
		case tokenSwap:
			if n := len(comp.stack); n < 2 {
				err = comp.errorf(tok, "need 2 elements on the stack to perform swap but found %d", n)
			} else {
				comp.emit(op{code: opSwap})
			}
		case tokenRot:
			if n := len(comp.stack); n < 3 {
				err = comp.errorf(tok, "need 3 elements on the stack to perform rot but found %d", n)
			} else {
				comp.emit(op{code: opRot})
			}

		case tokenIdentifier:
			err = comp.errorf(tok, "identifiers are not implemented yet")
		case tokenError:
			err = comp.errorf(tok, "invalid token")
		default:
			err = comp.errorf(tok, "invalid token")
		}

		if err != nil {
			return nil, err
		}
	}
}

// emit appends one op and applies its stack effect to the type stack.
func (comp *compiler) emit(o op) {
	switch o.code {
	case opPush:
		comp.stack = append(comp.stack, o.val.typ)
	case opAdd, opSub, opMul, opDiv, opDrop, opPrintln:
		comp.stack = comp.stack[:len(comp.stack)-1]
	case opDup:
		comp.stack = append(comp.stack, comp.stack[len(comp.stack)-1])
	case opOver:
		// a b => a b a
		comp.stack = append(comp.stack, comp.stack[len(comp.stack)-2])
	case opRot:
		// a b c => b c a
		i := len(comp.stack) - 3
		comp.stack[i], comp.stack[i+1], comp.stack[i+2] = comp.stack[i+1], comp.stack[i+2], comp.stack[i]
	case opSwap:
		// a b => b a
		i := len(comp.stack) - 2
		comp.stack[i], comp.stack[i+1] = comp.stack[i+1], comp.stack[i]
	}
	comp.prog = append(comp.prog, o)
}

func (comp *compiler) integer(tok token) error {
	n, err := strconv.ParseInt(tok.lexeme, 10, 64)
	if err != nil {
		return comp.errorf(tok, "%s", intParseReason(err))
	}
	comp.emit(pushOp(intValue(n)))
	return nil
}

func intParseReason(err error) string {
	var ne *strconv.NumError
	if !errors.As(err, &ne) {
		return "unexpected error"
	}
	switch {
	case ne.Num == "":
		return "tried to parse int from empty string"
	case errors.Is(ne.Err, strconv.ErrRange):
		if strings.HasPrefix(ne.Num, "-") {
			return "negative integer out of range"
		}
		return "positive integer out of range"
	case errors.Is(ne.Err, strconv.ErrSyntax):
		return "invalid digit found in string"
	default:
		return "unexpected error"
	}
}

// arith checks the shared precondition of the four arithmetic words:
// the top two type-stack entries must both be Int.
func (comp *compiler) arith(tok token, code opCode, verb string) error {
	n := len(comp.stack)
	if n < 2 {
		return comp.errorf(tok, "expected 2 values on the stack to perform %s, found %d", verb, n)
	}
	if top := comp.stack[n-1]; top != dataInt {
		return comp.errorf(tok, "expected integer on top of the stack to perform %s, found %v", verb, top)
	}
	if next := comp.stack[n-2]; next != dataInt {
		return comp.errorf(tok, "expected integer one down from the top of the stack to perform %s, found %v", verb, next)
	}
	comp.emit(op{code: code})
	return nil
}

// errorf builds the diagnostic for tok, hands it to the reporter, and
// returns it as the error that aborts the pass.
func (comp *compiler) errorf(tok token, mess string, args ...interface{}) error {
	d := Diagnostic{
		Path:       comp.path,
		Line:       tok.line,
		Column:     tok.column,
		Length:     tok.length,
		Lexeme:     tok.lexeme,
		Message:    fmt.Sprintf(mess, args...),
		SourceLine: sourceLine(comp.src, tok.line),
	}
	if comp.reporter != nil {
		comp.reporter.Report(d)
	}
	return &CompileError{d}
}

// sourceLine returns the text of the 1-based line number within src,
// without its trailing newline.
func sourceLine(src string, line int) string {
	for ; line > 1; line-- {
		i := strings.IndexByte(src, '\n')
		if i < 0 {
			return ""
		}
		src = src[i+1:]
	}
	if i := strings.IndexByte(src, '\n'); i >= 0 {
		src = src[:i]
	}
	return strings.TrimSuffix(src, "\r")
}
