package main

import (
	"context"
	"fmt"

	"github.com/jcorbin/gopx2/internal/flushio"
)

type opCode int

const (
	opPush opCode = iota
	opAdd
	opSub
	opMul
	opDiv
	opDup
	opDrop
	opOver
	opRot
	opSwap
	opPrintln
)

// op is one bytecode instruction; val is meaningful only for opPush.
type op struct {
	code opCode
	val  value
}

func pushOp(v value) op { return op{code: opPush, val: v} }

func (o op) String() string {
	switch o.code {
	case opPush:
		return fmt.Sprintf("push %v", o.val)
	case opAdd:
		return "add"
	case opSub:
		return "sub"
	case opMul:
		return "mul"
	case opDiv:
		return "div"
	case opDup:
		return "dup"
	case opDrop:
		return "drop"
	case opOver:
		return "over"
	case opRot:
		return "rot"
	case opSwap:
		return "swap"
	case opPrintln:
		return "println"
	default:
		return fmt.Sprintf("invalid op %d", int(o.code))
	}
}

// Program is an ordered sequence of bytecode instructions, built once by
// the compiler and read-only afterwards.
type Program []op

// VM executes a finished, already-verified program against a runtime
// value stack, in strict sequential order. Every precondition except
// division by zero was established by the compiler, so execution does
// not re-check operand counts or types.
type VM struct {
	prog  Program
	stack []value

	out   flushio.WriteFlusher
	logfn func(mess string, args ...interface{})
}

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}

func (vm *VM) push(v value) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() (v value) {
	i := len(vm.stack) - 1
	v, vm.stack = vm.stack[i], vm.stack[:i]
	return v
}

// pop2 pops the top of stack as b and the next value as a; a is the
// operand that was pushed first.
func (vm *VM) pop2() (a, b value) {
	b = vm.pop()
	a = vm.pop()
	return a, b
}

func (vm *VM) run(ctx context.Context) (err error) {
	// output already written stands on any exit, faulting or not
	defer func() {
		if ferr := vm.out.Flush(); err == nil {
			err = ferr
		}
	}()
	for i, o := range vm.prog {
		if err := ctx.Err(); err != nil {
			return err
		}
		vm.logf("@%v %v", i, o)
		switch o.code {
		case opPush:
			vm.push(o.val)
		case opAdd:
			a, b := vm.pop2()
			vm.push(intValue(a.n + b.n))
		case opSub:
			a, b := vm.pop2()
			vm.push(intValue(a.n - b.n))
		case opMul:
			a, b := vm.pop2()
			vm.push(intValue(a.n * b.n))
		case opDiv:
			a, b := vm.pop2()
			if b.n == 0 {
				return faultError{i, "integer division by zero"}
			}
			vm.push(intValue(a.n / b.n))
		case opDup:
			vm.push(vm.stack[len(vm.stack)-1])
		case opDrop:
			vm.pop()
		case opOver:
			// a b => a b a
			vm.push(vm.stack[len(vm.stack)-2])
		case opRot:
			// a b c => b c a
			j := len(vm.stack) - 3
			vm.stack[j], vm.stack[j+1], vm.stack[j+2] = vm.stack[j+1], vm.stack[j+2], vm.stack[j]
		case opSwap:
			// a b => b a
			j := len(vm.stack) - 2
			vm.stack[j], vm.stack[j+1] = vm.stack[j+1], vm.stack[j]
		case opPrintln:
			if _, err := fmt.Fprintln(vm.out, vm.pop()); err != nil {
				return err
			}
		default:
			return faultError{i, fmt.Sprintf("invalid op %d", int(o.code))}
		}
	}
	return nil
}

// faultError is a runtime fault at a program index; division by zero is
// the only fault a compiled program can actually raise.
type faultError struct {
	at   int
	mess string
}

func (err faultError) Error() string {
	return fmt.Sprintf("runtime fault @%v: %s", err.at, err.mess)
}
