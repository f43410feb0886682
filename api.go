package main

import (
	"context"

	"github.com/jcorbin/gopx2/internal/panicerr"
)

// Compile scans and verifies src, named by path in diagnostics, and
// returns the bytecode program. Compilation halts on the first invalid
// construct, returning a *CompileError; a program that would leave
// values on the stack fails with errUnhandledData. The returned
// program is independent of the compiler and may be handed to any
// number of VMs.
func Compile(path, src string, opts ...CompileOption) (Program, error) {
	comp := compiler{
		path: path,
		src:  src,
		sc:   newScanner(src),
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&comp)
		}
	}
	return comp.compile()
}

// New creates a VM owning prog; the zero option state discards output.
func New(prog Program, opts ...VMOption) *VM {
	vm := VM{prog: prog}
	vm.applyOptions(opts...)
	return &vm
}

// Run executes the program to completion, converting any internal
// panic into an error. A verified program can only fail at runtime on
// division by zero (or context cancellation).
func (vm *VM) Run(ctx context.Context) error {
	return panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	})
}
