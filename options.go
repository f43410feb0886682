package main

import (
	"io"
	"io/ioutil"

	"github.com/jcorbin/gopx2/internal/flushio"
)

// VMOption configures a VM under New.
type VMOption interface{ apply(vm *VM) }

var defaultVMOptions = []VMOption{
	WithOutput(ioutil.Discard),
}

func (vm *VM) applyOptions(opts ...VMOption) {
	for _, opt := range defaultVMOptions {
		opt.apply(vm)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type logfOption func(mess string, args ...interface{})

// WithOutput directs println output to w.
func WithOutput(w io.Writer) VMOption { return outputOption{w} }

// WithTee copies println output to w in addition to the primary output.
func WithTee(w io.Writer) VMOption { return teeOption{w} }

// WithLogf enables step tracing through the given printf-like function.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption {
	return logfOption(logfn)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.New(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.Multi(vm.out, flushio.New(o.Writer))
}

func (logfn logfOption) apply(vm *VM) {
	vm.logfn = logfn
}

// CompileOption configures a compilation pass under Compile.
type CompileOption interface{ apply(comp *compiler) }

type reporterOption struct{ Reporter }
type compileLogfOption func(mess string, args ...interface{})

// WithReporter installs a diagnostic sink; without one, diagnostics are
// only available through the returned error.
func WithReporter(r Reporter) CompileOption { return reporterOption{r} }

// WithCompileLogf enables token tracing through the given printf-like
// function.
func WithCompileLogf(logfn func(mess string, args ...interface{})) CompileOption {
	return compileLogfOption(logfn)
}

func (o reporterOption) apply(comp *compiler)        { comp.reporter = o.Reporter }
func (logfn compileLogfOption) apply(comp *compiler) { comp.logfn = logfn }
