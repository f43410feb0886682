package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"time"
)

func main() {
	ctx := context.Background()

	var verbose bool
	var timeout time.Duration
	flag.BoolVar(&verbose, "v", false, "print scanned tokens, compile timing, and the compiled program")
	flag.BoolVar(&verbose, "verbose", false, "print scanned tokens, compile timing, and the compiled program")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if filepath.Ext(path) != ".px2" {
		fmt.Fprintf(os.Stderr, "Given file %q was not a '.px2' file\n", path)
		os.Exit(1)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Given file %q does not exist\n", path)
		os.Exit(1)
	}
	src, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	copts := []CompileOption{WithReporter(NewReporter(os.Stderr))}
	if verbose {
		copts = append(copts, WithCompileLogf(log.Printf))
	}

	start := time.Now()
	prog, err := Compile(path, string(src), copts...)
	if err != nil {
		if _, isCompile := err.(*CompileError); isCompile {
			fmt.Fprintln(os.Stderr, "Stopping execution due to compilation errors")
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Compilation succeeded in %v\n", time.Since(start))
		progDumper{prog: prog, out: os.Stdout}.dump()
	}

	var opts = []VMOption{WithOutput(os.Stdout)}
	if verbose {
		opts = append(opts, WithLogf(log.Printf))
	}
	vm := New(prog, opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := vm.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: gopx2 <file_path> [--verbose|-v]\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Compiles and runs the given .px2 program.\n\n")
	flag.PrintDefaults()
}
