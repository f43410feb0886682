package main

import (
	"fmt"
	"io"
	"strconv"
)

// progDumper writes a listing of a compiled program, one instruction
// per line with its index.
type progDumper struct {
	prog Program
	out  io.Writer

	addrWidth int
}

func (dump progDumper) dump() {
	fmt.Fprintf(dump.out, "# Program Dump\n")
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(len(dump.prog)-1)) + 1
	}
	for i, o := range dump.prog {
		fmt.Fprintf(dump.out, "  @% *v %v\n", dump.addrWidth, i, o)
	}
}
