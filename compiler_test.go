package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_compile_programs(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want Program
	}{

		{"empty source", "", nil},

		{"add and print", "3 4 + println", Program{
			pushOp(intValue(3)),
			pushOp(intValue(4)),
			{code: opAdd},
			{code: opPrintln},
		}},

		{"divide and print", "10 2 / println", Program{
			pushOp(intValue(10)),
			pushOp(intValue(2)),
			{code: opDiv},
			{code: opPrintln},
		}},

		{"booleans", "true false drop println", Program{
			pushOp(boolValue(true)),
			pushOp(boolValue(false)),
			{code: opDrop},
			{code: opPrintln},
		}},

		{"stack shuffles", "1 2 3 rot over swap drop drop drop drop", Program{
			pushOp(intValue(1)),
			pushOp(intValue(2)),
			pushOp(intValue(3)),
			{code: opRot},
			{code: opOver},
			{code: opSwap},
			{code: opDrop},
			{code: opDrop},
			{code: opDrop},
			{code: opDrop},
		}},

		{"dup balances", "2 dup * println", Program{
			pushOp(intValue(2)),
			{code: opDup},
			{code: opMul},
			{code: opPrintln},
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := Compile("test.px2", tc.src)
			require.NoError(t, err, "expected no compile error")
			assert.Equal(t, tc.want, prog)
		})
	}
}

func Test_compile_errors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		src    string
		mess   string
		line   int
		column int
		lexeme string
	}{

		{"addition underflow", "1 +",
			"expected 2 values on the stack to perform addition, found 1", 1, 3, "+"},

		{"subtraction underflow", "-",
			"expected 2 values on the stack to perform subtraction, found 0", 1, 1, "-"},

		{"bool atop addition", "5 true +",
			"expected integer on top of the stack to perform addition, found Bool", 1, 8, "+"},

		{"bool under multiplication", "true 5 *",
			"expected integer one down from the top of the stack to perform multiplication, found Bool", 1, 9, "*"},

		{"division underflow", "7 /",
			"expected 2 values on the stack to perform division, found 1", 1, 3, "/"},

		{"dup of nothing", "dup",
			"no data on the stack to dup", 1, 1, "dup"},

		{"drop of nothing", "drop",
			"no data on the stack to drop", 1, 1, "drop"},

		{"print of nothing", "println",
			"nothing on stack to print", 1, 1, "println"},

		{"over underflow", "1 over",
			"need 2 elements on the stack to perform over but found 1", 1, 3, "over"},

		{"swap underflow", "1 swap",
			"need 2 elements on the stack to perform swap but found 1", 1, 3, "swap"},

		{"rot underflow", "1 2 rot",
			"need 3 elements on the stack to perform rot but found 2", 1, 5, "rot"},

		{"identifier", "foo",
			"identifiers are not implemented yet", 1, 1, "foo"},

		{"invalid character", "1 2 $",
			"invalid token", 1, 5, "$"},

		{"integer overflow", "9223372036854775808",
			"positive integer out of range", 1, 1, "9223372036854775808"},

		{"error on a later line", "1 2 +\n3 +\n+",
			"expected 2 values on the stack to perform addition, found 1", 3, 1, "+"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := Compile("test.px2", tc.src)
			assert.Nil(t, prog, "expected no program")
			var cerr *CompileError
			require.True(t, errors.As(err, &cerr), "expected a *CompileError, got %#v", err)
			assert.Equal(t, tc.mess, cerr.Message, "expected error message")
			assert.Equal(t, tc.line, cerr.Line, "expected error line")
			assert.Equal(t, tc.column, cerr.Column, "expected error column")
			assert.Equal(t, tc.lexeme, cerr.Lexeme, "expected error lexeme")
		})
	}
}

func Test_compile_unhandledData(t *testing.T) {
	for _, src := range []string{
		"1 2 +",
		"true false println",
		"42",
	} {
		t.Run(src, func(t *testing.T) {
			prog, err := Compile("test.px2", src)
			assert.Nil(t, prog, "expected no program")
			assert.True(t, errors.Is(err, errUnhandledData), "expected unhandled data error, got %#v", err)
		})
	}
}

func Test_compile_maxInt64(t *testing.T) {
	prog, err := Compile("test.px2", "9223372036854775807 drop")
	require.NoError(t, err)
	assert.Equal(t, Program{
		pushOp(intValue(9223372036854775807)),
		{code: opDrop},
	}, prog)
}

func Test_compile_stopsAtFirstError(t *testing.T) {
	// the second error never gets a chance to be reported
	var rep capturingReporter
	_, err := Compile("test.px2", "+ nope", WithReporter(&rep))
	require.Error(t, err)
	require.Len(t, rep.diags, 1, "expected exactly one diagnostic")
	assert.Equal(t, "expected 2 values on the stack to perform addition, found 0", rep.diags[0].Message)
}

type capturingReporter struct{ diags []Diagnostic }

func (rep *capturingReporter) Report(d Diagnostic) { rep.diags = append(rep.diags, d) }

func Test_reporter_layout(t *testing.T) {
	defer func(prior bool) { color.NoColor = prior }(color.NoColor)
	color.NoColor = true

	var out bytes.Buffer
	_, err := Compile("scratch.px2", "1 2 +\ntrue +\n", WithReporter(NewReporter(&out)))
	require.Error(t, err)
	assert.Equal(t, lines(
		`Compiler Error at '+': expected integer on top of the stack to perform addition, found Bool`,
		`       --> scratch.px2:2:6`,
		`        |`,
		`      2 | true +`,
		`        |      ^`,
	), out.String())
}

func Test_compile_tokenTrace(t *testing.T) {
	var trace []string
	_, err := Compile("test.px2", "1 drop", WithCompileLogf(func(mess string, args ...interface{}) {
		trace = append(trace, fmt.Sprintf(mess, args...))
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{
		`Token [ type: Int, length: 1, line: 1, column: 1, text: '1' ]`,
		`Token [ type: Drop, length: 4, line: 1, column: 3, text: 'drop' ]`,
		`Token [ type: EndOfFile, length: 0, line: 1, column: 7, text: '' ]`,
	}, trace)
}
