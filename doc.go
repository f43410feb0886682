/* Package main: gopx2 -- a px2 compiler and stack machine

px2 is a minimal stack-oriented language: a program is a flat sequence
of words, each of which pushes to or pops from a single data stack.
Integer literals and the words true and false push values; + - * /
combine the top two integers; dup drop over rot swap shuffle the stack;
println pops a value and prints it on its own line.

	3 4 + println

scans to four tokens, compiles to the program

	push 3
	push 4
	add
	println

and prints 7 when run.

The pipeline has two phases. First the compiler pulls tokens from the
scanner one at a time, checking each word's stack effect against a
compile-time model of the stack -- types only, no values -- and emitting
one bytecode instruction per word. Programs that would underflow the
stack, operate on the wrong types, or leave values behind are rejected
here, with a caret diagnostic pointing at the offending token. Only
then does the VM run the finished program, a single linear pass with no
branches; having been verified up front, execution re-checks nothing
except division by zero.

There are no variables, functions, or control flow yet; identifier
tokens are scanned but unconditionally rejected, reserved for a future
in which they mean something.
*/
package main
