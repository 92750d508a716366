// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Stak is an interpreter for a small stack-based array language. It is a
plaything.

Each line of input is read as a sequence of words separated by spaces. A
number is pushed on the stack; any other word names an operator, which takes
its operands from the top of the stack and pushes its result. When the line
is done the stack is printed, top first, one value per line. Every line
starts with an empty stack.

	3 4 +
	7

All values are two-dimensional arrays of floating-point numbers. A scalar is a
1x1 array and is printed as a bare number; anything else is printed row by row:

	5 iota
	[[1, 2, 3, 4, 5]]

Monadic operators replace the top of the stack.

	Name      Alias   Meaning
	negate    neg     Negate every element
	reverse   rev     Reverse the order of the elements in each row
	length    len     Number of elements
	sum               Sum of the elements
	product   prod    Product of the elements
	iota              Vector 1 2 ... n

Dyadic operators replace the top two values. They apply element by element;
an axis of size 1 is stretched to match the other operand. The top of the
stack is the left operand, so

	10 3 -
	-7

	Name   Meaning
	+      Addition
	-      Subtraction
	*      Multiplication
	/      Division

Stack operators rearrange the stack.

	Name      Meaning
	dup       Push a copy of the top (right is a synonym)
	left      Push a copy of the value under the top
	commute   Swap the top two values
	|         Gather the run of scalars at the top into one vector

A word that cannot be executed, such as an operator with too few operands or a
name that is not an operator, is reported on standard error. The stack is left
as it was and execution continues with the next word.

Usage:

	stak [flags] [file]

With no file, stak reads standard input; if that is a terminal it provides line
editing and history, and an empty line exits. The flags are:

	-format fmt
		use fmt (for instance %.2f) to print each number
	-prompt string
		the interactive prompt
	-config file
		read settings from a YAML file with the keys format, prompt,
		loglevel, history (a file to hold the interactive history)
		and debug (a list of names)
	-debug names
		comma-separated debug settings: cpu, exec, panic, stack, tokens
	-loglevel level
		log level for the debug traces
	-tokens
		print the tokens of each line instead of executing it
	-demo
		run a short tour of the language
*/
package main
