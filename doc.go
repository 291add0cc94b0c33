// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Jot is an interpreter for a small J-like array language. Values are
integer arrays of any rank: scalars, vectors and matrices.

Numbers separated by blanks form a vector, so 1 2 3 is one value.
Every verb takes as its right argument everything to its right, so
2+3+4 is 2+(3+4). A verb with nothing on its left is monadic and
applies to the term immediately after it, so ~3+~3 is (~3)+(~3).
This differs from J. ~2+3 is (~2)+3, which is 3 4, not ~5. Likewise
,2 2#~4 is (,2 2)#(~4), a 2 by 2 matrix; write ,(2 2#~4) to ravel
the reshaped result. Parentheses group. A line beginning NB. is a comment.

Verbs.

	Verb  Monadic          Dyadic
	+     identity         add, element by element
	~     iota             find: position of each x in y, or -1
	#     tally            reshape y to the shape x, reusing elements
	{     -                from: items of y selected by x
	,     ravel            append x and y
	<     box              less than, element by element
	-     -                -

The verb - is recognized but has no form; using it is an error.

Results are printed with the elements of a vector separated by blanks
and the rows of a matrix on separate lines. Errors are printed as

	Error: <stage> error: <message>

where the stage is tokenize, parse, semantic or eval.

Usage:

	jot [options] [file ...]

Flags:

	-e expression
		evaluate the expression and exit
	-prompt text
		interactive prompt (default three blanks)
	-config file
		configuration file, .toml, .yaml or .yml
	-maxdepth n
		maximum nesting depth of an expression (default 1000)
	-maxelements n
		maximum number of elements in an array (default 4194304)
	-debug names
		comma-separated debug settings to enable

Without -e or file arguments, jot reads standard input, with line
editing and history if it is a terminal.

Settings come from, in increasing priority, the defaults, a jot.toml,
jot.yaml or jot.yml file in the current or home directory, the
environment variables JOT_PROMPT, JOT_MAXDEPTH, JOT_MAXELEMENTS and
JOT_DEBUG, and the flags.

Special commands start with a right parenthesis.

	) help [verb]
		Describe the language, or the forms of a single verb.
	) debug [name [0|1]]
		Show the debug settings, or toggle or set one.
		The settings are cpu, panic, parse, tokens, trace and types.
	) demo
		Run a guided demonstration.
	) maxdepth [n]
		Show or set the maximum nesting depth.
	) maxelements [n]
		Show or set the maximum number of elements in an array.
	) prompt ["text"]
		Show or set the prompt.
	) quit
		Leave jot.
*/
package main // import "github.com/jotlang/jot"
