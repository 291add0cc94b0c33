// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jotlang/jot/scan"
	"github.com/jotlang/jot/value"
)

const helpIntro = `jot evaluates expressions over arrays of integers.

Numbers separated by blanks form a vector: 1 2 3.
Every verb takes as its right argument everything to its right,
so 2+3+4 is 2+(3+4). A verb with nothing on its left applies to
the term just after it, so ~3+~3 is (~3)+(~3) and ~2+3 is (~2)+3.
Use parentheses to apply it to more: ~(2+3), ,(2 2#~4).
Parentheses group. Lines beginning NB. are comments.

`

const helpSpecial = `
Special commands:
	)help [verb]           this text, or the description of a verb
	)debug [name [0|1]]    show or toggle debug settings
	)demo                  run a guided demonstration
	)maxdepth [n]          show or set the maximum nesting depth
	)maxelements [n]       show or set the maximum array size
	)prompt ["text"]       show or set the prompt
	)quit                  leave jot
`

// verbDocs describes each form of each verb. The names are those of
// the operations in the value package.
var verbDocs = map[byte][2]string{
	'+': {"y unchanged", "x and y added element by element"},
	'~': {"the integers 0 to y-1", "position of each x in y, or -1"},
	'#': {"number of items of y", "y reshaped to shape x, reusing its elements"},
	'{': {"", "items of y selected by the indices x"},
	',': {"elements of y as a vector", "x followed by y"},
	'<': {"y unchanged", "1 where x is less than y, else 0"},
	'-': {"", ""},
}

// verbNames returns the monadic and dyadic names of the verb,
// or "-" where a form does not exist.
func verbNames(op byte) (monadic, dyadic string) {
	monadic, dyadic = "-", "-"
	if fn := value.UnaryOps[op]; fn != nil {
		monadic = fn.Name()
	}
	if fn := value.BinaryOps[op]; fn != nil {
		dyadic = fn.Name()
	}
	return monadic, dyadic
}

// helpText returns the text printed by )help.
func helpText() string {
	var b strings.Builder
	b.WriteString(helpIntro)
	tw := tabwriter.NewWriter(&b, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Verb\tMonadic\tDyadic")
	for i := 0; i < len(scan.Verbs); i++ {
		op := scan.Verbs[i]
		monadic, dyadic := verbNames(op)
		fmt.Fprintf(tw, "%c\t%s\t%s\n", op, monadic, dyadic)
	}
	tw.Flush()
	b.WriteString(helpSpecial)
	return b.String()
}

// helpVerb returns the description of a verb for )help verb.
func helpVerb(name string) (string, bool) {
	if len(name) != 1 || !strings.Contains(scan.Verbs, name) {
		return "", false
	}
	op := name[0]
	monadic, dyadic := verbNames(op)
	docs := verbDocs[op]
	var b strings.Builder
	if monadic == "-" {
		fmt.Fprintf(&b, "%cy\tno monadic form\n", op)
	} else {
		fmt.Fprintf(&b, "%cy\t%s: %s\n", op, monadic, docs[0])
	}
	if dyadic == "-" {
		fmt.Fprintf(&b, "x%cy\tno dyadic form\n", op)
	} else {
		fmt.Fprintf(&b, "x%cy\t%s: %s\n", op, dyadic, docs[1])
	}
	return b.String(), true
}
