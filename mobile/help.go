// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobile

import (
	"fmt"
	"html"
	"strings"

	"github.com/jotlang/jot/scan"
	"github.com/jotlang/jot/value"
)

// Help returns the help page formatted in HTML.
func Help() string {
	var b strings.Builder
	b.WriteString("<h1>jot</h1>\n")
	b.WriteString("<p>Expressions over arrays of integers, evaluated right to left.</p>\n")
	b.WriteString("<table>\n<tr><th>Verb</th><th>Monadic</th><th>Dyadic</th></tr>\n")
	for i := 0; i < len(scan.Verbs); i++ {
		op := scan.Verbs[i]
		monadic, dyadic := "", ""
		if fn := value.UnaryOps[op]; fn != nil {
			monadic = fn.Name()
		}
		if fn := value.BinaryOps[op]; fn != nil {
			dyadic = fn.Name()
		}
		fmt.Fprintf(&b, "<tr><td><code>%s</code></td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(string(op)), html.EscapeString(monadic), html.EscapeString(dyadic))
	}
	b.WriteString("</table>\n")
	return b.String()
}
