// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usage renders help text for an argtree command tree. It is a
// consumer of the engine's read-only accessors; the engine itself only
// knows how to hand a node to whatever renderer was installed.
package usage

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/twigrun/twig/pkg/argtree"
)

var (
	headerColor   = color.New(color.Bold)
	requiredColor = color.New(color.FgYellow)
)

// Install sets Render as the usage renderer for c's subtree.
func Install(c *argtree.Command) {
	c.SetUsage(Render)
}

// Render writes the full recursive help for c: its own header, usage
// line, argument and option tables, then each descendant's section.
func Render(w io.Writer, c *argtree.Command) {
	width := terminalWidth(w)

	if d := c.Description(); d != "" {
		fmt.Fprintf(w, "%s - %s\n\n", c.Name(), d)
	} else {
		fmt.Fprintf(w, "%s\n\n", c.Name())
	}

	renderNode(w, c, width)

	for _, child := range c.Children() {
		renderSubtree(w, child, width)
	}
}

// RenderNode writes help for a single node without descending into its
// subcommands' own sections.
func RenderNode(w io.Writer, c *argtree.Command) {
	renderNode(w, c, terminalWidth(w))
}

func renderNode(w io.Writer, c *argtree.Command, width int) {
	headerColor.Fprintln(w, "USAGE:")
	fmt.Fprintf(w, "    %s\n\n", usageLine(c))

	if opts := c.Options(); len(opts) > 0 {
		headerColor.Fprintln(w, "OPTIONS:")
		for _, o := range opts {
			renderOption(w, o, width)
		}
		fmt.Fprintln(w)
	}

	if kids := c.Children(); len(kids) > 0 {
		headerColor.Fprintln(w, "COMMANDS:")
		for _, child := range kids {
			fmt.Fprintf(w, "    %-12s %s\n", child.Name(), child.Description())
		}
		fmt.Fprintln(w)
	}
}

func renderSubtree(w io.Writer, c *argtree.Command, width int) {
	path := strings.Join(c.Path()[1:], " ")
	if d := c.Description(); d != "" {
		headerColor.Fprintf(w, "COMMAND %s - %s\n", path, d)
	} else {
		headerColor.Fprintf(w, "COMMAND %s\n", path)
	}
	fmt.Fprintf(w, "    %s\n\n", usageLine(c))

	if opts := c.Options(); len(opts) > 0 {
		for _, o := range opts {
			renderOption(w, o, width)
		}
		fmt.Fprintln(w)
	}

	for _, child := range c.Children() {
		renderSubtree(w, child, width)
	}
}

// usageLine builds the one-line synopsis for a node: the command path,
// an [OPTIONS] marker, a [COMMAND] marker when subcommands exist, and
// the positional arity rendered as <name> per required slot, [name] for
// the optional tail, and ... for an unbounded one.
func usageLine(c *argtree.Command) string {
	var b strings.Builder
	b.WriteString(strings.Join(c.Path(), " "))
	if len(c.Options()) > 0 {
		b.WriteString(" [OPTIONS]")
	}
	if len(c.Children()) > 0 {
		b.WriteString(" [COMMAND]")
	}
	b.WriteString(arityNotation(c.Args()))
	return b.String()
}

func arityNotation(a argtree.ArgInfo) string {
	var b strings.Builder
	for i := 0; i < a.Min; i++ {
		fmt.Fprintf(&b, " <%s>", a.Name)
	}
	switch {
	case a.Max == argtree.Unbounded:
		fmt.Fprintf(&b, " [%s...]", a.Name)
	case a.Max > a.Min:
		for i := a.Min; i < a.Max; i++ {
			fmt.Fprintf(&b, " [%s]", a.Name)
		}
	}
	return b.String()
}

func renderOption(w io.Writer, o argtree.OptionInfo, width int) {
	name := "-" + o.Short
	if o.Long != "" {
		name += ", --" + o.Long
	}
	line := fmt.Sprintf("    %-20s %s", name, o.Help)
	if o.Required {
		line += " " + requiredColor.Sprint("(required)")
	} else if o.TakesValue && o.Default != "" {
		line += fmt.Sprintf(" (default: %s)", o.Default)
	}
	fmt.Fprintln(w, wrap(line, width))
}

// terminalWidth probes w for a terminal width; 0 disables wrapping.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// wrap folds line onto continuation lines aligned with the help column.
// Lines that carry ANSI escapes are measured longer than they print;
// that slack only makes wrapping more conservative.
func wrap(line string, width int) string {
	const helpCol = 26
	if width <= helpCol || len(line) <= width {
		return line
	}
	words := strings.Fields(line[helpCol:])
	var b strings.Builder
	b.WriteString(line[:helpCol])
	col := helpCol
	for i, word := range words {
		if i > 0 && col+1+len(word) > width {
			b.WriteString("\n" + strings.Repeat(" ", helpCol))
			col = helpCol
		} else if i > 0 {
			b.WriteString(" ")
			col++
		}
		b.WriteString(word)
		col += len(word)
	}
	return b.String()
}
