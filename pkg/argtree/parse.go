// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Parse consumes tokens against c in a single left-to-right pass.
//
// An empty token slice renders c's usage and returns ErrHelp. This holds
// at every node, so a subcommand token with nothing after it renders the
// subcommand's usage instead of validating it. A token
// starting with "--" is looked up among c's own options by long name, a
// token starting with "-" by short name; children never inherit options.
// A value-taking option consumes the following token and binds it through
// its converter; a boolean option binds the synthesized literal "true"
// without consuming anything. An option's OnSet callback runs at bind
// time, before the next token is examined.
//
// A bare token matching a child's name hands all remaining tokens to that
// child and ends processing at c: subcommand dispatch and positional
// capture are mutually exclusive. Any other bare token, together with
// everything after it, becomes c's positional capture.
//
// After the loop c validates itself (required options in declaration
// order, then positional arity) and, on success, runs its completion
// callback. A dispatched child has already validated and completed by
// then. Every error aborts the whole call chain unchanged.
func (c *Command) Parse(tokens []string) error {
	if len(tokens) == 0 {
		c.usageFunc()(c.writer(), c)
		return ErrHelp
	}

	i := 0
	for i < len(tokens) {
		t := tokens[i]
		i++

		if strings.HasPrefix(t, "-") {
			var opt option
			var name string
			if strings.HasPrefix(t, "--") {
				name = strings.TrimPrefix(t, "--")
				opt = c.lookupLong(name)
			} else {
				name = strings.TrimPrefix(t, "-")
				opt = c.lookupShort(name)
			}
			if opt == nil {
				return &UnknownOptionError{Token: name}
			}
			raw := "true" // synthesized for flags
			if opt.takesValue() {
				if i >= len(tokens) {
					return &MissingValueError{Option: name}
				}
				raw = tokens[i]
				i++
			}
			if err := opt.bind(c, raw); err != nil {
				return &InvalidValueError{Option: name, Token: raw, Err: err}
			}
			continue
		}

		if child, ok := c.children[t]; ok {
			if err := child.Parse(tokens[i:]); err != nil {
				return err
			}
			break
		}

		// Not an option, not a subcommand: the rest of the stream is
		// c's positional capture.
		c.args.capture(tokens[i-1:])
		break
	}

	for _, opt := range c.opts {
		if opt.required() && !opt.isGiven() {
			return &MissingOptionError{Option: opt.displayName()}
		}
	}
	if err := c.args.validate(); err != nil {
		return err
	}

	if c.onComplete != nil {
		c.onComplete(c)
	}
	return nil
}

// Main parses args against root and maps the outcome to a process exit
// status: 0 for success or ErrHelp, 1 for any other error, which is
// reported to stderr first.
//
//	func main() {
//	    os.Exit(argtree.Main(root, os.Args[1:]))
//	}
func Main(root *Command, args []string) int {
	err := root.Parse(args)
	if err == nil || errors.Is(err, ErrHelp) {
		return 0
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", root.name, color.RedString("%v", err))
	return 1
}

// defaultUsage is the built-in single-node usage rendering used when no
// renderer was installed with SetUsage.
func defaultUsage(w io.Writer, c *Command) {
	fmt.Fprintf(w, "usage: %s", strings.Join(c.Path(), " "))
	if len(c.opts) > 0 {
		fmt.Fprint(w, " [OPTIONS]")
	}
	if len(c.childOrder) > 0 {
		fmt.Fprint(w, " [COMMAND]")
	}
	args := c.args.info()
	if args.Max == Unbounded || args.Max > 0 {
		fmt.Fprintf(w, " %s...", args.Name)
	}
	fmt.Fprintln(w)
	if c.description != "" {
		fmt.Fprintf(w, "  %s\n", c.description)
	}
	for _, o := range c.Options() {
		name := "-" + o.Short
		if o.Long != "" {
			name += ", --" + o.Long
		}
		fmt.Fprintf(w, "  %-16s %s\n", name, o.Help)
	}
	for _, child := range c.Children() {
		fmt.Fprintf(w, "  %-16s %s\n", child.Name(), child.Description())
	}
}
