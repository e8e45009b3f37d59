// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"io"
	"os"
)

// Command is one node in the command tree. It owns an ordered set of
// options, a set of subcommands, and exactly one positional-argument
// spec. The tree's shape is fixed once built; parsing only mutates the
// bound values of options and argument specs.
type Command struct {
	name        string
	description string
	parent      *Command
	opts        []option
	children    map[string]*Command
	childOrder  []string
	args        *argSpec
	onComplete  func(*Command)
	out         io.Writer
	usage       func(io.Writer, *Command)
}

// New returns a root command. The initial argument spec accepts zero
// positional values; replace it with SetArgs.
func New(name, description string) *Command {
	args, _ := newArgSpec("args", 0, 0, nil)
	return &Command{
		name:        name,
		description: description,
		children:    make(map[string]*Command),
		args:        args,
	}
}

// Subcommand declares a child command on c. It fails with
// *DuplicateError if a child of that name already exists.
func (c *Command) Subcommand(name, description string) (*Command, error) {
	if _, ok := c.children[name]; ok {
		return nil, &DuplicateError{Name: name}
	}
	child := New(name, description)
	child.parent = c
	c.children[name] = child
	c.childOrder = append(c.childOrder, name)
	return child, nil
}

// OnComplete sets the callback invoked with c after c parses and
// validates successfully.
func (c *Command) OnComplete(fn func(*Command)) {
	c.onComplete = fn
}

// SetArgs replaces c's positional-argument spec. Pass Unbounded as max
// for no upper limit. Defaults stand in for the capture when no
// positional tokens reach c.
func (c *Command) SetArgs(name string, min, max int, defaults ...string) error {
	args, err := newArgSpec(name, min, max, defaults)
	if err != nil {
		return err
	}
	c.args = args
	return nil
}

// SetDefault re-defaults the option named by its long (or short) name
// using the option's own converter. A required option given a default
// this way stops being required.
func (c *Command) SetDefault(name, raw string) error {
	o := c.lookupLong(name)
	if o == nil {
		o = c.lookupShort(name)
	}
	if o == nil {
		return &UnknownOptionError{Token: name}
	}
	if err := o.setDefaultRaw(raw); err != nil {
		return &InvalidValueError{Option: name, Token: raw, Err: err}
	}
	return nil
}

// SetOutput sets the writer usage is rendered to when c parses an empty
// argument vector. Subtrees inherit the nearest ancestor's writer;
// the default is os.Stdout.
func (c *Command) SetOutput(w io.Writer) {
	c.out = w
}

// SetUsage replaces the usage renderer for c and, by inheritance, its
// subtree. The built-in renderer prints a compact single-node summary;
// package usage installs a full recursive one.
func (c *Command) SetUsage(fn func(io.Writer, *Command)) {
	c.usage = fn
}

// Name returns the node's command name.
func (c *Command) Name() string { return c.name }

// Description returns the node's human-readable summary.
func (c *Command) Description() string { return c.description }

// IsRoot reports whether c has no parent.
func (c *Command) IsRoot() bool { return c.parent == nil }

// Parent returns the parent node, or nil for the root. The reference is
// non-owning: it exists to answer IsRoot and to walk upward.
func (c *Command) Parent() *Command { return c.parent }

// Root walks the parent chain to the tree's root.
func (c *Command) Root() *Command {
	n := c
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Path returns the command names from the root down to c.
func (c *Command) Path() []string {
	if c.parent == nil {
		return []string{c.name}
	}
	return append(c.parent.Path(), c.name)
}

// Options returns the read-only views of c's options in declaration
// order.
func (c *Command) Options() []OptionInfo {
	infos := make([]OptionInfo, 0, len(c.opts))
	for _, o := range c.opts {
		infos = append(infos, o.info())
	}
	return infos
}

// Children returns c's subcommands in declaration order.
func (c *Command) Children() []*Command {
	kids := make([]*Command, 0, len(c.childOrder))
	for _, name := range c.childOrder {
		kids = append(kids, c.children[name])
	}
	return kids
}

// Child returns the subcommand of the given name, or nil.
func (c *Command) Child(name string) *Command {
	return c.children[name]
}

// Args returns the read-only view of c's positional-argument spec,
// including the currently bound values.
func (c *Command) Args() ArgInfo {
	return c.args.info()
}

// Reset clears the bound state of every option and argument spec in c's
// subtree, making the tree ready for another Parse.
func (c *Command) Reset() {
	for _, o := range c.opts {
		o.reset()
	}
	c.args.reset()
	for _, child := range c.children {
		child.Reset()
	}
}

func (c *Command) addOption(o option) error {
	for _, have := range c.opts {
		if have.shortName() == o.shortName() {
			return &DuplicateError{Name: o.shortName()}
		}
		if o.longName() != "" && have.longName() == o.longName() {
			return &DuplicateError{Name: o.longName()}
		}
	}
	c.opts = append(c.opts, o)
	return nil
}

// Short and long names are independent namespaces, local to the node.

func (c *Command) lookupShort(name string) option {
	for _, o := range c.opts {
		if o.shortName() == name {
			return o
		}
	}
	return nil
}

func (c *Command) lookupLong(name string) option {
	for _, o := range c.opts {
		if o.longName() != "" && o.longName() == name {
			return o
		}
	}
	return nil
}

func (c *Command) writer() io.Writer {
	for n := c; n != nil; n = n.parent {
		if n.out != nil {
			return n.out
		}
	}
	return os.Stdout
}

func (c *Command) usageFunc() func(io.Writer, *Command) {
	for n := c; n != nil; n = n.parent {
		if n.usage != nil {
			return n.usage
		}
	}
	return defaultUsage
}
