// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"fmt"
)

// Decl declares an option to AddOption.
//
// Short is required; Long is optional. A nil Default makes the option
// required. A nil Convert selects the canonical converter for T; for
// time.Time that is Date, so wall-clock options must set Convert: Clock
// explicitly. OnSet, if non-nil, runs synchronously the moment the option
// is bound, with the owning command as its argument.
type Decl[T any] struct {
	Short   string
	Long    string
	Help    string
	Default *T
	Convert ConvertFunc[T]
	OnSet   func(*Command)
}

// Default is a convenience for building Decl.Default pointers inline.
func Default[T any](v T) *T {
	return &v
}

// Option is a named, typed switch declared on a command. Its bound value
// is per parse run; see Command.Reset.
type Option[T any] struct {
	short   string
	long    string
	help    string
	def     *T
	bound   *T
	convert ConvertFunc[T]
	onSet   func(*Command)
	valued  bool
}

// option is the type-erased capability the parser works against, so that
// heterogeneous Option[T] values can share one ordered set per command.
type option interface {
	shortName() string
	longName() string
	displayName() string
	takesValue() bool
	required() bool
	isGiven() bool
	bind(owner *Command, raw string) error
	setDefaultRaw(raw string) error
	reset()
	info() OptionInfo
}

// OptionInfo is the read-only view of an option used by usage renderers.
type OptionInfo struct {
	Short      string
	Long       string
	Help       string
	Required   bool
	TakesValue bool
	Default    string // formatted default; meaningful only if !Required
	Given      bool
}

// AddOption declares a typed option on c and returns it. It fails with
// *DuplicateError if the short or long name is already taken on c, and
// with a plain error if the declaration itself is malformed (no short
// name, or no converter available for T).
//
// AddOption is a free function because Go methods cannot introduce type
// parameters.
func AddOption[T any](c *Command, d Decl[T]) (*Option[T], error) {
	if d.Short == "" {
		return nil, fmt.Errorf("argtree: option %q needs a short name", d.Long)
	}
	convert := d.Convert
	if convert == nil {
		canon, ok := canonicalFor[T]()
		if !ok {
			var zero T
			return nil, fmt.Errorf("argtree: no canonical converter for %T; set Decl.Convert", zero)
		}
		convert = canon
	}
	var zero T
	_, isBool := any(zero).(bool)
	o := &Option[T]{
		short:   d.Short,
		long:    d.Long,
		help:    d.Help,
		def:     d.Default,
		convert: convert,
		onSet:   d.OnSet,
		valued:  !isBool,
	}
	if err := c.addOption(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Given reports whether the option was bound during the current parse run.
func (o *Option[T]) Given() bool {
	return o.bound != nil
}

// Value resolves the option: the bound value if given, else the default.
// It returns *NoValueError when neither exists, which cannot happen for
// an option on a node that passed validation.
func (o *Option[T]) Value() (T, error) {
	if o.bound != nil {
		return *o.bound, nil
	}
	if o.def != nil {
		return *o.def, nil
	}
	var zero T
	return zero, &NoValueError{Option: o.displayName()}
}

// Get is Value for post-validation use; it panics on *NoValueError.
func (o *Option[T]) Get() T {
	v, err := o.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (o *Option[T]) shortName() string { return o.short }
func (o *Option[T]) longName() string  { return o.long }

func (o *Option[T]) displayName() string {
	if o.long != "" {
		return o.long
	}
	return o.short
}

func (o *Option[T]) takesValue() bool { return o.valued }
func (o *Option[T]) required() bool   { return o.def == nil }
func (o *Option[T]) isGiven() bool    { return o.bound != nil }

func (o *Option[T]) bind(owner *Command, raw string) error {
	v, err := o.convert(raw)
	if err != nil {
		return err
	}
	o.bound = &v
	if o.onSet != nil {
		o.onSet(owner)
	}
	return nil
}

func (o *Option[T]) setDefaultRaw(raw string) error {
	v, err := o.convert(raw)
	if err != nil {
		return err
	}
	o.def = &v
	return nil
}

func (o *Option[T]) reset() {
	o.bound = nil
}

func (o *Option[T]) info() OptionInfo {
	in := OptionInfo{
		Short:      o.short,
		Long:       o.long,
		Help:       o.help,
		Required:   o.def == nil,
		TakesValue: o.valued,
		Given:      o.bound != nil,
	}
	if o.def != nil {
		in.Default = fmt.Sprintf("%v", *o.def)
	}
	return in
}
