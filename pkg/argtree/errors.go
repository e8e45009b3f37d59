// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by Parse when an empty argument vector caused the
// node to render its usage. It signals a deliberate, successful
// termination; Main maps it to exit status 0.
var ErrHelp = errors.New("help requested")

// UnknownOptionError is returned when a -x or --name token does not match
// any option on the current node.
type UnknownOptionError struct {
	Token string // option name with the dash prefix stripped
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s", e.Token)
}

// MissingValueError is returned when a value-taking option's switch
// appears as the last token.
type MissingValueError struct {
	Option string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option %s requires a value", e.Option)
}

// InvalidValueError is returned when an option's converter rejects the
// token supplied as its value. Err holds the converter's failure.
type InvalidValueError struct {
	Option string
	Token  string
	Err    error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option %s: %v", e.Token, e.Option, e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// MissingOptionError is returned when a parse completes without binding
// an option that has no default.
type MissingOptionError struct {
	Option string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("required option %s not given", e.Option)
}

// ArityError is returned when the number of captured positional values
// falls outside the declared range.
type ArityError struct {
	Arg string
	Got int
	Min int
	Max int // Unbounded for no upper limit
}

func (e *ArityError) Error() string {
	switch {
	case e.Max == Unbounded:
		return fmt.Sprintf("argument %s requires at least %d value(s), got %d", e.Arg, e.Min, e.Got)
	case e.Min == e.Max:
		return fmt.Sprintf("argument %s requires %d value(s), got %d", e.Arg, e.Min, e.Got)
	default:
		return fmt.Sprintf("argument %s requires %d-%d value(s), got %d", e.Arg, e.Min, e.Max, e.Got)
	}
}

// DuplicateError is returned at declaration time when two options or two
// subcommands on the same node share a name.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate declaration: %s", e.Name)
}

// NoValueError is returned by Option.Value when the option was never
// bound and has no default. After a successful parse this is unreachable
// for any option on a visited node: validation reports a
// *MissingOptionError first.
type NoValueError struct {
	Option string
}

func (e *NoValueError) Error() string {
	return fmt.Sprintf("option %s has no value and no default", e.Option)
}
