// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import "fmt"

// Unbounded, as an ArgSpec maximum, allows any number of positional
// values at or above the minimum.
const Unbounded = -1

// argSpec is a command's one positional-capture rule. Bound values are
// initialized to the defaults and overwritten at most once per parse run
// with the tail of the token stream.
type argSpec struct {
	name     string
	min      int
	max      int
	defaults []string
	bound    []string
}

// ArgInfo is the read-only view of an argument spec used by usage
// renderers and completion callbacks.
type ArgInfo struct {
	Name   string
	Min    int
	Max    int // Unbounded for no upper limit
	Values []string
}

func newArgSpec(name string, min, max int, defaults []string) (*argSpec, error) {
	if min < 0 {
		return nil, fmt.Errorf("argtree: argument %s: minimum %d is negative", name, min)
	}
	if max != Unbounded && max < min {
		return nil, fmt.Errorf("argtree: argument %s: maximum %d below minimum %d", name, max, min)
	}
	a := &argSpec{
		name:     name,
		min:      min,
		max:      max,
		defaults: defaults,
	}
	a.reset()
	return a, nil
}

// capture replaces the bound values with the given token tail.
func (a *argSpec) capture(tokens []string) {
	a.bound = append([]string(nil), tokens...)
}

func (a *argSpec) validate() error {
	got := len(a.bound)
	if got < a.min || (a.max != Unbounded && got > a.max) {
		return &ArityError{Arg: a.name, Got: got, Min: a.min, Max: a.max}
	}
	return nil
}

func (a *argSpec) reset() {
	a.bound = append([]string(nil), a.defaults...)
}

func (a *argSpec) info() ArgInfo {
	return ArgInfo{
		Name:   a.name,
		Min:    a.min,
		Max:    a.max,
		Values: append([]string(nil), a.bound...),
	}
}
