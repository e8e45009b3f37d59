// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treefile builds argtree command trees from declarative YAML
// documents and applies per-option default overrides from a discovered
// TOML file.
//
// A tree document looks like:
//
//	name: twig
//	description: index and query text files
//	options:
//	  - short: i
//	    long: index
//	    type: string
//	    help: index file to use
//	    default: IDX.TXT
//	commands:
//	  - name: query
//	    description: look up a term
//	    options:
//	      - short: f
//	        long: format
//	        type: string
//	        help: output format
//	    args: {name: term, min: 1, max: 1}
//
// Options built this way have no callbacks; callers attach OnComplete
// handlers to the returned nodes by walking the tree with Child.
package treefile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/twigrun/twig/pkg/argtree"
)

type commandDoc struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Options     []optionDoc  `yaml:"options"`
	Args        *argsDoc     `yaml:"args"`
	Commands    []commandDoc `yaml:"commands"`
}

type optionDoc struct {
	Short   string  `yaml:"short"`
	Long    string  `yaml:"long"`
	Type    string  `yaml:"type"`
	Help    string  `yaml:"help"`
	Default *string `yaml:"default"`
}

type argsDoc struct {
	Name     string   `yaml:"name"`
	Min      int      `yaml:"min"`
	Max      int      `yaml:"max"`
	Defaults []string `yaml:"defaults"`
}

// Load decodes a tree document and builds the command tree it declares.
// Unknown YAML fields, unknown option types, malformed defaults and
// duplicate names all fail the load.
func Load(r io.Reader) (*argtree.Command, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc commandDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("treefile: decode: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("treefile: document has no name")
	}
	root := argtree.New(doc.Name, doc.Description)
	if err := populate(root, doc); err != nil {
		return nil, err
	}
	return root, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) (*argtree.Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func populate(c *argtree.Command, doc commandDoc) error {
	for _, o := range doc.Options {
		if err := addOption(c, o); err != nil {
			return fmt.Errorf("treefile: command %s: %w", c.Name(), err)
		}
	}
	if doc.Args != nil {
		max := doc.Args.Max
		if max < 0 {
			max = argtree.Unbounded
		}
		if err := c.SetArgs(doc.Args.Name, doc.Args.Min, max, doc.Args.Defaults...); err != nil {
			return fmt.Errorf("treefile: command %s: %w", c.Name(), err)
		}
	}
	for _, sub := range doc.Commands {
		if sub.Name == "" {
			return fmt.Errorf("treefile: command %s: subcommand has no name", c.Name())
		}
		child, err := c.Subcommand(sub.Name, sub.Description)
		if err != nil {
			return fmt.Errorf("treefile: command %s: %w", c.Name(), err)
		}
		if err := populate(child, sub); err != nil {
			return err
		}
	}
	return nil
}

// addOption maps the document's type name onto a typed declaration. The
// default, if present, runs through the same converter the option will
// use at parse time, so a bad default fails the load rather than the
// first parse.
func addOption(c *argtree.Command, o optionDoc) error {
	switch o.Type {
	case "string", "":
		return declare(c, o, argtree.Text)
	case "int":
		return declare(c, o, argtree.Int)
	case "float32":
		return declare(c, o, argtree.Float32)
	case "float64":
		return declare(c, o, argtree.Float64)
	case "bool":
		return declare(c, o, argtree.Bool)
	case "date":
		return declare(c, o, argtree.Date)
	case "clock":
		return declare(c, o, argtree.Clock)
	case "duration":
		return declare(c, o, argtree.Duration)
	case "url":
		return declare(c, o, argtree.URL)
	case "port":
		return declare(c, o, argtree.PortValue)
	case "semver":
		return declare(c, o, argtree.Semver)
	case "uuid":
		return declare(c, o, argtree.UUID)
	}
	return fmt.Errorf("option -%s: unknown type %q", o.Short, o.Type)
}

func declare[T any](c *argtree.Command, o optionDoc, convert argtree.ConvertFunc[T]) error {
	decl := argtree.Decl[T]{
		Short:   o.Short,
		Long:    o.Long,
		Help:    o.Help,
		Convert: convert,
	}
	if o.Default != nil {
		v, err := convert(*o.Default)
		if err != nil {
			return fmt.Errorf("option -%s: bad default %q: %w", o.Short, *o.Default, err)
		}
		decl.Default = &v
	}
	_, err := argtree.AddOption(c, decl)
	return err
}
