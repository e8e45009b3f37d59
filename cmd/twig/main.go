// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command twig is a small line indexer built on the argtree engine.
//
//	twig [-i FILE] index FILES...
//	twig [-i FILE] query -f FORMAT TERM
//
// A twig.toml in the working directory (or any parent) can override
// option defaults, e.g.:
//
//	[defaults]
//	index = "CUSTOM.TXT"
//	"query.format" = "text"
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/twigrun/twig/pkg/argtree"
	"github.com/twigrun/twig/pkg/treefile"
	"github.com/twigrun/twig/pkg/usage"
)

type app struct {
	indexFile *argtree.Option[string]
	format    *argtree.Option[string]
	verbose   *argtree.Option[bool]

	// err holds a failure raised inside a completion callback, since
	// callbacks do not return values.
	err error
}

func main() {
	log.SetFlags(0)

	a := &app{}
	root, err := a.buildCLI()
	if err != nil {
		log.Fatalf("twig: %v", err)
	}

	if cwd, err := os.Getwd(); err == nil {
		ov, path, err := treefile.FindOverrides(cwd)
		if err != nil {
			log.Fatalf("twig: %v", err)
		}
		if ov != nil {
			if err := ov.Apply(root); err != nil {
				log.Fatalf("twig: %s: %v", path, err)
			}
		}
	}

	code := argtree.Main(root, os.Args[1:])
	if code == 0 && a.err != nil {
		fmt.Fprintf(os.Stderr, "twig: %s\n", color.RedString("%v", a.err))
		code = 1
	}
	os.Exit(code)
}

func (a *app) buildCLI() (*argtree.Command, error) {
	root := argtree.New("twig", "index and query text files")
	usage.Install(root)

	var err error
	a.indexFile, err = argtree.AddOption(root, argtree.Decl[string]{
		Short:   "i",
		Long:    "index",
		Help:    "index file to read or write",
		Default: argtree.Default("IDX.TXT"),
	})
	if err != nil {
		return nil, err
	}
	a.verbose, err = argtree.AddOption(root, argtree.Decl[bool]{
		Short:   "v",
		Long:    "verbose",
		Help:    "log progress while indexing",
		Default: argtree.Default(false),
	})
	if err != nil {
		return nil, err
	}
	_, err = argtree.AddOption(root, argtree.Decl[bool]{
		Short:   "h",
		Long:    "help",
		Help:    "show this help and exit",
		Default: argtree.Default(false),
		OnSet: func(c *argtree.Command) {
			usage.Render(os.Stdout, c)
			os.Exit(0)
		},
	})
	if err != nil {
		return nil, err
	}

	index, err := root.Subcommand("index", "build the index from files")
	if err != nil {
		return nil, err
	}
	if err := index.SetArgs("file", 1, argtree.Unbounded); err != nil {
		return nil, err
	}
	index.OnComplete(func(c *argtree.Command) {
		a.err = a.buildIndex(c.Args().Values)
	})

	query, err := root.Subcommand("query", "look up a term in the index")
	if err != nil {
		return nil, err
	}
	a.format, err = argtree.AddOption(query, argtree.Decl[string]{
		Short: "f",
		Long:  "format",
		Help:  "output format: text or nlp",
	})
	if err != nil {
		return nil, err
	}
	if err := query.SetArgs("term", 1, 1); err != nil {
		return nil, err
	}
	query.OnComplete(func(c *argtree.Command) {
		a.err = a.runQuery(c.Args().Values[0])
	})

	return root, nil
}
