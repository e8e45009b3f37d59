// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argtree implements a declarative command-line parsing engine
// built around a tree of commands.
//
// Callers construct a tree of commands and subcommands, attach typed
// options and a positional-argument spec to each node, and hand the root
// the raw argument vector. The engine walks the tree, binds values,
// validates required options and positional arity, and invokes user
// callbacks at each successfully parsed node.
//
// The engine follows these rules:
//   - Type-safe options using Go generics with injected converters
//   - Options are local to their node; children do not inherit them
//   - Boolean options are pure flags and never consume the next token
//   - A token matching a subcommand name hands the rest of the line to
//     that subcommand; the parent sees none of the remaining tokens
//   - The first unrecognized bare token and everything after it become
//     the node's positional arguments
//   - Callbacks fire synchronously during the parse, not afterwards
//
// # Building a Tree
//
//	root := argtree.New("twig", "index and query text files")
//	_, err := argtree.AddOption(root, argtree.Decl[string]{
//	    Short:   "i",
//	    Long:    "index",
//	    Help:    "index file to read or write",
//	    Default: argtree.Default("IDX.TXT"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	query, err := root.Subcommand("query", "look up a term in the index")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	format, err := argtree.AddOption(query, argtree.Decl[string]{
//	    Short: "f",
//	    Long:  "format",
//	    Help:  "output format",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := query.SetArgs("term", 1, 1); err != nil {
//	    log.Fatal(err)
//	}
//	query.OnComplete(func(c *argtree.Command) {
//	    runQuery(format.Get(), c.Args().Values[0])
//	})
//
//	if err := root.Parse(os.Args[1:]); err != nil {
//	    // ...
//	}
//
// A switch repeated within one run rebinds the option: the last value
// wins, and OnSet fires once per binding.
//
// An option declared without a default is required; parsing fails with
// *MissingOptionError if its switch never appears. An option with a
// default resolves to that default when not given.
//
// # Converters
//
// Every option owns a converter from the raw token to its value type. A
// nil Decl.Convert selects the canonical converter for the type: string,
// int, float32, float64, bool, time.Time (calendar date or wall-clock
// time via Date and Clock), time.Duration, url.URL, Port, *semver.Version
// and uuid.UUID are covered. The parser never inspects value types; it
// only ever calls the option's own converter.
//
// # Errors
//
// All parse failures are fatal to the Parse call and surface to the root
// caller unchanged. Each failure mode has an exported error type carrying
// the offending names and tokens. An empty argument vector is the one
// non-error termination: the node renders its usage and Parse returns
// ErrHelp, which Main maps to exit status 0.
//
// # Reuse
//
// Bound values live on the declaration objects, so a tree holds state
// after a parse. Call Reset before handing the same tree a second
// argument vector. Concurrent parses of one tree are not supported.
package argtree
