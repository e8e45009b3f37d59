// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/twigrun/twig/pkg/argtree"
)

func TestBuildCLI(t *testing.T) {
	a := &app{}
	root, err := a.buildCLI()
	if err != nil {
		t.Fatalf("buildCLI() error = %v", err)
	}

	if root.Child("index") == nil || root.Child("query") == nil {
		t.Fatal("missing subcommands")
	}
	if got := a.indexFile.Get(); got != "IDX.TXT" {
		t.Errorf("index default = %q, want IDX.TXT", got)
	}

	// query without a positional term trips arity even though -f bound.
	err = root.Parse([]string{"query", "-f", "nlp"})
	var arity *argtree.ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("Parse() error = %v, want *ArityError", err)
	}
	if !a.format.Given() {
		t.Error("format.Given() = false")
	}
}

func TestIndexAndQuery(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(src, []byte("alpha beta\ngamma alpha\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	idx := filepath.Join(dir, "IDX.TXT")

	a := &app{}
	root, err := a.buildCLI()
	if err != nil {
		t.Fatal(err)
	}

	if err := root.Parse([]string{"-i", idx, "index", src}); err != nil {
		t.Fatalf("Parse(index) error = %v", err)
	}
	if a.err != nil {
		t.Fatalf("buildIndex error = %v", a.err)
	}

	data, err := os.ReadFile(idx)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "alpha\t"+src+":1") {
		t.Errorf("index missing posting for alpha line 1:\n%s", data)
	}
	if !strings.Contains(string(data), "alpha\t"+src+":2") {
		t.Errorf("index missing posting for alpha line 2:\n%s", data)
	}

	root.Reset()
	a.err = nil
	if err := root.Parse([]string{"-i", idx, "query", "-f", "text", "ALPHA"}); err != nil {
		t.Fatalf("Parse(query) error = %v", err)
	}
	if a.err != nil {
		t.Fatalf("runQuery error = %v", a.err)
	}

	root.Reset()
	a.err = nil
	if err := root.Parse([]string{"-i", idx, "query", "-f", "bogus", "alpha"}); err != nil {
		t.Fatalf("Parse(query bogus format) error = %v", err)
	}
	if a.err == nil {
		t.Error("runQuery accepted unknown format")
	}

	root.Reset()
	a.err = nil
	if err := root.Parse([]string{"-i", idx, "query", "-f", "text", "missingword"}); err != nil {
		t.Fatalf("Parse(query missing term) error = %v", err)
	}
	if a.err == nil {
		t.Error("runQuery found a term that is not in the index")
	}
}
