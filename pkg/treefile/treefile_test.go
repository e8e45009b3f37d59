// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/twigrun/twig/pkg/argtree"
)

const testDoc = `
name: twig
description: index and query text files
options:
  - short: i
    long: index
    type: string
    help: index file to use
    default: IDX.TXT
  - short: p
    long: port
    type: port
    help: server port
    default: "8080"
commands:
  - name: index
    description: build the index
    args: {name: file, min: 1, max: -1}
  - name: query
    description: look up a term
    options:
      - short: f
        long: format
        type: string
        help: output format
    args: {name: term, min: 1, max: 1}
`

func TestLoad(t *testing.T) {
	root, err := Load(strings.NewReader(testDoc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := root.Name(); got != "twig" {
		t.Errorf("Name() = %q, want twig", got)
	}
	opts := root.Options()
	if len(opts) != 2 {
		t.Fatalf("len(Options()) = %d, want 2", len(opts))
	}
	if opts[0].Long != "index" || opts[0].Default != "IDX.TXT" || opts[0].Required {
		t.Errorf("option[0] = %+v", opts[0])
	}
	if opts[1].Long != "port" || opts[1].Default != "8080" {
		t.Errorf("option[1] = %+v", opts[1])
	}

	index := root.Child("index")
	if index == nil {
		t.Fatal("Child(index) = nil")
	}
	if args := index.Args(); args.Name != "file" || args.Min != 1 || args.Max != argtree.Unbounded {
		t.Errorf("index args = %+v", args)
	}

	query := root.Child("query")
	if query == nil {
		t.Fatal("Child(query) = nil")
	}
	qopts := query.Options()
	if len(qopts) != 1 || !qopts[0].Required {
		t.Fatalf("query options = %+v", qopts)
	}

	// The built tree parses like a hand-built one.
	if err := root.Parse([]string{"query", "-f", "nlp", "term"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := query.Args().Values; len(got) != 1 || got[0] != "term" {
		t.Errorf("query args = %v, want [term]", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "no name",
			doc:  "description: nameless",
		},
		{
			name: "unknown field",
			doc:  "name: x\nbogus: true",
		},
		{
			name: "unknown option type",
			doc:  "name: x\noptions:\n  - short: a\n    type: complex128",
		},
		{
			name: "bad default",
			doc:  "name: x\noptions:\n  - short: n\n    type: int\n    default: lots",
		},
		{
			name: "duplicate option",
			doc:  "name: x\noptions:\n  - short: a\n  - short: a",
		},
		{
			name: "duplicate subcommand",
			doc:  "name: x\ncommands:\n  - name: run\n  - name: run",
		},
		{
			name: "bad arity",
			doc:  "name: x\nargs: {name: a, min: 3, max: 1}",
		},
		{
			name: "nameless subcommand",
			doc:  "name: x\ncommands:\n  - description: anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.doc)); err == nil {
				t.Errorf("Load() succeeded, want error")
			}
		})
	}
}

func TestFindOverrides(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "version = 1\n\n[defaults]\nindex = \"CUSTOM.TXT\"\n\"query.format\" = \"nlp\"\n"
	if err := os.WriteFile(filepath.Join(dir, "twig.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ov, path, err := FindOverrides(nested)
	if err != nil {
		t.Fatalf("FindOverrides() error = %v", err)
	}
	if ov == nil {
		t.Fatal("FindOverrides() = nil, want overrides from parent dir")
	}
	if path != filepath.Join(dir, "twig.toml") {
		t.Errorf("path = %q", path)
	}
	if got := ov.Defaults["index"]; got != "CUSTOM.TXT" {
		t.Errorf("Defaults[index] = %q, want CUSTOM.TXT", got)
	}
}

func TestFindOverridesMissing(t *testing.T) {
	ov, path, err := FindOverrides(t.TempDir())
	if err != nil {
		t.Fatalf("FindOverrides() error = %v", err)
	}
	if ov != nil || path != "" {
		t.Errorf("FindOverrides() = %+v, %q, want nil", ov, path)
	}
}

func TestApplyOverrides(t *testing.T) {
	root, err := Load(strings.NewReader(testDoc))
	if err != nil {
		t.Fatal(err)
	}

	ov := &Overrides{Defaults: map[string]string{
		"index":        "CUSTOM.TXT",
		"query.format": "nlp",
	}}
	if err := ov.Apply(root); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if got := root.Options()[0].Default; got != "CUSTOM.TXT" {
		t.Errorf("root index default = %q, want CUSTOM.TXT", got)
	}
	qopt := root.Child("query").Options()[0]
	if qopt.Required {
		t.Error("query format still required after override")
	}
	if qopt.Default != "nlp" {
		t.Errorf("query format default = %q, want nlp", qopt.Default)
	}

	// The previously required option now resolves without being given.
	if err := root.Parse([]string{"query", "term"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
}

func TestApplyOverrideErrors(t *testing.T) {
	root, err := Load(strings.NewReader(testDoc))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		defaults map[string]string
	}{
		{name: "unknown command", defaults: map[string]string{"nosuch.format": "x"}},
		{name: "unknown option", defaults: map[string]string{"query.nosuch": "x"}},
		{name: "rejected value", defaults: map[string]string{"port": "eighty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ov := &Overrides{Defaults: tt.defaults}
			if err := ov.Apply(root); err == nil {
				t.Errorf("Apply() succeeded, want error")
			}
		})
	}
}
