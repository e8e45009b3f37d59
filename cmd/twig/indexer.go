// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"unicode"
)

// The index file holds one posting per line: "word\tfile:lineno".

func (a *app) buildIndex(files []string) error {
	var postings []string
	for _, path := range files {
		if a.verbose.Get() {
			log.Printf("indexing %s", path)
		}
		p, err := scanFile(path)
		if err != nil {
			return err
		}
		postings = append(postings, p...)
	}
	sort.Strings(postings)

	out := a.indexFile.Get()
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, p := range postings {
		fmt.Fprintln(w, p)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	if a.verbose.Get() {
		log.Printf("wrote %d postings to %s", len(postings), out)
	}
	return nil
}

func scanFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var postings []string
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		words := strings.FieldsFunc(sc.Text(), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, w := range words {
			postings = append(postings, fmt.Sprintf("%s\t%s:%d", strings.ToLower(w), path, line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return postings, nil
}

func (a *app) runQuery(term string) error {
	format := a.format.Get()
	switch format {
	case "text", "nlp":
	default:
		return fmt.Errorf("unknown format %q (want text or nlp)", format)
	}

	f, err := os.Open(a.indexFile.Get())
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer f.Close()

	want := strings.ToLower(term)
	found := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word, loc, ok := strings.Cut(sc.Text(), "\t")
		if !ok || word != want {
			continue
		}
		found++
		switch format {
		case "text":
			fmt.Println(loc)
		case "nlp":
			fmt.Printf("term=%q loc=%q\n", term, loc)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan index: %w", err)
	}
	if found == 0 {
		return fmt.Errorf("%q not found in %s", term, a.indexFile.Get())
	}
	return nil
}
