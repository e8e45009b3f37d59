// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/twigrun/twig/pkg/argtree"
)

const (
	overridesName    = "twig.toml"
	overridesVersion = 1
)

// Overrides holds per-option default overrides loaded from a twig.toml.
// Keys in the defaults table are dotted command paths (relative to the
// root) ending in an option's long or short name, e.g. "index" for a
// root option or "query.format" for one on the query subcommand.
type Overrides struct {
	Version  int               `toml:"version,omitempty"`
	Defaults map[string]string `toml:"defaults"`
}

// FindOverrides looks for a twig.toml in startDir and each parent
// directory, nearest first. It returns (nil, "", nil) when no file
// exists anywhere up the chain.
func FindOverrides(startDir string) (*Overrides, string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, overridesName)
		if _, err := os.Stat(path); err == nil {
			ov, err := loadOverrides(path)
			if err != nil {
				return nil, "", err
			}
			return ov, path, nil
		} else if !os.IsNotExist(err) {
			return nil, "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", nil
		}
		dir = parent
	}
}

func loadOverrides(path string) (*Overrides, error) {
	var ov Overrides
	if _, err := toml.DecodeFile(path, &ov); err != nil {
		return nil, fmt.Errorf("treefile: parse %s: %w", path, err)
	}
	if ov.Version == 0 {
		ov.Version = overridesVersion
	}
	if ov.Version != overridesVersion {
		return nil, fmt.Errorf("treefile: %s: unsupported version %d", path, ov.Version)
	}
	return &ov, nil
}

// Apply re-defaults each option named in ov on the tree rooted at root.
// The replacement default runs through the option's own converter; an
// unknown path or rejected value aborts the application.
func (ov *Overrides) Apply(root *argtree.Command) error {
	if ov == nil {
		return nil
	}
	for key, raw := range ov.Defaults {
		segs := strings.Split(key, ".")
		node := root
		for _, seg := range segs[:len(segs)-1] {
			node = node.Child(seg)
			if node == nil {
				return fmt.Errorf("treefile: override %s: no such command %q", key, seg)
			}
		}
		name := segs[len(segs)-1]
		if err := node.SetDefault(name, raw); err != nil {
			return fmt.Errorf("treefile: override %s: %w", key, err)
		}
	}
	return nil
}
