// Package config loads the project-level file that answers the
// questions the checker's external environment collaborator would
// otherwise answer interactively: which script context (server/client/
// none) a given file lives in, and whether the @rbx-client/@rbx-server
// heuristic checks should run at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"

	"github.com/cwbudde/ts2luau/internal/ast"
)

// Project is the decoded shape of a ts2luau project file.
type Project struct {
	RootDir string `yaml:"rootDir"`

	// Files maps a glob pattern (matched with doublestar against a path
	// relative to RootDir) to the script context every matching file
	// runs under, e.g. `"src/server/**": "server"`.
	Files map[string]string `yaml:"files"`

	// NoHeuristics disables the cross-context access checks entirely,
	// regardless of what Files says (collaborators.CompilerHost.NoHeuristics).
	NoHeuristics bool `yaml:"noHeuristics"`
}

// Load reads and decodes the project file at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}
	if p.RootDir == "" {
		p.RootDir = filepath.Dir(path)
	}
	return &p, nil
}

// ScriptContextFor resolves file's script context by matching it, made
// relative to RootDir, against every glob pattern in Files. The first
// pattern that matches wins; ties are resolved by iteration order of
// the underlying map, so overlapping patterns are a configuration error
// the caller should avoid, not something this resolves deterministically.
func (p *Project) ScriptContextFor(file string) ast.ScriptContext {
	rel, err := filepath.Rel(p.RootDir, file)
	if err != nil {
		rel = file
	}
	rel = filepath.ToSlash(rel)

	for pattern, ctx := range p.Files {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil || !ok {
			continue
		}
		switch ctx {
		case "server":
			return ast.ScriptContextServer
		case "client":
			return ast.ScriptContextClient
		default:
			return ast.ScriptContextNone
		}
	}
	return ast.ScriptContextNone
}
