// Package grammar binds tree-sitter grammars to the syntax interfaces.
package grammar

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrUnknownLanguage is returned by Lookup for names that are not registered.
var ErrUnknownLanguage = errors.New("unknown language")

// Language is one registered grammar.
type Language struct {
	Name       string
	Aliases    []string
	Extensions []string

	ts *sitter.Language
}

// NewLanguage wraps a tree-sitter language.
func NewLanguage(name string, ts *sitter.Language, aliases, extensions []string) *Language {
	return &Language{Name: name, Aliases: aliases, Extensions: extensions, ts: ts}
}

// Registry keeps track of the available grammars by name and alias.
type Registry struct {
	byName map[string]*Language
	langs  []*Language
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Language)}
}

// Register adds a language under its name and aliases. Later registrations
// win on name clashes.
func (r *Registry) Register(l *Language) {
	r.langs = append(r.langs, l)
	r.byName[strings.ToLower(l.Name)] = l
	for _, a := range l.Aliases {
		r.byName[strings.ToLower(a)] = l
	}
}

// Lookup finds a language by name or alias, case-insensitively.
func (r *Registry) Lookup(name string) (*Language, error) {
	if l, ok := r.byName[strings.ToLower(name)]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownLanguage, name, strings.Join(r.Names(), ", "))
}

// DetectByPath returns the first language claiming the path's extension.
func (r *Registry) DetectByPath(path string) (*Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		for _, l := range r.langs {
			for _, e := range l.Extensions {
				if strings.EqualFold(e, ext) {
					return l, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("%w for %s", ErrUnknownLanguage, filepath.Base(path))
}

// Names lists the primary language names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.langs))
	seen := map[string]bool{}
	for _, l := range r.langs {
		if !seen[l.Name] {
			seen[l.Name] = true
			out = append(out, l.Name)
		}
	}
	sort.Strings(out)
	return out
}
