package registry

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
)

// Entry is one code/canonical-name pair.
type Entry struct {
	Code string
	Name string
}

// Registry is a bidirectional code<->name table.
type Registry struct {
	kind    string
	entries []Entry
	byCode  map[string]string
	byName  map[string]string
	aliases map[string]string
	folded  map[string]string
}

// A Caser is stateful, so each fold gets its own.
func fold(s string) string { return cases.Fold().String(s) }

// New validates entries and aliases and builds a registry. Aliases map an
// alternative name to an existing code.
func New(kind string, entries []Entry, aliases map[string]string) (*Registry, error) {
	r := &Registry{
		kind:    kind,
		entries: slices.Clone(entries),
		byCode:  make(map[string]string, len(entries)),
		byName:  make(map[string]string, len(entries)),
		aliases: make(map[string]string, len(aliases)),
		folded:  make(map[string]string, len(entries)+len(aliases)),
	}

	for _, e := range entries {
		if e.Code == "" || e.Name == "" {
			return nil, fmt.Errorf("%w: %s %q=%q", ErrEmptyEntry, kind, e.Code, e.Name)
		}
		if _, ok := r.byCode[e.Code]; ok {
			return nil, fmt.Errorf("%w: %s %q", ErrDuplicateCode, kind, e.Code)
		}
		if _, ok := r.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %s %q", ErrDuplicateName, kind, e.Name)
		}
		if other, ok := r.folded[fold(e.Name)]; ok {
			return nil, fmt.Errorf("%w: %s %q differs from %q only by case", ErrDuplicateName, kind, e.Name, r.byCode[other])
		}
		r.byCode[e.Code] = e.Name
		r.byName[e.Name] = e.Code
		r.folded[fold(e.Name)] = e.Code
	}

	for alias, code := range aliases {
		if _, ok := r.byCode[code]; !ok {
			return nil, fmt.Errorf("%w: %s alias %q -> %q", ErrUnknownCode, kind, alias, code)
		}
		if _, ok := r.byName[alias]; ok {
			return nil, fmt.Errorf("%w: %s %q", ErrAliasCollision, kind, alias)
		}
		r.aliases[alias] = code
		if _, ok := r.folded[fold(alias)]; !ok {
			r.folded[fold(alias)] = code
		}
	}

	return r, nil
}

// Kind returns the registry kind ("os", "browser", "brand").
func (r *Registry) Kind() string { return r.kind }

// Len returns the number of canonical entries.
func (r *Registry) Len() int { return len(r.entries) }

// Entries returns a copy of the canonical entries in declaration order.
func (r *Registry) Entries() []Entry { return slices.Clone(r.entries) }

// Aliases returns a copy of the alias table.
func (r *Registry) Aliases() map[string]string {
	out := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		out[k] = v
	}
	return out
}

// Name returns the canonical name for code.
func (r *Registry) Name(code string) (string, bool) {
	name, ok := r.byCode[code]
	return name, ok
}

// Code returns the code for a canonical name or alias, matching exactly.
func (r *Registry) Code(name string) (string, bool) {
	if code, ok := r.byName[name]; ok {
		return code, true
	}
	code, ok := r.aliases[name]
	return code, ok
}

// CodeFold is Code with case-insensitive matching.
func (r *Registry) CodeFold(name string) (string, bool) {
	if code, ok := r.Code(name); ok {
		return code, true
	}
	code, ok := r.folded[fold(name)]
	return code, ok
}

// Canonical returns the canonical name for a name or alias.
func (r *Registry) Canonical(name string) (string, bool) {
	code, ok := r.CodeFold(name)
	if !ok {
		return "", false
	}
	return r.byCode[code], true
}

// Families groups registry codes under family names.
type Families struct {
	byCode map[string]string
	names  []string
}

// NewFamilies builds a family table; every code must exist in reg and belong
// to a single family.
func NewFamilies(reg *Registry, families map[string][]string) (*Families, error) {
	f := &Families{byCode: make(map[string]string)}
	for family, codes := range families {
		f.names = append(f.names, family)
		for _, code := range codes {
			if _, ok := reg.Name(code); !ok {
				return nil, fmt.Errorf("%w: %s family %q code %q", ErrUnknownCode, reg.Kind(), family, code)
			}
			if other, ok := f.byCode[code]; ok {
				return nil, fmt.Errorf("%w: %s code %q in families %q and %q", ErrDuplicateCode, reg.Kind(), code, other, family)
			}
			f.byCode[code] = family
		}
	}
	slices.Sort(f.names)
	return f, nil
}

// Family returns the family of code.
func (f *Families) Family(code string) (string, bool) {
	family, ok := f.byCode[code]
	return family, ok
}

// Names returns the sorted family names.
func (f *Families) Names() []string { return slices.Clone(f.names) }
