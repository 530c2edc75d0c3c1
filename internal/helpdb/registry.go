package helpdb

import (
	"fmt"
	"sort"
	"sync"
)

// Family groups the records declared for one command category.
type Family struct {
	Category Category
	Records  []Record
}

// builtinFamilies lists the catalog in declaration order.
func builtinFamilies() []Family {
	return []Family{
		{CategoryArithmetic, arithmeticRecords},
		{CategoryBitwise, bitwiseRecords},
		{CategoryStack, stackRecords},
		{CategoryLogic, logicRecords},
		{CategoryComplex, complexRecords},
		{CategoryTrigonometry, trigRecords},
		{CategoryLogarithm, logRecords},
		{CategoryVariables, variableRecords},
		{CategoryControlFlow, controlRecords},
		{CategoryPrograms, programRecords},
		{CategoryDisplay, displayRecords},
		{CategoryGeneral, generalRecords},
	}
}

// Registry is an immutable mapping from command token to help record.
// It is safe for concurrent use once constructed; no method mutates it.
type Registry struct {
	records    map[string]Record
	categories []Category
	byCategory map[Category][]string
}

// Build constructs a registry from the given families. It returns an error
// if a record has an empty name or if two records claim the same token.
func Build(families ...Family) (*Registry, error) {
	r := &Registry{
		records:    make(map[string]Record),
		byCategory: make(map[Category][]string),
	}

	for _, fam := range families {
		if _, seen := r.byCategory[fam.Category]; !seen {
			r.categories = append(r.categories, fam.Category)
			r.byCategory[fam.Category] = nil
		}
		for _, rec := range fam.Records {
			if rec.name == "" {
				return nil, fmt.Errorf("record in category %s has empty name", fam.Category)
			}
			if prev, exists := r.records[rec.name]; exists {
				return nil, fmt.Errorf("duplicate help entry %q (categories %s and %s)", rec.name, prev.category, fam.Category)
			}

			rec.category = fam.Category
			if len(rec.args) > 0 {
				rec.args = append([]Arg(nil), rec.args...)
			}
			r.records[rec.name] = rec
			r.byCategory[fam.Category] = append(r.byCategory[fam.Category], rec.name)
		}
	}

	return r, nil
}

// MustBuild is like Build but panics on a malformed catalog.
func MustBuild(families ...Family) *Registry {
	r, err := Build(families...)
	if err != nil {
		panic(fmt.Sprintf("helpdb: %v", err))
	}
	return r
}

// NewBuiltin builds a fresh registry holding the full rpnx command catalog.
func NewBuiltin() *Registry {
	return MustBuild(builtinFamilies()...)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide builtin registry, building it on first use.
// Concurrent callers all observe the fully built registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewBuiltin()
	})
	return defaultRegistry
}

// Lookup returns the record registered under token. Matching is exact and
// case-sensitive; an unknown token yields ok == false.
func (r *Registry) Lookup(token string) (Record, bool) {
	rec, ok := r.records[token]
	return rec, ok
}

// Contains reports whether token has a help entry.
func (r *Registry) Contains(token string) bool {
	_, ok := r.records[token]
	return ok
}

// Len returns the number of registered tokens.
func (r *Registry) Len() int {
	return len(r.records)
}

// Names returns every registered token in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.records))
	for name := range r.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories returns the command families in declaration order.
func (r *Registry) Categories() []Category {
	return append([]Category(nil), r.categories...)
}

// InCategory returns the records of one family in declaration order.
func (r *Registry) InCategory(c Category) []Record {
	names := r.byCategory[c]
	out := make([]Record, 0, len(names))
	for _, name := range names {
		out = append(out, r.records[name])
	}
	return out
}

// All returns every record grouped by family, in declaration order.
func (r *Registry) All() []Record {
	out := make([]Record, 0, len(r.records))
	for _, c := range r.categories {
		out = append(out, r.InCategory(c)...)
	}
	return out
}
