package helpdb

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuiltin_Size(t *testing.T) {
	reg := NewBuiltin()

	assert.Equal(t, 150, reg.Len())
	assert.Len(t, reg.Names(), 150)
	assert.Len(t, reg.All(), 150)
}

func TestBuiltinCatalog_HasNoDuplicateTokens(t *testing.T) {
	seen := make(map[string]Category)
	for _, fam := range builtinFamilies() {
		for _, rec := range fam.Records {
			prev, dup := seen[rec.name]
			assert.False(t, dup, "token %q declared in %s and %s", rec.name, prev, fam.Category)
			seen[rec.name] = fam.Category
		}
	}

	_, err := Build(builtinFamilies()...)
	require.NoError(t, err)
}

func TestLookup_EveryTokenResolvesToItself(t *testing.T) {
	reg := NewBuiltin()

	for _, name := range reg.Names() {
		rec, ok := reg.Lookup(name)
		require.True(t, ok, "token %q", name)
		assert.Equal(t, name, rec.Name())
		assert.NotEmpty(t, rec.Description(), "token %q", name)
		assert.NotEmpty(t, rec.Syntax(), "token %q", name)
		assert.NotEmpty(t, rec.Example(), "token %q", name)
		assert.NotEmpty(t, rec.Category(), "token %q", name)
	}
}

func TestLookup_Unknown(t *testing.T) {
	reg := NewBuiltin()

	tests := []string{
		"not_a_real_command",
		"",
		"SQRT",
		"Sto",
		"sq ",
		" sqrt",
		"sqr",
		"<<",
		"c->",
	}

	for _, token := range tests {
		t.Run(token, func(t *testing.T) {
			rec, ok := reg.Lookup(token)
			assert.False(t, ok)
			assert.Equal(t, Record{}, rec)
			assert.False(t, reg.Contains(token))
		})
	}
}

func TestLookup_SymbolicTokens(t *testing.T) {
	reg := NewBuiltin()

	for _, token := range []string{"+", "-", "*", "/", "^", "%", "%inv", "&", "|", "~", "<=", ">=", "==", "!=", "->", "c->r", "r->c", "d->r", "sto+", "sto/", "?"} {
		rec, ok := reg.Lookup(token)
		require.True(t, ok, "token %q", token)
		assert.Equal(t, token, rec.Name())
	}
}

func TestLookup_Sto(t *testing.T) {
	rec, ok := NewBuiltin().Lookup("sto")
	require.True(t, ok)

	assert.Equal(t, "value 'name' sto", rec.Syntax())
	require.Len(t, rec.Args(), 2)
	assert.Equal(t, Arg{"value", "any object to store"}, rec.Args()[0])
	assert.Equal(t, Arg{"name", "quoted symbol, variable name"}, rec.Args()[1])
	assert.Equal(t, CategoryVariables, rec.Category())
}

func TestLookup_PlusAndMinus(t *testing.T) {
	reg := NewBuiltin()

	plus, ok := reg.Lookup("+")
	require.True(t, ok)
	minus, ok := reg.Lookup("-")
	require.True(t, ok)

	assert.Len(t, plus.Args(), 2)
	assert.Len(t, minus.Args(), 2)
	assert.NotEqual(t, plus.Description(), minus.Description())
}

func TestAliases_AreIndependentRecords(t *testing.T) {
	reg := NewBuiltin()

	aliases := map[string]string{
		"pop":    "drop",
		"erase":  "del",
		"clear":  "del",
		"q":      "quit",
		"exit":   "quit",
		"h":      "help",
		"?":      "help",
		"chs":    "neg",
		"same":   "==",
		"log":    "ln",
		"exp10":  "alog10",
		"exp2":   "alog2",
		"stoneg": "sneg",
		"stoinv": "sinv",
	}

	for alias, canonical := range aliases {
		t.Run(alias, func(t *testing.T) {
			a, ok := reg.Lookup(alias)
			require.True(t, ok)
			c, ok := reg.Lookup(canonical)
			require.True(t, ok)

			assert.Equal(t, alias, a.Name())
			assert.Equal(t, canonical, c.Name())
			assert.Contains(t, a.Description(), "(alias for "+canonical+")")
			assert.NotContains(t, c.Description(), "alias for")
			assert.NotEqual(t, a.Syntax(), c.Syntax(), "alias syntax names the alias token")
			assert.Equal(t, c.Category(), a.Category())
		})
	}
}

func TestRecord_ArgsReturnsCopy(t *testing.T) {
	reg := NewBuiltin()

	rec, ok := reg.Lookup("sqrt")
	require.True(t, ok)

	args := rec.Args()
	require.Len(t, args, 1)
	args[0].Name = "mutated"

	again, _ := reg.Lookup("sqrt")
	assert.Equal(t, "x", again.Args()[0].Name)
}

func TestRecord_EmptyArgs(t *testing.T) {
	rec, ok := NewBuiltin().Lookup("pi")
	require.True(t, ok)

	assert.Nil(t, rec.Args())
	assert.False(t, rec.HasDistinctExample())
}

func TestBuild_DuplicateToken(t *testing.T) {
	fams := []Family{
		{CategoryStack, []Record{{name: "drop", description: "first", syntax: "x drop", example: "x drop"}}},
		{CategoryGeneral, []Record{{name: "drop", description: "second", syntax: "x drop", example: "x drop"}}},
	}

	reg, err := Build(fams...)
	assert.Nil(t, reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate help entry "drop"`)

	assert.Panics(t, func() { MustBuild(fams...) })
}

func TestBuild_EmptyName(t *testing.T) {
	_, err := Build(Family{CategoryGeneral, []Record{{description: "nameless"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty name")
}

func TestBuild_DetachesArgs(t *testing.T) {
	args := []Arg{{"x", "number"}}
	reg := MustBuild(Family{CategoryArithmetic, []Record{{name: "neg", syntax: "x neg", example: "1 neg", args: args}}})

	args[0].Description = "changed"

	rec, ok := reg.Lookup("neg")
	require.True(t, ok)
	assert.Equal(t, "number", rec.Args()[0].Description)
}

func TestRegistry_Categories(t *testing.T) {
	reg := NewBuiltin()

	cats := reg.Categories()
	require.Len(t, cats, 12)
	assert.Equal(t, CategoryArithmetic, cats[0])
	assert.Equal(t, CategoryGeneral, cats[len(cats)-1])

	total := 0
	for _, c := range cats {
		recs := reg.InCategory(c)
		assert.NotEmpty(t, recs, "category %s", c)
		assert.NotEqual(t, string(c), c.Title())
		for _, rec := range recs {
			assert.Equal(t, c, rec.Category())
		}
		total += len(recs)
	}
	assert.Equal(t, reg.Len(), total)

	// Mutating the returned slice must not affect the registry.
	cats[0] = "bogus"
	assert.Equal(t, CategoryArithmetic, reg.Categories()[0])
}

func TestRegistry_InCategoryKeepsDeclarationOrder(t *testing.T) {
	recs := NewBuiltin().InCategory(CategoryBitwise)

	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		names = append(names, rec.Name())
	}
	assert.Equal(t, []string{"&", "|", "~", "^"}, names)
}

func TestRegistry_NamesSorted(t *testing.T) {
	names := NewBuiltin().Names()
	for i := 1; i < len(names); i++ {
		assert.True(t, strings.Compare(names[i-1], names[i]) < 0, "%q before %q", names[i-1], names[i])
	}
}

func TestDefault_ConcurrentFirstUse(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	results := make([]*Registry, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg := Default()
			_, ok := reg.Lookup("sqrt")
			assert.True(t, ok)
			assert.Equal(t, 150, reg.Len())
			results[i] = reg
		}(i)
	}
	wg.Wait()

	for _, reg := range results {
		assert.Same(t, results[0], reg)
	}
}

func TestCategory_TitleUnknown(t *testing.T) {
	assert.Equal(t, "custom", Category("custom").Title())
}
