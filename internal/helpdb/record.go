// Package helpdb provides the built-in documentation catalog for rpnx commands.
// It holds one immutable help record per command token and renders records as
// formatted terminal text.
package helpdb

// Category identifies the command family a record was declared in.
type Category string

// Command families, in catalog order.
const (
	CategoryArithmetic   Category = "arithmetic"
	CategoryBitwise      Category = "bitwise"
	CategoryStack        Category = "stack"
	CategoryLogic        Category = "comparison"
	CategoryComplex      Category = "complex"
	CategoryTrigonometry Category = "trigonometry"
	CategoryLogarithm    Category = "logarithm"
	CategoryVariables    Category = "variables"
	CategoryControlFlow  Category = "control"
	CategoryPrograms     Category = "programs"
	CategoryDisplay      Category = "display"
	CategoryGeneral      Category = "general"
)

// Title returns a human-readable heading for the category.
func (c Category) Title() string {
	switch c {
	case CategoryArithmetic:
		return "Arithmetic"
	case CategoryBitwise:
		return "Bitwise"
	case CategoryStack:
		return "Stack"
	case CategoryLogic:
		return "Comparison and logic"
	case CategoryComplex:
		return "Complex numbers"
	case CategoryTrigonometry:
		return "Trigonometry"
	case CategoryLogarithm:
		return "Logarithms"
	case CategoryVariables:
		return "Variables"
	case CategoryControlFlow:
		return "Control flow"
	case CategoryPrograms:
		return "Programs"
	case CategoryDisplay:
		return "Display and configuration"
	case CategoryGeneral:
		return "General"
	default:
		return string(c)
	}
}

// Arg describes one stack argument of a command.
type Arg struct {
	Name        string
	Description string
}

// Record is the documentation entry for a single command token.
// Records are owned by a Registry and are read through accessors only.
type Record struct {
	name        string
	description string
	syntax      string
	args        []Arg
	example     string
	category    Category
}

// Name returns the command token the record documents.
func (r Record) Name() string { return r.name }

// Description returns the one-line summary.
func (r Record) Description() string { return r.description }

// Syntax returns the stack-order usage pattern, e.g. "a b +".
func (r Record) Syntax() string { return r.syntax }

// Example returns a concrete usage example.
func (r Record) Example() string { return r.example }

// Category returns the family the record belongs to.
func (r Record) Category() Category { return r.category }

// Args returns a copy of the argument list in stack order.
func (r Record) Args() []Arg {
	if len(r.args) == 0 {
		return nil
	}
	out := make([]Arg, len(r.args))
	copy(out, r.args)
	return out
}

// HasDistinctExample reports whether the example differs from the syntax
// line and is therefore worth showing.
func (r Record) HasDistinctExample() bool {
	return r.example != r.syntax
}

// Info is the serializable form of a Record used by the exporters.
type Info struct {
	Name        string    `json:"name" yaml:"name" toml:"name"`
	Description string    `json:"description" yaml:"description" toml:"description"`
	Syntax      string    `json:"syntax" yaml:"syntax" toml:"syntax"`
	Args        []ArgInfo `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	Example     string    `json:"example" yaml:"example" toml:"example"`
	Category    Category  `json:"category" yaml:"category" toml:"category"`
}

// ArgInfo is the serializable form of an Arg.
type ArgInfo struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Info returns a detached, serializable copy of the record.
func (r Record) Info() Info {
	info := Info{
		Name:        r.name,
		Description: r.description,
		Syntax:      r.syntax,
		Example:     r.example,
		Category:    r.category,
	}
	for _, a := range r.args {
		info.Args = append(info.Args, ArgInfo(a))
	}
	return info
}
