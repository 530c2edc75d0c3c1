package helpdb

var logicRecords = []Record{
	{
		name:        ">",
		description: "Test if first is greater than second",
		syntax:      "a b >",
		args: []Arg{
			{"a", "number"},
			{"b", "number"},
		},
		example: "5 3 >",
	},
	{
		name:        ">=",
		description: "Test if first is greater than or equal to second",
		syntax:      "a b >=",
		args: []Arg{
			{"a", "number"},
			{"b", "number"},
		},
		example: "5 5 >=",
	},
	{
		name:        "<",
		description: "Test if first is less than second",
		syntax:      "a b <",
		args: []Arg{
			{"a", "number"},
			{"b", "number"},
		},
		example: "3 5 <",
	},
	{
		name:        "<=",
		description: "Test if first is less than or equal to second",
		syntax:      "a b <=",
		args: []Arg{
			{"a", "number"},
			{"b", "number"},
		},
		example: "5 5 <=",
	},
	{
		name:        "==",
		description: "Test if two values are equal",
		syntax:      "a b ==",
		args: []Arg{
			{"a", "number, complex, or symbol"},
			{"b", "same type as a"},
		},
		example: "42 42 ==",
	},
	{
		name:        "!=",
		description: "Test if two values are not equal",
		syntax:      "a b !=",
		args: []Arg{
			{"a", "number, complex, or symbol"},
			{"b", "same type as a"},
		},
		example: "1 2 !=",
	},
	{
		name:        "same",
		description: "Test if two values are equal (alias for ==)",
		syntax:      "a b same",
		args: []Arg{
			{"a", "number, complex, or symbol"},
			{"b", "same type as a"},
		},
		example: "'hello' 'hello' same",
	},
	{
		name:        "and",
		description: "Logical AND (true if both non-zero)",
		syntax:      "a b and",
		args: []Arg{
			{"a", "number (0 = false, non-zero = true)"},
			{"b", "number (0 = false, non-zero = true)"},
		},
		example: "1 1 and",
	},
	{
		name:        "or",
		description: "Logical OR (true if either non-zero)",
		syntax:      "a b or",
		args: []Arg{
			{"a", "number (0 = false, non-zero = true)"},
			{"b", "number (0 = false, non-zero = true)"},
		},
		example: "0 1 or",
	},
	{
		name:        "xor",
		description: "Logical XOR (true if exactly one is true)",
		syntax:      "a b xor",
		args: []Arg{
			{"a", "number (0 = false, non-zero = true)"},
			{"b", "number (0 = false, non-zero = true)"},
		},
		example: "1 0 xor",
	},
	{
		name:        "not",
		description: "Logical NOT (true becomes false, false becomes true)",
		syntax:      "x not",
		args:        []Arg{{"x", "number (0 = false, non-zero = true)"}},
		example:     "0 not",
	},
}
