package helpdb

var arithmeticRecords = []Record{
	{
		name:        "+",
		description: "Add two numbers or concatenate symbols",
		syntax:      "a b +",
		args: []Arg{
			{"a", "number, complex, or symbol"},
			{"b", "number, complex, or symbol"},
		},
		example: "1 2 +",
	},
	{
		name:        "-",
		description: "Subtract second number from first",
		syntax:      "a b -",
		args: []Arg{
			{"a", "number or complex"},
			{"b", "number or complex"},
		},
		example: "5 3 -",
	},
	{
		name:        "*",
		description: "Multiply two numbers",
		syntax:      "a b *",
		args: []Arg{
			{"a", "number or complex"},
			{"b", "number or complex"},
		},
		example: "3 4 *",
	},
	{
		name:        "/",
		description: "Divide first number by second",
		syntax:      "a b /",
		args: []Arg{
			{"a", "number or complex"},
			{"b", "number or complex, non-zero"},
		},
		example: "10 2 /",
	},
	{
		name:        "neg",
		description: "Negate a number (change sign)",
		syntax:      "x neg",
		args:        []Arg{{"x", "number or complex"}},
		example:     "5 neg",
	},
	{
		name:        "chs",
		description: "Change sign (alias for neg)",
		syntax:      "x chs",
		args:        []Arg{{"x", "number or complex"}},
		example:     "-3 chs",
	},
	{
		name:        "inv",
		description: "Compute multiplicative inverse (1/x)",
		syntax:      "x inv",
		args:        []Arg{{"x", "number or complex, non-zero"}},
		example:     "4 inv",
	},
	{
		name:        "pow",
		description: "Raise first number to power of second",
		syntax:      "x y pow",
		args: []Arg{
			{"x", "base, number or complex"},
			{"y", "exponent, number or complex"},
		},
		example: "2 10 pow",
	},
	{
		name:        "sqrt",
		description: "Compute square root",
		syntax:      "x sqrt",
		args:        []Arg{{"x", "number or complex"}},
		example:     "9 sqrt",
	},
	{
		name:        "sq",
		description: "Compute square (x*x)",
		syntax:      "x sq",
		args:        []Arg{{"x", "number or complex"}},
		example:     "5 sq",
	},
	{
		name:        "abs",
		description: "Absolute value of real or magnitude of complex",
		syntax:      "x abs",
		args:        []Arg{{"x", "number or complex"}},
		example:     "-5 abs",
	},
	{
		name:        "sign",
		description: "Sign of real (-1, 0, 1) or unit vector for complex",
		syntax:      "x sign",
		args:        []Arg{{"x", "number or complex"}},
		example:     "-42 sign",
	},
	{
		name:        "min",
		description: "Return the smaller of two numbers",
		syntax:      "a b min",
		args: []Arg{
			{"a", "number"},
			{"b", "number"},
		},
		example: "3 7 min",
	},
	{
		name:        "max",
		description: "Return the larger of two numbers",
		syntax:      "a b max",
		args: []Arg{
			{"a", "number"},
			{"b", "number"},
		},
		example: "3 7 max",
	},
	{
		name:        "mod",
		description: "Compute remainder of division",
		syntax:      "a b mod",
		args: []Arg{
			{"a", "dividend, number"},
			{"b", "divisor, number"},
		},
		example: "17 5 mod",
	},
	{
		name:        "%",
		description: "Compute percentage (a * b / 100)",
		syntax:      "a b %",
		args: []Arg{
			{"a", "base value, number"},
			{"b", "percentage, number"},
		},
		example: "200 15 %",
	},
	{
		name:        "%inv",
		description: "Compute inverse percentage (b * 100 / a)",
		syntax:      "a b %inv",
		args: []Arg{
			{"a", "base value, number"},
			{"b", "result value, number"},
		},
		example: "200 30 %inv",
	},
	{
		name:        "fact",
		description: "Factorial for integers, gamma(x+1) for reals",
		syntax:      "n fact",
		args:        []Arg{{"n", "non-negative integer or real"}},
		example:     "6 fact",
	},
	{
		name:        "floor",
		description: "Round down to nearest integer",
		syntax:      "x floor",
		args:        []Arg{{"x", "number or complex"}},
		example:     "3.7 floor",
	},
	{
		name:        "ceil",
		description: "Round up to nearest integer",
		syntax:      "x ceil",
		args:        []Arg{{"x", "number or complex"}},
		example:     "3.2 ceil",
	},
	{
		name:        "round",
		description: "Round to nearest integer (half away from zero)",
		syntax:      "x round",
		args:        []Arg{{"x", "number or complex"}},
		example:     "3.5 round",
	},
	{
		name:        "ip",
		description: "Extract integer part (truncate toward zero)",
		syntax:      "x ip",
		args:        []Arg{{"x", "number"}},
		example:     "-3.7 ip",
	},
	{
		name:        "fp",
		description: "Extract fractional part",
		syntax:      "x fp",
		args:        []Arg{{"x", "number"}},
		example:     "3.14159 fp",
	},
	{
		name:        "mant",
		description: "Extract mantissa (significand) of a number",
		syntax:      "x mant",
		args:        []Arg{{"x", "finite number"}},
		example:     "123.456 mant",
	},
	{
		name:        "xpon",
		description: "Extract exponent (power of 10) of a number",
		syntax:      "x xpon",
		args:        []Arg{{"x", "finite number"}},
		example:     "123.456 xpon",
	},
}
