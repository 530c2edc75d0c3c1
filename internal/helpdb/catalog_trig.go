package helpdb

var trigRecords = []Record{
	{
		name:        "sin",
		description: "Compute sine (argument in radians)",
		syntax:      "x sin",
		args:        []Arg{{"x", "number or complex, angle in radians"}},
		example:     "pi 6 / sin",
	},
	{
		name:        "cos",
		description: "Compute cosine (argument in radians)",
		syntax:      "x cos",
		args:        []Arg{{"x", "number or complex, angle in radians"}},
		example:     "pi 3 / cos",
	},
	{
		name:        "tan",
		description: "Compute tangent (argument in radians)",
		syntax:      "x tan",
		args:        []Arg{{"x", "number or complex, angle in radians"}},
		example:     "pi 4 / tan",
	},
	{
		name:        "asin",
		description: "Compute arc sine (result in radians)",
		syntax:      "x asin",
		args:        []Arg{{"x", "number or complex, -1 to 1 for real result"}},
		example:     "0.5 asin",
	},
	{
		name:        "acos",
		description: "Compute arc cosine (result in radians)",
		syntax:      "x acos",
		args:        []Arg{{"x", "number or complex, -1 to 1 for real result"}},
		example:     "0.5 acos",
	},
	{
		name:        "atan",
		description: "Compute arc tangent (result in radians)",
		syntax:      "x atan",
		args:        []Arg{{"x", "number or complex"}},
		example:     "1 atan",
	},
	{
		name:        "atan2",
		description: "Two-argument arc tangent (result in radians)",
		syntax:      "y x atan2",
		args: []Arg{
			{"y", "y-coordinate, number"},
			{"x", "x-coordinate, number"},
		},
		example: "1 1 atan2",
	},
	{
		name:        "sinh",
		description: "Compute hyperbolic sine",
		syntax:      "x sinh",
		args:        []Arg{{"x", "number or complex"}},
		example:     "1 sinh",
	},
	{
		name:        "cosh",
		description: "Compute hyperbolic cosine",
		syntax:      "x cosh",
		args:        []Arg{{"x", "number or complex"}},
		example:     "1 cosh",
	},
	{
		name:        "tanh",
		description: "Compute hyperbolic tangent",
		syntax:      "x tanh",
		args:        []Arg{{"x", "number or complex"}},
		example:     "1 tanh",
	},
	{
		name:        "asinh",
		description: "Compute inverse hyperbolic sine",
		syntax:      "x asinh",
		args:        []Arg{{"x", "number or complex"}},
		example:     "1 asinh",
	},
	{
		name:        "acosh",
		description: "Compute inverse hyperbolic cosine",
		syntax:      "x acosh",
		args:        []Arg{{"x", "number or complex, >= 1 for real result"}},
		example:     "2 acosh",
	},
	{
		name:        "atanh",
		description: "Compute inverse hyperbolic tangent",
		syntax:      "x atanh",
		args:        []Arg{{"x", "number or complex, -1 to 1 for real result"}},
		example:     "0.5 atanh",
	},
	{
		name:        "d->r",
		description: "Convert degrees to radians",
		syntax:      "deg d->r",
		args:        []Arg{{"deg", "angle in degrees, number"}},
		example:     "180 d->r",
	},
	{
		name:        "r->d",
		description: "Convert radians to degrees",
		syntax:      "rad r->d",
		args:        []Arg{{"rad", "angle in radians, number"}},
		example:     "pi r->d",
	},
	{
		name:        "pi",
		description: "Push the constant pi",
		syntax:      "pi",
		example:     "pi",
	},
}
