package helpdb

var logRecords = []Record{
	{
		name:        "ln",
		description: "Compute natural logarithm (base e)",
		syntax:      "x ln",
		args:        []Arg{{"x", "number or complex, positive for real result"}},
		example:     "e ln",
	},
	{
		name:        "log",
		description: "Compute natural logarithm (alias for ln)",
		syntax:      "x log",
		args:        []Arg{{"x", "number or complex, positive for real result"}},
		example:     "10 log",
	},
	{
		name:        "exp",
		description: "Compute exponential (e^x)",
		syntax:      "x exp",
		args:        []Arg{{"x", "number or complex"}},
		example:     "1 exp",
	},
	{
		name:        "log10",
		description: "Compute base-10 logarithm",
		syntax:      "x log10",
		args:        []Arg{{"x", "number or complex, positive for real result"}},
		example:     "100 log10",
	},
	{
		name:        "alog10",
		description: "Compute 10^x (antilogarithm base 10)",
		syntax:      "x alog10",
		args:        []Arg{{"x", "number or complex"}},
		example:     "2 alog10",
	},
	{
		name:        "exp10",
		description: "Compute 10^x (alias for alog10)",
		syntax:      "x exp10",
		args:        []Arg{{"x", "number or complex"}},
		example:     "3 exp10",
	},
	{
		name:        "log2",
		description: "Compute base-2 logarithm",
		syntax:      "x log2",
		args:        []Arg{{"x", "number or complex, positive for real result"}},
		example:     "8 log2",
	},
	{
		name:        "alog2",
		description: "Compute 2^x (antilogarithm base 2)",
		syntax:      "x alog2",
		args:        []Arg{{"x", "number or complex"}},
		example:     "10 alog2",
	},
	{
		name:        "exp2",
		description: "Compute 2^x (alias for alog2)",
		syntax:      "x exp2",
		args:        []Arg{{"x", "number or complex"}},
		example:     "8 exp2",
	},
	{
		name:        "logn",
		description: "Compute logarithm with arbitrary base",
		syntax:      "x n logn",
		args: []Arg{
			{"x", "number or complex, positive for real result"},
			{"n", "base, positive number"},
		},
		example: "81 3 logn",
	},
	{
		name:        "alogn",
		description: "Compute n^x (antilogarithm with arbitrary base)",
		syntax:      "x n alogn",
		args: []Arg{
			{"x", "exponent, number or complex"},
			{"n", "base, positive number"},
		},
		example: "4 3 alogn",
	},
	{
		name:        "lnp1",
		description: "Compute ln(1+x), accurate for small x",
		syntax:      "x lnp1",
		args:        []Arg{{"x", "number or complex, > -1 for real result"}},
		example:     "0.001 lnp1",
	},
	{
		name:        "expm",
		description: "Compute exp(x)-1, accurate for small x",
		syntax:      "x expm",
		args:        []Arg{{"x", "number or complex"}},
		example:     "0.001 expm",
	},
	{
		name:        "e",
		description: "Push Euler's number (base of natural logarithm)",
		syntax:      "e",
		example:     "e",
	},
}
