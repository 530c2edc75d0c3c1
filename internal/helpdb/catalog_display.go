package helpdb

var displayRecords = []Record{
	{
		name:        "std",
		description: "Set standard display mode with n significant digits",
		syntax:      "n std",
		args:        []Arg{{"n", "number of significant digits, positive integer"}},
		example:     "10 std",
	},
	{
		name:        "fix",
		description: "Set fixed-point display mode with n decimal places",
		syntax:      "n fix",
		args:        []Arg{{"n", "number of decimal places, non-negative integer"}},
		example:     "4 fix",
	},
	{
		name:        "sci",
		description: "Set scientific notation with n significant digits",
		syntax:      "n sci",
		args:        []Arg{{"n", "number of significant digits, positive integer"}},
		example:     "6 sci",
	},
	{
		name:        "prec",
		description: "Set floating-point precision in bits",
		syntax:      "n prec",
		args:        []Arg{{"n", "precision in bits, 2 to 100000"}},
		example:     "256 prec",
	},
	{
		name:        "default",
		description: "Reset display mode and precision to defaults",
		syntax:      "default",
		example:     "default",
	},
	{
		name:        "hex",
		description: "Convert top number to hexadecimal representation",
		syntax:      "n hex",
		args:        []Arg{{"n", "integer"}},
		example:     "255 hex",
	},
	{
		name:        "dec",
		description: "Convert top number to decimal representation",
		syntax:      "n dec",
		args:        []Arg{{"n", "number"}},
		example:     "0xff dec",
	},
	{
		name:        "bin",
		description: "Convert top number to binary representation",
		syntax:      "n bin",
		args:        []Arg{{"n", "integer"}},
		example:     "15 bin",
	},
	{
		name:        "base",
		description: "Convert top number to arbitrary base representation",
		syntax:      "n b base",
		args: []Arg{
			{"n", "integer to convert"},
			{"b", "target base, 2 to 62"},
		},
		example: "100 8 base",
	},
	{
		name:        "type",
		description: "Push the type name of the top stack item",
		syntax:      "obj type",
		args:        []Arg{{"obj", "any object"}},
		example:     "3.14 type",
	},
}
