package helpdb

var variableRecords = []Record{
	{
		name:        "sto",
		description: "Store a value in a variable",
		syntax:      "value 'name' sto",
		args: []Arg{
			{"value", "any object to store"},
			{"name", "quoted symbol, variable name"},
		},
		example: "42 'answer' sto",
	},
	{
		name:        "rcl",
		description: "Recall a value from a variable",
		syntax:      "'name' rcl",
		args:        []Arg{{"name", "quoted symbol, existing variable name"}},
		example:     "'answer' rcl",
	},
	{
		name:        "purge",
		description: "Delete a variable",
		syntax:      "'name' purge",
		args:        []Arg{{"name", "quoted symbol, existing variable name"}},
		example:     "'answer' purge",
	},
	{
		name:        "sto+",
		description: "Add a value to a stored variable",
		syntax:      "value 'name' sto+",
		args: []Arg{
			{"value", "number to add"},
			{"name", "quoted symbol, existing variable name"},
		},
		example: "10 'counter' sto+",
	},
	{
		name:        "sto-",
		description: "Subtract a value from a stored variable",
		syntax:      "value 'name' sto-",
		args: []Arg{
			{"value", "number to subtract"},
			{"name", "quoted symbol, existing variable name"},
		},
		example: "5 'counter' sto-",
	},
	{
		name:        "sto*",
		description: "Multiply a stored variable by a value",
		syntax:      "value 'name' sto*",
		args: []Arg{
			{"value", "number to multiply by"},
			{"name", "quoted symbol, existing variable name"},
		},
		example: "2 'value' sto*",
	},
	{
		name:        "sto/",
		description: "Divide a stored variable by a value",
		syntax:      "value 'name' sto/",
		args: []Arg{
			{"value", "number to divide by, non-zero"},
			{"name", "quoted symbol, existing variable name"},
		},
		example: "2 'value' sto/",
	},
	{
		name:        "sneg",
		description: "Negate a stored variable",
		syntax:      "'name' sneg",
		args:        []Arg{{"name", "quoted symbol, existing variable name"}},
		example:     "'value' sneg",
	},
	{
		name:        "stoneg",
		description: "Negate a stored variable (alias for sneg)",
		syntax:      "'name' stoneg",
		args:        []Arg{{"name", "quoted symbol, existing variable name"}},
		example:     "'value' stoneg",
	},
	{
		name:        "sinv",
		description: "Invert a stored variable (compute 1/x)",
		syntax:      "'name' sinv",
		args:        []Arg{{"name", "quoted symbol, existing variable name with non-zero value"}},
		example:     "'value' sinv",
	},
	{
		name:        "stoinv",
		description: "Invert a stored variable (alias for sinv)",
		syntax:      "'name' stoinv",
		args:        []Arg{{"name", "quoted symbol, existing variable name with non-zero value"}},
		example:     "'value' stoinv",
	},
	{
		name:        "vars",
		description: "List all defined variables",
		syntax:      "vars",
		example:     "vars",
	},
	{
		name:        "clusr",
		description: "Clear all user-defined variables",
		syntax:      "clusr",
		example:     "clusr",
	},
}
