package helpdb

var stackRecords = []Record{
	{
		name:        "swap",
		description: "Exchange the top two stack items",
		syntax:      "a b swap",
		args: []Arg{
			{"a", "any object"},
			{"b", "any object"},
		},
		example: "1 2 swap",
	},
	{
		name:        "dup",
		description: "Duplicate the top stack item",
		syntax:      "x dup",
		args:        []Arg{{"x", "any object"}},
		example:     "42 dup",
	},
	{
		name:        "dup2",
		description: "Duplicate the top two stack items",
		syntax:      "a b dup2",
		args: []Arg{
			{"a", "any object"},
			{"b", "any object"},
		},
		example: "1 2 dup2",
	},
	{
		name:        "dupn",
		description: "Duplicate the top n stack items",
		syntax:      "x1 ... xn n dupn",
		args:        []Arg{{"n", "positive integer, number of items to duplicate"}},
		example:     "1 2 3 3 dupn",
	},
	{
		name:        "drop",
		description: "Remove the top stack item",
		syntax:      "x drop",
		args:        []Arg{{"x", "any object"}},
		example:     "1 2 drop",
	},
	{
		name:        "pop",
		description: "Remove the top stack item (alias for drop)",
		syntax:      "x pop",
		args:        []Arg{{"x", "any object"}},
		example:     "1 2 pop",
	},
	{
		name:        "drop2",
		description: "Remove the top two stack items",
		syntax:      "a b drop2",
		args: []Arg{
			{"a", "any object"},
			{"b", "any object"},
		},
		example: "1 2 3 drop2",
	},
	{
		name:        "dropn",
		description: "Remove the top n stack items",
		syntax:      "x1 ... xn n dropn",
		args:        []Arg{{"n", "positive integer, number of items to remove"}},
		example:     "1 2 3 4 3 dropn",
	},
	{
		name:        "del",
		description: "Clear all items from the stack",
		syntax:      "del",
		example:     "1 2 3 del",
	},
	{
		name:        "erase",
		description: "Clear all items from the stack (alias for del)",
		syntax:      "erase",
		example:     "1 2 3 erase",
	},
	{
		name:        "clear",
		description: "Clear all items from the stack (alias for del)",
		syntax:      "clear",
		example:     "1 2 3 clear",
	},
	{
		name:        "pick",
		description: "Copy item at level n to top of stack",
		syntax:      "n pick",
		args:        []Arg{{"n", "positive integer, stack level (1 = top)"}},
		example:     "10 20 30 2 pick",
	},
	{
		name:        "depth",
		description: "Push the current stack depth",
		syntax:      "depth",
		example:     "1 2 3 depth",
	},
	{
		name:        "rot",
		description: "Rotate top 3 items: level 3 moves to top",
		syntax:      "a b c rot",
		args: []Arg{
			{"a", "any object (level 3)"},
			{"b", "any object (level 2)"},
			{"c", "any object (level 1)"},
		},
		example: "1 2 3 rot",
	},
	{
		name:        "roll",
		description: "Move item at level n to top of stack",
		syntax:      "n roll",
		args:        []Arg{{"n", "positive integer, stack level"}},
		example:     "10 20 30 40 3 roll",
	},
	{
		name:        "rolld",
		description: "Move top item to level n",
		syntax:      "n rolld",
		args:        []Arg{{"n", "positive integer, target stack level"}},
		example:     "10 20 30 40 3 rolld",
	},
	{
		name:        "over",
		description: "Copy item at level 2 to top of stack",
		syntax:      "a b over",
		args: []Arg{
			{"a", "any object (level 2)"},
			{"b", "any object (level 1)"},
		},
		example: "1 2 over",
	},
}
