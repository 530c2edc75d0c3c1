package helpdb

var bitwiseRecords = []Record{
	{
		name:        "&",
		description: "Bitwise AND of two integers",
		syntax:      "a b &",
		args: []Arg{
			{"a", "integer"},
			{"b", "integer"},
		},
		example: "0xff 0x0f &",
	},
	{
		name:        "|",
		description: "Bitwise OR of two integers",
		syntax:      "a b |",
		args: []Arg{
			{"a", "integer"},
			{"b", "integer"},
		},
		example: "0b1100 0b0011 |",
	},
	{
		name:        "~",
		description: "Bitwise NOT (complement within significant bits)",
		syntax:      "x ~",
		args:        []Arg{{"x", "integer"}},
		example:     "0b1010 ~",
	},
	{
		name:        "^",
		description: "Bitwise XOR of two integers",
		syntax:      "a b ^",
		args: []Arg{
			{"a", "integer"},
			{"b", "integer"},
		},
		example: "0b1111 0b1010 ^",
	},
}
