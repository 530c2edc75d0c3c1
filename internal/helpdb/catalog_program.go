package helpdb

var programRecords = []Record{
	{
		name:        "eval",
		description: "Execute a program or recall a variable",
		syntax:      "object eval",
		args:        []Arg{{"object", "program to execute or symbol to recall"}},
		example:     "<< 2 3 + >> eval",
	},
	{
		name:        "->",
		description: "Define local variables in a program",
		syntax:      "<< -> var1 var2 ... << body >> >>",
		args:        []Arg{{"var1 var2 ...", "unquoted symbols, local variable names"}},
		example:     "<< -> x y << x y + >> >>",
	},
}
