package helpdb

var controlRecords = []Record{
	{
		name:        "if",
		description: "Start conditional block (condition between if and then)",
		syntax:      "if <condition> then <true-branch> [else <false-branch>] end",
		example:     "if 1 2 < then 'less' end",
	},
	{
		name:        "then",
		description: "Evaluate condition and begin true branch",
		syntax:      "if <condition> then <true-branch> end",
		example:     "if x 0 > then x sqrt end",
	},
	{
		name:        "else",
		description: "Begin false branch of conditional",
		syntax:      "if <cond> then <true> else <false> end",
		example:     "if x 0 >= then x sqrt else 'negative' end",
	},
	{
		name:        "end",
		description: "End a control structure (if, while, do)",
		syntax:      "... end",
		example:     "if 1 then 'yes' end",
	},
	{
		name:        "ift",
		description: "Inline if-then: execute object if condition is true",
		syntax:      "condition object ift",
		args: []Arg{
			{"condition", "number, 0 = false, non-zero = true"},
			{"object", "program or value to execute/push if true"},
		},
		example: "1 << 'yes' >> ift",
	},
	{
		name:        "ifte",
		description: "Inline if-then-else: execute one of two objects",
		syntax:      "condition true-obj false-obj ifte",
		args: []Arg{
			{"condition", "number, 0 = false, non-zero = true"},
			{"true-obj", "program or value if true"},
			{"false-obj", "program or value if false"},
		},
		example: "0 'yes' 'no' ifte",
	},
	{
		name:        "for",
		description: "Start counted loop with loop variable",
		syntax:      "start end for var <body> next|step",
		args: []Arg{
			{"start", "starting value, number"},
			{"end", "ending value, number"},
			{"var", "unquoted symbol, loop variable name"},
		},
		example: "1 10 for i i next",
	},
	{
		name:        "start",
		description: "Start counted loop without loop variable",
		syntax:      "start end start <body> next|step",
		args: []Arg{
			{"start", "starting value, number"},
			{"end", "ending value, number"},
		},
		example: "1 5 start 'hello' next",
	},
	{
		name:        "next",
		description: "End loop with increment of 1",
		syntax:      "for/start ... next",
		example:     "1 3 for i i next",
	},
	{
		name:        "step",
		description: "End loop with custom step value",
		syntax:      "for/start ... <step-value> step",
		args:        []Arg{{"step-value", "increment value, number"}},
		example:     "0 10 for i i 2 step",
	},
	{
		name:        "while",
		description: "Start while loop (test before each iteration)",
		syntax:      "while <condition> repeat <body> end",
		example:     "while dup 10 < repeat 1+ end",
	},
	{
		name:        "repeat",
		description: "Begin body of while loop",
		syntax:      "while <condition> repeat <body> end",
		example:     "1 while dup 5 <= repeat dup 1+ end",
	},
	{
		name:        "do",
		description: "Start do-until loop (test after each iteration)",
		syntax:      "do <body> until <condition> end",
		example:     "1 do dup 1+ until dup 10 > end",
	},
	{
		name:        "until",
		description: "Test condition for do loop exit",
		syntax:      "do <body> until <condition> end",
		example:     "do 1+ until dup 10 >= end",
	},
}
