package helpdb

var generalRecords = []Record{
	{
		name:        "help",
		description: "Show general help or help for a specific command",
		syntax:      "help  or  'command' help",
		args:        []Arg{{"command", "optional, quoted symbol of command name"}},
		example:     "'sto' help",
	},
	{
		name:        "h",
		description: "Show help (alias for help)",
		syntax:      "h  or  'command' h",
		args:        []Arg{{"command", "optional, quoted symbol of command name"}},
		example:     "'sqrt' h",
	},
	{
		name:        "?",
		description: "Show help (alias for help)",
		syntax:      "?  or  'command' ?",
		args:        []Arg{{"command", "optional, quoted symbol of command name"}},
		example:     "'sin' ?",
	},
	{
		name:        "history",
		description: "Display command history",
		syntax:      "history",
		example:     "history",
	},
	{
		name:        "version",
		description: "Push rpnx version string onto the stack",
		syntax:      "version",
		example:     "version",
	},
	{
		name:        "uname",
		description: "Push system identification string onto the stack",
		syntax:      "uname",
		example:     "uname",
	},
	{
		name:        "error",
		description: "Push the last error code onto the stack",
		syntax:      "error",
		example:     "error",
	},
	{
		name:        "strerror",
		description: "Push the last error message onto the stack",
		syntax:      "strerror",
		example:     "strerror",
	},
	{
		name:        "test",
		description: "Run a test file",
		syntax:      "'filename' test",
		args:        []Arg{{"filename", "quoted symbol, path to test file"}},
		example:     "'test/all.md' test",
	},
	{
		name:        "quit",
		description: "Exit rpnx",
		syntax:      "quit",
		example:     "quit",
	},
	{
		name:        "q",
		description: "Exit rpnx (alias for quit)",
		syntax:      "q",
		example:     "q",
	},
	{
		name:        "exit",
		description: "Exit rpnx (alias for quit)",
		syntax:      "exit",
		example:     "exit",
	},
	{
		name:        "edit",
		description: "Edit top stack item or a variable in external editor",
		syntax:      "edit  or  'name' edit",
		args:        []Arg{{"name", "optional, quoted symbol of variable name"}},
		example:     "'myprogram' edit",
	},
	{
		name:        "time",
		description: "Push current local time in HH:MM:SS format",
		syntax:      "time",
		example:     "time",
	},
	{
		name:        "date",
		description: "Push current local date in YYYY-MM-DD format",
		syntax:      "date",
		example:     "date",
	},
	{
		name:        "ticks",
		description: "Push current timestamp in microseconds",
		syntax:      "ticks",
		example:     "ticks",
	},
}
