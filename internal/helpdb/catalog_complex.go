package helpdb

var complexRecords = []Record{
	{
		name:        "re",
		description: "Extract real part of a complex number",
		syntax:      "z re",
		args:        []Arg{{"z", "complex number"}},
		example:     "(3,4) re",
	},
	{
		name:        "im",
		description: "Extract imaginary part of a complex number",
		syntax:      "z im",
		args:        []Arg{{"z", "complex number"}},
		example:     "(3,4) im",
	},
	{
		name:        "arg",
		description: "Compute argument (angle) of a complex number in radians",
		syntax:      "z arg",
		args:        []Arg{{"z", "complex number"}},
		example:     "(1,1) arg",
	},
	{
		name:        "conj",
		description: "Compute complex conjugate",
		syntax:      "z conj",
		args:        []Arg{{"z", "complex number"}},
		example:     "(3,4) conj",
	},
	{
		name:        "c->r",
		description: "Split complex into real and imaginary parts",
		syntax:      "z c->r",
		args:        []Arg{{"z", "complex number"}},
		example:     "(3,4) c->r",
	},
	{
		name:        "r->c",
		description: "Combine two reals into a complex number",
		syntax:      "re im r->c",
		args: []Arg{
			{"re", "real part, number"},
			{"im", "imaginary part, number"},
		},
		example: "3 4 r->c",
	},
	{
		name:        "p->r",
		description: "Convert polar to rectangular coordinates",
		syntax:      "z p->r",
		args:        []Arg{{"z", "complex in polar form (magnitude, angle)"}},
		example:     "(1,0.785398) p->r",
	},
	{
		name:        "r->p",
		description: "Convert rectangular to polar coordinates",
		syntax:      "z r->p",
		args:        []Arg{{"z", "complex in rectangular form"}},
		example:     "(1,1) r->p",
	},
}
