package output

// Palette is the fixed set of text-attribute codes used by the help renderer.
// Keyword marks command names, Title marks section labels and Value marks
// argument names. A zero Palette renders plain text.
type Palette struct {
	Reset   string
	Keyword string
	Title   string
	Value   string
}

// ANSI attribute codes of the default palette.
const (
	ansiReset   = "\x1b[0m"
	ansiKeyword = "\x1b[33m"   // yellow
	ansiTitle   = "\x1b[1;37m" // bold white
	ansiValue   = "\x1b[36m"   // cyan
)

// ANSIPalette returns the standard colored palette.
func ANSIPalette() Palette {
	return Palette{
		Reset:   ansiReset,
		Keyword: ansiKeyword,
		Title:   ansiTitle,
		Value:   ansiValue,
	}
}

// PlainPalette returns a palette that emits no attribute codes.
func PlainPalette() Palette {
	return Palette{}
}

// IsPlain reports whether the palette emits no attribute codes.
func (p Palette) IsPlain() bool {
	return p == Palette{}
}

// KeywordText wraps s in the keyword attribute.
func (p Palette) KeywordText(s string) string {
	return p.Keyword + s + p.Reset
}

// TitleText wraps s in the title attribute.
func (p Palette) TitleText(s string) string {
	return p.Title + s + p.Reset
}

// ValueText wraps s in the value attribute.
func (p Palette) ValueText(s string) string {
	return p.Value + s + p.Reset
}
