package component

import "strconv"

// ItemStack is a stacked item plus quantity. Containers copy it around
// without interpreting the fields.
type ItemStack struct {
	Name  string
	Glyph string
	Count int
}

// Label returns the glyph followed by the count, e.g. "💎12".
// Single items show the glyph alone.
func (s ItemStack) Label() string {
	if s.Count <= 1 {
		return s.Glyph
	}
	return s.Glyph + strconv.Itoa(s.Count)
}
