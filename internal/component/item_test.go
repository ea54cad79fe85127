package component

import "testing"

func TestItemStackLabel(t *testing.T) {
	cases := []struct {
		stack ItemStack
		want  string
	}{
		{ItemStack{Glyph: "P", Count: 16}, "P16"},
		{ItemStack{Glyph: "B", Count: 1}, "B"},
		{ItemStack{Glyph: "B", Count: 0}, "B"},
	}
	for _, tc := range cases {
		if got := tc.stack.Label(); got != tc.want {
			t.Errorf("Label(%+v) = %q; want %q", tc.stack, got, tc.want)
		}
	}
}
