package assets

import "storagebox/internal/component"

// MaxStack is the largest quantity a single slot holds.
const MaxStack = 64

// Glyphs for the sample stacks.
const (
	GlyphEnderPearl = "🟢"
	GlyphDiamond    = "💎"
	GlyphGoldIngot  = "🟨"
	GlyphObsidian   = "⬛"
	GlyphBook       = "📕"
	GlyphApple      = "🍎"
	GlyphTorch      = "🔥"
)

// SampleStacks is the rotation of stacks the demo host places into a box.
var SampleStacks = []component.ItemStack{
	{Name: "Ender Pearl", Glyph: GlyphEnderPearl, Count: 16},
	{Name: "Diamond", Glyph: GlyphDiamond, Count: 12},
	{Name: "Gold Ingot", Glyph: GlyphGoldIngot, Count: MaxStack},
	{Name: "Obsidian", Glyph: GlyphObsidian, Count: 40},
	{Name: "Enchanted Book", Glyph: GlyphBook, Count: 1},
	{Name: "Apple", Glyph: GlyphApple, Count: 7},
	{Name: "Torch", Glyph: GlyphTorch, Count: MaxStack},
}

// SampleStack returns the n-th stack of the rotation.
func SampleStack(n int) component.ItemStack {
	if n < 0 {
		n = -n
	}
	return SampleStacks[n%len(SampleStacks)]
}
