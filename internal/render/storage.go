package render

import (
	"fmt"

	"storagebox/internal/component"
	"storagebox/internal/container"
	"storagebox/internal/view"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Grid geometry in terminal cells.
const (
	CellWidth = 5 // glyph (2) + up to two count digits + gap
	GridX     = 1
	GridY     = 2
)

const emptyGlyph = "·"

// StorageRenderer draws a storage box view onto a tcell screen.
type StorageRenderer struct {
	screen tcell.Screen
}

// NewStorageRenderer creates a renderer for the given screen.
func NewStorageRenderer(screen tcell.Screen) *StorageRenderer {
	return &StorageRenderer{screen: screen}
}

// SlotOrigin returns the top-left screen cell of slot i in a grid with the
// given column count.
func SlotOrigin(i, columns int) (x, y int) {
	return GridX + (i%columns)*CellWidth, GridY + i/columns
}

// Draw renders the descriptor's grid with the given slot contents. Slots past
// the descriptor are ignored; missing ones are drawn empty.
func (r *StorageRenderer) Draw(d view.Descriptor, slots []container.Slot[component.ItemStack], cursor int, status string) {
	r.screen.Clear()

	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	highlight := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)

	used := 0
	for _, s := range slots {
		if s.Filled {
			used++
		}
	}
	title := fmt.Sprintf("%s  [%s  %d/%d]", d.TitleKey, d.Kind(), used, d.Slots())
	r.drawText(0, 0, title, yellow)
	r.drawHLine(1, tcell.ColorGray)

	for i := 0; i < d.Slots(); i++ {
		x, y := SlotOrigin(i, d.Columns)
		style := white
		if i == cursor {
			style = highlight
		}
		label := emptyGlyph
		if i < len(slots) && slots[i].Filled {
			label = slots[i].Stack.Label()
		} else if i != cursor {
			style = gray
		}
		r.drawCell(x, y, label, style)
	}

	footer := GridY + d.Rows + 1
	if cursor >= 0 && cursor < len(slots) && slots[cursor].Filled {
		s := slots[cursor].Stack
		r.drawText(0, footer, fmt.Sprintf("Slot %d: %s x%d", cursor, s.Name, s.Count), white)
	} else {
		r.drawText(0, footer, fmt.Sprintf("Slot %d: empty", cursor), gray)
	}
	if status != "" {
		r.drawText(0, footer+1, status, yellow)
	}
	r.drawText(0, footer+3, "[arrows/hjkl] Move  [p] Put  [x] Take  [q/Esc] Close", gray)

	r.screen.Show()
}

// drawCell pads label to CellWidth-1 columns so the cursor highlight covers
// the whole cell, truncating labels that do not fit.
func (r *StorageRenderer) drawCell(x, y int, label string, style tcell.Style) {
	w := CellWidth - 1
	label = runewidth.Truncate(label, w, "")
	label = runewidth.FillRight(label, w)
	r.drawText(x, y, label, style)
}

// drawText writes s starting at (x, y), advancing by each rune's display
// width so emoji take two columns. It returns the column after the text.
func (r *StorageRenderer) drawText(x, y int, s string, style tcell.Style) int {
	sw, _ := r.screen.Size()
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > sw {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		if w == 2 {
			// Fill the second column to avoid rendering artifacts.
			r.screen.SetContent(col+1, y, ' ', nil, style)
		}
		col += w
	}
	return col
}

func (r *StorageRenderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
