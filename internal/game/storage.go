package game

import (
	"fmt"

	"storagebox/assets"
	"storagebox/internal/component"
	"storagebox/internal/view"

	"github.com/gdamore/tcell/v2"
)

// OpenStorage answers a view request for the player's storage box. The view
// is derived from the box's capacity on every call, so it always matches the
// migrated size. It blocks until the player closes the screen.
func (g *Game) OpenStorage() error {
	box := g.Box()
	if box == nil {
		return fmt.Errorf("player %d has no storage box", g.playerID)
	}
	desc, err := g.views.Create(box, g.playerID)
	if err != nil {
		g.logger.Warn("storage view rejected", "capacity", box.Capacity(), "error", err)
		return err
	}
	g.session.Opens++
	g.logger.Debug("storage opened", "kind", desc.Kind(), "rows", desc.Rows, "columns", desc.Columns)
	g.status = ""
	g.runStorageScreen(desc, box)
	return nil
}

// runStorageScreen is the blocking storage UI loop.
func (g *Game) runStorageScreen(desc view.Descriptor, box *component.Box) {
	cursor := 0
	statusMsg := ""

	clampCursor := func() {
		if cursor < 0 {
			cursor = 0
		}
		if cursor >= desc.Slots() {
			cursor = desc.Slots() - 1
		}
	}

	for {
		clampCursor()
		g.renderer.Draw(desc, box.Slots(), cursor, statusMsg)

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			statusMsg = ""
			switch a := keyToAction(ev); a {
			case ActionClose:
				return
			case ActionPut:
				statusMsg = g.storagePut(box, cursor)
			case ActionTake:
				statusMsg = g.storageTake(box, cursor)
			default:
				cursor += cursorDelta(a, desc.Columns)
			}
		}
	}
}

// storagePut places the next sample stack into the slot under the cursor.
func (g *Game) storagePut(box *component.Box, cursor int) string {
	slot, err := box.Get(cursor)
	if err != nil {
		return err.Error()
	}
	if slot.Filled {
		return fmt.Sprintf("Slot %d already holds %s.", cursor, slot.Stack.Name)
	}
	stack := assets.SampleStack(g.session.StacksPut)
	if err := box.Set(cursor, stack); err != nil {
		return err.Error()
	}
	g.session.StacksPut++
	return fmt.Sprintf("Stored %d %s.", stack.Count, stack.Name)
}

// storageTake empties the slot under the cursor.
func (g *Game) storageTake(box *component.Box, cursor int) string {
	slot, err := box.Get(cursor)
	if err != nil {
		return err.Error()
	}
	if !slot.Filled {
		return "Nothing here."
	}
	if err := box.Clear(cursor); err != nil {
		return err.Error()
	}
	g.session.StacksTaken++
	return fmt.Sprintf("Took %d %s.", slot.Stack.Count, slot.Stack.Name)
}
