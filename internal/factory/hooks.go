package factory

import (
	"errors"
	"fmt"
	"log/slog"

	"storagebox/internal/component"
	"storagebox/internal/ecs"
)

// ErrNoStorageBox is returned by storage hooks run on an entity without one.
var ErrNoStorageBox = errors.New("entity has no storage box")

// ResizeStorageBox returns a hook that migrates the entity's storage box to
// target slots. Shrinking a box that holds stacks past target discards them;
// the hook logs a warning with the count before doing so.
func ResizeStorageBox(target int, logger *slog.Logger) Hook {
	return func(w *ecs.World, id ecs.EntityID) error {
		sb, ok := ecs.Lookup[component.StorageBox](w, id, component.CStorageBox)
		if !ok || sb.Box == nil {
			return fmt.Errorf("storage box hook: entity %d: %w", id, ErrNoStorageBox)
		}
		from := sb.Box.Capacity()
		if lost := sb.Box.Overflow(target); lost > 0 {
			logger.Warn("storage box shrink discards stacks",
				"entity", id, "from", from, "to", target, "discarded", lost)
		}
		if err := sb.Box.Migrate(target); err != nil {
			return fmt.Errorf("storage box hook: %w", err)
		}
		logger.Debug("storage box migrated", "entity", id, "from", from, "to", target)
		return nil
	}
}
