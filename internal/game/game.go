package game

import (
	"fmt"
	"log/slog"
	"time"

	"storagebox/internal/component"
	"storagebox/internal/config"
	"storagebox/internal/ecs"
	"storagebox/internal/factory"
	"storagebox/internal/render"
	"storagebox/internal/view"

	"github.com/gdamore/tcell/v2"
)

// Game is the host: it owns the world, builds the player through the
// factory hooks and answers view requests for the player's storage box.
type Game struct {
	cfg      config.Config
	screen   tcell.Screen
	logger   *slog.Logger
	world    *ecs.World
	factory  *factory.Factory
	views    *view.Factory
	renderer *render.StorageRenderer
	playerID ecs.EntityID
	status   string
	session  SessionLog
}

// New builds the world and the player entity. The storage box is migrated to
// cfg.TargetCapacity by the factory's initialization hook before New returns.
// screen does not need to be initialized yet.
func New(cfg config.Config, screen tcell.Screen, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    cfg,
		screen: screen,
		logger: logger.With("component", "game"),
		world:  ecs.NewWorld(),
		factory: factory.New(cfg.DefaultCapacity,
			factory.ResizeStorageBox(cfg.TargetCapacity, logger)),
		views: &view.Factory{
			Columns:  cfg.Columns,
			MaxRows:  cfg.MaxRows,
			TitleKey: cfg.TitleKey,
		},
		renderer: render.NewStorageRenderer(screen),
	}

	id, err := g.factory.NewPlayer(g.world, cfg.PlayerName)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	g.playerID = id
	g.session = SessionLog{
		Player:          cfg.PlayerName,
		DefaultCapacity: cfg.DefaultCapacity,
	}
	g.logger.Info("player ready", "player", cfg.PlayerName, "capacity", g.Box().Capacity())
	return g, nil
}

// Player returns the player entity.
func (g *Game) Player() ecs.EntityID { return g.playerID }

// World returns the entity world.
func (g *Game) World() *ecs.World { return g.world }

// Box returns the player's storage box, or nil once the player is gone.
func (g *Game) Box() *component.Box {
	sb, ok := ecs.Lookup[component.StorageBox](g.world, g.playerID, component.CStorageBox)
	if !ok {
		return nil
	}
	return sb.Box
}

// Session returns the statistics gathered so far.
func (g *Game) Session() SessionLog { return g.session }

// Run shows the lobby until the player quits, then records the session.
func (g *Game) Run() {
	for {
		g.drawLobby()
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			g.finish()
			return
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch keyToAction(ev) {
			case ActionClose:
				g.finish()
				return
			case ActionOpen:
				if err := g.OpenStorage(); err != nil {
					g.status = fmt.Sprintf("Cannot open storage box: %v", err)
				}
			}
		}
	}
}

func (g *Game) finish() {
	g.session.Timestamp = time.Now().UTC()
	if box := g.Box(); box != nil {
		g.session.Capacity = box.Capacity()
		g.session.StacksHeld = box.Len()
	}
	g.logger.Info("session finished", "opens", g.session.Opens, "held", g.session.StacksHeld)
	if g.cfg.SessionLog {
		saveSessionLog(g.session, g.logger)
	}
}

func (g *Game) drawLobby() {
	g.screen.Clear()
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)

	capacity := 0
	if box := g.Box(); box != nil {
		capacity = box.Capacity()
	}
	putText(g.screen, 0, 0, fmt.Sprintf("Player: %s", g.cfg.PlayerName), white)
	putText(g.screen, 0, 1, fmt.Sprintf("Storage box: %d slots", capacity), white)
	putText(g.screen, 0, 3, "[e] Open storage box  [q] Quit", gray)
	if g.status != "" {
		putText(g.screen, 0, 5, g.status, yellow)
	}
	g.screen.Show()
}

// putText writes a string to the screen starting at (x, y), one rune per
// column. It stops at the right edge of the screen to avoid overflow.
func putText(scr tcell.Screen, x, y int, s string, st tcell.Style) {
	sw, _ := scr.Size()
	for _, r := range s {
		if x >= sw {
			break
		}
		scr.SetContent(x, y, r, nil, st)
		x++
	}
}
