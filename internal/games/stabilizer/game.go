package stabilizer

import (
	"math/rand"
	"time"

	"github.com/datachomps/stabilizer/internal/config"
	"github.com/datachomps/stabilizer/internal/core"
	"github.com/datachomps/stabilizer/internal/labels"
)

// Game wraps a Session with everything the platform needs to show it:
// the label set, the session best score and the screen layout.
type Game struct {
	settings Settings
	session  *Session
	labels   labels.Set
	best     int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game with the given rules and labels. Call Reset before use.
func New(settings Settings, set labels.Set) *Game {
	return &Game{
		settings: settings,
		labels:   set,
	}
}

// SettingsFromConfig converts loaded configuration into engine settings.
// Unknown piece letters in the palette are ignored.
func SettingsFromConfig(cfg config.StabilizerConfig) Settings {
	s := Settings{
		Width:         cfg.Board.Width,
		Height:        cfg.Board.Height,
		DropInterval:  cfg.Gameplay.DropInterval(),
		PointsPerLine: cfg.Gameplay.PointsPerLine,
		Palette:       make(map[Kind]core.Color, len(cfg.Pieces)),
	}
	for name, color := range cfg.Pieces {
		if k, ok := ParseKind(name); ok {
			s.Palette[k] = core.Color(color)
		}
	}
	return s
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "stabilizer"
}

// Title returns the display name in the current language.
func (g *Game) Title() string {
	return g.labels.Title
}

// Reset starts a fresh idle session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = NewSession(g.settings, rand.New(rand.NewSource(cfg.Seed)))
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the available screen area. While the screen is too small
// to draw the board the game is paused.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	lay := g.layout()
	g.tooSmall = w < lay.width || h < lay.height
}

// TooSmall reports whether the last Resize left too little room.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}

// Apply performs one player action and reports whether anything changed.
// Actions that make no sense in the current phase are ignored.
func (g *Game) Apply(a core.Action) bool {
	if g.session == nil || g.tooSmall {
		return false
	}

	s := g.session
	switch a {
	case core.ActionStart:
		return s.Start()
	case core.ActionRestart:
		if s.Phase() != PhaseGameOver {
			return false
		}
		s.Restart()
		return true
	case core.ActionLeft:
		return s.MoveLeft()
	case core.ActionRight:
		return s.MoveRight()
	case core.ActionRotate:
		return s.Rotate()
	case core.ActionDown:
		res := s.SoftDrop()
		return res.Moved || res.Locked
	}
	return false
}

// Advance feeds elapsed time into gravity. It returns the drop that
// happened, if any.
func (g *Game) Advance(dt time.Duration) (DropResult, bool) {
	if g.session == nil || g.tooSmall {
		return DropResult{}, false
	}
	return g.session.Tick(dt)
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Labels returns the active label set.
func (g *Game) Labels() labels.Set {
	return g.labels
}

// SetLabels swaps the label set, e.g. on a language toggle.
func (g *Game) SetLabels(set labels.Set) {
	g.labels = set
	g.Resize(g.screenW, g.screenH)
}

// Best returns the best score shown in the HUD.
func (g *Game) Best() int {
	return g.best
}

// SetBest updates the best score shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}
