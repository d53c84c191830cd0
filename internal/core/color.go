package core

// Color is an opaque colour token attached to a screen cell or a board cell.
// The platform layer interprets it (hex "#rrggbb" or an ANSI 256 index);
// game logic only copies it around.
type Color string

// Palette used by the stabilizer HUD and overlays.
const (
	ColorDefault Color = ""
	ColorGold    Color = "#c5a059" // piece and accent colour
	ColorAmber   Color = "#fbbf24"
	ColorText    Color = "#e2e8f0"
	ColorSlate   Color = "#64748b"
	ColorGrid    Color = "#334155"
	ColorRose    Color = "#f43f5e"
	ColorEmerald Color = "#10b981"
)
