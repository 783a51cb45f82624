package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/algo"
)

// Theme is the colour scheme for bars and chrome. Every colour is a hex
// string so it can be reused outside the terminal.
type Theme struct {
	Name    string
	Bar     lipgloss.Color
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Found   lipgloss.Color
	Sorted  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Warning lipgloss.Color
	Canvas  lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Bar:     lipgloss.Color("#00ffff"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ff00ff"),
		Found:   lipgloss.Color("#00ff00"),
		Sorted:  lipgloss.Color("#00ff88"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Border:  lipgloss.Color("#444466"),
		Warning: lipgloss.Color("#ff8800"),
		Canvas:  lipgloss.Color("#0a0a0a"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Bar:     lipgloss.Color("#00cc00"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#88ff88"),
		Found:   lipgloss.Color("#ffffff"),
		Sorted:  lipgloss.Color("#00ff00"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Border:  lipgloss.Color("#007700"),
		Warning: lipgloss.Color("#ffff00"),
		Canvas:  lipgloss.Color("#001100"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Bar:     lipgloss.Color("#cccccc"),
		Compare: lipgloss.Color("#0088ff"),
		Swap:    lipgloss.Color("#ff4444"),
		Found:   lipgloss.Color("#00ff00"),
		Sorted:  lipgloss.Color("#ffffff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Border:  lipgloss.Color("#444444"),
		Warning: lipgloss.Color("#ffaa00"),
		Canvas:  lipgloss.Color("#000000"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Bar:     lipgloss.Color("#0077be"),
		Compare: lipgloss.Color("#ffd700"),
		Swap:    lipgloss.Color("#ff4444"),
		Found:   lipgloss.Color("#00ff88"),
		Sorted:  lipgloss.Color("#00a8cc"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Border:  lipgloss.Color("#224466"),
		Warning: lipgloss.Color("#ffcc00"),
		Canvas:  lipgloss.Color("#001a33"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Bar:     lipgloss.Color("#feca57"),
		Compare: lipgloss.Color("#ff9ff3"),
		Swap:    lipgloss.Color("#ff4757"),
		Found:   lipgloss.Color("#5fd068"),
		Sorted:  lipgloss.Color("#ff6b6b"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Border:  lipgloss.Color("#5b3b5c"),
		Warning: lipgloss.Color("#ffc048"),
		Canvas:  lipgloss.Color("#2d1b2e"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Role is how a single bar should be painted.
type Role int

const (
	RoleBar Role = iota
	RoleSorted
	RoleCompare
	RoleSwap
	RoleFound
)

// Roles assigns a role to every index of s. Swap slots win over compare
// slots. A done step over an ordered array paints everything sorted.
func Roles(s algo.Step) []Role {
	roles := make([]Role, len(s.Array))
	if s.Kind == algo.KindDone && isOrdered(s.Array) {
		for i := range roles {
			roles[i] = RoleSorted
		}
	}
	mark := func(i algo.Index, r Role) {
		if i.Valid() && int(i) < len(roles) && roles[i] < r {
			roles[i] = r
		}
	}
	mark(s.CompareA, RoleCompare)
	mark(s.CompareB, RoleCompare)
	swapRole := RoleSwap
	if s.Kind == algo.KindFound {
		swapRole = RoleFound
	}
	mark(s.SwapA, swapRole)
	mark(s.SwapB, swapRole)
	return roles
}

func (t Theme) Color(r Role) lipgloss.Color {
	switch r {
	case RoleCompare:
		return t.Compare
	case RoleSwap:
		return t.Swap
	case RoleFound:
		return t.Found
	case RoleSorted:
		return t.Sorted
	default:
		return t.Bar
	}
}

func isOrdered(arr []int) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i-1] > arr[i] {
			return false
		}
	}
	return true
}
