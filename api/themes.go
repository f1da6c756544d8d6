package api

import "github.com/charmbracelet/lipgloss"

// Theme defines color schemes and styles
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Muted     lipgloss.Color
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#8A2BE2"), // BlueViolet
		Secondary: lipgloss.Color("#4169E1"), // RoyalBlue
		Warning:   lipgloss.Color("#FFD700"), // Gold
		Muted:     lipgloss.Color("#808080"), // Gray
	}
}

// DarkTheme returns a dark color theme
func DarkTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#BB86FC"), // Purple
		Secondary: lipgloss.Color("#03DAC6"), // Teal
		Warning:   lipgloss.Color("#FF9800"), // Orange
		Muted:     lipgloss.Color("#9E9E9E"), // Gray
	}
}
