package viz

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/registry"
)

// Run opens the live view straight away.
func Run(reg *registry.Registry, opts Options) error {
	m, err := NewModel(reg, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// RunPicker opens the algorithm picker first.
func RunPicker(reg *registry.Registry, cfg *config.Config) error {
	_, err := tea.NewProgram(NewPicker(reg, cfg), tea.WithAltScreen()).Run()
	return err
}
