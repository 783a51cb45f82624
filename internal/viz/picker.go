package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/registry"
)

var algoInfo = map[string]string{
	"bubble_sort":   "adjacent swaps, O(n²)",
	"merge_sort":    "top-down, stable merge",
	"quick_sort":    "lomuto partition",
	"radix_sort":    "LSD base 10",
	"linear_search": "left to right scan",
}

const (
	stateMenu = iota
	stateConfig
	stateSim
)

var pickerFields = []string{"size", "min", "max", "seed", "pattern", "target"}

// Picker is the entry screen: choose one or more algorithms, tune the
// input, then hand over to the live Model.
type Picker struct {
	reg      *registry.Registry
	cfg      config.Config
	state    int
	cursor   int
	names    []string
	selected map[string]bool
	field    int
	editing  bool
	editBuf  string
	err      error
	live     Model
}

func NewPicker(reg *registry.Registry, cfg *config.Config) Picker {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	p := Picker{
		reg:      reg,
		cfg:      *cfg,
		names:    reg.Names(),
		selected: make(map[string]bool),
	}
	for i, name := range p.names {
		if name == cfg.Algorithm {
			p.cursor = i
		}
	}
	return p
}

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.state == stateSim {
		newLive, cmd := p.live.Update(msg)
		p.live = newLive.(Model)
		return p, cmd
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		if p.state == stateMenu {
			return p.menuKey(key)
		}
		return p.configKey(key)
	}
	return p, nil
}

// Toggle flips name in the selection. A search algorithm only runs alone,
// so picking one clears the rest and picking a sort clears any search.
func (p *Picker) Toggle(name string) {
	if p.selected[name] {
		delete(p.selected, name)
		return
	}
	e, err := p.reg.Get(name)
	if err != nil {
		return
	}
	for other := range p.selected {
		oe, _ := p.reg.Get(other)
		if e.Search || oe.Search {
			delete(p.selected, other)
		}
	}
	p.selected[name] = true
}

// Selection returns the chosen names in registry order, or the name under
// the cursor when nothing is chosen.
func (p Picker) Selection() []string {
	var out []string
	for _, name := range p.names {
		if p.selected[name] {
			out = append(out, name)
		}
	}
	if len(out) == 0 && len(p.names) > 0 {
		out = []string{p.names[p.cursor]}
	}
	return out
}

func (p Picker) menuKey(msg tea.KeyMsg) (Picker, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.names)-1 {
			p.cursor++
		}
	case " ", "x":
		p.Toggle(p.names[p.cursor])
	case "enter":
		p.state, p.field = stateConfig, 0
	}
	return p, nil
}

func (p Picker) fieldValue(name string) string {
	switch name {
	case "size":
		return fmt.Sprintf("%d", p.cfg.Size)
	case "min":
		return fmt.Sprintf("%d", p.cfg.Min)
	case "max":
		return fmt.Sprintf("%d", p.cfg.Max)
	case "seed":
		return fmt.Sprintf("%d", p.cfg.Seed)
	case "pattern":
		return p.cfg.Pattern
	case "target":
		if p.cfg.Target == nil {
			return "auto"
		}
		return fmt.Sprintf("%d", *p.cfg.Target)
	}
	return ""
}

// setField stores typed text into a numeric field. Text that is not a
// number keeps the previous value; the target falls back to auto.
func (p *Picker) setField(name, text string) {
	switch name {
	case "size":
		p.cfg.Size = dataset.ParseInt(text, p.cfg.Size)
	case "min":
		p.cfg.Min = dataset.ParseInt(text, p.cfg.Min)
	case "max":
		p.cfg.Max = dataset.ParseInt(text, p.cfg.Max)
	case "seed":
		p.cfg.Seed = int64(dataset.ParseInt(text, int(p.cfg.Seed)))
	case "target":
		if v := dataset.ParseInt(text, -1); v >= 0 {
			p.cfg.Target = &v
		} else {
			p.cfg.Target = nil
		}
	}
	p.cfg.Normalize()
}

func (p *Picker) adjustField(name string, d int) {
	switch name {
	case "pattern":
		patterns := dataset.Patterns()
		idx := 0
		for i, pat := range patterns {
			if string(pat) == p.cfg.Pattern {
				idx = i
			}
		}
		p.cfg.Pattern = string(patterns[(idx+d+len(patterns))%len(patterns)])
	case "target":
		v := 0
		if p.cfg.Target != nil {
			v = *p.cfg.Target + d
		}
		if v < 0 {
			p.cfg.Target = nil
		} else {
			p.cfg.Target = &v
		}
	default:
		current := dataset.ParseInt(p.fieldValue(name), 0)
		p.setField(name, fmt.Sprintf("%d", current+d))
	}
}

func (p Picker) configKey(msg tea.KeyMsg) (Picker, tea.Cmd) {
	name := pickerFields[p.field]
	if p.editing {
		switch msg.String() {
		case "enter":
			p.setField(name, p.editBuf)
			p.editing, p.editBuf = false, ""
		case "esc":
			p.editing, p.editBuf = false, ""
		case "backspace":
			if len(p.editBuf) > 0 {
				p.editBuf = p.editBuf[:len(p.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
				p.editBuf += s
			}
		}
		return p, nil
	}
	switch msg.String() {
	case "ctrl+c":
		return p, tea.Quit
	case "q", "esc":
		p.state = stateMenu
	case "up", "k":
		if p.field > 0 {
			p.field--
		}
	case "down", "j":
		if p.field < len(pickerFields)-1 {
			p.field++
		}
	case "enter":
		if name != "pattern" {
			p.editing, p.editBuf = true, ""
		}
	case "left", "h":
		p.adjustField(name, -1)
	case "right", "l":
		p.adjustField(name, 1)
	case "s":
		return p.start()
	}
	return p, nil
}

func (p Picker) start() (Picker, tea.Cmd) {
	names := p.Selection()
	p.cfg.Algorithm = names[0]
	live, err := NewModel(p.reg, Options{Config: &p.cfg, Algorithms: names})
	if err != nil {
		p.err = err
		return p, nil
	}
	p.live = live
	p.state = stateSim
	p.err = nil
	return p, live.Init()
}

func (p Picker) View() string {
	switch p.state {
	case stateConfig:
		return p.viewConfig()
	case stateSim:
		return p.live.View()
	}
	return p.viewMenu()
}

var (
	pickTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	pickSub    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	pickCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	pickActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	pickAccent = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	pickDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	pickKey    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

func hints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(pickKey.Render(pairs[i]) + pickDim.Render(" "+pairs[i+1]+"  "))
	}
	return b.String()
}

func (p Picker) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + pickTitle.Render("ALGOVIZ") + "\n    " + pickSub.Render("sorting and search visualizer") + "\n    " + pickSub.Render("─────────────────────────────") + "\n\n")
	for i, name := range p.names {
		mark := "[ ]"
		if p.selected[name] {
			mark = "[x]"
		}
		if i == p.cursor {
			b.WriteString(fmt.Sprintf("    %s %s %s  %s\n", pickCursor.Render("▸"), pickCursor.Render(mark), pickActive.Render(fmt.Sprintf("%-14s", name)), pickAccent.Render(algoInfo[name])))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s  %s\n", pickDim.Render(mark), pickDim.Render(fmt.Sprintf("%-14s", name)), pickDim.Render(algoInfo[name])))
		}
	}
	b.WriteString("\n    " + hints("j/k", "navigate", "space", "select", "enter", "configure", "q", "quit") + "\n")
	return b.String()
}

func (p Picker) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + pickTitle.Render(strings.ToUpper(strings.Join(p.Selection(), " vs "))) + "\n    " + pickSub.Render("─────────────────────────────") + "\n\n")
	for i, name := range pickerFields {
		val := p.fieldValue(name)
		if p.editing && i == p.field {
			val = p.editBuf + "_"
		}
		if i == p.field {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", pickCursor.Render("▸"), pickActive.Render(fmt.Sprintf("%-10s", name)), pickAccent.Bold(true).Render(fmt.Sprintf("%8s", val))))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", pickDim.Render(fmt.Sprintf("%-10s", name)), pickDim.Render(fmt.Sprintf("%8s", val))))
		}
	}
	if p.err != nil {
		b.WriteString("\n    " + errorStyle.Render(p.err.Error()) + "\n")
	}
	b.WriteString("\n    " + hints("j/k", "select", "h/l", "adjust", "enter", "edit", "s", "start", "esc", "back") + "\n")
	return b.String()
}
