package viz

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/registry"
)

const (
	historyCapacity = 600
	barCols         = 64
	barRows         = 18
	compareRows     = 7
)

var ErrSearchExclusive = errors.New("a search cannot be compared with other algorithms")

type TickMsg time.Time

// Snapshot holds the current step of every panel after one advance.
type Snapshot []algo.Step

type Options struct {
	Config *config.Config
	// Algorithms lists the panels. More than one means compare mode.
	Algorithms []string
	// Array is an explicit input. When nil the input is generated from
	// Config.
	Array []int
}

// Model is the bubbletea host: it owns pacing, input handling and the
// replay history while a playback.Ensemble owns the runs.
type Model struct {
	reg          *registry.Registry
	cfg          config.Config
	names        []string
	explicit     bool
	input        []int
	target       int
	ensemble     *playback.Ensemble
	theme        Theme
	running      bool
	finished     bool
	stepsPerTick int
	history      []Snapshot
	playHead     int
	showHelp     bool
	err          error
	width        int
	height       int
}

// CheckSelection validates a panel list: every name must be registered and
// a search algorithm must run alone.
func CheckSelection(reg *registry.Registry, names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: none selected", registry.ErrUnknownAlgorithm)
	}
	for _, name := range names {
		e, err := reg.Get(name)
		if err != nil {
			return err
		}
		if e.Search && len(names) > 1 {
			return fmt.Errorf("%w: %s", ErrSearchExclusive, name)
		}
	}
	return nil
}

func NewModel(reg *registry.Registry, opts Options) (Model, error) {
	cfg := config.DefaultConfig()
	if opts.Config != nil {
		c := *opts.Config
		cfg = &c
	}
	for _, note := range cfg.Normalize() {
		log.Printf("config: %s", note)
	}

	names := opts.Algorithms
	if len(names) == 0 {
		names = []string{cfg.Algorithm}
	}
	if err := CheckSelection(reg, names); err != nil {
		return Model{}, err
	}

	m := Model{
		reg:          reg,
		cfg:          *cfg,
		names:        append([]string(nil), names...),
		theme:        GetTheme(cfg.Theme),
		running:      true,
		stepsPerTick: cfg.StepsPerTick,
		history:      make([]Snapshot, 0, historyCapacity),
		playHead:     -1,
		width:        barCols + 44,
		height:       barRows + 6,
	}
	if opts.Array != nil {
		m.input = append([]int(nil), opts.Array...)
		m.explicit = true
	} else if err := m.generate(); err != nil {
		return Model{}, err
	}
	m.pickTarget()
	if err := m.start(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps < 1 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and paces the runs.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.togglePlay()
		case "n":
			m.single()
		case "r":
			m.reset()
		case "tab":
			m.cycle(1)
		case "shift+tab":
			m.cycle(-1)
		case "up", "k":
			m.resize(1)
		case "down", "j":
			m.resize(-1)
		case "+", "=":
			m.stepsPerTick = dataset.Clamp(m.stepsPerTick+1, 1, config.MaxStepsPerTick)
		case "-", "_":
			m.stepsPerTick = dataset.Clamp(m.stepsPerTick-1, 1, config.MaxStepsPerTick)
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if m.playHead == -1 {
				m.advance(m.stepsPerTick)
			} else {
				m.playHead++
				if m.playHead >= len(m.history) {
					m.playHead = -1
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) generate() error {
	arr, err := dataset.Generate(m.cfg.DatasetSpec())
	if err != nil {
		return err
	}
	m.input = arr
	return nil
}

// pickTarget keeps a configured target, otherwise it chooses a value that
// is present in the input.
func (m *Model) pickTarget() {
	if m.cfg.Target != nil {
		m.target = *m.cfg.Target
		return
	}
	m.target = dataset.PickTarget(m.input, m.cfg.Seed, 0)
}

func (m *Model) searching() bool {
	e, err := m.reg.Get(m.names[0])
	return err == nil && e.Search
}

func (m *Model) runOptions() registry.Options {
	opts := registry.Options{Target: m.target}
	if r := m.cfg.Range; r != nil {
		hi := r.High
		if hi < 0 {
			hi = len(m.input) - 1
		}
		opts.Range = &registry.Range{Low: r.Low, High: hi}
	}
	return opts
}

// start builds fresh runs over the input and clears replay state. The
// running flag is left to the caller.
func (m *Model) start() error {
	ens, err := playback.NewEnsemble(m.reg, m.names, metrics.Defaults)
	if err != nil {
		return err
	}
	if err := ens.Start(m.input, m.runOptions()); err != nil {
		m.err = err
		m.ensemble = nil
		return err
	}
	m.ensemble = ens
	m.err = nil
	m.finished = false
	m.history = m.history[:0]
	m.playHead = -1
	log.Printf("start %s n=%d", strings.Join(m.names, ","), len(m.input))
	return nil
}

func (m *Model) advance(k int) {
	if m.ensemble == nil || m.finished {
		return
	}
	for i := 0; i < k; i++ {
		if m.ensemble.Advance() == 0 {
			break
		}
		m.record()
		if !m.ensemble.Active() {
			break
		}
	}
	if !m.ensemble.Active() {
		m.complete()
	}
}

func (m *Model) complete() {
	m.finished = true
	m.running = false
	for _, d := range m.ensemble.Drivers() {
		if err := d.Err(); err != nil {
			m.err = err
		}
		log.Printf("%s finished after %d steps: %s", d.Algorithm(), d.StepCount(), m.panelStatus(d))
	}
}

func (m *Model) record() {
	drivers := m.ensemble.Drivers()
	snap := make(Snapshot, len(drivers))
	for i, d := range drivers {
		snap[i], _ = d.Current()
	}
	m.history = append(m.history, snap)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) togglePlay() {
	if m.finished && m.playHead == -1 {
		if err := m.start(); err == nil {
			m.running = true
		}
		return
	}
	m.running = !m.running
}

// single advances exactly one step, or one replay frame while scrubbing.
func (m *Model) single() {
	m.running = false
	if m.playHead != -1 {
		m.scrub(1)
		return
	}
	m.advance(1)
}

// reset restarts on a new array (or the same explicit one) and pauses.
func (m *Model) reset() {
	if !m.explicit {
		m.cfg.Seed++
		if err := m.generate(); err != nil {
			m.err = err
			return
		}
		if m.cfg.Target == nil {
			m.pickTarget()
		}
	}
	m.running = false
	_ = m.start()
}

// cycle switches the single panel to the next registered algorithm. It is
// ignored in compare mode and while a run is playing.
func (m *Model) cycle(dir int) {
	if len(m.names) != 1 || (m.running && !m.finished) {
		return
	}
	names := m.reg.Names()
	idx := 0
	for i, name := range names {
		if name == m.names[0] {
			idx = i
			break
		}
	}
	m.names[0] = names[(idx+dir+len(names))%len(names)]
	m.cfg.Algorithm = m.names[0]
	m.running = false
	_ = m.start()
}

func (m *Model) resize(d int) {
	size := dataset.Clamp(len(m.input)+d, 1, dataset.MaxSize)
	if size == len(m.input) && !m.explicit {
		return
	}
	m.cfg.Size = size
	m.cfg.Range = nil
	m.explicit = false
	if err := m.generate(); err != nil {
		m.err = err
		return
	}
	if m.cfg.Target == nil {
		m.pickTarget()
	}
	m.running = false
	_ = m.start()
}

// scrub moves the replay position through recorded history.
func (m *Model) scrub(dir int) {
	if m.playHead == -1 {
		if len(m.history) == 0 {
			return
		}
		m.playHead = len(m.history) - 1
		m.running = false
	}
	m.playHead += dir
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead >= len(m.history) {
		m.playHead = -1
	}
}

// frame returns the steps to draw: the replayed snapshot while scrubbing,
// otherwise each driver's current step or the untouched input.
func (m Model) frame() Snapshot {
	if m.playHead >= 0 && m.playHead < len(m.history) {
		return m.history[m.playHead]
	}
	if m.ensemble == nil {
		return Snapshot{{Array: m.input, Highlights: algo.NoHighlights()}}
	}
	drivers := m.ensemble.Drivers()
	snap := make(Snapshot, len(drivers))
	for i, d := range drivers {
		if s, ok := d.Current(); ok {
			snap[i] = s
		} else {
			snap[i] = algo.Step{Array: m.input, Highlights: algo.NoHighlights()}
		}
	}
	return snap
}

// panelStatus is the completion banner for one run, or "" while it runs.
func (m Model) panelStatus(d *playback.Driver) string {
	s, ok := d.Current()
	if !ok || !s.Terminal() {
		return ""
	}
	if s.Kind == algo.KindFound {
		return fmt.Sprintf("FOUND at %d", s.SwapA)
	}
	if e, err := m.reg.Get(d.Algorithm()); err == nil && e.Search {
		return "NOT FOUND"
	}
	return "DONE"
}

func (m Model) status() string {
	switch {
	case m.playHead != -1:
		back := len(m.history) - 1 - m.playHead
		if m.running {
			return statusRunning.Render(fmt.Sprintf("REPLAYING (-%d)", back))
		}
		return statusPaused.Render(fmt.Sprintf("REPLAY PAUSED (-%d)", back))
	case m.finished:
		if len(m.names) == 1 && m.ensemble != nil {
			return statusRunning.Render(m.panelStatus(m.ensemble.Drivers()[0]))
		}
		return statusRunning.Render("DONE")
	case m.running:
		return statusRunning.Render("RUNNING")
	default:
		return statusPaused.Render("PAUSED")
	}
}

func (m Model) label(name string) string {
	if e, err := m.reg.Get(name); err == nil {
		return e.Label
	}
	return name
}

// View renders the TUI interface.
func (m Model) View() string {
	frame := m.frame()
	border := panelStyle.BorderForeground(m.theme.Border)

	var canvasView string
	if len(m.names) == 1 {
		canvasView = border.Render(RenderBars(frame[0], barCols, barRows, m.theme))
	} else {
		panels := make([]string, 0, len(frame))
		for i, s := range frame {
			title := m.label(m.names[i])
			if m.ensemble != nil {
				d := m.ensemble.Drivers()[i]
				title = fmt.Sprintf("%s  %d steps  %s", title, d.StepCount(), m.panelStatus(d))
			}
			body := lipgloss.NewStyle().Foreground(m.theme.Text).Render(title) + "\n" +
				RenderBars(s, barCols, compareRows, m.theme)
			panels = append(panels, border.Render(body))
		}
		canvasView = lipgloss.JoinVertical(lipgloss.Left, panels...)
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(m.sidebar()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

func (m Model) sidebar() string {
	var s strings.Builder
	titles := make([]string, len(m.names))
	for i, name := range m.names {
		titles[i] = strings.ToUpper(m.label(name))
	}
	s.WriteString(headerStyle.Render(GradientText(strings.Join(titles, " vs "), m.theme.Swap, m.theme.Bar)) + "\n")
	s.WriteString(m.status() + "\n\n")

	if chart := m.sortednessChart(); chart != "" {
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Size", fmt.Sprintf("%d", len(m.input)))
	if m.explicit {
		row("Input", "explicit")
	} else {
		row("Pattern", m.cfg.Pattern)
		row("Seed", fmt.Sprintf("%d", m.cfg.Seed))
	}
	if m.searching() {
		row("Target", fmt.Sprintf("%d", m.target))
	}
	row("Steps/tick", fmt.Sprintf("%d", m.stepsPerTick))
	row("FPS", fmt.Sprintf("%d", m.cfg.FPS))
	row("Theme", m.theme.Name)

	if m.ensemble != nil {
		for _, d := range m.ensemble.Drivers() {
			vals := metrics.Collect(d.Metrics())
			s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Compare).Render(m.label(d.Algorithm())) + "\n")
			row("Steps", fmt.Sprintf("%d", d.StepCount()))
			row("Compares", fmt.Sprintf("%.0f", vals["compares"]))
			row("Swaps", fmt.Sprintf("%.0f", vals["swaps"]))
			row("Writes", fmt.Sprintf("%.0f", vals["writes"]))
			s.WriteString(labelStyle.Render("Sorted") + ProgressBar(vals["sortedness"], 16) + "\n")
		}
	}

	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render(Separator(30) + "\nSP:Play N:Step R:Reset Q:Quit\nTab:Algo ↑↓:Size +-:Speed\n[ ]:Scrub T:Theme ?:Help"))
	return s.String()
}

func (m Model) sortednessChart() string {
	if m.ensemble == nil {
		return ""
	}
	var series [][]float64
	for _, d := range m.ensemble.Drivers() {
		for _, metric := range d.Metrics() {
			if so, ok := metric.(*metrics.Sortedness); ok && len(so.History()) > 1 {
				series = append(series, so.History())
			}
		}
	}
	if len(series) == 0 {
		return ""
	}
	return asciigraph.PlotMany(series, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Sortedness"))
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space     - Play/Pause              ║
║  N         - Single step             ║
║  R         - Reset with a new array  ║
║  Tab/S-Tab - Cycle algorithm         ║
║  Up/Down   - Array size +/-          ║
║  +/-       - Steps per tick          ║
║  [ / ]     - Scrub history           ║
║  T         - Cycle themes            ║
║  ?         - Toggle this help        ║
║  Q         - Quit                    ║
╚══════════════════════════════════════╝`
