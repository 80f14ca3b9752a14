package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoobzio/clockz"

	"reel/internal/config"
	"reel/internal/deck"
	"reel/internal/domain"
	"reel/internal/eventbus"
	"reel/internal/logging"
	"reel/internal/observe"
	"reel/internal/slider"
	"reel/internal/slider/anim"
	"reel/internal/timer"
	"reel/internal/ui/views"
)

const (
	frameInterval = 33 * time.Millisecond
	statusTimeout = 3 * time.Second

	defaultStageWidth  = 60
	defaultStageHeight = 12
	minStageWidth      = 20
	minStageHeight     = 3

	// header, stage border, controls, status and help lines
	chromeLines = 6
)

// Option configures a Model
type Option func(*Model)

// WithClock sets the clock timers and transitions run on
func WithClock(c clockz.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithRenderer sets the slide body renderer
func WithRenderer(r *deck.Renderer) Option {
	return func(m *Model) { m.renderer = r }
}

// WithContext sets the context signals are emitted with
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// Model represents the UI state
type Model struct {
	ctx      context.Context
	bus      eventbus.EventBus
	config   *config.Config
	deck     *domain.Deck
	log      *slog.Logger
	clock    clockz.Clock
	renderer *deck.Renderer

	queue  *timer.Queue
	slider *slider.Controller
	stage  *deckStage
	marks  *markers
	detach []func()

	width       int
	height      int
	keys        keyMap
	help        help.Model
	styles      *views.Styles
	view        *views.Renderer
	pager       *Pager
	showHelp    bool
	inPagerMode bool
	started     bool

	hovering bool // pointer over the widget
	held     bool // paused from the keyboard
	playing  bool // last reported playback state

	status      string
	statusIsErr bool

	// timer pump: the deadline a tick is pending for, and its generation
	armed    time.Time
	timerGen int
	framing  bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the UI model for d. The slider is configured from
// cfg.Slider and starts once the first window size arrives.
func NewModel(cfg *config.Config, d *domain.Deck, bus eventbus.EventBus, opts ...Option) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if d == nil {
		d = &domain.Deck{Name: cfg.Name}
	}
	styles := views.NewStyles()
	m := &Model{
		ctx:      context.Background(),
		bus:      bus,
		config:   cfg,
		deck:     d,
		keys:     newKeyMap(),
		help:     help.New(),
		styles:   styles,
		view:     views.NewRenderer(styles),
		pager:    NewPager(),
		showHelp: cfg.UI.ShowHelp,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = logging.NewNop()
	}
	if m.clock == nil {
		m.clock = clockz.RealClock
	}
	if m.renderer == nil {
		m.renderer = deck.NewRenderer("")
	}

	m.queue = timer.New(m.clock)
	m.stage = &deckStage{deck: d}
	m.marks = &markers{}
	m.resize()

	sopts := cfg.Slider.Options()
	sopts.Indicators = m.marks
	sopts.Logger = m.log
	sopts.OnChange = m.onChange
	sopts.AnimationOptions.Clock = m.clock

	ctrl, err := slider.New(m.stage, m.queue, sopts)
	if err != nil {
		return nil, fmt.Errorf("failed to create slider: %w", err)
	}
	m.slider = ctrl
	m.detach = append(m.detach, observe.Attach(m.ctx, ctrl))
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Slider returns the carousel controller
func (m *Model) Slider() *slider.Controller {
	return m.slider
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		if !m.started {
			m.started = true
			m.slider.Render()
		} else {
			// picks up the new stage size
			m.slider.Strategy().Refresh()
		}

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		m.handleMouse(msg)

	case timerMsg:
		if msg.gen == m.timerGen {
			m.armed = time.Time{}
			m.queue.RunDue()
		}

	case frameMsg:
		m.framing = false

	case EventMsg:
		cmds = append(cmds, m.handleEvent(msg.Event))

	case pagerMsg:
		if msg.err != nil {
			m.log.Error("pager failed", "err", msg.err)
			cmds = append(cmds, m.setStatus(fmt.Sprintf("pager failed: %v", msg.err), true))
		}

	case pauseRenderingMsg:
		m.inPagerMode = true
		m.slider.Pause()

	case resumeRenderingMsg:
		m.inPagerMode = false
		m.resumeIfFree()

	case clearStatusMsg:
		m.status = ""
		m.statusIsErr = false
	}

	if m.slider.Disposed() {
		return m, tea.Batch(cmds...)
	}
	m.notePlayback()
	cmds = append(cmds, m.schedule(), m.animate())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Prev):
		m.slider.PrevClick()

	case key.Matches(msg, m.keys.Next):
		m.slider.NextClick()

	case key.Matches(msg, m.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		if err == nil {
			m.slider.IndexClick(n - 1)
		}

	case key.Matches(msg, m.keys.First):
		m.slider.Navigate(func() { m.slider.Go(slider.Start()) })

	case key.Matches(msg, m.keys.Last):
		m.slider.Navigate(func() { m.slider.Go(slider.End()) })

	case key.Matches(msg, m.keys.Pause):
		m.togglePause()

	case key.Matches(msg, m.keys.Disable):
		disabled := !m.slider.Disabled()
		m.slider.SetDisabled(disabled)
		if disabled {
			return m.setStatus("Slider disabled", false)
		}
		// re-enabling restarts auto-play, which may still be held
		if m.held || m.hovering {
			m.slider.Pause()
		}
		return m.setStatus("Slider enabled", false)

	case key.Matches(msg, m.keys.Open):
		return m.openPager()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.config.UI.Mouse {
		return
	}
	layout := m.layout()

	// Entering the widget holds the current slide, leaving lets it go
	inside := layout.Widget().Contains(msg.X, msg.Y)
	if inside != m.hovering {
		m.hovering = inside
		if inside {
			m.slider.Pause()
		} else {
			m.resumeIfFree()
		}
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	switch t := layout.HitTest(msg.X, msg.Y); t.Kind {
	case views.TargetPrev:
		m.slider.PrevClick()
	case views.TargetNext:
		m.slider.NextClick()
	case views.TargetDot:
		m.slider.IndexClick(t.Index)
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DeckLoadedEvent:
		return m.applyDeck(e)
	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return m.setStatus(msg, true)
	}
	return nil
}

// applyDeck shows a freshly loaded deck
func (m *Model) applyDeck(e eventbus.DeckLoadedEvent) tea.Cmd {
	if e.Deck == nil || m.slider.Disposed() {
		return nil
	}
	m.setDeck(e.Deck)
	observe.Reloaded(m.ctx, e.Deck.Name, e.Deck.Len(), e.Path, nil)
	return m.setStatus(fmt.Sprintf("Reloaded %d slides", e.Deck.Len()), false)
}

// setDeck swaps the slides and starts over from the first one
func (m *Model) setDeck(d *domain.Deck) {
	if d == nil || m.slider.Disposed() {
		return
	}
	m.deck = d
	m.stage.deck = d
	m.renderer.Reset()
	m.slider.Refresh()
	m.log.Info("deck replaced", "name", d.Name, "slides", d.Len())
}

func (m *Model) togglePause() {
	if m.held {
		m.held = false
		m.resumeIfFree()
		return
	}
	m.held = true
	m.slider.Pause()
}

// resumeIfFree restarts auto-play unless something still holds it
func (m *Model) resumeIfFree() {
	if m.held || m.hovering || m.inPagerMode {
		return
	}
	m.slider.Resume()
}

func (m *Model) onChange(e slider.ChangeEvent) {
	slide, _ := m.deck.At(e.Index)
	m.log.Info("slide changed", "index", e.Index, "last", e.LastIndex, "title", slide.Title)
	if m.bus != nil {
		m.bus.Publish(eventbus.SlideChangedEvent{
			Index:     e.Index,
			LastIndex: e.LastIndex,
			Title:     slide.Title,
		})
	}
}

func (m *Model) notePlayback() {
	playing := m.slider.Playing()
	if playing == m.playing {
		return
	}
	m.playing = playing
	observe.Playback(m.ctx, playing, m.slider.Index(), m.config.Slider.AutoInterval.Std())
	if m.bus != nil {
		m.bus.Publish(eventbus.PlaybackChangedEvent{Playing: playing})
	}
}

// schedule arms a tick for the earliest pending slider timer. A tick that
// is already pending for the same deadline is reused.
func (m *Model) schedule() tea.Cmd {
	next, ok := m.queue.Next()
	if !ok {
		m.armed = time.Time{}
		return nil
	}
	if next.Equal(m.armed) {
		return nil
	}

	m.armed = next
	m.timerGen++
	gen := m.timerGen
	d := next.Sub(m.queue.Clock().Now())
	if d < 0 {
		d = 0
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{gen: gen}
	})
}

// animate keeps frames coming while a transition runs
func (m *Model) animate() tea.Cmd {
	if m.framing {
		return nil
	}
	if f, ok := m.frame(); !ok || !f.Active {
		return nil
	}
	m.framing = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *Model) frame() (anim.Frame, bool) {
	framer, ok := m.slider.Strategy().(anim.Framer)
	if !ok {
		return anim.Frame{}, false
	}
	return framer.Frame(), true
}

func (m *Model) openPager() tea.Cmd {
	if m.program == nil || m.deck.Len() == 0 {
		return nil
	}
	content := m.renderSlide(m.slider.Index(), m.width)
	program, pager := m.program, m.pager
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := pager.Show(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.status = msg
	m.statusIsErr = isErr
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Close stops the slider and detaches its observers. Safe to call twice.
func (m *Model) Close() {
	if m.slider.Disposed() {
		return
	}
	index := m.slider.Index()
	for _, detach := range m.detach {
		detach()
	}
	m.detach = nil
	m.slider.Dispose()
	observe.Disposed(m.ctx, index)
}

// resize derives the stage size from the config or the terminal
func (m *Model) resize() {
	w := m.config.UI.Width
	if w <= 0 {
		w = defaultStageWidth
		if m.width > 0 {
			w = m.width - 2
		}
	}
	h := m.config.UI.Height
	if h <= 0 {
		h = defaultStageHeight
		if m.height > 0 {
			h = m.height - chromeLines
		}
	}
	m.stage.width = max(w, minStageWidth)
	m.stage.height = max(h, minStageHeight)
}

func (m *Model) layout() views.Layout {
	return views.NewLayout(m.stage.width, m.stage.height, m.slider.Count(), m.width, m.slider.Index())
}

// renderSlide formats slide i for width columns, title first
func (m *Model) renderSlide(i, width int) string {
	slide, ok := m.deck.At(i)
	if !ok {
		return ""
	}
	body, err := m.renderer.Render(slide, width)
	if err != nil {
		m.log.Warn("falling back to raw slide", "index", i, "err", err)
		body = slide.Body
	}
	if slide.Title == "" {
		return body
	}
	return m.styles.SlideTitle.Render(slide.Title) + "\n\n" + body
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	title := m.config.UI.Title
	if title == "" {
		title = m.deck.Name
	}
	if title == "" {
		title = "reel"
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         title,
		Layout:        m.layout(),
		StageWidth:    m.stage.width,
		StageHeight:   m.stage.height,
		Current:       m.renderSlide(m.slider.Index(), m.stage.width),
		Index:         m.slider.Index(),
		Count:         m.slider.Count(),
		Selected:      m.marks.selected,
		PrevDisabled:  m.marks.prevDisabled,
		NextDisabled:  m.marks.nextDisabled,
		Hovering:      m.hovering,
		Playing:       m.slider.Playing(),
		AutoPlay:      m.config.Slider.Auto,
		Disabled:      m.slider.Disabled(),
		StatusMessage: m.status,
		StatusIsError: m.statusIsErr,
	}
	if f, ok := m.frame(); ok && f.Active {
		state.Frame = f
		state.Previous = m.renderSlide(f.From, m.stage.width)
	}
	if m.showHelp {
		state.HelpView = m.help.View(m.keys)
	}
	return m.view.Render(state)
}
