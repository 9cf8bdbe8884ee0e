package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"showcase/internal/config"
	"showcase/internal/domain"
	"showcase/internal/eventbus"
	"showcase/internal/logic"
	"showcase/internal/ui/commands"
	"showcase/internal/ui/handlers"
	"showcase/internal/ui/input"
	inputtypes "showcase/internal/ui/input/types"
	uilogic "showcase/internal/ui/logic"
	"showcase/internal/ui/services/carousel"
	"showcase/internal/ui/services/drag"
	"showcase/internal/ui/state"
	"showcase/internal/ui/views"
)

// statusTTL is how long transient status messages stay on screen
const statusTTL = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	state     *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	layout      views.Layout
	help        help.Model
	spinner     spinner.Model
	paginator   paginator.Model
	ticking     bool // a frame tick is scheduled
	inPagerMode bool // tracks if we're currently in pager mode
	colorDirty  bool // active colour differs from the saved default

	// Carousel core
	engine    *carousel.Engine
	drag      *drag.Service
	router    *pointerRouter
	scrollbar *views.ScrollbarView

	// Handlers
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler

	unsubscribes []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. configSvc may be nil, in which case
// the colour choice is not persisted.
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService) *Model {
	return NewModelWithExecutor(bus, cfg, configSvc, nil)
}

// NewModelWithExecutor creates a UI model with a custom command executor.
// A nil executor opens images with the system handler.
func NewModelWithExecutor(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService, executor *commands.Executor) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState(logic.NewMemoryProductStore(), domain.ColorKey(cfg.UI.DefaultColor))
	if mode, ok := uilogic.ParseSortMode(cfg.UI.Sort); ok {
		appState.SortMode = mode
	} else if cfg.UI.Sort != "" {
		log.Printf("Unknown sort mode %q, using catalog order", cfg.UI.Sort)
	}

	renderer := views.NewRenderer()
	router := &pointerRouter{}
	engine := carousel.NewEngine(bus, cfg.Transition())

	m := &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		state:        appState,
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		paginator:    views.NewPaginator(views.NewStyles()),
		engine:       engine,
		router:       router,
		scrollbar:    renderer.Scrollbar(),
		renderer:     renderer,
		inputHandler: input.New(),
		cmdExecutor:  executor,
	}
	m.drag = drag.NewService(bus, engine, router, m.scrollbar)
	m.helpRenderer = NewHelpRenderer(m.inputHandler.Keys())

	if m.cmdExecutor == nil {
		m.cmdExecutor = commands.NewExecutor(appState, bus)
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.itemsChanged, func() tea.Cmd {
		return m.spinner.Tick
	})

	// Settled slides move the thumb unless a drag owns it
	m.unsubscribes = append(m.unsubscribes, engine.OnSlideChange(func(index int) {
		m.drag.SyncToIndex(index)
	}))

	// A drag can end between two slides; snap the thumb to where the engine is going
	m.unsubscribes = append(m.unsubscribes, bus.Subscribe(eventbus.EventDragEnded, func(e eventbus.DomainEvent) {
		ended, ok := e.(eventbus.DragEndedEvent)
		if !ok {
			return
		}
		n := m.drag.ItemCount()
		target := m.engine.Target()
		if uilogic.PositionToIndex(ended.Position, n) != uilogic.ClampIndex(target, n) {
			m.drag.SyncToIndex(target)
		}
	}))

	m.itemsChanged()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Close tears down the drag session and the model's bus subscriptions
func (m *Model) Close() {
	m.drag.Teardown()
	for _, unsubscribe := range m.unsubscribes {
		unsubscribe()
	}
	m.unsubscribes = nil
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.BlurMsg:
		// Lost focus mid-drag: the release will never arrive
		m.drag.PointerCancel()
		return m, nil

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.ShowHelp {
		switch msg.String() {
		case "esc", "?", "q":
			m.state.ShowHelp = false
			m.state.HelpScrollOffset = 0
		case "up", "k":
			if m.state.HelpScrollOffset > 0 {
				m.state.HelpScrollOffset--
			}
		case "down", "j":
			m.state.HelpScrollOffset++
		case "ctrl+c":
			return m, m.quit(true)
		}
		return m, nil
	}

	if m.drag.Dragging() && msg.Type == tea.KeyEsc {
		m.drag.PointerCancel()
		return m, nil
	}

	ctx := &input.ModelContext{
		State:        m.state,
		CurrentSlide: m.engine.Target(),
	}

	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	if frames := m.ensureFrames(); frames != nil {
		cmds = append(cmds, frames)
	}

	return m, tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.PageAction:
		if a.Delta < 0 {
			m.engine.Prev()
		} else {
			m.engine.Next()
		}

	case inputtypes.GoToSlideAction:
		index := a.Index
		if index < 0 {
			index = m.engine.MaxIndex()
		}
		m.engine.GoToSlide(index)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.applyFilter(a.Text)
		}

	case inputtypes.ClearFilterAction:
		m.applyFilter("")

	case inputtypes.CancelTextAction, inputtypes.UpdateTextAction:
		// The text input renders itself

	case inputtypes.SetColorAction:
		return m.setColor(a.Color)

	case inputtypes.CycleColorAction:
		return m.setColor(m.state.NextColor())

	case inputtypes.CycleSortAction:
		m.state.CycleSort()
		m.itemsChanged()
		m.state.SetStatus(state.StatusInfo, "Sorted by "+m.state.SortMode.String())
		return clearStatusAfter(statusTTL)

	case inputtypes.ReloadAction:
		return m.cmdExecutor.ExecuteReload()

	case inputtypes.OpenImageAction:
		return m.cmdExecutor.ExecuteOpenImage(m.engine.Target())

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
		}
		m.state.ShowHelp = true
		m.state.HelpScrollOffset = 0

	case inputtypes.QuitAction:
		return m.quit(a.Force)
	}

	return nil
}

func (m *Model) applyFilter(query string) {
	if query == m.state.FilterQuery {
		return
	}
	m.state.SetFilter(query)
	m.itemsChanged()
	if query == "" {
		m.state.SetStatus(state.StatusInfo, "Filter cleared")
	} else {
		m.state.SetStatus(state.StatusInfo, fmt.Sprintf("%d products match %q", len(m.state.Visible), query))
	}
}

func (m *Model) setColor(key domain.ColorKey) tea.Cmd {
	if !m.state.SetColor(key) {
		return nil
	}
	m.colorDirty = string(key) != m.config.UI.DefaultColor
	m.bus.Publish(eventbus.ColorChangedEvent{Color: key})
	m.state.SetStatus(state.StatusInfo, domain.VariantFor(key).Name)
	return clearStatusAfter(statusTTL)
}

// quit persists a changed colour choice unless forced, then exits
func (m *Model) quit(force bool) tea.Cmd {
	m.drag.Teardown()
	if !force && m.colorDirty && m.configSvc != nil {
		m.config.UI.DefaultColor = string(m.state.Color)
		if err := m.configSvc.Save(m.config); err != nil {
			log.Printf("Failed to save config: %v", err)
		} else {
			m.colorDirty = false
		}
	}
	return tea.Quit
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state.ShowHelp {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.state.HelpScrollOffset > 0 {
				m.state.HelpScrollOffset--
			}
		case tea.MouseButtonWheelDown:
			m.state.HelpScrollOffset++
		}
		return nil
	}

	localX := m.scrollbar.LocalX(msg.X)

	switch msg.Action {
	case tea.MouseActionMotion:
		// Listeners granted to a drag session see motion anywhere on screen
		if !m.router.Move(localX) {
			m.drag.PointerMove(localX)
		}
		// The engine pages while the thumb moves
		return m.ensureFrames()

	case tea.MouseActionRelease:
		if !m.router.Up(localX) && m.drag.ClickPending() {
			m.drag.PointerUp(localX)
		}
		return m.ensureFrames()
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		m.engine.Prev()
		return m.ensureFrames()
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		m.engine.Next()
		return m.ensureFrames()
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	if m.scrollbarVisible() && m.scrollbar.Contains(msg.X, msg.Y) {
		switch m.scrollbar.HitTest(localX, m.drag.Position()) {
		case views.HitThumb:
			m.drag.PointerDown(localX, m.drag.Position())
		case views.HitTrack:
			m.drag.TrackDown(localX)
		}
		return nil
	}

	if len(m.state.Visible) == 0 {
		return nil
	}

	switch m.layout.ArrowAt(msg.X, msg.Y) {
	case views.PrevArrow:
		m.engine.Prev()
		return m.ensureFrames()
	case views.NextArrow:
		m.engine.Next()
		return m.ensureFrames()
	}

	if _, col, row, ok := m.layout.CardAt(msg.X, msg.Y); ok {
		if key, ok := views.SwatchAt(col, row); ok {
			return m.setColor(key)
		}
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		// Process domain events
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd

	case frameMsg:
		m.ticking = false
		if m.engine.Step(time.Time(msg)) {
			m.ticking = true
			return m, frameTick()
		}
		return m, nil

	case spinner.TickMsg:
		// Stop spinning once loading completes
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.ImageOpenedMsg:
		if msg.Err != nil {
			log.Printf("Failed to open %s: %v", msg.URL, msg.Err)
			m.state.SetStatus(state.StatusError, fmt.Sprintf("Could not open image: %v", msg.Err))
		} else {
			m.state.SetStatus(state.StatusSuccess, "Opened "+msg.URL)
		}
		return m, clearStatusAfter(statusTTL)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, log and fall back to popup
			log.Printf("Help pager failed: %v, falling back to popup", msg.err)
			m.state.ShowHelp = true
			m.state.HelpScrollOffset = 0
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if !m.state.Loading && m.state.StatusKind == state.StatusInfo {
			m.state.StatusMessage = ""
		}
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := NewHelpOps(program).ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// itemsChanged resets the carousel after the visible list was replaced
func (m *Model) itemsChanged() {
	n := len(m.state.Visible)
	m.drag.Teardown()
	m.drag.SetItemCount(n)
	m.engine.Reset(n, views.SlidesFor(m.width, m.config.UI.CardWidth))
	m.relayout()
}

// relayout recomputes geometry after a resize or a new item count
func (m *Model) relayout() {
	if m.width > 0 {
		m.engine.SetSlidesToShow(views.SlidesFor(m.width, m.config.UI.CardWidth))
	}
	m.layout = views.ComputeLayout(m.width, m.height, m.config.UI.CardWidth, m.engine.SlidesToShow())
	m.scrollbar.Place(m.layout.CardsLeft, m.layout.ScrollbarRow)
	m.scrollbar.Layout(m.layout.StripWidth, len(m.state.Visible))
	if !m.scrollbarVisible() {
		m.drag.Teardown()
	}
}

func (m *Model) scrollbarVisible() bool {
	n := len(m.state.Visible)
	if m.config.UI.HideScrollbarWhenFits && n <= uilogic.VisibleCount {
		return false
	}
	return m.scrollbar.Active()
}

// ensureFrames starts the frame loop when a transition is in flight
func (m *Model) ensureFrames() tea.Cmd {
	if m.ticking || !m.engine.Animating() {
		return nil
	}
	m.ticking = true
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(carousel.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	target := m.engine.Target()
	visible := m.engine.VisibleIndex()

	vs := views.ViewState{
		Layout:         m.layout,
		Products:       m.state.Visible,
		VisibleIndex:   visible,
		FocusedIndex:   target,
		CanPrev:        target > 0,
		CanNext:        target < m.engine.MaxIndex(),
		Color:          m.state.Color,
		Loading:        m.state.Loading,
		Spinner:        m.spinner.View(),
		ShowScrollbar:  m.scrollbarVisible(),
		ScrollPosition: m.drag.Position(),
		Dragging:       m.drag.Dragging(),
		StatusMessage:  m.state.StatusMessage,
		StatusKind:     m.state.StatusKind,
		FilterQuery:    m.state.FilterQuery,
		Stale:          m.state.Stale,
		ShowHelp:       m.state.ShowHelp,
		HelpOffset:     m.state.HelpScrollOffset,
		HelpModel:      m.help,
		Keys:           m.inputHandler.Keys(),
	}
	if m.state.SortMode != uilogic.SortByCatalog {
		vs.SortMode = m.state.SortMode.String()
	}
	if m.state.ShowHelp {
		vs.HelpContent = m.helpRenderer.RenderHelpContent()
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.InputActive = true
		vs.FilterInput = ti.View()
	}
	if len(m.state.Visible) > 0 {
		vs.Paginator = views.RenderPaginator(m.paginator, target, m.engine.MaxIndex()+1, m.layout.StripWidth)
	}
	return vs
}
