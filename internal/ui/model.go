package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ghscout/internal/config"
	"ghscout/internal/controller"
	"ghscout/internal/ui/input"
	inputtypes "ghscout/internal/ui/input/types"
	"ghscout/internal/ui/state"
	"ghscout/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	ctx    context.Context
	config *config.Config
	state  *state.AppState // centralized state
	log    *zap.Logger

	// UI-specific state not in AppState
	width        int
	height       int
	help         help.Model
	spinner      spinner.Model
	inPagerMode  bool // tracks if we're currently in pager mode
	initialQuery string
	layout       views.Layout // where the last render put each card

	search       *controller.SearchController
	expansion    *controller.ExpansionController
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. Fetches run under ctx; cancelling it
// aborts any request still in flight.
func NewModel(ctx context.Context, cfg *config.Config, search *controller.SearchController, expansion *controller.ExpansionController, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		ctx:          ctx,
		config:       cfg,
		state:        state.NewAppState(),
		log:          log.Named("ui"),
		help:         help.New(),
		spinner:      sp,
		search:       search,
		expansion:    expansion,
		renderer:     views.NewRenderer(cfg.UISettings.ShowDescriptions),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(),
	}
}

// SetInitialQuery makes the model search for query as soon as it starts
func (m *Model) SetInitialQuery(query string) {
	m.initialQuery = query
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	// Initialize viewport with reasonable defaults
	m.state.ViewportHeight = 20 // Will be updated on first render

	cmds := []tea.Cmd{m.spinner.Tick}
	if cmd := m.startSearch(m.initialQuery); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		ctx := &input.ModelContext{
			State:  m.state,
			Search: m.search.Store(),
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
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if m.state.ShowHelp || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		index, ok := m.layout.CardAt(msg.Y)
		if !ok {
			return m, nil
		}
		m.state.Select(index)
		return m, m.toggleSelected()

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResolvedMsg:
		m.search.Resolve(msg.outcome)
		m.state.SetAccounts(m.search.Store().Results())
		return m, nil

	case reposResolvedMsg:
		m.expansion.Resolve(msg.outcome)
		return m, nil

	case spinner.TickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Debug("help pager failed, falling back to popup", zap.Error(msg.err))
			m.state.ShowHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		// RestoreTerminal() repaints; restart the spinner loop we dropped
		m.inPagerMode = false
		return m, m.spinner.Tick
	}

	// text input blink and similar
	return m, m.inputHandler.Update(msg)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ToggleCardAction:
		if a.Index >= 0 {
			m.state.Select(a.Index)
		}
		return m.toggleSelected()

	case inputtypes.CollapseCardAction:
		if card := m.state.SelectedCard(); card != nil && card.Expanded {
			// collapsing never starts a fetch
			m.expansion.ToggleExpand(card)
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.startSearch(a.Text)
		}

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.state.ShowHelp = !m.state.ShowHelp
			return nil
		}
		return m.fetchHelpPager(views.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	page := m.state.ViewportHeight / 2
	if page < 1 {
		page = 1
	}

	switch direction {
	case "up":
		m.state.Select(m.state.SelectedIndex - 1)
	case "down":
		m.state.Select(m.state.SelectedIndex + 1)
	case "pageup":
		m.state.Select(m.state.SelectedIndex - page)
	case "pagedown":
		m.state.Select(m.state.SelectedIndex + page)
	case "home":
		m.state.Select(0)
	case "end":
		m.state.Select(len(m.state.Cards) - 1)
	}
}

// startSearch begins a search for query and returns the command that
// fetches it. A blank query does nothing.
func (m *Model) startSearch(query string) tea.Cmd {
	req := m.search.Search(query)
	if req == nil {
		return nil
	}
	m.state.SetAccounts(nil)

	return func() tea.Msg {
		return searchResolvedMsg{outcome: m.search.Fetch(m.ctx, req)}
	}
}

// toggleSelected expands or collapses the selected card, fetching its
// repositories when needed
func (m *Model) toggleSelected() tea.Cmd {
	card := m.state.SelectedCard()
	if card == nil {
		return nil
	}

	req := m.expansion.ToggleExpand(card)
	if req == nil {
		return nil
	}

	return func() tea.Msg {
		return reposResolvedMsg{outcome: m.expansion.Fetch(m.ctx, req)}
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	store := m.search.Store()
	repos := m.expansion.Store()

	cards := make([]views.CardView, 0, len(m.state.Cards))
	for _, c := range m.state.Cards {
		cards = append(cards, views.CardView{
			Login:    c.Account.Login,
			Expanded: c.Expanded,
			Repos:    repos.Get(c.Account.ID),
		})
	}

	vs := views.ViewState{
		Width:  m.width,
		Height: m.height,
		Search: views.SearchView{
			Query:    store.Query(),
			Loading:  store.IsLoading(),
			Error:    store.Error(),
			Searched: store.Searched(),
			Count:    len(store.Results()),
		},
		Cards:          cards,
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		SpinnerFrame:   m.spinner.View(),
		ShowHelp:       m.state.ShowHelp,
		HelpModel:      m.help,
		Keys:           m.inputHandler.Keys(),
	}

	if m.inputHandler.GetMode() != inputtypes.ModeNormal {
		vs.InputMode = m.inputHandler.ModeName()
		vs.TextInput = m.inputHandler.GetTextInput().View()
	}

	content, layout := m.renderer.Render(vs)
	m.layout = layout
	m.state.ViewportOffset = layout.Offset
	m.state.ViewportHeight = layout.Height

	return content
}
