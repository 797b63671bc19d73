package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pulsenav/settings/internal/config"
	"github.com/pulsenav/settings/internal/nav"
	"github.com/pulsenav/settings/internal/router"
	"github.com/pulsenav/settings/internal/ui/components"
)

const (
	sidebarWidth = 30
	// maxDeliveries bounds router ticks between two user actions.
	maxDeliveries = 16
)

// --- Messages ---

// routerTickMsg asks the app to apply one queued router navigation.
type routerTickMsg struct{}

type clearToastMsg struct{}

type appToast struct {
	level string
	text  string
}

// App is the settings shell: a sidebar of tabs, the active tab's panel and an
// address bar showing the router location.
type App struct {
	router *router.Memory
	nav    *nav.Navigator
	logger *zap.Logger

	tabs    []nav.Tab
	list    *components.List
	vimKeys bool

	width  int
	height int

	helpOpen    bool
	addressOpen bool
	addressBuf  string
	deliveries  int
	toast       *appToast

	// addressTarget is the location typed into the address prompt until it settles.
	addressTarget *nav.Location
}

// NewApp mounts a navigator on a fresh router at the configured start path.
func NewApp(cfg *config.Config, logger *zap.Logger) App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	start := cfg.StartPath
	if start == "" {
		start = nav.SettingsRoot
	}

	r := router.New(nav.ParseLocation(start), router.WithLogger(logger))
	n := router.Mount(r, append(cfg.NavOptions(), nav.WithLogger(logger))...)

	tabs := nav.AllTabs()
	app := App{
		router:  r,
		nav:     n,
		logger:  logger,
		tabs:    tabs,
		list:    components.NewList(len(tabs), len(tabs)),
		vimKeys: cfg.VimKeys,
	}
	app.syncCursor()
	return app
}

// Navigator exposes the navigator driving the shell.
func (a App) Navigator() *nav.Navigator { return a.nav }

// Router exposes the host router.
func (a App) Router() *router.Memory { return a.router }

func (a App) Init() tea.Cmd {
	return a.deliver()
}

// deliver schedules the next router tick when navigations are queued.
func (a App) deliver() tea.Cmd {
	if a.router.Pending() == 0 {
		return nil
	}
	return func() tea.Msg { return routerTickMsg{} }
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetPageSize(a.sidebarRows())
		return a, nil

	case routerTickMsg:
		if a.deliveries >= maxDeliveries {
			a.logger.Warn("router deliveries exhausted",
				zap.String("location", a.router.Location().String()),
				zap.Int("pending", a.router.Pending()))
			return a, a.setToast("error", "redirect loop at "+a.router.Location().String())
		}
		if a.router.Step() {
			a.deliveries++
		}
		a.syncCursor()
		if a.addressTarget != nil && a.router.Pending() == 0 {
			from := *a.addressTarget
			a.addressTarget = nil
			if final := a.router.Location(); final != from {
				return a, a.setToast("success", "redirected "+from.String()+" to "+final.String())
			}
		}
		return a, a.deliver()

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case tea.KeyMsg:
		if a.addressOpen {
			return a.handleAddressKeys(msg)
		}
		return a.handleKeys(msg)
	}
	return a, nil
}

func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.helpOpen {
		if isBack(msg) || isKey(msg, "?") {
			a.helpOpen = false
			return a, nil
		}
		if isQuit(msg) {
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case isQuit(msg):
		return a, tea.Quit
	case isKey(msg, "?"):
		a.helpOpen = true
	case isUp(msg, a.vimKeys):
		a.list.Up()
	case isDown(msg, a.vimKeys):
		a.list.Down()
	case isEnter(msg):
		a.deliveries = 0
		a.nav.SetActiveTab(a.tabs[a.list.Cursor])
		return a, a.deliver()
	case isKey(msg, "g"):
		a.addressOpen = true
		a.addressBuf = a.router.Location().String()
	case isHistoryBack(msg):
		a.deliveries = 0
		if !a.router.Back() {
			return a, a.setToast("info", "no earlier history")
		}
		a.syncCursor()
		return a, a.deliver()
	case isHistoryForward(msg):
		a.deliveries = 0
		if !a.router.Forward() {
			return a, a.setToast("info", "no later history")
		}
		a.syncCursor()
		return a, a.deliver()
	default:
		if a.nav.ActiveTab() == nav.TabProxmox {
			return a.handleAgentKeys(msg)
		}
	}
	return a, nil
}

func (a App) handleAgentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	agents := nav.AllAgents()
	current := 0
	for i, agent := range agents {
		if agent == a.nav.SelectedAgent() {
			current = i
		}
	}

	next := -1
	switch {
	case isLeft(msg, a.vimKeys):
		next = (current + len(agents) - 1) % len(agents)
	case isRight(msg, a.vimKeys):
		next = (current + 1) % len(agents)
	default:
		if i, ok := agentShortcut(msg); ok {
			next = i
		}
	}
	if next < 0 || next >= len(agents) {
		return a, nil
	}
	a.deliveries = 0
	a.nav.SelectAgent(agents[next])
	return a, a.deliver()
}

func (a App) handleAddressKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		a.addressOpen = false
		a.addressBuf = ""
		return a, nil
	case isEnter(msg):
		raw := strings.TrimSpace(a.addressBuf)
		a.addressOpen = false
		a.addressBuf = ""
		if raw == "" {
			return a, nil
		}
		a.deliveries = 0
		loc := nav.ParseLocation(raw)
		a.addressTarget = &loc
		a.router.Navigate(raw, nav.NavigateOptions{Scroll: true})
		cmds := []tea.Cmd{a.deliver()}
		if !nav.IsSettingsPath(nav.Normalize(loc.Pathname)) {
			cmds = append(cmds, a.setToast("warning", loc.Pathname+" is outside "+nav.SettingsRoot))
		}
		return a, tea.Batch(cmds...)
	case isKey(msg, "backspace"):
		if r := []rune(a.addressBuf); len(r) > 0 {
			a.addressBuf = string(r[:len(r)-1])
		}
	case isKey(msg, "ctrl+u"):
		a.addressBuf = ""
	case msg.Type == tea.KeyRunes:
		a.addressBuf += string(msg.Runes)
	case msg.Type == tea.KeySpace:
		a.addressBuf += " "
	}
	return a, nil
}

// syncCursor moves the sidebar cursor onto the active tab.
func (a *App) syncCursor() {
	active := a.nav.ActiveTab()
	for i, tab := range a.tabs {
		if tab == active {
			a.list.SetCursor(i)
			return
		}
	}
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) showBanner() bool {
	return a.height == 0 || a.height >= 44
}

// sidebarRows is how many tabs fit beside the panel.
func (a App) sidebarRows() int {
	if a.height <= 0 {
		return len(a.tabs)
	}
	chrome := 10
	if a.showBanner() {
		chrome += 9
	}
	return max(a.height-chrome, 5)
}

// --- View ---

func (a App) View() string {
	var sections []string
	if a.showBanner() {
		sections = append(sections, centerBlockUniform(RenderBanner(), a.width))
	}

	loc := a.router.Location()
	sections = append(sections, " "+components.AddressBar(loc.Pathname, loc.Search, a.width-2))

	var body string
	switch {
	case a.helpOpen:
		body = centerBlockUniform(a.renderHelp(), a.width)
	case a.addressOpen:
		body = centerBlockUniform(components.InputDialog("Go to location", a.addressBuf,
			"legacy paths and ?tab= links are rewritten"), a.width)
	default:
		panel := components.Panel(a.nav.ActiveTab().Label(), a.renderPanel(),
			components.PanelWidth(a.width, sidebarWidth))
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(), "  ", panel)
	}
	sections = append(sections, body)

	if toast := a.renderToast(); toast != "" {
		sections = append(sections, toast)
	}
	sections = append(sections, components.StatusBar(a.statusHints(), a.width))
	return strings.Join(sections, "\n\n")
}

func (a App) renderSidebar() string {
	start, end := a.list.Window()
	active := a.nav.ActiveTab()

	var b strings.Builder
	var group nav.Group
	for i := start; i < end; i++ {
		tab := a.tabs[i]
		if g := tab.Group(); g != group {
			group = g
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(GroupHeaderStyle.Render(string(g)) + "\n")
		}

		prefix := "  "
		if i == a.list.Cursor {
			prefix = AccentStyle.Render("› ")
		}
		style := TabInactiveStyle
		switch {
		case tab == active:
			style = TabActiveStyle
		case i == a.list.Cursor:
			style = TabCursorStyle
		}
		b.WriteString(prefix + style.Render(components.SanitizeOneLine(tab.Label())) + "\n")
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (a App) renderPanel() string {
	state := a.nav.State()
	history, index := a.router.History()

	lines := []string{
		components.Breadcrumb("Settings", string(state.Tab.Group()), state.Tab.Label()),
		"",
		components.InfoRow("Tab", string(state.Tab), 10),
		components.InfoRow("Canonical", nav.PathFor(state.Tab), 10),
		components.InfoRow("Observed", a.nav.Location().String(), 10),
		components.InfoRow("Home", a.nav.DefaultTab().Label(), 10),
		components.InfoRow("History", fmt.Sprintf("%d/%d", index+1, len(history)), 10),
	}
	if pending := a.router.Pending(); pending > 0 {
		lines = append(lines, components.InfoRow("Pending", fmt.Sprintf("%d navigation(s)", pending), 10))
	}

	if state.Tab == nav.TabProxmox {
		lines = append(lines, "", a.renderAgentSelector(state.Agent),
			"", components.InfoRow("Agent", nav.AgentPath(state.Agent), 10))
	}
	return strings.Join(lines, "\n")
}

func (a App) renderAgentSelector(selected nav.AgentKey) string {
	agents := nav.AllAgents()
	cells := make([]string, 0, len(agents))
	for i, agent := range agents {
		label := fmt.Sprintf("%d %s", i+1, agent.Label())
		if agent == selected {
			cells = append(cells, AgentActiveStyle.Render(label))
			continue
		}
		cells = append(cells, AgentInactiveStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
}

func (a App) renderHelp() string {
	hints := a.statusHints()
	lines := make([]string, 0, len(hints)+6)
	lines = append(lines, MutedStyle.Render("esc to close"), "")
	for _, hint := range hints {
		lines = append(lines, "  "+hint)
	}
	lines = append(lines, "",
		MutedStyle.Render("Selecting a tab shows it at once; the address follows when the"),
		MutedStyle.Render("router delivers. Legacy links are replaced, never pushed."))
	return components.Panel("Help", strings.Join(lines, "\n"), 64)
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	switch a.toast.level {
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width/2)
	case "warning":
		return " " + WarningStyle.Render("! "+a.toast.text)
	case "success":
		return " " + SuccessStyle.Render("✓ "+a.toast.text)
	}
	return " " + MutedStyle.Render(a.toast.text)
}

func (a App) statusHints() []string {
	if a.addressOpen {
		return []string{
			components.Hint("enter", "Go"),
			components.Hint("esc", "Cancel"),
			components.Hint("ctrl+u", "Clear"),
		}
	}
	move := "↑/↓"
	if a.vimKeys {
		move = "j/k"
	}
	hints := []string{
		components.Hint(move, "Move"),
		components.Hint("enter", "Open"),
	}
	if a.nav.ActiveTab() == nav.TabProxmox {
		hints = append(hints, components.Hint("1-3 ←/→", "Agent"))
	}
	return append(hints,
		components.Hint("g", "Go to"),
		components.Hint("[ ]", "History"),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	)
}
