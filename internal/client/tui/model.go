// Package tui is the full-screen recipe browser started by "recipeshare
// browse". It shows the same cards as the REPL and supports liking, saving
// and switching between all and saved recipes.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/recipeshare/internal/client/client"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/nav"
	"github.com/dmitrijs2005/recipeshare/internal/client/notify"
	"github.com/dmitrijs2005/recipeshare/internal/client/render"
	"github.com/dmitrijs2005/recipeshare/internal/client/services"
	"github.com/dmitrijs2005/recipeshare/internal/client/state"
	"github.com/dmitrijs2005/recipeshare/internal/logging"
)

const msgLoginToToggle = "Please log in to like or save recipes."

// detailsStyle is the glamour style of expanded cards.
var detailsStyle = "dark"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).PaddingLeft(1)
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
)

type Options struct {
	Recipes services.RecipeService
	Store   *state.Store
	Logger  logging.Logger

	// MessageTTL is how long banner messages stay visible.
	MessageTTL time.Duration
}

type Model struct {
	ctx     context.Context
	recipes services.RecipeService
	store   *state.Store
	log     logging.Logger
	banner  *notify.Banner
	ttl     time.Duration

	nav     *nav.Controller
	cards   []render.Card
	cursor  int
	loading bool
	offline bool

	spinner  spinner.Model
	viewport viewport.Model
	keys     keyMap
	help     help.Model
	width    int
	height   int
}

type recipesMsg struct {
	section nav.Section
	recipes []models.Recipe
	offline bool
}

type failedMsg struct{ text string }

type likedMsg struct {
	id   int64
	resp *models.ToggleLikeResponse
}

type savedMsg struct {
	id   int64
	resp *models.ToggleSaveResponse
}

type bannerTickMsg struct{}

func New(ctx context.Context, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	ttl := opts.MessageTTL
	if ttl <= 0 {
		ttl = notify.DefaultTTL
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		ctx:      ctx,
		recipes:  opts.Recipes,
		store:    opts.Store,
		log:      log.With("component", "tui"),
		banner:   notify.NewBanner(nil, ttl, log),
		ttl:      ttl,
		nav:      nav.NewController(),
		loading:  true,
		spinner:  s,
		viewport: viewport.New(80, 20),
		keys:     keys,
		help:     help.New(),
	}
}

// Run shows the browser until the user quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(nav.SectionHome))
}

// Section returns the list being shown.
func (m Model) Section() nav.Section { return m.nav.Current() }

// Cards returns the cards being shown.
func (m Model) Cards() []render.Card { return m.cards }

// Cursor returns the index of the selected card.
func (m Model) Cursor() int { return m.cursor }

// Message returns the visible banner text.
func (m Model) Message() (notify.Message, bool) { return m.banner.Current() }

func (m Model) fetch(section nav.Section) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		if section == nav.SectionSaved {
			list, err := m.recipes.FetchSaved(ctx)
			if err != nil {
				return failedMsg{text: "Error fetching saved recipes: " + client.UserMessage(err)}
			}
			return recipesMsg{section: section, recipes: list}
		}

		res, err := m.recipes.FetchAll(ctx)
		if err != nil {
			return failedMsg{text: "Error fetching recipes: " + client.UserMessage(err)}
		}
		return recipesMsg{section: section, recipes: res.Recipes, offline: res.Offline}
	}
}

func (m Model) toggleLike(id int64) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		resp, err := m.recipes.ToggleLike(ctx, id)
		if err != nil {
			return failedMsg{text: client.Describe("Error: ", err)}
		}
		return likedMsg{id: id, resp: resp}
	}
}

func (m Model) toggleSave(id int64) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		resp, err := m.recipes.ToggleSave(ctx, id)
		if err != nil {
			return failedMsg{text: client.Describe("Error: ", err)}
		}
		return savedMsg{id: id, resp: resp}
	}
}

// bannerTick redraws the view once a message has expired.
var bannerTick = func(ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg { return bannerTickMsg{} })
}

func (m *Model) show(text string, kind notify.Kind) tea.Cmd {
	m.banner.Show(m.ctx, text, kind)
	return bannerTick(m.ttl)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		// header, spacer, banner and help
		m.viewport.Height = max(1, msg.Height-5)
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case recipesMsg:
		m.loading = false
		m.offline = msg.offline
		m.nav.Show(msg.section)
		m.cards = render.Cards(msg.recipes, m.store, m.recipes.BaseURL())
		if m.cursor >= len(m.cards) {
			m.cursor = max(0, len(m.cards)-1)
		}
		m.refresh()
		return m, nil

	case failedMsg:
		m.loading = false
		m.refresh()
		return m, m.show(msg.text, notify.KindError)

	case likedMsg:
		if i := render.Find(m.cards, msg.id); i >= 0 {
			m.cards[i].ApplyLike(msg.resp.Liked, msg.resp.Likes)
		}
		m.refresh()
		return m, m.show(msg.resp.Message, notify.KindSuccess)

	case savedMsg:
		cmd := m.show(msg.resp.Message, notify.KindSuccess)
		if !msg.resp.Saved && m.nav.Visible(nav.SectionSaved) {
			return m, tea.Batch(cmd, m.fetch(nav.SectionSaved))
		}
		if i := render.Find(m.cards, msg.id); i >= 0 {
			m.cards[i].ApplySave(msg.resp.Saved)
		}
		m.refresh()
		return m, cmd

	case bannerTickMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.cards)-1 {
			m.cursor++
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Details):
		if len(m.cards) > 0 {
			m.cards[m.cursor].ToggleDetails()
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetch(m.nav.Current()))

	case key.Matches(msg, m.keys.Section):
		// The section changes when the list arrives, so a failed fetch
		// leaves the current one in place.
		next := nav.SectionSaved
		if m.nav.Visible(nav.SectionSaved) {
			next = nav.SectionHome
		} else if !m.store.LoggedIn() {
			return m, m.show(nav.Message(nav.ErrLoginToSaved), notify.KindError)
		}
		m.cursor = 0
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetch(next))

	case key.Matches(msg, m.keys.Like), key.Matches(msg, m.keys.Save):
		if len(m.cards) == 0 {
			return m, nil
		}
		if !m.store.LoggedIn() {
			return m, m.show(msgLoginToToggle, notify.KindError)
		}
		id := m.cards[m.cursor].ID
		if key.Matches(msg, m.keys.Like) {
			return m, m.toggleLike(id)
		}
		return m, m.toggleSave(id)
	}
	return m, nil
}

// refresh redraws the cards into the viewport and keeps the selected card
// in view.
func (m *Model) refresh() {
	if len(m.cards) == 0 {
		empty := render.NoRecipes
		if m.nav.Visible(nav.SectionSaved) {
			empty = render.NoSavedRecipes
		}
		m.viewport.SetContent(empty)
		return
	}

	var (
		b     strings.Builder
		start int
		end   int
		line  int
	)
	for i, c := range m.cards {
		block := render.CardText(c, i == m.cursor)
		if c.Expanded {
			if details, err := render.Details(c, max(m.width-4, 20), detailsStyle); err == nil {
				block += "\n" + details
			} else {
				m.log.Warn(m.ctx, "render details failed", "recipe_id", c.ID, "error", err)
			}
		}
		h := lipgloss.Height(block)
		if i == m.cursor {
			start, end = line, line+h
		}
		b.WriteString(block)
		b.WriteString("\n")
		line += h + 1
	}
	m.viewport.SetContent(b.String())

	switch {
	case start < m.viewport.YOffset:
		m.viewport.SetYOffset(start)
	case end > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(end - m.viewport.Height)
	}
}

func (m Model) header() string {
	title := "All Recipes"
	if m.nav.Visible(nav.SectionSaved) {
		title = "My Saved Recipes"
	}
	if u, ok := m.store.CurrentUser(); ok {
		title += "  ·  " + u.Email
	}
	if m.offline {
		title += "  " + offlineStyle.Render("(offline)")
	}
	return titleStyle.Render(title)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.header(),
			lipgloss.JoinHorizontal(lipgloss.Center, m.spinner.View(), " Loading recipes"),
		)
	}

	bottom := lipgloss.NewStyle().PaddingLeft(2).Render(m.help.View(m.keys))
	if msg, ok := m.banner.Current(); ok {
		bottom = lipgloss.JoinVertical(lipgloss.Left, " "+msg.Render(), bottom)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), m.viewport.View(), "", bottom)
}
