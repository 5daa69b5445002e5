package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"campus/internal/api"
	"campus/internal/content"
	"campus/internal/models"
	"campus/internal/ui/keys"
	"campus/internal/ui/styles"
)

// ContentListView shows the content library: notes, links, videos and
// documents. Notes, links and videos can be edited or deleted through
// the backend; documents are read-only here.
type ContentListView struct {
	api    *api.Client
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	items  []models.ContentItem
	loaded bool
	apiErr string

	cursor  int
	scrollY int

	// Detail card
	viewing bool

	// Edit mode
	editing  bool
	editBody textarea.Model
	editErr  string

	// Delete confirmation
	confirmingDelete bool

	// In-flight save/delete; controls are disabled until the request settles
	saving   bool
	deleting bool
	spinner  spinner.Model
}

// NewContentListView creates the content library view
func NewContentListView(client *api.Client) *ContentListView {
	s := styles.NewStyles()

	edit := textarea.New()
	edit.Placeholder = "Content..."
	edit.CharLimit = 10000
	edit.SetWidth(50)
	edit.SetHeight(6)
	edit.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &ContentListView{
		api:      client,
		styles:   s,
		keys:     keys.DefaultKeyMap(),
		editBody: edit,
		spinner:  sp,
	}
}

// Init initializes the view
func (v *ContentListView) Init() tea.Cmd {
	return v.loadContent
}

type contentLoadedMsg struct {
	items []models.ContentItem
}

type contentLoadFailedMsg struct {
	err error
}

type contentSavedMsg struct {
	item *models.ContentItem
}

type contentDeletedMsg struct {
	id string
}

type contentOpFailedMsg struct {
	err error
}

func (v *ContentListView) loadContent() tea.Msg {
	items, err := v.api.ListContent(context.Background())
	if err != nil {
		return contentLoadFailedMsg{err: err}
	}
	return contentLoadedMsg{items: items}
}

// Update handles messages
func (v *ContentListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.editBody.SetWidth(clamp(contentWidth-10, 20, 50))
		return v, nil

	case contentLoadedMsg:
		v.items = msg.items
		v.loaded = true
		v.apiErr = ""
		if v.cursor >= len(v.items) {
			v.cursor = max(0, len(v.items)-1)
		}
		v.ensureVisible()
		// A refresh can settle with nothing left to show; close any
		// modal state that still points at the old selection
		if len(v.items) == 0 {
			v.viewing = false
			v.editing = false
			v.confirmingDelete = false
		}
		return v, nil

	case contentLoadFailedMsg:
		v.loaded = true
		v.apiErr = msg.err.Error()
		return v, nil

	case contentSavedMsg:
		// The server's record replaces ours wholesale (it carries the
		// bumped version counter)
		v.saving = false
		v.editing = false
		for i := range v.items {
			if v.items[i].ID == msg.item.ID {
				v.items[i] = *msg.item
				break
			}
		}
		return v, nil

	case contentDeletedMsg:
		v.deleting = false
		v.confirmingDelete = false
		v.viewing = false
		return v, v.loadContent

	case contentOpFailedMsg:
		// Prior state stays intact; the user decides whether to retry
		v.saving = false
		v.deleting = false
		v.confirmingDelete = false
		v.apiErr = msg.err.Error()
		return v, nil

	case spinner.TickMsg:
		if !v.saving && !v.deleting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.editing {
			return v.updateEditing(msg)
		}
		if v.viewing {
			return v.updateViewing(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *ContentListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.items)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if len(v.items) > 0 {
			v.viewing = true
		}
		return v, nil

	case key.Matches(msg, v.keys.Edit):
		if len(v.items) > 0 {
			v.startEdit()
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if len(v.items) > 0 {
			v.confirmingDelete = true
		}
		return v, nil

	case msg.String() == "r":
		v.apiErr = ""
		return v, v.loadContent
	}

	return v, nil
}

func (v *ContentListView) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.viewing = false
		return v, nil
	case key.Matches(msg, v.keys.Edit):
		v.startEdit()
		return v, nil
	case key.Matches(msg, v.keys.Delete):
		v.confirmingDelete = true
		return v, nil
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	}
	return v, nil
}

func (v *ContentListView) startEdit() {
	if len(v.items) == 0 || v.cursor >= len(v.items) {
		v.viewing = false
		return
	}
	item := v.items[v.cursor]
	if !item.Type.Editable() {
		v.apiErr = content.ErrNotEditable.Error()
		return
	}
	v.editing = true
	v.editErr = ""
	v.apiErr = ""
	v.editBody.SetValue(item.Body)
	v.editBody.Focus()
}

func (v *ContentListView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// No edits, cancels or re-submits while a save is in flight
	if v.saving {
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.editing = false
		v.editBody.Blur()
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.saveEdit()
	}

	var cmd tea.Cmd
	v.editBody, cmd = v.editBody.Update(msg)
	return v, cmd
}

// saveEdit validates the edited body and fires the update request.
// Invalid input is shown inline and never reaches the network.
func (v *ContentListView) saveEdit() tea.Cmd {
	if len(v.items) == 0 || v.cursor >= len(v.items) {
		v.editing = false
		return nil
	}
	item := v.items[v.cursor]
	body := v.editBody.Value()

	if err := content.Validate(item.Type, body); err != nil {
		v.editErr = err.Error()
		return nil
	}

	v.editErr = ""
	v.saving = true
	return tea.Batch(
		v.spinner.Tick,
		func() tea.Msg {
			updated, err := v.api.UpdateContent(context.Background(), item.ID, strings.TrimSpace(body))
			if err != nil {
				return contentOpFailedMsg{err: err}
			}
			return contentSavedMsg{item: updated}
		},
	)
}

func (v *ContentListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.deleting {
		return v, nil
	}

	switch msg.String() {
	case "y", "Y":
		if len(v.items) == 0 || v.cursor >= len(v.items) {
			v.confirmingDelete = false
			v.viewing = false
			return v, nil
		}
		id := v.items[v.cursor].ID
		v.deleting = true
		return v, tea.Batch(
			v.spinner.Tick,
			func() tea.Msg {
				if err := v.api.DeleteContent(context.Background(), id); err != nil {
					return contentOpFailedMsg{err: err}
				}
				return contentDeletedMsg{id: id}
			},
		)
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *ContentListView) ensureVisible() {
	// Each card is 2 lines + 1 margin = 3 lines
	availableHeight := v.height - 10
	if availableHeight < 3 {
		availableHeight = 3
	}
	visibleItems := availableHeight / 3
	if visibleItems < 1 {
		visibleItems = 1
	}

	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visibleItems {
		v.scrollY = v.cursor - visibleItems + 1
	}
}

// View renders the view
func (v *ContentListView) View() string {
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	if v.editing {
		return v.renderEditForm()
	}

	if v.viewing {
		return v.renderDetail()
	}

	if !v.loaded {
		return v.styles.TitleMuted.Render("Loading content...")
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Content Library"))
	if v.apiErr != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.ErrorBanner.Render("API error: " + v.apiErr + "  (r to retry)"))
	}
	b.WriteString("\n\n")
	b.WriteString(v.renderCards())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *ContentListView) renderCards() string {
	s := v.styles

	if len(v.items) == 0 {
		return s.TitleMuted.Render("No content items.")
	}

	availableHeight := v.height - 10
	if availableHeight < 3 {
		availableHeight = 3
	}
	visibleItems := availableHeight / 3
	if visibleItems < 1 {
		visibleItems = 1
	}

	var cards []string
	endIdx := min(v.scrollY+visibleItems, len(v.items))

	for i := v.scrollY; i < endIdx; i++ {
		cards = append(cards, v.renderCard(v.items[i], i == v.cursor))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (v *ContentListView) renderCard(item models.ContentItem, selected bool) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	preview := strings.ReplaceAll(item.Body, "\n", " ")
	if r := []rune(preview); len(r) > width-4 {
		preview = string(r[:width-4]) + "…"
	}

	editable := ""
	if !item.Type.Editable() {
		editable = " • read-only"
	}
	meta := s.CardMeta.Render(fmt.Sprintf("%s • v%d • %s%s",
		item.Type, item.Version, item.CreatedAt.Format("Jan 2, 2006"), editable))

	cardStyle := s.Card
	if selected {
		cardStyle = s.CardFocused
	}

	return cardStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, preview, meta),
	) + "\n"
}

func (v *ContentListView) renderDetail() string {
	if len(v.items) == 0 || v.cursor >= len(v.items) {
		return ""
	}

	s := v.styles
	item := v.items[v.cursor]
	contentWidth := styles.ContentWidth(v.width)
	textWidth := clamp(contentWidth-10, 20, 70)

	editHint := s.HelpKey.Render("e") + " edit • "
	if !item.Type.Editable() {
		editHint = ""
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.MarginBottom(1).Render(strings.ToUpper(string(item.Type))),
		s.CardMeta.Render(fmt.Sprintf("version %d • created %s", item.Version, item.CreatedAt.Format("Jan 2, 2006 3:04 PM"))),
		"",
		lipgloss.NewStyle().Width(textWidth).Render(item.Body),
		"",
		s.Help.Render(editHint+s.HelpKey.Render("d")+" delete • "+s.HelpKey.Render("esc")+" back"),
	)

	padded := lipgloss.NewStyle().Padding(1, 2).Render(body)
	return styles.CenterView(padded, v.width, v.height)
}

func (v *ContentListView) renderEditForm() string {
	if len(v.items) == 0 || v.cursor >= len(v.items) {
		return ""
	}

	s := v.styles
	item := v.items[v.cursor]
	contentWidth := styles.ContentWidth(v.width)

	bodyStyle := s.InputFocused
	if v.editErr != "" {
		bodyStyle = s.InputError
	}

	// Save is replaced by a spinner while the request is in flight
	saveBtn := s.ButtonPrimary.Render(" Save ")
	if v.saving {
		saveBtn = s.ButtonDisabled.Render(" " + v.spinner.View() + " Saving... ")
	}

	rows := []string{
		s.Title.Render("Edit " + string(item.Type)),
		"",
		bodyStyle.Render(v.editBody.View()),
		"",
		saveBtn,
	}

	if v.editErr != "" {
		rows = append(rows, "", s.ErrorText.Render(v.editErr))
	}

	rows = append(rows, "",
		s.TitleMuted.Render("Ctrl+S: save • Esc: cancel"))

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ContentListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	prompt := s.Title.Foreground(styles.Current.Error).Render("Delete this item?")
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		s.ButtonPrimary.Render(" Y - Yes "),
		"  ",
		s.Button.Render(" N - No "),
	)
	if v.deleting {
		buttons = s.ButtonDisabled.Render(" " + v.spinner.View() + " Deleting... ")
	}

	body := lipgloss.JoinVertical(lipgloss.Center, prompt, "", buttons)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		body,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ContentListView) renderHelp() string {
	return v.styles.Help.Render(
		fmt.Sprintf("%s view • %s edit • %s del • %s refresh • %s threads • %s quit",
			v.styles.HelpKey.Render("↵"),
			v.styles.HelpKey.Render("e"),
			v.styles.HelpKey.Render("d"),
			v.styles.HelpKey.Render("r"),
			v.styles.HelpKey.Render("ctrl+t"),
			v.styles.HelpKey.Render("q"),
		),
	)
}
