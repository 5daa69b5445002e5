package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"campus/internal/api"
	"campus/internal/models"
	"campus/internal/threads"
	"campus/internal/ui/keys"
	"campus/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusSearchInput FocusArea = iota
	FocusTypeFilter
	FocusUnitFilter
	FocusCategoryFilter
	FocusThreadList
)

// ThreadListView shows discussion threads with filtering and creation
type ThreadListView struct {
	api    *api.Client
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	// The collection as fetched; visible is the engine's output over it
	all     []models.Thread
	visible []models.Thread
	stats   models.ThreadStats

	loaded bool
	apiErr string

	// UI state
	focus   FocusArea
	cursor  int
	scrollY int

	searchInput    textinput.Model
	typeFilter     string // threads.TypeAll, "classroom" or "generic"
	unitFilter     string // "" = all units
	categoryFilter string // "" = all categories
	sortKey        models.SortKey

	// Dropdown state for the type/unit/category selectors
	typeDropdownOpen     bool
	unitDropdownOpen     bool
	categoryDropdownOpen bool
	dropdownCursor       int

	// Thread detail view
	viewingThread bool

	// Creation form
	creating     bool
	formTitle    textinput.Model
	formBody     textarea.Model
	formTags     textinput.Model
	formUnit     textinput.Model
	formCategory textinput.Model
	formVis      textinput.Model
	formType     models.ThreadType
	formFocusIdx int // 0=title, 1=body, 2=tags, 3=type, 4=unit/category, 5=visibility, 6=submit
	formErr      string

	// In-flight creation; the submit control stays disabled until settled
	submitting bool
	spinner    spinner.Model

	// Help popup (shown with ? at narrow widths)
	showHelpPopup bool
}

// NewThreadListView creates the thread list view
func NewThreadListView(client *api.Client) *ThreadListView {
	s := styles.NewStyles()

	search := textinput.New()
	search.Placeholder = "Search threads..."
	search.CharLimit = 100

	formTitle := textinput.New()
	formTitle.Placeholder = "Thread title"
	formTitle.CharLimit = 200

	formBody := textarea.New()
	formBody.Placeholder = "What do you want to discuss?"
	formBody.CharLimit = 5000
	formBody.SetWidth(50)
	formBody.SetHeight(5)
	formBody.ShowLineNumbers = false

	formTags := textinput.New()
	formTags.Placeholder = "Tags, comma separated (optional)"
	formTags.CharLimit = 200

	formUnit := textinput.New()
	formUnit.Placeholder = "Unit id, e.g. unit-3"
	formUnit.CharLimit = 50

	formCategory := textinput.New()
	formCategory.Placeholder = "Category, e.g. study-groups"
	formCategory.CharLimit = 50

	formVis := textinput.New()
	formVis.Placeholder = "Visibility (optional)"
	formVis.CharLimit = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &ThreadListView{
		api:          client,
		styles:       s,
		keys:         keys.DefaultKeyMap(),
		focus:        FocusThreadList,
		searchInput:  search,
		typeFilter:   threads.TypeAll,
		sortKey:      models.SortRecent,
		formTitle:    formTitle,
		formBody:     formBody,
		formTags:     formTags,
		formUnit:     formUnit,
		formCategory: formCategory,
		formVis:      formVis,
		formType:     models.ThreadClassroom,
		spinner:      sp,
	}
}

// Init initializes the view
func (v *ThreadListView) Init() tea.Cmd {
	return v.loadThreads
}

type threadsLoadedMsg struct {
	threads []models.Thread
}

type threadsLoadFailedMsg struct {
	err error
}

type threadCreatedMsg struct {
	thread *models.Thread
}

type threadCreateFailedMsg struct {
	err error
}

func (v *ThreadListView) loadThreads() tea.Msg {
	list, err := v.api.ListThreads(context.Background())
	if err != nil {
		return threadsLoadFailedMsg{err: err}
	}
	return threadsLoadedMsg{threads: list}
}

// query assembles the current filter state for the engine
func (v *ThreadListView) query() threads.Query {
	return threads.Query{
		Search:   v.searchInput.Value(),
		Type:     v.typeFilter,
		UnitID:   v.unitFilter,
		Category: v.categoryFilter,
		Sort:     v.sortKey,
	}
}

// refresh recomputes the visible list and stats from the collection.
// Pure recomputation, safe to run on every input change.
func (v *ThreadListView) refresh() {
	v.visible = threads.Apply(v.all, v.query())
	v.stats = threads.Stats(v.all)
	if v.cursor >= len(v.visible) {
		v.cursor = max(0, len(v.visible)-1)
	}
	v.ensureVisible()
}

// unitOptions collects distinct unit ids from classroom threads
func (v *ThreadListView) unitOptions() []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range v.all {
		if t.Type == models.ThreadClassroom && t.UnitID != "" && !seen[t.UnitID] {
			seen[t.UnitID] = true
			out = append(out, t.UnitID)
		}
	}
	return out
}

// categoryOptions collects distinct categories from generic threads
func (v *ThreadListView) categoryOptions() []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range v.all {
		if t.Type == models.ThreadGeneric && t.Category != "" && !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// Update handles messages
func (v *ThreadListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.formBody.SetWidth(clamp(contentWidth-10, 20, 50))
		return v, nil

	case threadsLoadedMsg:
		v.all = msg.threads
		v.loaded = true
		v.apiErr = ""
		v.refresh()
		return v, nil

	case threadsLoadFailedMsg:
		v.loaded = true
		v.apiErr = msg.err.Error()
		return v, nil

	case threadCreatedMsg:
		// Server owns the record; close the form and re-fetch
		v.submitting = false
		v.creating = false
		return v, v.loadThreads

	case threadCreateFailedMsg:
		// Form stays open with everything the user typed intact
		v.submitting = false
		v.formErr = msg.err.Error()
		return v, nil

	case spinner.TickMsg:
		if !v.submitting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		// Help popup first - any key closes it
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		if v.creating {
			return v.updateCreating(msg)
		}

		if v.viewingThread {
			return v.updateViewingThread(msg)
		}

		if v.typeDropdownOpen || v.unitDropdownOpen || v.categoryDropdownOpen {
			return v.updateDropdown(msg)
		}

		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *ThreadListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search typing first - hotkeys are suspended while the input has focus
	if v.focus == FocusSearchInput {
		switch {
		case key.Matches(msg, v.keys.Back):
			v.searchInput.Blur()
			v.focus = FocusThreadList
			return v, nil
		case key.Matches(msg, v.keys.Enter):
			v.searchInput.Blur()
			v.focus = FocusThreadList
			return v, nil
		default:
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			v.refresh()
			return v, cmd
		}
	}

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Tab):
		v.cycleFocus(1)
		return v, nil

	case msg.String() == "shift+tab":
		v.cycleFocus(-1)
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.focus == FocusThreadList && v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.focus == FocusThreadList && v.cursor < len(v.visible)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		switch v.focus {
		case FocusTypeFilter:
			v.typeDropdownOpen = true
			v.dropdownCursor = 0
		case FocusUnitFilter:
			v.unitDropdownOpen = true
			v.dropdownCursor = 0
		case FocusCategoryFilter:
			v.categoryDropdownOpen = true
			v.dropdownCursor = 0
		case FocusThreadList:
			if len(v.visible) > 0 {
				v.viewingThread = true
			}
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.startNewThread()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Search):
		v.focus = FocusSearchInput
		v.searchInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Filter):
		v.focus = FocusTypeFilter
		v.typeDropdownOpen = true
		v.dropdownCursor = 0
		return v, nil

	case key.Matches(msg, v.keys.Sort):
		v.cycleSort()
		v.refresh()
		return v, nil

	case msg.String() == "r":
		// Manual re-fetch, also clears a stale error banner
		v.apiErr = ""
		return v, v.loadThreads

	case msg.String() == "?":
		v.showHelpPopup = true
		return v, nil
	}

	return v, nil
}

func (v *ThreadListView) cycleSort() {
	switch v.sortKey {
	case models.SortRecent:
		v.sortKey = models.SortReplies
	case models.SortReplies:
		v.sortKey = models.SortCreated
	default:
		v.sortKey = models.SortRecent
	}
}

// dropdownOptions returns the option list for whichever dropdown is open,
// always starting with an "all" entry.
func (v *ThreadListView) dropdownOptions() []string {
	switch {
	case v.typeDropdownOpen:
		return []string{"All", "Classroom", "Generic"}
	case v.unitDropdownOpen:
		return append([]string{"All units"}, v.unitOptions()...)
	case v.categoryDropdownOpen:
		return append([]string{"All categories"}, v.categoryOptions()...)
	}
	return nil
}

func (v *ThreadListView) updateDropdown(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := v.dropdownOptions()

	switch {
	case key.Matches(msg, v.keys.Back):
		v.closeDropdowns()
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.dropdownCursor > 0 {
			v.dropdownCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.dropdownCursor < len(options)-1 {
			v.dropdownCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		switch {
		case v.typeDropdownOpen:
			switch v.dropdownCursor {
			case 1:
				v.typeFilter = string(models.ThreadClassroom)
			case 2:
				v.typeFilter = string(models.ThreadGeneric)
			default:
				v.typeFilter = threads.TypeAll
			}
		case v.unitDropdownOpen:
			if v.dropdownCursor == 0 {
				v.unitFilter = ""
			} else {
				v.unitFilter = options[v.dropdownCursor]
			}
		case v.categoryDropdownOpen:
			if v.dropdownCursor == 0 {
				v.categoryFilter = ""
			} else {
				v.categoryFilter = options[v.dropdownCursor]
			}
		}
		v.closeDropdowns()
		v.refresh()
		return v, nil
	}

	return v, nil
}

func (v *ThreadListView) closeDropdowns() {
	v.typeDropdownOpen = false
	v.unitDropdownOpen = false
	v.categoryDropdownOpen = false
}

func (v *ThreadListView) updateViewingThread(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.viewingThread = false
		return v, nil
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	}
	return v, nil
}

func (v *ThreadListView) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the create request is in flight every control is disabled;
	// only the result message re-enables the form.
	if v.submitting {
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.creating = false
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.submitThread()

	case key.Matches(msg, v.keys.Tab):
		v.moveFormFocus(1)
		return v, nil

	case msg.String() == "shift+tab":
		v.moveFormFocus(-1)
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		// Enter on single-line fields advances; on the type row it toggles;
		// on the submit button it submits. The body textarea keeps enter
		// for newlines.
		switch v.formFocusIdx {
		case 0, 2, 4, 5:
			v.moveFormFocus(1)
			return v, nil
		case 3:
			v.toggleFormType()
			return v, nil
		case 6:
			return v, v.submitThread()
		}

	case msg.String() == " ", msg.String() == "left", msg.String() == "right":
		if v.formFocusIdx == 3 {
			v.toggleFormType()
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.formFocusIdx {
	case 0:
		v.formTitle, cmd = v.formTitle.Update(msg)
	case 1:
		v.formBody, cmd = v.formBody.Update(msg)
	case 2:
		v.formTags, cmd = v.formTags.Update(msg)
	case 4:
		if v.formType == models.ThreadClassroom {
			v.formUnit, cmd = v.formUnit.Update(msg)
		} else {
			v.formCategory, cmd = v.formCategory.Update(msg)
		}
	case 5:
		if v.formType == models.ThreadGeneric {
			v.formVis, cmd = v.formVis.Update(msg)
		}
	}
	return v, cmd
}

// moveFormFocus shifts form focus, skipping the visibility row for
// classroom threads (it is only rendered for generic ones)
func (v *ThreadListView) moveFormFocus(dir int) {
	v.formFocusIdx = (v.formFocusIdx + dir + 7) % 7
	if v.formFocusIdx == 5 && v.formType == models.ThreadClassroom {
		v.formFocusIdx = (v.formFocusIdx + dir + 7) % 7
	}
	v.updateFormFocus()
}

func (v *ThreadListView) toggleFormType() {
	if v.formType == models.ThreadClassroom {
		v.formType = models.ThreadGeneric
	} else {
		v.formType = models.ThreadClassroom
	}
}

func (v *ThreadListView) startNewThread() {
	v.creating = true
	v.formFocusIdx = 0
	v.formErr = ""
	v.formType = models.ThreadClassroom
	v.formTitle.Reset()
	v.formBody.Reset()
	v.formTags.Reset()
	v.formUnit.Reset()
	v.formCategory.Reset()
	v.formVis.Reset()
	v.updateFormFocus()
}

func (v *ThreadListView) updateFormFocus() {
	v.formTitle.Blur()
	v.formBody.Blur()
	v.formTags.Blur()
	v.formUnit.Blur()
	v.formCategory.Blur()
	v.formVis.Blur()

	switch v.formFocusIdx {
	case 0:
		v.formTitle.Focus()
	case 1:
		v.formBody.Focus()
	case 2:
		v.formTags.Focus()
	case 4:
		if v.formType == models.ThreadClassroom {
			v.formUnit.Focus()
		} else {
			v.formCategory.Focus()
		}
	case 5:
		if v.formType == models.ThreadGeneric {
			v.formVis.Focus()
		}
	}
}

// payload normalizes the form into a creation payload
func (v *ThreadListView) payload() models.NewThread {
	var tags []string
	for _, raw := range strings.Split(v.formTags.Value(), ",") {
		if tag := strings.TrimSpace(raw); tag != "" {
			tags = append(tags, tag)
		}
	}

	n := models.NewThread{
		Title: strings.TrimSpace(v.formTitle.Value()),
		Body:  strings.TrimSpace(v.formBody.Value()),
		Tags:  tags,
		Type:  v.formType,
	}
	if v.formType == models.ThreadClassroom {
		n.UnitID = strings.TrimSpace(v.formUnit.Value())
	} else {
		n.Category = strings.TrimSpace(v.formCategory.Value())
		n.Visibility = strings.TrimSpace(v.formVis.Value())
	}
	return n
}

// submitThread validates the form and, if clean, fires the create request.
// Validation failures never reach the network.
func (v *ThreadListView) submitThread() tea.Cmd {
	n := v.payload()
	if err := threads.ValidateNew(n); err != nil {
		v.formErr = err.Error()
		return nil
	}

	v.formErr = ""
	v.submitting = true
	return tea.Batch(
		v.spinner.Tick,
		func() tea.Msg {
			created, err := v.api.CreateThread(context.Background(), n)
			if err != nil {
				return threadCreateFailedMsg{err: err}
			}
			return threadCreatedMsg{thread: created}
		},
	)
}

func (v *ThreadListView) cycleFocus(dir int) {
	v.searchInput.Blur()
	v.focus = FocusArea((int(v.focus) + dir + 5) % 5)
	if v.focus == FocusSearchInput {
		v.searchInput.Focus()
	}
}

func (v *ThreadListView) ensureVisible() {
	// Each thread item is 2 lines + 1 margin = 3 lines
	availableHeight := v.height - 12
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
func (v *ThreadListView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.creating {
		return v.renderCreateForm()
	}

	if v.viewingThread {
		return v.renderThreadDetail()
	}

	if !v.loaded {
		return v.styles.TitleMuted.Render("Loading threads...")
	}

	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.renderThreadList())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *ThreadListView) renderHeader() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	isNarrow := contentWidth < 60

	title := s.Title.Render("Discussions")
	stats := s.Stats.Render(fmt.Sprintf("%d threads • %d open • %d resolved • %d classroom • %d generic",
		v.stats.Total, v.stats.Open, v.stats.Resolved, v.stats.Classroom, v.stats.Generic))

	searchStyle := s.Input
	if v.focus == FocusSearchInput {
		searchStyle = s.InputFocused
	}
	searchWidth := clamp(contentWidth-8, 10, 30)
	searchBox := searchStyle.Width(searchWidth).Render(v.searchInput.View())

	typeBtn := v.renderFilterButton(FocusTypeFilter, "Type: "+v.typeFilter)

	unitLabel := "Unit: all"
	if v.unitFilter != "" {
		unitLabel = "Unit: " + v.unitFilter
	}
	unitBtn := v.renderFilterButton(FocusUnitFilter, unitLabel)

	catLabel := "Category: all"
	if v.categoryFilter != "" {
		catLabel = "Category: " + v.categoryFilter
	}
	catBtn := v.renderFilterButton(FocusCategoryFilter, catLabel)

	sortBtn := s.Button.Render("Sort: " + string(v.sortKey))

	var filters string
	if isNarrow {
		filters = lipgloss.JoinVertical(lipgloss.Left, searchBox, typeBtn, unitBtn, catBtn)
	} else {
		filters = lipgloss.JoinHorizontal(lipgloss.Center,
			searchBox, " ", typeBtn, " ", unitBtn, " ", catBtn, " ", sortBtn,
		)
	}

	dropdown := ""
	if v.typeDropdownOpen || v.unitDropdownOpen || v.categoryDropdownOpen {
		dropdown = "\n" + v.renderDropdown()
	}

	banner := ""
	if v.apiErr != "" {
		banner = "\n" + s.ErrorBanner.Render("API error: "+v.apiErr+"  (r to retry)")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, stats, filters+dropdown+banner)
}

func (v *ThreadListView) renderFilterButton(area FocusArea, label string) string {
	style := v.styles.Button
	if v.focus == area {
		style = v.styles.ButtonFocused
	}
	return style.Render(label + " ▼")
}

func (v *ThreadListView) renderDropdown() string {
	s := v.styles
	var items []string
	for i, opt := range v.dropdownOptions() {
		itemStyle := s.ListItem
		if i == v.dropdownCursor {
			itemStyle = s.ListSelected
		}
		items = append(items, itemStyle.Render(opt))
	}
	if len(items) == 0 {
		items = append(items, s.TitleMuted.Render("No options"))
	}
	return s.FilterBar.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func (v *ThreadListView) renderThreadList() string {
	s := v.styles

	if len(v.visible) == 0 {
		if len(v.all) == 0 {
			return s.TitleMuted.Render("No threads yet. Press 'n' to start one.")
		}
		return s.TitleMuted.Render("No threads match the current filters.")
	}

	availableHeight := v.height - 12
	if availableHeight < 3 {
		availableHeight = 3
	}
	visibleItems := availableHeight / 3
	if visibleItems < 1 {
		visibleItems = 1
	}

	var items []string
	endIdx := min(v.scrollY+visibleItems, len(v.visible))

	for i := v.scrollY; i < endIdx; i++ {
		items = append(items, v.renderThreadItem(v.visible[i], i == v.cursor && v.focus == FocusThreadList))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *ThreadListView) renderThreadItem(t models.Thread, selected bool) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	status := s.BadgeOpen.Render("open")
	if t.Resolved {
		status = s.BadgeResolved.Render("resolved")
	}

	scope := string(t.Type)
	if t.Type == models.ThreadClassroom && t.UnitID != "" {
		scope = "classroom/" + t.UnitID
	} else if t.Type == models.ThreadGeneric && t.Category != "" {
		scope = t.Category
	}

	meta := fmt.Sprintf("%s • %s • %d replies • %s",
		status, s.BadgeType.Render(scope), t.ReplyCount, t.AuthorName)
	if len(t.Tags) > 0 {
		meta += " • " + s.Tag.Render(strings.Join(t.Tags, " "))
	}

	var titleStyle, metaStyle lipgloss.Style
	if selected {
		titleStyle = s.ListSelected.Width(width)
		metaStyle = s.ListSelected.Width(width)
	} else {
		titleStyle = s.ListItem.Width(width)
		metaStyle = s.ListItem.Width(width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(t.Title),
		metaStyle.Render(meta),
	) + "\n"
}

func (v *ThreadListView) renderThreadDetail() string {
	if len(v.visible) == 0 || v.cursor >= len(v.visible) {
		return ""
	}

	s := v.styles
	t := v.visible[v.cursor]
	contentWidth := styles.ContentWidth(v.width)
	textWidth := clamp(contentWidth-10, 20, 70)

	scopeLabel := "Unit"
	scopeValue := t.UnitID
	if t.Type == models.ThreadGeneric {
		scopeLabel = "Category"
		scopeValue = t.Category
		if t.Visibility != "" {
			scopeValue += " (" + t.Visibility + ")"
		}
	}

	status := s.BadgeOpen.Render("open")
	if t.Resolved {
		status = s.BadgeResolved.Render("resolved")
	}

	tagsLine := "None"
	if len(t.Tags) > 0 {
		tagsLine = strings.Join(t.Tags, ", ")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.MarginBottom(1).Render(t.Title),
		s.CardMeta.Render(fmt.Sprintf("%s • %d replies • by %s", status, t.ReplyCount, t.AuthorName)),
		"",
		s.TitleMuted.Render(scopeLabel),
		scopeValue,
		"",
		s.TitleMuted.Render("Tags"),
		tagsLine,
		"",
		s.TitleMuted.Render("Posted"),
		t.CreatedAt.Format("Jan 2, 2006 3:04 PM"),
		s.TitleMuted.Render("Last activity"),
		t.UpdatedAt.Format("Jan 2, 2006 3:04 PM"),
		"",
		lipgloss.NewStyle().Width(textWidth).Render(t.Body),
		"",
		s.Help.Render(s.HelpKey.Render("esc")+" back"),
	)

	padded := lipgloss.NewStyle().Padding(1, 2).Render(content)
	return styles.CenterView(padded, v.width, v.height)
}

func (v *ThreadListView) renderCreateForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	titleStyle := s.Input
	bodyStyle := s.Input
	tagsStyle := s.Input
	typeStyle := s.Button
	scopeStyle := s.Input
	visStyle := s.Input
	btnStyle := s.Button

	switch v.formFocusIdx {
	case 0:
		titleStyle = s.InputFocused
	case 1:
		bodyStyle = s.InputFocused
	case 2:
		tagsStyle = s.InputFocused
	case 3:
		typeStyle = s.ButtonFocused
	case 4:
		scopeStyle = s.InputFocused
	case 5:
		visStyle = s.InputFocused
	case 6:
		btnStyle = s.ButtonFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	scopeLabel := "Unit:"
	scopeInput := v.formUnit
	if v.formType == models.ThreadGeneric {
		scopeLabel = "Category:"
		scopeInput = v.formCategory
	}

	rows := []string{
		s.Title.Render("New Thread"),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.formTitle.View()),
		"",
		"Body:",
		bodyStyle.Render(v.formBody.View()),
		"",
		"Tags:",
		tagsStyle.Width(inputWidth).Render(v.formTags.View()),
		"",
		"Type: " + typeStyle.Render(string(v.formType)+" ⇄"),
		"",
		scopeLabel,
		scopeStyle.Width(inputWidth).Render(scopeInput.View()),
	}

	if v.formType == models.ThreadGeneric {
		rows = append(rows,
			"",
			"Visibility:",
			visStyle.Width(inputWidth).Render(v.formVis.View()),
		)
	}

	// Submit is replaced by a spinner while the request is in flight
	submit := btnStyle.Render(" Post Thread ")
	if v.submitting {
		submit = s.ButtonDisabled.Render(" " + v.spinner.View() + " Posting... ")
	}
	rows = append(rows, "", submit)

	if v.formErr != "" {
		rows = append(rows, "", s.ErrorText.Render(v.formErr))
	}

	rows = append(rows, "",
		s.TitleMuted.Render("Tab: next • Space: toggle type • Ctrl+S: post • Esc: cancel"))

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ThreadListView) renderHelp() string {
	contentWidth := styles.ContentWidth(v.width)
	if contentWidth > 0 && contentWidth < 50 {
		return v.styles.Help.Render(v.styles.HelpKey.Render("?") + " help")
	}
	return v.styles.Help.Render(
		fmt.Sprintf("%s view • %s new • %s search • %s filter • %s sort • %s refresh • %s content • %s quit",
			v.styles.HelpKey.Render("↵"),
			v.styles.HelpKey.Render("n"),
			v.styles.HelpKey.Render("/"),
			v.styles.HelpKey.Render("f"),
			v.styles.HelpKey.Render("s"),
			v.styles.HelpKey.Render("r"),
			v.styles.HelpKey.Render("ctrl+t"),
			v.styles.HelpKey.Render("q"),
		),
	)
}

func (v *ThreadListView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpKey.Render("↵") + "       view thread",
		s.HelpKey.Render("n") + "       new thread",
		s.HelpKey.Render("/") + "       search",
		s.HelpKey.Render("f") + "       filter by type",
		s.HelpKey.Render("s") + "       cycle sort key",
		s.HelpKey.Render("r") + "       refresh",
		s.HelpKey.Render("tab") + "     cycle focus",
		s.HelpKey.Render("ctrl+t") + "  content library",
		s.HelpKey.Render("q") + "       quit",
		"",
		s.TitleMuted.Render("Press any key to close"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Keyboard Shortcuts"), ""}, helpItems...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}
