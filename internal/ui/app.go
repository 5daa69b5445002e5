package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"campus/internal/api"
	"campus/internal/ui/keys"
	"campus/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewThreads View = iota
	ViewContent
)

type App struct {
	currentView View
	threadList  *views.ThreadListView
	contentList *views.ContentListView
	contentInit bool
	keys        keys.KeyMap
	width       int
	height      int
}

// Creates a new application
func NewApp(client *api.Client) *App {
	return &App{
		currentView: ViewThreads,
		threadList:  views.NewThreadListView(client),
		contentList: views.NewContentListView(client),
		keys:        keys.DefaultKeyMap(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.threadList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Both views keep their layout current
		a.threadList.Update(msg)
		a.contentList.Update(msg)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Switch) {
			return a, a.switchView()
		}
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewThreads:
		_, cmd = a.threadList.Update(msg)
	case ViewContent:
		_, cmd = a.contentList.Update(msg)
	}

	return a, cmd
}

func (a *App) switchView() tea.Cmd {
	if a.currentView == ViewThreads {
		a.currentView = ViewContent
		// First visit loads the content list
		if !a.contentInit {
			a.contentInit = true
			return tea.Batch(
				a.contentList.Init(),
				func() tea.Msg {
					return tea.WindowSizeMsg{Width: a.width, Height: a.height}
				},
			)
		}
		return nil
	}
	a.currentView = ViewThreads
	return nil
}

func (a *App) View() string {
	switch a.currentView {
	case ViewContent:
		return a.contentList.View()
	}
	return a.threadList.View()
}
