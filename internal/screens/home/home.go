package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/content"
	"github.com/studialabs/studia/internal/evaluate"
	"github.com/studialabs/studia/internal/llm"
	"github.com/studialabs/studia/internal/question"
	"github.com/studialabs/studia/internal/router"
	"github.com/studialabs/studia/internal/screen"
	"github.com/studialabs/studia/internal/screens/assessment"
	"github.com/studialabs/studia/internal/screens/pathway"
	"github.com/studialabs/studia/internal/store"
	"github.com/studialabs/studia/internal/ui/components"
	"github.com/studialabs/studia/internal/ui/theme"
)

// HomeScreen is the entry screen: document status plus the main menu.
type HomeScreen struct {
	menu     components.Menu
	doc      *content.Document
	provider llm.Provider
	lastDoc  string
	answered int
	correct  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. doc and provider may be nil; menu entries
// that need them are disabled.
func New(doc *content.Document, provider llm.Provider, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *HomeScreen {
	h := &HomeScreen{
		doc:      doc,
		provider: provider,
	}

	// Pull history for the status card; absence of a store is fine.
	if eventRepo != nil {
		if totals, err := eventRepo.AnswerTotals(context.Background()); err == nil {
			h.answered = totals.Answers
			h.correct = totals.Correct
		}
	}
	if snapRepo != nil {
		if snap, err := snapRepo.Latest(context.Background()); err == nil && snap != nil {
			h.lastDoc = snap.Data.Document
		}
	}

	grader := grader(provider)

	items := []components.MenuItem{
		{
			Label:    "BUILD LEARNING PATHWAY",
			Disabled: doc == nil || provider == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: pathway.New(doc, provider, eventRepo, snapRepo),
					}
				}
			},
		},
		{
			Label: "DEMO ASSESSMENT",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: assessment.New(assessment.Params{
							Questions: question.DemoSet("study-skills"),
							Document:  "demo",
							Grader:    grader,
							EventRepo: eventRepo,
							SnapRepo:  snapRepo,
						}),
					}
				}
			},
		},
		{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	h.menu = components.NewMenu(items)
	return h
}

func grader(provider llm.Provider) evaluate.Grader {
	if provider == nil {
		return evaluate.Offline{}
	}
	return evaluate.New(provider, evaluate.DefaultConfig())
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Studia"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("adaptive studying from your own notes"))
	b.WriteString("\n\n")

	var status []string
	if h.doc != nil {
		status = append(status, fmt.Sprintf("Document: %s (%d KiB)", h.doc.Name, h.doc.Size/1024))
	} else {
		status = append(status, "No document loaded — run: studia study <file>")
	}
	if h.provider != nil {
		status = append(status, "Model: "+h.provider.ModelID())
	} else {
		status = append(status, "No AI provider configured — demo mode only")
	}
	if h.answered > 0 {
		status = append(status, fmt.Sprintf("History: %d answers, %d correct", h.answered, h.correct))
	}
	if h.lastDoc != "" && (h.doc == nil || h.lastDoc != h.doc.Name) {
		status = append(status, "Last studied: "+h.lastDoc)
	}

	card := theme.Card.Render(strings.Join(status, "\n"))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.menu.View()))

	return b.String()
}
