package pathway

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/adaptive"
	"github.com/studialabs/studia/internal/analyze"
	"github.com/studialabs/studia/internal/concept"
	"github.com/studialabs/studia/internal/content"
	"github.com/studialabs/studia/internal/evaluate"
	"github.com/studialabs/studia/internal/llm"
	"github.com/studialabs/studia/internal/question"
	"github.com/studialabs/studia/internal/router"
	"github.com/studialabs/studia/internal/screen"
	"github.com/studialabs/studia/internal/screens/assessment"
	"github.com/studialabs/studia/internal/store"
	"github.com/studialabs/studia/internal/ui/components"
	"github.com/studialabs/studia/internal/ui/layout"
	"github.com/studialabs/studia/internal/ui/theme"
)

const spinnerInterval = 120 * time.Millisecond

// pipelineDoneMsg carries the analysis pipeline result.
type pipelineDoneMsg struct {
	Analysis *analyze.ContentAnalysis
	Concepts []*concept.Concept
	Pathway  *concept.Pathway
	Err      error
}

// questionsReadyMsg carries a generated question set for one start mode.
type questionsReadyMsg struct {
	Questions []question.Question
	Err       error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// PathwayScreen analyzes the document, shows the ordered concept list,
// and launches assessments.
type PathwayScreen struct {
	doc       *content.Document
	provider  llm.Provider
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo

	analysis *analyze.ContentAnalysis
	concepts []*concept.Concept
	pathway  *concept.Pathway
	perf     adaptive.PerformanceMap

	selected   int
	loading    bool
	loadingMsg string
	spinner    components.Spinner
	errMsg     string
}

var _ screen.Screen = (*PathwayScreen)(nil)
var _ screen.KeyHintProvider = (*PathwayScreen)(nil)

// New creates the pathway screen for a loaded document.
func New(doc *content.Document, provider llm.Provider, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *PathwayScreen {
	return &PathwayScreen{
		doc:        doc,
		provider:   provider,
		eventRepo:  eventRepo,
		snapRepo:   snapRepo,
		loading:    true,
		loadingMsg: "Analyzing " + doc.Name + "...",
		spinner:    components.NewSpinner("Analyzing " + doc.Name + "..."),
		perf:       adaptive.PerformanceMap{},
	}
}

func (p *PathwayScreen) Init() tea.Cmd {
	return tea.Batch(p.runPipeline(), p.spinnerTick())
}

func (p *PathwayScreen) Title() string {
	return "Pathway"
}

func (p *PathwayScreen) KeyHints() []layout.KeyHint {
	if p.loading || p.errMsg != "" {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Study concept"},
		{Key: "A", Description: "Adaptive mix"},
		{Key: "Esc", Description: "Back"},
	}
}

// runPipeline performs analyze, extract, and pathway assembly in one
// command. Any failure surfaces as a single coarse error.
func (p *PathwayScreen) runPipeline() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		analyzer := analyze.New(p.provider, analyze.DefaultConfig())
		analysis, err := analyzer.Analyze(ctx, p.doc.Text)
		if err != nil {
			return pipelineDoneMsg{Err: err}
		}

		extractor := concept.NewExtractor(p.provider, concept.DefaultExtractConfig())
		concepts, err := extractor.Extract(ctx, analysis)
		if err != nil {
			return pipelineDoneMsg{Err: err}
		}

		pway := concept.BuildPathway(concepts)

		ptrs := make([]*concept.Concept, len(pway.Entries))
		for i := range pway.Entries {
			ptrs[i] = &pway.Entries[i].Concept
		}

		return pipelineDoneMsg{Analysis: analysis, Concepts: ptrs, Pathway: pway}
	}
}

func (p *PathwayScreen) spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (p *PathwayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pipelineDoneMsg:
		p.loading = false
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.analysis = msg.Analysis
		p.concepts = msg.Concepts
		p.pathway = msg.Pathway
		p.restorePerformance()
		p.selected = 0
		return p, nil

	case questionsReadyMsg:
		p.loading = false
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		return p, p.openAssessment(msg.Questions)

	case spinnerTickMsg:
		if !p.loading {
			return p, nil
		}
		p.spinner.Advance()
		return p, p.spinnerTick()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p *PathwayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if p.loading {
		return p, nil
	}
	if p.errMsg != "" {
		// Any key returns home for a manual retry.
		p.errMsg = ""
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if p.pathway == nil {
		return p, nil
	}

	// A finished assessment has written mastery back through the shared
	// concepts and perf map; pick up any newly earned unlocks.
	p.refreshUnlocks()

	switch msg.String() {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.pathway.Entries)-1 {
			p.selected++
		}
	case "enter":
		entry := &p.pathway.Entries[p.selected]
		if !entry.IsUnlocked {
			return p, nil
		}
		return p.startConceptAssessment(entry)
	case "a":
		return p.startAdaptiveAssessment()
	}

	return p, nil
}

// restorePerformance folds the latest snapshot for this document back
// onto the freshly extracted concepts, matching by concept id.
func (p *PathwayScreen) restorePerformance() {
	if p.snapRepo == nil {
		return
	}
	snap, err := p.snapRepo.Latest(context.Background())
	if err != nil || snap == nil || snap.Data.Document != p.doc.Name {
		return
	}
	for _, c := range p.concepts {
		rec, ok := snap.Data.Performance[c.ID]
		if !ok {
			continue
		}
		c.MasteryLevel = rec.MasteryLevel
		c.Attempts = rec.Attempts
		c.CorrectAnswers = rec.CorrectAnswers
		p.perf[c.ID] = adaptive.Performance{
			MasteryLevel: rec.MasteryLevel,
			Attempts:     rec.Attempts,
		}
	}
	p.refreshUnlocks()
}

// refreshUnlocks re-derives entry locks from current mastery: each entry
// after the first unlocks once its predecessor reaches 80. Unlocking is
// one-way; an entry never re-locks.
func (p *PathwayScreen) refreshUnlocks() {
	for i := 1; i < len(p.pathway.Entries); i++ {
		prev := p.pathway.Entries[i-1].Concept
		if prev.MasteryLevel >= 80 {
			p.pathway.Entries[i].IsUnlocked = true
		}
	}
}

func (p *PathwayScreen) startConceptAssessment(entry *concept.PathwayEntry) (screen.Screen, tea.Cmd) {
	p.loading = true
	p.spinner = components.NewSpinner("Writing questions for " + entry.Concept.Name + "...")
	gen := question.NewGenerator(p.provider, question.DefaultConfig())
	c := entry.Concept

	return p, tea.Batch(p.spinnerTick(), func() tea.Msg {
		qs, err := gen.Generate(context.Background(), c, question.GenerateOptions{
			QuestionCount:       5,
			IncludeExplanations: true,
		})
		return questionsReadyMsg{Questions: qs, Err: err}
	})
}

func (p *PathwayScreen) startAdaptiveAssessment() (screen.Screen, tea.Cmd) {
	p.loading = true
	p.spinner = components.NewSpinner("Assembling adaptive mix...")
	gen := question.NewGenerator(p.provider, question.DefaultConfig())
	concepts := p.concepts
	perf := p.perf

	return p, tea.Batch(p.spinnerTick(), func() tea.Msg {
		qs, err := adaptive.BuildMix(context.Background(), gen, concepts, perf)
		return questionsReadyMsg{Questions: qs, Err: err}
	})
}

func (p *PathwayScreen) openAssessment(qs []question.Question) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: assessment.New(assessment.Params{
				Questions: qs,
				Concepts:  p.concepts,
				Perf:      p.perf,
				Document:  p.doc.Name,
				Grader:    evaluate.New(p.provider, evaluate.DefaultConfig()),
				EventRepo: p.eventRepo,
				SnapRepo:  p.snapRepo,
			}),
		}
	}
}

func (p *PathwayScreen) View(width, height int) string {
	if p.errMsg != "" {
		return theme.Incorrect.Width(width).Align(lipgloss.Center).
			Render("\n\n" + p.errMsg + "\n\nPress any key to go back and retry.")
	}
	if p.loading {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render("\n\n" + p.spinner.View())
	}
	if p.pathway == nil {
		return ""
	}
	p.refreshUnlocks()

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(p.analysis.Topic))
	b.WriteString("\n")
	sub := fmt.Sprintf("%s · %s · total %s",
		p.analysis.Subject, p.analysis.Difficulty, p.pathway.TotalEstimatedTime)
	b.WriteString(theme.Subtitle.Width(width).Render(sub))
	b.WriteString("\n\n")

	b.WriteString(p.renderDistribution(width))
	b.WriteString("\n\n")

	for i := range p.pathway.Entries {
		b.WriteString(p.renderEntry(i))
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Enter starts the selected concept · A builds an adaptive mix"))

	return b.String()
}

func (p *PathwayScreen) renderDistribution(width int) string {
	concepts := make([]concept.Concept, len(p.concepts))
	for i, c := range p.concepts {
		concepts[i] = *c
	}
	dist := concept.Distribution(concepts)

	line := theme.Beginner.Render(fmt.Sprintf("● %d Beginner", dist[concept.Beginner])) +
		"   " +
		theme.Intermediate.Render(fmt.Sprintf("● %d Intermediate", dist[concept.Intermediate])) +
		"   " +
		theme.Advanced.Render(fmt.Sprintf("● %d Advanced", dist[concept.Advanced]))

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(line)
}

func (p *PathwayScreen) renderEntry(i int) string {
	entry := p.pathway.Entries[i]
	c := entry.Concept

	lock := "🔒"
	if entry.IsUnlocked {
		lock = "▶"
	}

	mastery := ""
	if c.Attempts > 0 {
		mastery = fmt.Sprintf("  %d%%", c.MasteryLevel)
	}

	line := fmt.Sprintf("  %2d. %s %s (%s, %s)%s",
		entry.Order, lock, c.Name, c.Difficulty, c.EstimatedTime, mastery)

	switch {
	case i == p.selected && entry.IsUnlocked:
		return theme.Selected.Render("▸"+line[1:]) + "\n"
	case i == p.selected:
		return theme.Warning.Render(line) + "\n"
	case !entry.IsUnlocked:
		return theme.Locked.Render(line) + "\n"
	default:
		return theme.Body.Render(line) + "\n"
	}
}
