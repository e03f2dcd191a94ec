package views

import (
	"wikiquiz/internal/attempt"
	"wikiquiz/internal/models"
	"wikiquiz/internal/quizapi"
)

// Tabs of the app shell
const (
	TabGenerate = "generate"
	TabHistory  = "history"
)

// Form actions the cards post to
const (
	GeneratorAnswerAction = "/quiz/answer"
	ModalAnswerAction     = "/history/modal/answer"
)

// Topic is a related-topic link
type Topic struct {
	Name string
	URL  string
}

// QuizView is a generated quiz as shown in the generator panel
type QuizView struct {
	Title     string
	Total     int
	Answered  int
	Submitted bool
	Score     int
	Percent   int
	AttemptID string
	Cards     []Card
	Topics    []Topic
}

// GeneratorPage is the render model of the "generate" tab
type GeneratorPage struct {
	Tab          string
	URL          string
	PreviewTitle string
	ShowPreview  bool
	Error        string
	Quiz         *QuizView
}

// NewGeneratorPage builds the page from the panel's state
func NewGeneratorPage(g *attempt.Generator) GeneratorPage {
	page := GeneratorPage{
		Tab:          TabGenerate,
		URL:          g.URL,
		PreviewTitle: g.PreviewTitle,
		ShowPreview:  g.PreviewTitle != "" && g.Quiz == nil,
		Error:        g.Error,
	}
	if g.Quiz == nil {
		return page
	}

	a := g.Attempt
	total := g.Quiz.Len()
	qv := &QuizView{
		Title:     g.Quiz.Title,
		Total:     total,
		Answered:  a.Answered(),
		Submitted: a.Submitted,
		Score:     a.Score,
		Percent:   a.Percent(total),
		AttemptID: a.ID.String(),
	}
	for i, q := range g.Quiz.Questions {
		selected, _ := a.Selected(i)
		card := BuildCard(q, i, attempt.ModeTake, selected, a.Submitted, a.Submitted)
		card.Action = GeneratorAnswerAction
		card.AttemptID = qv.AttemptID
		qv.Cards = append(qv.Cards, card)
	}
	for _, topic := range g.Quiz.RelatedTopics {
		qv.Topics = append(qv.Topics, Topic{Name: topic, URL: quizapi.TopicURL(topic)})
	}
	page.Quiz = qv
	return page
}

// HistoryRow is one line of the history table
type HistoryRow struct {
	ID        int
	Title     string
	Questions int
}

// ModalView is the render model of an open history modal
type ModalView struct {
	EntryID     int
	Title       string
	Mode        string
	State       string
	Total       int
	Answered    int
	Score       int
	Percent     int
	AttemptID   string
	Error       string
	URL         string
	Summary     string
	Sections    []string
	KeyEntities *models.KeyEntities
	Cards       []Card
}

// HistoryPage is the render model of the "history" tab
type HistoryPage struct {
	Tab     string
	Error   string
	Notice  string
	Entries []HistoryRow
	Modal   *ModalView
}

// NewHistoryPage builds the page. loadErr is the inline message shown instead of the table.
func NewHistoryPage(entries []models.HistoryEntry, loadErr string, modal *attempt.Modal) HistoryPage {
	page := HistoryPage{
		Tab:   TabHistory,
		Error: loadErr,
	}
	for _, e := range entries {
		page.Entries = append(page.Entries, HistoryRow{ID: e.ID, Title: e.Title, Questions: e.Len()})
	}
	if modal != nil {
		page.Modal = NewModalView(modal)
	}
	return page
}

// NewModalView builds the modal render model
func NewModalView(m *attempt.Modal) *ModalView {
	a := m.Attempt
	total := m.Entry.Len()
	mv := &ModalView{
		EntryID:     m.Entry.ID,
		Title:       m.Entry.Title,
		Mode:        string(m.Mode),
		State:       m.State(),
		Total:       total,
		Answered:    a.Answered(),
		Score:       a.Score,
		Percent:     a.Percent(total),
		AttemptID:   a.ID.String(),
		Error:       m.Error,
		URL:         m.Entry.URL,
		Summary:     m.Entry.Summary,
		Sections:    m.Entry.Sections,
		KeyEntities: m.Entry.KeyEntities,
	}
	disabled := m.Mode == attempt.ModeTake && a.Submitted
	for i, q := range m.Entry.Questions {
		selected, _ := a.Selected(i)
		card := BuildCard(q, i, m.Mode, selected, m.ShowAnswers(), disabled)
		card.Action = ModalAnswerAction
		card.AttemptID = mv.AttemptID
		mv.Cards = append(mv.Cards, card)
	}
	return mv
}
