package views

import (
	"fmt"
	"strings"

	"wikiquiz/internal/attempt"
	"wikiquiz/internal/models"
)

// Option icons shown after an answer is revealed
const (
	IconNone      = ""
	IconCorrect   = "correct"
	IconIncorrect = "incorrect"
)

// CardOption is one rendered option of a question card
type CardOption struct {
	Index      int
	Letter     string
	Text       string
	Class      string
	Icon       string
	Selectable bool
}

// Card is the render model of a single question
type Card struct {
	Index           int
	Number          string
	Question        string
	ModeClass       string
	ShowDifficulty  bool
	Difficulty      string
	DifficultyClass string
	Options         []CardOption
	ShowAnswer      bool
	Answer          string
	Explanation     string

	// Set by the page that embeds the card; options post here.
	Action    string
	AttemptID string
}

// BuildCard renders question q at position index. It depends only on its
// arguments: mode, the currently selected option ("" for none), whether the
// answer is revealed, and whether selection is disabled.
func BuildCard(q models.Question, index int, mode attempt.Mode, selected string, showAnswer, disabled bool) Card {
	take := mode == attempt.ModeTake

	card := Card{
		Index:       index,
		Number:      fmt.Sprintf("Q%d", index+1),
		Question:    q.Question,
		ModeClass:   "view-mode",
		ShowAnswer:  showAnswer,
		Answer:      q.Answer,
		Explanation: q.Explanation,
	}
	if take {
		card.ModeClass = "take-mode"
	}

	if (mode == attempt.ModeView || showAnswer) && q.Difficulty != "" {
		card.ShowDifficulty = true
		card.Difficulty = q.Difficulty
		card.DifficultyClass = "difficulty-" + strings.ToLower(q.Difficulty)
	}

	card.Options = make([]CardOption, len(q.Options))
	for i, opt := range q.Options {
		isSelected := selected != "" && opt == selected
		card.Options[i] = CardOption{
			Index:      i,
			Letter:     optionLetter(i),
			Text:       opt,
			Class:      optionClass(take, isSelected, showAnswer, opt == q.Answer),
			Icon:       optionIcon(take, isSelected, showAnswer, opt == q.Answer),
			Selectable: take && !disabled,
		}
	}
	return card
}

func optionClass(take, selected, showAnswer, isAnswer bool) string {
	classes := []string{"option"}
	if !take {
		return classes[0]
	}
	if selected {
		classes = append(classes, "selected")
		if showAnswer {
			if isAnswer {
				classes = append(classes, "correct")
			} else {
				classes = append(classes, "incorrect")
			}
		}
	}
	if showAnswer && isAnswer {
		classes = append(classes, "correct-answer")
	}
	return strings.Join(classes, " ")
}

func optionIcon(take, selected, showAnswer, isAnswer bool) string {
	if !take || !showAnswer {
		return IconNone
	}
	if isAnswer {
		return IconCorrect
	}
	if selected {
		return IconIncorrect
	}
	return IconNone
}

// optionLetter maps 0 to "A", 1 to "B" and so on
func optionLetter(i int) string {
	return string(rune('A' + i))
}
