package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/zeon-dev/zeon/internal/compose"
)

// Run executes the wizard and returns the result. Each question runs as
// its own independent huh.Form so later questions can build their
// options from earlier answers, and to avoid the huh v0.8.x YOffset
// scroll bug that occurs when multiple groups share a single viewport.
func Run(questions []Question) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &Result{}
	theme := newZeonWizardTheme()

	for i := range questions {
		q := &questions[i]

		form := huh.NewForm(buildQuestionGroup(q, result)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	if !result.Confirmed {
		return nil, ErrCancelled
	}

	return result, nil
}

// RunDefault runs the wizard with the standard question sequence.
func RunDefault(projectName string) (*Result, error) {
	return Run(DefaultQuestions(projectName))
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, result *Result) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, result)
	case QuestionTypeMultiSelect:
		field = buildMultiSelectField(q, result)
	case QuestionTypeConfirm:
		field = buildConfirmField(q, result)
	}

	return huh.NewGroup(field)
}

// buildSelectField creates a huh.Select for a select-type question.
// Options are built eagerly at form-construction time: each question
// runs as its own sequential form, so earlier answers are already
// stored when later questions are built.
func buildSelectField(q *Question, result *Result) *huh.Select[string] {
	selected := q.Default

	options := q.Options
	if q.OptionsFor != nil {
		options = q.OptionsFor(result)
	}
	// A dependent option list may not contain the static default.
	if len(options) > 0 && !containsValue(options, selected) {
		selected = options[0].Value
	}

	opts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	// Wire up value storage after each change.
	sel.Validate(func(val string) error {
		saveAnswer(q.ID, val, result)
		return nil
	})

	return sel
}

// buildMultiSelectField creates a huh.MultiSelect for the feature list.
func buildMultiSelectField(q *Question, result *Result) *huh.MultiSelect[string] {
	var selected []string

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	ms.Validate(func(vals []string) error {
		result.Features = nil
		for _, v := range vals {
			result.Features = append(result.Features, compose.FeatureKind(v))
		}
		return nil
	})

	return ms
}

// buildConfirmField creates a huh.Confirm for the summary question.
func buildConfirmField(q *Question, result *Result) *huh.Confirm {
	confirmed := true

	title := q.Title
	if q.TitleFor != nil {
		title = q.TitleFor(result)
	}

	c := huh.NewConfirm().
		Title(title).
		Affirmative("Proceed").
		Negative("Cancel").
		Value(&confirmed)

	c.Validate(func(val bool) error {
		result.Confirmed = val
		return nil
	})

	return c
}

// saveAnswer stores a select answer in the result.
func saveAnswer(id, value string, result *Result) {
	switch id {
	case "database":
		result.Database = compose.DatabaseKind(value)
	case "auth":
		result.Auth = compose.AuthKind(value)
	}
}

// containsValue reports whether any option carries the value.
func containsValue(options []Option, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// newZeonWizardTheme creates a huh.Theme with zeon branding.
func newZeonWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#0D9488", Dark: "#00B8A9"}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#7B68EE"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#22C55E"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E5E7EB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
