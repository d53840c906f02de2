// Package wizard provides the interactive huh-based configuration
// wizard for zeon project initialization.
package wizard

import (
	"errors"

	"github.com/zeon-dev/zeon/internal/compose"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeMultiSelect is a multi-choice selection question.
	QuestionTypeMultiSelect
	// QuestionTypeConfirm is a yes/no confirmation question.
	QuestionTypeConfirm
)

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Question defines a single wizard question.
type Question struct {
	ID          string                 // Unique identifier
	Type        QuestionType           // Select, MultiSelect, or Confirm
	Title       string                 // Question title
	Description string                 // Additional description
	Options     []Option               // Options for select questions
	OptionsFor  func(*Result) []Option // Options computed from earlier answers
	Default     string                 // Default value
	TitleFor    func(*Result) string   // Title computed from earlier answers
}

// Result holds the user's selections from the configuration wizard.
type Result struct {
	Database  compose.DatabaseKind
	Auth      compose.AuthKind
	Features  []compose.FeatureKind
	Confirmed bool
}

// Config converts the wizard result into a project configuration.
func (r *Result) Config(name string) compose.ProjectConfig {
	return compose.ProjectConfig{
		Name:     name,
		Database: r.Database,
		Auth:     r.Auth,
		Features: r.Features,
	}
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
