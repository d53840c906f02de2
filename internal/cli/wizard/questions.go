package wizard

import (
	"fmt"
	"strings"

	"github.com/zeon-dev/zeon/internal/compose"
)

// DefaultQuestions returns the standard question sequence for project
// configuration:
// 1. Database backend
// 2. Authentication method (options depend on the database)
// 3. Additional features
// 4. Confirmation with a configuration summary
func DefaultQuestions(projectName string) []Question {
	return []Question{
		{
			ID:          "database",
			Type:        QuestionTypeSelect,
			Title:       "Select your database",
			Description: fmt.Sprintf("Storage backend for %s.", projectName),
			Options: []Option{
				{Label: "SQLite", Value: "sqlite", Desc: "File-based, great for development"},
				{Label: "PostgreSQL", Value: "postgresql", Desc: "Robust relational database"},
				{Label: "MongoDB", Value: "mongodb", Desc: "NoSQL document database"},
				{Label: "Supabase", Value: "supabase", Desc: "Backend-as-a-Service with PostgreSQL"},
				{Label: "Firebase Firestore", Value: "firebase", Desc: "Google's NoSQL cloud database"},
			},
			Default: string(compose.DefaultDatabase),
		},
		{
			ID:          "auth",
			Type:        QuestionTypeSelect,
			Title:       "Select your authentication method",
			Description: "Identity mechanism for the generated API.",
			OptionsFor: func(r *Result) []Option {
				return authOptions(r.Database)
			},
			Default: string(compose.DefaultAuth),
		},
		{
			ID:          "features",
			Type:        QuestionTypeMultiSelect,
			Title:       "Select additional features",
			Description: "Press enter for none.",
			Options: []Option{
				{Label: "Alembic", Value: "alembic", Desc: "Database migrations"},
				{Label: "Docker", Value: "docker", Desc: "Containerization"},
				{Label: "Testing setup", Value: "testing", Desc: "pytest + test files"},
				{Label: "CORS middleware", Value: "cors", Desc: "Cross-origin requests"},
				{Label: "Rate limiting", Value: "rate_limiting", Desc: "Request throttling"},
			},
		},
		{
			ID:   "confirm",
			Type: QuestionTypeConfirm,
			TitleFor: func(r *Result) string {
				return "Proceed with this configuration?\n\n" + Summary(r)
			},
		},
	}
}

// authOptions returns the auth choices for a database in compatibility
// order: the database's native identity provider first, then local JWT,
// then none.
func authOptions(db compose.DatabaseKind) []Option {
	labels := map[compose.AuthKind]Option{
		compose.AuthJWT:      {Label: "JWT Authentication", Value: "jwt", Desc: "Local credential tokens"},
		compose.AuthSupabase: {Label: "Supabase Auth", Value: "supabase", Desc: "Recommended for Supabase"},
		compose.AuthFirebase: {Label: "Firebase Auth", Value: "firebase", Desc: "Recommended for Firebase"},
		compose.AuthNone:     {Label: "No authentication", Value: "none", Desc: "Skip identity entirely"},
	}

	kinds := compose.AuthOptionsFor(db)
	opts := make([]Option, len(kinds))
	for i, k := range kinds {
		opts[i] = labels[k]
	}
	return opts
}

// Summary renders the configuration summary shown before confirmation.
func Summary(r *Result) string {
	features := "None"
	if len(r.Features) > 0 {
		names := make([]string, len(r.Features))
		for i, f := range r.Features {
			names[i] = string(f)
		}
		features = strings.Join(names, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Database: %s\n", r.Database)
	fmt.Fprintf(&b, "Authentication: %s\n", r.Auth)
	fmt.Fprintf(&b, "Additional features: %s", features)
	return b.String()
}
