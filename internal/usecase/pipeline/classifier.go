package pipeline

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/pulsehq/meeting-relevance/errors"
	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
)

// ChatClient is the text-in/text-out completion call the classifier
// delegates to
type ChatClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Classifier judges whether a meeting is related to an organization's
// goals. Fail-closed: transport failures and unparseable responses resolve
// to not-related, never to an error.
type Classifier struct {
	llm    ChatClient
	logger *zap.Logger
}

// NewClassifier creates a relevance classifier
func NewClassifier(llm ChatClient, logger *zap.Logger) *Classifier {
	return &Classifier{llm: llm, logger: logger}
}

// Classify returns the relevance judgment for one meeting against one
// organization's goal set
func (c *Classifier) Classify(ctx context.Context, goals []entities.GoalSummary, title, summary string) entities.Judgment {
	prompt := buildPrompt(goals, title, summary)

	response, err := c.llm.Complete(ctx, prompt)
	if err != nil {
		c.logger.Warn("classification failed, treating meeting as not related",
			zap.String("title", title),
			zap.Error(apperrors.ErrClassification(err)),
		)
		return entities.Judgment{IsRelated: false}
	}

	return entities.Judgment{
		IsRelated: containsYesToken(response),
		Rationale: strings.TrimSpace(response),
	}
}

func buildPrompt(goals []entities.GoalSummary, title, summary string) string {
	var b strings.Builder
	b.WriteString("You compare a meeting against an organization's goals and strategies.\n")
	b.WriteString("Answer strictly \"Yes\" or \"No\", optionally followed by a one-sentence explanation.\n")
	b.WriteString("If you are uncertain, answer \"No\".\n")
	b.WriteString("If keywords from the meeting title overlap with goal or strategy names, lean toward \"Yes\".\n\n")

	b.WriteString("Goals and strategies:\n")
	for _, g := range goals {
		b.WriteString("- ")
		b.WriteString(g.Name)
		if g.Description != "" {
			b.WriteString(": ")
			b.WriteString(g.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nMeeting title: ")
	b.WriteString(title)
	b.WriteString("\nMeeting summary: ")
	b.WriteString(summary)
	b.WriteString("\n\nIs this meeting related to the goals above?")
	return b.String()
}

// containsYesToken reports whether the response contains the word "yes",
// case-insensitive, as its own token. Anything else resolves to false so a
// binary judgment is always derivable.
func containsYesToken(response string) bool {
	fields := strings.FieldsFunc(strings.ToLower(response), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	for _, f := range fields {
		if f == "yes" {
			return true
		}
	}
	return false
}
