package ai

import (
	"bytes"
	"context"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"taskflow-backend/internal/tasks"
	"taskflow-backend/internal/users"
)

const (
	NotConfiguredMessage = "Could not generate insights: OPENAI_API_KEY is not configured.\n" +
		"Please set the `OPENAI_API_KEY` environment variable to use this feature."
	FailureMessage = "There was an error generating insights. Please check the server logs for more details."
)

type Outcome string

const (
	OutcomeGenerated     Outcome = "generated"
	OutcomeNotConfigured Outcome = "not_configured"
	OutcomeFailed        Outcome = "failed"
)

// Completer is the text-generation backend.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type Report struct {
	Outcome Outcome `json:"outcome"`
	Text    string  `json:"text"`
	HTML    string  `json:"html"`
}

type Insights struct {
	client   Completer
	markdown goldmark.Markdown
}

func NewInsights(client Completer) *Insights {
	return &Insights{
		client:   client,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Generate asks the model for a productivity report on the board. It never
// fails: a missing credential or any upstream error turns into a fixed
// message. One attempt, no retries.
func (g *Insights) Generate(ctx context.Context, list []tasks.Task, roster *users.Roster) Report {
	if g.client == nil || !g.client.Configured() {
		return g.report(OutcomeNotConfigured, NotConfiguredMessage)
	}

	prompt, err := BuildInsightsPrompt(Summarize(list, roster))
	if err != nil {
		log.Printf("[WARN] insights prompt failed: %v", err)
		return g.report(OutcomeFailed, FailureMessage)
	}

	text, err := g.client.Complete(ctx, insightsSystemPrompt, prompt)
	if err != nil {
		log.Printf("[WARN] insights generation failed: %v", err)
		return g.report(OutcomeFailed, FailureMessage)
	}
	return g.report(OutcomeGenerated, text)
}

func (g *Insights) report(outcome Outcome, text string) Report {
	return Report{Outcome: outcome, Text: text, HTML: g.render(text)}
}

func (g *Insights) render(text string) string {
	var buf bytes.Buffer
	if err := g.markdown.Convert([]byte(text), &buf); err != nil {
		log.Printf("[WARN] insights markdown render failed: %v", err)
		return ""
	}
	return buf.String()
}
