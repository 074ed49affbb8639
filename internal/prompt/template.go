package prompt

import (
	"fmt"
	"strings"

	"vocabstream-backend/internal/types"
)

// Engine builds system prompts and token budgets for both conversation
// modes. Building is a pure function of the request and the configured
// style: identical inputs produce byte-identical prompts.
type Engine struct {
	style Style
}

func NewEngine(style Style) *Engine {
	return &Engine{style: style}
}

func (e *Engine) Style() Style { return e.style }

// Result is the resolved prompt plus the generation parameters derived from
// the request.
type Result struct {
	SystemPrompt string
	MaxTokens    int
	// RemainingSeconds is meaningful only when HasTiming is true; it is the
	// duration of the resolved lesson component.
	RemainingSeconds int
	HasTiming        bool
}

// Build resolves the prompt and budget for a normalized request. The mode
// must already be validated by Normalize.
func (e *Engine) Build(req Request) Result {
	if req.Mode == ModeLesson {
		timing, ok := LookupComponent(req.Timing, req.ComponentIndex)
		remaining := e.style.DefaultRemainingSeconds
		if ok {
			remaining = timing.DurationSeconds
		}
		var tp *types.ComponentTiming
		if ok {
			tp = &timing
		}
		return Result{
			SystemPrompt:     e.buildLesson(req, tp),
			MaxTokens:        e.style.MaxTokensForRemaining(remaining),
			RemainingSeconds: remaining,
			HasTiming:        ok,
		}
	}
	return Result{
		SystemPrompt: e.buildCasual(req),
		MaxTokens:    e.style.CasualMaxTokens,
	}
}

func (e *Engine) buildCasual(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a friendly English conversation partner for a learner at CEFR level %s.\n", req.Level)
	fmt.Fprintf(&b, "Preferred conversation topics: %s.\n\n", strings.Join(req.Topics, ", "))
	b.WriteString("Keep the conversation natural and encouraging. Match your vocabulary and sentence complexity to the learner's level. ")
	b.WriteString("When the learner makes a mistake, recast the sentence correctly in your reply; call a mistake out explicitly only when it blocks understanding. ")
	b.WriteString("Ask follow-up questions to keep the learner talking, and stay warm, patient and informal.")
	return b.String()
}

func (e *Engine) buildLesson(req Request, timing *types.ComponentTiming) string {
	var b strings.Builder
	b.WriteString("You are an English tutor delivering a structured lesson.\n\n")

	b.WriteString("Student profile:\n")
	fmt.Fprintf(&b, "- CEFR level: %s\n", req.Level)
	fmt.Fprintf(&b, "- Topics of interest: %s\n", strings.Join(req.Topics, ", "))
	fmt.Fprintf(&b, "- Target skills: %s\n", strings.Join(req.Skills, ", "))
	if len(req.Tests) > 0 {
		fmt.Fprintf(&b, "- Preparing for: %s\n", strings.Join(req.Tests, ", "))
	}
	if req.VocabCategory != "" {
		fmt.Fprintf(&b, "- Vocabulary category: %s\n", req.VocabCategory)
	}

	fmt.Fprintf(&b, "\nCurrent lesson component: %s.", req.ComponentName)
	if timing != nil {
		fmt.Fprintf(&b, " There are approximately %d minutes remaining for this component.", roundToMinutes(timing.DurationSeconds))
	}
	b.WriteString("\n\n")

	b.WriteString(guidanceFor(req.ComponentName)(req))
	b.WriteString("\n\n")

	b.WriteString("Delivery principles:\n")
	b.WriteString("- Keep instructions short and give one task at a time.\n")
	b.WriteString("- Adjust language complexity to the student's level.\n")
	b.WriteString("- Correct errors gently, with a one-line explanation.\n")
	b.WriteString("- Stay within the current component; do not jump ahead in the lesson.\n\n")

	b.WriteString("Response format:\n")
	b.WriteString("- Reply in plain conversational text without markdown headings.\n")
	b.WriteString("- Keep replies short enough to fit the remaining time.\n")
	b.WriteString("- End each reply with a question or task for the student unless wrapping up.")
	return b.String()
}

// guidanceGenerator produces the component-specific guidance block of the
// lesson prompt.
type guidanceGenerator func(req Request) string

// componentGuidance is the closed dispatch table from component name to its
// guidance generator; any name not present falls through to genericGuidance.
var componentGuidance = map[string]guidanceGenerator{
	"Vocab Practice":         vocabGuidance,
	"Reading Comprehension":  readingGuidance,
	"Speaking Practice":      speakingGuidance,
	"Pronunciation Practice": pronunciationGuidance,
	"Grammar":                grammarGuidance,
}

func guidanceFor(component string) guidanceGenerator {
	if g, ok := componentGuidance[component]; ok {
		return g
	}
	return genericGuidance
}

func vocabGuidance(req Request) string {
	category := ""
	if req.VocabCategory != "" {
		category = fmt.Sprintf(" from the %s category", req.VocabCategory)
	}
	return fmt.Sprintf("Component guidance: introduce and drill vocabulary%s suited to level %s. Present each word with a simple definition, an example sentence and pronunciation guidance, then have the student use it in a sentence of their own.", category, req.Level)
}

func readingGuidance(req Request) string {
	return fmt.Sprintf("Component guidance: provide a short reading passage appropriate for level %s, then ask comprehension questions about its main idea and details. Explain unfamiliar words from the passage as they come up.", req.Level)
}

func speakingGuidance(req Request) string {
	return fmt.Sprintf("Component guidance: run a spoken-style exchange on the student's topics at level %s. Prompt the student to answer in full sentences, push them to expand on short answers, and rephrase awkward wording back to them naturally.", req.Level)
}

func pronunciationGuidance(req Request) string {
	return fmt.Sprintf("Component guidance: target sounds that are difficult at level %s. Give short words and phrases to repeat, describe mouth position in plain terms, and contrast commonly confused sound pairs.", req.Level)
}

func grammarGuidance(req Request) string {
	return fmt.Sprintf("Component guidance: Focus on grammar practice appropriate for level %s. Pick one structure, show two or three examples, then drill it with short transformation exercises.", req.Level)
}

func genericGuidance(req Request) string {
	return fmt.Sprintf("Component guidance: guide the student through the %s component with activities suited to level %s, mixing brief explanation with hands-on practice.", req.ComponentName, req.Level)
}

// roundToMinutes converts seconds to the nearest whole minute.
func roundToMinutes(seconds int) int {
	if seconds < 0 {
		return 0
	}
	return (seconds + 30) / 60
}
