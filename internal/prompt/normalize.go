package prompt

import (
	"fmt"
	"strings"

	"vocabstream-backend/internal/types"
)

const (
	ModeCasual = "casual"
	ModeLesson = "lesson"
)

const DefaultComponentName = "General"

var defaultSkills = []string{"Reading", "Listening", "Writing", "Speaking"}

var cefrLevels = map[string]bool{
	"A1": true, "A2": true,
	"B1": true, "B2": true,
	"C1": true, "C2": true,
}

// Request is the fully defaulted form of a chat request; every field the
// template engine reads is populated.
type Request struct {
	Mode    string
	Message string
	Level   string
	Topics  []string

	Tests          []string
	Skills         []string
	ComponentIndex int
	ComponentName  string
	Timing         []types.ComponentTiming
	VocabCategory  string
}

// UnknownModeError reports a mode outside {casual, lesson}. It is surfaced
// to the caller as a structured error, never a fault.
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown mode %q", e.Mode)
}

// ValidationError reports a rejected field value when strict validation is
// enabled.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type Options struct {
	// ValidateLevel rejects level values outside the CEFR A1..C2 set.
	// Off by default: the level is passed through as given.
	ValidateLevel bool
}

// Normalize turns a wire request into a fully defaulted Request. Missing
// mode, level and topics get their documented defaults; lesson-only fields
// are defaulted regardless of mode so the result is uniform.
func Normalize(req types.ChatRequest, opts Options) (Request, error) {
	mode := strings.ToLower(strings.TrimSpace(req.Mode))
	if mode == "" {
		mode = ModeCasual
	}
	if mode != ModeCasual && mode != ModeLesson {
		return Request{}, &UnknownModeError{Mode: req.Mode}
	}

	level := strings.TrimSpace(req.Level)
	if level == "" {
		level = "A1"
	}
	if opts.ValidateLevel && !cefrLevels[strings.ToUpper(level)] {
		return Request{}, &ValidationError{Field: "level", Reason: "must be a CEFR code A1-C2"}
	}

	topics := compactStrings(req.Topics)
	if len(topics) == 0 {
		topics = []string{"General"}
	}
	skills := compactStrings(req.Skills)
	if len(skills) == 0 {
		skills = append([]string(nil), defaultSkills...)
	}
	name := strings.TrimSpace(req.CurrentComponentName)
	if name == "" {
		name = DefaultComponentName
	}

	return Request{
		Mode:           mode,
		Message:        req.Message,
		Level:          level,
		Topics:         topics,
		Tests:          compactStrings(req.Tests),
		Skills:         skills,
		ComponentIndex: req.CurrentComponentIndex,
		ComponentName:  name,
		Timing:         req.ComponentTiming,
		VocabCategory:  strings.TrimSpace(req.VocabCategory),
	}, nil
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
