package types

// ChatRequest is the wire shape of POST /api/chat. Casual requests only use
// the first four fields; lesson requests may carry the rest.
type ChatRequest struct {
	Mode    string   `json:"mode"`
	Message string   `json:"message"`
	Level   string   `json:"level,omitempty"`
	Topics  []string `json:"topics,omitempty"`

	Tests                 []string          `json:"tests,omitempty"`
	Skills                []string          `json:"skills,omitempty"`
	CurrentComponentIndex int               `json:"currentComponentIndex,omitempty"`
	CurrentComponentName  string            `json:"currentComponentName,omitempty"`
	ComponentTiming       []ComponentTiming `json:"componentTiming,omitempty"`
	VocabCategory         string            `json:"vocabCategory,omitempty"`
}

// ComponentTiming is one time-boxed segment of a lesson plan. DurationSeconds
// is expected to equal EndSeconds-StartSeconds but is taken at face value.
type ComponentTiming struct {
	Component       string `json:"component"`
	StartSeconds    int    `json:"startSeconds"`
	EndSeconds      int    `json:"endSeconds"`
	DurationSeconds int    `json:"durationSeconds"`
}

type ChatResponse struct {
	Reply            string `json:"reply"`
	Mode             string `json:"mode"`
	CurrentComponent string `json:"currentComponent,omitempty"`
	// Remaining seconds for the current component; absent when no timing
	// was resolved.
	TimeRemaining *int `json:"timeRemaining,omitempty"`
}

type VoiceRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
}

type LegacyChatRequest struct {
	Message   string `json:"message"`
	Level     string `json:"level"`
	Specialty string `json:"specialty"`
}

type LegacyChatResponse struct {
	Reply string `json:"reply"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Mode    string `json:"mode,omitempty"`
	Details string `json:"details,omitempty"`
}
