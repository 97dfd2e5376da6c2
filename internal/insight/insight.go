// Package insight generates advisory messages from the current
// financial state. All insights are derived on demand and never
// persisted.
package insight

// Type is the severity of an insight.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Priority describes how urgently the user should act on an insight.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Insight is a single advisory message for the user.
type Insight struct {
	Type     Type     `json:"type" example:"warning"`
	Title    string   `json:"title" example:"Budget Alert"`
	Message  string   `json:"message" example:"You've used 76.0% of your monthly budget. Consider reducing expenses."`
	Priority Priority `json:"priority" example:"medium"`
}
