package models

// Status enumerates the states an agent turn can report.
type Status string

const (
	// StatusWorking marks a non-final progress update on a streaming turn.
	StatusWorking Status = "working"
	// StatusInputRequired means the agent needs another turn from the
	// caller on the same session before it can finish.
	StatusInputRequired Status = "input_required"
	// StatusCompleted means the turn finished with a usable answer.
	StatusCompleted Status = "completed"
	// StatusError means the turn failed; Message carries a caller-facing
	// description.
	StatusError Status = "error"
)

// Terminal reports whether the status ends a turn. Every invocation,
// blocking or streaming, produces exactly one envelope with a terminal
// status.
func (s Status) Terminal() bool {
	switch s {
	case StatusInputRequired, StatusCompleted, StatusError:
		return true
	}
	return false
}

// Envelope is the response shape for every agent invocation.
type Envelope struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Final   bool   `json:"final"`
}

// Working builds a non-final progress envelope.
func Working(message string) Envelope {
	return Envelope{Status: StatusWorking, Message: message}
}

// Completed builds a terminal success envelope.
func Completed(message string) Envelope {
	return Envelope{Status: StatusCompleted, Message: message, Final: true}
}

// InputRequired builds a terminal envelope asking the caller for another turn.
func InputRequired(message string) Envelope {
	return Envelope{Status: StatusInputRequired, Message: message, Final: true}
}

// Errored builds a terminal failure envelope.
func Errored(message string) Envelope {
	return Envelope{Status: StatusError, Message: message, Final: true}
}
