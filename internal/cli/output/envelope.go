package output

import (
	"time"

	"pocket/internal/domain"
)

const (
	APIVersionV1 = "v1"
	FormatHuman  = "human"
	FormatJSON   = "json"
)

// Envelope is the --output json shape shared by every command.
type Envelope struct {
	Ok       bool             `json:"ok"`
	Data     any              `json:"data"`
	Warnings []domain.Warning `json:"warnings"`
	Error    *ErrorPayload    `json:"error"`
	Meta     Meta             `json:"meta"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

type Meta struct {
	APIVersion   string `json:"api_version"`
	Command      string `json:"command"`
	TimestampUTC string `json:"timestamp_utc"`
}

func NewSuccessEnvelope(command string, data any, warnings []domain.Warning) Envelope {
	return Envelope{
		Ok:       true,
		Data:     data,
		Warnings: nonNilWarnings(warnings),
		Meta:     newMeta(command),
	}
}

func NewErrorEnvelope(command, code, message string, details any, warnings []domain.Warning) Envelope {
	return Envelope{
		Ok:       false,
		Warnings: nonNilWarnings(warnings),
		Error: &ErrorPayload{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: newMeta(command),
	}
}

func nonNilWarnings(warnings []domain.Warning) []domain.Warning {
	if warnings == nil {
		return []domain.Warning{}
	}
	return warnings
}

func newMeta(command string) Meta {
	return Meta{
		APIVersion:   APIVersionV1,
		Command:      command,
		TimestampUTC: time.Now().UTC().Format(time.RFC3339Nano),
	}
}
