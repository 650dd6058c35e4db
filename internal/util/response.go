package util

type Envelope map[string]any

// ErrorBody is the JSON shape of every error response. Errors is only set
// for validation failures.
type ErrorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func Error(message string, violations ...string) ErrorBody {
	return ErrorBody{Message: message, Errors: violations}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}
