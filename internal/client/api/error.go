package api

import "encoding/json"

// Error is the normalized failure shape for every API call.
//
// Message is always set, derived in priority order from the structured
// "message" field, the structured "error" field, the raw body, and finally a
// generic fallback. Status is the HTTP status code, or 0 when the transport
// produced no response (network failure). Body is the raw response body, if any.
type Error struct {
	Message string
	Status  int
	Body    []byte
}

func (e *Error) Error() string {
	return e.Message
}

// newError builds an *Error from an HTTP status and response body.
func newError(status int, body []byte) *Error {
	return &Error{Message: messageFromBody(body), Status: status, Body: body}
}

// newTransportError builds an *Error for a failure without a response.
// The underlying transport message is preserved verbatim.
func newTransportError(err error) *Error {
	msg := "Unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{Message: msg}
}

func messageFromBody(body []byte) string {
	if len(body) == 0 {
		return "Unknown error"
	}

	var structured struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(body, &structured); err == nil {
		if structured.Message != "" {
			return structured.Message
		}
		if structured.Err != "" {
			return structured.Err
		}
	}

	return string(body)
}
