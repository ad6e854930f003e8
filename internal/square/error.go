package square

import "fmt"

// APIError is one entry of the processor's error array. Detail is the
// human-readable text surfaced to donors.
type APIError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

// RequestError wraps a non-2xx processor response.
type RequestError struct {
	StatusCode int
	Errors     []APIError
}

func (e *RequestError) Error() string {
	if d := e.Detail(); d != "" {
		return d
	}
	return fmt.Sprintf("processor returned status %d", e.StatusCode)
}

// Detail returns the first processor-supplied detail string, if any.
func (e *RequestError) Detail() string {
	for _, apiErr := range e.Errors {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
	}
	return ""
}
