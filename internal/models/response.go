package models

// ErrorDetail is the error half of the wire envelope. Message is a
// pointer so an empty message serializes as null.
type ErrorDetail struct {
	Type    string  `json:"type"`
	Message *string `json:"message"`
}

type ErrorResponse struct {
	Status int         `json:"status"`
	Error  ErrorDetail `json:"error"`
}
