package errs

import "errors"

// Kind tags an Error with its taxonomy entry. The tag doubles as the
// "type" field of the wire error envelope.
type Kind string

const (
	KindValidation         Kind = "ValidationError"
	KindNotFound           Kind = "NotFoundError"
	KindMethodNotSupported Kind = "MethodNotSupportedError"
	KindNotImplemented     Kind = "NotImplementedError"
	KindInternal           Kind = "InternalError"
)

const (
	MsgAuthorIDRequired          = "The author ID of the message is required."
	MsgContentRequired           = "The content of the message is required."
	MsgAuthorIDOrContentRequired = "The author ID or the content of the message is required."
	MsgInvalidRequestBody        = "The request body is not a valid message."
	MsgNotSupported              = "Not supported"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound carries the unknown id as its message, so the envelope names
// the record the caller asked for.
func NotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Message: id}
}

func MethodNotSupported() *Error {
	return &Error{Kind: KindMethodNotSupported, Message: MsgNotSupported}
}

func NotImplemented() *Error {
	return &Error{Kind: KindNotImplemented, Message: ""}
}

// KindOf reports the taxonomy tag of err. Untagged errors, datastore
// failures included, classify as KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
