package validator

// Error wraps a non-empty FieldErrors so services can return aggregated
// validation failures through the normal error path.
type Error struct {
	fields *FieldErrors
}

// NewError wraps field errors in an Error.
func NewError(fields *FieldErrors) *Error {
	return &Error{fields: fields}
}

func (e *Error) Error() string {
	return e.fields.Message()
}

// Fields exposes the underlying field errors for the response body.
func (e *Error) Fields() *FieldErrors {
	return e.fields
}
