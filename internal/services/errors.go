package services

// Stable validation error codes surfaced to clients.
const (
	CodeDisplayNameRequired = "DISPLAY_NAME_REQUIRED"
	CodeTooManyLinks        = "TOO_MANY_LINKS"
	CodeLinkFieldsRequired  = "LINK_FIELDS_REQUIRED"
	CodeInvalidBackground   = "INVALID_BACKGROUND"
	CodeInvalidTypography   = "INVALID_TYPOGRAPHY"
)

// ValidationError describes a payload that violates the save contract.
// It never reaches storage: validation runs before the transaction begins.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationFailed(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
