package usecase

// Error codes surfaced to handlers.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeSaveFailed          = "SAVE_FAILED"
	CodeGenerationExhausted = "GENERATION_EXHAUSTED"
)

// DomainError is a client-caused failure (bad input). Handlers map it to 400.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure (storage, token space).
// Handlers map it to 500 with a generic body; the message stays in the logs.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
