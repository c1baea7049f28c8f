package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type AlreadyExistsError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// RejectedTransitionError signals a status change refused by the
// authority, e.g. accepting a transaction that is already terminal.
type RejectedTransitionError struct {
	ErrorMessage
}

// DatabaseError wraps a storage failure with the operation that caused it.
type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// FetchError is a transport-level failure: the request never produced a
// usable response (network error, timeout, unexpected status).
type FetchError struct {
	ErrorMessage
	Err error
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExternalServiceError reports a failure from a dependency outside the
// process. Transient failures map to retryable HTTP statuses.
type ExternalServiceError struct {
	ErrorMessage
	Service   string
	Transient bool
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewRejectedTransitionError(message string) *RejectedTransitionError {
	return &RejectedTransitionError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}

func NewFetchError(message string, err error) *FetchError {
	return &FetchError{
		ErrorMessage: ErrorMessage{Message: message},
		Err:          err,
	}
}

func NewExternalServiceError(service, message string, transient bool) *ExternalServiceError {
	return &ExternalServiceError{
		ErrorMessage: ErrorMessage{Message: message},
		Service:      service,
		Transient:    transient,
	}
}
