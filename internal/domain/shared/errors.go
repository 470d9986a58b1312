package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Graph validation errors
//
// These are returned to the caller before any state is mutated; a command
// that fails validation leaves the graph exactly as it was.

type NotFoundError struct {
	*DomainError
	StarID int
}

func NewNotFoundError(starID int) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("star %d not found", starID)},
		StarID:      starID,
	}
}

type ConnectionNotFoundError struct {
	*DomainError
	ConnectionID string
}

func NewConnectionNotFoundError(connectionID string) *ConnectionNotFoundError {
	return &ConnectionNotFoundError{
		DomainError:  &DomainError{Message: fmt.Sprintf("connection %s not found", connectionID)},
		ConnectionID: connectionID,
	}
}

type AlreadyExistsError struct {
	*DomainError
	From int
	To   int
}

func NewAlreadyExistsError(from, to int) *AlreadyExistsError {
	return &AlreadyExistsError{
		DomainError: &DomainError{Message: fmt.Sprintf("connection %d -> %d already exists", from, to)},
		From:        from,
		To:          to,
	}
}

type ConnectionLimitError struct {
	*DomainError
	StarID  int
	Level   int
	Limit   int
	Current int
}

func NewConnectionLimitError(starID, level, limit, current int) *ConnectionLimitError {
	return &ConnectionLimitError{
		DomainError: &DomainError{
			Message: fmt.Sprintf("star %d at level %d allows %d outbound connections, has %d", starID, level, limit, current),
		},
		StarID:  starID,
		Level:   level,
		Limit:   limit,
		Current: current,
	}
}

type SelfLoopError struct {
	*DomainError
	StarID int
}

func NewSelfLoopError(starID int) *SelfLoopError {
	return &SelfLoopError{
		DomainError: &DomainError{Message: fmt.Sprintf("star %d cannot connect to itself", starID)},
		StarID:      starID,
	}
}

// Validation error for configuration and command input

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
