package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind represents the category of a domain error
type Kind string

const (
	// KindParse indicates a source document that cannot be parsed
	KindParse Kind = "PARSE_ERROR"

	// KindValidation indicates input validation failure
	KindValidation Kind = "VALIDATION"

	// KindDuplicateID indicates a node id that already exists in the graph
	KindDuplicateID Kind = "DUPLICATE_ID"

	// KindDuplicateEdge indicates an edge between an already connected pair
	KindDuplicateEdge Kind = "DUPLICATE_EDGE"

	// KindNodeNotFound indicates a missing node
	KindNodeNotFound Kind = "NODE_NOT_FOUND"

	// KindEdgeNotFound indicates a missing edge
	KindEdgeNotFound Kind = "EDGE_NOT_FOUND"

	// KindNodeInUse indicates a node that still has incident edges
	KindNodeInUse Kind = "NODE_IN_USE"

	// KindAttributeNotFound indicates a missing attribute on a node or edge
	KindAttributeNotFound Kind = "ATTRIBUTE_NOT_FOUND"

	// KindUnknownCommand indicates an unrecognized command verb or target
	KindUnknownCommand Kind = "UNKNOWN_COMMAND"

	// KindMalformedArgument indicates malformed command flag syntax
	KindMalformedArgument Kind = "MALFORMED_ARGUMENT"

	// KindWorkspaceNotFound indicates a missing workspace
	KindWorkspaceNotFound Kind = "WORKSPACE_NOT_FOUND"
)

// DomainError represents a typed, human-readable domain failure
type DomainError struct {
	Kind       Kind                   `json:"kind"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches errors by kind
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// WithCause wraps an underlying error
func (e *DomainError) WithCause(err error) *DomainError {
	e.Cause = err
	return e
}

// WithDetail adds a detail to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func newError(kind Kind, status int, format string, args ...interface{}) *DomainError {
	return &DomainError{
		Kind:       kind,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: status,
	}
}

// Constructor functions for the domain error taxonomy

// NewParseError creates a parse error for an unreadable source document
func NewParseError(format string, args ...interface{}) *DomainError {
	return newError(KindParse, http.StatusBadRequest, format, args...)
}

// NewValidationError creates a validation error
func NewValidationError(format string, args ...interface{}) *DomainError {
	return newError(KindValidation, http.StatusBadRequest, format, args...)
}

// NewDuplicateIDError creates a duplicate node id error
func NewDuplicateIDError(nodeID string) *DomainError {
	return newError(KindDuplicateID, http.StatusConflict, "node with id '%s' already exists", nodeID)
}

// NewDuplicateEdgeError creates a duplicate edge error
func NewDuplicateEdgeError(sourceID, destinationID string) *DomainError {
	return newError(KindDuplicateEdge, http.StatusConflict,
		"edge from '%s' to '%s' already exists", sourceID, destinationID)
}

// NewNodeNotFoundError creates a missing node error
func NewNodeNotFoundError(nodeID string) *DomainError {
	return newError(KindNodeNotFound, http.StatusNotFound, "node '%s' not found", nodeID)
}

// NewEdgeNotFoundError creates a missing edge error
func NewEdgeNotFoundError(sourceID, destinationID string) *DomainError {
	return newError(KindEdgeNotFound, http.StatusNotFound,
		"edge from '%s' to '%s' not found", sourceID, destinationID)
}

// NewNodeInUseError creates an error for deleting a node with incident edges
func NewNodeInUseError(nodeID string) *DomainError {
	return newError(KindNodeInUse, http.StatusConflict,
		"node '%s' has connected edges and cannot be deleted", nodeID)
}

// NewAttributeNotFoundError creates a missing attribute error
func NewAttributeNotFoundError(name string) *DomainError {
	return newError(KindAttributeNotFound, http.StatusNotFound, "attribute '%s' not found", name)
}

// NewUnknownCommandError creates an unknown command error
func NewUnknownCommandError(command string) *DomainError {
	return newError(KindUnknownCommand, http.StatusBadRequest, "unknown command: %s", command)
}

// NewMalformedArgumentError creates a malformed argument error
func NewMalformedArgumentError(format string, args ...interface{}) *DomainError {
	return newError(KindMalformedArgument, http.StatusBadRequest, format, args...)
}

// NewWorkspaceNotFoundError creates a missing workspace error
func NewWorkspaceNotFoundError(workspaceID string) *DomainError {
	return newError(KindWorkspaceNotFound, http.StatusNotFound, "workspace '%s' not found", workspaceID)
}

// Helper functions

// GetDomainError extracts a DomainError from an error chain
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// IsKind checks whether an error is of a specific kind
func IsKind(err error, kind Kind) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Kind == kind
}

// IsNotFound reports whether the error is any of the not-found kinds
func IsNotFound(err error) bool {
	return IsKind(err, KindNodeNotFound) ||
		IsKind(err, KindEdgeNotFound) ||
		IsKind(err, KindAttributeNotFound) ||
		IsKind(err, KindWorkspaceNotFound)
}

// IsConflict reports whether the error is a duplicate or in-use conflict
func IsConflict(err error) bool {
	return IsKind(err, KindDuplicateID) ||
		IsKind(err, KindDuplicateEdge) ||
		IsKind(err, KindNodeInUse)
}

// HTTPStatus maps an error to an HTTP status code
func HTTPStatus(err error) int {
	if domainErr := GetDomainError(err); domainErr != nil && domainErr.HTTPStatus != 0 {
		return domainErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		domainErr.Message = fmt.Sprintf("%s: %s", message, domainErr.Message)
		return domainErr
	}
	return fmt.Errorf("%s: %w", message, err)
}
