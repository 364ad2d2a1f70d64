package pokeapi

import (
	"errors"
	"fmt"
)

// NetworkError wraps a transport failure or an unexpected HTTP status.
type NetworkError struct {
	Operation  string
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed for %s: %v", e.Operation, e.URL, e.Err)
	}

	return fmt.Sprintf("%s failed for %s: unexpected status %d", e.Operation, e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates the API has no data for an identifier.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Name)
}

// DataShapeError indicates a payload that could not be decoded or is
// missing a required field.
type DataShapeError struct {
	Resource string
	Name     string
	Reason   string
	Err      error
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("unexpected %s payload for %s: %s", e.Resource, e.Name, e.Reason)
}

func (e *DataShapeError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a missing identifier
func IsNotFound(err error) bool {
	var nf *NotFoundError

	return errors.As(err, &nf)
}

// IsDataShape checks if the error indicates an unexpected payload shape
func IsDataShape(err error) bool {
	var ds *DataShapeError

	return errors.As(err, &ds)
}

// IsNetwork checks if the error indicates a transport or status failure
func IsNetwork(err error) bool {
	var ne *NetworkError

	return errors.As(err, &ne)
}
