package interfaces

import (
	"errors"
	"fmt"

	"intake_dossier/internal/domain/entities"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrWrite              = errors.New("record write rejected")
	ErrStoreUnavailable   = errors.New("record store unavailable")
	ErrAnalysisCapability = errors.New("analysis capability failed")

	// ErrUniqueConflict is wrapped inside an ErrWrite when another record
	// already holds a unique value.
	ErrUniqueConflict = errors.New("unique value already claimed")
)

// StoreError carries the collection and operation of a failed store call.
// Kind is one of the sentinels above and is what errors.Is matches.
type StoreError struct {
	Kind       error
	Collection entities.CollectionName
	Op         string
	Err        error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Collection, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewStoreError(kind error, collection entities.CollectionName, op string, err error) *StoreError {
	return &StoreError{Kind: kind, Collection: collection, Op: op, Err: err}
}
