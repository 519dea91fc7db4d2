package database

import (
	"errors"
	"fmt"
)

var (
	ErrNoSuchPerson   = errors.New("no such person")
	ErrNoSuchProduct  = errors.New("no such product")
	ErrNoSuchCompany  = errors.New("no such company")
	ErrDuplicateID    = errors.New("duplicate id")
	ErrSelfFriendship = errors.New("a person cannot be their own friend")
)

// NotFoundError is returned when an id or name lookup has no match. Kind is
// one of the ErrNoSuch* sentinels, so errors.Is works on the kind.
type NotFoundError struct {
	Kind   error
	ID     int
	Name   string
	ByName bool
}

func (e *NotFoundError) Error() string {
	if e.ByName {
		return fmt.Sprintf("%v: no name contains %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("%v: id %d", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Kind }

func notFoundID(kind error, id int) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func notFoundName(kind error, name string) error {
	return &NotFoundError{Kind: kind, Name: name, ByName: true}
}

func duplicateID(kind string, id int) error {
	return fmt.Errorf("%w: %s %d already exists", ErrDuplicateID, kind, id)
}
