// Package uuid wraps github.com/google/uuid so that UUIDs can be used
// directly in gin URI and query bindings.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// Parse decodes s into a UUID or returns an error.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, err
	}

	return UUID{parsed}, nil
}

// UnmarshalParam implements the uuid.Parse method
// from https://pkg.go.dev/github.com/google/uuid#Parse
// for UUID
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}
