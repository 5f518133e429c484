package models

import (
	"strings"

	"gorm.io/gorm"
)

// Member is a household member who can create bills, owe shares and be
// owed money.
//
// Identity and session management happen outside of this backend, the
// member records here only mirror the profile data needed for display.
type Member struct {
	DefaultModel
	Username string `gorm:"uniqueIndex"`
	Note     string
}

// BeforeSave trims whitespace and verifies that the username is set.
func (m *Member) BeforeSave(_ *gorm.DB) error {
	m.Username = strings.TrimSpace(m.Username)
	m.Note = strings.TrimSpace(m.Note)

	if m.Username == "" {
		return ErrMemberUsernameMissing
	}

	return nil
}
