package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters applies the title, notes and search filters to a bill
// query. An empty value for a set field filters for the empty string.
func stringFilters(db, query *gorm.DB, setFields []string, title, notes, search string) *gorm.DB {
	if title != "" {
		query = query.Where("title LIKE ?", fmt.Sprintf("%%%s%%", title))
	} else if slices.Contains(setFields, "Title") {
		query = query.Where("title = ''")
	}

	if notes != "" {
		query = query.Where("notes LIKE ?", fmt.Sprintf("%%%s%%", notes))
	} else if slices.Contains(setFields, "Notes") {
		query = query.Where("notes = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("notes LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("title LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

// memberFilters applies the username, note and search filters to a
// member query.
func memberFilters(db, query *gorm.DB, setFields []string, username, note, search string) *gorm.DB {
	if username != "" {
		query = query.Where("username LIKE ?", fmt.Sprintf("%%%s%%", username))
	} else if slices.Contains(setFields, "Username") {
		query = query.Where("username = ''")
	}

	if note != "" {
		query = query.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where("note = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("username LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
