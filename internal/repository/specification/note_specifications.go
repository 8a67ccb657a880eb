package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteOwnedByUser scopes a query on the notes table with an explicit
// table alias, safe to use in joined queries.
type NoteOwnedByUser struct {
	UserID uuid.UUID
}

func (s NoteOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.user_id = ?", s.UserID)
}

type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}
