package specification

import (
	"strings"

	"studynotes-be/internal/dto"

	"gorm.io/gorm"
)

var searchColumns = map[dto.SearchField]string{
	dto.SearchByTitle:   "notes.title",
	dto.SearchByCreator: "notes.content_creator",
	dto.SearchByChannel: "notes.channel_name",
	dto.SearchByURL:     "notes.youtube_url",
}

// NoteSearch matches Term as a case-insensitive substring of one column.
// LOWER/LIKE instead of ILIKE so the same query runs on sqlite.
type NoteSearch struct {
	Field dto.SearchField
	Term  string
}

func (s NoteSearch) Apply(db *gorm.DB) *gorm.DB {
	column, ok := searchColumns[s.Field]
	if !ok {
		column = searchColumns[dto.SearchByTitle]
	}
	pattern := "%" + escapeLike(strings.ToLower(s.Term)) + "%"
	return db.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", pattern)
}

func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
