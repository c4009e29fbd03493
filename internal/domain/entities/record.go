package entities

import (
	"fmt"
	"strings"
)

// CollectionName identifies a named record collection in the store.
type CollectionName string

const (
	CollectionSubmission      CollectionName = "Submission"
	CollectionDossierAnalysis CollectionName = "DossierAnalysis"
	CollectionContent         CollectionName = "Content"
	CollectionTheme           CollectionName = "Theme"
)

// Collections lists every collection the service reads or writes.
var Collections = []CollectionName{
	CollectionSubmission,
	CollectionDossierAnalysis,
	CollectionContent,
	CollectionTheme,
}

func (c CollectionName) Valid() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

// Store-managed fields present on every record.
const (
	FieldID          = "id"
	FieldCreatedDate = "created_date"
	FieldUpdatedDate = "updated_date"
)

// TimestampLayout is fixed width so that stored timestamps order the same
// as text and as time.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// UniqueFields returns the fields the store must keep unique (and immutable
// once set) inside a collection.
//
// Storage model:
//   - Submission: access_code (one submission per access code)
//   - DossierAnalysis: submission_id (one current analysis per submission)
func UniqueFields(c CollectionName) []string {
	switch c {
	case CollectionSubmission:
		return []string{"access_code"}
	case CollectionDossierAnalysis:
		return []string{"submission_id"}
	default:
		return nil
	}
}

// Record is a semi-structured row as exchanged with the record store.
type Record map[string]any

// SortSpec is a field name optionally prefixed with "-" for descending order.
type SortSpec string

func (s SortSpec) Field() string {
	return strings.TrimPrefix(strings.TrimSpace(string(s)), "-")
}

func (s SortSpec) Descending() bool {
	return strings.HasPrefix(strings.TrimSpace(string(s)), "-")
}

func (r Record) ID() string {
	return r.String(FieldID)
}

// String returns the value under key when it is a string, or "" otherwise.
func (r Record) String(key string) string {
	if r == nil {
		return ""
	}
	s, _ := r[key].(string)
	return s
}

// UniqueValue renders a unique-field value as the canonical claim key. The
// key is the stored string itself so that claims agree with equality filters.
// Nil and blank strings do not claim anything.
func UniqueValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, strings.TrimSpace(t) != ""
	default:
		s := fmt.Sprintf("%v", t)
		return s, s != ""
	}
}

// Clone returns a shallow copy; nested maps and slices are shared.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
