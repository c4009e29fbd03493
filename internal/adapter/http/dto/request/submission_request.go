package request

import (
	"errors"
	"strings"
)

var ErrMissingAccessCode = errors.New("access_code is required")

// SubmissionForm is the raw wizard payload. Keys are either top-level
// submission fields or grouped fields the normalizer routes into their
// grouping attribute.
type SubmissionForm map[string]any

// Fields returns the form as a plain mapping, never nil.
func (f SubmissionForm) Fields() map[string]any {
	if f == nil {
		return map[string]any{}
	}
	return map[string]any(f)
}

type AccessCodeQuery struct {
	AccessCode string `form:"access_code"`
}

func (q AccessCodeQuery) Resolve() (string, error) {
	code := strings.TrimSpace(q.AccessCode)
	if code == "" {
		return "", ErrMissingAccessCode
	}
	return code, nil
}
