package request

import (
	"net/url"
	"strings"
)

const DefaultLang = "en"

// ContentQuery is the query string of a content lookup: lang selects the
// translation and every other parameter is an interpolation variable.
type ContentQuery struct {
	Lang string
	Vars map[string]string
}

func ParseContentQuery(values url.Values) ContentQuery {
	q := ContentQuery{Lang: DefaultLang, Vars: map[string]string{}}
	for k, v := range values {
		if len(v) == 0 {
			continue
		}
		if k == "lang" {
			if lang := strings.TrimSpace(v[0]); lang != "" {
				q.Lang = lang
			}
			continue
		}
		q.Vars[k] = v[0]
	}
	return q
}
