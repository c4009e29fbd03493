package cache

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_.\-]+)\}\}`)

// Interpolate replaces {{name}} placeholders with vars[name]. Placeholders
// without a value are left verbatim.
func Interpolate(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[2 : len(m)-2]
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}
