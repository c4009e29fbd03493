package entities

// ContentEntry is a translatable string keyed by a unique content key.
// Templates may contain {{variable}} placeholders.
type ContentEntry struct {
	ID           string            `json:"id,omitempty" yaml:"-"`
	Key          string            `json:"key" yaml:"key"`
	Translations map[string]string `json:"translations" yaml:"translations"`
	IsActive     bool              `json:"is_active" yaml:"is_active"`
}

// Theme holds the presentation tokens of the branded UI.
type Theme struct {
	ID         string         `json:"id,omitempty" yaml:"-"`
	Name       string         `json:"name" yaml:"name"`
	Colors     map[string]any `json:"colors" yaml:"colors"`
	Typography map[string]any `json:"typography" yaml:"typography"`
	IsActive   bool           `json:"is_active" yaml:"is_active"`
}

const FieldIsActive = "is_active"
