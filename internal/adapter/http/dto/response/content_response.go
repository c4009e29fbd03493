package response

import "intake_dossier/internal/domain/entities"

type ContentResponse struct {
	Key   string `json:"key"`
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

type ThemeResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Colors     map[string]any `json:"colors"`
	Typography map[string]any `json:"typography"`
}

func FromTheme(t entities.Theme) ThemeResponse {
	colors, typography := t.Colors, t.Typography
	if colors == nil {
		colors = map[string]any{}
	}
	if typography == nil {
		typography = map[string]any{}
	}
	return ThemeResponse{ID: t.ID, Name: t.Name, Colors: colors, Typography: typography}
}

type ThemeVariablesResponse struct {
	Variables map[string]string `json:"variables"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
