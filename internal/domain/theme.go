package domain

// ConditionClear is the upstream condition that selects the light theme.
const ConditionClear = "Clear"

// Theme is the presentation state of the weather dashboard.
type Theme struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Icon       string `json:"icon,omitempty"`
}

var (
	ThemeNoData = Theme{Name: "none", Background: "bg-gradient"}
	ThemeClear  = Theme{Name: "clear", Background: "bg-light", Icon: "sun"}
	ThemeOther  = Theme{Name: "other", Background: "bg-dark", Icon: "cloud"}
)

func SelectTheme(r *WeatherReading) Theme {
	switch {
	case r == nil:
		return ThemeNoData
	case r.Condition == ConditionClear:
		return ThemeClear
	default:
		return ThemeOther
	}
}
