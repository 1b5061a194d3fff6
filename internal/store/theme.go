package store

import "time"

// DarkModeClass is the body class the client toggles for night mode.
const DarkModeClass = "dark-mode"

// IsNightTime reports whether hour falls in 18:00-05:59.
func IsNightTime(hour int) bool {
	return hour >= 18 || hour < 6
}

type Theme struct {
	dark     bool
	onChange ChangeFunc[bool]
}

// NewTheme starts from the persisted flag; false when nothing was persisted.
func NewTheme(persisted bool, onChange ChangeFunc[bool]) *Theme {
	return &Theme{dark: persisted, onChange: onChange}
}

// Initialize promotes the theme to dark during night hours. It never turns dark
// mode off: a persisted dark flag stays dark in daytime.
func (t *Theme) Initialize(now time.Time) bool {
	t.dark = t.dark || IsNightTime(now.Hour())
	return t.commit()
}

func (t *Theme) Toggle() bool {
	t.dark = !t.dark
	return t.commit()
}

func (t *Theme) Set(dark bool) bool {
	t.dark = dark
	return t.commit()
}

func (t *Theme) IsDarkMode() bool {
	return t.dark
}

func (t *Theme) BodyClass() string {
	if t.dark {
		return DarkModeClass
	}
	return ""
}

func (t *Theme) commit() bool {
	if t.onChange != nil {
		t.onChange(t.dark)
	}
	return t.dark
}
