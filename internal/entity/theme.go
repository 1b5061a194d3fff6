package entity

// Theme is the day/night flag plus the body class the client applies.
type Theme struct {
	IsDarkMode bool   `json:"is_dark_mode"`
	BodyClass  string `json:"body_class"`
}
