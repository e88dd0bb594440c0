package domain

import "errors"

// Theme is the colour scheme of the site
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// ThemeKey is the storage key the preference is persisted under
	ThemeKey = "color-theme"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ThemeStore is the key-value capability the preference persists through
// (a cookie jar on the server, localStorage in the browser).
type ThemeStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// ThemeRequest is the body of PUT /theme
type ThemeRequest struct {
	Theme Theme `json:"theme" binding:"required,oneof=light dark"`
}

// ThemeResponse is returned by every theme endpoint
type ThemeResponse struct {
	Theme Theme `json:"theme"`
}
