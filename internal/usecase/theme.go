package usecase

import "github.com/shri8977/FUTURE-FS-01/internal/domain"

// ThemePreference owns the light/dark choice for one visitor.
type ThemePreference struct {
	store      domain.ThemeStore
	systemDark bool
}

// NewThemePreference wraps store. systemDark is the visitor's OS-level
// preference and only matters when nothing has been stored yet.
func NewThemePreference(store domain.ThemeStore, systemDark bool) *ThemePreference {
	return &ThemePreference{store: store, systemDark: systemDark}
}

// Load returns the stored theme, falling back to the system preference.
func (p *ThemePreference) Load() domain.Theme {
	if t, ok := p.stored(); ok {
		return t
	}
	if p.systemDark {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

func (p *ThemePreference) Set(t domain.Theme) error {
	if !t.Valid() {
		return domain.ErrInvalidTheme
	}
	p.store.Set(domain.ThemeKey, string(t))
	return nil
}

// Toggle flips the theme currently shown, including one that only came from
// the system preference, and persists the result.
func (p *ThemePreference) Toggle() domain.Theme {
	next := domain.ThemeDark
	if p.Load() == domain.ThemeDark {
		next = domain.ThemeLight
	}
	p.store.Set(domain.ThemeKey, string(next))
	return next
}

func (p *ThemePreference) stored() (domain.Theme, bool) {
	v, ok := p.store.Get(domain.ThemeKey)
	if !ok {
		return "", false
	}
	t := domain.Theme(v)
	return t, t.Valid()
}
