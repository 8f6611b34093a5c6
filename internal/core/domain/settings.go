package domain

// Theme is the user's display theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// UserSettings holds the per-user display preferences. The record is fetched
// once per authenticated session and replaced wholesale on update.
type UserSettings struct {
	UserID            string         `json:"-"`
	Name              string         `json:"name"`
	DefaultCurrency   CurrencyCode   `json:"defaultCurrency"`
	PreferredTheme    Theme          `json:"preferredTheme"`
	EnabledCurrencies []CurrencyCode `json:"enabledCurrencies"`
	AuditFields
}

// DefaultSettings returns the settings a fresh account starts with.
func DefaultSettings(userID, name string) UserSettings {
	return UserSettings{
		UserID:            userID,
		Name:              name,
		DefaultCurrency:   USD,
		PreferredTheme:    ThemeLight,
		EnabledCurrencies: []CurrencyCode{USD},
	}
}
