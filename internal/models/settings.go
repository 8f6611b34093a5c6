package models

// UserSettings is the database representation of a user's preferences.
// EnabledCurrencies is stored as a text array.
type UserSettings struct {
	UserID            string   `db:"user_id"`
	Name              string   `db:"name"`
	DefaultCurrency   string   `db:"default_currency"`
	PreferredTheme    string   `db:"preferred_theme"`
	EnabledCurrencies []string `db:"enabled_currencies"`
	AuditFields
}
