package config

// Config holds the defaults that flags can override. Field tags use
// mapstructure for viper unmarshalling.
type Config struct {
	// Order is the default sort spec, e.g. "delta" or "+author".
	Order string `mapstructure:"order"`

	// Width is the maximum display width of the author column.
	Width int `mapstructure:"width"`

	// Color is one of "auto", "always", or "never".
	Color string `mapstructure:"color"`
}
