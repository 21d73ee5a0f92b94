package types

import "errors"

// Config holds what is needed to open a Conn against a real database.
type Config struct {
	Dialect     string `json:"dialect" yaml:"dialect" mapstructure:"dialect"`
	DSN         string `json:"dsn" yaml:"dsn" mapstructure:"dsn"`
	TablePrefix string `json:"table_prefix" yaml:"table_prefix" mapstructure:"table_prefix"`
}

// Config validation errors.
var (
	ErrDSNEmpty   = errors.New("dsn must not be empty")
	ErrDSNInvalid = errors.New("invalid dsn")
)

// Validate checks that the Config is well-formed. The dialect is not checked
// (unknown values fall back to MySQL) and neither is the table prefix.
func (c Config) Validate() error {
	if c.DSN == "" {
		return ErrDSNEmpty
	}
	return nil
}

// ParsedDialect returns the resolved Dialect for c.
func (c Config) ParsedDialect() Dialect {
	return ParseDialect(c.Dialect)
}
