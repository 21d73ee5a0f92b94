package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/attrschema/internal/logger"
	"github.com/mesh-intelligence/attrschema/internal/paths"
	"github.com/mesh-intelligence/attrschema/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "ATTRSCHEMA"

	// Config keys.
	cfgKeyDialect   = "dialect"
	cfgKeyDSN       = "dsn"
	cfgKeyPrefix    = "table_prefix"
	cfgKeyDataDir   = "data_dir"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	defaultDialect = types.DialectNameMySQL
)

// flagKeys binds persistent flags to config keys.
var flagKeys = map[string]string{
	cfgKeyDialect:   flagDialect,
	cfgKeyDSN:       flagDSN,
	cfgKeyPrefix:    flagPrefix,
	cfgKeyDataDir:   flagDataDir,
	cfgKeyLogLevel:  flagLogLevel,
	cfgKeyLogFormat: flagLogFormat,
}

// configFile holds the structure written to config.yaml.
type configFile struct {
	Dialect     string `yaml:"dialect"`
	DSN         string `yaml:"dsn"`
	TablePrefix string `yaml:"table_prefix"`
	LogLevel    string `yaml:"log_level,omitempty"`
	LogFormat   string `yaml:"log_format,omitempty"`
}

// settings is the merged result of flags, environment and config.yaml.
type settings struct {
	types.Config
	ConfigDir string
	DataDir   string
	LogLevel  string
	LogFormat string
}

// loadConfig reads config.yaml from configDir using Viper. Environment
// variables prefixed with ATTRSCHEMA_ override file values. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDialect, defaultDialect)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, logger.FormatConsole)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// loadSettings resolves the config directory, reads config.yaml, binds the
// command's flags and returns the merged settings. Flags win over
// environment variables, which win over config.yaml.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	dirFlag, err := cmd.Flags().GetString(flagConfigDir)
	if err != nil {
		return nil, err
	}
	configDir, err := paths.ResolveConfigDir(dirFlag)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return nil, err
	}
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	s := &settings{
		Config: types.Config{
			Dialect:     v.GetString(cfgKeyDialect),
			DSN:         v.GetString(cfgKeyDSN),
			TablePrefix: v.GetString(cfgKeyPrefix),
		},
		ConfigDir: configDir,
		DataDir:   v.GetString(cfgKeyDataDir),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
	}
	return s, nil
}

// resolveDSN fills in the default SQLite database path when no DSN is set.
func (s *settings) resolveDSN() error {
	if s.DSN != "" || s.ParsedDialect() != types.DialectSQLite {
		return nil
	}
	dsn, err := paths.DefaultSQLiteDSN(s.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	s.DSN = dsn
	return nil
}

// writeConfigIfMissing creates config.yaml from s if the file does not
// exist. It reports whether a file was written.
func writeConfigIfMissing(path string, s *settings) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		Dialect:     s.Dialect,
		DSN:         s.DSN,
		TablePrefix: s.TablePrefix,
		LogLevel:    s.LogLevel,
		LogFormat:   s.LogFormat,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}
