package bmain

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/roger-dv/better-main/internal/util"
)

type Config struct {
	OutputFormat  string `mapstructure:"OutputFormat" yaml:"OutputFormat"`
	LogLevel      string `mapstructure:"LogLevel" yaml:"LogLevel"`
	LogPath       string `mapstructure:"LogPath" yaml:"LogPath"`
	CapacitySlack string `mapstructure:"CapacitySlack" yaml:"CapacitySlack"`
}

// LoadConfig resolves the effective configuration from defaults, the
// optional YAML file at path, and BMAIN_* environment overrides, in
// ascending precedence. An empty path applies defaults and environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaultConfig(v)
	v.SetEnvPrefix("BMAIN")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("OutputFormat", "plain")
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogPath", "")
	v.SetDefault("CapacitySlack", "0")
}

func validateConfig(cfg *Config) error {
	switch cfg.OutputFormat {
	case "plain", "table", "json":
	default:
		return fmt.Errorf("invalid output format %q (want plain, table or json)", cfg.OutputFormat)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if _, err := util.ParseSizeStringAsByte(cfg.CapacitySlack); err != nil {
		return fmt.Errorf("invalid capacity slack %q: %w", cfg.CapacitySlack, err)
	}
	return nil
}

// EffectiveYaml renders the resolved configuration as YAML.
func (c *Config) EffectiveYaml() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
