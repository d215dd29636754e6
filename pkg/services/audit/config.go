package audit

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Tolerance Tolerance `mapstructure:"tolerance"`
}

// LoadConfig reads audit settings from a config file. Absent thresholds fall
// back to the defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := DefaultTolerance()
	v.SetDefault("tolerance.low_percent", defaults.LowPercent)
	v.SetDefault("tolerance.high_percent", defaults.HighPercent)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse audit config: %w", err)
	}
	return &cfg, nil
}
