// Package config loads pedal settings from .pedal.yaml, PEDAL_* environment
// variables and defaults.
package config

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/pedal/pkg/currency"
	"tableflip.dev/pedal/pkg/datepicker"
	"tableflip.dev/pedal/pkg/screensize"
)

const (
	KeyAPIURL         = "api-url"
	KeyToken          = "token"
	KeyUserID         = "user-id"
	KeyCurrency       = "currency"
	KeyServiceFee     = "service-fee"
	KeyMobileMaxWidth = "mobile-max-width"
	KeyGridLength     = "grid-length"
	KeyBookmarksPath  = "bookmarks-path"
	KeyLogFile        = "log-file"
	KeyLogLevel       = "log-level"
	KeyServeAddr      = "serve-addr"
)

// Config is the resolved configuration.
type Config struct {
	APIURL         string        `json:"api-url"`
	Token          string        `json:"token"`
	UserID         int           `json:"user-id"`
	Currency       currency.Code `json:"currency"`
	ServiceFee     float64       `json:"service-fee"`
	MobileMaxWidth int           `json:"mobile-max-width"`
	GridLength     int           `json:"grid-length"`
	BookmarksPath  string        `json:"bookmarks-path"`
	LogFile        string        `json:"log-file"`
	LogLevel       string        `json:"log-level"`
	ServeAddr      string        `json:"serve-addr"`
}

// Breakpoints returns the screen classification with the configured mobile
// cutoff.
func (c *Config) Breakpoints() screensize.Breakpoints {
	b := screensize.DefaultBreakpoints()
	if c.MobileMaxWidth > 0 {
		b.MobileMaxWidth = c.MobileMaxWidth
	}
	return b
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIURL, "http://127.0.0.1:8484")
	v.SetDefault(KeyToken, "")
	v.SetDefault(KeyUserID, 1)
	v.SetDefault(KeyCurrency, string(currency.Default))
	v.SetDefault(KeyServiceFee, 0.15)
	v.SetDefault(KeyMobileMaxWidth, screensize.DefaultBreakpoints().MobileMaxWidth)
	v.SetDefault(KeyGridLength, datepicker.DefaultLength)
	v.SetDefault(KeyBookmarksPath, "~/.pedal/bookmarks")
	v.SetDefault(KeyLogFile, "~/.pedal.log")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyServeAddr, "127.0.0.1:8484")
}

// Load reads the configuration. The config file is optional.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(".pedal") // .yaml is implicit
	v.SetEnvPrefix("PEDAL")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	if override := os.Getenv("PEDAL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	code, err := currency.Parse(v.GetString(KeyCurrency))
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		APIURL:         v.GetString(KeyAPIURL),
		Token:          v.GetString(KeyToken),
		UserID:         v.GetInt(KeyUserID),
		Currency:       code,
		ServiceFee:     v.GetFloat64(KeyServiceFee),
		MobileMaxWidth: v.GetInt(KeyMobileMaxWidth),
		GridLength:     v.GetInt(KeyGridLength),
		LogLevel:       v.GetString(KeyLogLevel),
		ServeAddr:      v.GetString(KeyServeAddr),
	}
	if cfg.GridLength < 0 {
		return nil, fmt.Errorf("config: %s must not be negative, got %d", KeyGridLength, cfg.GridLength)
	}
	if cfg.BookmarksPath, err = homedir.Expand(v.GetString(KeyBookmarksPath)); err != nil {
		return nil, err
	}
	if cfg.LogFile, err = homedir.Expand(v.GetString(KeyLogFile)); err != nil {
		return nil, err
	}
	return cfg, nil
}
