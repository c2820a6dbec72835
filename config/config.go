package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Configuration is the full application configuration.
type Configuration struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Billing BillingConfig `mapstructure:"billing" validate:"required"`
	Store   StoreConfig   `mapstructure:"store" validate:"required"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

type BillingConfig struct {
	// TaxRate is a fraction, 0.18 for 18%.
	TaxRate  float64 `mapstructure:"tax_rate" validate:"min=0,max=1"`
	Currency string  `mapstructure:"currency" validate:"required,len=3"`
	// StrictStatus refuses status changes out of paid and back to draft.
	StrictStatus bool `mapstructure:"strict_status"`
}

// Rate returns the tax rate as a decimal. The float is read through its
// shortest string form so 0.18 stays exactly 0.18.
func (b BillingConfig) Rate() decimal.Decimal {
	return decimal.NewFromFloat(b.TaxRate)
}

type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=memory sqlite"`
	DSN    string `mapstructure:"dsn"`
	Seed   bool   `mapstructure:"seed"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("billing.tax_rate", 0.18)
	v.SetDefault("billing.currency", "INR")
	v.SetDefault("billing.strict_status", false)
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.seed", true)
}

// Load reads configuration from file (an explicit path, or config.yaml on the
// search path when path is empty) and EASYBILL_* environment variables. A
// missing config file is not an error.
func Load(path string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/easy-bill")
	}

	v.SetEnvPrefix("EASYBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config")
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}
