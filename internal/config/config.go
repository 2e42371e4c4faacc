package config

import (
	"github.com/spf13/viper"

	"github.com/Chia168168/Recipe-1/internal/domain/conversion"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	// Conversion overrides the classifier vocabulary. Empty lists keep
	// the built-in defaults.
	Conversion struct {
		FlourKeywords    []string `mapstructure:"flour_keywords"`
		PercentageGroups []string `mapstructure:"percentage_groups"`
		WaterKeywords    []string `mapstructure:"water_keywords"`
		EggKeywords      []string `mapstructure:"egg_keywords"`
		StrictFlourMatch bool     `mapstructure:"strict_flour_match"`
	} `mapstructure:"conversion"`
}

func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// Classifier builds the ingredient classifier, with any configured
// vocabulary overrides applied.
func (c Config) Classifier() *conversion.Classifier {
	cl := conversion.NewClassifier()
	if len(c.Conversion.FlourKeywords) > 0 {
		cl.FlourKeywords = c.Conversion.FlourKeywords
	}
	if len(c.Conversion.PercentageGroups) > 0 {
		cl.PercentageGroups = c.Conversion.PercentageGroups
	}
	if len(c.Conversion.WaterKeywords) > 0 {
		cl.WaterKeywords = c.Conversion.WaterKeywords
	}
	if len(c.Conversion.EggKeywords) > 0 {
		cl.EggKeywords = c.Conversion.EggKeywords
	}
	return cl
}
