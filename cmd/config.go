package cmd

import (
	"errors"
	"fmt"

	"github.com/etnz/proforma"
	"github.com/spf13/viper"
)

// Configuration keys. Each one can also be set with a PROFORMA_<KEY>
// environment variable, e.g. PROFORMA_MAX_ITERATIONS.
const (
	keyCurrency      = "currency"
	keyGuess         = "guess"
	keyMaxIterations = "max_iterations"
	keyTolerance     = "tolerance"
)

var config = newConfig()

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("proforma")
	v.AutomaticEnv()
	v.SetDefault(keyCurrency, "USD")
	v.SetDefault(keyGuess, proforma.DefaultSolver.Guess)
	v.SetDefault(keyMaxIterations, proforma.DefaultSolver.MaxIterations)
	v.SetDefault(keyTolerance, proforma.DefaultSolver.Tolerance)
	return v
}

// LoadConfig reads the configuration file. With an empty path, the optional
// .proforma.yaml of the working directory is read.
func LoadConfig(path string) error {
	config = newConfig()
	if path != "" {
		config.SetConfigFile(path)
	} else {
		config.SetConfigName(".proforma")
		config.SetConfigType("yaml")
		config.AddConfigPath(".")
	}

	err := config.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		logger.Debugw("configuration loaded", "file", config.ConfigFileUsed())
	case path == "" && errors.As(err, &notFound):
		logger.Debugw("no configuration file, using defaults")
	default:
		return fmt.Errorf("cannot read configuration: %w", err)
	}

	if err := solver().Validate(); err != nil {
		return fmt.Errorf("invalid solver configuration: %w", err)
	}
	return nil
}

// solver returns the IRR solver as configured.
func solver() proforma.Solver {
	return proforma.Solver{
		Guess:         config.GetFloat64(keyGuess),
		MaxIterations: config.GetInt(keyMaxIterations),
		Tolerance:     config.GetFloat64(keyTolerance),
	}
}

// defaultCurrency returns the currency of scenarios that do not set one.
func defaultCurrency() string { return config.GetString(keyCurrency) }
