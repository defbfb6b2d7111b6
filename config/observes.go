package config

import (
	"github.com/spf13/viper"
)

// Observes observes config struct
type Observes struct {
	Sentry *Sentry
}

// Sentry config struct
type Sentry struct {
	Endpoint    string
	Environment string
	Release     string
	SampleRate  float64
}

// Enabled reports whether a Sentry DSN is configured.
func (s *Sentry) Enabled() bool {
	return s != nil && s.Endpoint != ""
}

func getObservesConfig(v *viper.Viper) *Observes {
	return &Observes{
		Sentry: getSentryConfig(v),
	}
}

// getSentryConfig get sentry config
func getSentryConfig(v *viper.Viper) *Sentry {
	return &Sentry{
		Endpoint:    v.GetString("observes.sentry.endpoint"),
		Environment: getStringOrDefault(v, "observes.sentry.environment", v.GetString("environment")),
		Release:     v.GetString("observes.sentry.release"),
		SampleRate:  getFloat64OrDefault(v, "observes.sentry.sample_rate", 1.0),
	}
}
