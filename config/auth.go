package config

import (
	"time"

	"github.com/spf13/viper"
)

// Auth auth config struct
type Auth struct {
	JWT *JWT
}

// getAuth returns the auth config.
func getAuth(v *viper.Viper) *Auth {
	return &Auth{
		JWT: getJWT(v),
	}
}

// JWT jwt config struct
type JWT struct {
	Secret string
	// Expire is the access token lifetime in seconds.
	Expire int
}

// ExpireDuration returns the access token lifetime.
func (j *JWT) ExpireDuration() time.Duration {
	return time.Duration(j.Expire) * time.Second
}

// getJWT returns the jwt config.
func getJWT(v *viper.Viper) *JWT {
	return &JWT{
		Secret: v.GetString("auth.jwt.secret"),
		Expire: getIntOrDefault(v, "auth.jwt.expire", 3600),
	}
}
