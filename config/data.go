package config

import (
	"time"

	"github.com/spf13/viper"
)

// Data represents the data configuration
type Data struct {
	MongoDB *MongoDB
}

// MongoDB mongodb config struct
type MongoDB struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// getDataConfig returns data config
func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		MongoDB: &MongoDB{
			URI:            v.GetString("data.mongodb.uri"),
			Database:       getStringOrDefault(v, "data.mongodb.database", "workforce"),
			ConnectTimeout: getDurationOrDefault(v, "data.mongodb.connect_timeout", 10*time.Second),
			MaxPoolSize:    uint64(getIntOrDefault(v, "data.mongodb.max_pool_size", 100)),
		},
	}
}
