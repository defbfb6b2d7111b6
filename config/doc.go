// Package config loads the service configuration with Viper.
//
// Configuration is read from YAML, JSON or TOML and every key can be
// overridden by an environment variable prefixed with WORKFORCE_, with dots
// replaced by underscores:
//
//	app_name: workforce
//	environment: release
//	server:
//	  host: 0.0.0.0
//	  port: 3000
//	logger:
//	  level: 4
//	  format: json
//	  output: stdout
//	data:
//	  mongodb:
//	    uri: mongodb://localhost:27017
//	    database: workforce
//	auth:
//	  jwt:
//	    secret: change-me
//	    expire: 3600
//
//	WORKFORCE_AUTH_JWT_SECRET=... WORKFORCE_DATA_MONGODB_URI=... ./workforce serve
//
// The file may be omitted entirely when no explicit path is given; the
// environment and defaults are then the only source.
package config
