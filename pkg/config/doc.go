// Package config loads engine settings from environment variables, with an
// optional .env bootstrap for development.
//
// The exported Config struct carries the tunables of the toast engine
// (default countdown, exit window, stagger step, bucket cap). The generic
// Load helper works for any tagged struct so host applications can reuse
// the same mechanism for their own settings:
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
