// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	seedMovies     = pflag.Bool("seed-movies", true, "Seeds the movie catalog if the movies table is empty")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validEnvs      = []string{"dev", "prod"}
	validDrivers   = []string{"sqlite", "postgres"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// SeedMovies reports whether the movie catalog should be seeded on boot.
func SeedMovies() bool {
	return *seedMovies
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.env", "app_env")
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")

	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")
	v.BindEnv("host.ssl.certificate_path", "host_ssl_certificate_path")
	v.BindEnv("host.ssl.certificate_key_path", "host_ssl_certificate_key_path")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.access_ttl_minutes", "jwt_access_ttl_minutes")
	v.BindEnv("jwt.refresh_ttl_hours", "jwt_refresh_ttl_hours")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("ratelimit.rps", "ratelimit_rps")
	v.BindEnv("ratelimit.burst", "ratelimit_burst")

	//
	// Defaults
	//
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")

	v.SetDefault("host.ssl.enabled", false)

	v.SetDefault("jwt.access_ttl_minutes", 15)
	v.SetDefault("jwt.refresh_ttl_hours", 24*30)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "database.db")

	v.SetDefault("ratelimit.rps", 5)
	v.SetDefault("ratelimit.burst", 10)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validEnvs, v.GetString("app.env")) {
		return errors.New("invalid app environment provided")
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if !slices.Contains(validDrivers, v.GetString("db.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("db.driver") == "postgres" && v.GetString("db.dsn") == "" {
		return errors.New("db.dsn can't be empty when using postgres")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetBool("host.ssl.enabled") {
		if v.GetString("host.ssl.certificate_path") == "" {
			return errors.New("no ssl certificate path provided")
		}

		if v.GetString("host.ssl.certificate_key_path") == "" {
			return errors.New("no ssl certificate key path provided")
		}
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetInt("jwt.access_ttl_minutes") <= 0 {
		return errors.New("jwt.access_ttl_minutes must be bigger than 0")
	}

	if v.GetInt("jwt.refresh_ttl_hours") <= 0 {
		return errors.New("jwt.refresh_ttl_hours must be bigger than 0")
	}

	if v.GetInt("ratelimit.rps") <= 0 || v.GetInt("ratelimit.burst") <= 0 {
		return errors.New("rate limit values must be bigger than 0")
	}

	return nil
}
