// Package config handles input from etc/*.toml files.
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvConfigJSON is the environment variable holding a JSON config fragment
// merged on top of the TOML file (used for containerized deployments).
const EnvConfigJSON = "AMIGOVET_CONFIG_JSON"

// ReadConfig reads the configuration from the given directory.
func ReadConfig(path string) (Config, error) {
	var c Config

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigName("main")
	v.SetConfigType("toml")
	v.AddConfigPath(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal main config file")
	}

	// override it from env
	if jsonConfigEnv := os.Getenv(EnvConfigJSON); jsonConfigEnv != "" {
		var err error

		c, err = decodeAndMergeConfig(c, jsonConfigEnv)
		if err != nil {
			return c, err
		}
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // default drain time in seconds
	}

	return c, validate(c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to merge json config from env")
	}

	return c, nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings for the service.
func validate(c Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Media.TokenSecret == "" {
		return errors.Wrap(ErrEmptyMediaTokenSecret, invalidErrMessage)
	}

	return nil
}
