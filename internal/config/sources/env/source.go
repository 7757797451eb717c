// Package env reads settings from environment variables.
package env

import (
	"fmt"
	"os"

	"github.com/qdm12/gosettings/sources/env"

	"github.com/awstools/awstools/internal/config"
)

type Warner interface {
	Warnf(format string, args ...interface{})
}

type Source struct {
	env env.Env
}

func New(warner Warner) *Source {
	handleDeprecated := func(deprecatedKey, currentKey string) {
		warner.Warnf("You are using an old environment variable %s, please change it to %s",
			deprecatedKey, currentKey)
	}
	return &Source{
		env: *env.New(os.Environ(), handleDeprecated),
	}
}

func (s *Source) Read() (settings config.Settings, err error) {
	settings.AWS = s.readAWS()

	settings.Logger, err = s.readLogger()
	if err != nil {
		return settings, fmt.Errorf("reading logger settings: %w", err)
	}

	settings.Upload, err = s.readUpload()
	if err != nil {
		return settings, fmt.Errorf("reading upload settings: %w", err)
	}

	settings.Notify = s.readNotify()
	return settings, nil
}
