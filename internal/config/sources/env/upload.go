package env

import (
	"fmt"

	"github.com/qdm12/gosettings/sources/env"

	"github.com/awstools/awstools/internal/config"
)

func (s *Source) readUpload() (settings config.Upload, err error) {
	settings.RowDelay, err = s.env.Duration("UPLOAD_ROW_DELAY")
	if err != nil {
		return settings, fmt.Errorf("environment variable UPLOAD_ROW_DELAY: %w", err)
	}

	settings.VerifyResolver = s.env.String("VERIFY_RESOLVER", env.ForceLowercase(false))
	return settings, nil
}
