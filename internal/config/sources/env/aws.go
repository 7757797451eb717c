package env

import (
	"github.com/qdm12/gosettings/sources/env"

	"github.com/awstools/awstools/internal/config"
)

func (s *Source) readAWS() (settings config.AWS) {
	settings.Region = s.env.String("AWS_REGION", env.ForceLowercase(false))
	settings.Profile = s.env.String("AWS_PROFILE", env.ForceLowercase(false))
	settings.AccessKeyID = s.env.String("AWS_ACCESS_KEY_ID", env.ForceLowercase(false))
	settings.SecretAccessKey = s.env.String("AWS_SECRET_ACCESS_KEY", env.ForceLowercase(false))
	return settings
}
