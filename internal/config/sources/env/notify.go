package env

import (
	"github.com/qdm12/gosettings/sources/env"

	"github.com/awstools/awstools/internal/config"
)

func (s *Source) readNotify() (settings config.Notify) {
	settings.Addresses = s.env.CSV("NOTIFY_ADDRESSES", env.ForceLowercase(false))
	settings.DefaultTitle = s.env.String("NOTIFY_DEFAULT_TITLE", env.ForceLowercase(false))
	return settings
}
