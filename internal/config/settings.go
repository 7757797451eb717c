// Package config defines the settings for both tools, with defaults,
// merging between sources (flags take precedence over environment
// variables) and validation.
package config

import (
	"fmt"

	"github.com/qdm12/gotree"
)

type Settings struct {
	AWS    AWS
	Logger Logger
	Upload Upload
	Notify Notify
}

func (s *Settings) SetDefaults() {
	s.AWS.setDefaults()
	s.Logger.setDefaults()
	s.Upload.setDefaults()
	s.Notify.setDefaults()
}

func (s Settings) MergeWith(other Settings) (merged Settings) {
	merged.AWS = s.AWS.mergeWith(other.AWS)
	merged.Logger = s.Logger.mergeWith(other.Logger)
	merged.Upload = s.Upload.mergeWith(other.Upload)
	merged.Notify = s.Notify.mergeWith(other.Notify)
	return merged
}

func (s Settings) Validate() (err error) {
	type validator interface {
		validate() (err error)
	}
	toValidate := map[string]validator{
		"aws":    &s.AWS,
		"logger": &s.Logger,
		"upload": &s.Upload,
		"notify": &s.Notify,
	}

	for name, v := range toValidate {
		err = v.validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (s Settings) String() string {
	return s.toLinesNode().String()
}

func (s Settings) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(s.AWS.toLinesNode())
	node.AppendNode(s.Logger.toLinesNode())
	node.AppendNode(s.Upload.toLinesNode())
	node.AppendNode(s.Notify.toLinesNode())
	return node
}
