package config

import (
	"errors"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type AWS struct {
	// Region defaults to us-west-2 when neither flag nor the AWS_REGION
	// environment variable is set.
	Region          string
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
}

func (a *AWS) setDefaults() {
	a.Region = gosettings.DefaultComparable(a.Region, "us-west-2")
}

func (a AWS) mergeWith(other AWS) (merged AWS) {
	merged.Region = gosettings.MergeWithString(a.Region, other.Region)
	merged.Profile = gosettings.MergeWithString(a.Profile, other.Profile)
	merged.AccessKeyID = gosettings.MergeWithString(a.AccessKeyID, other.AccessKeyID)
	merged.SecretAccessKey = gosettings.MergeWithString(a.SecretAccessKey, other.SecretAccessKey)
	return merged
}

var ErrSecretAccessKeyMissing = errors.New("access key ID is set but its secret access key is not")

func (a AWS) validate() (err error) {
	if a.AccessKeyID != "" && a.SecretAccessKey == "" {
		return ErrSecretAccessKeyMissing
	}
	return nil
}

func (a AWS) toLinesNode() *gotree.Node {
	node := gotree.New("AWS")
	node.Appendf("Region: %s", a.Region)
	if a.Profile != "" {
		node.Appendf("Profile: %s", a.Profile)
	}
	if a.AccessKeyID != "" {
		node.Appendf("Static credentials: set")
	}
	return node
}
