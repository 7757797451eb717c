package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type Upload struct {
	// RowDelay is the fixed pause after each live record submission,
	// a blunt throttle to stay under the Route 53 API rate limit.
	RowDelay time.Duration
	// VerifyResolver is the DNS resolver address queried by --verify.
	VerifyResolver string
}

func (u *Upload) setDefaults() {
	const defaultRowDelay = 500 * time.Millisecond
	u.RowDelay = gosettings.DefaultComparable(u.RowDelay, defaultRowDelay)
	u.VerifyResolver = gosettings.DefaultComparable(u.VerifyResolver, "1.1.1.1:53")
}

func (u Upload) mergeWith(other Upload) (merged Upload) {
	merged.RowDelay = gosettings.MergeWithNumber(u.RowDelay, other.RowDelay)
	merged.VerifyResolver = gosettings.MergeWithString(u.VerifyResolver, other.VerifyResolver)
	return merged
}

var ErrRowDelayNegative = errors.New("row delay cannot be negative")

func (u Upload) validate() (err error) {
	if u.RowDelay < 0 {
		return fmt.Errorf("%w: %s", ErrRowDelayNegative, u.RowDelay)
	}
	return nil
}

func (u Upload) toLinesNode() *gotree.Node {
	node := gotree.New("Upload")
	node.Appendf("Row delay: %s", u.RowDelay)
	node.Appendf("Verify resolver: %s", u.VerifyResolver)
	return node
}
