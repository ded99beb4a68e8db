package service

import (
	"time"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// ScreenConfig carries the per-process settings every dashboard screen
// shares.
type ScreenConfig struct {
	PageSize int
	Now      func() time.Time
}

func (c ScreenConfig) normalize() ScreenConfig {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

func (c ScreenConfig) today() string {
	return c.Now().UTC().Format("2006-01-02")
}

// roundHalfUp rounds like Math.round for the non-negative averages used here.
func roundHalfUp(v float64) int {
	if v < 0 {
		return -roundHalfUp(-v)
	}
	return int(v + 0.5)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func notConfirmed(message string) error {
	return appErrors.Clone(appErrors.ErrValidation, message)
}
