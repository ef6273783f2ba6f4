package services

import (
	"context"
	"time"
)

// PeriodResolverSvc finds the open accounting period of a posting date.
type PeriodResolverSvc interface {
	// ResolvePeriod returns the id of the active period covering at.
	// It fails with apperrors.ErrNoOpenPeriod when none does.
	ResolvePeriod(ctx context.Context, at time.Time) (int64, error)
}
