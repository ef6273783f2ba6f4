package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// PeriodReader defines read operations for accounting periods.
type PeriodReader interface {
	// FindActivePeriodsCovering returns every active period whose [start, end] interval contains at.
	// The order of the result is not significant.
	FindActivePeriodsCovering(ctx context.Context, at time.Time) ([]domain.Period, error)
}
