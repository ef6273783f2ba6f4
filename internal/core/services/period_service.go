package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
)

// periodService resolves posting dates to open accounting periods.
type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodReader
}

// NewPeriodService creates a new period resolver.
func NewPeriodService(repo portsrepo.PeriodReader) portssvc.PeriodResolverSvc {
	return &periodService{periodRepo: repo}
}

var _ portssvc.PeriodResolverSvc = (*periodService)(nil)

// ResolvePeriod returns the active period covering at. When several overlap, the one
// that starts first wins, then the lowest id.
func (s *periodService) ResolvePeriod(ctx context.Context, at time.Time) (int64, error) {
	at = at.Truncate(time.Second)

	periods, err := s.periodRepo.FindActivePeriodsCovering(ctx, at)
	if err != nil {
		s.LogError(ctx, err, "Failed to query accounting periods", slog.Time("date", at))
		return 0, err
	}

	candidates := make([]domain.Period, 0, len(periods))
	for _, p := range periods {
		if p.Covers(at) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w for date %s", apperrors.ErrNoOpenPeriod, at.Format(time.DateTime))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].StartDate.Equal(candidates[j].StartDate) {
			return candidates[i].StartDate.Before(candidates[j].StartDate)
		}
		return candidates[i].PeriodID < candidates[j].PeriodID
	})
	if len(candidates) > 1 {
		s.LogWarn(ctx, "Several open periods cover the date, using the earliest",
			slog.Time("date", at),
			slog.Int("matches", len(candidates)),
			slog.Int64("period_id", candidates[0].PeriodID))
	}
	return candidates[0].PeriodID, nil
}
