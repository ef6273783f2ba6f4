package idempiere

import (
	"context"
	"net/http"
	"time"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
	"github.com/SscSPs/gl_gateway/internal/utils"
)

// PeriodRepository reads C_Period records.
type PeriodRepository struct {
	client *Client
}

func newPeriodRepository(client *Client) *PeriodRepository {
	return &PeriodRepository{client: client}
}

var _ portsrepo.PeriodReader = (*PeriodRepository)(nil)

func (r *PeriodRepository) FindActivePeriodsCovering(ctx context.Context, at time.Time) ([]domain.Period, error) {
	// Period bounds are dates: a period ending on the posting day still covers it.
	local := at.In(r.client.loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.client.loc)
	filter := and(
		eqBool("IsActive", true),
		le("StartDate", utils.FormatERPTimestamp(at, r.client.loc)),
		ge("EndDate", utils.FormatERPTimestamp(dayStart, r.client.loc)),
	)

	var out collection[periodRecord]
	if err := r.client.do(ctx, http.MethodGet, modelPeriod, query(filter, "", ""), nil, &out, true); err != nil {
		return nil, err
	}
	periods := make([]domain.Period, 0, len(out.Records))
	for _, rec := range out.Records {
		periods = append(periods, rec.toDomain(r.client.loc))
	}
	return periods, nil
}
