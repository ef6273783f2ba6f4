package idempiere

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
	"github.com/SscSPs/gl_gateway/internal/utils"
)

const expandLines = "GL_JournalLine"

// JournalRepository reads and writes GL_Journal and GL_JournalLine records.
type JournalRepository struct {
	client *Client
}

func newJournalRepository(client *Client) *JournalRepository {
	return &JournalRepository{client: client}
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

func (r *JournalRepository) FindHeaderWithLines(ctx context.Context, journalID int64) (*domain.JournalHeader, error) {
	path := fmt.Sprintf("%s/%d", modelJournal, journalID)
	var rec journalRecord
	if err := r.client.do(ctx, http.MethodGet, path, query("", expandLines, ""), nil, &rec, true); err != nil {
		return nil, err
	}
	header := rec.toDomain(r.client.loc)
	return &header, nil
}

func (r *JournalRepository) FindActiveHeadersByDescription(ctx context.Context, description string) ([]domain.JournalHeader, error) {
	filter := and(eqString("Description", description), eqBool("IsActive", true))
	return r.list(ctx, filter, "")
}

func (r *JournalRepository) ListHeadersByCategory(ctx context.Context, categoryID int64, filter domain.GeneralLedgerFilter) ([]domain.JournalHeader, error) {
	clauses := []string{eqInt("GL_Category_ID", categoryID)}
	if filter.From != nil {
		clauses = append(clauses, ge("DateAcct", utils.FormatERPTimestamp(*filter.From, r.client.loc)))
	}
	if filter.To != nil {
		clauses = append(clauses, le("DateAcct", utils.FormatERPTimestamp(*filter.To, r.client.loc)))
	}
	return r.list(ctx, and(clauses...), expandLines)
}

func (r *JournalRepository) list(ctx context.Context, filter, expand string) ([]domain.JournalHeader, error) {
	var out collection[journalRecord]
	if err := r.client.do(ctx, http.MethodGet, modelJournal, query(filter, expand, ""), nil, &out, true); err != nil {
		return nil, err
	}
	headers := make([]domain.JournalHeader, 0, len(out.Records))
	for _, rec := range out.Records {
		headers = append(headers, rec.toDomain(r.client.loc))
	}
	return headers, nil
}

func (r *JournalRepository) SaveHeader(ctx context.Context, header domain.JournalHeader) (*domain.JournalHeader, error) {
	erp := r.client.erp
	payload := journalPayload{
		ClientID:     erp.ClientID,
		OrgID:        erp.OrgID,
		AcctSchemaID: erp.AcctSchemaID,
		DocTypeID:    erp.DocTypeID,
		PeriodID:     header.PeriodID,
		Description:  header.Description,
		PostingType:  erp.PostingType,
		CategoryID:   header.CategoryID,
		DateAcct:     utils.FormatERPTimestamp(header.DateAcct, r.client.loc),
		DateDoc:      utils.FormatERPTimestamp(header.DateDoc, r.client.loc),
	}
	var rec journalRecord
	if err := r.client.do(ctx, http.MethodPost, modelJournal, nil, payload, &rec, true); err != nil {
		return nil, err
	}
	created := rec.toDomain(r.client.loc)
	fillHeaderDefaults(&created, header)
	return &created, nil
}

// fillHeaderDefaults completes a created header with what was sent when the ERP
// answer leaves fields out.
func fillHeaderDefaults(created *domain.JournalHeader, sent domain.JournalHeader) {
	if created.Description == "" {
		created.Description = sent.Description
	}
	if created.DateAcct.IsZero() {
		created.DateAcct = sent.DateAcct
	}
	if created.DateDoc.IsZero() {
		created.DateDoc = sent.DateDoc
	}
	if created.PeriodID == 0 {
		created.PeriodID = sent.PeriodID
	}
	if created.CategoryID == 0 {
		created.CategoryID = sent.CategoryID
	}
	if created.DocStatus == "" {
		created.DocStatus = domain.Draft
	}
}

func (r *JournalRepository) DeleteHeader(ctx context.Context, journalID int64) error {
	path := fmt.Sprintf("%s/%d", modelJournal, journalID)
	return r.client.do(ctx, http.MethodDelete, path, nil, nil, nil, true)
}

func (r *JournalRepository) SaveLine(ctx context.Context, line domain.JournalLine) (*domain.JournalLine, error) {
	payload := journalLinePayload{
		ClientID:    r.client.erp.ClientID,
		OrgID:       r.client.erp.OrgID,
		JournalID:   line.JournalID,
		AccountID:   line.AccountID,
		Line:        line.LineNumber,
		CurrencyID:  line.CurrencyID,
		DateAcct:    utils.FormatERPTimestamp(line.DateAcct, r.client.loc),
		AmtAcctDr:   amount(line.AmtAcctDr),
		AmtAcctCr:   amount(line.AmtAcctCr),
		AmtSourceDr: amount(line.AmtSourceDr),
		AmtSourceCr: amount(line.AmtSourceCr),
	}
	var rec journalLineRecord
	if err := r.client.do(ctx, http.MethodPost, modelJournalLine, nil, payload, &rec, true); err != nil {
		return nil, err
	}
	created := rec.toDomain(r.client.loc)
	if created.JournalID == 0 {
		created.JournalID = line.JournalID
	}
	if created.AccountID == 0 {
		created.AccountID = line.AccountID
	}
	if created.LineNumber == 0 {
		created.LineNumber = line.LineNumber
	}
	if created.CurrencyID == 0 {
		created.CurrencyID = line.CurrencyID
	}
	if created.DateAcct.IsZero() {
		created.DateAcct = line.DateAcct
	}
	if created.AmtSourceDr.IsZero() && created.AmtSourceCr.IsZero() {
		created.AmtSourceDr, created.AmtSourceCr = line.AmtSourceDr, line.AmtSourceCr
		created.AmtAcctDr, created.AmtAcctCr = line.AmtAcctDr, line.AmtAcctCr
	}
	return &created, nil
}
