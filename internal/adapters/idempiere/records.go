package idempiere

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
	"github.com/SscSPs/gl_gateway/internal/utils"
)

// ERP model names.
const (
	modelElementValue = "models/C_ElementValue"
	modelPeriod       = "models/C_Period"
	modelJournal      = "models/GL_Journal"
	modelJournalLine  = "models/GL_JournalLine"
	authTokens        = "auth/tokens"
)

// collection is the envelope of every ERP list answer.
type collection[T any] struct {
	RowCount int `json:"row-count"`
	Records  []T `json:"records"`
}

// ref is a foreign key or list value. The ERP sends either a scalar or an object
// {"id": ..., "identifier": ...}; both decode into ref.
type ref struct {
	Value      string
	Identifier string
}

func (r *ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = ref{}
		return nil
	}
	if b[0] == '{' {
		var obj struct {
			ID         json.RawMessage `json:"id"`
			Identifier string          `json:"identifier"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		r.Value = scalar(obj.ID)
		r.Identifier = obj.Identifier
		return nil
	}
	r.Value = scalar(b)
	return nil
}

func (r ref) Int64() int64 {
	n, err := strconv.ParseInt(r.Value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func scalar(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// erpTime is a date as sent by the ERP, kept raw until a location is known.
type erpTime string

func (t *erpTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("idempiere: date %s: %w", string(b), err)
	}
	*t = erpTime(s)
	return nil
}

func (t erpTime) In(loc *time.Location) time.Time {
	if t == "" {
		return time.Time{}
	}
	parsed, err := utils.ParseERPTimestamp(string(t), loc)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

type elementValueRecord struct {
	ID          int64  `json:"id"`
	Value       string `json:"Value"`
	Name        string `json:"Name"`
	AccountType ref    `json:"AccountType"`
	Element     ref    `json:"C_Element_ID"`
	IsActive    bool   `json:"IsActive"`
}

func (r elementValueRecord) toDomain() domain.Account {
	return domain.Account{
		AccountID:   r.ID,
		Code:        r.Value,
		Name:        r.Name,
		AccountType: domain.AccountType(r.AccountType.Value),
		ElementID:   r.Element.Int64(),
		IsActive:    r.IsActive,
	}
}

type elementValuePayload struct {
	ClientID    int64  `json:"AD_Client_ID"`
	OrgID       int64  `json:"AD_Org_ID"`
	Value       string `json:"Value"`
	Name        string `json:"Name"`
	AccountType string `json:"AccountType"`
	ElementID   int64  `json:"C_Element_ID"`
}

type elementValueUpdate struct {
	Name     string `json:"Name"`
	IsActive bool   `json:"IsActive"`
}

type periodRecord struct {
	ID        int64   `json:"id"`
	Name      string  `json:"Name"`
	StartDate erpTime `json:"StartDate"`
	EndDate   erpTime `json:"EndDate"`
	IsActive  bool    `json:"IsActive"`
}

func (r periodRecord) toDomain(loc *time.Location) domain.Period {
	return domain.Period{
		PeriodID:  r.ID,
		Name:      r.Name,
		StartDate: r.StartDate.In(loc),
		EndDate:   r.EndDate.In(loc),
		IsActive:  r.IsActive,
	}
}

type journalRecord struct {
	ID          int64               `json:"id"`
	Description string              `json:"Description"`
	DateAcct    erpTime             `json:"DateAcct"`
	DateDoc     erpTime             `json:"DateDoc"`
	DocStatus   ref                 `json:"DocStatus"`
	Period      ref                 `json:"C_Period_ID"`
	Category    ref                 `json:"GL_Category_ID"`
	IsActive    bool                `json:"IsActive"`
	Lines       []journalLineRecord `json:"GL_JournalLine"`
}

func (r journalRecord) toDomain(loc *time.Location) domain.JournalHeader {
	h := domain.JournalHeader{
		JournalID:   r.ID,
		Description: r.Description,
		DateAcct:    r.DateAcct.In(loc),
		DateDoc:     r.DateDoc.In(loc),
		DocStatus:   domain.DocStatus(r.DocStatus.Value),
		PeriodID:    r.Period.Int64(),
		CategoryID:  r.Category.Int64(),
		IsActive:    r.IsActive,
	}
	for _, l := range r.Lines {
		line := l.toDomain(loc)
		if line.JournalID == 0 {
			line.JournalID = r.ID
		}
		h.Lines = append(h.Lines, line)
	}
	return h
}

type journalPayload struct {
	ClientID     int64  `json:"AD_Client_ID"`
	OrgID        int64  `json:"AD_Org_ID"`
	AcctSchemaID int64  `json:"C_AcctSchema_ID"`
	DocTypeID    int64  `json:"C_DocType_ID"`
	PeriodID     int64  `json:"C_Period_ID"`
	Description  string `json:"Description"`
	PostingType  string `json:"PostingType"`
	CategoryID   int64  `json:"GL_Category_ID"`
	DateAcct     string `json:"DateAcct"`
	DateDoc      string `json:"DateDoc"`
}

type journalLineRecord struct {
	ID          int64           `json:"id"`
	Journal     ref             `json:"GL_Journal_ID"`
	Account     ref             `json:"Account_ID"`
	Line        int             `json:"Line"`
	Currency    ref             `json:"C_Currency_ID"`
	DateAcct    erpTime         `json:"DateAcct"`
	AmtSourceDr decimal.Decimal `json:"AmtSourceDr"`
	AmtSourceCr decimal.Decimal `json:"AmtSourceCr"`
	AmtAcctDr   decimal.Decimal `json:"AmtAcctDr"`
	AmtAcctCr   decimal.Decimal `json:"AmtAcctCr"`
}

func (r journalLineRecord) toDomain(loc *time.Location) domain.JournalLine {
	return domain.JournalLine{
		LineID:            r.ID,
		JournalID:         r.Journal.Int64(),
		AccountID:         r.Account.Int64(),
		AccountIdentifier: r.Account.Identifier,
		LineNumber:        r.Line,
		CurrencyID:        r.Currency.Int64(),
		DateAcct:          r.DateAcct.In(loc),
		AmtSourceDr:       r.AmtSourceDr,
		AmtSourceCr:       r.AmtSourceCr,
		AmtAcctDr:         r.AmtAcctDr,
		AmtAcctCr:         r.AmtAcctCr,
	}
}

type journalLinePayload struct {
	ClientID    int64       `json:"AD_Client_ID"`
	OrgID       int64       `json:"AD_Org_ID"`
	JournalID   int64       `json:"GL_Journal_ID"`
	AccountID   int64       `json:"Account_ID"`
	Line        int         `json:"Line"`
	CurrencyID  int64       `json:"C_Currency_ID"`
	DateAcct    string      `json:"DateAcct"`
	AmtAcctDr   json.Number `json:"AmtAcctDr"`
	AmtAcctCr   json.Number `json:"AmtAcctCr"`
	AmtSourceDr json.Number `json:"AmtSourceDr"`
	AmtSourceCr json.Number `json:"AmtSourceCr"`
}

// amount renders d as a bare JSON number.
func amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
