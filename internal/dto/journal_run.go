package dto

import "github.com/SscSPs/gl_gateway/internal/core/domain"

// ListJournalRunsParams defines the query parameters for listing journal runs.
type ListJournalRunsParams struct {
	Status    string `form:"status" binding:"omitempty,oneof=succeeded partial failed cleaned_up"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken string `form:"nextToken"`
}

// ListJournalRunsResponse is a page of journal runs.
type ListJournalRunsResponse struct {
	Runs      []domain.JournalRun `json:"runs"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ImportJournalsResponse lists the outcome of every reference of an imported file.
type ImportJournalsResponse struct {
	Results   []domain.ImportResult `json:"results"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// ToImportJournalsResponse counts the outcomes of an import.
func ToImportJournalsResponse(results []domain.ImportResult) ImportJournalsResponse {
	resp := ImportJournalsResponse{Results: results}
	if resp.Results == nil {
		resp.Results = []domain.ImportResult{}
	}
	for _, r := range resp.Results {
		if r.Status == domain.RunSucceeded {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	return resp
}
