package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
	"github.com/SscSPs/gl_gateway/internal/models"
)

// ToModelJournalRun converts a domain JournalRun to a model JournalRun
func ToModelJournalRun(d domain.JournalRun) (models.JournalRun, error) {
	steps := d.Steps
	if steps == nil {
		steps = []domain.StepResult{}
	}
	raw, err := json.Marshal(steps)
	if err != nil {
		return models.JournalRun{}, fmt.Errorf("encode run steps: %w", err)
	}
	return models.JournalRun{
		RunID:      d.RunID,
		Reference:  d.Reference,
		JournalID:  d.JournalID,
		Status:     string(d.Status),
		FailedStep: string(d.FailedStep),
		LineCount:  d.LineCount,
		Error:      d.Error,
		Steps:      raw,
		CreatedAt:  d.CreatedAt,
	}, nil
}

// ToDomainJournalRun converts a model JournalRun to a domain JournalRun
func ToDomainJournalRun(m models.JournalRun) (domain.JournalRun, error) {
	steps := []domain.StepResult{}
	if len(m.Steps) > 0 {
		if err := json.Unmarshal(m.Steps, &steps); err != nil {
			return domain.JournalRun{}, fmt.Errorf("decode steps of run %s: %w", m.RunID, err)
		}
	}
	return domain.JournalRun{
		RunID:      m.RunID,
		Reference:  m.Reference,
		JournalID:  m.JournalID,
		Status:     domain.JournalRunStatus(m.Status),
		FailedStep: domain.WorkflowStep(m.FailedStep),
		LineCount:  m.LineCount,
		Error:      m.Error,
		Steps:      steps,
		CreatedAt:  m.CreatedAt,
	}, nil
}
