package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/SscSPs/gl_gateway/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Classifier maps account codes to dashboard classes by prefix or exact code.
type Classifier struct {
	RevenuePrefix string
	RevenueCodes  map[string]struct{}
	ExpensePrefix string
	ExpenseCodes  map[string]struct{}
}

// NewClassifier builds a Classifier from prefixes and exact code lists.
func NewClassifier(revenuePrefix string, revenueCodes []string, expensePrefix string, expenseCodes []string) Classifier {
	return Classifier{
		RevenuePrefix: revenuePrefix,
		RevenueCodes:  toSet(revenueCodes),
		ExpensePrefix: expensePrefix,
		ExpenseCodes:  toSet(expenseCodes),
	}
}

// Classify returns the class of an account code. Revenue is checked first.
func (c Classifier) Classify(code string) domain.AccountClass {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.ClassOther
	}
	if matches(code, c.RevenuePrefix, c.RevenueCodes) {
		return domain.ClassRevenue
	}
	if matches(code, c.ExpensePrefix, c.ExpenseCodes) {
		return domain.ClassExpense
	}
	return domain.ClassOther
}

func matches(code, prefix string, exact map[string]struct{}) bool {
	if prefix != "" && strings.HasPrefix(code, prefix) {
		return true
	}
	_, ok := exact[code]
	return ok
}

func toSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[strings.TrimSpace(c)] = struct{}{}
	}
	return set
}

// ValidateEntries checks journal entry inputs before anything is sent to the ERP:
// at least one entry, non-negative amounts, and total debits equal to total credits.
func ValidateEntries(entries []domain.JournalEntryInput) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: journal entry requires at least one line", apperrors.ErrValidation)
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for i, e := range entries {
		if strings.TrimSpace(e.Account.Code) == "" {
			return fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, i+1)
		}
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i+1)
		}
		debits = debits.Add(e.Debit)
		credits = credits.Add(e.Credit)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			apperrors.ErrJournalUnbalanced, debits.String(), credits.String())
	}
	return nil
}

// IsOneSided reports whether exactly one of debit/credit is non-zero.
func IsOneSided(e domain.JournalEntryInput) bool {
	return e.Debit.IsZero() != e.Credit.IsZero()
}
