package idempiere

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
)

// AccountRepository reads and writes C_ElementValue records.
type AccountRepository struct {
	client *Client
}

func newAccountRepository(client *Client) *AccountRepository {
	return &AccountRepository{client: client}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) FindActiveAccountsByCode(ctx context.Context, code string) ([]domain.Account, error) {
	q := query(and(eqString("Value", code), eqBool("IsActive", true)), "", "")
	var out collection[elementValueRecord]
	if err := r.client.do(ctx, http.MethodGet, modelElementValue, q, nil, &out, true); err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, 0, len(out.Records))
	for _, rec := range out.Records {
		accounts = append(accounts, rec.toDomain())
	}
	return accounts, nil
}

func (r *AccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	filter := eqBool("IsActive", true)
	if r.client.erp.ElementID != 0 {
		filter = and(eqInt("C_Element_ID", r.client.erp.ElementID), filter)
	}
	var out collection[elementValueRecord]
	if err := r.client.do(ctx, http.MethodGet, modelElementValue, query(filter, "", "Value"), nil, &out, true); err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, 0, len(out.Records))
	for _, rec := range out.Records {
		accounts = append(accounts, rec.toDomain())
	}
	sort.SliceStable(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts, nil
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	payload := elementValuePayload{
		ClientID:    r.client.erp.ClientID,
		OrgID:       r.client.erp.OrgID,
		Value:       account.Code,
		Name:        account.Name,
		AccountType: string(account.AccountType),
		ElementID:   account.ElementID,
	}
	var rec elementValueRecord
	if err := r.client.do(ctx, http.MethodPost, modelElementValue, nil, payload, &rec, true); err != nil {
		return nil, err
	}
	created := rec.toDomain()
	if created.Code == "" {
		created.Code = account.Code
	}
	if created.Name == "" {
		created.Name = account.Name
	}
	return &created, nil
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	path := fmt.Sprintf("%s/%d", modelElementValue, account.AccountID)
	var rec elementValueRecord
	if err := r.client.do(ctx, http.MethodPut, path, nil, elementValueUpdate{Name: account.Name, IsActive: account.IsActive}, &rec, true); err != nil {
		return nil, err
	}
	updated := rec.toDomain()
	return &updated, nil
}
