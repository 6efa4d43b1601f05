package testutil

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// FakeReadModel is an in-memory ReadModel for unit tests.
type FakeReadModel struct {
	Details map[string]*contracts.ProductDetail
	List    *contracts.ListResult

	// LastFilter records the filter of the most recent ListProducts call.
	LastFilter *contracts.ListFilter
}

// NewFakeReadModel creates an empty in-memory read model.
func NewFakeReadModel() *FakeReadModel {
	return &FakeReadModel{
		Details: make(map[string]*contracts.ProductDetail),
		List:    &contracts.ListResult{},
	}
}

func (f *FakeReadModel) GetProductDetail(_ context.Context, productID string) (*contracts.ProductDetail, error) {
	detail, ok := f.Details[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return detail, nil
}

func (f *FakeReadModel) ListProducts(_ context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	f.LastFilter = filter
	return f.List, nil
}
