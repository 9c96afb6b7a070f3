package supplier

import (
	"context"

	"procompare/internal/core/id"
	"procompare/internal/core/tx"
	"procompare/internal/domain"
	"procompare/pkg/numerator"
)

// Service provides business logic for the Supplier catalog.
type Service struct {
	*domain.CatalogService[*Supplier]
	repo   Repository
	offers OfferRepository
}

// NewService creates a new Supplier service.
func NewService(repo Repository, offers OfferRepository, txm tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
		Repo:       repo,
		TxManager:  txm,
		Numerator:  num,
		EntityName: "supplier",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		offers:         offers,
	}

	base.Hooks().On(domain.BeforeCreate, svc.ensureCode)

	return svc
}

func (s *Service) ensureCode(ctx context.Context, sup *Supplier) error {
	if sup.Code != "" {
		return nil
	}
	code, err := s.GenerateCode(ctx, "SUP")
	if err != nil {
		return err
	}
	sup.Code = code
	return nil
}

// FindOffers returns all offers for an item code in the given currency.
func (s *Service) FindOffers(ctx context.Context, itemCode, currency string) ([]*Offer, error) {
	return s.offers.FindOffers(ctx, itemCode, currency)
}

// GetSupplier returns a supplier by ID.
func (s *Service) GetSupplier(ctx context.Context, supplierID id.ID) (*Supplier, error) {
	return s.repo.GetByID(ctx, supplierID)
}

// ResolveName returns the supplier display name, or "Unknown" when the
// supplier is missing or the lookup errors. Never returns an error.
func (s *Service) ResolveName(ctx context.Context, supplierID id.ID) string {
	sup, err := s.repo.GetByID(ctx, supplierID)
	if err != nil || sup == nil {
		return UnknownName
	}
	return sup.Name
}
