package prodtype

import (
	"context"

	"procompare/internal/core/id"
	"procompare/internal/core/tx"
	"procompare/internal/domain"
	"procompare/pkg/numerator"
)

// Service provides business logic for the product classification catalog.
type Service struct {
	*domain.CatalogService[*ProductType]
	repo Repository
}

// NewService creates a new ProductType service.
func NewService(repo Repository, txm tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*ProductType]{
		Repo:       repo,
		TxManager:  txm,
		Numerator:  num,
		EntityName: "product_type",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.ensureCode)

	return svc
}

func (s *Service) ensureCode(ctx context.Context, pt *ProductType) error {
	if pt.Code != "" {
		return nil
	}
	code, err := s.GenerateCode(ctx, "PT")
	if err != nil {
		return err
	}
	pt.Code = code
	return nil
}

// ListByParent returns level 2 classifications under a level 1 parent.
func (s *Service) ListByParent(ctx context.Context, parentID id.ID) ([]*ProductType, error) {
	return s.repo.ListByParent(ctx, parentID)
}

// ResolveName returns the classification display name, or "Unknown" when the
// reference is nil, missing or the lookup errors. Never returns an error.
func (s *Service) ResolveName(ctx context.Context, typeID *id.ID) string {
	if typeID == nil || id.IsNil(*typeID) {
		return UnknownName
	}
	pt, err := s.repo.GetByID(ctx, *typeID)
	if err != nil || pt == nil {
		return UnknownName
	}
	return pt.Name
}
