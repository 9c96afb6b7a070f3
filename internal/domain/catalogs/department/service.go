package department

import (
	"context"

	"procompare/internal/core/id"
	"procompare/internal/core/tx"
	"procompare/internal/domain"
	"procompare/pkg/numerator"
)

// Service provides business logic for the Department catalog.
type Service struct {
	*domain.CatalogService[*Department]
	repo Repository
}

// NewService creates a new Department service.
func NewService(repo Repository, txm tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Department]{
		Repo:       repo,
		TxManager:  txm,
		Numerator:  num,
		EntityName: "department",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.ensureCode)

	return svc
}

func (s *Service) ensureCode(ctx context.Context, dep *Department) error {
	if dep.Code != "" {
		return nil
	}
	code, err := s.GenerateCode(ctx, "DEP")
	if err != nil {
		return err
	}
	dep.Code = code
	return nil
}

// ResolveName returns the department display name, or "Unknown" when the
// department is missing or the lookup errors. Never returns an error:
// name resolution failures must not break search result assembly.
func (s *Service) ResolveName(ctx context.Context, deptID id.ID) string {
	dep, err := s.repo.GetByID(ctx, deptID)
	if err != nil || dep == nil {
		return UnknownName
	}
	return dep.Name
}
