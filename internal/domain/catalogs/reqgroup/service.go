package reqgroup

import (
	"context"

	"procompare/internal/core/id"
	"procompare/internal/core/tx"
	"procompare/internal/domain"
	"procompare/pkg/numerator"
)

// Service provides business logic for the requisition group catalog.
type Service struct {
	*domain.CatalogService[*Group]
	repo Repository
}

// NewService creates a new Group service.
func NewService(repo Repository, txm tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Group]{
		Repo:       repo,
		TxManager:  txm,
		Numerator:  num,
		EntityName: "requisition_group",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.ensureCode)

	return svc
}

func (s *Service) ensureCode(ctx context.Context, g *Group) error {
	if g.Code != "" {
		return nil
	}
	code, err := s.GenerateCode(ctx, "RG")
	if err != nil {
		return err
	}
	g.Code = code
	return nil
}

// ListGroupIDs returns the IDs of all non-deleted groups. Used to resolve
// the "all groups" search scope.
func (s *Service) ListGroupIDs(ctx context.Context) ([]id.ID, error) {
	return s.repo.ListIDs(ctx)
}

// GetGroup returns a group by ID.
func (s *Service) GetGroup(ctx context.Context, groupID id.ID) (*Group, error) {
	return s.repo.GetByID(ctx, groupID)
}
