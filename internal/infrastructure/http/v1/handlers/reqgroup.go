package handlers

import (
	"context"

	"procompare/internal/domain/catalogs/reqgroup"
	"procompare/internal/infrastructure/http/v1/dto"
)

// GroupHandler handles requisition group endpoints.
type GroupHandler = CatalogHandler[*reqgroup.Group, dto.CreateGroupRequest, dto.UpdateGroupRequest]

// NewGroupHandler creates the requisition group handler.
func NewGroupHandler(svc *reqgroup.Service) *GroupHandler {
	return NewCatalogHandler(CatalogHandlerConfig[*reqgroup.Group, dto.CreateGroupRequest, dto.UpdateGroupRequest]{
		Service:    svc.CatalogService,
		EntityName: "requisition_group",

		MapCreateDTO: func(_ context.Context, req dto.CreateGroupRequest) (*reqgroup.Group, error) {
			g := reqgroup.NewGroup(req.Code, req.Name)
			g.Currency = req.Currency
			g.Description = req.Description
			return g, nil
		},

		MapUpdateDTO: func(_ context.Context, g *reqgroup.Group, req dto.UpdateGroupRequest) error {
			g.Name = req.Name
			g.Currency = req.Currency
			g.Description = req.Description
			g.Version = req.Version
			return nil
		},
	})
}
