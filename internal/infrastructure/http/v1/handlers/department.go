package handlers

import (
	"context"

	"procompare/internal/domain/catalogs/department"
	"procompare/internal/infrastructure/http/v1/dto"
)

// DepartmentHandler handles department catalog endpoints.
type DepartmentHandler = CatalogHandler[*department.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest]

// NewDepartmentHandler creates the department handler.
func NewDepartmentHandler(svc *department.Service) *DepartmentHandler {
	return NewCatalogHandler(CatalogHandlerConfig[*department.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest]{
		Service:    svc.CatalogService,
		EntityName: "department",

		MapCreateDTO: func(_ context.Context, req dto.CreateDepartmentRequest) (*department.Department, error) {
			dep := department.NewDepartment(req.Code, req.Name)
			dep.NameEN = req.NameEN
			dep.Description = req.Description
			return dep, nil
		},

		MapUpdateDTO: func(_ context.Context, dep *department.Department, req dto.UpdateDepartmentRequest) error {
			dep.Name = req.Name
			dep.NameEN = req.NameEN
			dep.Description = req.Description
			dep.Version = req.Version
			return nil
		},
	})
}
