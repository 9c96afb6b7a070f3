package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"procompare/internal/core/apperror"
	"procompare/internal/core/id"
	"procompare/internal/domain/catalogs/prodtype"
	"procompare/internal/infrastructure/http/v1/dto"
)

// ProductTypeHandler handles product classification endpoints.
type ProductTypeHandler struct {
	*CatalogHandler[*prodtype.ProductType, dto.CreateProductTypeRequest, dto.UpdateProductTypeRequest]
	svc *prodtype.Service
}

func parseOptionalID(raw *string, field string) (*id.ID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := id.Parse(*raw)
	if err != nil {
		return nil, apperror.NewValidation("invalid " + field).WithDetail(field, *raw)
	}
	return &parsed, nil
}

// NewProductTypeHandler creates the product classification handler.
func NewProductTypeHandler(svc *prodtype.Service) *ProductTypeHandler {
	base := NewCatalogHandler(CatalogHandlerConfig[*prodtype.ProductType, dto.CreateProductTypeRequest, dto.UpdateProductTypeRequest]{
		Service:    svc.CatalogService,
		EntityName: "product_type",

		MapCreateDTO: func(_ context.Context, req dto.CreateProductTypeRequest) (*prodtype.ProductType, error) {
			parentID, err := parseOptionalID(req.ParentID, "parentId")
			if err != nil {
				return nil, err
			}
			pt := prodtype.NewProductType(req.Code, req.Name, req.Level)
			pt.ParentID = parentID
			return pt, nil
		},

		MapUpdateDTO: func(_ context.Context, pt *prodtype.ProductType, req dto.UpdateProductTypeRequest) error {
			parentID, err := parseOptionalID(req.ParentID, "parentId")
			if err != nil {
				return err
			}
			pt.Name = req.Name
			pt.ParentID = parentID
			pt.Version = req.Version
			return nil
		},
	})

	return &ProductTypeHandler{CatalogHandler: base, svc: svc}
}

// Children handles GET /product-types/:id/children.
// Returns the level 2 classifications under a level 1 parent.
func (h *ProductTypeHandler) Children(c *gin.Context) {
	parentID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id").WithDetail("id", c.Param("id")))
		return
	}

	items, err := h.svc.ListByParent(c.Request.Context(), parentID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, items)
}
