package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"procompare/internal/core/apperror"
	"procompare/internal/domain/catalogs/supplier"
	"procompare/internal/infrastructure/http/v1/dto"
)

// SupplierHandler handles supplier catalog and offer lookup endpoints.
type SupplierHandler struct {
	*CatalogHandler[*supplier.Supplier, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]
	svc *supplier.Service
}

// NewSupplierHandler creates the supplier handler.
func NewSupplierHandler(svc *supplier.Service) *SupplierHandler {
	base := NewCatalogHandler(CatalogHandlerConfig[*supplier.Supplier, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]{
		Service:    svc.CatalogService,
		EntityName: "supplier",

		MapCreateDTO: func(_ context.Context, req dto.CreateSupplierRequest) (*supplier.Supplier, error) {
			sup := supplier.NewSupplier(req.Code, req.Name)
			sup.TaxCode = req.TaxCode
			sup.ContactEmail = req.ContactEmail
			sup.ContactPhone = req.ContactPhone
			sup.PaymentTerms = req.PaymentTerms
			sup.DeliveryTerms = req.DeliveryTerms
			return sup, nil
		},

		MapUpdateDTO: func(_ context.Context, sup *supplier.Supplier, req dto.UpdateSupplierRequest) error {
			sup.Name = req.Name
			sup.TaxCode = req.TaxCode
			sup.ContactEmail = req.ContactEmail
			sup.ContactPhone = req.ContactPhone
			sup.PaymentTerms = req.PaymentTerms
			sup.DeliveryTerms = req.DeliveryTerms
			sup.Version = req.Version
			return nil
		},
	})

	return &SupplierHandler{CatalogHandler: base, svc: svc}
}

// Offers handles GET /suppliers/offers?itemCode=&currency=.
// Returns every current quote for the item code in the given currency.
func (h *SupplierHandler) Offers(c *gin.Context) {
	itemCode := c.Query("itemCode")
	if itemCode == "" {
		h.Error(c, apperror.NewValidation("itemCode is required"))
		return
	}
	currency := c.Query("currency")
	if currency == "" {
		h.Error(c, apperror.NewValidation("currency is required"))
		return
	}

	offers, err := h.svc.FindOffers(c.Request.Context(), itemCode, currency)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, offers)
}
