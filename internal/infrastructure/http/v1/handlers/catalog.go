package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"procompare/internal/core/apperror"
	"procompare/internal/core/entity"
	"procompare/internal/core/id"
	"procompare/internal/domain"
	"procompare/internal/infrastructure/http/v1/dto"
)

// catalogEntity is the constraint for entities served by CatalogHandler.
type catalogEntity interface {
	entity.Validatable
	GetID() id.ID
}

// CatalogHandler provides generic CRUD endpoints for catalog entities.
// Per-entity behavior is injected through the DTO mapper functions.
type CatalogHandler[T catalogEntity, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service    *domain.CatalogService[T]
	entityName string

	mapCreate func(ctx context.Context, req CreateDTO) (T, error)
	mapUpdate func(ctx context.Context, existing T, req UpdateDTO) error
}

// CatalogHandlerConfig configures a generic catalog handler.
type CatalogHandlerConfig[T catalogEntity, CreateDTO any, UpdateDTO any] struct {
	Service    *domain.CatalogService[T]
	EntityName string

	// MapCreateDTO builds a new entity from the create request.
	MapCreateDTO func(ctx context.Context, req CreateDTO) (T, error)

	// MapUpdateDTO applies the update request onto the loaded entity.
	MapUpdateDTO func(ctx context.Context, existing T, req UpdateDTO) error
}

// NewCatalogHandler creates a generic catalog handler.
func NewCatalogHandler[T catalogEntity, CreateDTO any, UpdateDTO any](
	cfg CatalogHandlerConfig[T, CreateDTO, UpdateDTO],
) *CatalogHandler[T, CreateDTO, UpdateDTO] {
	return &CatalogHandler[T, CreateDTO, UpdateDTO]{
		BaseHandler: NewBaseHandler(),
		service:     cfg.Service,
		entityName:  cfg.EntityName,
		mapCreate:   cfg.MapCreateDTO,
		mapUpdate:   cfg.MapUpdateDTO,
	}
}

func (h *CatalogHandler[T, C, U]) parseID(c *gin.Context) (id.ID, bool) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id").WithDetail("id", c.Param("id")))
		return id.Nil(), false
	}
	return entityID, true
}

// List handles GET /<entity>.
func (h *CatalogHandler[T, C, U]) List(c *gin.Context) {
	var q dto.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	filter := domain.DefaultListFilter()
	filter.Search = q.Search
	filter.IncludeDeleted = q.IncludeDeleted
	if q.OrderBy != "" {
		filter.OrderBy = q.OrderBy
	}
	if q.Limit > 0 {
		filter.Limit = q.Limit
	}
	if q.Offset > 0 {
		filter.Offset = q.Offset
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      result.Items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /<entity>/:id.
func (h *CatalogHandler[T, C, U]) Get(c *gin.Context) {
	entityID, ok := h.parseID(c)
	if !ok {
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, item)
}

// GetByCode handles GET /<entity>/by-code/:code.
func (h *CatalogHandler[T, C, U]) GetByCode(c *gin.Context) {
	item, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, item)
}

// Create handles POST /<entity>.
func (h *CatalogHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	item, err := h.mapCreate(ctx, req)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, item); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, item.GetID().String())
}

// Update handles PUT /<entity>/:id.
func (h *CatalogHandler[T, C, U]) Update(c *gin.Context) {
	entityID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req U
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	existing, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.mapUpdate(ctx, existing, req); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(ctx, existing); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, existing)
}

// Delete handles DELETE /<entity>/:id (soft delete).
func (h *CatalogHandler[T, C, U]) Delete(c *gin.Context) {
	entityID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
