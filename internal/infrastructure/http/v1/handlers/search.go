package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"procompare/internal/core/apperror"
	"procompare/internal/core/id"
	"procompare/internal/domain/comparison"
	"procompare/internal/domain/requisition"
	"procompare/internal/infrastructure/http/v1/dto"
)

// SearchHandler handles requisition search and duplicate-check endpoints.
type SearchHandler struct {
	*BaseHandler
	search       *comparison.Service
	requisitions *requisition.Service
}

// NewSearchHandler creates the search handler.
func NewSearchHandler(search *comparison.Service, requisitions *requisition.Service) *SearchHandler {
	return &SearchHandler{
		BaseHandler:  NewBaseHandler(),
		search:       search,
		requisitions: requisitions,
	}
}

// Search handles GET /requisitions/search.
// Loads requisition lines for the requested scope, applies the optional
// filter, enriches monthly lines with price comparison and returns sorted,
// paginated results.
func (h *SearchHandler) Search(c *gin.Context) {
	var q dto.SearchQuery
	if !h.BindQuery(c, &q) {
		return
	}

	result, err := h.search.Search(c.Request.Context(), q.ToRequest())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}

// CheckDuplicate handles GET /requisitions/check-duplicate.
// Resolves the line's strongest identifying field and checks whether another
// line in the group already carries the same value.
func (h *SearchHandler) CheckDuplicate(c *gin.Context) {
	var q dto.DuplicateCheckQuery
	if !h.BindQuery(c, &q) {
		return
	}

	groupID, err := id.Parse(q.GroupID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid groupId").WithDetail("groupId", q.GroupID))
		return
	}

	var excludeID *id.ID
	if q.ExcludeID != "" {
		parsed, err := id.Parse(q.ExcludeID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid excludeId").WithDetail("excludeId", q.ExcludeID))
			return
		}
		excludeID = &parsed
	}

	fields := requisition.KeyFields{
		Unit:    q.Unit,
		OldCode: q.OldCode,
		NewCode: q.NewCode,
		NameVN:  q.NameVN,
		NameEN:  q.NameEN,
	}

	ctx := c.Request.Context()

	var check *requisition.DuplicateCheck
	switch strings.ToUpper(q.Source) {
	case string(comparison.DataTypeMonthly):
		check, err = h.requisitions.CheckDuplicateMonthly(ctx, groupID, fields, excludeID)
	case string(comparison.DataTypeSummary):
		check, err = h.requisitions.CheckDuplicateSummary(ctx, groupID, fields, excludeID)
	default:
		h.Error(c, apperror.NewValidation("source must be MONTHLY or SUMMARY").WithDetail("source", q.Source))
		return
	}
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, check)
}
