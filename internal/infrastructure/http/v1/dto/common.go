// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// IDResponse returns an entity ID after creation.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is a generic success confirmation.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ListQuery contains common catalog list parameters.
type ListQuery struct {
	Search         string `form:"search"`
	IncludeDeleted bool   `form:"includeDeleted"`
	OrderBy        string `form:"orderBy"`
	Limit          int    `form:"limit"`
	Offset         int    `form:"offset"`
}

// ListResponse wraps list results with totals.
type ListResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}
