package comparison

import (
	"sort"
)

// Assemble sorts the fully enriched item set by recency (descending, nil
// timestamps last) and slices out the requested page. Sorting and totals
// always run over the entire matching set; only the returned slice is
// page-bounded.
func Assemble(dataType DataType, items []*LineView, disablePagination bool, page, size int) *UnifiedResult {
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := items[i].RecencyAt(), items[j].RecencyAt()
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return ri.After(*rj)
	})

	total := len(items)

	if disablePagination {
		return &UnifiedResult{
			DataType:      dataType,
			Requisitions:  items,
			TotalElements: total,
			Pagination: PageMeta{
				Disabled:         true,
				TotalElements:    total,
				NumberOfElements: total,
			},
		}
	}

	start := page * size
	end := start + size
	if end > total {
		end = total
	}

	pageItems := []*LineView{}
	if start < total {
		pageItems = items[start:end]
	}

	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}

	return &UnifiedResult{
		DataType:      dataType,
		Requisitions:  pageItems,
		TotalElements: total,
		Pagination: PageMeta{
			Page:             page,
			Size:             size,
			TotalPages:       totalPages,
			TotalElements:    total,
			NumberOfElements: len(pageItems),
			HasNext:          end < total,
			HasPrevious:      page > 0 && total > 0,
		},
	}
}
