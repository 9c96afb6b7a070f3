package comparison

import (
	"sort"

	"procompare/internal/core/id"
	"procompare/internal/core/types"
	"procompare/internal/domain/catalogs/supplier"
)

// Compare computes the price metrics for one line given its candidate
// offers. Pure: no I/O, no shared state, safe to run concurrently per line.
//
// Offers with a nil price are never considered for the selected, highest or
// best price. Arithmetic edge cases (missing operands, zero amount) resolve
// to defined defaults rather than errors.
func Compare(offers []*supplier.Offer, supplierID *id.ID, orderQty *types.Money) ComparisonResult {
	sorted := make([]*supplier.Offer, len(offers))
	copy(sorted, offers)

	// Ascending by price, nil prices last.
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := sorted[i].Price, sorted[j].Price
		if pi == nil {
			return false
		}
		if pj == nil {
			return true
		}
		return pi.LessThan(*pj)
	})

	var selected, highest, lowest *types.Money
	for _, o := range sorted {
		if o.Price == nil {
			continue
		}
		if lowest == nil {
			lowest = o.Price
		}
		highest = o.Price
		if selected == nil && supplierID != nil && o.SupplierID == *supplierID {
			selected = o.Price
		}
	}

	res := ComparisonResult{
		SelectedPrice: selected,
		HighestPrice:  highest,
		Percentage:    types.Zero(),
	}

	qty := types.ValueOrZero(orderQty)

	if selected != nil {
		amount := selected.Mul(qty)
		res.Amount = &amount

		if highest != nil {
			diff := amount.Sub(highest.Mul(qty))
			res.AmountDifference = &diff

			if !amount.IsZero() {
				res.Percentage = types.RoundPercent(diff.Div(amount).Mul(types.NewMoney(100)))
			}
		}

		res.IsBestPrice = lowest != nil && selected.Equal(*lowest)
	}

	return res
}
