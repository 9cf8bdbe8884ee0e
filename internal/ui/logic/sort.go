package logic

import (
	"sort"
	"strings"

	"showcase/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortByCatalog SortMode = iota
	SortByName
	SortByPrice
	SortByPopularity
)

var sortModeNames = map[SortMode]string{
	SortByCatalog:    "catalog",
	SortByName:       "name",
	SortByPrice:      "price",
	SortByPopularity: "popularity",
}

func (m SortMode) String() string {
	if name, ok := sortModeNames[m]; ok {
		return name
	}
	return "catalog"
}

// Next returns the mode that follows m in the cycle
func (m SortMode) Next() SortMode {
	return (m + 1) % SortMode(len(sortModeNames))
}

// ParseSortMode maps a mode name to its SortMode
func ParseSortMode(name string) (SortMode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for mode, n := range sortModeNames {
		if n == name {
			return mode, true
		}
	}
	return SortByCatalog, false
}

// SortProducts sorts products in place. Catalog order is left untouched;
// the other modes are stable so ties keep catalog order.
func SortProducts(products []domain.Product, mode SortMode) {
	switch mode {
	case SortByName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortByPrice:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortByPopularity:
		// Most popular first
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PopularityScore > products[j].PopularityScore
		})
	}
}
