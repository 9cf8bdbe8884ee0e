package logic

import (
	"strconv"
	"strings"

	"showcase/internal/domain"
)

// MatchesFilter checks if a product matches the given filter query.
// Plain text matches the name; "stars:N" keeps products rated N or more
// and "under:N" keeps products cheaper than N.
func MatchesFilter(product domain.Product, filterQuery string) bool {
	query := strings.ToLower(strings.TrimSpace(filterQuery))
	if query == "" {
		return true
	}

	if rest, ok := strings.CutPrefix(query, "stars:"); ok {
		want, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return false
		}
		return StarRating(product.PopularityScore) >= want
	}
	if rest, ok := strings.CutPrefix(query, "under:"); ok {
		limit, err := strconv.ParseFloat(strings.TrimPrefix(rest, "$"), 64)
		if err != nil {
			return false
		}
		return product.Price < limit
	}

	return strings.Contains(strings.ToLower(product.Name), query)
}

// FilterProducts returns the products matching filterQuery, in order
func FilterProducts(products []domain.Product, filterQuery string) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if MatchesFilter(p, filterQuery) {
			result = append(result, p)
		}
	}
	return result
}

// StarRating converts a popularity score to a 0-5 star value
func StarRating(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 5 {
		return 5
	}
	return score
}
