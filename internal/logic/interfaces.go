package logic

import "showcase/internal/domain"

// ProductStore provides access to the loaded catalog
type ProductStore interface {
	GetProduct(id int) *domain.Product
	GetAllProducts() []domain.Product
	ReplaceProducts(products []domain.Product)
	Len() int
}
