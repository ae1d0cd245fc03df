package interfaces

import (
	"context"

	"tienda_checkout/internal/domain/entities"
)

// ICatalogRepository abstracts the external product catalog.
//
// The checkout use case only needs price/availability resolution by id; a
// missing product comes back as a zero-value Product (ID == "").
type ICatalogRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
}
