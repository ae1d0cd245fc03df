package entities

// Product is the catalog entry consulted at checkout time.
//
// The catalog itself is owned by another service; this core only reads it to
// price carts server-side. Client-supplied prices are never trusted.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Available bool    `json:"available"`
}
