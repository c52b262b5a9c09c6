// model/brand.go
package model

// Brand is a category card shown on the home page. Read-only from this
// service's perspective; rows are seeded at schema setup.
type Brand struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
