// model/book.go
package model

type Book struct {
	ID       int64   `json:"id"`
	Image    string  `json:"image"`
	Name     string  `json:"name"`
	Author   string  `json:"author"`
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Rating   float64 `json:"rating"`
}
