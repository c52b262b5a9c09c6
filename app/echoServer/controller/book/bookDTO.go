package book

type UpsertBookReq struct {
	Image    string  `json:"image"`
	Name     string  `json:"name" validate:"required"`
	Author   string  `json:"author"`
	Category string  `json:"category"`
	Quantity int64   `json:"quantity" validate:"gte=0"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
}

type SetQuantityReq struct {
	Quantity int64 `json:"quantity" validate:"gte=0"`
}
