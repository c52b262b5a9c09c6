package borrow

type ProductRef struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

type CreateBorrowReq struct {
	Email   string     `json:"email" validate:"required,email"`
	Product ProductRef `json:"product" validate:"required"`
}
