package session

type IssueTokenReq struct {
	Email string `json:"email" validate:"required,email"`
}
