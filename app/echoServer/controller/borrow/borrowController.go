package borrow

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/nasimrifat101/BookWaves-Server/app/echoServer/jwtx"
	"github.com/nasimrifat101/BookWaves-Server/model"
	borrowsvc "github.com/nasimrifat101/BookWaves-Server/service/borrow"
)

type Controller struct {
	Svc borrowsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /borrow
func (h *Controller) Create(c echo.Context) error {
	var req CreateBorrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	rec, err := h.Svc.Borrow(c.Request().Context(), model.BorrowRecord{
		ProductID:       req.Product.ID,
		ProductName:     req.Product.Name,
		ProductImage:    req.Product.Image,
		ProductCategory: req.Product.Category,
		Email:           req.Email,
	})
	if err != nil {
		switch borrowsvc.Code(err) {
		case borrowsvc.ErrAlreadyBorrowed:
			return c.JSON(http.StatusConflict, echo.Map{"message": "user already borrowed this book"})
		case borrowsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("borrow create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, rec)
}

// GET /borrowing?email=  (cookie-JWT guarded)
//
// The session identity must match the requested email; this is an
// ownership check at the handler, not row-level security.
func (h *Controller) ListByEmail(c echo.Context) error {
	claimEmail, err := jwtx.EmailFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}
	email := c.QueryParam("email")
	if claimEmail != email {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden access"})
	}

	rows, err := h.Svc.ListForEmail(c.Request().Context(), email)
	if err != nil {
		h.Log.Error("borrow list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// DELETE /borrowing/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		switch borrowsvc.Code(err) {
		case borrowsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "borrow record not found"})
		default:
			h.Log.Error("borrow delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
