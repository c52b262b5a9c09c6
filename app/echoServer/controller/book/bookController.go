package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/nasimrifat101/BookWaves-Server/model"
	catalogsvc "github.com/nasimrifat101/BookWaves-Server/service/catalog"
)

type Controller struct {
	Svc catalogsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

// POST /books
func (h *Controller) Create(c echo.Context) error {
	var req UpsertBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	id, err := h.Svc.Create(c.Request().Context(), model.Book{
		Image:    req.Image,
		Name:     req.Name,
		Author:   req.Author,
		Category: req.Category,
		Quantity: req.Quantity,
		Rating:   req.Rating,
	})
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		}
		h.Log.Error("book create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// PUT /book/:id
//
// Replaces the allow-listed field set; fields missing from the body are
// written as zero values, matching a full document replace.
func (h *Controller) Update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpsertBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	n, err := h.Svc.Update(c.Request().Context(), id, model.Book{
		Image:    req.Image,
		Name:     req.Name,
		Author:   req.Author,
		Category: req.Category,
		Quantity: req.Quantity,
		Rating:   req.Rating,
	})
	if err != nil {
		h.Log.Error("book update error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"modified": n})
}

// PUT /book/update/:id
func (h *Controller) SetQuantity(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req SetQuantityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}
	err := h.Svc.SetQuantity(c.Request().Context(), id, req.Quantity)
	if err != nil {
		switch catalogsvc.Code(err) {
		case catalogsvc.ErrUnavailable:
			// The write has already happened; zero stock is reported to
			// the caller as a user-facing condition.
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "book unavailable"})
		case catalogsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("quantity update error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
}

// DELETE /delete/book/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	n, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("book delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": n})
}

// GET /books and GET /book/:category
func (h *Controller) List(c echo.Context) error {
	category := c.Param("category")
	rows, err := h.Svc.List(c.Request().Context(), category)
	if err != nil {
		h.Log.Error("book list error", "err", err, "category", category)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /book/detail/:id
func (h *Controller) Detail(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		h.Log.Error("book detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}

// PUT /books/inc/:productId
func (h *Controller) Increment(c echo.Context) error {
	id, ok := parseID(c, "productId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Increment(c.Request().Context(), id)
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		}
		h.Log.Error("quantity increment error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}
