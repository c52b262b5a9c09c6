package brand

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	catalogsvc "github.com/nasimrifat101/BookWaves-Server/service/catalog"
)

type Controller struct {
	Svc catalogsvc.Service
	Log *slog.Logger
}

// GET /brands
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.Brands(c.Request().Context())
	if err != nil {
		h.Log.Error("brand list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
