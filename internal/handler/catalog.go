package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"golden-catering/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListPackages(c echo.Context) error {
	ctx := c.Request().Context()

	packages, err := h.catalogService.ListPackages(ctx)
	if err != nil {
		slog.Error("listing packages failed", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching packages"})
	}

	return c.JSON(http.StatusOK, packages)
}

func (h *CatalogHandler) GetPackage(c echo.Context) error {
	ctx := c.Request().Context()

	packageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Package not found"})
	}

	pkg, err := h.catalogService.GetPackage(ctx, packageID)
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Package not found"})
		}
		slog.Error("fetching package failed", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching package"})
	}

	return c.JSON(http.StatusOK, pkg)
}

func (h *CatalogHandler) ListMenuItems(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.catalogService.ListMenuItems(ctx)
	if err != nil {
		slog.Error("listing menu items failed", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching menu items"})
	}

	return c.JSON(http.StatusOK, items)
}
