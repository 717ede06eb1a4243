package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajilorent/rental-service/internal/model"
)

// AdminListings lists listings in any status, optionally filtered.
func (h *Handler) AdminListings(c echo.Context) error {
	ctx := c.Request().Context()
	filter := model.ListingFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Status:   model.ListingStatus(c.QueryParam("status")),
		Page:     queryInt(c, "page"),
		Size:     queryInt(c, "size"),
	}
	listings, err := h.listingSvc.Browse(ctx, filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

func (h *Handler) AdminUsers(c echo.Context) error {
	ctx := c.Request().Context()
	users, err := h.adminSvc.ListUsers(ctx, queryInt(c, "page"), queryInt(c, "size"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}
