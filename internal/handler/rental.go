package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajilorent/rental-service/internal/model"
)

func (h *Handler) CreateRental(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateRentalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	rental, err := h.rentalSvc.Create(ctx, actor.UserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rental)
}

func (h *Handler) GetRentals(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()
	rentals, err := h.rentalSvc.ListByUser(ctx, actor.UserID, queryInt(c, "page"), queryInt(c, "size"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rentals)
}

func (h *Handler) GetRental(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rentalUid := c.Param("rentalUid")
	if rentalUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "rentalUid is empty")
	}
	ctx := c.Request().Context()
	rental, err := h.rentalSvc.Get(ctx, rentalUid, actor)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rental)
}

type updateRentalStatusRequest struct {
	Status model.RentalStatus `json:"status" validate:"required"`
}

func (h *Handler) UpdateRentalStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req updateRentalStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	rental, err := h.rentalSvc.UpdateStatus(ctx, c.Param("rentalUid"), actor, req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rental)
}

func (h *Handler) RenewRental(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()
	rental, err := h.rentalSvc.Renew(ctx, c.Param("rentalUid"), actor)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rental)
}

func (h *Handler) AdminRentals(c echo.Context) error {
	ctx := c.Request().Context()
	rentals, err := h.rentalSvc.AdminList(ctx, queryInt(c, "page"), queryInt(c, "size"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rentals)
}
