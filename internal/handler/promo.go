package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sajilorent/rental-service/internal/model"
)

func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) CreatePromo(c echo.Context) error {
	var req model.PromoCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	promo, err := h.promoSvc.Create(ctx, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, promo)
}

func (h *Handler) GetPromos(c echo.Context) error {
	ctx := c.Request().Context()
	promos, err := h.promoSvc.List(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, promos)
}

func (h *Handler) UpdatePromo(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.PromoCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	promo, err := h.promoSvc.Update(ctx, id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, promo)
}

func (h *Handler) SetPromoActive(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.promoSvc.SetActive(ctx, id, req.IsActive); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
