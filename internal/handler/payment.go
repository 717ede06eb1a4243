package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ConfirmPayment(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req struct {
		GatewayRef string `json:"gatewayRef"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	payment, err := h.paymentSvc.Confirm(ctx, c.Param("paymentUid"), actor.UserID, req.GatewayRef)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, payment)
}

func (h *Handler) GetPayments(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()
	payments, err := h.paymentSvc.ListByUser(ctx, actor.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, payments)
}
