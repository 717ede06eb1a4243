package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajilorent/rental-service/internal/model"
)

func (h *Handler) SubmitStudentVerification(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.StudentVerificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	sv, err := h.studentSvc.Submit(ctx, actor.UserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, sv)
}

func (h *Handler) GetStudentVerification(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()
	sv, err := h.studentSvc.StatusFor(ctx, actor.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sv)
}

func (h *Handler) PendingStudentVerifications(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.studentSvc.ListPending(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

type reviewStudentRequest struct {
	Status model.StudentVerificationStatus `json:"status" validate:"required,oneof=approved rejected"`
}

func (h *Handler) ReviewStudentVerification(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req reviewStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	sv, err := h.studentSvc.Review(ctx, id, req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sv)
}
