package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajilorent/rental-service/internal/model"
)

func (h *Handler) GetCart(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()
	cart, err := h.cartSvc.Get(ctx, actor.UserID, c.QueryParam("promo"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *Handler) UpsertCartItem(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.cartSvc.Upsert(ctx, actor.UserID, req); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) RemoveCartItem(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()
	if err := h.cartSvc.Remove(ctx, actor.UserID, c.Param("listingUid")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type applyPromoRequest struct {
	Code string `json:"code" validate:"required"`
}

func (h *Handler) ApplyPromo(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req applyPromoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	totals, err := h.cartSvc.ApplyPromo(ctx, actor.UserID, req.Code)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, totals)
}

func (h *Handler) ToggleFavorite(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()
	favorited, err := h.favoriteSvc.Toggle(ctx, actor.UserID, c.Param("listingUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"favorited": favorited})
}

func (h *Handler) GetFavorites(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()
	favorites, err := h.favoriteSvc.ListByUser(ctx, actor.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, favorites)
}
