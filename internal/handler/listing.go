package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sajilorent/rental-service/internal/model"
)

func queryInt(c echo.Context, name string) int {
	v, _ := strconv.Atoi(c.QueryParam(name))
	return v
}

func queryFloat(c echo.Context, name string) float64 {
	v, _ := strconv.ParseFloat(c.QueryParam(name), 64)
	return v
}

func (h *Handler) BrowseListings(c echo.Context) error {
	ctx := c.Request().Context()
	filter := model.ListingFilter{
		Category: c.QueryParam("category"),
		Zone:     c.QueryParam("zone"),
		Search:   c.QueryParam("search"),
		MinPrice: queryFloat(c, "minPrice"),
		MaxPrice: queryFloat(c, "maxPrice"),
		Status:   model.ListingActive,
		Page:     queryInt(c, "page"),
		Size:     queryInt(c, "size"),
	}
	listings, err := h.listingSvc.Browse(ctx, filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

func (h *Handler) GetListing(c echo.Context) error {
	ctx := c.Request().Context()
	listingUid := c.Param("listingUid")
	if listingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "listingUid is empty")
	}
	listing, err := h.listingSvc.Get(ctx, listingUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *Handler) CreateListing(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	listing, err := h.listingSvc.Create(ctx, actor.UserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, listing)
}

func (h *Handler) SellerListings(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()
	listings, err := h.listingSvc.SellerListings(ctx, actor.UserID, queryInt(c, "page"), queryInt(c, "size"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

func (h *Handler) UpdateListing(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	listingUid := c.Param("listingUid")
	var req model.UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	listing, err := h.listingSvc.Update(ctx, listingUid, actor.UserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *Handler) ToggleListingStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()
	listing, err := h.listingSvc.ToggleStatus(ctx, c.Param("listingUid"), actor.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *Handler) UploadListingImage(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer src.Close()

	ctx := c.Request().Context()
	listing, err := h.listingSvc.AddImage(ctx, c.Param("listingUid"), actor.UserID,
		file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *Handler) SellerStats(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()
	stats, err := h.statsSvc.Seller(ctx, actor.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ApproveListing(c echo.Context) error {
	ctx := c.Request().Context()
	listing, err := h.listingSvc.Approve(ctx, c.Param("listingUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *Handler) RejectListing(c echo.Context) error {
	ctx := c.Request().Context()
	listing, err := h.listingSvc.Reject(ctx, c.Param("listingUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *Handler) DeleteListing(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.listingSvc.Delete(ctx, c.Param("listingUid")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
