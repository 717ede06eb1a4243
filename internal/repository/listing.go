package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/errs"
	"github.com/sajilorent/rental-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=listing.go -destination=mocks/mock_listing.go

type ListingRepository interface {
	Create(ctx context.Context, listing model.Listing) (model.Listing, error)
	GetByUid(ctx context.Context, listingUid string) (model.Listing, error)
	GetForUpdate(ctx context.Context, tx *sqlx.Tx, listingUid string) (model.Listing, error)
	List(ctx context.Context, filter model.ListingFilter) (model.ListListings, error)
	Update(ctx context.Context, listingUid string, sellerID int64, req model.UpdateListingRequest) (model.Listing, error)
	SetStatus(ctx context.Context, listingUid string, status model.ListingStatus) (model.Listing, error)
	SetSellerStatus(ctx context.Context, listingUid string, sellerID int64, from, to model.ListingStatus) (model.Listing, error)
	Delete(ctx context.Context, listingUid string) error
	AddViews(ctx context.Context, listingUid string, delta int64) error
	AppendImage(ctx context.Context, listingUid string, sellerID int64, url string, maxImages int) (model.Listing, error)
	IncrementRents(ctx context.Context, tx *sqlx.Tx, id int64) error
}

type listingRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewListingRepository(db *sqlx.DB, log *zap.Logger) *listingRepository {
	return &listingRepository{
		db:  db,
		log: log.Named("repo"),
	}
}

var listingColumns = []string{
	"id", "listing_uid", "seller_id", "title", "description", "category",
	"price_per_month", "tenure_options", "tenure_pricing", "tags",
	"delivery_zones", "images", "status", "views", "rents", "created_at", "updated_at",
}

func (r *listingRepository) Create(ctx context.Context, listing model.Listing) (model.Listing, error) {
	q, args, err := qb.Insert(listingsTableName).
		Columns("listing_uid", "seller_id", "title", "description", "category",
			"price_per_month", "tenure_options", "tenure_pricing", "tags",
			"delivery_zones", "images", "status").
		Values(listing.ListingUid, listing.SellerID, listing.Title, listing.Description, listing.Category,
			listing.PricePerMonth, listing.TenureOptions, listing.TenurePricing, listing.Tags,
			listing.DeliveryZones, listing.Images, listing.Status).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Listing{}, err
	}
	var created model.Listing
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("CreateListing", zap.String("q", q), zap.Error(err))
		return model.Listing{}, err
	}
	return created, nil
}

func (r *listingRepository) GetByUid(ctx context.Context, listingUid string) (model.Listing, error) {
	q, args, err := qb.Select(listingColumns...).
		From(listingsTableName).
		Where(sq.Eq{"listing_uid": listingUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Listing{}, err
	}
	var listing model.Listing
	if err := r.db.GetContext(ctx, &listing, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Listing{}, errs.ErrNotFound
		}
		return model.Listing{}, err
	}
	return listing, nil
}

func (r *listingRepository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, listingUid string) (model.Listing, error) {
	q, args, err := qb.Select(listingColumns...).
		From(listingsTableName).
		Where(sq.Eq{"listing_uid": listingUid}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Listing{}, err
	}
	var listing model.Listing
	if err := tx.GetContext(ctx, &listing, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Listing{}, errs.ErrNotFound
		}
		return model.Listing{}, err
	}
	return listing, nil
}

func (r *listingRepository) List(ctx context.Context, filter model.ListingFilter) (model.ListListings, error) {
	q := qb.Select(listingColumns...).
		From(listingsTableName).
		OrderBy("created_at desc")

	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.SellerID != 0 {
		q = q.Where(sq.Eq{"seller_id": filter.SellerID})
	}
	if filter.Zone != "" {
		q = q.Where("delivery_zones @> ?", fmt.Sprintf(`["%s"]`, filter.Zone))
	}
	if filter.Search != "" {
		q = q.Where(sq.ILike{"title": "%" + filter.Search + "%"})
	}
	if filter.MinPrice > 0 {
		q = q.Where(sq.GtOrEq{"price_per_month": filter.MinPrice})
	}
	if filter.MaxPrice > 0 {
		q = q.Where(sq.LtOrEq{"price_per_month": filter.MaxPrice})
	}
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListListings{}, err
	}
	r.log.Debug("ListListings", zap.String("query", query), zap.Any("args", args))

	var items []model.Listing
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListListings{}, err
	}

	return model.ListListings{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: len(items),
		},
		Items: items,
	}, nil
}

func (r *listingRepository) Update(ctx context.Context, listingUid string, sellerID int64, req model.UpdateListingRequest) (model.Listing, error) {
	q := qb.Update(listingsTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"listing_uid": listingUid, "seller_id": sellerID})

	if req.Title != nil {
		q = q.Set("title", *req.Title)
	}
	if req.Description != nil {
		q = q.Set("description", *req.Description)
	}
	if req.PricePerMonth != nil {
		q = q.Set("price_per_month", *req.PricePerMonth)
	}
	if req.Tags != nil {
		q = q.Set("tags", model.StringList(req.Tags))
	}
	if req.DeliveryZones != nil {
		q = q.Set("delivery_zones", model.StringList(req.DeliveryZones))
	}

	query, args, err := q.Suffix("returning *").ToSql()
	if err != nil {
		return model.Listing{}, err
	}
	var listing model.Listing
	if err := r.db.GetContext(ctx, &listing, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Listing{}, errs.ErrNotFound
		}
		return model.Listing{}, err
	}
	return listing, nil
}

func (r *listingRepository) SetStatus(ctx context.Context, listingUid string, status model.ListingStatus) (model.Listing, error) {
	q, args, err := qb.Update(listingsTableName).
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"listing_uid": listingUid}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Listing{}, err
	}
	var listing model.Listing
	if err := r.db.GetContext(ctx, &listing, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Listing{}, errs.ErrNotFound
		}
		return model.Listing{}, err
	}
	return listing, nil
}

// SetSellerStatus moves a listing the seller owns from one status to
// another. The current status is part of the predicate, so a concurrent
// change makes the update miss (ErrConflict) instead of clobbering it.
func (r *listingRepository) SetSellerStatus(ctx context.Context, listingUid string, sellerID int64, from, to model.ListingStatus) (model.Listing, error) {
	q := fmt.Sprintf(`update %s
	set status = $3,
	    updated_at = now()
	where listing_uid = $1 and seller_id = $2 and status = $4
	returning *`, listingsTableName)

	var listing model.Listing
	err := r.db.GetContext(ctx, &listing, q, listingUid, sellerID, to, from)
	if err == nil {
		return listing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Listing{}, err
	}

	sel, args, err := qb.Select("1").
		From(listingsTableName).
		Where(sq.Eq{"listing_uid": listingUid, "seller_id": sellerID}).
		ToSql()
	if err != nil {
		return model.Listing{}, err
	}
	var one int
	if err := r.db.GetContext(ctx, &one, sel, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Listing{}, errs.ErrNotFound
		}
		return model.Listing{}, err
	}
	return model.Listing{}, errs.ErrConflict
}

func (r *listingRepository) Delete(ctx context.Context, listingUid string) error {
	q := fmt.Sprintf(`
	select count(*) from %s
	where listing_uid = $1 and status not in ('returned', 'cancelled')`,
		rentalsTableName)
	var open int
	if err := r.db.QueryRowContext(ctx, q, listingUid).Scan(&open); err != nil {
		return err
	}
	if open > 0 {
		return errs.ErrConflict
	}

	del, args, err := qb.Delete(listingsTableName).
		Where(sq.Eq{"listing_uid": listingUid}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, del, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *listingRepository) AddViews(ctx context.Context, listingUid string, delta int64) error {
	q := fmt.Sprintf(`update %s set views = views + $2 where listing_uid = $1`, listingsTableName)
	_, err := r.db.ExecContext(ctx, q, listingUid, delta)
	return err
}

func (r *listingRepository) AppendImage(ctx context.Context, listingUid string, sellerID int64, url string, maxImages int) (model.Listing, error) {
	q := fmt.Sprintf(`update %s
	set images = images || to_jsonb($3::text),
	    updated_at = now()
	where listing_uid = $1 and seller_id = $2 and jsonb_array_length(images) < $4
	returning *`, listingsTableName)

	var listing model.Listing
	if err := r.db.GetContext(ctx, &listing, q, listingUid, sellerID, url, maxImages); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Distinguish a full image set from a missing/foreign listing.
			var owned int
			check := fmt.Sprintf(`select count(*) from %s where listing_uid = $1 and seller_id = $2`, listingsTableName)
			if err := r.db.QueryRowContext(ctx, check, listingUid, sellerID).Scan(&owned); err != nil {
				return model.Listing{}, err
			}
			if owned == 0 {
				return model.Listing{}, errs.ErrNotFound
			}
			return model.Listing{}, errs.ErrValidation
		}
		return model.Listing{}, err
	}
	return listing, nil
}

func (r *listingRepository) IncrementRents(ctx context.Context, tx *sqlx.Tx, id int64) error {
	q := fmt.Sprintf(`update %s set rents = rents + 1 where id = $1`, listingsTableName)
	_, err := tx.ExecContext(ctx, q, id)
	return err
}
