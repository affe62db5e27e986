package repo

import (
	"context"
	"time"

	"github.com/Kewen526/jx-data-api/pkg/model"
	"gorm.io/gorm"
)

const (
	generalQueryTimeout = 60 * time.Second
)

func NewPGRepo(db *gorm.DB) PGInterface {
	return &RepoPG{DB: db}
}

type PGInterface interface {
	// DB
	DBWithTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc)

	// Resolver
	GetAccountBlobs(ctx context.Context, accounts []string, tx *gorm.DB) ([]model.AccountBlobRow, error)

	// Aggregation
	GetDailyRows(ctx context.Context, reportDate string, shopIDs []string, tx *gorm.DB) ([]model.DailyShopRow, error)
	AggregatePeriod(ctx context.Context, start, end string, shopIDs []string, tx *gorm.DB) (map[string]model.ShopMetrics, error)

	// Daily qualification lookups
	GetCouponOrdersLast7Days(ctx context.Context, shopID, reportDate string, tx *gorm.DB) (int, error)
	GetAdOrdersToday(ctx context.Context, shopID, reportDate string, tx *gorm.DB) (int, error)
}

type RepoPG struct {
	DB *gorm.DB
}

func (r *RepoPG) GetRepo() *gorm.DB {
	return r.DB
}

func (r *RepoPG) DBWithTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, generalQueryTimeout)
	return r.DB.WithContext(ctx), cancel
}
