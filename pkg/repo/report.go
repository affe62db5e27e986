package repo

import (
	"context"
	"net/http"
	"time"

	"github.com/Kewen526/jx-data-api/pkg/model"
	"github.com/Kewen526/jx-data-api/pkg/utils"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"
)

func (r *RepoPG) GetAccountBlobs(ctx context.Context, accounts []string, tx *gorm.DB) (rs []model.AccountBlobRow, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetAccountBlobs")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := ""
	query += "SELECT pa.account, pa.stores_json, pa.compare_regions_json, " +
		" pa.sales_name, pa.city_name, su.name AS operator_name " +
		" FROM platform_accounts pa " +
		" LEFT JOIN saas_users su ON pa.operator_id = su.id "

	if len(accounts) > 0 {
		query += " WHERE pa.account IN ? "
		if err = tx.Raw(query, accounts).Scan(&rs).Error; err != nil {
			log.WithError(err).Error("error_500: get account blobs in GetAccountBlobs - RepoPG")
			return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
		}
		return rs, nil
	}

	if err = tx.Raw(query).Scan(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get account blobs in GetAccountBlobs - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	return rs, nil
}

func (r *RepoPG) GetDailyRows(ctx context.Context, reportDate string, shopIDs []string, tx *gorm.DB) (rs []model.DailyShopRow, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetDailyRows")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := ""
	query += "SELECT k.shop_id, k.shop_name, " +
		" COALESCE(k.exposure_users, 0) AS exposure_users, " +
		" COALESCE(k.visit_users, 0) AS visit_users, " +
		" COALESCE(k.order_users, 0) AS order_users, " +
		" COALESCE(k.verify_person_count, 0) AS verify_users, " +
		" COALESCE(k.order_coupon_count, 0) AS order_coupon_count, " +
		" COALESCE(k.verify_coupon_count, 0) AS verify_coupon_count, " +
		" COALESCE(k.promotion_cost, 0) AS promotion_cost, " +
		" COALESCE(k.new_good_review_count, 0) AS new_good_review_count, " +
		" COALESCE(k.new_review_count, 0) AS new_review_count, " +
		" COALESCE(k.new_collect_users, 0) AS new_collect_users, " +
		" COALESCE(k.consult_users, 0) AS consult_users, " +
		" COALESCE(k.intent_rate, '0%') AS intent_rate, " +
		" COALESCE(k.order_sale_amount, 0) AS order_sale_amount, " +
		" COALESCE(k.verify_sale_amount, 0) AS verify_sale_amount, " +
		" COALESCE(k.verify_after_discount, 0) AS verify_after_discount, " +
		" COALESCE(p.view_phone_count, 0) AS phone_clicks, " +
		" COALESCE(p.view_address_count, 0) AS address_clicks, " +
		" COALESCE(p.click_avg_price, 0) AS click_avg_price, " +
		" COALESCE(p.order_count, 0) AS promotion_order_count, " +
		" s.order_user_rank, s.verify_amount_rank, " +
		" COALESCE(s.checkin_count, 0) AS checkin_count, " +
		" COALESCE(s.ad_balance, 0) AS ad_balance, " +
		" COALESCE(s.ad_order_count, 0) AS ad_order_count, " +
		" COALESCE(s.is_force_offline, 0) AS is_force_offline " +
		" FROM kewen_daily_report k " +
		" LEFT JOIN promotion_daily_report p ON k.shop_id = p.shop_id AND k.report_date = p.report_date " +
		" LEFT JOIN store_stats s ON k.shop_id = s.store_id AND k.report_date = s.date " +
		" WHERE k.report_date = ? "

	if len(shopIDs) > 0 {
		query += " AND k.shop_id IN ? "
		query += " ORDER BY k.shop_id "
		if err = tx.Raw(query, reportDate, shopIDs).Scan(&rs).Error; err != nil {
			log.WithError(err).Error("error_500: get daily rows in GetDailyRows - RepoPG")
			return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
		}
		return rs, nil
	}

	query += " ORDER BY k.shop_id "
	if err = tx.Raw(query, reportDate).Scan(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get daily rows in GetDailyRows - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	return rs, nil
}

func (r *RepoPG) AggregatePeriod(ctx context.Context, start, end string, shopIDs []string, tx *gorm.DB) (map[string]model.ShopMetrics, error) {
	log := logger.WithCtx(ctx, "RepoPG.AggregatePeriod")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := ""
	query += "SELECT k.shop_id, k.shop_name, " +
		" COALESCE(SUM(k.verify_after_discount), 0) AS verify_after_discount, " +
		" COALESCE(SUM(k.exposure_users), 0) AS exposure_users, " +
		" COALESCE(SUM(k.visit_users), 0) AS visit_users, " +
		" COALESCE(SUM(k.order_users), 0) AS order_users, " +
		" COALESCE(SUM(k.order_coupon_count), 0) AS order_coupon_count, " +
		" COALESCE(SUM(k.verify_person_count), 0) AS verify_users, " +
		" COALESCE(SUM(k.verify_coupon_count), 0) AS verify_coupon_count, " +
		" COALESCE(SUM(k.order_sale_amount), 0) AS order_sale_amount, " +
		" COALESCE(SUM(k.verify_sale_amount), 0) AS verify_sale_amount, " +
		" COALESCE(SUM(k.coupon_pay_order_count), 0) AS coupon_orders, " +
		" COALESCE(SUM(p.view_phone_count), 0) AS phone_clicks, " +
		" COALESCE(SUM(k.promotion_cost), 0) AS promotion_cost, " +
		" COALESCE(SUM(k.promotion_exposure_count), 0) AS promotion_exposure, " +
		" COALESCE(SUM(k.promotion_click_count), 0) AS promotion_clicks, " +
		" COALESCE(SUM(p.order_count), 0) AS promotion_orders, " +
		" COALESCE(SUM(p.view_groupbuy_count), 0) AS view_groupbuy, " +
		" COALESCE(SUM(p.view_phone_count), 0) AS view_phone, " +
		" COALESCE(SUM(k.consult_users), 0) AS consult_users, " +
		" COALESCE(SUM(p.view_address_count), 0) AS address_clicks, " +
		" COALESCE(SUM(k.new_collect_users), 0) AS new_collect, " +
		" COALESCE(SUM(k.new_good_review_count), 0) AS new_good_reviews, " +
		" COALESCE(SUM(k.new_review_count), 0) AS new_reviews, " +
		" COALESCE(SUM(s.checkin_count), 0) AS checkin_count " +
		" FROM kewen_daily_report k " +
		" LEFT JOIN promotion_daily_report p ON k.shop_id = p.shop_id AND k.report_date = p.report_date " +
		" LEFT JOIN store_stats s ON k.shop_id = s.store_id AND k.report_date = s.date " +
		" WHERE k.report_date BETWEEN ? AND ? "

	var rows []model.ShopMetrics
	if len(shopIDs) > 0 {
		query += " AND k.shop_id IN ? "
		query += " GROUP BY k.shop_id, k.shop_name ORDER BY k.shop_id "
		if err := tx.Raw(query, start, end, shopIDs).Scan(&rows).Error; err != nil {
			log.WithError(err).Error("error_500: aggregate period in AggregatePeriod - RepoPG")
			return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
		}
	} else {
		query += " GROUP BY k.shop_id, k.shop_name ORDER BY k.shop_id "
		if err := tx.Raw(query, start, end).Scan(&rows).Error; err != nil {
			log.WithError(err).Error("error_500: aggregate period in AggregatePeriod - RepoPG")
			return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
		}
	}

	rs := make(map[string]model.ShopMetrics, len(rows))
	for _, row := range rows {
		rs[row.ShopID] = row
	}
	return rs, nil
}

func (r *RepoPG) GetCouponOrdersLast7Days(ctx context.Context, shopID, reportDate string, tx *gorm.DB) (int, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetCouponOrdersLast7Days")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	endDate, err := time.Parse(utils.TIME_FORMAT_DATE, reportDate)
	if err != nil {
		log.WithError(err).Error("error_400: invalid report date in GetCouponOrdersLast7Days - RepoPG")
		return 0, ginext.NewError(http.StatusBadRequest, utils.MessageError()[http.StatusBadRequest])
	}
	startDate := endDate.AddDate(0, 0, -6)

	query := ""
	query += "SELECT COALESCE(SUM(coupon_pay_order_count), 0) AS total " +
		" FROM kewen_daily_report " +
		" WHERE shop_id = ? AND report_date BETWEEN ? AND ? "

	var data struct {
		Total int `json:"total"`
	}
	if err := tx.Raw(query, shopID, startDate.Format(utils.TIME_FORMAT_DATE), reportDate).Scan(&data).Error; err != nil {
		log.WithError(err).Error("error_500: get coupon orders in GetCouponOrdersLast7Days - RepoPG")
		return 0, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return data.Total, nil
}

func (r *RepoPG) GetAdOrdersToday(ctx context.Context, shopID, reportDate string, tx *gorm.DB) (int, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetAdOrdersToday")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := ""
	query += "SELECT COALESCE(ad_order_count, 0) AS total " +
		" FROM store_stats " +
		" WHERE store_id = ? AND date = ? "

	var data struct {
		Total int `json:"total"`
	}
	if err := tx.Raw(query, shopID, reportDate).Scan(&data).Error; err != nil {
		log.WithError(err).Error("error_500: get ad orders in GetAdOrdersToday - RepoPG")
		return 0, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return data.Total, nil
}
