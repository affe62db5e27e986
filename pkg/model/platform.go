package model

import (
	"time"

	"gorm.io/datatypes"
)

// PlatformAccount owns a set of shops. The shop list and the comparison
// regions live in externally-authored JSON blobs, either may be malformed
// for a given account.
type PlatformAccount struct {
	Account            string         `json:"account" gorm:"column:account;primaryKey"`
	StoresJSON         datatypes.JSON `json:"stores_json" gorm:"column:stores_json"`
	CompareRegionsJSON datatypes.JSON `json:"compare_regions_json" gorm:"column:compare_regions_json"`
	SalesName          string         `json:"sales_name" gorm:"column:sales_name"`
	CityName           string         `json:"city_name" gorm:"column:city_name"`
	OperatorID         int64          `json:"operator_id" gorm:"column:operator_id"`
}

func (PlatformAccount) TableName() string {
	return "platform_accounts"
}

type SaasUser struct {
	ID   int64  `json:"id" gorm:"column:id;primaryKey"`
	Name string `json:"name" gorm:"column:name"`
}

func (SaasUser) TableName() string {
	return "saas_users"
}

// KewenDailyReport is the primary per-shop-per-day metrics table.
type KewenDailyReport struct {
	ReportDate          time.Time `json:"report_date" gorm:"column:report_date;index"`
	ShopID              string    `json:"shop_id" gorm:"column:shop_id;index"`
	ShopName            string    `json:"shop_name" gorm:"column:shop_name"`
	ExposureUsers       int       `json:"exposure_users" gorm:"column:exposure_users"`
	VisitUsers          int       `json:"visit_users" gorm:"column:visit_users"`
	OrderUsers          int       `json:"order_users" gorm:"column:order_users"`
	VerifyPersonCount   int       `json:"verify_person_count" gorm:"column:verify_person_count"`
	OrderCouponCount    int       `json:"order_coupon_count" gorm:"column:order_coupon_count"`
	VerifyCouponCount   int       `json:"verify_coupon_count" gorm:"column:verify_coupon_count"`
	CouponPayOrderCount int       `json:"coupon_pay_order_count" gorm:"column:coupon_pay_order_count"`
	PromotionCost       float64   `json:"promotion_cost" gorm:"column:promotion_cost"`
	PromotionExposure   int       `json:"promotion_exposure_count" gorm:"column:promotion_exposure_count"`
	PromotionClicks     int       `json:"promotion_click_count" gorm:"column:promotion_click_count"`
	NewGoodReviewCount  int       `json:"new_good_review_count" gorm:"column:new_good_review_count"`
	NewReviewCount      int       `json:"new_review_count" gorm:"column:new_review_count"`
	NewCollectUsers     int       `json:"new_collect_users" gorm:"column:new_collect_users"`
	ConsultUsers        int       `json:"consult_users" gorm:"column:consult_users"`
	IntentRate          string    `json:"intent_rate" gorm:"column:intent_rate"`
	OrderSaleAmount     float64   `json:"order_sale_amount" gorm:"column:order_sale_amount"`
	VerifySaleAmount    float64   `json:"verify_sale_amount" gorm:"column:verify_sale_amount"`
	VerifyAfterDiscount float64   `json:"verify_after_discount" gorm:"column:verify_after_discount"`
}

func (KewenDailyReport) TableName() string {
	return "kewen_daily_report"
}

// PromotionDailyReport may legitimately have no row for a shop/day with no
// promotion activity, the joins zero-fill in that case.
type PromotionDailyReport struct {
	ReportDate       time.Time `json:"report_date" gorm:"column:report_date;index"`
	ShopID           string    `json:"shop_id" gorm:"column:shop_id;index"`
	ViewPhoneCount   int       `json:"view_phone_count" gorm:"column:view_phone_count"`
	ViewAddressCount int       `json:"view_address_count" gorm:"column:view_address_count"`
	ViewGroupbuyCnt  int       `json:"view_groupbuy_count" gorm:"column:view_groupbuy_count"`
	ClickAvgPrice    float64   `json:"click_avg_price" gorm:"column:click_avg_price"`
	OrderCount       int       `json:"order_count" gorm:"column:order_count"`
}

func (PromotionDailyReport) TableName() string {
	return "promotion_daily_report"
}

type StoreStats struct {
	Date             time.Time `json:"date" gorm:"column:date;index"`
	StoreID          string    `json:"store_id" gorm:"column:store_id;index"`
	OrderUserRank    *int      `json:"order_user_rank" gorm:"column:order_user_rank"`
	VerifyAmountRank *int      `json:"verify_amount_rank" gorm:"column:verify_amount_rank"`
	CheckinCount     int       `json:"checkin_count" gorm:"column:checkin_count"`
	AdBalance        float64   `json:"ad_balance" gorm:"column:ad_balance"`
	AdOrderCount     int       `json:"ad_order_count" gorm:"column:ad_order_count"`
	IsForceOffline   int       `json:"is_force_offline" gorm:"column:is_force_offline"`
}

func (StoreStats) TableName() string {
	return "store_stats"
}

// AccountBlobRow is the resolver's scan target, one row per account.
type AccountBlobRow struct {
	Account            string         `json:"account"`
	StoresJSON         datatypes.JSON `json:"stores_json"`
	CompareRegionsJSON datatypes.JSON `json:"compare_regions_json"`
	SalesName          string         `json:"sales_name"`
	CityName           string         `json:"city_name"`
	OperatorName       string         `json:"operator_name"`
}
