package model

// ShopMetrics holds the per-shop sums of one reporting period. Every field
// defaults to zero when the underlying rows are absent, a shop seen in only
// one period still gets a fully zero-filled record for the other.
type ShopMetrics struct {
	ShopID              string  `json:"shop_id"`
	ShopName            string  `json:"shop_name"`
	VerifyAfterDiscount float64 `json:"verify_after_discount"`
	ExposureUsers       int     `json:"exposure_users"`
	VisitUsers          int     `json:"visit_users"`
	OrderUsers          int     `json:"order_users"`
	OrderCouponCount    int     `json:"order_coupon_count"`
	VerifyUsers         int     `json:"verify_users"`
	VerifyCouponCount   int     `json:"verify_coupon_count"`
	OrderSaleAmount     float64 `json:"order_sale_amount"`
	VerifySaleAmount    float64 `json:"verify_sale_amount"`
	CouponOrders        int     `json:"coupon_orders"`
	PhoneClicks         int     `json:"phone_clicks"`
	PromotionCost       float64 `json:"promotion_cost"`
	PromotionExposure   int     `json:"promotion_exposure"`
	PromotionClicks     int     `json:"promotion_clicks"`
	PromotionOrders     int     `json:"promotion_orders"`
	ViewGroupbuy        int     `json:"view_groupbuy"`
	ViewPhone           int     `json:"view_phone"`
	ConsultUsers        int     `json:"consult_users"`
	AddressClicks       int     `json:"address_clicks"`
	NewCollect          int     `json:"new_collect"`
	NewGoodReviews      int     `json:"new_good_reviews"`
	NewReviews          int     `json:"new_reviews"`
	CheckinCount        int     `json:"checkin_count"`
}

// PeriodRates are the ratio metrics of a single period. Each one is computed
// from that period's own sums before any diffing happens.
type PeriodRates struct {
	ExposureRate   float64 `json:"exposure_rate"`    // visit / exposure
	OrderRate      float64 `json:"order_rate"`       // order / visit
	AvgPrice       float64 `json:"avg_price"`        // verify_after_discount / verify_users
	ClickAvgPrice  float64 `json:"click_avg_price"`  // promotion_cost / promotion_clicks
	PromoOrderRate float64 `json:"promo_order_rate"` // promotion_orders / promotion_clicks
	CollectRate    float64 `json:"collect_rate"`     // new_collect / visit
	ReviewRate     float64 `json:"review_rate"`      // new_good_reviews / verify_users
}

// MetricsComparison pairs one shop's two periods with the derived deltas.
// Diff carries absolute deltas of the additive fields; DiffRates carries
// rate deltas computed as rate(B) - rate(A), never from diffed raw counts.
type MetricsComparison struct {
	ShopID    string      `json:"shop_id"`
	ShopName  string      `json:"shop_name"`
	PeriodA   ShopMetrics `json:"period_a"`
	PeriodB   ShopMetrics `json:"period_b"`
	RatesA    PeriodRates `json:"rates_a"`
	RatesB    PeriodRates `json:"rates_b"`
	Diff      ShopMetrics `json:"diff"`
	DiffRates PeriodRates `json:"diff_rates"`
}

// ShopInfo is the account-level enrichment for one shop.
type ShopInfo struct {
	Operator string `json:"operator"`
	Sales    string `json:"sales"`
	City     string `json:"city"`
}

// RegionInfo is the comparison-region enrichment for one shop.
type RegionInfo struct {
	City     string `json:"city"`
	District string `json:"district"`
	Business string `json:"business"`
}

// DailyShopRow is one shop's row of the daily report query. Rank columns are
// nullable, absence renders as a placeholder.
type DailyShopRow struct {
	ShopID              string  `json:"shop_id"`
	ShopName            string  `json:"shop_name"`
	ExposureUsers       int     `json:"exposure_users"`
	VisitUsers          int     `json:"visit_users"`
	OrderUsers          int     `json:"order_users"`
	VerifyUsers         int     `json:"verify_users"`
	OrderCouponCount    int     `json:"order_coupon_count"`
	VerifyCouponCount   int     `json:"verify_coupon_count"`
	PromotionCost       float64 `json:"promotion_cost"`
	NewGoodReviewCount  int     `json:"new_good_review_count"`
	NewReviewCount      int     `json:"new_review_count"`
	NewCollectUsers     int     `json:"new_collect_users"`
	ConsultUsers        int     `json:"consult_users"`
	IntentRate          string  `json:"intent_rate"`
	OrderSaleAmount     float64 `json:"order_sale_amount"`
	VerifySaleAmount    float64 `json:"verify_sale_amount"`
	VerifyAfterDiscount float64 `json:"verify_after_discount"`
	PhoneClicks         int     `json:"phone_clicks"`
	AddressClicks       int     `json:"address_clicks"`
	ClickAvgPrice       float64 `json:"click_avg_price"`
	PromotionOrderCount int     `json:"promotion_order_count"`
	OrderUserRank       *int    `json:"order_user_rank"`
	VerifyAmountRank    *int    `json:"verify_amount_rank"`
	CheckinCount        int     `json:"checkin_count"`
	AdBalance           float64 `json:"ad_balance"`
	AdOrderCount        int     `json:"ad_order_count"`
	IsForceOffline      int     `json:"is_force_offline"`
}

// DailyShopDetail bundles one daily row with its enrichment and the
// supplementary qualification lookups.
type DailyShopDetail struct {
	Row         DailyShopRow `json:"row"`
	Info        ShopInfo     `json:"info"`
	Region      RegionInfo   `json:"region"`
	Coupon7Days int          `json:"coupon_7days"`
	AdToday     int          `json:"ad_today"`
}

// ComparisonRow is one shop's block of the comparative summary sheet.
type ComparisonRow struct {
	Comparison MetricsComparison `json:"comparison"`
	Info       ShopInfo          `json:"info"`
}
