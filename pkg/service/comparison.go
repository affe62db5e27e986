package service

import (
	"github.com/Kewen526/jx-data-api/pkg/model"
	"github.com/Kewen526/jx-data-api/pkg/utils"
)

// PeriodRatesOf computes every ratio metric of one period from that period's
// own sums. Zero denominators yield a rate of 0.
func PeriodRatesOf(m model.ShopMetrics) model.PeriodRates {
	return model.PeriodRates{
		ExposureRate:   utils.CalcRate(float64(m.VisitUsers), float64(m.ExposureUsers)),
		OrderRate:      utils.CalcRate(float64(m.OrderUsers), float64(m.VisitUsers)),
		AvgPrice:       utils.CalcAvgPrice(m.VerifyAfterDiscount, float64(m.VerifyUsers)),
		ClickAvgPrice:  utils.CalcAvgPrice(m.PromotionCost, float64(m.PromotionClicks)),
		PromoOrderRate: utils.CalcRate(float64(m.PromotionOrders), float64(m.PromotionClicks)),
		CollectRate:    utils.CalcRate(float64(m.NewCollect), float64(m.VisitUsers)),
		ReviewRate:     utils.CalcRate(float64(m.NewGoodReviews), float64(m.VerifyUsers)),
	}
}

// ComparePeriods derives the delta record of one shop across two periods.
// Additive fields are subtracted directly, ratio fields are recomputed per
// period first and only then diffed. Subtracting raw counts and dividing
// would distort every rate whose denominator moved between periods.
func ComparePeriods(a, b model.ShopMetrics) model.MetricsComparison {
	ratesA := PeriodRatesOf(a)
	ratesB := PeriodRatesOf(b)

	shopID := b.ShopID
	if shopID == "" {
		shopID = a.ShopID
	}
	shopName := b.ShopName
	if shopName == "" {
		shopName = a.ShopName
	}

	diff := model.ShopMetrics{
		ShopID:              shopID,
		ShopName:            shopName,
		VerifyAfterDiscount: utils.Round2(b.VerifyAfterDiscount - a.VerifyAfterDiscount),
		ExposureUsers:       b.ExposureUsers - a.ExposureUsers,
		VisitUsers:          b.VisitUsers - a.VisitUsers,
		OrderUsers:          b.OrderUsers - a.OrderUsers,
		OrderCouponCount:    b.OrderCouponCount - a.OrderCouponCount,
		VerifyUsers:         b.VerifyUsers - a.VerifyUsers,
		VerifyCouponCount:   b.VerifyCouponCount - a.VerifyCouponCount,
		OrderSaleAmount:     utils.Round2(b.OrderSaleAmount - a.OrderSaleAmount),
		VerifySaleAmount:    utils.Round2(b.VerifySaleAmount - a.VerifySaleAmount),
		CouponOrders:        b.CouponOrders - a.CouponOrders,
		PhoneClicks:         b.PhoneClicks - a.PhoneClicks,
		PromotionCost:       utils.Round2(b.PromotionCost - a.PromotionCost),
		PromotionExposure:   b.PromotionExposure - a.PromotionExposure,
		PromotionClicks:     b.PromotionClicks - a.PromotionClicks,
		PromotionOrders:     b.PromotionOrders - a.PromotionOrders,
		ViewGroupbuy:        b.ViewGroupbuy - a.ViewGroupbuy,
		ViewPhone:           b.ViewPhone - a.ViewPhone,
		ConsultUsers:        b.ConsultUsers - a.ConsultUsers,
		AddressClicks:       b.AddressClicks - a.AddressClicks,
		NewCollect:          b.NewCollect - a.NewCollect,
		NewGoodReviews:      b.NewGoodReviews - a.NewGoodReviews,
		NewReviews:          b.NewReviews - a.NewReviews,
		CheckinCount:        b.CheckinCount - a.CheckinCount,
	}

	diffRates := model.PeriodRates{
		ExposureRate:   utils.Round1(ratesB.ExposureRate - ratesA.ExposureRate),
		OrderRate:      utils.Round1(ratesB.OrderRate - ratesA.OrderRate),
		AvgPrice:       utils.Round2(ratesB.AvgPrice - ratesA.AvgPrice),
		ClickAvgPrice:  utils.Round2(ratesB.ClickAvgPrice - ratesA.ClickAvgPrice),
		PromoOrderRate: utils.Round1(ratesB.PromoOrderRate - ratesA.PromoOrderRate),
		CollectRate:    utils.Round1(ratesB.CollectRate - ratesA.CollectRate),
		ReviewRate:     utils.Round1(ratesB.ReviewRate - ratesA.ReviewRate),
	}

	return model.MetricsComparison{
		ShopID:    shopID,
		ShopName:  shopName,
		PeriodA:   a,
		PeriodB:   b,
		RatesA:    ratesA,
		RatesB:    ratesB,
		Diff:      diff,
		DiffRates: diffRates,
	}
}
