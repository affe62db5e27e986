package service

import (
	"testing"

	"github.com/Kewen526/jx-data-api/pkg/model"
)

func TestPeriodRatesOf(t *testing.T) {
	m := model.ShopMetrics{
		ExposureUsers:       1000,
		VisitUsers:          100,
		OrderUsers:          30,
		VerifyUsers:         20,
		VerifyAfterDiscount: 500,
		PromotionCost:       90,
		PromotionClicks:     30,
		PromotionOrders:     6,
		NewCollect:          40,
		NewGoodReviews:      5,
	}

	rates := PeriodRatesOf(m)
	if rates.ExposureRate != 10.0 {
		t.Errorf("ExposureRate = %v, want 10.0", rates.ExposureRate)
	}
	if rates.OrderRate != 30.0 {
		t.Errorf("OrderRate = %v, want 30.0", rates.OrderRate)
	}
	if rates.AvgPrice != 25.0 {
		t.Errorf("AvgPrice = %v, want 25.0", rates.AvgPrice)
	}
	if rates.ClickAvgPrice != 3.0 {
		t.Errorf("ClickAvgPrice = %v, want 3.0", rates.ClickAvgPrice)
	}
	if rates.PromoOrderRate != 20.0 {
		t.Errorf("PromoOrderRate = %v, want 20.0", rates.PromoOrderRate)
	}
	if rates.CollectRate != 40.0 {
		t.Errorf("CollectRate = %v, want 40.0", rates.CollectRate)
	}
	if rates.ReviewRate != 25.0 {
		t.Errorf("ReviewRate = %v, want 25.0", rates.ReviewRate)
	}
}

func TestPeriodRatesOfZeroDenominators(t *testing.T) {
	rates := PeriodRatesOf(model.ShopMetrics{})
	if rates != (model.PeriodRates{}) {
		t.Errorf("zero metrics should yield zero rates, got %+v", rates)
	}
}

// A shop tracked in only one period still compares against a fully
// zero-filled other period.
func TestComparePeriodsOneSidedShop(t *testing.T) {
	a := model.ShopMetrics{
		ShopID:     "1001",
		ShopName:   "中心店",
		VisitUsers: 50,
		OrderUsers: 20,
	}
	b := model.ShopMetrics{ShopID: "1001"}

	comp := ComparePeriods(a, b)
	if comp.ShopName != "中心店" {
		t.Errorf("ShopName = %q, want fallback to period A", comp.ShopName)
	}
	if comp.Diff.OrderUsers != -20 {
		t.Errorf("Diff.OrderUsers = %d, want -20", comp.Diff.OrderUsers)
	}
	if comp.Diff.VisitUsers != -50 {
		t.Errorf("Diff.VisitUsers = %d, want -50", comp.Diff.VisitUsers)
	}
	if comp.RatesA.OrderRate != 40.0 {
		t.Errorf("RatesA.OrderRate = %v, want 40.0", comp.RatesA.OrderRate)
	}
	if comp.RatesB.OrderRate != 0 {
		t.Errorf("RatesB.OrderRate = %v, want 0", comp.RatesB.OrderRate)
	}
	if comp.DiffRates.OrderRate != -40.0 {
		t.Errorf("DiffRates.OrderRate = %v, want -40.0", comp.DiffRates.OrderRate)
	}
}

// Rates must be recomputed per period before diffing. Diffing raw counts and
// then dividing would give a different number whenever denominators moved.
func TestComparePeriodsRecomputesRates(t *testing.T) {
	a := model.ShopMetrics{ShopID: "1", ExposureUsers: 1000, VisitUsers: 100}
	b := model.ShopMetrics{ShopID: "1", ExposureUsers: 500, VisitUsers: 150}

	comp := ComparePeriods(a, b)
	// rate(B)=30.0, rate(A)=10.0
	if comp.DiffRates.ExposureRate != 20.0 {
		t.Errorf("DiffRates.ExposureRate = %v, want 20.0", comp.DiffRates.ExposureRate)
	}
	// the naive rate-of-diffs would be 50/-500, nothing like 20.0
	if comp.Diff.ExposureUsers != -500 || comp.Diff.VisitUsers != 50 {
		t.Errorf("raw diffs = (%d, %d), want (-500, 50)",
			comp.Diff.ExposureUsers, comp.Diff.VisitUsers)
	}
}

func TestComparePeriodsPrefersSecondPeriodIdentity(t *testing.T) {
	a := model.ShopMetrics{ShopID: "1", ShopName: "旧店名"}
	b := model.ShopMetrics{ShopID: "1", ShopName: "新店名"}

	comp := ComparePeriods(a, b)
	if comp.ShopName != "新店名" {
		t.Errorf("ShopName = %q, want 新店名", comp.ShopName)
	}
}

func TestComparePeriodsRoundsCurrencyDiffs(t *testing.T) {
	a := model.ShopMetrics{ShopID: "1", VerifyAfterDiscount: 10.111}
	b := model.ShopMetrics{ShopID: "1", VerifyAfterDiscount: 20.222}

	comp := ComparePeriods(a, b)
	if comp.Diff.VerifyAfterDiscount != 10.11 {
		t.Errorf("Diff.VerifyAfterDiscount = %v, want 10.11", comp.Diff.VerifyAfterDiscount)
	}
}
