package excel

import (
	"fmt"

	"github.com/Kewen526/jx-data-api/pkg/model"
	"github.com/Kewen526/jx-data-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const comparativeBlockRows = 8
const comparativeCols = 20

// BuildComparativeWorkbook renders a two-period comparison: one eight-row
// block per shop on a single summary sheet. Each block carries a core-metric
// group and a promotion group, each as header/period-one/period-two/diff
// rows. Returns the saved file path.
func BuildComparativeWorkbook(periodALabel, periodBLabel string, rows []model.ComparisonRow, prefix string) (string, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", utils.SUMMARY_SHEET_NAME)

	styles, err := newStyleSet(f)
	if err != nil {
		return "", err
	}

	for i, row := range rows {
		blockStart := i*comparativeBlockRows + 1
		if err := writeComparisonBlock(f, styles, blockStart, i+1, periodALabel, periodBLabel, row); err != nil {
			return "", err
		}
	}

	widths := []float64{8, 18, 10, 10, 78, 26}
	for len(widths) < comparativeCols {
		widths = append(widths, 15)
	}
	if err := setColWidths(f, utils.SUMMARY_SHEET_NAME, widths); err != nil {
		return "", err
	}

	path := utils.GenerateTempFilename(prefix)
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func writeComparisonBlock(f *excelize.File, styles *styleSet, blockStart, seq int, periodALabel, periodBLabel string, row model.ComparisonRow) error {
	comp := row.Comparison
	a, b := comp.PeriodA, comp.PeriodB
	ratesA, ratesB := comp.RatesA, comp.RatesB
	diff, diffRates := comp.Diff, comp.DiffRates

	periodHeader := make([]interface{}, len(utils.ComparativePeriodHeaders))
	for i, h := range utils.ComparativePeriodHeaders {
		periodHeader[i] = h
	}
	promoHeader := make([]interface{}, len(utils.ComparativePromoHeaders))
	for i, h := range utils.ComparativePromoHeaders {
		promoHeader[i] = h
	}

	blockRows := [][]interface{}{
		periodHeader,
		{
			seq, row.Info.Operator, row.Info.City, row.Info.Sales, comp.ShopName, periodALabel,
			utils.Round2(a.VerifyAfterDiscount), a.ExposureUsers, a.VisitUsers, utils.FormatRate(ratesA.ExposureRate, float64(a.ExposureUsers)),
			a.OrderUsers, a.OrderCouponCount, utils.FormatRate(ratesA.OrderRate, float64(a.VisitUsers)), a.VerifyUsers, a.VerifyCouponCount,
			utils.Round2(a.OrderSaleAmount), utils.Round2(a.VerifySaleAmount), a.CouponOrders, a.PhoneClicks, ratesA.AvgPrice,
		},
		{
			"", "", "", "", "", periodBLabel,
			utils.Round2(b.VerifyAfterDiscount), b.ExposureUsers, b.VisitUsers, utils.FormatRate(ratesB.ExposureRate, float64(b.ExposureUsers)),
			b.OrderUsers, b.OrderCouponCount, utils.FormatRate(ratesB.OrderRate, float64(b.VisitUsers)), b.VerifyUsers, b.VerifyCouponCount,
			utils.Round2(b.OrderSaleAmount), utils.Round2(b.VerifySaleAmount), b.CouponOrders, b.PhoneClicks, ratesB.AvgPrice,
		},
		{
			"", "", "", "", "", utils.DIFF_ROW_LABEL,
			diff.VerifyAfterDiscount, diff.ExposureUsers, diff.VisitUsers, utils.FormatRateDiff(diffRates.ExposureRate),
			diff.OrderUsers, diff.OrderCouponCount, utils.FormatRateDiff(diffRates.OrderRate), diff.VerifyUsers, diff.VerifyCouponCount,
			diff.OrderSaleAmount, diff.VerifySaleAmount, diff.CouponOrders, diff.PhoneClicks, diffRates.AvgPrice,
		},
		promoHeader,
		{
			"", "", "", "", "", periodALabel,
			utils.Round2(a.PromotionCost), a.PromotionExposure, a.PromotionClicks, ratesA.ClickAvgPrice,
			a.PromotionOrders, utils.FormatRate(ratesA.PromoOrderRate, float64(a.PromotionClicks)), a.ViewGroupbuy, a.ViewPhone,
			a.ConsultUsers, a.AddressClicks, a.NewCollect, utils.FormatRate(ratesA.CollectRate, float64(a.VisitUsers)),
			a.NewGoodReviews, utils.FormatRate(ratesA.ReviewRate, float64(a.VerifyUsers)),
		},
		{
			"", "", "", "", "", periodBLabel,
			utils.Round2(b.PromotionCost), b.PromotionExposure, b.PromotionClicks, ratesB.ClickAvgPrice,
			b.PromotionOrders, utils.FormatRate(ratesB.PromoOrderRate, float64(b.PromotionClicks)), b.ViewGroupbuy, b.ViewPhone,
			b.ConsultUsers, b.AddressClicks, b.NewCollect, utils.FormatRate(ratesB.CollectRate, float64(b.VisitUsers)),
			b.NewGoodReviews, utils.FormatRate(ratesB.ReviewRate, float64(b.VerifyUsers)),
		},
		{
			"", "", "", "", "", utils.DIFF_ROW_LABEL,
			diff.PromotionCost, diff.PromotionExposure, diff.PromotionClicks, diffRates.ClickAvgPrice,
			diff.PromotionOrders, utils.FormatRateDiff(diffRates.PromoOrderRate), diff.ViewGroupbuy, diff.ViewPhone,
			diff.ConsultUsers, diff.AddressClicks, diff.NewCollect, utils.FormatRateDiff(diffRates.CollectRate),
			diff.NewGoodReviews, utils.FormatRateDiff(diffRates.ReviewRate),
		},
	}

	for i := range blockRows {
		if err := f.SetSheetRow(utils.SUMMARY_SHEET_NAME, fmt.Sprintf("A%d", blockStart+i), &blockRows[i]); err != nil {
			return err
		}
	}

	blockEnd := blockStart + comparativeBlockRows - 1
	if err := f.SetCellStyle(utils.SUMMARY_SHEET_NAME, cellRef(1, blockStart), cellRef(comparativeCols, blockEnd), styles.base); err != nil {
		return err
	}
	for _, headerRow := range []int{blockStart, blockStart + 4} {
		if err := f.SetCellStyle(utils.SUMMARY_SHEET_NAME, cellRef(1, headerRow), cellRef(comparativeCols, headerRow), styles.blockHeader); err != nil {
			return err
		}
	}
	for _, diffRow := range []int{blockStart + 3, blockStart + 7} {
		if err := f.SetCellStyle(utils.SUMMARY_SHEET_NAME, cellRef(6, diffRow), cellRef(comparativeCols, diffRow), styles.diffCell); err != nil {
			return err
		}
	}

	// The identity columns span the whole block below its first header row
	for col := 1; col <= 5; col++ {
		if err := f.MergeCell(utils.SUMMARY_SHEET_NAME, cellRef(col, blockStart+1), cellRef(col, blockEnd)); err != nil {
			return err
		}
	}

	return nil
}
