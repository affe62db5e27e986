package excel

import (
	"fmt"
	"time"

	"github.com/Kewen526/jx-data-api/pkg/model"
	"github.com/Kewen526/jx-data-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// BuildDailyWorkbook renders the daily report: one summary sheet with a row
// per shop plus one detail sheet per shop. Returns the saved file path.
func BuildDailyWorkbook(reportDate time.Time, details []model.DailyShopDetail, prefix string) (string, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", utils.SUMMARY_SHEET_NAME)

	styles, err := newStyleSet(f)
	if err != nil {
		return "", err
	}

	weekday := utils.WeekdayNames[(int(reportDate.Weekday())+6)%7]
	dateLabel := reportDate.Format("01月02日")
	dateShort := reportDate.Format("01/02")

	header := make([]interface{}, len(utils.DailySummaryHeaders))
	for i, h := range utils.DailySummaryHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(utils.SUMMARY_SHEET_NAME, "A1", &header); err != nil {
		return "", err
	}

	namer := newSheetNamer()
	for i, d := range details {
		shopName := d.Row.ShopName
		if shopName == "" {
			shopName = fmt.Sprintf("门店%s", d.Row.ShopID)
		}

		summaryRow := []interface{}{
			weekday, dateLabel, i + 1, d.Info.Operator, d.Info.City, d.Info.Sales, shopName,
			d.Row.ExposureUsers, d.Row.VisitUsers, d.Row.OrderUsers, d.Row.VerifyUsers,
			d.Row.OrderCouponCount, d.Row.VerifyCouponCount,
			d.Row.PhoneClicks, d.Row.AddressClicks,
			utils.Round2(d.Row.PromotionCost), d.Row.NewGoodReviewCount, d.Row.IntentRate,
			utils.Round2(d.Row.OrderSaleAmount), utils.Round2(d.Row.VerifySaleAmount),
			utils.Round2(d.Row.VerifyAfterDiscount),
			utils.FormatRank(d.Row.OrderUserRank), utils.FormatRank(d.Row.VerifyAmountRank),
		}
		if err := f.SetSheetRow(utils.SUMMARY_SHEET_NAME, fmt.Sprintf("A%d", i+2), &summaryRow); err != nil {
			return "", err
		}

		sheetName := namer.assign(shopName)
		f.NewSheet(sheetName)
		if err := writeDailyDetail(f, styles, sheetName, shopName, dateShort, d); err != nil {
			return "", err
		}
	}

	if err := setColWidths(f, utils.SUMMARY_SHEET_NAME, utils.DailySummaryWidths); err != nil {
		return "", err
	}
	lastCol := len(utils.DailySummaryHeaders)
	if err := f.SetCellStyle(utils.SUMMARY_SHEET_NAME, "A1", cellRef(lastCol, 1), styles.header); err != nil {
		return "", err
	}
	if len(details) > 0 {
		if err := f.SetCellStyle(utils.SUMMARY_SHEET_NAME, "A2", cellRef(lastCol, len(details)+1), styles.base); err != nil {
			return "", err
		}
	}

	path := utils.GenerateTempFilename(prefix)
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func writeDailyDetail(f *excelize.File, styles *styleSet, sheet, shopName, dateShort string, d model.DailyShopDetail) error {
	row := d.Row

	reviewRate := 0.0
	if row.VerifyUsers > 0 {
		reviewRate = float64(row.NewReviewCount) / float64(row.VerifyUsers) * 100
	}
	reviewQualified := qualify(reviewRate >= utils.REVIEW_RATE_QUALIFIED)

	collectRate := 0.0
	if row.OrderUsers > 0 {
		collectRate = float64(row.NewCollectUsers) / float64(row.OrderUsers) * 100
	}
	collectQualified := qualify(collectRate >= utils.COLLECT_RATE_QUALIFIED)

	couponQualified := qualify(d.Coupon7Days >= utils.COUPON_7DAYS_QUALIFIED)
	adQualified := qualify(d.AdToday >= utils.AD_ORDERS_QUALIFIED)

	statusInfo := "今天邮件已查看，无违规无异常。"
	if row.IsForceOffline > 0 {
		statusInfo = fmt.Sprintf("警告：有%d个团单被强制下线！", row.IsForceOffline)
	}

	regionDisplay := d.Info.City
	if d.Region.Business != "" {
		regionDisplay = fmt.Sprintf("%s | %s | %s", d.Region.City, d.Region.District, d.Region.Business)
	}

	rows := [][]interface{}{
		{shopName, statusInfo, ""},
		{"数据报表", fmt.Sprintf("日期(%s)", dateShort), ""},
		{"【美团点评广告结果数据】", "", ""},
		{"曝光人数：", row.ExposureUsers, ""},
		{"访问人数：", row.VisitUsers, ""},
		{"下单人数：", row.OrderUsers, ""},
		{"下单券数：", row.OrderCouponCount, ""},
		{"核销人数：", row.VerifyUsers, ""},
		{"核销券数：", row.VerifyCouponCount, ""},
		{"电话点击：", row.PhoneClicks, ""},
		{"地址点击：", row.AddressClicks, ""},
		{"在线咨询：", row.ConsultUsers, ""},
		{"", "", ""},
		{"【店内干预数据】", "", ""},
		{"新增收藏：", row.NewCollectUsers, ""},
		{"新增打卡：", row.CheckinCount, ""},
		{"新增评价：", row.NewReviewCount, ""},
		{"", "", ""},
		{"【推广通数据】", "", ""},
		{"推广通消耗：", utils.Round2(row.PromotionCost), ""},
		{"推广通点击单价：", utils.Round2(row.ClickAvgPrice), ""},
		{"推广通下单量：", row.PromotionOrderCount, ""},
		{"推广通余额：", utils.Round2(row.AdBalance), ""},
		{"", "", ""},
		{"留评率（30%达标）：", fmt.Sprintf("%.1f%%", reviewRate), reviewQualified},
		{"收藏率（40%达标）：", fmt.Sprintf("%.1f%%", collectRate), collectQualified},
		{"近7天优惠码订单是否达标：", d.Coupon7Days, couponQualified},
		{"广告单：", fmt.Sprintf("当天%d单", d.AdToday), adQualified},
		{"", "", ""},
		{"下单售价金额：", utils.Round2(row.OrderSaleAmount), ""},
		{"核销售价金额：", utils.Round2(row.VerifySaleAmount), ""},
		{"下单人数商圈排名：", utils.FormatRankWithRegion(regionDisplay, row.OrderUserRank), ""},
		{"核销金额商圈排名：", utils.FormatRankWithRegion(regionDisplay, row.VerifyAmountRank), ""},
		{"", "", ""},
		{"团单被强制下线数量：", row.IsForceOffline, ""},
		{"", "", ""},
		{"运营：", d.Info.Operator, ""},
		{"销售：", d.Info.Sales, ""},
		{"城市：", d.Info.City, ""},
	}

	for i := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &rows[i]); err != nil {
			return err
		}
	}

	for col, width := range map[string]float64{"A": 40, "B": 30, "C": 15} {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheet, "A1", fmt.Sprintf("C%d", len(rows)), styles.base); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", styles.title); err != nil {
		return err
	}
	banner := styles.bannerGreen
	if row.IsForceOffline > 0 {
		banner = styles.bannerRed
	}
	if err := f.SetCellStyle(sheet, "B1", "B1", banner); err != nil {
		return err
	}
	for _, r := range []int{3, 14, 19} {
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", r), fmt.Sprintf("A%d", r), styles.section); err != nil {
			return err
		}
	}
	for r, qualified := range map[int]string{25: reviewQualified, 26: collectQualified, 27: couponQualified, 28: adQualified} {
		style := styles.qualBad
		if qualified == utils.QUALIFIED {
			style = styles.qualOK
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("C%d", r), fmt.Sprintf("C%d", r), style); err != nil {
			return err
		}
	}

	return nil
}

func qualify(ok bool) string {
	if ok {
		return utils.QUALIFIED
	}
	return utils.NOT_QUALIFIED
}
