package utils

const TIME_FORMAT_DATE = "2006-01-02"
const TIME_FORMAT_FILE_TAG = "20060102150405"
const TIME_FORMAT_PERIOD = "2006.01.02"

// Report kinds, also the generated filename prefixes
const (
	REPORT_KIND_DAILY   = "日报"
	REPORT_KIND_WEEKLY  = "周报"
	REPORT_KIND_MONTHLY = "月报"
	REPORT_KIND_CUSTOM  = "自定义报表"
)

const TOPIC_REPORT_GENERATED = "jx-data-api:report_generated"

const SUMMARY_SHEET_NAME = "汇总"
const DEFAULT_SHEET_NAME = "Sheet"

// Excel sheet names are capped at 31 chars; colliding names get truncated to
// 28 and suffixed
const (
	MAX_SHEET_NAME_LEN       = 31
	TRUNCATED_SHEET_NAME_LEN = 28
)

// Qualification thresholds of the daily detail sheet
const (
	REVIEW_RATE_QUALIFIED  = 30.0
	COLLECT_RATE_QUALIFIED = 40.0
	COUPON_7DAYS_QUALIFIED = 10
	AD_ORDERS_QUALIFIED    = 1
)

const (
	QUALIFIED     = "达标"
	NOT_QUALIFIED = "未达标"
)

// Workbook colors
const (
	COLOR_HEADER_FILL = "D3D3D3"
	COLOR_BLOCK_FILL  = "CCFFCC"
	COLOR_RED         = "FF0000"
	COLOR_GREEN       = "008000"
	COLOR_SECTION     = "0066CC"
)

const RANK_PLACEHOLDER = "--"
const DIFF_ROW_LABEL = "差值"
const PERIOD_COLUMN_LABEL = "数据周期"
const UNKNOWN_SHOP_NAME = "未知门店"

var WeekdayNames = []string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

var DailySummaryHeaders = []string{
	"星期", "日期", "序号", "运营", "城市", "销售", "门店",
	"曝光人数", "访问人数", "下单人数", "核销人数", "下单券数", "核销券数",
	"电话点击", "地址点击", "推广通消耗", "好评", "意向转化率",
	"下单售价金额", "核销售价金额", "优惠后核销金额",
	"下单人数商圈排名", "核销金额商圈排名",
}

var DailySummaryWidths = []float64{
	6, 8, 5, 12, 8, 8, 46, 10, 10, 10, 10, 10, 10, 10, 10, 12, 8, 12, 12, 12, 12, 14, 14,
}

var ComparativePeriodHeaders = []string{
	"序号", "运营", "城市", "销售", "门店", "数据周期",
	"优惠后核销额", "曝光人数", "访问人数", "曝光访问转化率", "下单人数", "下单券数",
	"下单转化率", "核销人数", "核销券数", "下单售价金额", "核销售价金额", "优惠码订单",
	"电话点击", "客单价",
}

var ComparativePromoHeaders = []string{
	"", "", "", "", "", "数据周期",
	"推广通花费", "推广通曝光", "推广通点击", "推广通点击均价", "推广通订单量",
	"推广通下单转化率", "推广通查看团购", "推广通查看电话", "在线咨询", "地址点击",
	"门店收藏", "收藏率", "新增好评数", "留评率",
}
