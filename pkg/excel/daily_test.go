package excel

import (
	"testing"

	"github.com/Kewen526/jx-data-api/conf"
	"github.com/Kewen526/jx-data-api/pkg/model"
	"github.com/Kewen526/jx-data-api/pkg/utils"
	"github.com/Kewen526/jx-data-api/pkg/valid"
	"github.com/xuri/excelize/v2"
)

func setTempDir(t *testing.T) {
	t.Helper()
	t.Setenv("TEMP_DIR", t.TempDir())
	conf.SetEnv()
}

func sampleDailyDetail() model.DailyShopDetail {
	return model.DailyShopDetail{
		Row: model.DailyShopRow{
			ShopID:         "1001",
			ShopName:       "中心店",
			ExposureUsers:  1000,
			VisitUsers:     100,
			OrderUsers:     30,
			VerifyUsers:    20,
			NewReviewCount: 8,
			IntentRate:     "12%",
			OrderUserRank:  valid.IntPointer(3),
			IsForceOffline: 2,
		},
		Info:        model.ShopInfo{Operator: "小王", Sales: "小李", City: "北京"},
		Region:      model.RegionInfo{City: "北京", District: "朝阳", Business: "三里屯"},
		Coupon7Days: 12,
		AdToday:     0,
	}
}

func TestBuildDailyWorkbook(t *testing.T) {
	setTempDir(t)

	reportDate, _ := utils.ParseDate("2025-12-18")
	path, err := BuildDailyWorkbook(reportDate, []model.DailyShopDetail{sampleDailyDetail()}, "日报_20251218")
	if err != nil {
		t.Fatalf("BuildDailyWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != utils.SUMMARY_SHEET_NAME || sheets[1] != "中心店" {
		t.Fatalf("sheets = %v", sheets)
	}

	// summary header and row
	cell, _ := f.GetCellValue(utils.SUMMARY_SHEET_NAME, "A1")
	if cell != "星期" {
		t.Errorf("summary A1 = %q", cell)
	}
	cell, _ = f.GetCellValue(utils.SUMMARY_SHEET_NAME, "A2")
	if cell != "周四" {
		t.Errorf("summary A2 = %q, 2025-12-18 is a Thursday", cell)
	}
	cell, _ = f.GetCellValue(utils.SUMMARY_SHEET_NAME, "B2")
	if cell != "12月18日" {
		t.Errorf("summary B2 = %q", cell)
	}
	cell, _ = f.GetCellValue(utils.SUMMARY_SHEET_NAME, "V2")
	if cell != "第3名" {
		t.Errorf("summary V2 = %q", cell)
	}
	cell, _ = f.GetCellValue(utils.SUMMARY_SHEET_NAME, "W2")
	if cell != "--" {
		t.Errorf("summary W2 = %q, absent rank must read as --", cell)
	}

	// detail sheet
	cell, _ = f.GetCellValue("中心店", "A1")
	if cell != "中心店" {
		t.Errorf("detail A1 = %q", cell)
	}
	cell, _ = f.GetCellValue("中心店", "B1")
	if cell != "警告：有2个团单被强制下线！" {
		t.Errorf("detail B1 = %q", cell)
	}
	cell, _ = f.GetCellValue("中心店", "B2")
	if cell != "日期(12/18)" {
		t.Errorf("detail B2 = %q", cell)
	}
	// review rate 8/20 = 40.0%, above the 30% bar
	cell, _ = f.GetCellValue("中心店", "B25")
	if cell != "40.0%" {
		t.Errorf("detail B25 = %q", cell)
	}
	cell, _ = f.GetCellValue("中心店", "C25")
	if cell != utils.QUALIFIED {
		t.Errorf("detail C25 = %q", cell)
	}
	// collect rate 0/30 = 0.0%, below the 40% bar
	cell, _ = f.GetCellValue("中心店", "C26")
	if cell != utils.NOT_QUALIFIED {
		t.Errorf("detail C26 = %q", cell)
	}
	cell, _ = f.GetCellValue("中心店", "C27")
	if cell != utils.QUALIFIED {
		t.Errorf("detail C27 = %q, 12 coupon orders meet the 7-day bar", cell)
	}
	cell, _ = f.GetCellValue("中心店", "B28")
	if cell != "当天0单" {
		t.Errorf("detail B28 = %q", cell)
	}
	cell, _ = f.GetCellValue("中心店", "C28")
	if cell != utils.NOT_QUALIFIED {
		t.Errorf("detail C28 = %q", cell)
	}
	cell, _ = f.GetCellValue("中心店", "B32")
	if cell != "北京 | 朝阳 | 三里屯：第3名" {
		t.Errorf("detail B32 = %q", cell)
	}
	cell, _ = f.GetCellValue("中心店", "B33")
	if cell != "北京 | 朝阳 | 三里屯：大于100名" {
		t.Errorf("detail B33 = %q", cell)
	}
}

func TestBuildDailyWorkbookDuplicateShopNames(t *testing.T) {
	setTempDir(t)

	first := sampleDailyDetail()
	second := sampleDailyDetail()
	second.Row.ShopID = "1002"

	reportDate, _ := utils.ParseDate("2025-12-18")
	path, err := BuildDailyWorkbook(reportDate, []model.DailyShopDetail{first, second}, "日报_20251218")
	if err != nil {
		t.Fatalf("BuildDailyWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 {
		t.Fatalf("sheets = %v, want summary plus two detail sheets", sheets)
	}
	if sheets[1] != "中心店" || sheets[2] != "中心店_2" {
		t.Errorf("detail sheets = %v, %v", sheets[1], sheets[2])
	}
}
