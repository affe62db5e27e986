package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Kewen526/jx-data-api/conf"
	"github.com/Kewen526/jx-data-api/pkg/mocks"
	"github.com/Kewen526/jx-data-api/pkg/model"
	"github.com/Kewen526/jx-data-api/pkg/taskqueue"
	"github.com/Kewen526/jx-data-api/pkg/utils"
	"github.com/Kewen526/jx-data-api/pkg/valid"
	"github.com/golang/mock/gomock"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

func newTestService(t *testing.T, ctrl *gomock.Controller) (*ReportService, *mocks.MockPGInterface) {
	t.Helper()
	t.Setenv("TEMP_DIR", t.TempDir())
	conf.SetEnv()

	mockRepo := mocks.NewMockPGInterface(ctrl)
	return &ReportService{repo: mockRepo, queue: taskqueue.New(1)}, mockRepo
}

func TestGenerateDailyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestService(t, ctrl)

	mockRepo.EXPECT().
		GetAccountBlobs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.AccountBlobRow{
			{
				Account:      "13718175572a",
				StoresJSON:   datatypes.JSON(`[{"shop_id":"1001"}]`),
				SalesName:    "小李",
				CityName:     "北京",
				OperatorName: "小王",
			},
		}, nil)
	mockRepo.EXPECT().
		GetDailyRows(gomock.Any(), "2025-12-18", gomock.Any(), gomock.Any()).
		Return([]model.DailyShopRow{
			{
				ShopID:        "1001",
				ShopName:      "中心店",
				ExposureUsers: 1000,
				VisitUsers:    100,
				OrderUsers:    30,
				VerifyUsers:   20,
				IntentRate:    "12%",
				OrderUserRank: valid.IntPointer(3),
			},
		}, nil)
	mockRepo.EXPECT().
		GetCouponOrdersLast7Days(gomock.Any(), "1001", "2025-12-18", gomock.Any()).
		Return(12, nil)
	mockRepo.EXPECT().
		GetAdOrdersToday(gomock.Any(), "1001", "2025-12-18", gomock.Any()).
		Return(2, nil)

	path, err := svc.GenerateDailyReport(context.Background(), model.DailyReportRequest{
		ReportDate: "2025-12-18",
		Accounts:   []string{"13718175572a"},
	})
	if err != nil {
		t.Fatalf("GenerateDailyReport: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "日报_20251218") {
		t.Errorf("unexpected filename %q", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("report file missing: %v", err)
	}
}

func TestGenerateDailyReportInvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestService(t, ctrl)

	_, err := svc.GenerateDailyReport(context.Background(), model.DailyReportRequest{ReportDate: "20251218"})
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
}

// Accounts that resolve to zero shops fail before any metric query runs.
func TestGenerateDailyReportAccountsWithoutShops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestService(t, ctrl)

	mockRepo.EXPECT().
		GetAccountBlobs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.AccountBlobRow{
			{Account: "13718175572a", StoresJSON: datatypes.JSON(`{{broken`)},
		}, nil)

	_, err := svc.GenerateDailyReport(context.Background(), model.DailyReportRequest{
		ReportDate: "2025-12-18",
		Accounts:   []string{"13718175572a"},
	})
	if err == nil {
		t.Fatal("expected no-data error")
	}
}

func TestGenerateDailyReportNoRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestService(t, ctrl)

	mockRepo.EXPECT().
		GetAccountBlobs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockRepo.EXPECT().
		GetDailyRows(gomock.Any(), "2025-12-18", gomock.Any(), gomock.Any()).
		Return(nil, nil)

	_, err := svc.GenerateDailyReport(context.Background(), model.DailyReportRequest{ReportDate: "2025-12-18"})
	if err == nil {
		t.Fatal("expected no-data error")
	}
}

func TestGenerateWeeklyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestService(t, ctrl)

	mockRepo.EXPECT().
		GetAccountBlobs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockRepo.EXPECT().
		AggregatePeriod(gomock.Any(), "2025-12-01", "2025-12-07", gomock.Any(), gomock.Any()).
		Return(map[string]model.ShopMetrics{
			"1001": {ShopID: "1001", ShopName: "中心店", VisitUsers: 100, ExposureUsers: 1000},
		}, nil)
	mockRepo.EXPECT().
		AggregatePeriod(gomock.Any(), "2025-12-08", "2025-12-14", gomock.Any(), gomock.Any()).
		Return(map[string]model.ShopMetrics{
			"1001": {ShopID: "1001", ShopName: "中心店", VisitUsers: 150, ExposureUsers: 500},
		}, nil)

	path, err := svc.GenerateWeeklyReport(context.Background(), model.WeeklyReportRequest{
		Week1Start: "2025-12-01",
		Week1End:   "2025-12-07",
		Week2Start: "2025-12-08",
		Week2End:   "2025-12-14",
	})
	if err != nil {
		t.Fatalf("GenerateWeeklyReport: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "周报_20251208_20251214") {
		t.Errorf("unexpected filename %q", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("report file missing: %v", err)
	}
}

// A shop seen in only one period still gets a comparison block.
func TestGenerateCustomReportOneSidedShop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestService(t, ctrl)

	mockRepo.EXPECT().
		GetAccountBlobs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockRepo.EXPECT().
		AggregatePeriod(gomock.Any(), "2025-11-01", "2025-11-15", gomock.Any(), gomock.Any()).
		Return(map[string]model.ShopMetrics{
			"1001": {ShopID: "1001", ShopName: "老店", OrderUsers: 20},
		}, nil)
	mockRepo.EXPECT().
		AggregatePeriod(gomock.Any(), "2025-11-16", "2025-11-30", gomock.Any(), gomock.Any()).
		Return(map[string]model.ShopMetrics{}, nil)

	path, err := svc.GenerateCustomReport(context.Background(), model.CustomReportRequest{
		Period1Start: "2025-11-01",
		Period1End:   "2025-11-15",
		Period2Start: "2025-11-16",
		Period2End:   "2025-11-30",
		ShopIDs:      []string{"1001"},
	})
	if err != nil {
		t.Fatalf("GenerateCustomReport: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "自定义报表_") {
		t.Errorf("unexpected filename %q", filepath.Base(path))
	}
}

// Blocks appear in ascending shop id order no matter which period a shop
// came from.
func TestGenerateWeeklyReportOrdersShopsAscending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestService(t, ctrl)

	mockRepo.EXPECT().
		GetAccountBlobs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockRepo.EXPECT().
		AggregatePeriod(gomock.Any(), "2025-12-01", "2025-12-07", gomock.Any(), gomock.Any()).
		Return(map[string]model.ShopMetrics{
			"3001": {ShopID: "3001", ShopName: "丙店", VisitUsers: 10},
			"1001": {ShopID: "1001", ShopName: "甲店", VisitUsers: 20},
		}, nil)
	mockRepo.EXPECT().
		AggregatePeriod(gomock.Any(), "2025-12-08", "2025-12-14", gomock.Any(), gomock.Any()).
		Return(map[string]model.ShopMetrics{
			"2001": {ShopID: "2001", ShopName: "乙店", VisitUsers: 30},
		}, nil)

	path, err := svc.GenerateWeeklyReport(context.Background(), model.WeeklyReportRequest{
		Week1Start: "2025-12-01",
		Week1End:   "2025-12-07",
		Week2Start: "2025-12-08",
		Week2End:   "2025-12-14",
	})
	if err != nil {
		t.Fatalf("GenerateWeeklyReport: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	// blocks of 8 rows: shop names sit on the row after each block header
	for i, want := range []string{"甲店", "乙店", "丙店"} {
		cell, _ := f.GetCellValue(utils.SUMMARY_SHEET_NAME, fmt.Sprintf("E%d", i*8+2))
		if cell != want {
			t.Errorf("block %d shop = %q, want %q", i+1, cell, want)
		}
	}
}

// Two renders of the same input carry identical cell values.
func TestGenerateWeeklyReportDeterministicCellValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestService(t, ctrl)

	metricsA := map[string]model.ShopMetrics{
		"1001": {ShopID: "1001", ShopName: "甲店", VisitUsers: 100, ExposureUsers: 1000, OrderUsers: 30},
		"2001": {ShopID: "2001", ShopName: "乙店", VisitUsers: 50, ExposureUsers: 200},
		"3001": {ShopID: "3001", ShopName: "丙店", VisitUsers: 10},
	}
	metricsB := map[string]model.ShopMetrics{
		"1001": {ShopID: "1001", ShopName: "甲店", VisitUsers: 150, ExposureUsers: 500, OrderUsers: 60},
		"4001": {ShopID: "4001", ShopName: "丁店", VisitUsers: 5},
	}
	mockRepo.EXPECT().
		GetAccountBlobs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(2)
	mockRepo.EXPECT().
		AggregatePeriod(gomock.Any(), "2025-12-01", "2025-12-07", gomock.Any(), gomock.Any()).
		Return(metricsA, nil).
		Times(2)
	mockRepo.EXPECT().
		AggregatePeriod(gomock.Any(), "2025-12-08", "2025-12-14", gomock.Any(), gomock.Any()).
		Return(metricsB, nil).
		Times(2)

	req := model.WeeklyReportRequest{
		Week1Start: "2025-12-01",
		Week1End:   "2025-12-07",
		Week2Start: "2025-12-08",
		Week2End:   "2025-12-14",
	}

	readRows := func(path string) [][]string {
		t.Helper()
		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("open workbook: %v", err)
		}
		defer f.Close()
		rows, err := f.GetRows(utils.SUMMARY_SHEET_NAME)
		if err != nil {
			t.Fatalf("read rows: %v", err)
		}
		return rows
	}

	path1, err := svc.GenerateWeeklyReport(context.Background(), req)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	path2, err := svc.GenerateWeeklyReport(context.Background(), req)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	if !reflect.DeepEqual(readRows(path1), readRows(path2)) {
		t.Error("two renders of the same input produced different cell values")
	}
}

func TestGenerateWeeklyReportNoData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestService(t, ctrl)

	mockRepo.EXPECT().
		GetAccountBlobs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockRepo.EXPECT().
		AggregatePeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]model.ShopMetrics{}, nil).
		Times(2)

	_, err := svc.GenerateWeeklyReport(context.Background(), model.WeeklyReportRequest{
		Week1Start: "2025-12-01",
		Week1End:   "2025-12-07",
		Week2Start: "2025-12-08",
		Week2End:   "2025-12-14",
	})
	if err == nil {
		t.Fatal("expected no-data error")
	}
}
