package service

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/Kewen526/jx-data-api/pkg/excel"
	"github.com/Kewen526/jx-data-api/pkg/model"
	"github.com/Kewen526/jx-data-api/pkg/repo"
	"github.com/Kewen526/jx-data-api/pkg/taskqueue"
	"github.com/Kewen526/jx-data-api/pkg/utils"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"golang.org/x/sync/errgroup"
)

type ReportService struct {
	repo  repo.PGInterface
	queue *taskqueue.Queue
}

func NewReportService(repo repo.PGInterface, queue *taskqueue.Queue) ReportInterface {
	return &ReportService{repo: repo, queue: queue}
}

type ReportInterface interface {
	GenerateDailyReport(ctx context.Context, req model.DailyReportRequest) (string, error)
	GenerateWeeklyReport(ctx context.Context, req model.WeeklyReportRequest) (string, error)
	GenerateMonthlyReport(ctx context.Context, req model.MonthlyReportRequest) (string, error)
	GenerateCustomReport(ctx context.Context, req model.CustomReportRequest) (string, error)
}

func (s *ReportService) GenerateDailyReport(ctx context.Context, req model.DailyReportRequest) (string, error) {
	if err := checkDates(req.ReportDate); err != nil {
		return "", err
	}
	return s.queue.Submit(ctx, func(jobCtx context.Context) (string, error) {
		return s.buildDailyReport(jobCtx, req)
	})
}

func (s *ReportService) GenerateWeeklyReport(ctx context.Context, req model.WeeklyReportRequest) (string, error) {
	return s.generateComparativeReport(ctx, utils.REPORT_KIND_WEEKLY, model.ComparativeReportRequest{
		Period1Start: req.Week1Start,
		Period1End:   req.Week1End,
		Period2Start: req.Week2Start,
		Period2End:   req.Week2End,
		Accounts:     req.Accounts,
	})
}

func (s *ReportService) GenerateMonthlyReport(ctx context.Context, req model.MonthlyReportRequest) (string, error) {
	return s.generateComparativeReport(ctx, utils.REPORT_KIND_MONTHLY, model.ComparativeReportRequest{
		Period1Start: req.Month1Start,
		Period1End:   req.Month1End,
		Period2Start: req.Month2Start,
		Period2End:   req.Month2End,
		Accounts:     req.Accounts,
	})
}

func (s *ReportService) GenerateCustomReport(ctx context.Context, req model.CustomReportRequest) (string, error) {
	return s.generateComparativeReport(ctx, utils.REPORT_KIND_CUSTOM, model.ComparativeReportRequest{
		Period1Start: req.Period1Start,
		Period1End:   req.Period1End,
		Period2Start: req.Period2Start,
		Period2End:   req.Period2End,
		ShopIDs:      req.ShopIDs,
		Accounts:     req.Accounts,
	})
}

func (s *ReportService) generateComparativeReport(ctx context.Context, kind string, req model.ComparativeReportRequest) (string, error) {
	if err := checkDates(req.Period1Start, req.Period1End, req.Period2Start, req.Period2End); err != nil {
		return "", err
	}
	return s.queue.Submit(ctx, func(jobCtx context.Context) (string, error) {
		return s.buildComparativeReport(jobCtx, kind, req)
	})
}

func (s *ReportService) buildDailyReport(ctx context.Context, req model.DailyReportRequest) (string, error) {
	log := logger.WithCtx(ctx, "ReportService.buildDailyReport").WithField("report_date", req.ReportDate)

	mappings, err := resolveShopMappings(ctx, s.repo, req.Accounts, nil)
	if err != nil {
		return "", err
	}

	// An account filter that resolves to zero shops cannot produce data
	var shopFilter []string
	if len(req.Accounts) > 0 {
		shopFilter = mappings.ShopIDs
		if len(shopFilter) == 0 {
			log.Error("error_400: requested accounts resolve to no shops")
			return "", ginext.NewError(http.StatusBadRequest, fmt.Sprintf("日期 %s 没有数据", req.ReportDate))
		}
	}

	rows, err := s.repo.GetDailyRows(ctx, req.ReportDate, shopFilter, nil)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		log.Error("error_400: no daily rows for requested scope")
		return "", ginext.NewError(http.StatusBadRequest, fmt.Sprintf("日期 %s 没有数据", req.ReportDate))
	}

	details := make([]model.DailyShopDetail, 0, len(rows))
	for _, row := range rows {
		coupon7, err := s.repo.GetCouponOrdersLast7Days(ctx, row.ShopID, req.ReportDate, nil)
		if err != nil {
			return "", err
		}
		adToday, err := s.repo.GetAdOrdersToday(ctx, row.ShopID, req.ReportDate, nil)
		if err != nil {
			return "", err
		}
		details = append(details, model.DailyShopDetail{
			Row:         row,
			Info:        mappings.Info[row.ShopID],
			Region:      mappings.Region[row.ShopID],
			Coupon7Days: coupon7,
			AdToday:     adToday,
		})
	}

	reportDate, _ := utils.ParseDate(req.ReportDate)
	prefix := fmt.Sprintf("%s_%s", utils.REPORT_KIND_DAILY, strings.ReplaceAll(req.ReportDate, "-", ""))
	path, err := excel.BuildDailyWorkbook(reportDate, details, prefix)
	if err != nil {
		log.WithError(err).Error("error_500: render daily workbook")
		return "", ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	s.notifyReportGenerated(ctx, path)
	return path, nil
}

func (s *ReportService) buildComparativeReport(ctx context.Context, kind string, req model.ComparativeReportRequest) (string, error) {
	log := logger.WithCtx(ctx, "ReportService.buildComparativeReport").WithField("kind", kind)

	mappings, err := resolveShopMappings(ctx, s.repo, req.Accounts, nil)
	if err != nil {
		return "", err
	}

	// Effective scope: shops resolved from accounts plus any explicit shop IDs
	var shopFilter []string
	if len(req.Accounts) > 0 || len(req.ShopIDs) > 0 {
		seen := make(map[string]bool)
		if len(req.Accounts) > 0 {
			for _, shopID := range mappings.ShopIDs {
				if !seen[shopID] {
					seen[shopID] = true
					shopFilter = append(shopFilter, shopID)
				}
			}
		}
		for _, shopID := range req.ShopIDs {
			if shopID != "" && !seen[shopID] {
				seen[shopID] = true
				shopFilter = append(shopFilter, shopID)
			}
		}
		if len(shopFilter) == 0 {
			log.Error("error_400: requested scope resolves to no shops")
			return "", ginext.NewError(http.StatusBadRequest, "没有找到数据")
		}
	}

	var periodA, periodB map[string]model.ShopMetrics
	eg := errgroup.Group{}
	eg.Go(func() error {
		var err error
		periodA, err = s.repo.AggregatePeriod(ctx, req.Period1Start, req.Period1End, shopFilter, nil)
		return err
	})
	eg.Go(func() error {
		var err error
		periodB, err = s.repo.AggregatePeriod(ctx, req.Period2Start, req.Period2End, shopFilter, nil)
		return err
	})
	if err := eg.Wait(); err != nil {
		return "", err
	}

	// A shop present in only one period is valid, both empty is the failure
	allShopIDs := make([]string, 0, len(periodA)+len(periodB))
	seen := make(map[string]bool)
	for shopID := range periodA {
		if !seen[shopID] {
			seen[shopID] = true
			allShopIDs = append(allShopIDs, shopID)
		}
	}
	for shopID := range periodB {
		if !seen[shopID] {
			seen[shopID] = true
			allShopIDs = append(allShopIDs, shopID)
		}
	}
	if len(allShopIDs) == 0 {
		log.Error("error_400: no aggregate rows in either period")
		return "", ginext.NewError(http.StatusBadRequest, "没有找到数据")
	}
	sort.Strings(allShopIDs)

	rows := make([]model.ComparisonRow, 0, len(allShopIDs))
	for _, shopID := range allShopIDs {
		a, ok := periodA[shopID]
		if !ok {
			a = model.ShopMetrics{ShopID: shopID}
		}
		b, ok := periodB[shopID]
		if !ok {
			b = model.ShopMetrics{ShopID: shopID}
		}
		comp := ComparePeriods(a, b)
		if comp.ShopName == "" {
			comp.ShopName = utils.UNKNOWN_SHOP_NAME
		}
		rows = append(rows, model.ComparisonRow{
			Comparison: comp,
			Info:       placeholderInfo(mappings.Info[shopID]),
		})
	}

	prefix := fmt.Sprintf("%s_%s_%s", kind,
		strings.ReplaceAll(req.Period2Start, "-", ""),
		strings.ReplaceAll(req.Period2End, "-", ""))
	path, err := excel.BuildComparativeWorkbook(
		utils.FormatPeriodLabel(req.Period1Start, req.Period1End),
		utils.FormatPeriodLabel(req.Period2Start, req.Period2End),
		rows, prefix)
	if err != nil {
		log.WithError(err).Error("error_500: render comparative workbook")
		return "", ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	s.notifyReportGenerated(ctx, path)
	return path, nil
}

// notifyReportGenerated is fire-and-forget, a dead consumer never fails a job
func (s *ReportService) notifyReportGenerated(ctx context.Context, path string) {
	log := logger.WithCtx(ctx, "ReportService.notifyReportGenerated")
	if _, err := utils.PushConsumer(utils.ConsumerRequest{
		Topic: utils.TOPIC_REPORT_GENERATED,
		Body:  path,
	}); err != nil {
		log.WithError(err).Info("report generated event not delivered")
	}
}

func placeholderInfo(info model.ShopInfo) model.ShopInfo {
	if info.Operator == "" {
		info.Operator = utils.RANK_PLACEHOLDER
	}
	if info.Sales == "" {
		info.Sales = utils.RANK_PLACEHOLDER
	}
	if info.City == "" {
		info.City = utils.RANK_PLACEHOLDER
	}
	return info
}

func checkDates(dates ...string) error {
	for _, d := range dates {
		if _, err := utils.ParseDate(d); err != nil {
			return ginext.NewError(http.StatusBadRequest, fmt.Sprintf("无效的日期格式: %s", d))
		}
	}
	return nil
}
