package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/Kewen526/jx-data-api/pkg/model"
	"github.com/Kewen526/jx-data-api/pkg/service"
	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
)

type ReportHandlers struct {
	service service.ReportInterface
}

func NewReportHandlers(service service.ReportInterface) *ReportHandlers {
	return &ReportHandlers{service: service}
}

func (h *ReportHandlers) GenerateDailyReport(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ReportHandlers.GenerateDailyReport")

	// Check valid request
	req := model.DailyReportRequest{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	path, err := h.service.GenerateDailyReport(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return fileResponse(path), nil
}

func (h *ReportHandlers) GenerateWeeklyReport(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ReportHandlers.GenerateWeeklyReport")

	req := model.WeeklyReportRequest{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	path, err := h.service.GenerateWeeklyReport(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return fileResponse(path), nil
}

func (h *ReportHandlers) GenerateMonthlyReport(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ReportHandlers.GenerateMonthlyReport")

	req := model.MonthlyReportRequest{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	path, err := h.service.GenerateMonthlyReport(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return fileResponse(path), nil
}

func (h *ReportHandlers) GenerateCustomReport(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ReportHandlers.GenerateCustomReport")

	req := model.CustomReportRequest{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	path, err := h.service.GenerateCustomReport(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return fileResponse(path), nil
}

func fileResponse(path string) *ginext.Response {
	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: model.ReportFileResponse{
				FilePath: path,
				FileName: filepath.Base(path),
			},
		},
	}
}
