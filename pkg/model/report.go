package model

// Define your request body here
type DailyReportRequest struct {
	ReportDate string   `json:"report_date" valid:"Required"`
	Accounts   []string `json:"accounts"`
}

type WeeklyReportRequest struct {
	Week1Start string   `json:"week1_start" valid:"Required"`
	Week1End   string   `json:"week1_end" valid:"Required"`
	Week2Start string   `json:"week2_start" valid:"Required"`
	Week2End   string   `json:"week2_end" valid:"Required"`
	Accounts   []string `json:"accounts"`
}

type MonthlyReportRequest struct {
	Month1Start string   `json:"month1_start" valid:"Required"`
	Month1End   string   `json:"month1_end" valid:"Required"`
	Month2Start string   `json:"month2_start" valid:"Required"`
	Month2End   string   `json:"month2_end" valid:"Required"`
	Accounts    []string `json:"accounts"`
}

type CustomReportRequest struct {
	Period1Start string   `json:"period1_start" valid:"Required"`
	Period1End   string   `json:"period1_end" valid:"Required"`
	Period2Start string   `json:"period2_start" valid:"Required"`
	Period2End   string   `json:"period2_end" valid:"Required"`
	ShopIDs      []string `json:"shop_ids"`
	Accounts     []string `json:"accounts"`
}

// ComparativeReportRequest is the shared shape the weekly/monthly/custom
// requests collapse into before hitting the pipeline.
type ComparativeReportRequest struct {
	Period1Start string
	Period1End   string
	Period2Start string
	Period2End   string
	ShopIDs      []string
	Accounts     []string
}

type ReportFileResponse struct {
	FilePath string `json:"file_path"`
	FileName string `json:"file_name"`
}
