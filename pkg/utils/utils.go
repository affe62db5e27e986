package utils

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Kewen526/jx-data-api/conf"
	"github.com/Kewen526/jx-data-api/pkg/valid"
	"github.com/google/uuid"
	"github.com/praslar/lib/common"
	"github.com/sendgrid/rest"
	"github.com/sirupsen/logrus"
)

type ConsumerRequest struct {
	Topic string `json:"topic"`
	Body  string `json:"body"`
}

func EnsureTempDir() error {
	return os.MkdirAll(conf.LoadEnv().TempDir, 0o755)
}

// GenerateTempFilename builds a collision-resistant path under the temp dir:
// {prefix}_{timestamp}_{8-hex}.xlsx
func GenerateTempFilename(prefix string) string {
	uniqueID := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	timestamp := time.Now().Format(TIME_FORMAT_FILE_TAG)
	return filepath.Join(conf.LoadEnv().TempDir, fmt.Sprintf("%s_%s_%s.xlsx", prefix, timestamp, uniqueID))
}

// CleanSheetName strips the characters Excel rejects and caps the length
func CleanSheetName(name string) string {
	for _, c := range []string{"\\", "/", "*", "?", ":", "[", "]"} {
		name = strings.ReplaceAll(name, c, "")
	}
	runes := []rune(name)
	if len(runes) > MAX_SHEET_NAME_LEN {
		name = string(runes[:MAX_SHEET_NAME_LEN])
	}
	if name == "" {
		return DEFAULT_SHEET_NAME
	}
	return name
}

// TruncateSheetName caps a cleaned name so a numeric suffix still fits
func TruncateSheetName(name string) string {
	runes := []rune(name)
	if len(runes) > TRUNCATED_SHEET_NAME_LEN {
		return string(runes[:TRUNCATED_SHEET_NAME_LEN])
	}
	return name
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalcRate returns round(num/den*100, 1), zero denominator yields 0
func CalcRate(numerator, denominator float64) float64 {
	if denominator > 0 {
		return Round1(numerator / denominator * 100)
	}
	return 0
}

// CalcAvgPrice returns round(total/count, 2), zero count yields 0
func CalcAvgPrice(total, count float64) float64 {
	if count > 0 {
		return Round2(total / count)
	}
	return 0
}

// FormatRate renders a period rate. An unmeasured rate (zero denominator)
// prints "0%", a measured rate keeps one decimal even at zero.
func FormatRate(rate, denominator float64) string {
	if denominator <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", rate)
}

// FormatRateDiff renders a rate delta, always with one decimal
func FormatRateDiff(diff float64) string {
	return fmt.Sprintf("%.1f%%", diff)
}

// FormatRank renders a business-zone rank for the summary sheet
func FormatRank(rank *int) string {
	v := valid.Int(rank)
	if v <= 0 {
		return RANK_PLACEHOLDER
	}
	if v < 100 {
		return fmt.Sprintf("第%d名", v)
	}
	return "大于100名"
}

// FormatRankWithRegion renders a rank line of the detail sheet, an absent
// rank reads as beyond the top 100
func FormatRankWithRegion(region string, rank *int) string {
	if v := valid.Int(rank); v > 0 && v < 100 {
		return fmt.Sprintf("%s：第%d名", region, v)
	}
	return fmt.Sprintf("%s：大于100名", region)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(TIME_FORMAT_DATE, s)
}

// FormatPeriodLabel renders an inclusive range as "2025.12.01-2025.12.07"
func FormatPeriodLabel(start, end string) string {
	s, err := ParseDate(start)
	if err != nil {
		return fmt.Sprintf("%s-%s", start, end)
	}
	e, err := ParseDate(end)
	if err != nil {
		return fmt.Sprintf("%s-%s", start, end)
	}
	return fmt.Sprintf("%s-%s", s.Format(TIME_FORMAT_PERIOD), e.Format(TIME_FORMAT_PERIOD))
}

func PushConsumer(consumer ConsumerRequest) (res []interface{}, err error) {
	if conf.LoadEnv().MSConsumer == "" {
		return res, nil
	}
	_, _, err = common.SendRestAPI(conf.LoadEnv().MSConsumer+"/events", rest.Post, nil, nil, consumer)
	if err != nil {
		logrus.Errorf("Fail to push consumer event due to %v", err)
		return res, err
	}
	return res, nil
}
