// Package report renders analytics as xlsx workbooks.
package report

import (
	"adreach/internal/domain/entity"
	"adreach/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	dailySheet   = "Daily"
	summarySheet = "Summary"
)

var dailyHeader = []any{
	"Date", "Impressions", "Clicks", "Likes", "Dislikes", "Loves",
	"Comments", "Shares", "Saves", "CTR (%)", "Engagement Rate (%)",
}

type excelExporter struct{}

// NewExcelExporter creates a ReportExporter backed by excelize.
func NewExcelExporter() service.ReportExporter {
	return excelExporter{}
}

// ExportWindowStats writes one row per day plus a summary sheet.
func (excelExporter) ExportWindowStats(title string, stats entity.WindowStats) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), dailySheet); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}
	if err := xl.SetSheetRow(dailySheet, "A1", &dailyHeader); err != nil {
		return nil, errors.Wrap(err, "write header")
	}

	for i, day := range stats.Daily {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		row := snapshotRow(day.Date, day.MetricSnapshot)
		if err := xl.SetSheetRow(dailySheet, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "write row %s", day.Date)
		}
	}

	bold, err := xl.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "create style")
	}
	if err := xl.SetRowStyle(dailySheet, 1, 1, bold); err != nil {
		return nil, errors.Wrap(err, "style header")
	}
	_ = xl.SetColWidth(dailySheet, "A", "A", 12)
	_ = xl.SetColWidth(dailySheet, "J", "K", 20)

	if _, err := xl.NewSheet(summarySheet); err != nil {
		return nil, errors.Wrap(err, "create summary sheet")
	}
	summary := [][]any{
		{"Report", title},
		{"Campaign", stats.CampaignID.String()},
		{"From", stats.From},
		{"To", stats.To},
		{"Days", stats.Days},
		{},
		dailyHeader,
		snapshotRow("Total", stats.Summary),
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := xl.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, errors.Wrap(err, "write summary")
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}

	return buf.Bytes(), nil
}

func snapshotRow(label string, s entity.MetricSnapshot) []any {
	return []any{
		label, s.Impressions, s.Clicks, s.Likes, s.Dislikes, s.Loves,
		s.Comments, s.Shares, s.Saves, s.CTR, s.EngagementRate,
	}
}
