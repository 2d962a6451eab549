package report

import (
	"bytes"
	"testing"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportWindowStats(t *testing.T) {
	campaignID := uuid.New()
	stats := entity.WindowStats{
		CampaignID: campaignID,
		Days:       2,
		From:       "2026-01-01",
		To:         "2026-01-02",
		Daily: []entity.DailyStat{
			{Date: "2026-01-01", MetricSnapshot: entity.NewMetricSnapshot(entity.EventCounts{Impressions: 10, Clicks: 2})},
			{Date: "2026-01-02", MetricSnapshot: entity.NewMetricSnapshot(entity.EventCounts{Impressions: 4})},
		},
		Summary: entity.NewMetricSnapshot(entity.EventCounts{Impressions: 14, Clicks: 2}),
	}

	data, err := NewExcelExporter().ExportWindowStats("Weekly report", stats)
	require.NoError(t, err)

	xl, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = xl.Close() }()

	assert.Equal(t, []string{dailySheet, summarySheet}, xl.GetSheetList())

	rows, err := xl.GetRows(dailySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, []string{"2026-01-01", "10", "2"}, rows[1][:3])
	assert.Equal(t, "20", rows[1][9])

	title, err := xl.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Weekly report", title)

	campaign, err := xl.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, campaignID.String(), campaign)

	total, err := xl.GetCellValue(summarySheet, "B8")
	require.NoError(t, err)
	assert.Equal(t, "14", total)
}

func TestExportWindowStats_Empty(t *testing.T) {
	data, err := NewExcelExporter().ExportWindowStats("Empty", entity.WindowStats{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
