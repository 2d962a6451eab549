package service

import "adreach/internal/domain/entity"

// ReportExporter renders analytics as a downloadable spreadsheet.
type ReportExporter interface {
	ExportWindowStats(title string, stats entity.WindowStats) ([]byte, error)
}
