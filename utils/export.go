package utils

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"coach_tracker/model"

	"github.com/xuri/excelize/v2"
)

// ReportSheet is the sheet name of the xlsx export.
const ReportSheet = "Report"

// ReportColumns is the fixed column order of both export formats.
var ReportColumns = []string{"ID", "Coach No", "Type", "Date In", "Current Shop"}

func coachRow(coach model.Coach) []string {
	return []string{
		strconv.FormatUint(uint64(coach.ID), 10),
		coach.CoachNo,
		coach.CoachType,
		coach.DateIn.String(),
		coach.CurrentShop,
	}
}

// ExportCSV serializes the coach projection as UTF-8 CSV with a header row.
func ExportCSV(coaches []model.Coach) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ReportColumns); err != nil {
		return nil, err
	}
	for _, coach := range coaches {
		if err := w.Write(coachRow(coach)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX serializes the same projection as a single-sheet workbook.
func ExportXLSX(coaches []model.Coach) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ReportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(ReportSheet, "A1", &ReportColumns); err != nil {
		return nil, err
	}
	for i, coach := range coaches {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := coachRow(coach)
		if err := f.SetSheetRow(ReportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
