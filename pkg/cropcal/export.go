package cropcal

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"krishi/entities"
)

var exportHeaders = []string{
	"Project", "Crop", "Type", "Season", "Field Size (ha)",
	"Location", "Start Date", "Status", "Expert",
}

// ExportXLSX writes the held list (narrowed by the filter) to an Excel
// workbook so farmers can hand their plans to co-ops and agronomists.
func (s *Service) ExportXLSX(path string, filter Filter) error {
	cals := s.Calendars(filter)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Crop Calendar"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for col, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for row, cal := range cals {
		values := []any{
			cal.ProjectName, cal.CropName, cal.CropType, cal.Season,
			cal.FieldSize, cal.Location, cal.StartDate, cal.Status,
			expertName(cal),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func expertName(cal entities.CropCalendar) string {
	if cal.Expert == nil {
		return ""
	}
	return cal.Expert.Name
}
