package exporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
	"github.com/vfg2006/shift-scheduler-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Escala"
	headerRow = 3
)

func buildWorkbook(weekStart string, dates []time.Time, employees []*domain.Employee, shifts map[string]map[string][]*domain.Shift) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	lastCol := len(dates) + 2
	lastColName, err := excelize.ColumnNumberToName(lastCol)
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheetName, "A1", "Escala da semana "+weekStart); err != nil {
		return nil, err
	}
	if err := f.MergeCell(sheetName, "A1", lastColName+"1"); err != nil {
		return nil, err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, 0, lastCol)
	header = append(header, "Funcionário")
	for i, date := range dates {
		header = append(header, fmt.Sprintf("%s %s", weekdayNames[i], date.Format("02/01")))
	}
	header = append(header, "Total (h)")
	if err := f.SetSheetRow(sheetName, cell(1, headerRow), &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, cell(1, headerRow), cell(lastCol, headerRow), boldStyle); err != nil {
		return nil, err
	}

	dailyTotals := make([]float64, len(dates))
	row := headerRow + 1
	for _, employee := range employees {
		values := make([]interface{}, 0, lastCol)
		values = append(values, employee.Name)

		var total float64
		for i, date := range dates {
			dayShifts := shifts[employee.ID][date.Format(grid.DateLayout)]

			periods := make([]string, 0, len(dayShifts))
			for _, shift := range dayShifts {
				periods = append(periods, shift.StartTime+"-"+shift.EndTime)
				total += shift.Hours()
				dailyTotals[i] += shift.Hours()
			}
			values = append(values, strings.Join(periods, "\n"))
		}
		values = append(values, utils.RoundWithTwoDecimalPlace(total))

		if err := f.SetSheetRow(sheetName, cell(1, row), &values); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell(2, row), cell(len(dates)+1, row), wrapStyle); err != nil {
			return nil, err
		}
		row++
	}

	totals := make([]interface{}, 0, lastCol)
	totals = append(totals, "Total (h)")
	for _, hours := range dailyTotals {
		totals = append(totals, utils.RoundWithTwoDecimalPlace(hours))
	}
	totals = append(totals, utils.SumHours(dailyTotals))
	if err := f.SetSheetRow(sheetName, cell(1, row), &totals); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, cell(1, row), cell(lastCol, row), boldStyle); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheetName, "A", "A", 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
