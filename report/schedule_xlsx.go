// Package report exports amortization schedules as spreadsheets.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"fincalc/domain"
)

const (
	summarySheet  = "Summary"
	scheduleSheet = "Schedule"

	// built-in format "#,##0.00"
	moneyNumFmt = 4
)

// WriteScheduleXLSX saves schedule to path as an .xlsx workbook.
func WriteScheduleXLSX(path string, schedule domain.AmortizationSchedule) (err error) {
	f, err := NewScheduleWorkbook(schedule)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// NewScheduleWorkbook builds a workbook with a Summary sheet and one row per
// installment on the Schedule sheet. The caller closes the file.
func NewScheduleWorkbook(schedule domain.AmortizationSchedule) (*excelize.File, error) {
	f := excelize.NewFile()

	f.SetAppProps(&excelize.AppProperties{
		Application: "fincalc",
	})

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		f.Close()
		return nil, err
	}
	idx, err := f.NewSheet(scheduleSheet)
	if err != nil {
		f.Close()
		return nil, err
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := createSummarySheet(f, schedule, money); err != nil {
		f.Close()
		return nil, err
	}
	if err := createScheduleSheet(f, schedule, money); err != nil {
		f.Close()
		return nil, err
	}

	f.SetActiveSheet(idx)
	return f, nil
}

func createSummarySheet(f *excelize.File, schedule domain.AmortizationSchedule, money int) error {
	s := schedule.Summary
	rows := [][]interface{}{
		{"Loan Amount", s.LoanAmount},
		{"Monthly Payment", s.MonthlyPayment},
		{"Total Payment", s.TotalPayment},
		{"Total Interest", s.TotalInterest},
		{"Months", len(schedule.Installments)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "B1", "B4", money); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "A", "B", 18)
}

func createScheduleSheet(f *excelize.File, schedule domain.AmortizationSchedule, money int) error {
	headers := []interface{}{"Month", "Payment", "Principal", "Interest", "Remaining Balance"}
	if err := f.SetSheetRow(scheduleSheet, "A1", &headers); err != nil {
		return err
	}

	for i, inst := range schedule.Installments {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{inst.Month, inst.Payment, inst.Principal, inst.Interest, inst.RemainingBalance}
		if err := f.SetSheetRow(scheduleSheet, cell, &row); err != nil {
			return err
		}
	}

	if n := len(schedule.Installments); n > 0 {
		last, err := excelize.CoordinatesToCellName(5, n+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(scheduleSheet, "B2", last, money); err != nil {
			return err
		}
	}

	if err := f.SetPanes(scheduleSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	return f.SetColWidth(scheduleSheet, "A", "E", 18)
}
