package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"mixedpower/app"
)

const (
	paramsSheet = "Parameters"
	curveSheet  = "Power Curve"
)

// ReportWriter renders power-curve sweeps as xlsx workbooks with a
// parameter sheet and a curve sheet.
type ReportWriter struct{}

// NewReportWriter creates a new report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteSweep writes the sweep result to path, overwriting any
// existing file.
func (w *ReportWriter) WriteSweep(result *app.SweepResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", paramsSheet); err != nil {
		return fmt.Errorf("rename parameter sheet: %w", err)
	}
	if err := w.writeParams(f, result); err != nil {
		return err
	}

	curveIdx, err := f.NewSheet(curveSheet)
	if err != nil {
		return fmt.Errorf("create curve sheet: %w", err)
	}
	if err := w.writeCurve(f, result); err != nil {
		return err
	}

	f.SetActiveSheet(curveIdx)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func (w *ReportWriter) writeParams(f *excelize.File, result *app.SweepResult) error {
	p := result.Params
	rows := [][]interface{}{
		{"design", string(result.Design)},
		{"swept variable", string(result.Variable)},
		{"cohens_d", p.CohensD},
		{"resid", p.Resid},
		{"target_intercept", p.TargetIntercept},
		{"participant_intercept", p.ParticipantIntercept},
		{"participant_x_target", p.ParticipantXTarget},
		{"target_slope", p.TargetSlope},
		{"participant_slope", p.ParticipantSlope},
		{"n_participants", p.NParticipants},
		{"n_targets", p.NTargets},
		{"code", p.Code},
		{"alpha", p.Alpha},
		{},
		{"min power", result.Summary.MinPower},
		{"max power", result.Summary.MaxPower},
		{"mean power", result.Summary.MeanPower},
		{"median power", result.Summary.MedianPower},
	}
	if result.Summary.TargetPower > 0 {
		rows = append(rows,
			[]interface{}{"target power", result.Summary.TargetPower},
			[]interface{}{"first n reaching target", result.Summary.FirstNReaching},
		)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(paramsSheet, cell, &row); err != nil {
			return fmt.Errorf("write parameter row %d: %w", i+1, err)
		}
	}
	return nil
}

func (w *ReportWriter) writeCurve(f *excelize.File, result *app.SweepResult) error {
	header := []interface{}{string(result.Variable), "power", "ncp", "dof"}
	if err := f.SetSheetRow(curveSheet, "A1", &header); err != nil {
		return fmt.Errorf("write curve header: %w", err)
	}

	for i, pt := range result.Points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{pt.N, pt.Power, pt.NCP, pt.DF}
		if err := f.SetSheetRow(curveSheet, cell, &row); err != nil {
			return fmt.Errorf("write curve row %d: %w", i+2, err)
		}
	}
	return nil
}
