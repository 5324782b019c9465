package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mixedpower/app"
	"mixedpower/domain/design"
)

func TestWriteSweep(t *testing.T) {
	service := app.NewPowerService()
	params := design.DefaultParams()
	params.CohensD = 0.2

	result, err := service.Sweep(app.SweepRequest{
		Design:      "CCC",
		Variable:    "n_participants",
		From:        10,
		To:          30,
		Step:        10,
		TargetPower: 0.8,
		Params:      params,
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "curve.xlsx")
	require.NoError(t, NewReportWriter().WriteSweep(result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Parameters", "Power Curve"}, f.GetSheetList())

	header, err := f.GetCellValue("Power Curve", "A1")
	require.NoError(t, err)
	assert.Equal(t, "n_participants", header)

	firstN, err := f.GetCellValue("Power Curve", "A2")
	require.NoError(t, err)
	assert.Equal(t, "10", firstN)

	rows, err := f.GetRows("Power Curve")
	require.NoError(t, err)
	assert.Len(t, rows, 1+len(result.Points))

	designCell, err := f.GetCellValue("Parameters", "B1")
	require.NoError(t, err)
	assert.Equal(t, "CCC", designCell)
}
