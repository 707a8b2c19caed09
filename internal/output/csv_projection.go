package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/finarb/arbitrage-calculator/internal/domain"
)

// CSVProjectionFormatter exports the projection table, one row per year.
type CSVProjectionFormatter struct{}

func (c CSVProjectionFormatter) Name() string { return "csv" }

func (c CSVProjectionFormatter) Format(result *domain.ArbitrageResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "TotalIncome", "TotalEMI", "TotalSIP", "Surplus", "TotalLoanBalance", "TotalSIPCorpus", "NetWorth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yp := range result.YearlyProjections {
		row := []string{
			strconv.Itoa(yp.Year),
			yp.TotalIncome.StringFixed(2),
			yp.TotalEMI.StringFixed(2),
			yp.TotalSIP.StringFixed(2),
			yp.Surplus.StringFixed(2),
			yp.TotalLoanBalance().StringFixed(2),
			yp.TotalSIPCorpus().StringFixed(2),
			yp.NetWorth.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
