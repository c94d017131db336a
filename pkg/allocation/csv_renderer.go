package allocation

import (
	"bytes"
	"encoding/csv"

	"github.com/finpercent/finpercent/internal/money"
	log "github.com/sirupsen/logrus"
)

type Renderer interface {
	Render(breakdown Breakdown) (string, error)
}

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

var csvHeader = []string{"Category", "Percentage", "Share of total", "Amount"}

func (t *CsvRendererImpl) Render(breakdown Breakdown) (string, error) {
	rows := Flatten(breakdown)
	data := make([][]string, 0, len(rows)+2)
	data = append(data, csvHeader)
	for _, row := range rows {
		data = append(data, []string{
			row.PathString(),
			money.Fixed(row.Percentage, 2),
			money.Fixed(row.ShareOfTotal, 2),
			money.Fixed(row.Amount, money.DisplayPlaces),
		})
	}
	data = append(data, []string{"Total", "100.00", "100.00", money.Fixed(breakdown.Amount, money.DisplayPlaces)})

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
