package charts

import (
	"bytes"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"fintrack/internal/service"
)

// Generator renders dashboard charts as PNG.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// ExpenseBreakdown renders a donut chart of expense totals per category,
// slices colored with the stored category color. Returns nil when there is
// nothing to draw.
func (g *Generator) ExpenseBreakdown(totals []service.CategoryTotal) ([]byte, error) {
	values := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		if t.Amount <= 0 {
			continue
		}
		value := chart.Value{
			Label: t.Name,
			Value: t.Amount,
		}
		if hex := strings.TrimPrefix(t.Color, "#"); hex != t.Color {
			value.Style = chart.Style{FillColor: drawing.ColorFromHex(hex)}
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, nil
	}

	donut := chart.DonutChart{
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := donut.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
