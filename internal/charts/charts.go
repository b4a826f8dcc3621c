// Package charts renders report images attached to the monthly report reply.
package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sulnoorman/expense-tracker-bot/internal/category"
	"github.com/sulnoorman/expense-tracker-bot/internal/model"
	"github.com/sulnoorman/expense-tracker-bot/internal/money"
)

// Generator renders PNG charts from report data.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// ExpensePie renders a pie of the month's expense breakdown by category.
// Returns nil bytes when the month has no expenses to draw.
func (g *Generator) ExpensePie(report *model.MonthlyReport) ([]byte, error) {
	var values []chart.Value
	for _, ct := range report.ByCategory {
		if ct.Type != model.TypeExpense || !ct.Total.IsPositive() {
			continue
		}
		total, _ := ct.Total.Float64()
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s", ct.CategoryName, money.FormatRupiah(ct.Total)),
			Value: total,
			Style: chart.Style{
				FillColor: parseHexColor(category.ColorFor(ct.CategoryName, model.TypeExpense)),
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("Expenses %s %d", report.Month, report.Year),
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buf := bytes.NewBuffer(nil)
	if err := pie.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render expense pie: %w", err)
	}
	return buf.Bytes(), nil
}

// IncomeExpenseBars renders income vs expense vs net bars for the month.
func (g *Generator) IncomeExpenseBars(report *model.MonthlyReport) ([]byte, error) {
	if report.Income.IsZero() && report.Expenses.IsZero() {
		return nil, nil
	}
	income, _ := report.Income.Float64()
	expenses, _ := report.Expenses.Float64()
	net, _ := report.Net().Float64()

	bars := chart.BarChart{
		Title:    fmt.Sprintf("Summary %s %d", report.Month, report.Year),
		Width:    800,
		Height:   500,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: []chart.Value{
			{
				Label: "Income",
				Value: income,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					FillColor:   chart.ColorGreen,
				},
			},
			{
				Label: "Expenses",
				Value: expenses,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					FillColor:   chart.ColorRed,
				},
			},
			{
				Label: "Net",
				Value: net,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					FillColor:   chart.ColorBlue.WithAlpha(160),
				},
			},
		},
	}

	buf := bytes.NewBuffer(nil)
	if err := bars.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render summary bars: %w", err)
	}
	return buf.Bytes(), nil
}

func parseHexColor(s string) drawing.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return chart.ColorAlternateGray
	}
	return drawing.Color{R: r, G: g, B: b, A: 255}
}
