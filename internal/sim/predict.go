package sim

import "fmt"

// Prediction is one fabricated forecast run.
type Prediction struct {
	UserGrowth PredictionBand
	Revenue    PredictionBand
	Conversion ConversionBand
	Trends     []string
}

// PredictionBand pairs a next-month and next-quarter figure with a
// confidence percentage.
type PredictionBand struct {
	NextMonth   string
	NextQuarter string
	Confidence  string
}

// ConversionBand is the conversion-rate slice of a prediction.
type ConversionBand struct {
	Improvement string
	NewRate     string
	Confidence  string
}

const (
	baseGrowthPct = 15.0
)

var predictionTrends = []string{
	"AI feature usage increasing by 23%",
	"Mobile traffic growing 18% faster",
	"User engagement up 31% this quarter",
	"Automation adoption rate: 67%",
}

// Predict fabricates a forecast around the fixed baselines, jittered inside
// the documented bounds.
func (e *Engine) Predict() Prediction {
	return Prediction{
		UserGrowth: PredictionBand{
			NextMonth:   fmt.Sprintf("%.1f%%", baseGrowthPct+(e.float()*10-5)),
			NextQuarter: fmt.Sprintf("%.1f%%", baseGrowthPct*3+(e.float()*20-10)),
			Confidence:  fmt.Sprintf("%.1f%%", 85+e.float()*10),
		},
		Revenue: PredictionBand{
			NextMonth:   "$" + formatThousands(int(float64(baseRevenueUSD)*0.33+(e.float()*10000-5000))),
			NextQuarter: "$" + formatThousands(baseRevenueUSD+int(e.float()*50000-25000)),
			Confidence:  fmt.Sprintf("%.1f%%", 82+e.float()*12),
		},
		Conversion: ConversionBand{
			Improvement: fmt.Sprintf("+%.2f%%", baseConversionPct*0.1+e.float()),
			NewRate:     fmt.Sprintf("%.2f%%", baseConversionPct+e.float()),
			Confidence:  fmt.Sprintf("%.1f%%", 78+e.float()*15),
		},
		Trends: predictionTrends,
	}
}
