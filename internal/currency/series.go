package currency

// RatePoint is one point in the wallet's USD to KRW rate chart.
type RatePoint struct {
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`
}

// WeeklySeries returns the static sample series shown on the wallet view.
func WeeklySeries() []RatePoint {
	return []RatePoint{
		{Label: "Mon", Rate: 1340},
		{Label: "Tue", Rate: 1345},
		{Label: "Wed", Rate: 1330},
		{Label: "Thu", Rate: 1355},
		{Label: "Fri", Rate: 1360},
		{Label: "Sat", Rate: 1358},
		{Label: "Sun", Rate: 1365},
	}
}
