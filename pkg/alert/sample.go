package alert

import "time"

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleRecords is the seed data served until a real alert source exists.
func SampleRecords() []Record {
	return []Record{
		{
			ID:        1,
			Severity:  SeverityHigh,
			Variable:  VariableSoil,
			Title:     "Critical Soil Moisture Deficit",
			Summary:   "Soil moisture levels below 20% threshold in 12 blocks of Rajasthan",
			Region:    "Rajasthan - Jaisalmer District",
			Timestamp: mustTime("2024-01-15T10:30:00Z"),
			Sparkline: []float64{45, 42, 38, 35, 28, 22, 18},
			BBox:      [4]float64{70.9, 26.9, 71.5, 27.3},
		},
		{
			ID:        2,
			Severity:  SeverityMedium,
			Variable:  VariableNDVI,
			Title:     "NDVI Anomaly Detected",
			Summary:   "Vegetation index 15% below seasonal average in wheat growing regions",
			Region:    "Punjab - Bathinda",
			Timestamp: mustTime("2024-01-14T14:20:00Z"),
			Sparkline: []float64{0.75, 0.73, 0.68, 0.65, 0.62, 0.59, 0.58},
			BBox:      [4]float64{74.9, 30.1, 75.3, 30.5},
		},
		{
			ID:        3,
			Severity:  SeverityLow,
			Variable:  VariableTemp,
			Title:     "Temperature Stress Warning",
			Summary:   "Temperatures exceeding 35°C for 5 consecutive days during flowering",
			Region:    "Maharashtra - Aurangabad",
			Timestamp: mustTime("2024-01-13T09:15:00Z"),
			Sparkline: []float64{32, 34, 36, 37, 38, 36, 35},
			BBox:      [4]float64{75.2, 19.8, 75.6, 20.2},
		},
		{
			ID:        4,
			Severity:  SeverityHigh,
			Variable:  VariableRainfall,
			Title:     "Rainfall Deficit Alert",
			Summary:   "Cumulative rainfall 40% below normal for the season",
			Region:    "Karnataka - Belgaum",
			Timestamp: mustTime("2024-01-12T16:45:00Z"),
			Sparkline: []float64{25, 20, 15, 10, 8, 5, 3},
			BBox:      [4]float64{74.4, 15.8, 74.8, 16.2},
		},
	}
}
