package weather

import "time"

type Day struct {
	Date      time.Time `json:"date"`
	MinC      float64   `json:"min_c"`
	MaxC      float64   `json:"max_c"`
	Condition string    `json:"condition"`
}

// Report сводка погоды для фермера
type Report struct {
	Location     string    `json:"location"`
	TemperatureC float64   `json:"temperature_c"`
	Humidity     int       `json:"humidity"`
	Condition    string    `json:"condition"`
	Forecast     []Day     `json:"forecast,omitempty"`
	ObservedAt   time.Time `json:"observed_at"`
}
