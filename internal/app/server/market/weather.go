package market

import (
	"context"
	"hash/fnv"
	"time"

	"agroportal/internal/domain/weather"
)

var conditions = []string{"ясно", "облачно", "дождь", "переменная облачность"}

const forecastDays = 3

// Weather синтетическая сводка, детерминированная для места и дня
func (s *Store) Weather(_ context.Context, userID, location string) (weather.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faultLocked(OpWeather); err != nil {
		return weather.Report{}, err
	}
	acc, err := s.accountLocked(userID)
	if err != nil {
		return weather.Report{}, err
	}
	if location == "" {
		location = acc.profile.Location
	}

	now := s.now().UTC()
	day := now.Truncate(24 * time.Hour)
	seed := locationSeed(location, day)

	report := weather.Report{
		Location:     location,
		TemperatureC: float64(seed%35) - 5,
		Humidity:     int(40 + seed%50),
		Condition:    conditions[seed%uint32(len(conditions))],
		ObservedAt:   now,
	}
	for i := 1; i <= forecastDays; i++ {
		d := day.AddDate(0, 0, i)
		ds := locationSeed(location, d)
		low := float64(ds%25) - 5
		report.Forecast = append(report.Forecast, weather.Day{
			Date:      d,
			MinC:      low,
			MaxC:      low + float64(ds%10) + 2,
			Condition: conditions[ds%uint32(len(conditions))],
		})
	}
	return report, nil
}

func locationSeed(location string, day time.Time) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(location))
	_, _ = h.Write([]byte(day.Format(time.DateOnly)))
	return h.Sum32()
}
