package types

import "time"

// HourlyObservation is one raw hourly record as supplied by a forecast
// provider. Values use the units the recommendation engine works in:
// apparent temperature and dew point in °F, wind in mph, humidity and
// cloud cover in percent. Any field may be absent in provider output, so
// all are pointers; records missing a required field are dropped before
// aggregation.
type HourlyObservation struct {
	Time     time.Time `json:"time"`
	Temp     *float64  `json:"temp"`
	DewPoint *float64  `json:"dew_point"`
	Wind     *float64  `json:"wind"`
	Clouds   *float64  `json:"clouds"`
	Humidity *float64  `json:"humidity"`
}

// Complete reports whether the observation carries every field the
// aggregator averages. Incomplete observations never reach the engine.
func (o HourlyObservation) Complete() bool {
	return o.Temp != nil && o.DewPoint != nil && o.Wind != nil &&
		o.Clouds != nil && o.Humidity != nil
}

// WeatherSample is the averaged weather state for one time window. It is an
// immutable value constructed per request; IsSunny is derived from averaged
// cloud cover, never supplied raw. DewPoint is optional because the fog
// heuristic is the only consumer and it degrades gracefully without it.
type WeatherSample struct {
	Temp     float64  `json:"temp"`
	Humidity float64  `json:"humidity"`
	Wind     float64  `json:"wind"`
	Clouds   float64  `json:"clouds"`
	DewPoint *float64 `json:"dew_point,omitempty"`
	IsSunny  bool     `json:"is_sunny"`
}
