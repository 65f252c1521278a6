package types

// Activity identifies one of the supported activity profiles.
type Activity string

const (
	ActivityGeneral       Activity = "general"
	ActivityWalking       Activity = "walking"
	ActivityRunningSport  Activity = "running_sport"
	ActivityEatingOutside Activity = "eating_outside"
	ActivityPoolLounging  Activity = "pool_lounging"
)

// SunRequirement expresses how much an activity depends on sunshine.
type SunRequirement string

const (
	SunHigh    SunRequirement = "high"
	SunNeutral SunRequirement = "neutral"
	SunLow     SunRequirement = "low"
)

// TempInterval is a closed temperature interval in °F.
type TempInterval struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether t falls within the closed interval.
func (i TempInterval) Contains(t float64) bool {
	return t >= i.Low && t <= i.High
}

// TempBands holds the nested comfort bands for an activity: ideal lies
// within comfortable, which lies within tolerable.
type TempBands struct {
	Ideal       TempInterval `json:"ideal"`
	Comfortable TempInterval `json:"comfortable"`
	Tolerable   TempInterval `json:"tolerable"`
}

// ActivityProfile describes one activity's weather sensitivities. Profiles
// are process-wide immutable configuration; TempAdjustment shifts the raw
// temperature to an effective temperature (running feels warmer than
// ambient, so its adjustment is negative).
type ActivityProfile struct {
	Key                 Activity       `json:"key"`
	Name                string         `json:"name"`
	TempRange           TempBands      `json:"temp_range"`
	WindSensitivity     float64        `json:"wind_sensitivity"`
	HumiditySensitivity float64        `json:"humidity_sensitivity"`
	SunRequirement      SunRequirement `json:"sun_requirement"`
	TempAdjustment      float64        `json:"temp_adjustment"`
}

// EffectiveTemp returns the raw temperature shifted by the profile's
// activity adjustment.
func (p ActivityProfile) EffectiveTemp(rawTemp float64) float64 {
	return rawTemp + p.TempAdjustment
}
