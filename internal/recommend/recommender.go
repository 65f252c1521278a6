package recommend

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"wearcast/internal/types"
)

// Sample is an alias for the shared averaged-window weather value.
type Sample = types.WeatherSample

// Recommendation is the full engine output for one sample and activity.
type Recommendation struct {
	Activity  types.Activity `json:"activity"`
	Message   string         `json:"message"`
	Explainer string         `json:"explainer"`
	Clothing  string         `json:"clothing"`
	Modifiers []string       `json:"modifiers,omitempty"`
	Warning   string         `json:"warning,omitempty"`
	Comfort   int            `json:"comfort"`
}

// Comfort bounds for the assembly policy: below warningPriorityComfort an
// existing warning takes over the message; below marginalComfort and
// poorComfort an activity suffix is appended.
const (
	warningPriorityComfort = 50
	suffixComfort          = 60
	marginalComfort        = 50
	poorComfort            = 30
)

var (
	rePeriodRuns    = regexp.MustCompile(`\.+`)
	reSpacedPeriods = regexp.MustCompile(`\.\s*\.`)
)

// Recommend runs the full engine for one averaged sample: effective
// temperature, clothing selection, warning evaluation, modifier extraction,
// comfort scoring, and message assembly. Unknown activity keys are
// normalized to general before any rule is consulted, so the result is
// always well defined.
func Recommend(sample Sample, activity types.Activity) Recommendation {
	profile := Profile(activity)
	activity = profile.Key

	effectiveTemp := profile.EffectiveTemp(sample.Temp)
	clothing := SelectClothing(effectiveTemp, activity)
	warning := EvaluateWarning(sample, activity)
	modifiers := ExtractModifiers(sample)
	comfort := Comfort(effectiveTemp, sample, profile)

	return Recommendation{
		Activity:  activity,
		Message:   composeMessage(clothing, warning, modifiers, comfort, profile),
		Explainer: Explain(sample),
		Clothing:  clothing,
		Modifiers: modifiers,
		Warning:   warning,
		Comfort:   comfort,
	}
}

// composeMessage merges clothing text, modifiers, warning, and comfort into
// one sentence-level message.
//
// Assembly policy:
//   - A warning paired with low comfort replaces the normal phrasing; the
//     clothing advice is restated for non-general activities so the reader
//     still knows what to wear.
//   - Otherwise the clothing text leads, the first modifier attaches
//     directly, remaining modifiers join with commas, and a warning (if
//     any) trails as its own sentence.
//   - Low comfort for a specific activity appends a poor/marginal suffix.
func composeMessage(clothing, warning string, modifiers []string, comfort int, profile types.ActivityProfile) string {
	var msg string

	if warning != "" && comfort < warningPriorityComfort {
		msg = warning + ". "
		if profile.Key != types.ActivityGeneral {
			msg += "For general comfort: " + strings.ToLower(clothing)
		}
	} else {
		msg = clothing
		if len(modifiers) > 0 {
			msg += " " + modifiers[0]
			if len(modifiers) > 1 {
				msg += " " + strings.Join(modifiers[1:], ", ")
			}
		}
		msg += "."
		if warning != "" {
			msg += " " + warning + "."
		}
	}

	if profile.Key != types.ActivityGeneral && comfort < suffixComfort {
		switch {
		case comfort < poorComfort:
			msg += fmt.Sprintf(" Conditions are poor for %s.", strings.ToLower(profile.Name))
		case comfort < marginalComfort:
			msg += fmt.Sprintf(" Conditions are marginal for %s.", strings.ToLower(profile.Name))
		}
	}

	return tidySentence(msg)
}

// tidySentence trims whitespace and collapses runs of periods (with or
// without intervening whitespace) into a single period.
func tidySentence(s string) string {
	s = strings.TrimSpace(s)
	s = rePeriodRuns.ReplaceAllString(s, ".")
	s = reSpacedPeriods.ReplaceAllString(s, ".")
	return s
}

// Explain renders a neutral one-line readout of the conditions. It never
// reads the activity and never produces warnings: temperature always,
// humidity above 70%, wind above 5 mph, cloud cover above 70% (or "sunny"
// when the sample is sunny), joined with commas.
func Explain(sample Sample) string {
	parts := []string{fmt.Sprintf("It's %.0f°F", math.Round(sample.Temp))}

	if sample.Humidity > 70 {
		parts = append(parts, fmt.Sprintf("with %.0f%% humidity", math.Round(sample.Humidity)))
	}
	if sample.Wind > 5 {
		parts = append(parts, fmt.Sprintf("%.0f mph wind", math.Round(sample.Wind)))
	}
	if sample.Clouds > 70 {
		parts = append(parts, fmt.Sprintf("%.0f%% cloud cover", math.Round(sample.Clouds)))
	} else if sample.IsSunny {
		parts = append(parts, "sunny")
	}

	return strings.Join(parts, ", ") + "."
}
