package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// timeOfDayLayout is the wire format for clock times without a date.
const timeOfDayLayout = "15:04:05"

// TimeOfDay is a clock time without a date, carried on the wire as
// "HH:MM:SS".
type TimeOfDay time.Time

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(timeOfDayLayout))
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time of day must be a %q string: %w", timeOfDayLayout, err)
	}
	parsed, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	*t = TimeOfDay(parsed)
	return nil
}

// String formats the time in its wire layout.
func (t TimeOfDay) String() string {
	return time.Time(t).Format(timeOfDayLayout)
}

// Seconds is a duration carried on the wire as a number of seconds,
// e.g. 300 or 1.5.
type Seconds time.Duration

func (s Seconds) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(s).Seconds())
}

func (s *Seconds) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("duration must be a number of seconds: %w", err)
	}
	*s = Seconds(time.Duration(v * float64(time.Second)))
	return nil
}

// Duration converts s back into a time.Duration.
func (s Seconds) Duration() time.Duration {
	return time.Duration(s)
}
