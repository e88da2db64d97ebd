// SPDX-License-Identifier: EPL-2.0

package adm

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Timecode is a time offset in nanoseconds, serialized as the
// hh:mm:ss.fffffffff form BS.2076 uses for rtime, duration and
// programme boundaries.
type Timecode int64

const (
	nsPerSecond Timecode = 1_000_000_000
	nsPerMinute          = 60 * nsPerSecond
	nsPerHour            = 60 * nsPerMinute
)

// TimecodeFromSamples converts a sample count at the given rate into a
// Timecode, truncating below nanosecond resolution.
func TimecodeFromSamples(samples int64, rate int) Timecode {
	return Timecode(samples * int64(nsPerSecond) / int64(rate))
}

// TimecodeFromSeconds converts seconds into a Timecode.
func TimecodeFromSeconds(seconds float64) Timecode {
	return Timecode(seconds * float64(nsPerSecond))
}

// Seconds returns the timecode as floating point seconds.
func (t Timecode) Seconds() float64 {
	return float64(t) / float64(nsPerSecond)
}

func (t Timecode) String() string {
	hours := t / nsPerHour
	t -= hours * nsPerHour
	minutes := t / nsPerMinute
	t -= minutes * nsPerMinute
	seconds := t / nsPerSecond
	frac := t - seconds*nsPerSecond
	return fmt.Sprintf("%02d:%02d:%02d.%09d", hours, minutes, seconds, frac)
}

// ParseTimecode reads a hh:mm:ss[.fraction] string. Fractions shorter
// than nine digits are padded, longer ones truncated.
func ParseTimecode(s string) (Timecode, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("timecode %q: want hh:mm:ss.fffffffff", s)
	}
	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("timecode %q hours: %w", s, err)
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("timecode %q minutes: %w", s, err)
	}

	secPart, fracPart, _ := strings.Cut(parts[2], ".")
	seconds, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("timecode %q seconds: %w", s, err)
	}

	var frac int64
	if fracPart != "" {
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		for len(fracPart) < 9 {
			fracPart += "0"
		}
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("timecode %q fraction: %w", s, err)
		}
	}

	return Timecode(hours)*nsPerHour +
		Timecode(minutes)*nsPerMinute +
		Timecode(seconds)*nsPerSecond +
		Timecode(frac), nil
}

func (t Timecode) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: t.String()}, nil
}

func (t *Timecode) UnmarshalXMLAttr(attr xml.Attr) error {
	parsed, err := ParseTimecode(attr.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
