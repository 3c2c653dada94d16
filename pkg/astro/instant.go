package astro

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Instant is a precise moment on the internal continuous timeline,
// stored as a Duration offset from the reference instant where TT,
// TCG and TCB historically agreed (1977-01-01 00:00:32.184 TT).
//
// An Instant represents the same thing a DateTime does, but with no
// calendar or time-standard attached, across a much larger span, and
// with Duration arithmetic directly available. Conversions between
// calendars and standards pass through Instant.
type Instant struct {
	d Duration
}

func instantOf(d Duration) Instant { return Instant{d: d} }

// SinceReference returns the offset from the internal reference
// instant as a Duration.
func (i Instant) SinceReference() Duration { return i.d }

// Add returns the instant shifted forward by d.
func (i Instant) Add(d Duration) Instant { return Instant{d: i.d.Add(d)} }

// Sub returns the instant shifted backward by d.
func (i Instant) Sub(d Duration) Instant { return Instant{d: i.d.Sub(d)} }

// Since returns the Duration from o to i (positive when i is later).
func (i Instant) Since(o Instant) Duration { return i.d.Sub(o.d) }

// Compare returns -1, 0 or +1 as i is before, equal to or after o.
func (i Instant) Compare(o Instant) int { return i.d.Compare(o.d) }

// Before reports whether i precedes o.
func (i Instant) Before(o Instant) bool { return i.d.Compare(o.d) < 0 }

// After reports whether i follows o.
func (i Instant) After(o Instant) bool { return i.d.Compare(o.d) > 0 }

// FromJulianDayFloat constructs an Instant from a floating Julian Day.
// This is the lowest-precision tier; see FromJulianDay and
// FromJulianDayPrecise for better.
func FromJulianDayFloat(jd float64) Instant {
	fsecs := jd * 86400.0
	whole := int64(fsecs)
	attos := int64((fsecs - float64(whole)) * attosPerSecF64)
	return EpochJulianPeriod.Instant().Add(NewDuration(whole, attos))
}

// FromJulianDay constructs an Instant from a whole Julian Day number
// and a day fraction. More precise than FromJulianDayFloat, less than
// FromJulianDayPrecise.
func FromJulianDay(day int64, dayFraction float64) Instant {
	fsecs := dayFraction * 86400.0
	whole := int64(fsecs)
	attos := int64((fsecs - float64(whole)) * attosPerSecF64)
	return EpochJulianPeriod.Instant().Add(NewDuration(day*86400+whole, attos))
}

// FromJulianDayPrecise constructs an Instant from a whole Julian Day
// number, seconds into the day, and attoseconds. It wraps ErrRange if
// seconds is not in [0,86400) or attoseconds is not in [0,1e18).
func FromJulianDayPrecise(day int64, seconds int64, attoseconds int64) (Instant, error) {
	if seconds < 0 || seconds >= 86400 {
		return Instant{}, fmt.Errorf("julian day seconds %d: %w", seconds, ErrRange)
	}
	if attoseconds < 0 || attoseconds >= attosPerSec {
		return Instant{}, fmt.Errorf("julian day attoseconds %d: %w", attoseconds, ErrRange)
	}
	return EpochJulianPeriod.Instant().Add(NewDuration(day*86400+seconds, attoseconds)), nil
}

// AsJulianDayFloat returns the Julian Day as a float64 (low precision).
func (i Instant) AsJulianDayFloat() float64 {
	since := i.Since(EpochJulianPeriod.Instant())
	return (float64(since.secs) + float64(since.attos)/attosPerSecF64) / 86400.0
}

// AsJulianDay returns the Julian Day as a whole day number and a day
// fraction (medium precision). For instants before JD 0 the day
// truncates toward zero and the fraction is negative.
func (i Instant) AsJulianDay() (day int64, fraction float64) {
	since := i.Since(EpochJulianPeriod.Instant())
	day = since.secs / 86400
	rem := since.secs % 86400
	fraction = (float64(rem) + float64(since.attos)/attosPerSecF64) / 86400.0
	return day, fraction
}

// AsJulianDayPrecise returns the Julian Day as a day number, seconds
// into the day, and attoseconds (full precision).
func (i Instant) AsJulianDayPrecise() (day, seconds, attoseconds int64) {
	since := i.Since(EpochJulianPeriod.Instant())
	return since.secs / 86400, since.secs % 86400, since.attos
}

// AsJulianDayFormatted renders the Julian Day as a string such as
// "JD 2451545.0625". The fraction is printed in plain decimal, never
// scientific notation.
func (i Instant) AsJulianDayFormatted() string {
	day, frac := i.AsJulianDay()
	fraction := strings.TrimLeft(strconv.FormatFloat(frac, 'f', -1, 64), "-0")
	return fmt.Sprintf("JD %d%s", day, fraction)
}

// FromNTPDate constructs an Instant from an NTP-convention timestamp:
// seconds (plus attoseconds) since 1900-01-01 00:00:00 UTC, counted
// as if no leap second had ever been inserted. The missing leap
// seconds are restored by a two-pass fixed-point correction: count
// leaps elapsed at the naive instant, shift, then recount at the
// shifted instant and apply any residual. Leap seconds are single and
// isolated, so two passes always suffice.
//
// An NTP second that spans a leap insertion is replayed and therefore
// names two distinct UTC instants; this function resolves the tie to
// the pre-leap reading (the :60 second).
func FromNTPDate(seconds, attoseconds int64) Instant {
	naive := EpochNTP.Instant().Add(NewDuration(seconds, attoseconds))
	l1 := LeapSecondsElapsedAt(naive)
	at := naive.Add(NewDuration(l1, 0))
	if l2 := LeapSecondsElapsedAt(at); l2 > l1 {
		at = at.Add(NewDuration(l2-l1, 0))
	}
	return at
}

// AsNTPDate returns the instant as an NTP-convention timestamp:
// seconds and attoseconds since 1900-01-01 00:00:00 UTC, excluding
// leap seconds from the count. An instant inside a leap second maps
// to the same NTP second as the instant one second later; that
// ambiguity is inherent to NTP.
func (i Instant) AsNTPDate() (seconds, attoseconds int64) {
	leaps := LeapSecondsElapsedAt(i)
	since := i.Since(EpochNTP.Instant()).Sub(NewDuration(leaps, 0))
	return since.secs, since.attos
}

// FromTime converts a time.Time reading. Unix time, like NTP time,
// pretends leap seconds never happened, so for historical instants the
// platform clock undercounts elapsed seconds; the same two-pass
// correction as FromNTPDate restores them.
func FromTime(t time.Time) Instant {
	sinceUnixLessLeaps := NewDuration(t.Unix(), int64(t.Nanosecond())*1_000_000_000)
	naive := EpochUnix.Instant().Add(sinceUnixLessLeaps)

	l1 := LeapSecondsElapsedAt(naive)
	at := naive.Add(NewDuration(l1, 0))
	if l2 := LeapSecondsElapsedAt(at); l2 > l1 {
		at = at.Add(NewDuration(l2-l1, 0))
	}
	return at
}

// Now returns the current instant from the system clock.
func Now() Instant { return FromTime(time.Now()) }
