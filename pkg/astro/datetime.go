package astro

import "fmt"

// DateTime is a calendar reading: a year, month, day and time-of-day
// interpreted under a specific Calendar and time Standard. Together
// those name one precise instant (or, during an inserted leap second,
// the :60 reading that plain civil time cannot express).
//
// Years span the full int32 range, about +/-2.14 billion, which is the
// limiting factor on the instants a DateTime can express. DateTime
// values are immutable; the Set* methods return modified copies.
type DateTime struct {
	year   int32
	month  uint8 // 1..12
	day    uint8 // 1..31
	hour   uint8 // 0..23
	minute uint8 // 0..59
	second uint8 // 0..59, or 60 during a UTC leap second
	attos  uint64
	cal    Calendar
	std    Standard
}

// NewDateTime builds a DateTime from already-normalized fields,
// wrapping ErrRange when any field is out of its documented range.
// second may be 60 only under UTC, since only UTC has leap seconds.
func NewDateTime(year int32, month, day, hour, minute, second int, attos int64, cal Calendar, std Standard) (DateTime, error) {
	if month < 1 || month > 12 {
		return DateTime{}, fmt.Errorf("month %d: %w", month, ErrRange)
	}
	if day < 1 || day > cal.MonthDays(month, year) {
		return DateTime{}, fmt.Errorf("day %d of %d-%02d: %w", day, year, month, ErrRange)
	}
	if hour < 0 || hour > 23 {
		return DateTime{}, fmt.Errorf("hour %d: %w", hour, ErrRange)
	}
	if minute < 0 || minute > 59 {
		return DateTime{}, fmt.Errorf("minute %d: %w", minute, ErrRange)
	}
	if second < 0 || second > 60 || (second == 60 && std != UTC) {
		return DateTime{}, fmt.Errorf("second %d: %w", second, ErrRange)
	}
	if attos < 0 || attos >= attosPerSec {
		return DateTime{}, fmt.Errorf("attoseconds %d: %w", attos, ErrRange)
	}
	return DateTime{
		year: year, month: uint8(month), day: uint8(day),
		hour: uint8(hour), minute: uint8(minute), second: uint8(second),
		attos: uint64(attos), cal: cal, std: std,
	}, nil
}

// NewBC builds a DateTime from a BCE year count: 1 BCE is yearBC 1
// (ISO year 0), 2 BCE is yearBC 2 (ISO year -1), and so on.
func NewBC(yearBC int32, month, day, hour, minute, second int, attos int64, cal Calendar, std Standard) (DateTime, error) {
	return NewDateTime(1-yearBC, month, day, hour, minute, second, attos, cal, std)
}

// NewUnnormalized builds a DateTime from fields that may lie outside
// their nominal ranges, carrying overflow and underflow upward: attos
// into seconds, seconds into minutes, and so on, with excess days
// resolved through the calendar (so month+1 on January 31st lands in
// early March). Fields normalize to second <= 59; a leap-second
// reading cannot come out of this constructor.
//
// ErrRange is wrapped when the normalized year leaves int32.
func NewUnnormalized(year, month, day, hour, minute, second, attos int64, cal Calendar, std Standard) (DateTime, error) {
	var carry int64
	carry, attos = divmod(attos, attosPerSec)
	second += carry
	carry, second = divmod(second, 60)
	minute += carry
	carry, minute = divmod(minute, 60)
	hour += carry
	carry, hour = divmod(hour, 24)
	day += carry

	yearCarry, month0 := divmod(month-1, 12)
	year += yearCarry
	if year < -2147483648 || year > 2147483647 {
		return DateTime{}, fmt.Errorf("year %d: %w", year, ErrRange)
	}

	// Push the (possibly wild) day through the day-number arithmetic,
	// which absorbs any excess, then read the normalized date back.
	dn, err := cal.DayNumber(int32(year), int(month0)+1, day)
	if err != nil {
		return DateTime{}, err
	}
	ny, nm, nd, err := cal.FromDayNumber(dn)
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(ny, nm, nd, int(hour), int(minute), int(second), attos, cal, std)
}

// FromDayNumber builds the midnight DateTime of a day number under the
// given calendar and standard.
func FromDayNumber(dayNumber int64, cal Calendar, std Standard) (DateTime, error) {
	y, m, d, err := cal.FromDayNumber(dayNumber)
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(y, m, d, 0, 0, 0, 0, cal, std)
}

// FromDayNumberAndFraction builds a DateTime from a day number and a
// fraction of that day. The fraction's float64 mantissa limits
// precision to about 10 microseconds; the sub-second part is resolved
// in 10 fs steps so that float noise below that does not leak into the
// attosecond field.
func FromDayNumberAndFraction(dayNumber int64, fraction float64, cal Calendar, std Standard) (DateTime, error) {
	y, m, d, err := cal.FromDayNumber(dayNumber)
	if err != nil {
		return DateTime{}, err
	}
	fsecs := fraction * 86400
	whole := int64(fsecs)
	attos := int64((fsecs-float64(whole))*100_000_000_000_000) * 10_000
	return NewUnnormalized(int64(y), int64(m), int64(d), 0, 0, whole, attos, cal, std)
}

// Accessors. Month and Day are 1-based; Month0 and Day0 are the
// 0-based variants.

func (dt DateTime) Year() int32        { return dt.year }
func (dt DateTime) Month() int         { return int(dt.month) }
func (dt DateTime) Month0() int        { return int(dt.month) - 1 }
func (dt DateTime) Day() int           { return int(dt.day) }
func (dt DateTime) Day0() int          { return int(dt.day) - 1 }
func (dt DateTime) Hour() int          { return int(dt.hour) }
func (dt DateTime) Minute() int        { return int(dt.minute) }
func (dt DateTime) Second() int        { return int(dt.second) }
func (dt DateTime) Attosecond() int64  { return int64(dt.attos) }
func (dt DateTime) Calendar() Calendar { return dt.cal }
func (dt DateTime) Standard() Standard { return dt.std }

// YearBC returns the year as a BCE count: ISO year 0 is 1 BCE. For CE
// years (year >= 1) the result is zero or negative.
func (dt DateTime) YearBC() int64 { return 1 - int64(dt.year) }

// Date returns the calendar date fields.
func (dt DateTime) Date() (year int32, month, day int) {
	return dt.year, int(dt.month), int(dt.day)
}

// Time returns the time-of-day fields.
func (dt DateTime) Time() (hour, minute, second int, attos int64) {
	return int(dt.hour), int(dt.minute), int(dt.second), int64(dt.attos)
}

// Setters. Each returns a copy with one field (or field group)
// replaced, revalidating what the change can invalidate.

// SetYear replaces the year. Fails for February 29th of a year that is
// not a leap year.
func (dt DateTime) SetYear(year int32) (DateTime, error) {
	return NewDateTime(year, int(dt.month), int(dt.day), int(dt.hour), int(dt.minute), int(dt.second), int64(dt.attos), dt.cal, dt.std)
}

// SetYearBC replaces the year given as a BCE count (see YearBC).
func (dt DateTime) SetYearBC(yearBC int32) (DateTime, error) {
	return dt.SetYear(1 - yearBC)
}

// SetMonth replaces the month. Fails when the current day does not
// exist in the new month.
func (dt DateTime) SetMonth(month int) (DateTime, error) {
	return NewDateTime(dt.year, month, int(dt.day), int(dt.hour), int(dt.minute), int(dt.second), int64(dt.attos), dt.cal, dt.std)
}

// SetDay replaces the day of the month.
func (dt DateTime) SetDay(day int) (DateTime, error) {
	return NewDateTime(dt.year, int(dt.month), day, int(dt.hour), int(dt.minute), int(dt.second), int64(dt.attos), dt.cal, dt.std)
}

// SetHour replaces the hour.
func (dt DateTime) SetHour(hour int) (DateTime, error) {
	return NewDateTime(dt.year, int(dt.month), int(dt.day), hour, int(dt.minute), int(dt.second), int64(dt.attos), dt.cal, dt.std)
}

// SetMinute replaces the minute.
func (dt DateTime) SetMinute(minute int) (DateTime, error) {
	return NewDateTime(dt.year, int(dt.month), int(dt.day), int(dt.hour), minute, int(dt.second), int64(dt.attos), dt.cal, dt.std)
}

// SetSecond replaces the second. 60 is accepted only under UTC.
func (dt DateTime) SetSecond(second int) (DateTime, error) {
	return NewDateTime(dt.year, int(dt.month), int(dt.day), int(dt.hour), int(dt.minute), second, int64(dt.attos), dt.cal, dt.std)
}

// SetAttosecond replaces the sub-second field.
func (dt DateTime) SetAttosecond(attos int64) (DateTime, error) {
	return NewDateTime(dt.year, int(dt.month), int(dt.day), int(dt.hour), int(dt.minute), int(dt.second), attos, dt.cal, dt.std)
}

// SetDate replaces the whole calendar date.
func (dt DateTime) SetDate(year int32, month, day int) (DateTime, error) {
	return NewDateTime(year, month, day, int(dt.hour), int(dt.minute), int(dt.second), int64(dt.attos), dt.cal, dt.std)
}

// SetTime replaces the whole time of day.
func (dt DateTime) SetTime(hour, minute, second int, attos int64) (DateTime, error) {
	return NewDateTime(dt.year, int(dt.month), int(dt.day), hour, minute, second, attos, dt.cal, dt.std)
}

// DayNumber returns the date's day number under its calendar.
func (dt DateTime) DayNumber() int64 {
	dn, _ := dt.cal.DayNumber(dt.year, int(dt.month), int64(dt.day))
	return dn
}

// DayFraction returns the time of day as a fraction of a nominal
// 86400-second day, in [0,1) (slightly above 1 during a leap second).
func (dt DateTime) DayFraction() float64 {
	secs := int64(dt.hour)*3600 + int64(dt.minute)*60 + int64(dt.second)
	return (float64(secs) + float64(dt.attos)/attosPerSecF64) / 86400
}

// Weekday returns the ISO 8601 day of the week, 1 (Monday) through
// 7 (Sunday). Day number 0 of the Gregorian calendar is a Monday; the
// Julian epoch sits two days earlier, on a Saturday.
func (dt DateTime) Weekday() int {
	offset := int64(0)
	if dt.cal == Julian {
		offset = 5
	}
	_, wd := divmod(dt.DayNumber()+offset, 7)
	return int(wd) + 1
}

// DurationFromEpoch returns the elapsed time, on the continuous
// internal timeline, from the DateTime's calendar epoch to the instant
// it names.
//
// The calendar label first reduces to a naive reading (day number and
// time of day), then the standard's relation to the internal timeline
// is applied. UTC needs its elapsed leap seconds restored: a first
// count at the naive instant anchors a probe one extra second ahead,
// whose count is exact because leap insertions are isolated. A :60
// label shares its naive reading with the following midnight, so after
// the correction it lands one second late; the final adjustment pulls
// it back inside the inserted second.
func (dt DateTime) DurationFromEpoch() Duration {
	dn, _ := dt.cal.DayNumber(dt.year, int(dt.month), int64(dt.day))
	secs := dn*86400 + int64(dt.hour)*3600 + int64(dt.minute)*60 + int64(dt.second)
	label := NewDuration(secs, int64(dt.attos))

	switch dt.std {
	case TT:
		return label
	case TAI:
		return label.Add(TAI.ttOffset())
	case UTC:
		approx := label.Add(UTC.ttOffset())
		naive := dt.cal.epoch().Add(approx)
		l1 := LeapSecondsElapsedAt(naive)
		leaps := LeapSecondsElapsedAt(naive.Add(NewDuration(l1+1, 0)))
		out := approx.Add(NewDuration(leaps, 0))
		if dt.second == 60 {
			out = out.Sub(NewDuration(1, 0))
		}
		return out
	default: // TCG, TCB
		syncFromEpoch := EpochTimeStandard.Instant().Since(dt.cal.epoch())
		return syncFromEpoch.Add(dt.std.elapsedTT(label.Sub(syncFromEpoch)))
	}
}

// FromDurationFromEpoch is the inverse of DurationFromEpoch: it turns
// elapsed time since a calendar's epoch back into a calendar reading
// under the given standard. ErrRange is wrapped when the instant falls
// outside the calendar's representable years.
func FromDurationFromEpoch(d Duration, cal Calendar, std Standard) (DateTime, error) {
	var label Duration
	leap60 := false

	switch std {
	case TT:
		label = d
	case TAI:
		label = d.Sub(TAI.ttOffset())
	case UTC:
		at := cal.epoch().Add(d)
		leaps := LeapSecondsElapsedAt(at)
		// Inside an inserted second the count has not ticked yet, so
		// the naive label would read the following midnight. Detect
		// that, back the label up one second, and restore the :60.
		t := activeLeapTable.Load()
		if int(leaps) < t.Len() {
			next := t.Instant(int(leaps))
			if !at.Before(next.Sub(NewDuration(1, 0))) && at.Before(next) {
				leap60 = true
			}
		}
		label = d.Sub(UTC.ttOffset()).Sub(NewDuration(leaps, 0))
		if leap60 {
			label = label.Sub(NewDuration(1, 0))
		}
	default: // TCG, TCB
		syncFromEpoch := EpochTimeStandard.Instant().Since(cal.epoch())
		label = syncFromEpoch.Add(std.elapsedFromTT(d.Sub(syncFromEpoch)))
	}

	// Euclidean split of the label into a day number and time of day.
	secs, attos := label.secs, label.attos
	if attos < 0 {
		secs--
		attos += attosPerSec
	}
	dn, sod := divmod(secs, 86400)

	y, m, dd, err := cal.FromDayNumber(dn)
	if err != nil {
		return DateTime{}, err
	}
	second := int(sod % 60)
	if leap60 {
		second++ // 59 becomes the leap reading
	}
	return NewDateTime(y, m, dd, int(sod/3600), int(sod/60%60), second, attos, cal, std)
}

// Instant returns the precise instant this DateTime names.
func (dt DateTime) Instant() Instant {
	return dt.cal.epoch().Add(dt.DurationFromEpoch())
}

// DateTime converts the instant into a calendar reading under the
// given calendar and standard.
func (i Instant) DateTime(cal Calendar, std Standard) (DateTime, error) {
	return FromDurationFromEpoch(i.Since(cal.epoch()), cal, std)
}

// ToCalendar re-expresses the same instant under another calendar. The
// two calendars' epochs are exactly two days apart, so the conversion
// is a day-number shift; the time of day carries over unchanged.
func (dt DateTime) ToCalendar(cal Calendar) (DateTime, error) {
	if cal == dt.cal {
		return dt, nil
	}
	dn := dt.DayNumber()
	if cal == Julian {
		dn += 2
	} else {
		dn -= 2
	}
	y, m, d, err := cal.FromDayNumber(dn)
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(y, m, d, int(dt.hour), int(dt.minute), int(dt.second), int64(dt.attos), cal, dt.std)
}

// ToStandard re-expresses the same instant under another time
// standard, passing through the internal timeline.
func (dt DateTime) ToStandard(std Standard) (DateTime, error) {
	if std == dt.std {
		return dt, nil
	}
	return FromDurationFromEpoch(dt.DurationFromEpoch(), dt.cal, std)
}

// AddDuration advances the calendar reading by d. This is label
// arithmetic: under UTC a span crossing a leap second moves one
// labelled second further than the instant does.
func (dt DateTime) AddDuration(d Duration) (DateTime, error) {
	return NewUnnormalized(int64(dt.year), int64(dt.month), int64(dt.day),
		int64(dt.hour), int64(dt.minute), int64(dt.second)+d.secs,
		int64(dt.attos)+d.attos, dt.cal, dt.std)
}

// SubDuration moves the calendar reading back by d.
func (dt DateTime) SubDuration(d Duration) (DateTime, error) {
	return dt.AddDuration(d.Neg())
}

// Sub returns the true elapsed time between the instants the two
// readings name (positive when dt is later). Unlike AddDuration this
// counts leap seconds.
func (dt DateTime) Sub(o DateTime) Duration {
	return dt.Instant().Since(o.Instant())
}

// Compare orders two readings by the instants they name, across
// calendars and standards. Returns -1, 0 or +1.
func (dt DateTime) Compare(o DateTime) int {
	return dt.Instant().Compare(o.Instant())
}

// Equal reports whether the two readings are identical field for
// field, including calendar and standard. Readings of the same instant
// under different standards are not Equal; use Compare for that.
func (dt DateTime) Equal(o DateTime) bool { return dt == o }

// String renders the reading as, for example,
// "2000-01-01 11:58:55.816000000000000000 Gregorian TT".
func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%018d %s %s",
		dt.year, dt.month, dt.day, dt.hour, dt.minute, dt.second,
		dt.attos, dt.cal.Name(), dt.std.Abbrev())
}
