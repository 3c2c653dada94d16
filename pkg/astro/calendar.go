package astro

import "fmt"

// Calendar selects one of the two supported proleptic calendars. Both
// use the traditional 12 months and leap-year rules; more esoteric
// calendars are out of scope.
//
// Zero and negative years follow ISO 8601: year 0 is 1 BCE, year -1
// is 2 BCE, and in general n BCE is year 1-n.
type Calendar int

const (
	// Gregorian is the proleptic Gregorian calendar.
	Gregorian Calendar = iota
	// Julian is the proleptic Julian calendar.
	Julian
)

// Exact day-number bounds for FromDayNumber, corresponding to the
// calendar dates -2147483648-01-01 and 2147483647-12-31. The two
// calendars place leap days differently, so their bounds differ.
const (
	gregorianDayNumberMin = -784_352_296_671
	gregorianDayNumberMax = 784_352_295_938
	julianDayNumberMin    = -784_368_402_798
	julianDayNumberMax    = 784_368_402_065
)

// Name returns "Gregorian" or "Julian".
func (c Calendar) Name() string {
	if c == Gregorian {
		return "Gregorian"
	}
	return "Julian"
}

// epoch returns the Instant of this calendar's day number 0
// (January 1st, 1 CE, 00:00:00 TT in that calendar).
func (c Calendar) epoch() Instant {
	if c == Gregorian {
		return EpochGregorianCalendar.Instant()
	}
	return EpochJulianCalendar.Instant()
}

// IsLeapYear reports whether year has a February 29th.
func (c Calendar) IsLeapYear(year int32) bool {
	if c == Gregorian {
		return year%4 == 0 && (year%100 != 0 || year%400 == 0)
	}
	return year%4 == 0
}

// MonthDays returns the number of days in a month (year is needed for
// the leap-year rule). month must be in 1..12.
func (c Calendar) MonthDays(month int, year int32) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if c.IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// DayNumber converts a year, month and day into a count of days from
// this calendar's epoch (year 1, month 1, day 1 is day number 0).
//
// year may be any int32. month must be in 1..12 or ErrRange is
// wrapped. day is deliberately NOT validated: values outside the
// month's nominal range, including zero and negatives, propagate
// correctly through the arithmetic, which is what NewUnnormalized
// relies on. The int64 day and internal int64 year keep the entire
// range free of overflow.
func (c Calendar) DayNumber(year int32, month int, day int64) (int64, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d: %w", month, ErrRange)
	}

	// Zero-base the day and month, then re-anchor the year so March 1st
	// starts a "computational year". February becomes month 11, pushing
	// the leap day to the very end of the year and eliminating any
	// mid-year branch.
	m0 := (int64(month) - 1 + 10) % 12
	d0 := day - 1
	y := int64(year) - m0/10

	dn := 365*y +
		// Leap-year first approximation. Before year 0 March 1st one
		// more day must come off, because year 0 is a leap year the
		// truncating division misses; the arithmetic shift of the sign
		// bit supplies that -1 branchlessly.
		y/4 + (y >> 63) +
		// Days contributed by whole months since March: 306 days span
		// the 10 months March..December, and (m0*306+5)/10 walks the
		// month lengths exactly.
		(m0*306+5)/10 +
		d0

	if c == Gregorian {
		// Leap-year second and third approximations.
		dn += -y/100 + y/400
	}

	// Shift the origin back from March 1st to January 1st.
	return dn - 306, nil
}

// FromDayNumber converts a day number back into (year, month, day).
// dayNumber must be within the calendar's documented bounds
// (gregorianDayNumberMin..Max or julianDayNumberMin..Max) or ErrRange
// is wrapped; inside those bounds no intermediate value can overflow.
func (c Calendar) FromDayNumber(dayNumber int64) (year int32, month, day int, err error) {
	min, max := int64(julianDayNumberMin), int64(julianDayNumberMax)
	daysInYearTimes10000 := int64(365_2500)
	if c == Gregorian {
		min, max = gregorianDayNumberMin, gregorianDayNumberMax
		daysInYearTimes10000 = 365_2425
	}
	if dayNumber < min || dayNumber > max {
		return 0, 0, 0, fmt.Errorf("day number %d: %w", dayNumber, ErrRange)
	}

	// Same March-1st/year-0 basis as DayNumber.
	dn := dayNumber + 306

	// Estimate the computational year linearly. The estimate can
	// overshoot by exactly one year (never more), which shows up as a
	// negative remainder below.
	offsetYear := (10_000*dn + 14_780) / daysInYearTimes10000

	remainingDays := func(oy int64) int64 {
		r := dn - 365*oy - oy/4 - (oy >> 63)
		if c == Gregorian {
			r += oy/100 - oy/400
		}
		return r
	}
	remaining := remainingDays(offsetYear)
	if remaining < 0 {
		offsetYear--
		remaining = remainingDays(offsetYear)
	}

	// Invert the (m*306+5)/10 month relation.
	offsetMonth := (100*remaining + 52) / 3060

	year = int32(offsetYear + (offsetMonth+2)/12)
	month = int((offsetMonth+2)%12) + 1
	day = int(remaining-(offsetMonth*306+5)/10) + 1
	return year, month, day, nil
}
