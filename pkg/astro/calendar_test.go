package astro

import (
	"errors"
	"testing"
)

func mustDayNumber(t *testing.T, c Calendar, year int32, month int, day int64) int64 {
	t.Helper()
	dn, err := c.DayNumber(year, month, day)
	if err != nil {
		t.Fatalf("DayNumber(%d, %d, %d): %v", year, month, day, err)
	}
	return dn
}

func TestDayNumberKnownDates(t *testing.T) {
	cases := []struct {
		cal   Calendar
		year  int32
		month int
		day   int64
		want  int64
	}{
		{Gregorian, 1, 1, 1, 0},
		{Gregorian, 1, 12, 31, 364},
		{Gregorian, 2, 1, 1, 365},
		{Gregorian, 1900, 1, 1, 693595},
		{Gregorian, 1970, 1, 1, 719162},
		{Gregorian, 1977, 1, 1, 721719},
		{Gregorian, 2000, 1, 1, 730119},
		{Gregorian, 2000, 3, 1, 730179},
		{Julian, 1, 1, 1, 0},
		{Julian, 2000, 1, 1, 730134},
		{Julian, -4712, 1, 1, -1721424},
	}
	for _, c := range cases {
		if got := mustDayNumber(t, c.cal, c.year, c.month, c.day); got != c.want {
			t.Errorf("%s DayNumber(%d, %d, %d): got %d, want %d",
				c.cal.Name(), c.year, c.month, c.day, got, c.want)
		}
	}
}

func TestDayNumberExtremes(t *testing.T) {
	cases := []struct {
		cal  Calendar
		min  int64
		max  int64
	}{
		{Gregorian, gregorianDayNumberMin, gregorianDayNumberMax},
		{Julian, julianDayNumberMin, julianDayNumberMax},
	}
	for _, c := range cases {
		if got := mustDayNumber(t, c.cal, -2147483648, 1, 1); got != c.min {
			t.Errorf("%s min: got %d, want %d", c.cal.Name(), got, c.min)
		}
		if got := mustDayNumber(t, c.cal, 2147483647, 12, 31); got != c.max {
			t.Errorf("%s max: got %d, want %d", c.cal.Name(), got, c.max)
		}
	}
}

func TestDayNumberBadMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		if _, err := Gregorian.DayNumber(2000, month, 1); !errors.Is(err, ErrRange) {
			t.Errorf("DayNumber month %d: got %v, want ErrRange", month, err)
		}
	}
}

func TestFromDayNumberRoundTrip(t *testing.T) {
	for _, cal := range []Calendar{Gregorian, Julian} {
		// A spread of dates either side of every leap-rule boundary.
		dates := []struct {
			year  int32
			month int
			day   int64
		}{
			{1, 1, 1}, {1, 3, 1}, {4, 2, 29}, {100, 2, 28}, {400, 2, 29},
			{1582, 10, 15}, {1900, 2, 28}, {2000, 2, 29}, {2000, 12, 31},
			{2024, 2, 29}, {-1, 12, 31}, {0, 1, 1}, {0, 2, 29}, {-4712, 1, 1},
		}
		for _, d := range dates {
			if d.month == 2 && int(d.day) > cal.MonthDays(2, d.year) {
				continue
			}
			dn := mustDayNumber(t, cal, d.year, d.month, d.day)
			y, m, dd, err := cal.FromDayNumber(dn)
			if err != nil {
				t.Fatalf("%s FromDayNumber(%d): %v", cal.Name(), dn, err)
			}
			if y != d.year || m != d.month || int64(dd) != d.day {
				t.Errorf("%s round trip %d-%02d-%02d: got %d-%02d-%02d",
					cal.Name(), d.year, d.month, d.day, y, m, dd)
			}
		}
	}
}

func TestFromDayNumberSweep(t *testing.T) {
	// Consecutive day numbers must decode to consecutive dates.
	for _, cal := range []Calendar{Gregorian, Julian} {
		start := mustDayNumber(t, cal, 1999, 12, 20)
		py, pm, pd, err := cal.FromDayNumber(start)
		if err != nil {
			t.Fatal(err)
		}
		for dn := start + 1; dn < start+500; dn++ {
			y, m, d, err := cal.FromDayNumber(dn)
			if err != nil {
				t.Fatal(err)
			}
			back := mustDayNumber(t, cal, y, m, int64(d))
			if back != dn {
				t.Fatalf("%s dn %d decoded to %d-%02d-%02d which encodes to %d",
					cal.Name(), dn, y, m, d, back)
			}
			if d == pd+1 && m == pm && y == py {
				// normal advance
			} else if d == 1 && (m == pm+1 && y == py || m == 1 && pm == 12 && y == py+1) {
				// month or year rollover
			} else {
				t.Fatalf("%s dn %d: %d-%02d-%02d does not follow %d-%02d-%02d",
					cal.Name(), dn, y, m, d, py, pm, pd)
			}
			py, pm, pd = y, m, d
		}
	}
}

func TestFromDayNumberOutOfRange(t *testing.T) {
	cases := []struct {
		cal Calendar
		dn  int64
	}{
		{Gregorian, gregorianDayNumberMin - 1},
		{Gregorian, gregorianDayNumberMax + 1},
		{Julian, julianDayNumberMin - 1},
		{Julian, julianDayNumberMax + 1},
	}
	for _, c := range cases {
		if _, _, _, err := c.cal.FromDayNumber(c.dn); !errors.Is(err, ErrRange) {
			t.Errorf("%s FromDayNumber(%d): got %v, want ErrRange", c.cal.Name(), c.dn, err)
		}
	}
}

func TestCalendarOffsetIsTwoDays(t *testing.T) {
	// 1582-10-15 Gregorian and 1582-10-05 Julian name the same day.
	dg := mustDayNumber(t, Gregorian, 1582, 10, 15)
	dj := mustDayNumber(t, Julian, 1582, 10, 5)
	if dj != dg+2 {
		t.Fatalf("julian dn %d, gregorian dn %d: want julian = gregorian + 2", dj, dg)
	}
}

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		cal  Calendar
		year int32
		want bool
	}{
		{Gregorian, 2000, true},
		{Gregorian, 1900, false},
		{Gregorian, 1996, true},
		{Gregorian, 2100, false},
		{Gregorian, 0, true},
		{Julian, 1900, true},
		{Julian, 2100, true},
		{Julian, 1999, false},
	}
	for _, c := range cases {
		if got := c.cal.IsLeapYear(c.year); got != c.want {
			t.Errorf("%s IsLeapYear(%d): got %v, want %v", c.cal.Name(), c.year, got, c.want)
		}
	}
}

func TestMonthDays(t *testing.T) {
	if got := Gregorian.MonthDays(2, 2000); got != 29 {
		t.Errorf("Feb 2000: got %d, want 29", got)
	}
	if got := Gregorian.MonthDays(2, 1900); got != 28 {
		t.Errorf("Feb 1900: got %d, want 28", got)
	}
	if got := Julian.MonthDays(2, 1900); got != 29 {
		t.Errorf("Julian Feb 1900: got %d, want 29", got)
	}
	if got := Gregorian.MonthDays(4, 2000); got != 30 {
		t.Errorf("Apr: got %d, want 30", got)
	}
	if got := Gregorian.MonthDays(12, 2000); got != 31 {
		t.Errorf("Dec: got %d, want 31", got)
	}
}
