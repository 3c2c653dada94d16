package astro

import (
	"fmt"
	"sync/atomic"
)

// ianaNTPLeapSeconds lists, straight from the IANA leap-seconds.list
// file, the NTP second at which each UTC leap second took effect (the
// first second of the UTC day following the insertion).
var ianaNTPLeapSeconds = []int64{
	2272060800, // 1 Jan 1972
	2287785600, // 1 Jul 1972
	2303683200, // 1 Jan 1973
	2335219200, // 1 Jan 1974
	2366755200, // 1 Jan 1975
	2398291200, // 1 Jan 1976
	2429913600, // 1 Jan 1977
	2461449600, // 1 Jan 1978
	2492985600, // 1 Jan 1979
	2524521600, // 1 Jan 1980
	2571782400, // 1 Jul 1981
	2603318400, // 1 Jul 1982
	2634854400, // 1 Jul 1983
	2698012800, // 1 Jul 1985
	2776982400, // 1 Jan 1988
	2840140800, // 1 Jan 1990
	2871676800, // 1 Jan 1991
	2918937600, // 1 Jul 1992
	2950473600, // 1 Jul 1993
	2982009600, // 1 Jul 1994
	3029443200, // 1 Jan 1996
	3076704000, // 1 Jul 1997
	3124137600, // 1 Jan 1999
	3345062400, // 1 Jan 2006
	3439756800, // 1 Jan 2009
	3550089600, // 1 Jul 2012
	3644697600, // 1 Jul 2015
	3692217600, // 1 Jan 2017
}

// A LeapTable holds the UTC leap-second history as NTP seconds of
// effect, in strictly increasing order. It is immutable once built.
// The library ships with the IANA history through 2017 compiled in;
// SetLeapTable swaps in a newer table, typically one loaded from a
// fresher leap-seconds.list file.
type LeapTable struct {
	ntp []int64
}

// NewLeapTable builds a LeapTable from NTP seconds of effect. The
// values must be strictly increasing or ErrRange is wrapped. The slice
// is copied.
func NewLeapTable(ntpSeconds []int64) (*LeapTable, error) {
	for i := 1; i < len(ntpSeconds); i++ {
		if ntpSeconds[i] <= ntpSeconds[i-1] {
			return nil, fmt.Errorf("leap entry %d (%d) not after %d: %w",
				i, ntpSeconds[i], ntpSeconds[i-1], ErrRange)
		}
	}
	t := &LeapTable{ntp: make([]int64, len(ntpSeconds))}
	copy(t.ntp, ntpSeconds)
	return t, nil
}

// DefaultLeapTable returns the compiled-in IANA history.
func DefaultLeapTable() *LeapTable {
	t, _ := NewLeapTable(ianaNTPLeapSeconds)
	return t
}

// Len returns the number of leap seconds in the table.
func (t *LeapTable) Len() int { return len(t.ntp) }

// Instant returns the Instant of the i-th leap second itself, the
// inserted :60 second (one second before its NTP second of effect on
// the UTC label scale). NTP seconds exclude prior leaps, so i of them
// plus the inserted second itself are added back to land on the
// continuous timeline.
func (t *LeapTable) Instant(i int) Instant {
	return EpochNTP.Instant().Add(NewDuration(t.ntp[i]+int64(i)+1, 0))
}

// ElapsedAt returns how many leap seconds have fully elapsed at the
// given instant. An instant inside a leap second does not count that
// leap yet; the instant exactly at a leap's end does.
func (t *LeapTable) ElapsedAt(at Instant) int64 {
	var n int64
	for i := range t.ntp {
		if t.Instant(i).After(at) {
			break
		}
		n++
	}
	return n
}

// activeLeapTable is read on every UTC conversion; atomic.Pointer keeps
// SetLeapTable safe against concurrent readers.
var activeLeapTable atomic.Pointer[LeapTable]

func init() {
	activeLeapTable.Store(DefaultLeapTable())
}

// SetLeapTable installs t as the table used by all UTC and NTP
// conversions in the package. Passing nil restores the compiled-in
// history.
func SetLeapTable(t *LeapTable) {
	if t == nil {
		t = DefaultLeapTable()
	}
	activeLeapTable.Store(t)
}

// LeapInstants returns the Instants of every known leap second, in
// order, from the active table.
func LeapInstants() []Instant {
	t := activeLeapTable.Load()
	out := make([]Instant, t.Len())
	for i := range out {
		out[i] = t.Instant(i)
	}
	return out
}

// LeapSecondsElapsedAt reports how many leap seconds have fully
// elapsed at the given instant, per the active table.
func LeapSecondsElapsedAt(at Instant) int64 {
	return activeLeapTable.Load().ElapsedAt(at)
}
