package astro

// Epoch names a well-known reference Instant, used for offsetting
// events from. The catalog is a fixed set of precomputed constants;
// Instant returns the point each one refers to.
type Epoch int

const (
	// EpochJulianPeriod is the start of the Julian Period: 4713 BCE
	// January 1st (proleptic Julian calendar), 12:00:00 TT. JD 0 by
	// definition (per the IAU convention, in TT since 1997).
	EpochJulianPeriod Epoch = iota

	// EpochJulianCalendar is January 1st, 1 CE, 00:00:00 TT in the
	// proleptic Julian calendar (JD 1721423.5). Exactly two days
	// before the Gregorian calendar epoch; not to be confused with
	// the much earlier Julian Period.
	EpochJulianCalendar

	// EpochGregorianCalendar is January 1st, 1 CE, 00:00:00 TT in the
	// proleptic Gregorian calendar (JD 1721425.5).
	EpochGregorianCalendar

	// EpochJ1900 is the J1900.0 astronomical epoch: December 31st,
	// 1899 CE Gregorian, 12:00:00 TT (JD 2415020.0).
	EpochJ1900

	// EpochE1900 is the 1900.0 epoch: January 1st, 1900 CE Gregorian,
	// 00:00:00 TT (JD 2415020.5).
	EpochE1900

	// EpochNTP is the NTP epoch: January 1st, 1900 CE Gregorian,
	// 00:00:00 UTC (by the retrospective pre-1972 convention,
	// 00:00:41.184 TT). NTP second counts are offsets from here,
	// excluding leap seconds.
	EpochNTP

	// EpochUnix is the UNIX epoch: January 1st, 1970 CE Gregorian,
	// 00:00:00 UTC (JD 2440587.5 approximately; UTC, not TT).
	EpochUnix

	// EpochTimeStandard is the synchronization epoch where TT, TCG
	// and TCB all read the same: January 1st, 1977 CE Gregorian,
	// 00:00:32.184 TT (JD 2443144.5003725). Instants are internally
	// stored as offsets from this point.
	EpochTimeStandard

	// EpochY1977 is January 1st, 1977 CE Gregorian, 00:00:00 UTC,
	// the instant immediately after the 1977 leap second.
	EpochY1977

	// EpochJ1991_25 is the J1991.25 astronomical epoch (the Hipparcos
	// catalog epoch): April 2nd, 1991 CE Gregorian, 13:30:00 TT
	// (JD 2448349.0625).
	EpochJ1991_25

	// EpochY2K is January 1st, 2000 CE Gregorian, 00:00:00 UTC.
	EpochY2K

	// EpochJ2000 is the J2000.0 astronomical epoch: January 1st,
	// 2000 CE Gregorian, 12:00:00 TT (JD 2451545.0).
	EpochJ2000

	// EpochJ2100 is the J2100.0 astronomical epoch: January 1st,
	// 2100 CE Gregorian, 12:00:00 TT (JD 2488070.0).
	EpochJ2100

	// EpochJ2200 is the J2200.0 astronomical epoch: January 2nd,
	// 2200 CE Gregorian, 12:00:00 TT (JD 2524595.0).
	EpochJ2200
)

// Instant returns the point in time this epoch refers to. All values
// are internally expressed on the continuous (TT) timeline.
func (e Epoch) Instant() Instant {
	switch e {
	case EpochJulianPeriod:
		return instantOf(Duration{secs: -211_087_684_832, attos: -184_000_000_000_000_000})
	case EpochJulianCalendar:
		return instantOf(Duration{secs: -62_356_694_432, attos: -184_000_000_000_000_000})
	case EpochGregorianCalendar:
		return instantOf(Duration{secs: -62_356_521_632, attos: -184_000_000_000_000_000})
	case EpochJ1900:
		return instantOf(Duration{secs: -2_429_956_832, attos: -184_000_000_000_000_000})
	case EpochE1900:
		return instantOf(Duration{secs: -2_429_913_632, attos: -184_000_000_000_000_000})
	case EpochNTP:
		return instantOf(Duration{secs: -2_429_913_591, attos: 0})
	case EpochUnix:
		return instantOf(Duration{secs: -220_924_791, attos: 0})
	case EpochTimeStandard:
		return instantOf(Duration{secs: 0, attos: 0})
	case EpochY1977:
		return instantOf(Duration{secs: 16, attos: 0})
	case EpochJ1991_25:
		return instantOf(Duration{secs: 449_674_167, attos: 816_000_000_000_000_000})
	case EpochY2K:
		return instantOf(Duration{secs: 725_760_032, attos: 0})
	case EpochJ2000:
		return instantOf(Duration{secs: 725_803_167, attos: 816_000_000_000_000_000})
	case EpochJ2100:
		return instantOf(Duration{secs: 3_881_563_167, attos: 816_000_000_000_000_000})
	case EpochJ2200:
		return instantOf(Duration{secs: 7_037_323_167, attos: 816_000_000_000_000_000})
	}
	return Instant{}
}

// String returns the conventional name of the epoch.
func (e Epoch) String() string {
	switch e {
	case EpochJulianPeriod:
		return "Julian Period"
	case EpochJulianCalendar:
		return "Julian Calendar"
	case EpochGregorianCalendar:
		return "Gregorian Calendar"
	case EpochJ1900:
		return "J1900.0"
	case EpochE1900:
		return "1900.0"
	case EpochNTP:
		return "NTP"
	case EpochUnix:
		return "Unix"
	case EpochTimeStandard:
		return "Time Standard"
	case EpochY1977:
		return "1977.0 UTC"
	case EpochJ1991_25:
		return "J1991.25"
	case EpochY2K:
		return "Y2K"
	case EpochJ2000:
		return "J2000.0"
	case EpochJ2100:
		return "J2100.0"
	case EpochJ2200:
		return "J2200.0"
	}
	return "unknown epoch"
}

// Epochs lists the whole catalog in chronological order, for callers
// that want to enumerate it (the CLI does).
func Epochs() []Epoch {
	return []Epoch{
		EpochJulianPeriod, EpochJulianCalendar, EpochGregorianCalendar,
		EpochJ1900, EpochE1900, EpochNTP, EpochUnix, EpochTimeStandard,
		EpochY1977, EpochJ1991_25, EpochY2K, EpochJ2000, EpochJ2100,
		EpochJ2200,
	}
}
