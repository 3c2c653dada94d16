package astro

// Standard identifies a time standard (time scale). TT is the internal
// reference scale: every other standard is defined by its relation to
// TT, and conversions between standards pass through it.
type Standard int

const (
	// TT is Terrestrial Time, the idealized scale on the Earth geoid
	// that TAI approximates. The internal timeline runs on TT.
	TT Standard = iota

	// TAI is International Atomic Time. TT = TAI + 32.184 s exactly.
	TAI

	// UTC is Coordinated Universal Time: TAI shifted by an integral
	// number of leap seconds. Before 1972 UTC ticked at variable rates;
	// that era is retrospectively simplified here as a fixed 9-second
	// offset from TAI, so pre-1972 UTC readings are conventional, not
	// historical.
	UTC

	// TCG is Geocentric Coordinate Time, which ticks faster than TT by
	// the constant rate L_G (IAU 2000 resolution B1.9). TCG and TT read
	// the same at the 1977 synchronization instant.
	TCG

	// TCB is Barycentric Coordinate Time, which diverges from TCG by
	// the defining rate L_B (IAU 2006 resolution B3) plus periodic
	// terms. The periodic terms (under 2 ms) are not modelled; only the
	// secular drift is.
	TCB
)

// IAU defining rate constants.
const (
	lg = 6.969290134e-10 // d(TT)/d(TCG) deficit
	lb = 1.550505e-8     // d(TCB)-d(TT) combined secular rate
)

// Abbrev returns the conventional abbreviation, e.g. "TAI".
func (s Standard) Abbrev() string {
	switch s {
	case TT:
		return "TT"
	case TAI:
		return "TAI"
	case UTC:
		return "UTC"
	case TCG:
		return "TCG"
	case TCB:
		return "TCB"
	}
	return "???"
}

// ttOffset returns the constant part of (TT reading - this standard's
// reading) at the same instant. For UTC this is only the pre-1972
// conventional part; elapsed leap seconds are added separately.
func (s Standard) ttOffset() Duration {
	switch s {
	case TAI:
		return NewDuration(32, 184_000_000_000_000_000)
	case UTC:
		// 9 s conventional pre-1972 offset + the TAI offset.
		return NewDuration(41, 184_000_000_000_000_000)
	}
	return Duration{}
}

// ttScale returns the secular rate by which this standard runs fast
// relative to TT, and whether it has one.
func (s Standard) ttScale() (float64, bool) {
	switch s {
	case TCG:
		return lg, true
	case TCB:
		return lb, true
	}
	return 0, false
}

// elapsedTT converts a reading on standard s, expressed as a Duration
// since the 1977 synchronization instant ON THAT STANDARD'S OWN SCALE,
// into the equivalent elapsed TT. Used by the DateTime conversions,
// which first reduce a calendar label to such a reading.
//
// For UTC the caller handles leap seconds; here UTC behaves like TAI
// plus its constant offset. For the coordinate scales the defining
// relation is elapsedTT = elapsedScale * (1 - rate) around the shared
// sync point; the float64 pass costs precision at the attosecond level
// for large spans, which is inherent to a defined-by-rate scale.
func (s Standard) elapsedTT(sinceSync Duration) Duration {
	if rate, ok := s.ttScale(); ok {
		return sinceSync.MulFloat(1 - rate)
	}
	return sinceSync
}

// elapsedFromTT is the inverse of elapsedTT.
func (s Standard) elapsedFromTT(tt Duration) Duration {
	if rate, ok := s.ttScale(); ok {
		return tt.MulFloat(1 / (1 - rate))
	}
	return tt
}
