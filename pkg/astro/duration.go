package astro

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Attoseconds per second, in the three numeric types the arithmetic needs.
const (
	attosPerSec    int64   = 1_000_000_000_000_000_000
	attosPerSecF64 float64 = 1_000_000_000_000_000_000
)

// Duration is a signed interval of time with attosecond (1e-18 s)
// precision. It can represent intervals roughly 40 times as long as
// the age of the universe, in either direction.
//
// The zero value is a zero-length interval. Durations are immutable;
// every operation returns a new value.
type Duration struct {
	secs int64

	// attos is normalized so that |attos| < attosPerSec and its sign
	// matches the sign of secs (or is zero).
	attos int64
}

// normalize restores the attos invariant after raw field arithmetic.
// Negatives are reflected through zero, so euclidean division is not
// needed here.
func (d *Duration) normalize() {
	d.secs += d.attos / attosPerSec
	d.attos %= attosPerSec
	if d.secs < 0 && d.attos > 0 {
		d.attos -= attosPerSec
		d.secs++
	} else if d.secs > 0 && d.attos < 0 {
		d.attos += attosPerSec
		d.secs--
	}
}

// NewDuration returns the normalized Duration of secs seconds plus
// attos attoseconds. The inputs may have any signs and magnitudes;
// they are summed and normalized, so NewDuration never fails.
func NewDuration(secs, attos int64) Duration {
	d := Duration{secs: secs, attos: attos}
	d.normalize()
	return d
}

// DurationFromSeconds converts a floating-point second count.
// Precision is limited by the float64 mantissa.
func DurationFromSeconds(s float64) Duration {
	whole := math.Trunc(s)
	return NewDuration(int64(whole), int64((s-whole)*attosPerSecF64))
}

// FromStdDuration converts a time.Duration (nanosecond resolution).
func FromStdDuration(d time.Duration) Duration {
	return NewDuration(int64(d/time.Second), int64(d%time.Second)*1_000_000_000)
}

// SecondsPart returns the whole-seconds component.
func (d Duration) SecondsPart() int64 { return d.secs }

// AttosPart returns the sub-second component in attoseconds. Its sign
// matches SecondsPart (or is zero).
func (d Duration) AttosPart() int64 { return d.attos }

// AsAttos returns the full value expressed in attoseconds. The second
// return is false on overflow, which happens for durations longer than
// about 9.2 seconds in either direction; this type deliberately spans
// far more than an int64 of attoseconds, so overflow is an expected
// signal, not a failure.
func (d Duration) AsAttos() (int64, bool) {
	secPart := d.secs * attosPerSec
	if d.secs != 0 && secPart/d.secs != attosPerSec {
		return 0, false
	}
	total := secPart + d.attos
	// Same-sign operands: detect wraparound of the addition.
	if (secPart > 0 && total < secPart) || (secPart < 0 && total > secPart) {
		return 0, false
	}
	return total, true
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool { return d.secs == 0 && d.attos == 0 }

// Add returns d + rhs.
func (d Duration) Add(rhs Duration) Duration {
	return NewDuration(d.secs+rhs.secs, d.attos+rhs.attos)
}

// Sub returns d - rhs.
func (d Duration) Sub(rhs Duration) Duration {
	return NewDuration(d.secs-rhs.secs, d.attos-rhs.attos)
}

// Neg returns -d.
func (d Duration) Neg() Duration {
	return Duration{secs: -d.secs, attos: -d.attos}
}

// MulFloat returns d scaled by rhs. Because the scaling runs through
// float64, precision is lost for extreme magnitudes; the result is
// exact only to about 52 bits.
func (d Duration) MulFloat(rhs float64) Duration {
	newsecs := float64(d.secs) * rhs
	secs := math.Trunc(newsecs)
	overflowAttos := int64((newsecs - secs) * attosPerSecF64)
	out := Duration{
		secs:  int64(secs),
		attos: int64(float64(d.attos)*rhs) + overflowAttos,
	}
	out.normalize()
	return out
}

// Compare returns -1, 0 or +1 as d is less than, equal to or greater
// than rhs. Normalization makes the field-wise comparison total.
func (d Duration) Compare(rhs Duration) int {
	switch {
	case d.secs < rhs.secs:
		return -1
	case d.secs > rhs.secs:
		return 1
	case d.attos < rhs.attos:
		return -1
	case d.attos > rhs.attos:
		return 1
	}
	return 0
}

// String renders the duration as an ISO-8601-style period, e.g.
// "P1DT2H1M1.000000000000000120S". Negative durations carry a single
// leading minus ("-PT1S"); the zero duration renders as "P".
func (d Duration) String() string {
	var b strings.Builder
	// Reflect through zero: only the front carries a sign.
	if d.secs < 0 || d.attos < 0 {
		b.WriteString("-P")
	} else {
		b.WriteString("P")
	}

	s := d.secs
	if s < 0 {
		s = -s
	}
	a := d.attos
	if a < 0 {
		a = -a
	}

	days := s / 86400
	s %= 86400
	if days != 0 {
		fmt.Fprintf(&b, "%dD", days)
	}

	if s != 0 || a != 0 {
		b.WriteString("T")
	}

	hours := s / 3600
	s %= 3600
	if hours != 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}

	minutes := s / 60
	s %= 60
	if minutes != 0 {
		fmt.Fprintf(&b, "%dM", minutes)
	}
	if s != 0 || a != 0 {
		if a == 0 {
			fmt.Fprintf(&b, "%dS", s)
		} else {
			fmt.Fprintf(&b, "%d.%018dS", s, a)
		}
	}
	return b.String()
}

// divmod is floor division with a non-negative remainder (euclidean
// for positive divisors). Plain Go division truncates toward zero,
// which is the wrong direction for negative dividends throughout the
// calendar arithmetic.
func divmod(a, b int64) (div, mod int64) {
	div = a / b
	mod = a % b
	if mod < 0 {
		div--
		mod += b
	}
	return div, mod
}
