// Package astro represents and converts civil calendar dates and
// scientific time standards with attosecond (1e-18 s) precision.
//
// Three representations cover the whole problem:
//
//   - Duration: a signed interval of time, exact to the attosecond,
//     long enough to span tens of ages of the universe.
//   - Instant: an absolute point on a continuous internal timeline,
//     stored as a Duration offset from the moment the TT, TCG and TCB
//     standards historically agreed (1977-01-01 00:00:32.184 TT).
//   - DateTime: a calendar date and time-of-day, tagged with the
//     Calendar (Gregorian or Julian, both proleptic) and the time
//     Standard (TT, TAI, UTC, TCG or TCB) it is read under.
//
// Conversions between calendars or standards always pass through
// Instant, the common interchange representation. UTC is the only
// discontinuous standard: historical leap-second insertions make its
// mapping a step function, resolved against a process-wide immutable
// leap-second table (see LeapTable).
//
// Every type in this package is a plain immutable value. No operation
// mutates shared state, so values may be shared across goroutines
// without synchronization; the only process-wide state is the leap
// table, which is installed once at startup and read-only thereafter.
package astro
