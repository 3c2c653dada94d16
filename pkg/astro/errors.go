package astro

import "errors"

// ErrRange reports a field or computed value outside its valid domain:
// an invalid month, day, hour, minute, second or attosecond, a day
// number beyond a calendar's representable bounds, or out-of-bounds
// inputs on a precise Julian-day path. Fallible constructors wrap it
// with context; match with errors.Is.
var ErrRange = errors.New("value out of range")
