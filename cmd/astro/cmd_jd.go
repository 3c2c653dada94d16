package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/mikedilger/astrotime/pkg/astro"
)

// cmdJD converts in either direction: -value decodes a Julian day into
// a calendar reading, the date flags encode one.
func cmdJD(args []string) int {
	flags := flag.NewFlagSet("jd", flag.ContinueOnError)
	value := flags.Float64("value", math.NaN(), "Julian day to decode")
	year := flags.Int("year", 2000, "year")
	month := flags.Int("month", 1, "month")
	day := flags.Int("day", 1, "day")
	hour := flags.Int("hour", 0, "hour")
	minute := flags.Int("minute", 0, "minute")
	second := flags.Int("second", 0, "second")
	cal := flags.String("cal", "gregorian", "calendar for the reading")
	std := flags.String("std", "tt", "standard for the reading")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	fail := func(err error) int {
		fmt.Fprintf(os.Stderr, "astro: jd: %v\n", err)
		return 1
	}

	c, err := parseCalendar(*cal)
	if err != nil {
		return fail(err)
	}
	s, err := parseStandard(*std)
	if err != nil {
		return fail(err)
	}

	if !math.IsNaN(*value) {
		dt, err := astro.FromJulianDayFloat(*value).DateTime(c, s)
		if err != nil {
			return fail(err)
		}
		fmt.Println(dt)
		return 0
	}

	dt, err := astro.NewDateTime(int32(*year), *month, *day, *hour, *minute, *second, 0, c, s)
	if err != nil {
		return fail(err)
	}
	i := dt.Instant()
	d, sec, att := i.AsJulianDayPrecise()
	fmt.Println(i.AsJulianDayFormatted())
	fmt.Printf("precise: day %d + %ds + %dattos\n", d, sec, att)
	return 0
}
