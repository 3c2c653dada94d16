package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mikedilger/astrotime/pkg/astro"
)

func cmdConvert(args []string) int {
	flags := flag.NewFlagSet("convert", flag.ContinueOnError)
	year := flags.Int("year", 2000, "year (ISO: 0 is 1 BCE)")
	month := flags.Int("month", 1, "month 1..12")
	day := flags.Int("day", 1, "day of month")
	hour := flags.Int("hour", 0, "hour 0..23")
	minute := flags.Int("minute", 0, "minute 0..59")
	second := flags.Int("second", 0, "second 0..59 (60 for a UTC leap second)")
	attos := flags.Int64("attos", 0, "attoseconds 0..1e18-1")
	fromCal := flags.String("cal", "gregorian", "input calendar")
	fromStd := flags.String("std", "utc", "input standard")
	toCal := flags.String("tocal", "", "output calendar (default: same)")
	toStd := flags.String("tostd", "", "output standard (default: same)")
	jd := flags.Bool("jd", false, "also print the Julian day")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	fail := func(err error) int {
		fmt.Fprintf(os.Stderr, "astro: convert: %v\n", err)
		return 1
	}

	cal, err := parseCalendar(*fromCal)
	if err != nil {
		return fail(err)
	}
	std, err := parseStandard(*fromStd)
	if err != nil {
		return fail(err)
	}

	dt, err := astro.NewDateTime(int32(*year), *month, *day, *hour, *minute, *second, *attos, cal, std)
	if err != nil {
		return fail(err)
	}

	if *toCal != "" {
		c, err := parseCalendar(*toCal)
		if err != nil {
			return fail(err)
		}
		if dt, err = dt.ToCalendar(c); err != nil {
			return fail(err)
		}
	}
	if *toStd != "" {
		s, err := parseStandard(*toStd)
		if err != nil {
			return fail(err)
		}
		if dt, err = dt.ToStandard(s); err != nil {
			return fail(err)
		}
	}

	fmt.Println(dt)
	if *jd {
		fmt.Println(dt.Instant().AsJulianDayFormatted())
	}
	return 0
}
