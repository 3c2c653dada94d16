package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mikedilger/astrotime/pkg/astro"
)

func cmdNow(args []string) int {
	flags := flag.NewFlagSet("now", flag.ContinueOnError)
	cal := flags.String("cal", "gregorian", "calendar (gregorian, julian)")
	std := flags.String("std", "", "time standard (default: show UTC, TAI and TT)")
	jd := flags.Bool("jd", false, "also print the Julian day")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	c, err := parseCalendar(*cal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astro: now: %v\n", err)
		return 1
	}

	now := astro.Now()

	standards := []astro.Standard{astro.UTC, astro.TAI, astro.TT}
	if *std != "" {
		s, err := parseStandard(*std)
		if err != nil {
			fmt.Fprintf(os.Stderr, "astro: now: %v\n", err)
			return 1
		}
		standards = []astro.Standard{s}
	}

	for _, s := range standards {
		dt, err := now.DateTime(c, s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "astro: now: %v\n", err)
			return 1
		}
		fmt.Println(dt)
	}
	if *jd {
		fmt.Println(now.AsJulianDayFormatted())
	}
	return 0
}
