package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mikedilger/astrotime/pkg/astro"
)

// cmdEpochs prints the built-in epoch catalog: each epoch's name, its
// Julian day, and its Gregorian TT reading. With -offsets it also
// prints the raw offset from the internal 1977 reference, which is how
// the constants are stored.
func cmdEpochs(args []string) int {
	flags := flag.NewFlagSet("epochs", flag.ContinueOnError)
	offsets := flags.Bool("offsets", false, "also print internal reference offsets")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	for _, e := range astro.Epochs() {
		i := e.Instant()
		dt, err := i.DateTime(astro.Gregorian, astro.TT)
		if err != nil {
			fmt.Fprintf(os.Stderr, "astro: epochs: %s: %v\n", e, err)
			return 1
		}
		fmt.Printf("%-18s %-22s %s\n", e, i.AsJulianDayFormatted(), dt)
		if *offsets {
			d := i.SinceReference()
			fmt.Printf("%-18s   reference %+ds %+dattos\n", "", d.SecondsPart(), d.AttosPart())
		}
	}
	return 0
}
