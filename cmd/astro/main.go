// Command astro is a calculator for astronomical time: attosecond
// instants, Julian days, Gregorian/Julian calendars and the TT, TAI,
// UTC, TCG and TCB standards.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mikedilger/astrotime/pkg/astro"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printUsage()
		return
	case "--version", "-v", "version":
		fmt.Println("astro", version)
		return
	case "now":
		os.Exit(cmdNow(os.Args[2:]))
	case "convert":
		os.Exit(cmdConvert(os.Args[2:]))
	case "jd":
		os.Exit(cmdJD(os.Args[2:]))
	case "epochs":
		os.Exit(cmdEpochs(os.Args[2:]))
	case "leaps":
		os.Exit(cmdLeaps(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "astro: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Run 'astro --help' for usage.")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`astro: astronomical time calculator

Attosecond-precision instants on a continuous timeline, read out
through the Gregorian or Julian calendar under the TT, TAI, UTC, TCG
or TCB time standards.

Usage:
  astro <command> [flags]

Commands:
  now [-std S] [-cal C]     Current time (default: UTC, TAI and TT)
  convert -year N ...       Convert a date between calendars/standards
  jd [-value F | date]      Julian day conversions, both directions
  epochs [-offsets]         The built-in epoch catalog
  leaps [-list] [-import F] Leap second table and cache
  repl                      Interactive calculator

Environment:
  ASTROTIME_DB    Leap second cache path (default: leap-seconds.db)

Exit codes:
  0  success
  1  error
`)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "astro: "+format+"\n", args...)
	os.Exit(1)
}

// parseCalendar maps a flag value to a Calendar.
func parseCalendar(s string) (astro.Calendar, error) {
	switch strings.ToLower(s) {
	case "gregorian", "g":
		return astro.Gregorian, nil
	case "julian", "j":
		return astro.Julian, nil
	}
	return astro.Gregorian, fmt.Errorf("unknown calendar %q (gregorian or julian)", s)
}

// parseStandard maps a flag value to a Standard.
func parseStandard(s string) (astro.Standard, error) {
	switch strings.ToUpper(s) {
	case "TT":
		return astro.TT, nil
	case "TAI":
		return astro.TAI, nil
	case "UTC":
		return astro.UTC, nil
	case "TCG":
		return astro.TCG, nil
	case "TCB":
		return astro.TCB, nil
	}
	return astro.TT, fmt.Errorf("unknown standard %q (tt, tai, utc, tcg or tcb)", s)
}
