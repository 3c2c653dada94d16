package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mikedilger/astrotime/pkg/astro"
	"github.com/mikedilger/astrotime/pkg/leapstore"
)

const defaultLeapDB = "leap-seconds.db"

// cmdLeaps shows the active leap second table and maintains the local
// cache. -import parses an IANA leap-seconds.list file and stores it;
// -list prints the table, preferring the cache over the compiled-in
// history when one exists.
func cmdLeaps(args []string) int {
	flags := flag.NewFlagSet("leaps", flag.ContinueOnError)
	importPath := flags.String("import", "", "leap-seconds.list file to parse and cache")
	list := flags.Bool("list", false, "print the leap second table")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if *importPath == "" && !*list {
		*list = true
	}

	fail := func(err error) int {
		fmt.Fprintf(os.Stderr, "astro: leaps: %v\n", err)
		return 1
	}

	dbPath := envOr("ASTROTIME_DB", defaultLeapDB)

	if *importPath != "" {
		f, err := os.Open(*importPath)
		if err != nil {
			return fail(err)
		}
		l, err := leapstore.Parse(f)
		f.Close()
		if err != nil {
			return fail(err)
		}

		s, err := leapstore.Open(dbPath)
		if err != nil {
			return fail(err)
		}
		defer s.Close()
		if err := s.Save(l); err != nil {
			return fail(err)
		}
		fmt.Printf("cached %d leap seconds in %s\n", len(l.Entries), dbPath)
		if at, ok := l.ExpiresAt(); ok {
			if dt, err := at.DateTime(astro.Gregorian, astro.UTC); err == nil {
				fmt.Printf("list expires %s\n", dt)
			}
		}
	}

	if *list {
		if err := loadCachedTable(dbPath); err != nil {
			return fail(err)
		}
		printLeapTable()
	}
	return 0
}

// loadCachedTable installs the cached leap table, when a cache exists
// and holds one. A missing cache is not an error; the compiled-in
// table serves.
func loadCachedTable(dbPath string) error {
	if _, err := os.Stat(dbPath); err != nil {
		return nil
	}
	s, err := leapstore.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	l, err := s.Load()
	if err != nil || l == nil {
		return err
	}
	tbl, err := l.Table()
	if err != nil {
		return err
	}
	astro.SetLeapTable(tbl)
	return nil
}

func printLeapTable() {
	for n, i := range astro.LeapInstants() {
		dt, err := i.Sub(astro.NewDuration(1, 0)).DateTime(astro.Gregorian, astro.UTC)
		if err != nil {
			continue
		}
		// TAI-UTC becomes 10 at the first entry and grows by one per leap.
		fmt.Printf("%2d  %s  TAI-UTC %+d\n", n+1, dt, n+10)
	}
}
