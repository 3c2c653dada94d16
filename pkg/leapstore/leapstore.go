// Package leapstore loads, validates and caches UTC leap-second
// history in the IANA leap-seconds.list format.
//
// The astro package ships with the history compiled in; leapstore is
// for deployments that want to pick up new announcements without a
// rebuild. A parsed List can be installed into the astro package via
// Table and astro.SetLeapTable, and cached locally in SQLite so the
// file only needs fetching once.
package leapstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mikedilger/astrotime/pkg/astro"
)

// ErrFormat reports a malformed or inconsistent leap-seconds.list.
var ErrFormat = errors.New("malformed leap second list")

// Entry is one line of the list: the NTP second at which a new
// TAI-UTC offset takes effect, and that offset in seconds.
type Entry struct {
	NTPSeconds int64
	TAIOffset  int64
}

// List is a parsed leap-seconds.list.
type List struct {
	Entries []Entry

	// Updated and Expires are the file's "#$" and "#@" stamps, as NTP
	// seconds. Zero when the file carries no stamp.
	Updated int64
	Expires int64
}

// Parse reads a leap-seconds.list. It understands the two stamped
// comment forms ("#$" last update, "#@" expiry), skips all other
// comments and blank lines, and validates what it read: entries must
// be strictly increasing in time and the offsets must grow by exactly
// one second per entry, starting from the initial 10 of 1972.
func Parse(r io.Reader) (*List, error) {
	l := &List{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#$"):
			v, err := parseStamp(line[2:])
			if err != nil {
				return nil, fmt.Errorf("line %d: update stamp: %w", lineNo, err)
			}
			l.Updated = v
		case strings.HasPrefix(line, "#@"):
			v, err := parseStamp(line[2:])
			if err != nil {
				return nil, fmt.Errorf("line %d: expiry stamp: %w", lineNo, err)
			}
			l.Expires = v
		case strings.HasPrefix(line, "#"):
			continue
		default:
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, line, ErrFormat)
			}
			secs, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: ntp seconds: %w", lineNo, err)
			}
			off, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: tai offset: %w", lineNo, err)
			}
			l.Entries = append(l.Entries, Entry{NTPSeconds: secs, TAIOffset: off})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read leap second list: %w", err)
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func parseStamp(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrFormat)
	}
	return v, nil
}

func (l *List) validate() error {
	if len(l.Entries) == 0 {
		return fmt.Errorf("no entries: %w", ErrFormat)
	}
	if l.Entries[0].TAIOffset != 10 {
		return fmt.Errorf("first offset %d, want 10: %w", l.Entries[0].TAIOffset, ErrFormat)
	}
	for i := 1; i < len(l.Entries); i++ {
		prev, cur := l.Entries[i-1], l.Entries[i]
		if cur.NTPSeconds <= prev.NTPSeconds {
			return fmt.Errorf("entry %d (%d) not after %d: %w",
				i, cur.NTPSeconds, prev.NTPSeconds, ErrFormat)
		}
		if cur.TAIOffset != prev.TAIOffset+1 {
			return fmt.Errorf("entry %d: offset %d does not follow %d: %w",
				i, cur.TAIOffset, prev.TAIOffset, ErrFormat)
		}
	}
	return nil
}

// NTPSeconds returns the entries' NTP seconds of effect, the form
// astro.NewLeapTable takes.
func (l *List) NTPSeconds() []int64 {
	out := make([]int64, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.NTPSeconds
	}
	return out
}

// Table converts the list into an astro.LeapTable, ready for
// astro.SetLeapTable.
func (l *List) Table() (*astro.LeapTable, error) {
	return astro.NewLeapTable(l.NTPSeconds())
}

// ExpiresAt returns the file's expiry as an Instant, and whether the
// file carried one. Past the expiry the history may be missing an
// announced leap second.
func (l *List) ExpiresAt() (astro.Instant, bool) {
	if l.Expires == 0 {
		return astro.Instant{}, false
	}
	return astro.FromNTPDate(l.Expires, 0), true
}
