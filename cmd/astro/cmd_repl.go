package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mikedilger/astrotime/pkg/astro"
)

// cmdRepl runs an interactive calculator holding one current instant.
// Commands set it (now, jd, ntp, epoch), shift it (add, sub) or read
// it out (show, under any calendar and standard).
func cmdRepl(args []string) int {
	flags := flag.NewFlagSet("repl", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return 1
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "astro> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Println("repl:", err)
		return 1
	}
	defer rl.Close()

	current := astro.Now()
	fmt.Println("astro repl. 'help' for commands, 'exit' to leave.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return 0
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, rest := fields[0], fields[1:]

		switch cmd {
		case "exit", "quit":
			return 0
		case "help":
			replHelp()
		case "now":
			current = astro.Now()
			replShow(current, rest)
		case "jd":
			v, err := replFloat(rest)
			if err != nil {
				fmt.Println(err)
				continue
			}
			current = astro.FromJulianDayFloat(v)
			replShow(current, nil)
		case "ntp":
			v, err := replInt(rest)
			if err != nil {
				fmt.Println(err)
				continue
			}
			current = astro.FromNTPDate(v, 0)
			replShow(current, nil)
		case "epoch":
			e, err := replEpoch(rest)
			if err != nil {
				fmt.Println(err)
				continue
			}
			current = e.Instant()
			replShow(current, nil)
		case "epochs":
			for _, e := range astro.Epochs() {
				fmt.Printf("  %-18s %s\n", e, e.Instant().AsJulianDayFormatted())
			}
		case "add", "sub":
			v, err := replFloat(rest)
			if err != nil {
				fmt.Println(err)
				continue
			}
			d := astro.DurationFromSeconds(v)
			if cmd == "sub" {
				d = d.Neg()
			}
			current = current.Add(d)
			replShow(current, nil)
		case "show":
			replShow(current, rest)
		default:
			fmt.Printf("unknown command %q, try 'help'\n", cmd)
		}
	}
}

func replHelp() {
	fmt.Print(`commands:
  now                 set the current instant from the system clock
  jd <float>          set from a Julian day
  ntp <seconds>       set from NTP seconds (1900 epoch, no leaps)
  epoch <name>        set to a catalog epoch (try 'epochs')
  epochs              list the epoch catalog
  add <seconds>       shift the instant forward
  sub <seconds>       shift the instant backward
  show [cal] [std]    read the instant out (default: gregorian utc)
  exit                leave
`)
}

// replShow prints the current instant under the requested calendar and
// standard (defaults: Gregorian UTC), plus its Julian day.
func replShow(i astro.Instant, args []string) {
	cal, std := astro.Gregorian, astro.UTC
	for _, a := range args {
		if c, err := parseCalendar(a); err == nil {
			cal = c
			continue
		}
		if s, err := parseStandard(a); err == nil {
			std = s
			continue
		}
		fmt.Printf("ignoring %q (not a calendar or standard)\n", a)
	}
	dt, err := i.DateTime(cal, std)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s   %s\n", dt, i.AsJulianDayFormatted())
}

func replFloat(args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("need one numeric argument")
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", args[0])
	}
	return v, nil
}

func replInt(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("need one integer argument")
	}
	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", args[0])
	}
	return v, nil
}

// replEpoch finds a catalog epoch by a case-insensitive substring of
// its name, e.g. "j2000" or "unix".
func replEpoch(args []string) (astro.Epoch, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("need an epoch name, try 'epochs'")
	}
	want := strings.ToLower(strings.Join(args, " "))
	for _, e := range astro.Epochs() {
		if strings.Contains(strings.ToLower(e.String()), want) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("no epoch matching %q", want)
}
