package astro

import (
	"math/rand"
	"testing"
	"time"
)

func TestNewDurationNormalizes(t *testing.T) {
	cases := []struct {
		secs, attos         int64
		wantSecs, wantAttos int64
	}{
		{0, 0, 0, 0},
		{1, 0, 1, 0},
		{0, attosPerSec, 1, 0},
		{0, attosPerSec + 1, 1, 1},
		{0, -attosPerSec, -1, 0},
		{1, -1, 0, attosPerSec - 1},
		{-1, 1, 0, -(attosPerSec - 1)},
		{-1, 500_000_000_000_000_000, 0, -500_000_000_000_000_000},
		{2, -500_000_000_000_000_000, 1, 500_000_000_000_000_000},
		{0, 3 * 500_000_000_000_000_000, 1, 500_000_000_000_000_000},
	}
	for _, c := range cases {
		d := NewDuration(c.secs, c.attos)
		if d.secs != c.wantSecs || d.attos != c.wantAttos {
			t.Errorf("NewDuration(%d, %d): got (%d, %d), want (%d, %d)",
				c.secs, c.attos, d.secs, d.attos, c.wantSecs, c.wantAttos)
		}
	}
}

func TestDurationAddSub(t *testing.T) {
	a := NewDuration(1, 700_000_000_000_000_000)
	b := NewDuration(2, 600_000_000_000_000_000)

	sum := a.Add(b)
	if sum.SecondsPart() != 4 || sum.AttosPart() != 300_000_000_000_000_000 {
		t.Fatalf("Add: got (%d, %d)", sum.SecondsPart(), sum.AttosPart())
	}

	diff := a.Sub(b)
	if diff.SecondsPart() != 0 || diff.AttosPart() != -900_000_000_000_000_000 {
		t.Fatalf("Sub: got (%d, %d)", diff.SecondsPart(), diff.AttosPart())
	}

	if got := diff.Add(b); got != a {
		t.Fatalf("Sub then Add did not round-trip: got %v, want %v", got, a)
	}
}

func TestDurationNeg(t *testing.T) {
	d := NewDuration(-3, -250_000_000_000_000_000)
	n := d.Neg()
	if n.SecondsPart() != 3 || n.AttosPart() != 250_000_000_000_000_000 {
		t.Fatalf("Neg: got (%d, %d)", n.SecondsPart(), n.AttosPart())
	}
	if !d.Add(n).IsZero() {
		t.Fatal("d + (-d) should be zero")
	}
}

func TestDurationCompare(t *testing.T) {
	cases := []struct {
		a, b Duration
		want int
	}{
		{NewDuration(1, 0), NewDuration(2, 0), -1},
		{NewDuration(2, 0), NewDuration(1, 0), 1},
		{NewDuration(1, 5), NewDuration(1, 5), 0},
		{NewDuration(1, 4), NewDuration(1, 5), -1},
		{NewDuration(-1, -5), NewDuration(-1, -4), -1},
		{NewDuration(0, -1), NewDuration(0, 1), -1},
	}
	for _, c := range cases {
		if got := c.a.Compare(c.b); got != c.want {
			t.Errorf("Compare(%v, %v): got %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDurationAsAttos(t *testing.T) {
	d := NewDuration(2, 500_000_000_000_000_000)
	got, ok := d.AsAttos()
	if !ok || got != 2_500_000_000_000_000_000 {
		t.Fatalf("AsAttos: got (%d, %v)", got, ok)
	}

	neg := NewDuration(-2, -500_000_000_000_000_000)
	got, ok = neg.AsAttos()
	if !ok || got != -2_500_000_000_000_000_000 {
		t.Fatalf("AsAttos negative: got (%d, %v)", got, ok)
	}

	// Just over 9.2 seconds no longer fits an int64 of attoseconds.
	if _, ok := NewDuration(10, 0).AsAttos(); ok {
		t.Fatal("AsAttos(10s) should overflow")
	}
	if _, ok := NewDuration(-10, 0).AsAttos(); ok {
		t.Fatal("AsAttos(-10s) should overflow")
	}
}

func TestDurationFromSeconds(t *testing.T) {
	d := DurationFromSeconds(1.5)
	if d.SecondsPart() != 1 || d.AttosPart() != 500_000_000_000_000_000 {
		t.Fatalf("DurationFromSeconds(1.5): got (%d, %d)", d.SecondsPart(), d.AttosPart())
	}
	d = DurationFromSeconds(-0.25)
	if d.SecondsPart() != 0 || d.AttosPart() != -250_000_000_000_000_000 {
		t.Fatalf("DurationFromSeconds(-0.25): got (%d, %d)", d.SecondsPart(), d.AttosPart())
	}
}

func TestFromStdDuration(t *testing.T) {
	d := FromStdDuration(90*time.Second + 250*time.Millisecond)
	if d.SecondsPart() != 90 || d.AttosPart() != 250_000_000_000_000_000 {
		t.Fatalf("FromStdDuration: got (%d, %d)", d.SecondsPart(), d.AttosPart())
	}
}

func TestDurationMulFloat(t *testing.T) {
	d := NewDuration(10, 0).MulFloat(0.5)
	if d.SecondsPart() != 5 || d.AttosPart() != 0 {
		t.Fatalf("10s * 0.5: got (%d, %d)", d.SecondsPart(), d.AttosPart())
	}

	d = NewDuration(3, 0).MulFloat(1.5)
	if d.SecondsPart() != 4 || d.AttosPart() != 500_000_000_000_000_000 {
		t.Fatalf("3s * 1.5: got (%d, %d)", d.SecondsPart(), d.AttosPart())
	}

	d = NewDuration(-4, 0).MulFloat(0.25)
	if d.SecondsPart() != -1 || d.AttosPart() != 0 {
		t.Fatalf("-4s * 0.25: got (%d, %d)", d.SecondsPart(), d.AttosPart())
	}
}

func TestDurationString(t *testing.T) {
	cases := []struct {
		d    Duration
		want string
	}{
		{NewDuration(0, 0), "P"},
		{NewDuration(1, 0), "PT1S"},
		{NewDuration(-1, 0), "-PT1S"},
		{NewDuration(61, 0), "PT1M1S"},
		{NewDuration(3661, 0), "PT1H1M1S"},
		{NewDuration(90061, 120), "P1DT1H1M1.000000000000000120S"},
		{NewDuration(86400, 0), "P1D"},
		{NewDuration(0, -500_000_000_000_000_000), "-PT0.500000000000000000S"},
		{NewDuration(120, 0), "PT2M"},
	}
	for _, c := range cases {
		if got := c.d.String(); got != c.want {
			t.Errorf("String(%d, %d): got %q, want %q", c.d.secs, c.d.attos, got, c.want)
		}
	}
}

func TestDurationNormalizationStable(t *testing.T) {
	// Sums of arbitrary signed pairs stay normalized and associative.
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 1000; n++ {
		a := NewDuration(rng.Int63n(2_000_000)-1_000_000, rng.Int63n(4*attosPerSec)-2*attosPerSec)
		b := NewDuration(rng.Int63n(2_000_000)-1_000_000, rng.Int63n(4*attosPerSec)-2*attosPerSec)
		c := NewDuration(rng.Int63n(2_000_000)-1_000_000, rng.Int63n(4*attosPerSec)-2*attosPerSec)

		for _, d := range []Duration{a.Add(b), a.Sub(b), a.Add(b).Add(c)} {
			if d.attos <= -attosPerSec || d.attos >= attosPerSec {
				t.Fatalf("attos %d out of range", d.attos)
			}
			if (d.secs > 0 && d.attos < 0) || (d.secs < 0 && d.attos > 0) {
				t.Fatalf("sign mismatch: (%d, %d)", d.secs, d.attos)
			}
		}
		if got, want := a.Add(b).Add(c), a.Add(b.Add(c)); got != want {
			t.Fatalf("not associative: %v vs %v", got, want)
		}
	}
}

func TestDivmod(t *testing.T) {
	cases := []struct {
		a, b, div, mod int64
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
		{0, 5, 0, 0},
	}
	for _, c := range cases {
		div, mod := divmod(c.a, c.b)
		if div != c.div || mod != c.mod {
			t.Errorf("divmod(%d, %d): got (%d, %d), want (%d, %d)",
				c.a, c.b, div, mod, c.div, c.mod)
		}
	}
}
