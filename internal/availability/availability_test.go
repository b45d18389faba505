package availability

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    Range
		b    Range
		want bool
	}{
		{
			name: "disjoint ranges",
			a:    Range{CheckIn: day("2026-01-10"), CheckOut: day("2026-01-12")},
			b:    Range{CheckIn: day("2026-01-20"), CheckOut: day("2026-01-25")},
			want: false,
		},
		{
			name: "contained range",
			a:    Range{CheckIn: day("2026-01-10"), CheckOut: day("2026-01-20")},
			b:    Range{CheckIn: day("2026-01-12"), CheckOut: day("2026-01-15")},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Range{CheckIn: day("2026-01-10"), CheckOut: day("2026-01-15")},
			b:    Range{CheckIn: day("2026-01-13"), CheckOut: day("2026-01-20")},
			want: true,
		},
		{
			name: "shared endpoint counts as overlap",
			a:    Range{CheckIn: day("2026-01-10"), CheckOut: day("2026-01-15")},
			b:    Range{CheckIn: day("2026-01-15"), CheckOut: day("2026-01-20")},
			want: true,
		},
		{
			name: "adjacent with a gap day",
			a:    Range{CheckIn: day("2026-01-10"), CheckOut: day("2026-01-15")},
			b:    Range{CheckIn: day("2026-01-16"), CheckOut: day("2026-01-20")},
			want: false,
		},
		{
			name: "identical ranges",
			a:    Range{CheckIn: day("2026-01-10"), CheckOut: day("2026-01-15")},
			b:    Range{CheckIn: day("2026-01-10"), CheckOut: day("2026-01-15")},
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	t.Parallel()

	existing := []Range{
		{ID: 1, CheckIn: day("2026-03-01"), CheckOut: day("2026-03-05")},
		{ID: 2, CheckIn: day("2026-03-10"), CheckOut: day("2026-03-15")},
	}

	t.Run("free gap is available", func(t *testing.T) {
		candidate := Range{CheckIn: day("2026-03-06"), CheckOut: day("2026-03-09")}
		if !IsAvailable(existing, candidate, 0) {
			t.Fatalf("expected candidate to be available")
		}
	})

	t.Run("overlap with any existing range conflicts", func(t *testing.T) {
		candidate := Range{CheckIn: day("2026-03-04"), CheckOut: day("2026-03-08")}
		if IsAvailable(existing, candidate, 0) {
			t.Fatalf("expected candidate to conflict")
		}
	})

	t.Run("answer does not depend on ordering", func(t *testing.T) {
		reversed := []Range{existing[1], existing[0]}
		candidate := Range{CheckIn: day("2026-03-04"), CheckOut: day("2026-03-08")}
		if IsAvailable(existing, candidate, 0) != IsAvailable(reversed, candidate, 0) {
			t.Fatalf("availability depends on the order of existing ranges")
		}
	})

	t.Run("amendment skips its own range", func(t *testing.T) {
		candidate := Range{CheckIn: day("2026-03-02"), CheckOut: day("2026-03-06")}
		if IsAvailable(existing, candidate, 0) {
			t.Fatalf("expected conflict without exclusion")
		}
		if !IsAvailable(existing, candidate, 1) {
			t.Fatalf("expected candidate to be available when excluding booking 1")
		}
	})

	t.Run("exclusion does not skip other bookings", func(t *testing.T) {
		candidate := Range{CheckIn: day("2026-03-02"), CheckOut: day("2026-03-12")}
		if IsAvailable(existing, candidate, 1) {
			t.Fatalf("expected conflict with booking 2")
		}
	})

	t.Run("no existing bookings", func(t *testing.T) {
		candidate := Range{CheckIn: day("2026-03-01"), CheckOut: day("2026-03-31")}
		if !IsAvailable(nil, candidate, 0) {
			t.Fatalf("expected empty ledger to be available")
		}
	})
}
