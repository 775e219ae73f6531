package handlers

import (
	"testing"
	"time"
)

func TestParseOptionalInt(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    *int
		wantErr bool
	}{
		{name: "empty is absent", in: "", want: nil},
		{name: "whitespace is absent", in: "   ", want: nil},
		{name: "plain number", in: "100", want: intPtr(100)},
		{name: "padded number", in: " 7 ", want: intPtr(7)},
		{name: "zero allowed", in: "0", want: intPtr(0)},
		{name: "negative rejected", in: "-3", wantErr: true},
		{name: "non-numeric rejected", in: "abc", wantErr: true},
		{name: "decimal rejected", in: "12.5", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseOptionalInt(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseOptionalInt(%q): expected error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOptionalInt(%q): %v", tc.in, err)
			}
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("parseOptionalInt(%q) = %v, want %v", tc.in, got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Errorf("parseOptionalInt(%q) = %d, want %d", tc.in, *got, *tc.want)
			}
		})
	}
}

func TestParsePreferredDate(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

	t.Run("today is allowed", func(t *testing.T) {
		got, err := parsePreferredDate("2026-03-15", now)
		if err != nil {
			t.Fatalf("parsePreferredDate: %v", err)
		}
		if got.Format(dateLayout) != "2026-03-15" {
			t.Errorf("parsed %s, want 2026-03-15", got.Format(dateLayout))
		}
	})

	t.Run("tomorrow is allowed", func(t *testing.T) {
		if _, err := parsePreferredDate("2026-03-16", now); err != nil {
			t.Fatalf("parsePreferredDate: %v", err)
		}
	})

	t.Run("yesterday is rejected", func(t *testing.T) {
		_, err := parsePreferredDate("2026-03-14", now)
		if err != errDateInPast {
			t.Fatalf("error = %v, want %v", err, errDateInPast)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := parsePreferredDate("not-a-date", now); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("wrong layout is rejected", func(t *testing.T) {
		if _, err := parsePreferredDate("15/03/2026", now); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func intPtr(n int) *int { return &n }
