package domain

import "testing"

func TestRatingSummaryAverage(t *testing.T) {
	tests := []struct {
		name    string
		summary RatingSummary
		want    *float64
	}{
		{"no ratings", RatingSummary{PostID: 1}, nil},
		{"three ratings", RatingSummary{PostID: 1, Count: 3, Sum: 12}, ptr(4.0)},
		{"not rounded", RatingSummary{PostID: 1, Count: 2, Sum: 7}, ptr(3.5)},
		{"one third", RatingSummary{PostID: 1, Count: 3, Sum: 4}, ptr(4.0 / 3.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.summary.Average()
			if tt.want == nil {
				if got != nil {
					t.Fatalf("Average() = %v, want nil", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Average() = nil, want %v", *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("Average() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestValidRating(t *testing.T) {
	for v, want := range map[int]bool{0: false, 1: true, 3: true, 5: true, 6: false, -1: false} {
		if got := ValidRating(v); got != want {
			t.Errorf("ValidRating(%d) = %v, want %v", v, got, want)
		}
	}
}

func ptr(f float64) *float64 { return &f }
