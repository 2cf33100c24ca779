package models

import "testing"

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name      string
		available int
		threshold int
		want      string
	}{
		{"zero stock", 0, 100, ProductOutOfStock},
		{"zero stock zero threshold", 0, 0, ProductOutOfStock},
		{"below threshold", 50, 100, ProductAlert},
		{"exactly at threshold", 100, 100, ProductAlert},
		{"above threshold", 101, 100, ProductActive},
		{"healthy stock", 5000, 2500, ProductActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStatus(tt.available, tt.threshold); got != tt.want {
				t.Errorf("ComputeStatus(%d, %d) = %q, want %q", tt.available, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestRecomputeStatusTracksQuantity(t *testing.T) {
	p := Product{AvailableQuantity: 500, ThresholdQuantity: 100}

	p.RecomputeStatus()
	if p.Status != ProductActive {
		t.Fatalf("Status = %q, want %q", p.Status, ProductActive)
	}

	p.AvailableQuantity = 80
	p.RecomputeStatus()
	if p.Status != ProductAlert {
		t.Fatalf("Status = %q, want %q", p.Status, ProductAlert)
	}

	p.AvailableQuantity = 0
	p.RecomputeStatus()
	if p.Status != ProductOutOfStock {
		t.Fatalf("Status = %q, want %q", p.Status, ProductOutOfStock)
	}
}
