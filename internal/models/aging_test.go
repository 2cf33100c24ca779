package models

import (
	"testing"
	"time"
)

func TestAgingDays(t *testing.T) {
	now := time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		reference time.Time
		want      int
	}{
		{"same instant", now, 0},
		{"a few hours ago rounds up", now.Add(-6 * time.Hour), 1},
		{"exactly one day", now.AddDate(0, 0, -1), 1},
		{"one day and an hour", now.AddDate(0, 0, -1).Add(-time.Hour), 2},
		{"four days", now.AddDate(0, 0, -4), 4},
		{"future reference uses absolute distance", now.Add(30 * time.Hour), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgingDays(tt.reference, now); got != tt.want {
				t.Errorf("AgingDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAgingBucketFor(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, BucketFresh},
		{2, BucketFresh},
		{3, BucketWarm},
		{5, BucketWarm},
		{6, BucketAtRisk},
		{10, BucketAtRisk},
		{11, BucketCritical},
		{40, BucketCritical},
	}

	for _, tt := range tests {
		if got := AgingBucketFor(tt.days); got != tt.want {
			t.Errorf("AgingBucketFor(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestLeadRecompute(t *testing.T) {
	now := time.Date(2024, 12, 15, 9, 0, 0, 0, time.UTC)
	lead := Lead{
		Status:      LeadNew,
		CreatedDate: now.AddDate(0, 0, -6),
	}

	lead.Recompute(now)

	if lead.AgingDays != 6 {
		t.Errorf("AgingDays = %d, want 6", lead.AgingDays)
	}
	if lead.AgingBucket != BucketAtRisk {
		t.Errorf("AgingBucket = %q, want %q", lead.AgingBucket, BucketAtRisk)
	}
}

func TestLeadOpen(t *testing.T) {
	for _, status := range []string{LeadNew, LeadContacted, LeadQuoted, LeadNegotiation} {
		l := Lead{Status: status}
		if !l.Open() {
			t.Errorf("lead with status %q should be open", status)
		}
	}
	for _, status := range []string{LeadWon, LeadLost} {
		l := Lead{Status: status}
		if l.Open() {
			t.Errorf("lead with status %q should be closed", status)
		}
	}
}
