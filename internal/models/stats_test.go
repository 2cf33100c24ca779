package models

import (
	"testing"
	"time"
)

func TestConversionRate(t *testing.T) {
	if got := ConversionRate(0, 0); got != 0 {
		t.Errorf("ConversionRate(0, 0) = %v, want 0", got)
	}
	if got := ConversionRate(1, 4); got != 25 {
		t.Errorf("ConversionRate(1, 4) = %v, want 25", got)
	}
	if got := ConversionRate(3, 3); got != 100 {
		t.Errorf("ConversionRate(3, 3) = %v, want 100", got)
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, 12, 15, 14, 0, 0, 0, time.UTC)
	today := time.Date(2024, 12, 15, 9, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	callLogs := []CallLog{
		{CallDate: today},
		{CallDate: today.Add(2 * time.Hour)},
		{CallDate: yesterday},
	}
	leads := []Lead{
		{Status: LeadNew, CreatedDate: today, AgingBucket: BucketFresh},
		{Status: LeadNegotiation, CreatedDate: now.AddDate(0, 0, -4), AgingBucket: BucketWarm},
		{Status: LeadQuoted, CreatedDate: now.AddDate(0, 0, -12), AgingBucket: BucketCritical},
		{Status: LeadWon, CreatedDate: now.AddDate(0, 0, -8), AgingBucket: BucketAtRisk},
	}
	orders := []Order{
		{Status: OrderInProduction, ExpectedDeliveryDate: yesterday, IsDelayed: true},
		{Status: OrderReceived, ExpectedDeliveryDate: today},
		{Status: OrderDelivered, ExpectedDeliveryDate: today},
		{Status: OrderCancelled, ExpectedDeliveryDate: now.AddDate(0, 0, 3)},
	}
	tasks := []Task{
		{Status: TaskPending, DueDate: today},
		{Status: TaskDone, DueDate: today},
		{Status: TaskPending, DueDate: yesterday},
	}

	stats := ComputeStats(callLogs, leads, orders, tasks, now)

	if stats.CallsToday != 2 {
		t.Errorf("CallsToday = %d, want 2", stats.CallsToday)
	}
	if stats.FollowUpsDueToday != 1 {
		t.Errorf("FollowUpsDueToday = %d, want 1", stats.FollowUpsDueToday)
	}
	if stats.NewLeadsToday != 1 {
		t.Errorf("NewLeadsToday = %d, want 1", stats.NewLeadsToday)
	}
	if stats.ActiveLeads != 3 {
		t.Errorf("ActiveLeads = %d, want 3", stats.ActiveLeads)
	}
	if stats.CriticalLeads != 1 {
		t.Errorf("CriticalLeads = %d, want 1", stats.CriticalLeads)
	}
	if stats.TotalOrders != 4 {
		t.Errorf("TotalOrders = %d, want 4", stats.TotalOrders)
	}
	if stats.DelayedOrders != 1 {
		t.Errorf("DelayedOrders = %d, want 1", stats.DelayedOrders)
	}
	// The delivered order expected today no longer counts.
	if stats.TodaysDeliveries != 1 {
		t.Errorf("TodaysDeliveries = %d, want 1", stats.TodaysDeliveries)
	}
	if stats.ConversionRate != 25 {
		t.Errorf("ConversionRate = %v, want 25", stats.ConversionRate)
	}

	buckets := map[string]int{}
	for _, b := range stats.LeadsByBucket {
		buckets[b.Bucket] = b.Count
	}
	// The won lead sits in At Risk but closed leads leave the board.
	want := map[string]int{BucketFresh: 1, BucketWarm: 1, BucketAtRisk: 0, BucketCritical: 1}
	for bucket, count := range want {
		if buckets[bucket] != count {
			t.Errorf("LeadsByBucket[%s] = %d, want %d", bucket, buckets[bucket], count)
		}
	}

	statuses := map[string]int{}
	for _, s := range stats.OrdersByStatus {
		statuses[s.Status] = s.Count
	}
	if statuses[OrderInProduction] != 1 || statuses[OrderReceived] != 1 || statuses[OrderDelivered] != 1 {
		t.Errorf("OrdersByStatus = %v", statuses)
	}
	if _, ok := statuses[OrderCancelled]; ok {
		t.Error("cancelled orders must not appear in the status breakdown")
	}
}
