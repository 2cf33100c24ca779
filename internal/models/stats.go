package models

import "time"

type BucketCount struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DashboardStats struct {
	CallsToday        int           `json:"callsToday"`
	FollowUpsDueToday int           `json:"followUpsDueToday"`
	NewLeadsToday     int           `json:"newLeadsToday"`
	ActiveLeads       int           `json:"activeLeads"`
	CriticalLeads     int           `json:"criticalLeads"`
	TotalOrders       int           `json:"totalOrders"`
	DelayedOrders     int           `json:"delayedOrders"`
	TodaysDeliveries  int           `json:"todaysDeliveries"`
	ConversionRate    float64       `json:"conversionRate"`
	LeadsByBucket     []BucketCount `json:"leadsByBucket"`
	OrdersByStatus    []StatusCount `json:"ordersByStatus"`
}

// ConversionRate is won leads over total leads as a percentage.
func ConversionRate(wonLeads, totalLeads int) float64 {
	if totalLeads == 0 {
		return 0
	}
	return float64(wonLeads) / float64(totalLeads) * 100
}

// ComputeStats re-derives the dashboard aggregates from current data.
// Callers pass entities with derived fields already recomputed for now;
// nothing here is cached.
func ComputeStats(callLogs []CallLog, leads []Lead, orders []Order, tasks []Task, now time.Time) DashboardStats {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	inToday := func(t time.Time) bool {
		return !t.Before(today) && t.Before(tomorrow)
	}

	stats := DashboardStats{TotalOrders: len(orders)}

	for _, c := range callLogs {
		if inToday(c.CallDate) {
			stats.CallsToday++
		}
	}

	for _, t := range tasks {
		if t.Status != TaskDone && inToday(t.DueDate) {
			stats.FollowUpsDueToday++
		}
	}

	byBucket := map[string]int{}
	won := 0
	for _, l := range leads {
		if inToday(l.CreatedDate) {
			stats.NewLeadsToday++
		}
		if l.Status == LeadWon {
			won++
		}
		if !l.Open() {
			continue
		}
		stats.ActiveLeads++
		byBucket[l.AgingBucket]++
		if l.AgingBucket == BucketCritical {
			stats.CriticalLeads++
		}
	}
	stats.ConversionRate = ConversionRate(won, len(leads))
	for _, b := range LeadBuckets {
		stats.LeadsByBucket = append(stats.LeadsByBucket, BucketCount{Bucket: b, Count: byBucket[b]})
	}

	byStatus := map[string]int{}
	for _, o := range orders {
		byStatus[o.Status]++
		if o.IsDelayed {
			stats.DelayedOrders++
		}
		expected := time.Date(o.ExpectedDeliveryDate.Year(), o.ExpectedDeliveryDate.Month(), o.ExpectedDeliveryDate.Day(), 0, 0, 0, 0, now.Location())
		if expected.Equal(today) && o.Status != OrderDelivered {
			stats.TodaysDeliveries++
		}
	}
	for _, s := range OrderStatuses {
		stats.OrdersByStatus = append(stats.OrdersByStatus, StatusCount{Status: s, Count: byStatus[s]})
	}

	return stats
}
