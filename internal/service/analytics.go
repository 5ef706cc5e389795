package service

import (
	"sort"
	"strings"

	"github.com/dinehall/restaurant-reservation/internal/model"
)

// RevenuePerHead is the flat per-guest amount used for revenue
// estimates. There is no per-item billing, so reports price every
// reservation at partySize * RevenuePerHead.
const RevenuePerHead = 50

// TableStat summarizes reservation activity for one table.
type TableStat struct {
	TableNumber       string  `json:"tableNumber"`
	TotalReservations int     `json:"totalReservations"`
	AveragePartySize  float64 `json:"averagePartySize"`
	TotalRevenue      int     `json:"totalRevenue"`
}

// PeakHour counts reservations whose time falls in one hour of the day.
type PeakHour struct {
	Hour  string `json:"hour"` // "18:00"
	Count int    `json:"count"`
}

// CustomerStat summarizes one customer's visits over the report window.
type CustomerStat struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	TotalVisits int    `json:"totalVisits"`
	TotalSpent  int    `json:"totalSpent"`
}

// AnalyticsSummary carries the headline numbers of a report.
type AnalyticsSummary struct {
	TotalRevenue      int        `json:"totalRevenue"`
	TotalReservations int        `json:"totalReservations"`
	AveragePartySize  float64    `json:"averagePartySize"`
	BestTable         *TableStat `json:"bestTable"`
}

// AnalyticsReport is the full aggregation returned by the analytics
// endpoint.
type AnalyticsReport struct {
	DailyRevenue  map[string]int   `json:"dailyRevenue"`
	TableStats    []TableStat      `json:"tableStats"`
	PeakHours     []PeakHour       `json:"peakHours"`
	CustomerStats []CustomerStat   `json:"customerStats"`
	Summary       AnalyticsSummary `json:"summary"`
}

// BuildAnalytics aggregates the given reservations against the table
// inventory. It is a pure function over already-loaded records; callers
// pick the date window. Table stats are sorted by revenue descending,
// peak hours keep the top five, customer stats the top ten by visits.
func BuildAnalytics(reservations []model.Reservation, tables []model.Table) AnalyticsReport {
	report := AnalyticsReport{DailyRevenue: make(map[string]int)}

	totalParty := 0
	for _, res := range reservations {
		revenue := int(res.PartySize) * RevenuePerHead
		report.DailyRevenue[res.ReservationDate] += revenue
		totalParty += int(res.PartySize)
	}

	byTable := make(map[string][]model.Reservation, len(tables))
	for _, res := range reservations {
		byTable[res.TableNumber] = append(byTable[res.TableNumber], res)
	}
	report.TableStats = make([]TableStat, 0, len(tables))
	for _, t := range tables {
		rs := byTable[t.TableNumber]
		stat := TableStat{TableNumber: t.TableNumber, TotalReservations: len(rs)}
		party := 0
		for _, res := range rs {
			party += int(res.PartySize)
		}
		stat.TotalRevenue = party * RevenuePerHead
		if len(rs) > 0 {
			stat.AveragePartySize = float64(party) / float64(len(rs))
		}
		report.TableStats = append(report.TableStats, stat)
	}
	sort.SliceStable(report.TableStats, func(i, j int) bool {
		return report.TableStats[i].TotalRevenue > report.TableStats[j].TotalRevenue
	})

	hourCounts := make(map[string]int)
	for _, res := range reservations {
		hour := "00"
		if i := strings.Index(res.ReservationTime, ":"); i > 0 {
			hour = res.ReservationTime[:i]
		}
		hourCounts[hour]++
	}
	report.PeakHours = make([]PeakHour, 0, len(hourCounts))
	for hour, count := range hourCounts {
		report.PeakHours = append(report.PeakHours, PeakHour{Hour: hour + ":00", Count: count})
	}
	sort.SliceStable(report.PeakHours, func(i, j int) bool {
		if report.PeakHours[i].Count != report.PeakHours[j].Count {
			return report.PeakHours[i].Count > report.PeakHours[j].Count
		}
		return report.PeakHours[i].Hour < report.PeakHours[j].Hour
	})
	if len(report.PeakHours) > 5 {
		report.PeakHours = report.PeakHours[:5]
	}

	customers := make(map[string]*CustomerStat)
	order := make([]string, 0)
	for _, res := range reservations {
		cs, ok := customers[res.CustomerEmail]
		if !ok {
			cs = &CustomerStat{Email: res.CustomerEmail, Name: res.CustomerName}
			customers[res.CustomerEmail] = cs
			order = append(order, res.CustomerEmail)
		}
		cs.TotalVisits++
		cs.TotalSpent += int(res.PartySize) * RevenuePerHead
	}
	report.CustomerStats = make([]CustomerStat, 0, len(customers))
	for _, email := range order {
		report.CustomerStats = append(report.CustomerStats, *customers[email])
	}
	sort.SliceStable(report.CustomerStats, func(i, j int) bool {
		return report.CustomerStats[i].TotalVisits > report.CustomerStats[j].TotalVisits
	})
	if len(report.CustomerStats) > 10 {
		report.CustomerStats = report.CustomerStats[:10]
	}

	report.Summary = AnalyticsSummary{
		TotalReservations: len(reservations),
	}
	for _, v := range report.DailyRevenue {
		report.Summary.TotalRevenue += v
	}
	if len(reservations) > 0 {
		report.Summary.AveragePartySize = float64(totalParty) / float64(len(reservations))
	}
	if len(report.TableStats) > 0 {
		best := report.TableStats[0]
		report.Summary.BestTable = &best
	}
	return report
}
