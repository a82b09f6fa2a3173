package model

import (
	"fmt"
	"math"
	"time"
)

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int         `json:"count"`
}

// Dashboard holds the counters and the chart of the main page.
type Dashboard struct {
	Counters []StatusCount `json:"counters"`
	Today    []StatusCount `json:"today"`
	Date     Date          `json:"date"`
}

// BuildDashboard counts orders per status overall and among those placed on the day of now.
func BuildDashboard(orders []Order, now time.Time) *Dashboard {
	today := DateOf(now)
	total := make(map[OrderStatus]int, len(OrderStatuses))
	placedToday := make(map[OrderStatus]int, len(OrderStatuses))
	for _, o := range orders {
		total[o.Status]++
		if o.DataPedido.Equal(today) {
			placedToday[o.Status]++
		}
	}

	d := &Dashboard{Date: today}
	for _, s := range OrderStatuses {
		d.Counters = append(d.Counters, StatusCount{Status: s, Count: total[s]})
		d.Today = append(d.Today, StatusCount{Status: s, Count: placedToday[s]})
	}
	return d
}

// ETA describes how far the arrival date of o is from now:
// "-" without a date, "Hoje" within a day, "Em N dia(s)" ahead and "Atrasado" past.
func ETA(o Order, now time.Time) string {
	if o.DataChegada == nil {
		return "-"
	}
	y, m, d := o.DataChegada.Time().Date()
	target := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	diff := target.Sub(now)
	day := 24 * time.Hour

	if diff < -day {
		return "Atrasado"
	}
	if diff > -day && diff < day {
		return "Hoje"
	}
	days := int(math.Ceil(float64(diff) / float64(day)))
	if days > 0 {
		return fmt.Sprintf("Em %d dia(s)", days)
	}
	return "Atrasado"
}
