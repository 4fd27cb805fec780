package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"pacifictrucking/models"
)

// Payslip is one driver's weekly settlement: delivered-booking pay netted
// against the same week's cash advances.
type Payslip struct {
	DriverID         string          `json:"driver_id"`
	DriverName       string          `json:"driver_name"`
	Bookings         int             `json:"bookings"`
	TotalPay         decimal.Decimal `json:"total_pay"`
	TotalCashAdvance decimal.Decimal `json:"total_cash_advance"`
	NetPay           decimal.Decimal `json:"net_pay"`
}

// WeekBounds returns the Monday-start week containing t. The end bound is
// exclusive (the following Monday), both at midnight in t's location.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	day := t
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start := time.Date(day.Year(), day.Month(), day.Day()-offset, 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 7)
}

// BuildPayslips nets each driver's delivered-booking pay for the week
// containing ref against cash advances dated in the same week. Drivers with
// neither bookings nor advances in the week produce no payslip. Output is
// sorted by driver name, then ID.
func BuildPayslips(bookings []*models.Booking, advances []*models.CashAdvance, ref time.Time) []Payslip {
	weekStart, weekEnd := WeekBounds(ref)
	inWeek := func(d time.Time) bool {
		return !d.Before(weekStart) && d.Before(weekEnd)
	}

	slips := map[string]*Payslip{}
	get := func(driverID, driverName string) *Payslip {
		s, ok := slips[driverID]
		if !ok {
			s = &Payslip{
				DriverID:         driverID,
				DriverName:       driverName,
				TotalPay:         decimal.Zero,
				TotalCashAdvance: decimal.Zero,
			}
			slips[driverID] = s
		}
		if s.DriverName == "" {
			s.DriverName = driverName
		}
		return s
	}

	for _, b := range bookings {
		if b.Status != models.BookingDelivered || !inWeek(b.BookingDate) {
			continue
		}
		s := get(b.DriverID, b.DriverName)
		s.Bookings++
		s.TotalPay = s.TotalPay.Add(decimal.NewFromFloat(b.DriverRate))
	}

	for _, a := range advances {
		if !inWeek(a.Date) {
			continue
		}
		s := get(a.DriverID, a.DriverName)
		s.TotalCashAdvance = s.TotalCashAdvance.Add(decimal.NewFromFloat(a.Amount))
	}

	out := make([]Payslip, 0, len(slips))
	for _, s := range slips {
		s.NetPay = s.TotalPay.Sub(s.TotalCashAdvance)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DriverName != out[j].DriverName {
			return out[i].DriverName < out[j].DriverName
		}
		return out[i].DriverID < out[j].DriverID
	})
	return out
}
