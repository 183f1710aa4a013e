// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datediff computes the difference between two calendar dates as a
// years/months/days breakdown plus the total number of elapsed days.
package datediff

import (
	"fmt"

	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/shopspring/decimal"
)

// daysPerYear is the divisor for ApproxYears.
var daysPerYear = decimal.NewFromInt(365)

// Difference is the difference between two dates.
//
// Years, Months, and Days are signed and negative when Invert is true. Days
// is the difference of the day-of-month components and is not borrowed from
// the month, so it may be negative even when Invert is false.
type Difference struct {
	// Years is the number of completed years.
	Years int `json:"years" yaml:"years"`
	// Months is the number of completed months after Years.
	Months int `json:"months" yaml:"months"`
	// Days is the day-of-month difference.
	Days int `json:"days" yaml:"days"`
	// TotalDays is the absolute number of days between the two dates.
	TotalDays int `json:"total_days" yaml:"total_days"`
	// Invert is true when the end date is before the start date.
	Invert bool `json:"invert" yaml:"invert"`
}

// Diff returns the difference from from to to.
func Diff(from caldate.Date, to caldate.Date) Difference {
	rawDays := to.ElapsedDays() - from.ElapsedDays()
	if rawDays < 0 {
		// Break down the chronologically ordered pair and flip the signs.
		years, months, days := breakdown(to, from)
		return Difference{
			Years:     -years,
			Months:    -months,
			Days:      -days,
			TotalDays: -rawDays,
			Invert:    true,
		}
	}
	years, months, days := breakdown(from, to)
	return Difference{
		Years:     years,
		Months:    months,
		Days:      days,
		TotalDays: rawDays,
	}
}

// IsZero returns true if the difference is between two equal dates.
func (d Difference) IsZero() bool {
	return d == Difference{}
}

// ApproxYears returns TotalDays divided by 365, rounded to two decimal places.
//
// The result is never negative.
func (d Difference) ApproxYears() decimal.Decimal {
	return decimal.NewFromInt(int64(d.TotalDays)).DivRound(daysPerYear, 2)
}

// String returns a compact form such as "1y 2m 3d (428 days)", with an
// "inverted" suffix when Invert is true.
func (d Difference) String() string {
	s := fmt.Sprintf("%dy %dm %dd (%d days)", d.Years, d.Months, d.Days, d.TotalDays)
	if d.Invert {
		return s + " inverted"
	}
	return s
}

// *** PRIVATE ***

// breakdown computes years, months, and days for from <= to.
//
// A year or month is complete only once to has reached from's position within
// its year, measured in elapsed days since January 1.
func breakdown(from caldate.Date, to caldate.Date) (int, int, int) {
	incomplete := to.ElapsedDaysInYear() < from.ElapsedDaysInYear()
	years := to.Year() - from.Year()
	if incomplete {
		years--
	}
	months := (to.ElapsedMonths() - from.ElapsedMonths()) - years*12
	if incomplete {
		months--
	}
	return years, months, to.Day() - from.Day()
}
