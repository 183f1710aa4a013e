// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package caldiffreport converts date differences and dates into output rows.
package caldiffreport

import (
	"strconv"

	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/pkg/datediff"
	"github.com/shopspring/decimal"
)

// DifferenceReport is the difference between two dates, as written by the
// diff and batch commands.
type DifferenceReport struct {
	From        caldate.Date    `json:"from"`
	To          caldate.Date    `json:"to"`
	Years       int             `json:"years"`
	Months      int             `json:"months"`
	Days        int             `json:"days"`
	TotalDays   int             `json:"total_days"`
	Invert      bool            `json:"invert"`
	ApproxYears decimal.Decimal `json:"approx_years"`
}

// NewDifferenceReport computes the difference between from and to.
func NewDifferenceReport(from caldate.Date, to caldate.Date) *DifferenceReport {
	difference := datediff.Diff(from, to)
	return &DifferenceReport{
		From:        from,
		To:          to,
		Years:       difference.Years,
		Months:      difference.Months,
		Days:        difference.Days,
		TotalDays:   difference.TotalDays,
		Invert:      difference.Invert,
		ApproxYears: difference.ApproxYears(),
	}
}

// DifferenceHeaders returns the column headers for difference output.
func DifferenceHeaders() []string {
	return []string{
		"FROM",
		"TO",
		"YEARS",
		"MONTHS",
		"DAYS",
		"TOTAL_DAYS",
		"INVERT",
		"APPROX_YEARS",
	}
}

// DifferenceToRow converts a DifferenceReport to a row of strings.
func DifferenceToRow(report *DifferenceReport) []string {
	return []string{
		report.From.String(),
		report.To.String(),
		strconv.Itoa(report.Years),
		strconv.Itoa(report.Months),
		strconv.Itoa(report.Days),
		strconv.Itoa(report.TotalDays),
		strconv.FormatBool(report.Invert),
		report.ApproxYears.StringFixed(2),
	}
}

// DateReport describes a single validated date, as written by the date command.
type DateReport struct {
	Date              caldate.Date `json:"date"`
	LeapYear          bool         `json:"leap_year"`
	DaysInMonth       int          `json:"days_in_month"`
	ElapsedDays       int          `json:"elapsed_days"`
	ElapsedMonths     int          `json:"elapsed_months"`
	ElapsedDaysInYear int          `json:"elapsed_days_in_year"`
}

// NewDateReport returns the DateReport for date.
func NewDateReport(date caldate.Date) *DateReport {
	return &DateReport{
		Date:              date,
		LeapYear:          caldate.IsLeapYear(date.Year()),
		DaysInMonth:       caldate.DaysInMonth(date.Year(), date.Month()),
		ElapsedDays:       date.ElapsedDays(),
		ElapsedMonths:     date.ElapsedMonths(),
		ElapsedDaysInYear: date.ElapsedDaysInYear(),
	}
}

// DateHeaders returns the column headers for date output.
func DateHeaders() []string {
	return []string{
		"DATE",
		"LEAP_YEAR",
		"DAYS_IN_MONTH",
		"ELAPSED_DAYS",
		"ELAPSED_MONTHS",
		"ELAPSED_DAYS_IN_YEAR",
	}
}

// DateToRow converts a DateReport to a row of strings.
func DateToRow(report *DateReport) []string {
	return []string{
		report.Date.String(),
		strconv.FormatBool(report.LeapYear),
		strconv.Itoa(report.DaysInMonth),
		strconv.Itoa(report.ElapsedDays),
		strconv.Itoa(report.ElapsedMonths),
		strconv.Itoa(report.ElapsedDaysInYear),
	}
}
