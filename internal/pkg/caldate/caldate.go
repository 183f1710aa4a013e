// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package caldate provides a validated year/month/day calendar date with a
// linear elapsed-day encoding used for comparison and interval arithmetic.
//
// Leap years follow the simplified rule: a year is a leap year if it is
// divisible by 4. There is no centurial exception, so dates here diverge from
// the proleptic Gregorian calendar (and from the time package) across
// centuries not divisible by 400.
package caldate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxYear is the largest year accepted by Parse and New.
//
// Larger years would overflow the elapsed-day encoding.
const MaxYear = 1_000_000_000

// separator separates the year, month, and day fields.
const separator = "/"

var (
	// ErrMalformedInput is returned when the input does not split into exactly
	// three separator-delimited fields.
	ErrMalformedInput = errors.New("malformed date, expected YYYY/MM/DD")
	// ErrInvalidYear is returned when the year is not a positive integer.
	ErrInvalidYear = errors.New("invalid year")
	// ErrInvalidMonth is returned when the month is not an integer in [1, 12].
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidDay is returned when the day is not an integer in [1, 31] or
	// exceeds the length of the month.
	ErrInvalidDay = errors.New("invalid day")
)

// cumulativeDays[i] is the number of days in the months before month i+1,
// with February fixed at 28 days.
var cumulativeDays = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// ParseError is returned by Parse and New.
//
// Err is one of ErrMalformedInput, ErrInvalidYear, ErrInvalidMonth, or
// ErrInvalidDay, so callers can match with errors.Is.
type ParseError struct {
	// Input is the value that failed to parse.
	Input string
	// Err is the sentinel error describing the failure.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

// Unwrap returns the sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Date is an immutable calendar date.
//
// The zero value is not a valid date and reports true from IsZero. Dates
// are only produced by Parse, New, FromTime, and UnmarshalText.
type Date struct {
	year              int
	month             int
	day               int
	elapsedDays       int
	elapsedMonths     int
	elapsedDaysInYear int
}

// Parse parses a date of the form YYYY/MM/DD.
//
// The year may have any number of digits, the month and day one or more.
func Parse(input string) (Date, error) {
	parts := strings.Split(input, separator)
	if len(parts) != 3 {
		return Date{}, newParseError(input, ErrMalformedInput)
	}
	year, ok := parseYear(parts[0])
	if !ok {
		return Date{}, newParseError(input, ErrInvalidYear)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, newParseError(input, ErrInvalidMonth)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, newParseError(input, ErrInvalidDay)
	}
	if err := validate(year, month, day); err != nil {
		return Date{}, newParseError(input, err)
	}
	return newDate(year, month, day), nil
}

// MustParse is like Parse but panics on error.
//
// It is intended for tests and package-level constants.
func MustParse(input string) Date {
	date, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return date
}

// New returns the date for the given components, validated the same way as Parse.
func New(year int, month int, day int) (Date, error) {
	if err := validate(year, month, day); err != nil {
		return Date{}, newParseError(fmt.Sprintf("%04d/%02d/%02d", year, month, day), err)
	}
	return newDate(year, month, day), nil
}

// FromTime returns the date of t in t's location.
//
// Years before 1 cannot be represented and return ErrInvalidYear. February 29
// of a year the time package considers common (or the reverse) cannot occur,
// since every Gregorian leap year is also a leap year here.
func FromTime(t time.Time) (Date, error) {
	year, month, day := t.Date()
	return New(year, int(month), day)
}

// IsLeapYear reports whether year is a leap year under the simplified rule.
func IsLeapYear(year int) bool {
	return year%4 == 0
}

// DaysInMonth returns the number of days in the given month of the given year.
//
// It returns 0 if month is not in [1, 12].
func DaysInMonth(year int, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Year returns the year.
func (d Date) Year() int {
	return d.year
}

// Month returns the month in [1, 12].
func (d Date) Month() int {
	return d.month
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.day
}

// ElapsedDays returns the number of days from 0001/01/01 up to and including d.
//
// 0001/01/01 has ElapsedDays 1. Consecutive calendar days differ by exactly one.
func (d Date) ElapsedDays() int {
	return d.elapsedDays
}

// ElapsedMonths returns year*12 + month.
func (d Date) ElapsedMonths() int {
	return d.elapsedMonths
}

// ElapsedDaysInYear returns the number of days from January 1 of d's year up
// to and including d. January 1 has ElapsedDaysInYear 1.
func (d Date) ElapsedDaysInYear() int {
	return d.elapsedDaysInYear
}

// IsZero returns true if d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare returns -1 if d is before other, 0 if they are equal, and +1 if d
// is after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.elapsedDays < other.elapsedDays:
		return -1
	case d.elapsedDays > other.elapsedDays:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Equal reports whether d and other are the same date.
func (d Date) Equal(other Date) bool {
	return d.Compare(other) == 0
}

// String returns the date in YYYY/MM/DD form, with the year padded to at
// least four digits.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.year, d.month, d.day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	date, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// *** PRIVATE ***

func newDate(year int, month int, day int) Date {
	// The current year's leap day is counted once February has passed.
	leapDay := 0
	if month > 2 && IsLeapYear(year) {
		leapDay = 1
	}
	elapsedDaysInYear := cumulativeDays[month-1] + day + leapDay
	priorYears := year - 1
	return Date{
		year:              year,
		month:             month,
		day:               day,
		elapsedDays:       priorYears*365 + priorYears/4 + elapsedDaysInYear,
		elapsedMonths:     year*12 + month,
		elapsedDaysInYear: elapsedDaysInYear,
	}
}

// validate checks the components in order: year, month, coarse day bound,
// then the length of the month.
func validate(year int, month int, day int) error {
	if year < 1 || year > MaxYear {
		return ErrInvalidYear
	}
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	if day < 1 || day > 31 || day > DaysInMonth(year, month) {
		return ErrInvalidDay
	}
	return nil
}

// parseYear accepts only non-empty runs of ASCII digits, so signs and
// whitespace are rejected.
func parseYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		// Out of range for int.
		return 0, false
	}
	return year, true
}

func newParseError(input string, err error) *ParseError {
	return &ParseError{
		Input: input,
		Err:   err,
	}
}
