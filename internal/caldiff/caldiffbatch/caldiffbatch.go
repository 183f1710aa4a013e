// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package caldiffbatch computes differences for a list of date pairs read from CSV.
//
// Each record has two fields, from and to. Blank lines and lines starting
// with # are skipped, as is an optional from,to header on the first record.
package caldiffbatch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bufdev/caldiff/internal/caldiff/caldiffreport"
	"github.com/bufdev/caldiff/internal/pkg/caldate"
)

// ResolveDateFunc resolves a date field to a date.
type ResolveDateFunc func(value string) (caldate.Date, error)

// Compute reads date pairs from reader and returns one report per pair, in order.
//
// The first invalid record fails the whole batch, and the error names its line.
func Compute(
	logger *slog.Logger,
	reader io.Reader,
	resolveDate ResolveDateFunc,
) ([]*caldiffreport.DifferenceReport, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = 2
	csvReader.TrimLeadingSpace = true
	var reports []*caldiffreport.DifferenceReport
	for first := true; ; first = false {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading date pairs: %w", err)
		}
		line, _ := csvReader.FieldPos(0)
		if first && isHeader(record) {
			continue
		}
		from, err := resolveDate(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: from: %w", line, err)
		}
		to, err := resolveDate(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: to: %w", line, err)
		}
		report := caldiffreport.NewDifferenceReport(from, to)
		logger.Debug("computed difference",
			"line", line,
			"from", from.String(),
			"to", to.String(),
			"total_days", report.TotalDays,
			"invert", report.Invert,
		)
		reports = append(reports, report)
	}
	logger.Debug("computed batch", "pairs", len(reports))
	return reports, nil
}

// *** PRIVATE ***

func isHeader(record []string) bool {
	return strings.EqualFold(strings.TrimSpace(record[0]), "from") &&
		strings.EqualFold(strings.TrimSpace(record[1]), "to")
}
