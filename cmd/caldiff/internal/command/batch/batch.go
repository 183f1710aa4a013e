// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package batch implements the "batch" command.
package batch

import (
	"context"
	"io"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffbatch"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffreport"
	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// fileFlagName is the flag name for the input CSV file.
const fileFlagName = "file"

// NewCommand returns a new batch command that computes differences for date pairs in a CSV file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Compute differences for date pairs in a CSV file",
		Long: `Compute differences for date pairs in a CSV file.

Each record has two fields, from and to, in any form accepted by "caldiff diff".
Blank lines and lines starting with # are skipped, as is an optional from,to
header. Use --file - to read from stdin. An invalid record fails the command.`,
		Args: appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// File is the path to the CSV file, or - for stdin.
	File string
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(
		&f.File,
		fileFlagName,
		"",
		"The CSV file of from,to date pairs, or - for stdin (required)",
	)
	caldiffcmd.BindFormatFlag(flagSet, &f.Format)
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	if flags.File == "" {
		return appcmd.NewInvalidArgumentErrorf("--%s is required", fileFlagName)
	}
	config, err := caldiffcmd.ReadConfig(container)
	if err != nil {
		return err
	}
	format, err := caldiffcmd.ResolveFormat(flags.Format, config)
	if err != nil {
		return err
	}
	resolveDate := func(value string) (caldate.Date, error) {
		return config.ResolveDate(value, time.Now)
	}
	var reports []*caldiffreport.DifferenceReport
	compute := func(reader io.Reader) error {
		var err error
		reports, err = caldiffbatch.Compute(container.Logger(), reader, resolveDate)
		return err
	}
	if flags.File == "-" {
		err = compute(container.Stdin())
	} else {
		err = cliio.ForFile(flags.File, compute)
	}
	if err != nil {
		return err
	}
	return cliio.WriteObjects(
		container.Stdout(),
		format,
		caldiffreport.DifferenceHeaders(),
		reports,
		caldiffreport.DifferenceToRow,
	)
}
