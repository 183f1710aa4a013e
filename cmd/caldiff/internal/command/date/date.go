// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package date implements the "date" command.
package date

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffreport"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// NewCommand returns a new date command that validates dates and prints their encodings.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <date>...",
		Short: "Validate dates and print their canonical form and elapsed-day encoding",
		Args:  appcmd.MinimumNArgs(1),
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	caldiffcmd.BindFormatFlag(flagSet, &f.Format)
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	config, err := caldiffcmd.ReadConfig(container)
	if err != nil {
		return err
	}
	format, err := caldiffcmd.ResolveFormat(flags.Format, config)
	if err != nil {
		return err
	}
	reports := make([]*caldiffreport.DateReport, 0, container.NumArgs())
	for i := range container.NumArgs() {
		date, err := caldiffcmd.ResolveDateArg(config, "argument", container.Arg(i))
		if err != nil {
			return err
		}
		reports = append(reports, caldiffreport.NewDateReport(date))
	}
	return cliio.WriteObjects(
		container.Stdout(),
		format,
		caldiffreport.DateHeaders(),
		reports,
		caldiffreport.DateToRow,
	)
}
