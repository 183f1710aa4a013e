// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package diff implements the "diff" command.
package diff

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/caldiffcmd"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffreport"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// NewCommand returns a new diff command that computes the difference between two dates.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <from> <to>",
		Short: "Compute the difference between two dates",
		Long: `Compute the difference between two dates.

Each date is either YYYY/MM/DD, a date name from the configuration file, or
"today". Prints the completed years and months, the difference of the
day-of-month components, the total number of days, and whether <to> is
before <from>.

Leap years are years divisible by 4, without the Gregorian centurial exception.`,
		Args: appcmd.ExactArgs(2),
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
	from, err := caldiffcmd.ResolveDateArg(config, "from", container.Arg(0))
	if err != nil {
		return err
	}
	to, err := caldiffcmd.ResolveDateArg(config, "to", container.Arg(1))
	if err != nil {
		return err
	}
	report := caldiffreport.NewDifferenceReport(from, to)
	container.Logger().Debug("computed difference",
		"from", from.String(),
		"to", to.String(),
		"total_days", report.TotalDays,
		"invert", report.Invert,
	)
	return cliio.WriteObjects(
		container.Stdout(),
		format,
		caldiffreport.DifferenceHeaders(),
		[]*caldiffreport.DifferenceReport{report},
		caldiffreport.DifferenceToRow,
	)
}
