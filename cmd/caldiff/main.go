// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/batch"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/config"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/date"
	"github.com/bufdev/caldiff/cmd/caldiff/internal/command/diff"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("caldiff"))
}

// newRootCommand creates the root caldiff command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Compute differences between calendar dates",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			batch.NewCommand("batch", builder),
			config.NewCommand("config", builder),
			date.NewCommand("date", builder),
			diff.NewCommand("diff", builder),
		},
	}
}
