// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configvalidate implements the "config validate" command.
package configvalidate

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffconfig"
	"github.com/spf13/pflag"
)

// configFlagName is the flag name for the configuration file path.
const configFlagName = "config"

// NewCommand returns a new config validate command that validates a configuration file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Validate a configuration file",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Config is the path to the configuration file.
	Config string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(
		&f.Config,
		configFlagName,
		"",
		"The configuration file path, defaults to config.yaml in the caldiff config directory",
	)
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	configFilePath := flags.Config
	if configFilePath == "" {
		configFilePath = caldiffconfig.ConfigFilePath(container.ConfigDirPath())
	}
	if err := caldiffconfig.ValidateConfigFile(configFilePath); err != nil {
		return err
	}
	container.Logger().Info("configuration is valid", "path", configFilePath)
	return nil
}
