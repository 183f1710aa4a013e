// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package caldiffcmd provides shared wiring for caldiff commands (reading config,
// resolving the output format and date arguments).
package caldiffcmd

import (
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/caldiff/internal/caldiff/caldiffconfig"
	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// FormatFlagName is the flag name for the output format.
const FormatFlagName = "format"

// BindFormatFlag registers the --format flag. An empty value means the
// configured default format.
func BindFormatFlag(flagSet *pflag.FlagSet, format *string) {
	flagSet.StringVar(
		format,
		FormatFlagName,
		"",
		"Output format (table, csv, json), defaults to the configured format or table",
	)
}

// ReadConfig reads the configuration file from the container's config
// directory, or returns the default configuration if none exists.
func ReadConfig(container appext.Container) (*caldiffconfig.Config, error) {
	return caldiffconfig.ReadConfigOrDefault(container.ConfigDirPath())
}

// ResolveFormat returns the format given by the flag value, or the configured
// default if the flag value is empty.
func ResolveFormat(flagValue string, config *caldiffconfig.Config) (cliio.Format, error) {
	if flagValue == "" {
		return config.Format, nil
	}
	format, err := cliio.ParseFormat(flagValue)
	if err != nil {
		return "", appcmd.NewInvalidArgumentError(err.Error())
	}
	return format, nil
}

// ResolveDateArg resolves a date argument against the configuration, returning
// an invalid argument error naming the argument if it does not resolve.
func ResolveDateArg(config *caldiffconfig.Config, name string, value string) (caldate.Date, error) {
	date, err := config.ResolveDate(value, time.Now)
	if err != nil {
		return caldate.Date{}, appcmd.NewInvalidArgumentErrorf("invalid %s date: %v", name, err)
	}
	return date, nil
}
