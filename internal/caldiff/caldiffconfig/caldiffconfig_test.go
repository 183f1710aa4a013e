// Copyright 2026 Peter Edge
//
// All rights reserved.

package caldiffconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	t.Parallel()
	configDirPath := t.TempDir()
	writeConfig(t, configDirPath, `version: v1
format: json
dates:
  - name: launch
    date: 2014/01/01
  - name: leap
    date: 2016/2/29
`)
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, cliio.FormatJSON, config.Format)
	require.Len(t, config.NamedDates, 2)
	require.Equal(t, "2014/01/01", config.NamedDates["launch"].String())
	require.Equal(t, "2016/02/29", config.NamedDates["leap"].String())
}

func TestReadConfigErrors(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc     string
		data     string
		contains string
	}{
		{
			desc:     "empty file",
			data:     "",
			contains: "unsupported config version",
		},
		{
			desc:     "bad version",
			data:     "version: v2\n",
			contains: "unsupported config version",
		},
		{
			desc:     "unknown field",
			data:     "version: v1\nunknown: true\n",
			contains: "could not unmarshal as YAML",
		},
		{
			desc:     "bad format",
			data:     "version: v1\nformat: xml\n",
			contains: "unknown format",
		},
		{
			desc:     "missing name",
			data:     "version: v1\ndates:\n  - date: 2014/01/01\n",
			contains: "date name is required",
		},
		{
			desc:     "reserved name",
			data:     "version: v1\ndates:\n  - name: today\n    date: 2014/01/01\n",
			contains: "reserved",
		},
		{
			desc:     "duplicate name",
			data:     "version: v1\ndates:\n  - name: a\n    date: 2014/01/01\n  - name: a\n    date: 2015/01/01\n",
			contains: "duplicate date name",
		},
		{
			desc:     "invalid date",
			data:     "version: v1\ndates:\n  - name: a\n    date: 2017/02/29\n",
			contains: "invalid day",
		},
	} {
		configDirPath := t.TempDir()
		writeConfig(t, configDirPath, test.data)
		_, err := ReadConfig(configDirPath)
		require.Error(t, err, test.desc)
		require.Contains(t, err.Error(), test.contains, test.desc)
	}
}

func TestInvalidDateWrapsSentinel(t *testing.T) {
	t.Parallel()
	_, err := NewConfig(ExternalConfig{
		Version: "v1",
		Dates:   []ExternalDateConfig{{Name: "bad", Date: "2017/13/01"}},
	})
	require.ErrorIs(t, err, caldate.ErrInvalidMonth)
}

func TestReadConfigMissing(t *testing.T) {
	t.Parallel()
	configDirPath := t.TempDir()
	_, err := ReadConfig(configDirPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "caldiff config init")

	config, err := ReadConfigOrDefault(configDirPath)
	require.NoError(t, err)
	require.Equal(t, cliio.FormatTable, config.Format)
	require.Empty(t, config.NamedDates)
}

func TestInitConfig(t *testing.T) {
	t.Parallel()
	configDirPath := filepath.Join(t.TempDir(), "nested", "caldiff")
	filePath, err := InitConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, ConfigFilePath(configDirPath), filePath)
	// The template must itself be a valid configuration.
	require.NoError(t, ValidateConfigFile(filePath))
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, cliio.FormatTable, config.Format)
	// A second init must not overwrite the file.
	_, err = InitConfig(configDirPath)
	require.Error(t, err)
}

func TestResolveDate(t *testing.T) {
	t.Parallel()
	config, err := NewConfig(ExternalConfig{
		Version: "v1",
		Dates:   []ExternalDateConfig{{Name: "launch", Date: "2014/01/01"}},
	})
	require.NoError(t, err)
	now := func() time.Time {
		return time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	}
	failNow := func() time.Time {
		t.Fatal("now called for a non-today value")
		return time.Time{}
	}

	date, err := config.ResolveDate("today", now)
	require.NoError(t, err)
	require.Equal(t, "2026/10/16", date.String())

	date, err = config.ResolveDate("launch", failNow)
	require.NoError(t, err)
	require.Equal(t, "2014/01/01", date.String())

	date, err = config.ResolveDate("2016/02/29", failNow)
	require.NoError(t, err)
	require.Equal(t, "2016/02/29", date.String())

	_, err = config.ResolveDate("launched", failNow)
	require.ErrorIs(t, err, caldate.ErrMalformedInput)
}

func writeConfig(t *testing.T, configDirPath string, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(ConfigFilePath(configDirPath), []byte(data), 0o644))
}
