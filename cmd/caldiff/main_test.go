// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"buf.build/go/app"
	"buf.build/go/app/appcmd"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	t.Parallel()
	stdout, err := runCommand(t, "", "diff", "2013/01/01", "2017/05/15", "--format", "json")
	require.NoError(t, err)
	require.JSONEq(
		t,
		`{"from":"2013/01/01","to":"2017/05/15","years":4,"months":4,"days":14,"total_days":1595,"invert":false,"approx_years":"4.37"}`,
		stdout,
	)
}

func TestDiffCSV(t *testing.T) {
	t.Parallel()
	stdout, err := runCommand(t, "", "diff", "2015/01/02", "2015/01/01", "--format", "csv")
	require.NoError(t, err)
	require.Equal(
		t,
		"FROM,TO,YEARS,MONTHS,DAYS,TOTAL_DAYS,INVERT,APPROX_YEARS\n2015/01/02,2015/01/01,0,0,-1,1,true,0.00\n",
		stdout,
	)
}

func TestDiffInvalidDate(t *testing.T) {
	t.Parallel()
	_, err := runCommand(t, "", "diff", "2017/02/29", "2017/05/15")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid day")
	_, err = runCommand(t, "", "diff", "2017/01/01")
	require.Error(t, err)
	_, err = runCommand(t, "", "diff", "2017/01/01", "2017/01/02", "--format", "xml")
	require.Error(t, err)
}

func TestDate(t *testing.T) {
	t.Parallel()
	stdout, err := runCommand(t, "", "date", "2016/2/29", "--format", "csv")
	require.NoError(t, err)
	require.Equal(
		t,
		"DATE,LEAP_YEAR,DAYS_IN_MONTH,ELAPSED_DAYS,ELAPSED_MONTHS,ELAPSED_DAYS_IN_YEAR\n2016/02/29,true,29,736038,24194,60\n",
		stdout,
	)
}

func TestBatchStdin(t *testing.T) {
	t.Parallel()
	stdout, err := runCommand(
		t,
		"from,to\n2014/01/01,2014/01/04\n2015/01/02,2015/01/01\n",
		"batch", "--file", "-", "--format", "csv",
	)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "2014/01/01,2014/01/04,0,0,3,3,false,0.01", lines[1])
	require.Equal(t, "2015/01/02,2015/01/01,0,0,-1,1,true,0.00", lines[2])
}

func TestBatchFile(t *testing.T) {
	t.Parallel()
	filePath := filepath.Join(t.TempDir(), "pairs.csv")
	require.NoError(t, os.WriteFile(filePath, []byte("2014/01/01,2015/01/01\n"), 0o644))
	stdout, err := runCommand(t, "", "batch", "--file", filePath, "--format", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, `"total_days":365`)

	_, err = runCommand(t, "", "batch")
	require.Error(t, err)
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	// Point every config directory lookup at an empty directory so the
	// default configuration is used.
	dirPath := t.TempDir()
	env := map[string]string{
		"HOME":               dirPath,
		"XDG_CONFIG_HOME":    dirPath,
		"XDG_CACHE_HOME":     dirPath,
		"XDG_DATA_HOME":      dirPath,
		"CALDIFF_CONFIG_DIR": filepath.Join(dirPath, "caldiff"),
	}
	var stdout, stderr bytes.Buffer
	container := app.NewContainer(
		env,
		strings.NewReader(stdin),
		&stdout,
		&stderr,
		append([]string{"caldiff"}, args...)...,
	)
	err := appcmd.Run(context.Background(), container, newRootCommand("caldiff"))
	return stdout.String(), err
}
