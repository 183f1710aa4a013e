// Copyright 2026 Peter Edge
//
// All rights reserved.

package cliio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testObject struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for input, want := range map[string]Format{
		"table": FormatTable,
		"CSV":   FormatCSV,
		"Json":  FormatJSON,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseFormat("yaml")
	require.Error(t, err)
}

func TestWriteObjects(t *testing.T) {
	t.Parallel()
	objects := []testObject{{Name: "a", Count: 1}, {Name: "bb", Count: 22}}
	toRow := func(o testObject) []string {
		return []string{o.Name, strings.Repeat("x", o.Count%3)}
	}
	headers := []string{"NAME", "X"}

	var buffer bytes.Buffer
	require.NoError(t, WriteObjects(&buffer, FormatCSV, headers, objects, toRow))
	require.Equal(t, "NAME,X\na,x\nbb,x\n", buffer.String())

	buffer.Reset()
	require.NoError(t, WriteObjects(&buffer, FormatJSON, headers, objects, toRow))
	require.Equal(t, "{\"name\":\"a\",\"count\":1}\n{\"name\":\"bb\",\"count\":22}\n", buffer.String())

	buffer.Reset()
	require.NoError(t, WriteObjects(&buffer, FormatTable, headers, objects, toRow))
	require.Equal(t, "NAME  X\na     x\nbb    x\n", buffer.String())

	require.Error(t, WriteObjects(&buffer, Format("xml"), headers, objects, toRow))
}

func TestForFile(t *testing.T) {
	t.Parallel()
	filePath := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("hello"), 0o644))
	var got []byte
	require.NoError(t, ForFile(filePath, func(reader io.Reader) error {
		var err error
		got, err = io.ReadAll(reader)
		return err
	}))
	require.Equal(t, "hello", string(got))
	require.Error(t, ForFile(filepath.Join(t.TempDir(), "missing.txt"), func(io.Reader) error { return nil }))
}
