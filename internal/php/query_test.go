package php

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/otiai10/copy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryVersion(t *testing.T) {
	tests := []struct {
		name   string
		out    []byte
		err    error
		want   string
		wantOK bool
	}{
		{
			name:   "Success",
			out:    []byte("PHP 7.2.17 (cli) (built: Apr 18 2019 14:12:38) ( NTS )\n"),
			want:   "PHP 7.2.17 (cli) (built: Apr 18 2019 14:12:38) ( NTS )\n",
			wantOK: true,
		},
		{
			name:   "EmptyOutput",
			out:    []byte{},
			want:   "",
			wantOK: true,
		},
		{
			name:   "NotFound",
			err:    exec.ErrNotFound,
			wantOK: false,
		},
		{
			name:   "SpawnFailure",
			err:    errors.New("fork/exec /usr/bin/php: permission denied"),
			wantOK: false,
		},
		{
			name:   "InvalidUTF8",
			out:    []byte("PHP 7.2.17 \xff\xfe (cli)"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := NewMockRunner(ctrl)
			runner.EXPECT().Output(gomock.Any(), "php", "-v").Return(tt.out, tt.err)

			got, ok := QueryVersion(context.Background(), runner)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewVersionQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := NewMockRunner(ctrl)
	runner.EXPECT().Output(gomock.Any(), "php", "-v").Return([]byte("PHP 8.2.7 (cli)"), nil).Times(1)

	query := NewVersionQuery(runner)
	got, ok := query(context.Background())
	require.True(t, ok)
	assert.Equal(t, "PHP 8.2.7 (cli)", got)
}

func TestExecRunner_Output(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake php binaries are shell scripts")
	}

	bin := t.TempDir()
	require.NoError(t, copy.Copy("testdata/bin", bin))

	t.Run("Success", func(t *testing.T) {
		out, err := new(ExecRunner).Output(context.Background(), executable(t, bin, "php-ubuntu"), "-v")
		require.NoError(t, err)
		assert.Contains(t, string(out), "PHP 7.2.17-0ubuntu0.18.04.1 (cli)")
		assert.Contains(t, string(out), "Zend Engine v3.2.0")
	})

	t.Run("NonZeroExitKeepsStdout", func(t *testing.T) {
		out, err := new(ExecRunner).Output(context.Background(), executable(t, bin, "php-broken-ini"), "-v")
		require.NoError(t, err)
		assert.Equal(t, "PHP 8.1.2 (cli) (built: Jan 24 2022 10:42:33) (NTS)\n", string(out))
	})

	t.Run("MissingExecutable", func(t *testing.T) {
		_, err := new(ExecRunner).Output(context.Background(), filepath.Join(bin, "php-bogus"), "-v")
		assert.Error(t, err)
	})
}

func TestQueryVersion_PathLookup(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake php binaries are shell scripts")
	}

	bin := t.TempDir()
	require.NoError(t, copy.Copy("testdata/bin", bin))
	require.NoError(t, os.Rename(executable(t, bin, "php-broken-ini"), filepath.Join(bin, "php")))
	t.Setenv("PATH", bin)

	raw, ok := QueryVersion(context.Background(), new(ExecRunner))
	require.True(t, ok)

	version, ok := FormatVersion(raw)
	require.True(t, ok)
	assert.Equal(t, "v8.1.2", version)
}

func TestQueryVersion_NotOnPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, ok := QueryVersion(context.Background(), new(ExecRunner))
	assert.False(t, ok)
}

// executable returns the path of the named fixture in dir after making sure it
// can be executed.
func executable(t *testing.T, dir, name string) string {
	p := filepath.Join(dir, name)
	require.NoError(t, os.Chmod(p, 0o755))
	return p
}
