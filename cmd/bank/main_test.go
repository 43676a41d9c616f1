package main

import (
	"bytes"
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankmediator/internal/logging"
	"bankmediator/internal/storage"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), stderr.String())
	return stdout.String()
}

func TestRootRunsDepositAndWithdrawal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operations.log")

	out := execute(t, "--log-file", path)
	assert.Equal(t, "Deposit operation executed.\nWithdrawal operation executed.\n", out)

	execute(t, "--log-file", path)
	got, err := storage.ReadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Deposit", "Withdrawal", "Deposit", "Withdrawal"}, got)
}

func TestRootMissingDirectoryStillCompletes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "operations.log")

	out := execute(t, "--log-file", path)

	assert.Contains(t, out, "Deposit operation executed.\n")
	assert.Contains(t, out, "Withdrawal operation executed.\n")
	assert.Equal(t, 2, strings.Count(out, "Target directory does not exist: "))
}

func TestRootRejectsArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestEnvLogFile(t *testing.T) {
	t.Setenv("BANK_LOG_FILE", "")
	assert.Equal(t, defaultLogFile, envLogFile())

	t.Setenv("BANK_LOG_FILE", "/tmp/custom.log")
	assert.Equal(t, "/tmp/custom.log", envLogFile())
}

func TestHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operations.log")
	execute(t, "--log-file", path)

	out := execute(t, "--log-file", path, "history")
	assert.Equal(t, "Deposit\nWithdrawal\n", out)
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, "127.0.0.1:0", http.NotFoundHandler(), logging.Discard())
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
