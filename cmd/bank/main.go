// cmd/bank/main.go

// 本程式示範以中介者 (Bank) 協調金融操作：
// 無參數執行時完成一筆存款與一筆提款，並把操作名稱附加到日誌檔。
// 另提供 history（讀回日誌）與 serve（HTTP 介面）子命令。

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bankmediator/internal/bank"
	"bankmediator/internal/logging"
	"bankmediator/internal/server"
)

const defaultLogFile = "operations.log"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd 組裝命令樹；stdout 接收確認與診斷訊息，stderr 接收結構化日誌。
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bank",
		Short:        "Run a deposit and a withdrawal through the bank mediator",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := bankFromCmd(cmd, stdout, stderr)
			if err != nil {
				return err
			}
			for _, op := range bank.Operations() {
				b.Execute(op)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().String("log-file", envLogFile(), "operation log path (or BANK_LOG_FILE env)")
	cmd.PersistentFlags().String("log-level", "warn", "diagnostic log level: debug, info, warn, error")

	cmd.AddCommand(newHistoryCmd(stdout, stderr), newServeCmd(stdout, stderr))
	return cmd
}

func newHistoryCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print the recorded operation names in append order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := bankFromCmd(cmd, stdout, stderr)
			if err != nil {
				return err
			}
			names, err := b.History()
			if err != nil {
				return fmt.Errorf("read %s: %w", b.LogPath(), err)
			}
			for _, n := range names {
				fmt.Fprintln(stdout, n)
			}
			return nil
		},
	}
}

func newServeCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bank mediator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := bankFromCmd(cmd, stdout, stderr)
			if err != nil {
				return err
			}
			addr, _ := cmd.Flags().GetString("addr")
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, addr, server.NewServer(b).Router(), loggerFromCmd(cmd, stderr))
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	return cmd
}

// serve 執行 HTTP 伺服器直到 ctx 結束，再以逾時限制優雅關閉。
func serve(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	logger.Info("bank server running", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func bankFromCmd(cmd *cobra.Command, stdout, stderr io.Writer) (*bank.Bank, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		return nil, errors.New("--log-file must not be empty")
	}
	return bank.NewBank(path, stdout, loggerFromCmd(cmd, stderr)), nil
}

// loggerFromCmd 依 --log-level 建立 logger；無法解析時退回 warn。
func loggerFromCmd(cmd *cobra.Command, stderr io.Writer) *slog.Logger {
	s, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(s)
	if err != nil {
		level = slog.LevelWarn
	}
	return logging.New(stderr, level)
}

func envLogFile() string {
	if v := os.Getenv("BANK_LOG_FILE"); v != "" {
		return v
	}
	return defaultLogFile
}
