// internal/bank/bank.go

// Package bank 實作中介者 (mediator)：Bank 接收操作、執行其行為，
// 再把操作種類名稱附加到日誌檔。
// 寫檔失敗一律在此層吸收：輸出診斷訊息後繼續執行，不向上拋出錯誤。
package bank

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"bankmediator/internal/logging"
	"bankmediator/internal/metrics"
	"bankmediator/internal/storage"
)

// Bank 為協調者，除日誌路徑外不保存任何狀態。
// - mu：序列化所有 Execute / AppendLog，確保記錄依呼叫順序完整寫入。
// - out：確認訊息與診斷訊息的輸出目的地（main 中為 stdout）。
// - runID：本次執行的關聯 ID，只出現在結構化日誌。
type Bank struct {
	mu      sync.Mutex
	logPath string
	out     io.Writer
	logger  *slog.Logger
	runID   string
}

// Receipt 為 Execute 的結果。
type Receipt struct {
	Operation string `json:"operation"`
	Logged    bool   `json:"logged"`
}

// NewBank 建立寫入 logPath 的 Bank。out 為 nil 時丟棄主控台輸出。
func NewBank(logPath string, out io.Writer, logger *slog.Logger) *Bank {
	if out == nil {
		out = io.Discard
	}
	runID := uuid.NewString()
	return &Bank{
		logPath: logPath,
		out:     out,
		runID:   runID,
		logger:  logging.Default(logger).With("component", "bank", "run", runID),
	}
}

// LogPath 回傳日誌檔路徑。
func (b *Bank) LogPath() string { return b.logPath }

// RunID 回傳本次執行的關聯 ID。
func (b *Bank) RunID() string { return b.runID }

// Execute 執行操作後將其名稱寫入日誌。
// 無效的操作不執行也不記錄。
func (b *Bank) Execute(op Operation) Receipt {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !op.Valid() {
		b.logger.Warn("ignoring invalid operation", "operation", op.String())
		return Receipt{Operation: op.String()}
	}

	op.Perform(b.out)
	metrics.OperationsExecutedTotal.WithLabelValues(op.String()).Inc()

	return Receipt{Operation: op.String(), Logged: b.appendLog(op.String())}
}

// AppendLog 將 name 附加為一筆日誌記錄，回報是否寫入成功。
func (b *Bank) AppendLog(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.appendLog(name)
}

// appendLog 需在持有 mu 時呼叫。
func (b *Bank) appendLog(name string) bool {
	err := storage.AppendRecord(b.logPath, name)
	if err == nil {
		metrics.JournalRecordsAppendedTotal.Inc()
		b.logger.Debug("operation logged", "operation", name, "path", b.logPath)
		return true
	}

	kind := storage.Classify(err)
	metrics.JournalAppendFailuresTotal.WithLabelValues(string(kind)).Inc()
	fmt.Fprintln(b.out, diagnostics[kind]+err.Error())
	b.logger.Error("append to operation log failed",
		"operation", name, "path", b.logPath, "kind", kind, "error", err)
	return false
}

// History 讀回日誌中所有記錄的操作名稱。
func (b *Bank) History() ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return storage.ReadRecords(b.logPath)
}
