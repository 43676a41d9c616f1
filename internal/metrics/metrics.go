// internal/metrics/metrics.go
//
// Package metrics 定義 Prometheus 計數器。
// 以 promauto 註冊到預設 registry，由 server 的 /metrics 端點輸出。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OperationsExecutedTotal 依操作種類計算已執行的次數。
var OperationsExecutedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bank_operations_executed_total",
		Help: "Total financial operations executed",
	},
	[]string{"operation"},
)

// JournalRecordsAppendedTotal 計算成功寫入日誌的記錄數。
var JournalRecordsAppendedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "bank_journal_records_appended_total",
		Help: "Total records appended to the operation journal",
	},
)

// JournalAppendFailuresTotal 依失敗類型計算日誌寫入失敗次數。
var JournalAppendFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bank_journal_append_failures_total",
		Help: "Total failed journal appends by failure kind",
	},
	[]string{"kind"},
)
