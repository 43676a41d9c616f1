// internal/server/router.go
//
// 本檔負責 HTTP 路由註冊，與 handler.go 分離：
//   - handler.go 定義「如何處理請求」
//   - router.go 定義「請求如何被導向」
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router 建立並回傳整個 HTTP 處理鏈。
func (s *Server) Router() http.Handler {
	v1 := http.NewServeMux()

	// 健康檢查
	v1.HandleFunc("/health", s.health)

	//   - GET  /operations         → 日誌內容
	//   - POST /operations/{name}  → 執行 Deposit / Withdrawal
	v1.HandleFunc("/operations", s.operations)
	v1.HandleFunc("/operations/", s.operationSubroutes)

	// Prometheus 指標
	v1.Handle("/metrics", promhttp.Handler())

	root := http.NewServeMux()
	root.Handle("/api/v1/", http.StripPrefix("/api/v1", v1))
	root.Handle("/", v1)

	return root
}
