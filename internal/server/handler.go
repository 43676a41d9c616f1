// internal/server/handler.go
//
// Package server
// ─────────────────────────────────────────────
// 提供 HTTP 介面，讓外部以請求觸發 bank 中介者。
// 每個 handler 僅負責：
//  1. 解析路徑與 HTTP 方法
//  2. 呼叫 bank 層執行操作或讀回日誌
//  3. 回傳標準化 JSON 回應
//
// 寫檔失敗由 bank 層吸收，這裡只透過 Receipt.Logged 得知結果。
package server

import (
	"errors"
	"net/http"
	"strings"

	"bankmediator/internal/bank"
)

// Server 為 HTTP 層核心結構，注入 bank 中介者。
type Server struct {
	Bank *bank.Bank
}

// NewServer 建立新的 HTTP 伺服器。
func NewServer(b *bank.Bank) *Server {
	return &Server{Bank: b}
}

// operations 處理 GET /operations：依寫入順序列出日誌中的操作名稱。
func (s *Server) operations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	names, err := s.Bank.History()
	if err != nil {
		writeErr(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// operationSubroutes 處理 POST /operations/{name}：執行一筆操作。
func (s *Server) operationSubroutes(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/operations/"), "/")
	if name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	op, err := bank.ParseOperation(name)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, bank.ErrUnknownOperation) {
			code = http.StatusBadRequest
		}
		writeErr(w, err, code)
		return
	}

	writeJSON(w, http.StatusOK, s.Bank.Execute(op))
}

// health 提供健康檢查端點：GET /health。
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "run": s.Bank.RunID()})
}
