// internal/server/response.go
//
// 本檔統一 HTTP 回應格式：成功回應走 writeJSON，錯誤回應走 writeErr。
package server

import (
	"encoding/json"
	"net/http"
)

// writeJSON 以 JSON 輸出成功回應。
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr 以純文字輸出錯誤訊息。
func writeErr(w http.ResponseWriter, err error, code int) {
	http.Error(w, err.Error(), code)
}
