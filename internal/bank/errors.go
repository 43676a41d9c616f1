// internal/bank/errors.go
//
// 本檔集中定義 bank 層的錯誤與寫檔失敗時的診斷訊息。

package bank

import (
	"errors"

	"bankmediator/internal/storage"
)

// ErrUnknownOperation 代表無法辨識的操作名稱。
// 對應 HTTP 狀態碼 400 Bad Request。
var ErrUnknownOperation = errors.New("unknown operation")

// diagnostics 為各類寫檔失敗在主控台輸出的訊息前綴，後接錯誤內容。
var diagnostics = map[storage.FailureKind]string{
	storage.FailurePermission: "No permission to write to the log file: ",
	storage.FailureMissingDir: "Target directory does not exist: ",
	storage.FailureOther:      "Unexpected error while writing to the log file: ",
}
