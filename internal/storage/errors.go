// internal/storage/errors.go
//
// 本檔定義日誌層的錯誤與 I/O 失敗分類。
// 上層（bank）依 FailureKind 決定要輸出哪一種診斷訊息。

package storage

import (
	"errors"
	"io/fs"
)

// ErrCorruptRecord 代表日誌檔中有無法解碼的記錄（通常是尾端被截斷）。
var ErrCorruptRecord = errors.New("corrupt journal record")

// FailureKind 為附加寫入失敗的分類。
type FailureKind string

const (
	// FailurePermission 代表沒有寫入權限。
	FailurePermission FailureKind = "permission"
	// FailureMissingDir 代表日誌所在目錄不存在。
	FailureMissingDir FailureKind = "missing_dir"
	// FailureOther 涵蓋其餘所有錯誤。
	FailureOther FailureKind = "other"
)

// Classify 將 AppendRecord 回傳的錯誤歸類。
// 以 O_CREATE 開檔時回傳 ErrNotExist，只可能是上層目錄不存在。
func Classify(err error) FailureKind {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return FailurePermission
	case errors.Is(err, fs.ErrNotExist):
		return FailureMissingDir
	default:
		return FailureOther
	}
}
