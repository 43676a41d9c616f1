// internal/storage/journal.go
//
// 提供操作日誌 (operation journal) 的附加寫入與讀回。
// 檔案只允許附加：每次呼叫開檔、寫入一筆、關檔，既有內容永不覆寫。
//
// 記錄格式：每筆記錄為一個 msgpack 字串，字串標頭即包含長度，
// 因此記錄之間不需要額外分隔符號。此格式僅供內部使用，不承諾相容性。
package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// AppendRecord 以附加模式開啟 path（不存在則建立），寫入一筆記錄後關閉。
// 開檔錯誤原樣回傳，讓呼叫端能以 Classify 判斷失敗類型。
func AppendRecord(path, name string) error {
	rec, err := EncodeRecord(name)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", name, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	// 單次 Write 寫完整筆記錄，避免半筆資料
	if _, err := f.Write(rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadRecords 依寫入順序讀回所有記錄。
// 檔案不存在視為空日誌；尾端殘缺的記錄回傳 ErrCorruptRecord。
func ReadRecords(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeRecords(bufio.NewReader(f))
}

// DecodeRecords 從 r 連續解碼記錄直到 EOF。
func DecodeRecords(r io.Reader) ([]string, error) {
	dec := msgpack.NewDecoder(r)
	out := []string{}
	for {
		name, err := dec.DecodeString()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w: record %d: %v", ErrCorruptRecord, len(out), err)
		}
		out = append(out, name)
	}
}

// EncodeRecord 回傳單筆記錄的位元組表示，與 AppendRecord 寫入的內容相同。
func EncodeRecord(name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).EncodeString(name); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
