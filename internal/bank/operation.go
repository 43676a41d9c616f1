// internal/bank/operation.go
//
// 定義金融操作的種類與各自的行為。
// 操作為單純的列舉值，行為由 behaviors 表查找，不使用繼承式多型。

package bank

import (
	"fmt"
	"io"
	"strings"
)

// Operation 代表一種金融操作（存款或提款）。零值不是有效操作。
type Operation int

const (
	Deposit Operation = iota + 1
	Withdrawal
)

// behavior 描述一種操作：寫入日誌的名稱與執行時輸出的確認訊息。
type behavior struct {
	name    string
	confirm string
}

var behaviors = map[Operation]behavior{
	Deposit:    {name: "Deposit", confirm: "Deposit operation executed."},
	Withdrawal: {name: "Withdrawal", confirm: "Withdrawal operation executed."},
}

// Operations 依宣告順序回傳所有有效操作。
func Operations() []Operation {
	return []Operation{Deposit, Withdrawal}
}

// ParseOperation 依名稱（不分大小寫）取得操作；未知名稱回傳 ErrUnknownOperation。
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations() {
		if strings.EqualFold(behaviors[op].name, strings.TrimSpace(name)) {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Valid 回報 op 是否為已定義的操作。
func (op Operation) Valid() bool {
	_, ok := behaviors[op]
	return ok
}

// String 回傳操作的種類名稱，即寫入日誌的內容。
func (op Operation) String() string {
	if b, ok := behaviors[op]; ok {
		return b.name
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// Perform 執行操作本身：輸出一行固定的確認訊息。
func (op Operation) Perform(w io.Writer) {
	if b, ok := behaviors[op]; ok {
		fmt.Fprintln(w, b.confirm)
	}
}
