package account

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/carson-networks/accountbook-server/internal/ledger"
)

// BalanceSeries is the ordered-by-month historical balance attached to an
// account, stored as a JSONB column.
type BalanceSeries []ledger.MonthTotals

// Value implements driver.Valuer for JSONB storage.
func (s BalanceSeries) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (s *BalanceSeries) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("balance series: cannot scan %T", src)
	}
	return json.Unmarshal(data, s)
}
