package views

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"vault/internal/ui/widgets"
)

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// formatLocal renders a stored UTC time in loc.
func formatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(widgets.DatetimeLayout)
}

func formatLocalPtr(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return formatLocal(*t, loc)
}

// formatMoney renders an amount with a dollar sign and two decimals.
func formatMoney(d decimal.Decimal) string {
	return "$ " + d.StringFixedBank(2)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixedBank(2)
}

func formatInstallments(number, total int) string {
	return fmt.Sprintf("%02d/%02d", number, total)
}

// recordID reads the id column of a table record.
func recordID(r widgets.Record) (uint, bool) {
	id, err := strconv.ParseUint(r["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
