package journal

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('trades','events','net_worth')`)
	assert.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["trades"])
	assert.True(t, found["events"])
	assert.True(t, found["net_worth"])
}

func TestSQLiteRecordTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := TradeRecord{
		TradeID:    "01J0000000000000000000TRD1",
		Day:        3,
		Date:       "2025-01-03",
		City:       "Berlin",
		Kind:       "goods",
		Side:       "sell",
		Item:       "TV",
		Quantity:   12,
		UnitPrice:  1200,
		Total:      14400,
		RealizedPL: 3800,
	}

	assert.NoError(t, j.RecordTrade(rec))

	got, err := j.GetTrade(rec.TradeID)
	assert.NoError(t, err)
	assert.Equal(t, rec, got)

	_, err = j.GetTrade("no-such-trade")
	assert.Error(t, err)
}

func TestSQLiteListTradesBetweenDays(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	for day := 1; day <= 5; day++ {
		assert.NoError(t, j.RecordTrade(TradeRecord{
			TradeID: "T" + string(rune('0'+day)),
			Day:     day,
			Date:    "2025-01-0" + string(rune('0'+day)),
			City:    "Warsaw",
			Kind:    "goods",
			Side:    "buy",
			Item:    "Laptop",
		}))
	}

	got, err := j.ListTradesBetweenDays(2, 4)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Day)
	assert.Equal(t, 3, got[1].Day)
}

func TestSQLiteRecordEvent(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := EventRecord{
		Day:      7,
		Date:     "2025-01-07",
		City:     "Amsterdam",
		Key:      "robbery",
		Category: "loss",
		Message:  "You were robbed! Lost 3 x Weed",
	}
	assert.NoError(t, j.RecordEvent(rec))

	got, err := j.ListEventsByDay(7)
	assert.NoError(t, err)
	assert.Equal(t, []EventRecord{rec}, got)

	empty, err := j.ListEventsByDay(8)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSQLiteRecordNetWorth(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	recs := []NetWorthSnapshot{
		{Day: 1, Date: "2025-01-01", Cash: 50000, NetWorth: 50000},
		{Day: 2, Date: "2025-01-02", Cash: 42000, Bank: 5000, Debt: 1100, GoodsValue: 8000, AssetValue: 0, NetWorth: 53900},
	}
	for _, rec := range recs {
		assert.NoError(t, j.RecordNetWorth(rec))
	}

	got, err := j.ListNetWorth()
	assert.NoError(t, err)
	assert.Equal(t, recs, got)
}
