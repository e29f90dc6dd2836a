package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, day, date, city, kind, side, item, quantity, unit_price, total, realized_pl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.Day, t.Date, t.City, t.Kind, t.Side,
		t.Item, t.Quantity, t.UnitPrice, t.Total, t.RealizedPL,
	)
	return err
}

func (j *SQLite) RecordEvent(e EventRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO events
		(day, date, city, key, category, message)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Day, e.Date, e.City, e.Key, e.Category, e.Message,
	)
	return err
}

func (j *SQLite) RecordNetWorth(s NetWorthSnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO net_worth
		(day, date, cash, bank, debt, goods_value, asset_value, net_worth)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Day, s.Date, s.Cash, s.Bank, s.Debt,
		s.GoodsValue, s.AssetValue, s.NetWorth,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
