package journal

import (
	"database/sql"
	"fmt"
)

// GetTrade returns a single trade record by ID.
func (j *SQLite) GetTrade(tradeID string) (TradeRecord, error) {
	var rec TradeRecord

	row := j.db.QueryRow(`
		SELECT trade_id, day, date, city, kind, side, item, quantity, unit_price, total, realized_pl
		FROM trades
		WHERE trade_id = ?`, tradeID)

	err := row.Scan(
		&rec.TradeID,
		&rec.Day,
		&rec.Date,
		&rec.City,
		&rec.Kind,
		&rec.Side,
		&rec.Item,
		&rec.Quantity,
		&rec.UnitPrice,
		&rec.Total,
		&rec.RealizedPL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return TradeRecord{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTradesBetweenDays returns trades whose day is within [start, end).
func (j *SQLite) ListTradesBetweenDays(start, end int) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, day, date, city, kind, side, item, quantity, unit_price, total, realized_pl
		FROM trades
		WHERE day >= ? AND day < ?
		ORDER BY day ASC, trade_id ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var rec TradeRecord
		if err := rows.Scan(
			&rec.TradeID,
			&rec.Day,
			&rec.Date,
			&rec.City,
			&rec.Kind,
			&rec.Side,
			&rec.Item,
			&rec.Quantity,
			&rec.UnitPrice,
			&rec.Total,
			&rec.RealizedPL,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListEventsByDay returns every event recorded for one day.
func (j *SQLite) ListEventsByDay(day int) ([]EventRecord, error) {
	rows, err := j.db.Query(`
		SELECT day, date, city, key, category, message
		FROM events
		WHERE day = ?
		ORDER BY rowid ASC`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EventRecord
	for rows.Next() {
		var rec EventRecord
		if err := rows.Scan(
			&rec.Day,
			&rec.Date,
			&rec.City,
			&rec.Key,
			&rec.Category,
			&rec.Message,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListNetWorth returns the full net-worth series in day order.
func (j *SQLite) ListNetWorth() ([]NetWorthSnapshot, error) {
	rows, err := j.db.Query(`
		SELECT day, date, cash, bank, debt, goods_value, asset_value, net_worth
		FROM net_worth
		ORDER BY day ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []NetWorthSnapshot
	for rows.Next() {
		var s NetWorthSnapshot
		if err := rows.Scan(
			&s.Day,
			&s.Date,
			&s.Cash,
			&s.Bank,
			&s.Debt,
			&s.GoodsValue,
			&s.AssetValue,
			&s.NetWorth,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
