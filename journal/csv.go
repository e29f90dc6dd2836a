package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

type CSVJournal struct {
	trades   *csv.Writer
	events   *csv.Writer
	networth *csv.Writer
	files    []*os.File
}

// NewCSV opens CSV journals for trades and events. netWorthPath may be
// empty, in which case net-worth snapshots are discarded.
func NewCSV(tradesPath, eventsPath, netWorthPath string) (*CSVJournal, error) {
	j := &CSVJournal{}

	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	j.files = append(j.files, tf)
	j.trades = csv.NewWriter(tf)

	ef, err := os.Create(eventsPath)
	if err != nil {
		j.Close()
		return nil, err
	}
	j.files = append(j.files, ef)
	j.events = csv.NewWriter(ef)

	if err := j.trades.Write([]string{"trade_id", "day", "date", "city", "kind", "side", "item", "quantity", "unit_price", "total", "realized_pl"}); err != nil {
		j.Close()
		return nil, err
	}
	if err := j.events.Write([]string{"day", "date", "city", "key", "category", "message"}); err != nil {
		j.Close()
		return nil, err
	}

	if netWorthPath != "" {
		nf, err := os.Create(netWorthPath)
		if err != nil {
			j.Close()
			return nil, err
		}
		j.files = append(j.files, nf)
		j.networth = csv.NewWriter(nf)
		if err := j.networth.Write([]string{"day", "date", "cash", "bank", "debt", "goods_value", "asset_value", "net_worth"}); err != nil {
			j.Close()
			return nil, err
		}
	}

	if err := j.flush(); err != nil {
		j.Close()
		return nil, err
	}
	return j, nil
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	err := j.trades.Write([]string{
		t.TradeID,
		strconv.Itoa(t.Day),
		t.Date,
		t.City,
		t.Kind,
		t.Side,
		t.Item,
		i(t.Quantity),
		i(t.UnitPrice),
		i(t.Total),
		i(t.RealizedPL),
	})
	if err != nil {
		return err
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) RecordEvent(e EventRecord) error {
	err := j.events.Write([]string{
		strconv.Itoa(e.Day),
		e.Date,
		e.City,
		e.Key,
		e.Category,
		e.Message,
	})
	if err != nil {
		return err
	}
	j.events.Flush()
	return j.events.Error()
}

func (j *CSVJournal) RecordNetWorth(s NetWorthSnapshot) error {
	if j.networth == nil {
		return nil
	}
	err := j.networth.Write([]string{
		strconv.Itoa(s.Day),
		s.Date,
		i(s.Cash),
		i(s.Bank),
		i(s.Debt),
		i(s.GoodsValue),
		i(s.AssetValue),
		i(s.NetWorth),
	})
	if err != nil {
		return err
	}
	j.networth.Flush()
	return j.networth.Error()
}

func (j *CSVJournal) flush() error {
	for _, w := range []*csv.Writer{j.trades, j.events, j.networth} {
		if w == nil {
			continue
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	}
	return nil
}

func (j *CSVJournal) Close() error {
	if err := j.flush(); err != nil {
		return err
	}
	for _, f := range j.files {
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func i(x int64) string {
	return strconv.FormatInt(x, 10)
}
