package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	day INTEGER NOT NULL,
	date TEXT NOT NULL,
	city TEXT NOT NULL,
	kind TEXT NOT NULL,
	side TEXT NOT NULL,
	item TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	unit_price INTEGER NOT NULL,
	total INTEGER NOT NULL,
	realized_pl INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	day INTEGER NOT NULL,
	date TEXT NOT NULL,
	city TEXT NOT NULL,
	key TEXT NOT NULL,
	category TEXT NOT NULL,
	message TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS net_worth (
	day INTEGER NOT NULL,
	date TEXT NOT NULL,
	cash INTEGER NOT NULL,
	bank INTEGER NOT NULL,
	debt INTEGER NOT NULL,
	goods_value INTEGER NOT NULL,
	asset_value INTEGER NOT NULL,
	net_worth INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_day ON trades(day);
CREATE INDEX IF NOT EXISTS idx_events_day ON events(day);
CREATE INDEX IF NOT EXISTS idx_net_worth_day ON net_worth(day);
`
