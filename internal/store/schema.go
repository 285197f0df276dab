package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS partners (
    scope                TEXT PRIMARY KEY,
    name                 TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scope_totals (
    scope                TEXT PRIMARY KEY,
    income               REAL NOT NULL DEFAULT 0,
    expenses             REAL NOT NULL DEFAULT 0,
    debt_payments        REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS accounts (
    scope                TEXT NOT NULL,
    name                 TEXT NOT NULL,
    type                 TEXT NOT NULL,
    annual_rate_pct      REAL NOT NULL,
    balance              REAL NOT NULL,
    monthly_contribution REAL NOT NULL DEFAULT 0,
    position             INTEGER NOT NULL,
    PRIMARY KEY (scope, name)
);

CREATE TABLE IF NOT EXISTS debts (
    scope                TEXT NOT NULL,
    name                 TEXT NOT NULL,
    principal            REAL NOT NULL,
    annual_rate_pct      REAL NOT NULL,
    monthly_payment      REAL NOT NULL,
    position             INTEGER NOT NULL,
    PRIMARY KEY (scope, name)
);

CREATE TABLE IF NOT EXISTS goals (
    scope                TEXT NOT NULL,
    name                 TEXT NOT NULL,
    target_cost          REAL NOT NULL,
    target_year          INTEGER NOT NULL,
    linked_account       TEXT,
    position             INTEGER NOT NULL,
    PRIMARY KEY (scope, name)
);

CREATE TABLE IF NOT EXISTS assets (
    scope                TEXT NOT NULL,
    name                 TEXT NOT NULL,
    value                REAL NOT NULL,
    position             INTEGER NOT NULL,
    PRIMARY KEY (scope, name)
);

CREATE TABLE IF NOT EXISTS expenses (
    scope                TEXT NOT NULL,
    category             TEXT NOT NULL,
    amount               REAL NOT NULL,
    PRIMARY KEY (scope, category)
);

CREATE TABLE IF NOT EXISTS allocations (
    scope                TEXT NOT NULL,
    category             TEXT NOT NULL,
    percent              REAL NOT NULL,
    PRIMARY KEY (scope, category)
);
`
