// Package inventory implements a small-business stock-audit ledger.
//
// Users register items and categories, record daily stock-audit transactions
// (opening stock, purchases, sales, physical count), and read computed
// shortages, dashboards and exportable reports.
//
// Every transaction is a signed ledger entry whose closing balance and
// shortage are derived once at creation time; subsequent entries chain from
// the most recent entry per item, using its physically-verified count as the
// next opening stock. All state lives in a single local JSON snapshot owned
// by Store.
package inventory
