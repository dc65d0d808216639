package repositories

import (
	sq "github.com/Masterminds/squirrel"
)

var (
	queryTransactionCreate = `INSERT INTO "transactions" (
		"id",
		"userId",
		"type",
		"amount",
		"balanceBefore",
		"balanceAfter",
		"description",
		"status",
		"createdAt"
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
	RETURNING "createdAt";`
)

func buildListRecentTransactionQuery(limit int) (string, []any, error) {
	return sq.Select(
		`"id"`,
		`"userId"`,
		`"type"`,
		`"amount"`,
		`"balanceBefore"`,
		`"balanceAfter"`,
		`COALESCE("description", '') AS "description"`,
		`"status"`,
		`"createdAt"`,
	).
		From(`"transactions"`).
		OrderBy(`"createdAt" DESC`, `"id" DESC`).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
