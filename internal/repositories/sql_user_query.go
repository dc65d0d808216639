package repositories

const userColumns = `
	"id",
	COALESCE("memberId", '') AS "memberId",
	COALESCE("fullName", '') AS "fullName",
	COALESCE("phoneNumber", '') AS "phoneNumber",
	COALESCE("email", '') AS "email",
	"isAdmin",
	"balance",
	"version",
	"createdAt"`

var (
	queryUserGetByID = `SELECT` + userColumns + `
	FROM "users"
	WHERE "id" = $1;`

	queryUserGetAll = `SELECT` + userColumns + `
	FROM "users"
	ORDER BY "createdAt" DESC, "id";`

	queryUserGetBalance = `SELECT "balance", "version"
	FROM "users"
	WHERE "id" = $1;`

	queryUserIncrementBalance = `UPDATE "users"
	SET "balance" = "balance" + $1,
		"version" = "version" + 1
	WHERE "id" = $2 AND "version" = $3;`
)
