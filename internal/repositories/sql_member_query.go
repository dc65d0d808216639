package repositories

var (
	queryMemberCreate = `INSERT INTO "members" (
		"memberId",
		"fullName",
		"phoneNumber",
		"balance",
		"hasAppAccount",
		"createdAt"
	) VALUES ($1, $2, $3, $4, FALSE, now())
	ON CONFLICT ("memberId") DO NOTHING
	RETURNING "createdAt";`

	queryMemberGetAll = `SELECT
		"memberId",
		COALESCE("fullName", '') AS "fullName",
		COALESCE("phoneNumber", '') AS "phoneNumber",
		"balance",
		"hasAppAccount",
		"createdAt"
	FROM "members"
	ORDER BY "createdAt" DESC, "memberId";`
)
