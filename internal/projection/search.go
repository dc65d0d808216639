// Package projection derives filtered lists and summary statistics from an
// aggregate snapshot. Every function is pure: inputs are never mutated and the
// same inputs always give the same result.
package projection

import (
	"strings"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/models"
)

// SearchAccounts keeps accounts whose full name or member id contains query,
// ignoring case. An empty query keeps every account.
func SearchAccounts(accounts []models.Account, query string) []models.Account {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if query == "" ||
			strings.Contains(strings.ToLower(a.FullName), query) ||
			strings.Contains(strings.ToLower(a.MemberID), query) {
			result = append(result, a)
		}
	}

	return result
}

// FilterTransactions applies the conjunction of the type, date and member
// filters to the snapshot's transaction window. Dates are compared as calendar
// days in loc. The member filter matches the raw owner id or the owner's
// member id.
func FilterTransactions(snapshot *models.Snapshot, filter models.TransactionFilter, loc *time.Location) ([]models.Transaction, error) {
	if snapshot == nil {
		return []models.Transaction{}, nil
	}

	var (
		date    time.Time
		hasDate = strings.TrimSpace(filter.Date) != ""
		err     error
	)
	if hasDate {
		date, err = common.ParseDate(strings.TrimSpace(filter.Date), loc)
		if err != nil {
			return nil, err
		}
	}

	txType := strings.TrimSpace(filter.Type)
	memberQuery := strings.ToLower(strings.TrimSpace(filter.MemberID))
	owners := memberIDsByAccount(snapshot.Accounts)

	result := make([]models.Transaction, 0, len(snapshot.Transactions))
	for _, t := range snapshot.Transactions {
		if txType != "" && txType != models.TransactionFilterAll && t.Type.String() != txType {
			continue
		}

		if hasDate && !common.SameCalendarDay(t.CreatedAt, date, loc) {
			continue
		}

		if memberQuery != "" &&
			!strings.Contains(strings.ToLower(t.UserID), memberQuery) &&
			!strings.Contains(strings.ToLower(owners[t.UserID]), memberQuery) {
			continue
		}

		result = append(result, t)
	}

	return result, nil
}

func memberIDsByAccount(accounts []models.Account) map[string]string {
	owners := make(map[string]string, len(accounts))
	for _, a := range accounts {
		owners[a.ID] = a.MemberID
	}
	return owners
}
