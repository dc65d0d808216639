package projection

import (
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ComputeStats derives the dashboard counters. Transaction totals only cover
// the snapshot's bounded window.
func ComputeStats(snapshot *models.Snapshot) models.Stats {
	if snapshot == nil {
		return models.Stats{TotalVolume: decimal.Zero}
	}

	pending := 0
	for _, l := range snapshot.Loans {
		if l.IsPending() {
			pending++
		}
	}

	volume := decimal.Zero
	for _, t := range snapshot.Transactions {
		volume = volume.Add(t.Amount)
	}

	return models.Stats{
		TotalUsers:        len(snapshot.Accounts),
		PendingLoans:      pending,
		TotalTransactions: len(snapshot.Transactions),
		TotalVolume:       volume,
	}
}

// SortMembersByCreatedDesc returns a copy of members, newest enrollment first.
func SortMembersByCreatedDesc(members []models.Member) []models.Member {
	sorted := slices.Clone(members)
	if sorted == nil {
		sorted = []models.Member{}
	}

	slices.SortStableFunc(sorted, func(a, b models.Member) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return sorted
}

const dayLabelFormat = "Mon"

// DailyVolume sums transaction amounts per calendar day in loc for the days
// ending on now's date, oldest first. Days without transactions are zero.
func DailyVolume(transactions []models.Transaction, days int, now time.Time, loc *time.Location) []models.DailyVolumePoint {
	if days <= 0 {
		return []models.DailyVolumePoint{}
	}
	if loc == nil {
		loc = time.UTC
	}

	y, m, d := now.In(loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	points := make([]models.DailyVolumePoint, days)
	volumes := make([]decimal.Decimal, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i-days+1)
		key := day.Format(common.DateFormatYYYYMMDD)
		points[i] = models.DailyVolumePoint{Date: key, Label: day.Format(dayLabelFormat)}
		volumes[i] = decimal.Zero
		index[key] = i
	}

	for _, t := range transactions {
		i, ok := index[t.CreatedAt.In(loc).Format(common.DateFormatYYYYMMDD)]
		if !ok {
			continue
		}
		volumes[i] = volumes[i].Add(t.Amount)
		points[i].Count++
	}

	for i := range points {
		points[i].Volume = models.NewMoney(volumes[i])
	}

	return points
}

// TypeDistribution counts transactions per type in the fixed type order,
// leaving out types with no entries.
func TypeDistribution(transactions []models.Transaction) []models.TypeShare {
	counts := make(map[models.TransactionType]int)
	for _, t := range transactions {
		counts[t.Type]++
	}

	result := []models.TypeShare{}
	for _, txType := range models.TransactionTypes {
		if n := counts[txType]; n > 0 {
			result = append(result, models.TypeShare{Type: txType.String(), Count: n})
			delete(counts, txType)
		}
	}

	// types written by external producers that this service does not know
	unknown := make([]models.TypeShare, 0, len(counts))
	for txType, n := range counts {
		unknown = append(unknown, models.TypeShare{Type: txType.String(), Count: n})
	}
	slices.SortFunc(unknown, func(a, b models.TypeShare) int {
		switch {
		case a.Type < b.Type:
			return -1
		case a.Type > b.Type:
			return 1
		}
		return 0
	})

	return append(result, unknown...)
}

func RoleSplit(accounts []models.Account) models.RoleSplit {
	var split models.RoleSplit
	for _, a := range accounts {
		if a.IsAdmin {
			split.Admins++
			continue
		}
		split.Members++
	}
	return split
}

// Charts bundles the chart series of the dashboard.
func Charts(snapshot *models.Snapshot, days int, now time.Time, loc *time.Location) models.ChartsResponse {
	if snapshot == nil {
		snapshot = models.EmptySnapshot()
	}

	return models.ChartsResponse{
		Kind:             "dashboardCharts",
		DailyVolume:      DailyVolume(snapshot.Transactions, days, now, loc),
		TypeDistribution: TypeDistribution(snapshot.Transactions),
		Roles:            RoleSplit(snapshot.Accounts),
	}
}
