package projection

import (
	"github.com/unionconnect/go-wallet-admin/internal/models"
)

func IsCreditLike(t models.TransactionType) bool {
	return t.IsCreditLike()
}

func Sign(t models.TransactionType) int64 {
	return t.Sign()
}

// Presentation renders a transaction with its signed amount, tone and the
// member id of its owner when the owner is in the snapshot.
func Presentation(snapshot *models.Snapshot, t models.Transaction) models.TransactionResponse {
	resp := t.ToModelResponse()
	if snapshot != nil {
		if owner, ok := snapshot.AccountByID(t.UserID); ok {
			resp.MemberID = owner.MemberID
		}
	}
	return resp
}

func PresentTransactions(snapshot *models.Snapshot, transactions []models.Transaction) []models.TransactionResponse {
	result := make([]models.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, Presentation(snapshot, t))
	}
	return result
}
