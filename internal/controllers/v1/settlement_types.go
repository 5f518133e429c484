package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// Settlement is the API representation of one archived share. All bill
// fields are a snapshot taken when the share was settled.
type Settlement struct {
	models.DefaultModel
	OriginalBillID uuid.UUID       `json:"originalBillId" example:"a4e29a4d-8fb4-423b-9b55-b24a81a36db7"` // ID the live bill had when the share was settled
	PayerID        uuid.UUID       `json:"payerId" example:"d3c3273e-968b-4c24-a204-42ca45ed62e1"`        // ID of the member whose share was settled
	ArchivedAt     time.Time       `json:"archivedAt" example:"2024-06-02T18:04:05Z"`                     // When the share was settled
	Title          string          `json:"title" example:"Electricity"`                                   // Title of the bill at settlement time
	Amount         decimal.Decimal `json:"amount" example:"84.50"`                                        // Total amount of the bill at settlement time
	PayeeID        uuid.UUID       `json:"payeeId" example:"d3c3273e-968b-4c24-a204-42ca45ed62e1"`        // ID of the member the share was owed to
	CreatedByID    uuid.UUID       `json:"createdBy" example:"d3c3273e-968b-4c24-a204-42ca45ed62e1"`      // ID of the member who created the bill
	DueDate        types.Date      `json:"dueDate" example:"2024-06-01"`                                  // Due date of the bill at settlement time
	Notes          string          `json:"notes" example:"Includes the late fee"`                         // Notes of the bill at settlement time
	Share          decimal.Decimal `json:"share" example:"28.17"`                                         // The settled share
	Links          SettlementLinks `json:"links"`
}

type SettlementLinks struct {
	Self    string `json:"self" example:"https://example.com/v1/settlements/501eebb9-642d-4d37-8d99-b2ade4ba58e7"`            // The settlement itself
	Restore string `json:"restore" example:"https://example.com/v1/settlements/501eebb9-642d-4d37-8d99-b2ade4ba58e7/restore"` // Endpoint to restore the share to the live ledger
}

func newSettlement(c *gin.Context, model models.Settlement) Settlement {
	url := c.GetString(string(models.DBContextURL))

	return Settlement{
		DefaultModel:   model.DefaultModel,
		OriginalBillID: model.OriginalBillID,
		PayerID:        model.PayerID,
		ArchivedAt:     model.ArchivedAt,
		Title:          model.Title,
		Amount:         model.Amount,
		PayeeID:        model.PayeeID,
		CreatedByID:    model.CreatedByID,
		DueDate:        model.DueDate,
		Notes:          model.Notes,
		Share:          model.Share(),
		Links: SettlementLinks{
			Self:    fmt.Sprintf("%s/v1/settlements/%s", url, model.ID),
			Restore: fmt.Sprintf("%s/v1/settlements/%s/restore", url, model.ID),
		},
	}
}

type SettlementListResponse struct {
	Data       []Settlement `json:"data"`                                                          // List of Settlements
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type SettlementResponse struct {
	Data  *Settlement `json:"data"`                                                          // Data for the Settlement
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// SettleFailure reports one bill that could not be settled during a
// bulk settlement.
type SettleFailure struct {
	BillID uuid.UUID `json:"billId" example:"a4e29a4d-8fb4-423b-9b55-b24a81a36db7"` // ID of the bill that could not be settled
	Error  string    `json:"error" example:"there is no bill matching your query"`  // Why the settlement failed
}

type SettleAllResponse struct {
	Data     []Settlement    `json:"data"`                                                          // The settlements that were created
	Failures []SettleFailure `json:"failures"`                                                      // Bills that could not be settled
	Error    *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ArchiveGroup is one calendar date of the settlement archive.
type ArchiveGroup struct {
	Date        types.Date      `json:"date" example:"2024-06-02"` // The date the shares were settled on
	Settlements []Settlement    `json:"settlements"`               // Settlements of the group
	Total       decimal.Decimal `json:"total" example:"56.34"`     // Sum of the settled shares of the group
}

// ArchiveView is the grouped-by-date response of the settlement list.
type ArchiveView struct {
	Groups []ArchiveGroup  `json:"groups"`                 // Settlements grouped by archive date, newest first
	Total  decimal.Decimal `json:"total" example:"128.95"` // Grand total over all groups
}

type ArchiveResponse struct {
	Data  *ArchiveView `json:"data"`                                                          // The grouped archive
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// SettlementDeleteRequest is the body of a bulk settlement delete.
type SettlementDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" example:"501eebb9-642d-4d37-8d99-b2ade4ba58e7"` // IDs of the settlements to delete
}

type SettlementQueryFilter struct {
	OriginalBillID hs_uuid.UUID `form:"originalBill"`               // By ID of the original bill
	PayerID        hs_uuid.UUID `form:"payer"`                      // By ID of the settled payer
	PayeeID        hs_uuid.UUID `form:"payee"`                      // By ID of the payee
	CreatedByID    hs_uuid.UUID `form:"createdBy"`                  // By ID of the creating member
	Title          string       `form:"title" filterField:"false"`  // By title
	Notes          string       `form:"notes" filterField:"false"`  // By notes
	Search         string       `form:"search" filterField:"false"` // By string in title or notes
	Offset         uint         `form:"offset" filterField:"false"` // The offset of the first Settlement returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`  // Maximum number of Settlements to return. Defaults to 50.
}

func (f SettlementQueryFilter) model() models.Settlement {
	return models.Settlement{
		OriginalBillID: f.OriginalBillID.UUID,
		PayerID:        f.PayerID.UUID,
		PayeeID:        f.PayeeID.UUID,
		CreatedByID:    f.CreatedByID.UUID,
	}
}
