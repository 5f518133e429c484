package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// BillEditable represents all user configurable parameters
type BillEditable struct {
	Title   string          `json:"title" example:"Electricity" default:""`                 // Title of the bill
	Amount  decimal.Decimal `json:"amount" example:"84.50"`                                 // Total amount of the bill
	PayeeID uuid.UUID       `json:"payeeId" example:"d3c3273e-968b-4c24-a204-42ca45ed62e1"` // ID of the member the shares are owed to
	DueDate types.Date      `json:"dueDate" example:"2024-06-01"`                           // Day the bill is due. Defaults to today
	Notes   string          `json:"notes" example:"Includes the late fee" default:""`       // Notes about the bill
	Payers  []uuid.UUID     `json:"payers" example:"d3c3273e-968b-4c24-a204-42ca45ed62e1"`  // IDs of the members owing a share
}

func (editable BillEditable) model(creator uuid.UUID) models.Bill {
	payers := make([]models.BillPayer, 0, len(editable.Payers))
	for _, member := range editable.Payers {
		payers = append(payers, models.BillPayer{MemberID: member})
	}

	return models.Bill{
		Title:       editable.Title,
		Amount:      editable.Amount,
		PayeeID:     editable.PayeeID,
		CreatedByID: creator,
		DueDate:     editable.DueDate,
		Notes:       editable.Notes,
		Payers:      payers,
	}
}

type BillLinks struct {
	Self        string `json:"self" example:"https://example.com/v1/bills/a4e29a4d-8fb4-423b-9b55-b24a81a36db7"`                           // The bill itself
	Settlements string `json:"settlements" example:"https://example.com/v1/settlements?originalBill=a4e29a4d-8fb4-423b-9b55-b24a81a36db7"` // Settled shares of this bill
}

type Bill struct {
	models.DefaultModel
	BillEditable
	Links BillLinks `json:"links"`

	// These fields are computed
	CreatedByID uuid.UUID       `json:"createdBy" example:"d3c3273e-968b-4c24-a204-42ca45ed62e1"` // ID of the member who created the bill
	Share       decimal.Decimal `json:"share" example:"28.17"`                                    // Per-person share of the bill
}

func newBill(c *gin.Context, model models.Bill) Bill {
	url := c.GetString(string(models.DBContextURL))

	return Bill{
		DefaultModel: model.DefaultModel,
		BillEditable: BillEditable{
			Title:   model.Title,
			Amount:  model.Amount,
			PayeeID: model.PayeeID,
			DueDate: model.DueDate,
			Notes:   model.Notes,
			Payers:  model.PayerIDs(),
		},
		Links: BillLinks{
			Self:        fmt.Sprintf("%s/v1/bills/%s", url, model.ID),
			Settlements: fmt.Sprintf("%s/v1/settlements?originalBill=%s", url, model.ID),
		},
		CreatedByID: model.CreatedByID,
		Share:       model.Share(),
	}
}

type BillListResponse struct {
	Data       []Bill      `json:"data"`                                                          // List of Bills
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BillCreateResponse struct {
	Data  []BillResponse `json:"data"`                                                          // List of the created Bills or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BillCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BillResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BillResponse struct {
	Data  *Bill   `json:"data"`                                                          // Data for the Bill
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BillQueryFilter struct {
	PayeeID     hs_uuid.UUID `form:"payee"`                      // By ID of the payee
	CreatedByID hs_uuid.UUID `form:"createdBy"`                  // By ID of the creating member
	DueDate     string       `form:"dueDate"`                    // By due date in YYYY-MM-DD format
	Payer       hs_uuid.UUID `form:"payer" filterField:"false"`  // By ID of a member owing a share
	Title       string       `form:"title" filterField:"false"`  // By title
	Notes       string       `form:"notes" filterField:"false"`  // By notes
	Search      string       `form:"search" filterField:"false"` // By string in title or notes
	Offset      uint         `form:"offset" filterField:"false"` // The offset of the first Bill returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`  // Maximum number of Bills to return. Defaults to 50.
}

func (f BillQueryFilter) model() (models.Bill, error) {
	var dueDate types.Date
	if f.DueDate != "" {
		parsed, err := types.ParseDate(f.DueDate)
		if err != nil {
			return models.Bill{}, err
		}
		dueDate = parsed
	}

	return models.Bill{
		PayeeID:     f.PayeeID.UUID,
		CreatedByID: f.CreatedByID.UUID,
		DueDate:     dueDate,
	}, nil
}

// MemberName pairs a member ID with its resolved display name.
type MemberName struct {
	ID   uuid.UUID `json:"id" example:"d3c3273e-968b-4c24-a204-42ca45ed62e1"` // ID of the member
	Name string    `json:"name" example:"alex"`                               // Display name, "Unknown User" when the profile is gone
}

// OwedGroup is one group of an owed view, keyed by counterparty or by
// due date depending on the groupBy parameter.
type OwedGroup struct {
	Counterparty *MemberName     `json:"counterparty,omitempty"` // Set when grouping by counterparty
	Date         *types.Date     `json:"date,omitempty"`         // Set when grouping by date
	Bills        []Bill          `json:"bills"`                  // Bills of the group
	Total        decimal.Decimal `json:"total" example:"56.34"`  // Direction-aware total of the group
}

// OwedView is the aggregated response of the owed-to-me and owed-by-me
// endpoints.
type OwedView struct {
	GroupBy string          `json:"groupBy" example:"counterparty"` // How the groups are keyed
	Groups  []OwedGroup     `json:"groups"`                         // The groups
	Total   decimal.Decimal `json:"total" example:"128.95"`         // Grand total over all groups
}

type OwedResponse struct {
	Data  *OwedView `json:"data"`                                                          // The aggregated view
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
