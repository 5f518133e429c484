package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Bill is a live, unsettled obligation. It is owed to the payee and
// split in equal shares among its payers.
//
// Only the creator of a bill can change, settle or delete it.
type Bill struct {
	DefaultModel
	Title       string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PayeeID     uuid.UUID
	CreatedByID uuid.UUID
	DueDate     types.Date
	Notes       string
	Payers      []BillPayer `gorm:"constraint:OnDelete:CASCADE"`
}

// BillPayer records that a member owes a share of a bill.
type BillPayer struct {
	BillID   uuid.UUID `gorm:"primaryKey"`
	MemberID uuid.UUID `gorm:"primaryKey"`
}

// BeforeSave trims whitespace and validates the bill fields.
func (b *Bill) BeforeSave(_ *gorm.DB) error {
	return b.validate()
}

func (b *Bill) validate() error {
	b.Title = strings.TrimSpace(b.Title)
	b.Notes = strings.TrimSpace(b.Notes)

	if b.Title == "" {
		return ErrBillTitleMissing
	}

	if !b.Amount.IsPositive() {
		return ErrBillAmountNotPositive
	}

	if b.PayeeID == uuid.Nil {
		return ErrBillPayeeMissing
	}

	if b.DueDate.IsZero() {
		b.DueDate = types.DateOf(time.Now().In(time.UTC))
	}

	return nil
}

// BeforeCreate deduplicates the payer set and verifies that it is not
// empty. A bill without payers cannot exist.
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if err := b.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	payers := make([]BillPayer, 0, len(b.Payers))
	for _, payer := range b.Payers {
		payer.BillID = b.ID
		if !slices.Contains(payers, payer) {
			payers = append(payers, payer)
		}
	}
	b.Payers = payers

	if len(b.Payers) == 0 {
		return ErrBillNoPayers
	}

	return nil
}

// AuthorizeCreator verifies that the acting member is the creator of
// the bill.
func (b Bill) AuthorizeCreator(actor uuid.UUID) error {
	if b.CreatedByID != actor {
		return ErrNotBillCreator
	}

	return nil
}

// HasPayer reports whether the member currently owes a share of the bill.
func (b Bill) HasPayer(member uuid.UUID) bool {
	return slices.ContainsFunc(b.Payers, func(p BillPayer) bool {
		return p.MemberID == member
	})
}

// PayerIDs returns the IDs of all members who owe a share of the bill.
func (b Bill) PayerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Payers))
	for _, payer := range b.Payers {
		ids = append(ids, payer.MemberID)
	}

	return ids
}

// Share returns the per-person share of the bill.
func (b Bill) Share() decimal.Decimal {
	return PerPersonShare(b.Amount, len(b.Payers))
}

// UpdateFields applies a partial update to the bill's own columns.
// Only the named fields are written. The merged result is validated
// with the same rules as a create, so a partial update cannot leave
// the bill in a state a create would have rejected.
func (b *Bill) UpdateFields(actor uuid.UUID, update Bill, fields []any) error {
	if err := b.AuthorizeCreator(actor); err != nil {
		return err
	}

	merged := *b
	for _, field := range fields {
		switch field {
		case "Title":
			merged.Title = update.Title
		case "Amount":
			merged.Amount = update.Amount
		case "PayeeID":
			merged.PayeeID = update.PayeeID
		case "DueDate":
			merged.DueDate = update.DueDate
		case "Notes":
			merged.Notes = update.Notes
		}
	}

	if err := merged.validate(); err != nil {
		return err
	}

	return DB.Model(b).Select("", fields...).Updates(merged).Error
}

// GetBill returns the bill with its current payer set.
func GetBill(id uuid.UUID) (Bill, error) {
	var bill Bill
	err := DB.Preload("Payers").First(&bill, "id = ?", id).Error
	return bill, err
}

// BillsForPayee returns all live bills owed to the member, newest first.
func BillsForPayee(payee uuid.UUID) ([]Bill, error) {
	var bills []Bill
	err := DB.Preload("Payers").
		Where("bills.payee_id = ?", payee).
		Order("datetime(bills.created_at) DESC").
		Find(&bills).Error

	return bills, err
}

// BillsWithPayer returns all live bills on which the member currently
// owes a share, newest first.
func BillsWithPayer(member uuid.UUID) ([]Bill, error) {
	var bills []Bill
	err := DB.Preload("Payers").
		Joins("JOIN bill_payers ON bill_payers.bill_id = bills.id").
		Where("bill_payers.member_id = ?", member).
		Order("datetime(bills.created_at) DESC").
		Find(&bills).Error

	return bills, err
}

// DeleteBill removes a bill entirely, regardless of its remaining
// payers. Deleting a bill that does not exist is treated as success.
func DeleteBill(actor, id uuid.UUID) error {
	bill, err := GetBill(id)
	if errors.Is(err, ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := bill.AuthorizeCreator(actor); err != nil {
		return err
	}

	return DB.Delete(&bill).Error
}

// RemovePayer removes one member's share from the bill. When the last
// payer is removed, the bill itself is deleted and deleted is true.
//
// Removing a member who does not owe a share is a no-op.
func (b *Bill) RemovePayer(actor, member uuid.UUID) (deleted bool, err error) {
	if err := b.AuthorizeCreator(actor); err != nil {
		return false, err
	}

	if !b.HasPayer(member) {
		return false, nil
	}

	if len(b.Payers) == 1 {
		// The last payer leaves, the bill goes with them
		if err := DB.Delete(b).Error; err != nil {
			return false, err
		}

		b.Payers = nil
		return true, nil
	}

	err = DB.Delete(&BillPayer{}, "bill_id = ? AND member_id = ?", b.ID, member).Error
	if err != nil {
		return false, err
	}

	b.Payers = slices.DeleteFunc(b.Payers, func(p BillPayer) bool {
		return p.MemberID == member
	})

	return false, nil
}

// ReplacePayers sets the payer set of the bill to exactly the members
// passed in. An empty payer set is rejected, use DeleteBill instead.
func (b *Bill) ReplacePayers(actor uuid.UUID, members []uuid.UUID) error {
	if err := b.AuthorizeCreator(actor); err != nil {
		return err
	}

	payers := make([]BillPayer, 0, len(members))
	for _, member := range members {
		payer := BillPayer{BillID: b.ID, MemberID: member}
		if !slices.Contains(payers, payer) {
			payers = append(payers, payer)
		}
	}

	if len(payers) == 0 {
		return ErrBillNoPayers
	}

	err := DB.Model(b).Association("Payers").Unscoped().Replace(&payers)
	if err != nil {
		return err
	}

	b.Payers = payers
	return nil
}
