package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Settlement is the archived record of one payer's resolved share of a
// bill.
//
// The bill fields are a frozen snapshot taken at settlement time, so
// the settlement stays self-contained when the live bill is edited or
// deleted later. OriginalBillID is a weak reference for audit and
// restore, it is deliberately not a foreign key.
type Settlement struct {
	DefaultModel
	OriginalBillID uuid.UUID
	PayerID        uuid.UUID
	ArchivedAt     time.Time

	// Snapshot of the bill at settlement time
	Title         string
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PayeeID       uuid.UUID
	CreatedByID   uuid.UUID
	DueDate       types.Date
	Notes         string
	BillCreatedAt time.Time
}

// AfterFind updates the timestamps to use UTC as timezone.
func (s *Settlement) AfterFind(tx *gorm.DB) (err error) {
	err = s.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	s.ArchivedAt = s.ArchivedAt.In(time.UTC)
	s.BillCreatedAt = s.BillCreatedAt.In(time.UTC)
	return nil
}

// Share returns the archived share. A settlement always carries
// exactly one payer, so the share is the snapshot amount divided by
// the single payer.
func (s Settlement) Share() decimal.Decimal {
	return PerPersonShare(s.Amount, 1)
}

// Bill reconstructs a live bill from the snapshot, with the
// settlement's single payer.
//
// The original creation timestamp is kept so restored bills sort where
// the original did.
func (s Settlement) Bill() Bill {
	return Bill{
		DefaultModel: DefaultModel{
			ID:         s.OriginalBillID,
			Timestamps: Timestamps{CreatedAt: s.BillCreatedAt},
		},
		Title:       s.Title,
		Amount:      s.Amount,
		PayeeID:     s.PayeeID,
		CreatedByID: s.CreatedByID,
		DueDate:     s.DueDate,
		Notes:       s.Notes,
		Payers:      []BillPayer{{BillID: s.OriginalBillID, MemberID: s.PayerID}},
	}
}

// GetSettlement returns the settlement with the given ID.
func GetSettlement(id uuid.UUID) (Settlement, error) {
	var settlement Settlement
	err := DB.First(&settlement, "id = ?", id).Error
	return settlement, err
}

// SettlePayer archives one member's share of the bill and removes the
// member from the live payer set. When the last payer settles, the
// live bill is deleted.
//
// The two writes cross two tables without a shared transaction
// boundary on purpose: the archive insert always happens first, so a
// failure of the second write duplicates the share instead of losing
// it. The returned error reports the partial state to the caller.
func (b *Bill) SettlePayer(actor, member uuid.UUID) (Settlement, error) {
	if err := b.AuthorizeCreator(actor); err != nil {
		return Settlement{}, err
	}

	if !b.HasPayer(member) {
		return Settlement{}, ErrNoSuchPayer
	}

	settlement := Settlement{
		OriginalBillID: b.ID,
		PayerID:        member,
		ArchivedAt:     time.Now().In(time.UTC),
		Title:          b.Title,
		Amount:         b.Amount,
		PayeeID:        b.PayeeID,
		CreatedByID:    b.CreatedByID,
		DueDate:        b.DueDate,
		Notes:          b.Notes,
		BillCreatedAt:  b.CreatedAt,
	}

	if err := DB.Create(&settlement).Error; err != nil {
		return Settlement{}, err
	}

	if _, err := b.RemovePayer(actor, member); err != nil {
		return settlement, fmt.Errorf("the share was archived, but the live bill could not be updated: %w", err)
	}

	return settlement, nil
}

// SettleFailure reports a single failed settlement within a bulk
// operation.
type SettleFailure struct {
	BillID uuid.UUID
	Err    error
}

// SettleAllForCounterparty settles the counterparty's share on every
// bill created by the actor on which the counterparty currently owes a
// share.
//
// Settlements happen sequentially and are not rolled back when a later
// one fails. Failures are reported per bill.
func SettleAllForCounterparty(actor, counterparty uuid.UUID) ([]Settlement, []SettleFailure, error) {
	var bills []Bill
	err := DB.Preload("Payers").
		Joins("JOIN bill_payers ON bill_payers.bill_id = bills.id").
		Where("bills.created_by_id = ?", actor).
		Where("bill_payers.member_id = ?", counterparty).
		Order("datetime(bills.created_at) DESC").
		Find(&bills).Error
	if err != nil {
		return nil, nil, err
	}

	var settlements []Settlement
	var failures []SettleFailure
	for i := range bills {
		settlement, err := bills[i].SettlePayer(actor, counterparty)
		if err != nil {
			failures = append(failures, SettleFailure{BillID: bills[i].ID, Err: err})
			continue
		}

		settlements = append(settlements, settlement)
	}

	return settlements, failures, nil
}

// Restore moves the archived share back onto the live bill. When the
// original bill still exists, its payer is reinstated. When it does
// not, the bill is recreated from the snapshot with the settlement's
// single payer only. The settlement record is deleted afterwards.
func (s Settlement) Restore(actor uuid.UUID) (Bill, error) {
	// Restoring somebody else's settlement would let any member move
	// money views around, so the creator-only rule applies here as
	// well.
	if s.CreatedByID != actor {
		return Bill{}, ErrNotBillCreator
	}

	// The caller may hold a stale copy. A settlement that has already
	// been restored or deleted cannot be restored again.
	if err := DB.First(&Settlement{}, "id = ?", s.ID).Error; err != nil {
		return Bill{}, err
	}

	bill, err := GetBill(s.OriginalBillID)
	switch {
	case err == nil:
		if !bill.HasPayer(s.PayerID) {
			payer := BillPayer{BillID: bill.ID, MemberID: s.PayerID}
			if err := DB.Create(&payer).Error; err != nil {
				return Bill{}, err
			}

			bill.Payers = append(bill.Payers, payer)
		}

	case errors.Is(err, ErrResourceNotFound):
		bill = s.Bill()
		if err := DB.Create(&bill).Error; err != nil {
			return Bill{}, err
		}

	default:
		return Bill{}, err
	}

	if err := DB.Delete(&Settlement{}, "id = ?", s.ID).Error; err != nil {
		return bill, fmt.Errorf("the share was restored, but the settlement record could not be deleted: %w", err)
	}

	return bill, nil
}

// DeleteSettlements permanently discards the settlements with the
// given IDs. The deletion is transactional, either all settlements are
// deleted or none.
//
// Deleting a settlement never touches any live bill, the archived
// share is simply forgiven.
func DeleteSettlements(ids []uuid.UUID) error {
	tx := DB.Begin()

	for _, id := range ids {
		var settlement Settlement
		if err := tx.First(&settlement, "id = ?", id).Error; err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Delete(&settlement).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// DeleteAllSettlements permanently discards every settlement record.
func DeleteAllSettlements() error {
	return DB.Where("true").Delete(&Settlement{}).Error
}
