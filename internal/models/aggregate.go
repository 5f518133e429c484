package models

import (
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Direction selects how bills are grouped relative to the viewing
// member.
type Direction string

const (
	// OwedToMe groups bills the viewing member is owed money on, one
	// group per payer.
	OwedToMe Direction = "OWED_TO_ME"
	// OwedByMe groups bills the viewing member owes a share on, one
	// group per payee.
	OwedByMe Direction = "OWED_BY_ME"
)

// BillGroup is a list of bills that share a counterparty, together
// with the per-person share total of the group.
type BillGroup struct {
	CounterpartyID uuid.UUID
	Bills          []Bill
	Total          decimal.Decimal
}

func (g BillGroup) total() decimal.Decimal { return g.Total }

// BillDateGroup is a list of bills due on the same calendar date.
type BillDateGroup struct {
	Date  types.Date
	Bills []Bill
	Total decimal.Decimal
}

func (g BillDateGroup) total() decimal.Decimal { return g.Total }

// SettlementDateGroup is a list of settlements archived on the same
// calendar date.
type SettlementDateGroup struct {
	Date        types.Date
	Settlements []Settlement
	Total       decimal.Decimal
}

func (g SettlementDateGroup) total() decimal.Decimal { return g.Total }

// OwedShare returns the portion of the bill that matters to the
// viewing member in the given direction. For OwedToMe that is one
// share per payer other than the member, for OwedByMe it is the
// member's own share. Bills outside the direction contribute zero.
func (b Bill) OwedShare(self uuid.UUID, direction Direction) decimal.Decimal {
	switch direction {
	case OwedToMe:
		if b.PayeeID != self {
			return decimal.Zero
		}

		others := 0
		for _, payer := range b.PayerIDs() {
			if payer != self {
				others++
			}
		}

		return b.Share().Mul(decimal.NewFromInt(int64(others)))

	case OwedByMe:
		if b.PayeeID == self || !b.HasPayer(self) {
			return decimal.Zero
		}

		return b.Share()
	}

	return decimal.Zero
}

// OwedTotal sums the direction-aware shares of the bills.
func OwedTotal(bills []Bill, self uuid.UUID, direction Direction) decimal.Decimal {
	shares := make([]decimal.Decimal, 0, len(bills))
	for _, bill := range bills {
		shares = append(shares, bill.OwedShare(self, direction))
	}

	return SumShares(shares)
}

// GroupTotal sums the per-person shares of the bills.
//
// Summing shares instead of raw amounts is what keeps partially
// settled bills from being counted twice: a bill split four ways
// contributes a quarter of its amount to each of the four totals it
// appears in.
func GroupTotal(bills []Bill) decimal.Decimal {
	shares := make([]decimal.Decimal, 0, len(bills))
	for _, bill := range bills {
		shares = append(shares, bill.Share())
	}

	return SumShares(shares)
}

// SettlementsTotal sums the archived shares of the settlements.
func SettlementsTotal(settlements []Settlement) decimal.Decimal {
	shares := make([]decimal.Decimal, 0, len(settlements))
	for _, settlement := range settlements {
		shares = append(shares, settlement.Share())
	}

	return SumShares(shares)
}

// GrandTotal sums the totals of all groups.
func GrandTotal[G interface{ total() decimal.Decimal }](groups []G) decimal.Decimal {
	totals := make([]decimal.Decimal, 0, len(groups))
	for _, group := range groups {
		totals = append(totals, group.total())
	}

	return SumShares(totals)
}

// GroupBillsByCounterparty groups bills by the member on the other
// side of the obligation.
//
// For OwedToMe, bills with the viewing member as payee are grouped by
// each payer except the member themselves: their own share of their
// own bill is not owed to them. For OwedByMe, bills on which the
// member owes a share are grouped by payee, excluding bills the member
// is the payee of.
//
// The order of bills within a group follows the input. Groups are
// ordered by counterparty ID so that repeated calls render stably.
func GroupBillsByCounterparty(bills []Bill, self uuid.UUID, direction Direction) []BillGroup {
	grouped := make(map[uuid.UUID][]Bill)

	for _, bill := range bills {
		switch direction {
		case OwedToMe:
			if bill.PayeeID != self {
				continue
			}

			for _, payer := range bill.PayerIDs() {
				if payer == self {
					continue
				}
				grouped[payer] = append(grouped[payer], bill)
			}

		case OwedByMe:
			if bill.PayeeID == self || !bill.HasPayer(self) {
				continue
			}
			grouped[bill.PayeeID] = append(grouped[bill.PayeeID], bill)
		}
	}

	groups := make([]BillGroup, 0, len(grouped))
	for counterparty, bills := range grouped {
		groups = append(groups, BillGroup{
			CounterpartyID: counterparty,
			Bills:          bills,
			Total:          GroupTotal(bills),
		})
	}

	slices.SortFunc(groups, func(a, b BillGroup) int {
		switch {
		case a.CounterpartyID.String() < b.CounterpartyID.String():
			return -1
		case a.CounterpartyID.String() > b.CounterpartyID.String():
			return 1
		}
		return 0
	})

	return groups
}

// GroupBillsByDate groups bills by their due date, newest date first.
//
// The keys are sorted by date value, not by their string
// representation.
func GroupBillsByDate(bills []Bill) []BillDateGroup {
	grouped := make(map[types.Date][]Bill)
	for _, bill := range bills {
		grouped[bill.DueDate] = append(grouped[bill.DueDate], bill)
	}

	groups := make([]BillDateGroup, 0, len(grouped))
	for date, bills := range grouped {
		groups = append(groups, BillDateGroup{
			Date:  date,
			Bills: bills,
			Total: GroupTotal(bills),
		})
	}

	slices.SortFunc(groups, func(a, b BillDateGroup) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case a.Date.Before(b.Date):
			return 1
		}
		return 0
	})

	return groups
}

// GroupSettlementsByDate groups settlements by the calendar date they
// were archived on, newest date first. Settlements without an archive
// timestamp fall back to the snapshot's bill creation time.
func GroupSettlementsByDate(settlements []Settlement) []SettlementDateGroup {
	grouped := make(map[types.Date][]Settlement)
	for _, settlement := range settlements {
		at := settlement.ArchivedAt
		if at.IsZero() {
			at = settlement.BillCreatedAt
		}

		date := types.DateOf(at)
		grouped[date] = append(grouped[date], settlement)
	}

	groups := make([]SettlementDateGroup, 0, len(grouped))
	for date, settlements := range grouped {
		groups = append(groups, SettlementDateGroup{
			Date:        date,
			Settlements: settlements,
			Total:       SettlementsTotal(settlements),
		})
	}

	slices.SortFunc(groups, func(a, b SettlementDateGroup) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case a.Date.Before(b.Date):
			return 1
		}
		return 0
	})

	return groups
}
