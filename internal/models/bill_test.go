package models_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBillValidation() {
	member := uuid.New()

	tests := []struct {
		name string
		bill models.Bill
		err  error
	}{
		{
			"empty title",
			models.Bill{Amount: decimal.NewFromFloat(10), PayeeID: member, CreatedByID: member, Payers: []models.BillPayer{{MemberID: member}}},
			models.ErrBillTitleMissing,
		},
		{
			"whitespace only title",
			models.Bill{Title: " \t ", Amount: decimal.NewFromFloat(10), PayeeID: member, CreatedByID: member, Payers: []models.BillPayer{{MemberID: member}}},
			models.ErrBillTitleMissing,
		},
		{
			"zero amount",
			models.Bill{Title: "Rent", PayeeID: member, CreatedByID: member, Payers: []models.BillPayer{{MemberID: member}}},
			models.ErrBillAmountNotPositive,
		},
		{
			"negative amount",
			models.Bill{Title: "Rent", Amount: decimal.NewFromFloat(-10), PayeeID: member, CreatedByID: member, Payers: []models.BillPayer{{MemberID: member}}},
			models.ErrBillAmountNotPositive,
		},
		{
			"missing payee",
			models.Bill{Title: "Rent", Amount: decimal.NewFromFloat(10), CreatedByID: member, Payers: []models.BillPayer{{MemberID: member}}},
			models.ErrBillPayeeMissing,
		},
		{
			"no payers",
			models.Bill{Title: "Rent", Amount: decimal.NewFromFloat(10), PayeeID: member, CreatedByID: member},
			models.ErrBillNoPayers,
		},
		{
			"valid",
			models.Bill{Title: "Rent", Amount: decimal.NewFromFloat(10), PayeeID: member, CreatedByID: member, Payers: []models.BillPayer{{MemberID: member}}},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.bill).Error
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBillTrimWhitespace() {
	title := "  Internet bill\t"
	notes := " payable to the provider  "

	bill := suite.createTestBill(models.Bill{Title: title, Notes: notes})

	assert.Equal(suite.T(), strings.TrimSpace(title), bill.Title)
	assert.Equal(suite.T(), strings.TrimSpace(notes), bill.Notes)
}

func (suite *TestSuiteStandard) TestBillDueDateDefaults() {
	bill := suite.createTestBill(models.Bill{})
	assert.False(suite.T(), bill.DueDate.IsZero(), "due date should default to today")
}

func (suite *TestSuiteStandard) TestBillDeduplicatesPayers() {
	member := uuid.New()

	bill := suite.createTestBill(models.Bill{
		Payers: []models.BillPayer{{MemberID: member}, {MemberID: member}},
	})

	assert.Len(suite.T(), bill.Payers, 1)
}

func (suite *TestSuiteStandard) TestBillPayerHelpers() {
	payerOne := uuid.New()
	payerTwo := uuid.New()

	bill := suite.createTestBill(models.Bill{
		Amount: decimal.NewFromFloat(100),
		Payers: []models.BillPayer{{MemberID: payerOne}, {MemberID: payerTwo}},
	})

	assert.True(suite.T(), bill.HasPayer(payerOne))
	assert.False(suite.T(), bill.HasPayer(uuid.New()))
	assert.ElementsMatch(suite.T(), []uuid.UUID{payerOne, payerTwo}, bill.PayerIDs())
	assert.True(suite.T(), bill.Share().Equal(decimal.NewFromFloat(50)))
}

func (suite *TestSuiteStandard) TestRemovePayer() {
	payerOne := uuid.New()
	payerTwo := uuid.New()

	bill := suite.createTestBill(models.Bill{
		Payers: []models.BillPayer{{MemberID: payerOne}, {MemberID: payerTwo}},
	})

	deleted, err := bill.RemovePayer(bill.CreatedByID, payerOne)
	require.Nil(suite.T(), err)
	assert.False(suite.T(), deleted)
	assert.Len(suite.T(), bill.Payers, 1)

	reloaded, err := models.GetBill(bill.ID)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), reloaded.Payers, 1)
	assert.True(suite.T(), reloaded.HasPayer(payerTwo))
}

func (suite *TestSuiteStandard) TestRemovePayerIdempotent() {
	bill := suite.createTestBill(models.Bill{})

	deleted, err := bill.RemovePayer(bill.CreatedByID, uuid.New())
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), deleted)
	assert.Len(suite.T(), bill.Payers, 1)
}

func (suite *TestSuiteStandard) TestRemoveLastPayerDeletesBill() {
	payer := uuid.New()
	bill := suite.createTestBill(models.Bill{Payers: []models.BillPayer{{MemberID: payer}}})

	deleted, err := bill.RemovePayer(bill.CreatedByID, payer)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), deleted)

	_, err = models.GetBill(bill.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRemovePayerAuthorization() {
	payer := uuid.New()
	bill := suite.createTestBill(models.Bill{Payers: []models.BillPayer{{MemberID: payer}}})

	_, err := bill.RemovePayer(uuid.New(), payer)
	assert.ErrorIs(suite.T(), err, models.ErrNotBillCreator)

	// No mutation happened
	reloaded, err := models.GetBill(bill.ID)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), reloaded.Payers, 1)
}

func (suite *TestSuiteStandard) TestReplacePayers() {
	bill := suite.createTestBill(models.Bill{})
	newPayers := []uuid.UUID{uuid.New(), uuid.New()}

	err := bill.ReplacePayers(bill.CreatedByID, newPayers)
	require.Nil(suite.T(), err)

	reloaded, err := models.GetBill(bill.ID)
	require.Nil(suite.T(), err)
	assert.ElementsMatch(suite.T(), newPayers, reloaded.PayerIDs())
}

func (suite *TestSuiteStandard) TestReplacePayersEmpty() {
	bill := suite.createTestBill(models.Bill{})

	err := bill.ReplacePayers(bill.CreatedByID, []uuid.UUID{})
	assert.ErrorIs(suite.T(), err, models.ErrBillNoPayers)
}

func (suite *TestSuiteStandard) TestReplacePayersAuthorization() {
	bill := suite.createTestBill(models.Bill{})

	err := bill.ReplacePayers(uuid.New(), []uuid.UUID{uuid.New()})
	assert.ErrorIs(suite.T(), err, models.ErrNotBillCreator)
}

func (suite *TestSuiteStandard) TestDeleteBill() {
	bill := suite.createTestBill(models.Bill{
		Payers: []models.BillPayer{{MemberID: uuid.New()}, {MemberID: uuid.New()}},
	})

	// Deletion removes the bill regardless of remaining payers
	err := models.DeleteBill(bill.CreatedByID, bill.ID)
	require.Nil(suite.T(), err)

	_, err = models.GetBill(bill.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	// Deleting a bill that does not exist is not an error
	err = models.DeleteBill(bill.CreatedByID, bill.ID)
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestDeleteBillAuthorization() {
	bill := suite.createTestBill(models.Bill{})

	err := models.DeleteBill(uuid.New(), bill.ID)
	assert.ErrorIs(suite.T(), err, models.ErrNotBillCreator)

	_, err = models.GetBill(bill.ID)
	assert.Nil(suite.T(), err, "bill must still exist after rejected deletion")
}

func (suite *TestSuiteStandard) TestBillsForPayee() {
	payee := uuid.New()

	suite.createTestBill(models.Bill{PayeeID: payee, DueDate: types.NewDate(2024, 1, 1)})
	suite.createTestBill(models.Bill{PayeeID: payee, DueDate: types.NewDate(2024, 2, 1)})
	suite.createTestBill(models.Bill{})

	bills, err := models.BillsForPayee(payee)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), bills, 2)
}

func (suite *TestSuiteStandard) TestBillsWithPayer() {
	payer := uuid.New()

	suite.createTestBill(models.Bill{Payers: []models.BillPayer{{MemberID: payer}}})
	suite.createTestBill(models.Bill{Payers: []models.BillPayer{{MemberID: payer}, {MemberID: uuid.New()}}})
	suite.createTestBill(models.Bill{})

	bills, err := models.BillsWithPayer(payer)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), bills, 2)
}
