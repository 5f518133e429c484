package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/hearthshare/backend/internal/controllers/v1"
	"github.com/hearthshare/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBillOptions() {
	creator := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "http://example.com/v1/bills", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Detail", bill.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Payer", bill.Data.Links.Self + "/payers/" + bill.Data.Payers[0].String(), http.StatusNoContent, "OPTIONS, DELETE"},
		{"Payer settlement", bill.Data.Links.Self + "/payers/" + bill.Data.Payers[0].String() + "/settlement", http.StatusNoContent, "OPTIONS, POST"},
		{"Bulk settlement", "http://example.com/v1/bills/settlements", http.StatusNoContent, "OPTIONS, POST"},
		{"Owed to me", "http://example.com/v1/bills/owed-to-me", http.StatusNoContent, "OPTIONS, GET"},
		{"Owed by me", "http://example.com/v1/bills/owed-by-me", http.StatusNoContent, "OPTIONS, GET"},
		{"Unknown ID", fmt.Sprintf("http://example.com/v1/bills/%s", uuid.New()), http.StatusNotFound, ""},
		{"Invalid ID", "http://example.com/v1/bills/NotAUUID", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.RequestAs(t, creator, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.allow != "" {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBillCreate() {
	creator := uuid.New()
	payers := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	bill := suite.createTestBill(creator, v1.BillEditable{
		Title:  "Electricity",
		Amount: decimal.NewFromFloat(100),
		Payers: payers,
	})

	suite.Assert().Equal("Electricity", bill.Data.Title)
	suite.Assert().Equal(creator, bill.Data.CreatedByID)
	suite.Assert().Equal(creator, bill.Data.PayeeID)
	suite.Assert().ElementsMatch(payers, bill.Data.Payers)

	// 100.00 split three ways
	suite.Assert().True(bill.Data.Share.Equal(decimal.NewFromFloat(33.33)), "share is %s", bill.Data.Share)

	// The due date defaults to the creation day
	suite.Assert().False(bill.Data.DueDate.IsZero())
}

func (suite *TestSuiteStandard) TestBillCreateInvalid() {
	tests := []struct {
		name string
		bill v1.BillEditable
	}{
		{"No payers", v1.BillEditable{Title: "Rent", Amount: decimal.NewFromFloat(10), PayeeID: uuid.New(), Payers: []uuid.UUID{}}},
		{"No title", v1.BillEditable{Title: "   ", Amount: decimal.NewFromFloat(10), PayeeID: uuid.New(), Payers: []uuid.UUID{uuid.New()}}},
		{"Zero amount", v1.BillEditable{Title: "Rent", PayeeID: uuid.New(), Payers: []uuid.UUID{uuid.New()}}},
		{"Negative amount", v1.BillEditable{Title: "Rent", Amount: decimal.NewFromFloat(-10), PayeeID: uuid.New(), Payers: []uuid.UUID{uuid.New()}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body := []v1.BillEditable{tt.bill}

			r := test.RequestAs(t, uuid.New(), http.MethodPost, "http://example.com/v1/bills", body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.BillCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestBillCreateInvalidBody() {
	r := test.RequestAs(suite.T(), uuid.New(), http.MethodPost, "http://example.com/v1/bills", `{ broken json`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBillCreateDuplicatePayers() {
	member := uuid.New()

	bill := suite.createTestBill(uuid.New(), v1.BillEditable{
		Payers: []uuid.UUID{member, member},
	})

	suite.Assert().Len(bill.Data.Payers, 1)
}

func (suite *TestSuiteStandard) TestBillGet() {
	creator := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{Title: "Internet"})

	r := test.RequestAs(suite.T(), creator, http.MethodGet, bill.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Internet", response.Data.Title)
	suite.Assert().Len(response.Data.Payers, 1)
}

func (suite *TestSuiteStandard) TestBillGetNotFound() {
	r := test.RequestAs(suite.T(), uuid.New(), http.MethodGet, fmt.Sprintf("http://example.com/v1/bills/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBillsListFilter() {
	creator := uuid.New()
	payee := uuid.New()
	payer := uuid.New()

	_ = suite.createTestBill(creator, v1.BillEditable{Title: "Rent", Payers: []uuid.UUID{payer}})
	_ = suite.createTestBill(creator, v1.BillEditable{Title: "Groceries", PayeeID: payee, Notes: "Week 23"})
	_ = suite.createTestBill(uuid.New(), v1.BillEditable{Title: "Internet"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Payee", "payee=" + payee.String(), 1},
		{"Created by", "createdBy=" + creator.String(), 2},
		{"Payer", "payer=" + payer.String(), 1},
		{"Title", "title=Rent", 1},
		{"Search notes", "search=week", 1},
		{"Search nothing", "search=doesnotexist", 0},
		{"Limit", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.RequestAs(t, creator, http.MethodGet, "http://example.com/v1/bills?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BillListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestBillsListInvalidDueDate() {
	r := test.RequestAs(suite.T(), uuid.New(), http.MethodGet, "http://example.com/v1/bills?dueDate=NotADate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBillUpdate() {
	creator := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{Title: "Electricity"})

	r := test.RequestAs(suite.T(), creator, http.MethodPatch, bill.Data.Links.Self, map[string]any{
		"title": "Electricity May",
		"notes": "Includes the late fee",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Electricity May", response.Data.Title)
	suite.Assert().Equal("Includes the late fee", response.Data.Notes)

	// Fields that were not part of the request are untouched
	suite.Assert().True(response.Data.Amount.Equal(bill.Data.Amount))
	suite.Assert().ElementsMatch(bill.Data.Payers, response.Data.Payers)
}

func (suite *TestSuiteStandard) TestBillUpdatePayers() {
	creator := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{
		Amount: decimal.NewFromFloat(90),
		Payers: []uuid.UUID{uuid.New(), uuid.New()},
	})

	payers := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	r := test.RequestAs(suite.T(), creator, http.MethodPatch, bill.Data.Links.Self, map[string]any{
		"payers": payers,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().ElementsMatch(payers, response.Data.Payers)
	suite.Assert().True(response.Data.Share.Equal(decimal.NewFromFloat(30)), "share is %s", response.Data.Share)
}

func (suite *TestSuiteStandard) TestBillUpdateEmptyPayers() {
	creator := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{})

	r := test.RequestAs(suite.T(), creator, http.MethodPatch, bill.Data.Links.Self, map[string]any{
		"payers": []uuid.UUID{},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBillUpdateInvalid() {
	creator := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{Title: "Electricity"})

	tests := []struct {
		name string
		body map[string]any
	}{
		{"Negative amount", map[string]any{"amount": -10}},
		{"Zero amount", map[string]any{"amount": 0}},
		{"Blank title", map[string]any{"title": "  "}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.RequestAs(t, creator, http.MethodPatch, bill.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	// The bill is unchanged
	r := test.RequestAs(suite.T(), creator, http.MethodGet, bill.Data.Links.Self, "")
	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Electricity", response.Data.Title)
	suite.Assert().True(response.Data.Amount.Equal(bill.Data.Amount))
}

func (suite *TestSuiteStandard) TestBillUpdateNotCreator() {
	bill := suite.createTestBill(uuid.New(), v1.BillEditable{Title: "Electricity"})

	r := test.RequestAs(suite.T(), uuid.New(), http.MethodPatch, bill.Data.Links.Self, map[string]any{
		"title": "Hijacked",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	// The bill is unchanged
	r = test.RequestAs(suite.T(), uuid.New(), http.MethodGet, bill.Data.Links.Self, "")
	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Electricity", response.Data.Title)
}

func (suite *TestSuiteStandard) TestBillDelete() {
	creator := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{})

	r := test.RequestAs(suite.T(), creator, http.MethodDelete, bill.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.RequestAs(suite.T(), creator, http.MethodGet, bill.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Deleting a bill that is already gone is still a success
	r = test.RequestAs(suite.T(), creator, http.MethodDelete, bill.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestBillDeleteNotCreator() {
	bill := suite.createTestBill(uuid.New(), v1.BillEditable{})

	r := test.RequestAs(suite.T(), uuid.New(), http.MethodDelete, bill.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestRemovePayer() {
	creator := uuid.New()
	first := uuid.New()
	second := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{Payers: []uuid.UUID{first, second}})

	r := test.RequestAs(suite.T(), creator, http.MethodDelete, bill.Data.Links.Self+"/payers/"+first.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.RequestAs(suite.T(), creator, http.MethodGet, bill.Data.Links.Self, "")
	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal([]uuid.UUID{second}, response.Data.Payers)
}

func (suite *TestSuiteStandard) TestRemoveLastPayerDeletesBill() {
	creator := uuid.New()
	payer := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{Payers: []uuid.UUID{payer}})

	r := test.RequestAs(suite.T(), creator, http.MethodDelete, bill.Data.Links.Self+"/payers/"+payer.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.RequestAs(suite.T(), creator, http.MethodGet, bill.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRemovePayerNotCreator() {
	payer := uuid.New()
	bill := suite.createTestBill(uuid.New(), v1.BillEditable{Payers: []uuid.UUID{payer}})

	r := test.RequestAs(suite.T(), uuid.New(), http.MethodDelete, bill.Data.Links.Self+"/payers/"+payer.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestSettlePayer() {
	creator := uuid.New()
	first := uuid.New()
	second := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{
		Title:  "Groceries",
		Amount: decimal.NewFromFloat(100),
		Payers: []uuid.UUID{first, second},
	})

	settlement := suite.settleTestPayer(creator, *bill.Data, first)

	suite.Assert().Equal(bill.Data.ID, settlement.Data.OriginalBillID)
	suite.Assert().Equal(first, settlement.Data.PayerID)
	suite.Assert().Equal("Groceries", settlement.Data.Title)
	suite.Assert().False(settlement.Data.ArchivedAt.IsZero())

	// The live bill keeps the remaining payer
	r := test.RequestAs(suite.T(), creator, http.MethodGet, bill.Data.Links.Self, "")
	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal([]uuid.UUID{second}, response.Data.Payers)
}

func (suite *TestSuiteStandard) TestSettleLastPayerDeletesBill() {
	creator := uuid.New()
	payer := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{Payers: []uuid.UUID{payer}})

	_ = suite.settleTestPayer(creator, *bill.Data, payer)

	r := test.RequestAs(suite.T(), creator, http.MethodGet, bill.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSettlePayerErrors() {
	creator := uuid.New()
	payer := uuid.New()
	bill := suite.createTestBill(creator, v1.BillEditable{Payers: []uuid.UUID{payer}})

	tests := []struct {
		name   string
		actor  uuid.UUID
		path   string
		status int
	}{
		{"Not the creator", uuid.New(), bill.Data.Links.Self + "/payers/" + payer.String() + "/settlement", http.StatusForbidden},
		{"Not a payer", creator, bill.Data.Links.Self + "/payers/" + uuid.NewString() + "/settlement", http.StatusNotFound},
		{"Unknown bill", creator, fmt.Sprintf("http://example.com/v1/bills/%s/payers/%s/settlement", uuid.New(), payer), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.RequestAs(t, tt.actor, http.MethodPost, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// The full settlement scenario: a bill split three ways is settled for
// one payer, deleted, and can then not be settled any further.
func (suite *TestSuiteStandard) TestBillSettleDeleteSettle() {
	creator := uuid.New()
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	bill := suite.createTestBill(creator, v1.BillEditable{
		Amount: decimal.NewFromFloat(100),
		Payers: []uuid.UUID{a, b, c},
	})
	suite.Assert().True(bill.Data.Share.Equal(decimal.NewFromFloat(33.33)))

	settlement := suite.settleTestPayer(creator, *bill.Data, a)
	suite.Assert().Equal(a, settlement.Data.PayerID)

	r := test.RequestAs(suite.T(), creator, http.MethodGet, bill.Data.Links.Self, "")
	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().ElementsMatch([]uuid.UUID{b, c}, response.Data.Payers)

	r = test.RequestAs(suite.T(), creator, http.MethodDelete, bill.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.RequestAs(suite.T(), creator, http.MethodPost, bill.Data.Links.Self+"/payers/"+b.String()+"/settlement", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSettleCounterparty() {
	creator := uuid.New()
	counterparty := uuid.New()

	_ = suite.createTestBill(creator, v1.BillEditable{Title: "Rent", Payers: []uuid.UUID{counterparty}})
	second := suite.createTestBill(creator, v1.BillEditable{Title: "Groceries", Payers: []uuid.UUID{counterparty, uuid.New()}})
	_ = suite.createTestBill(creator, v1.BillEditable{Title: "Internet"})

	r := test.RequestAs(suite.T(), creator, http.MethodPost, "http://example.com/v1/bills/settlements?counterparty="+counterparty.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SettleAllResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Len(response.Data, 2)
	suite.Assert().Empty(response.Failures)

	// The single-payer bill is gone, the shared one keeps its other payer
	r = test.RequestAs(suite.T(), creator, http.MethodGet, second.Data.Links.Self, "")
	var remaining v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &remaining)
	suite.Assert().Len(remaining.Data.Payers, 1)

	// Nothing left to settle for the counterparty
	r = test.RequestAs(suite.T(), creator, http.MethodPost, "http://example.com/v1/bills/settlements?counterparty="+counterparty.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	response = v1.SettleAllResponse{}
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestSettleCounterpartyParameter() {
	tests := []struct {
		name  string
		query string
	}{
		{"Missing", ""},
		{"Invalid UUID", "?counterparty=NotAUUID"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.RequestAs(t, uuid.New(), http.MethodPost, "http://example.com/v1/bills/settlements"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestOwedToMe() {
	self := uuid.New()
	alex := suite.createTestMember(v1.MemberEditable{Username: "alex"})

	// 90 split three ways including the payee, alex owes 30 on it
	_ = suite.createTestBill(self, v1.BillEditable{
		Title:  "Groceries",
		Amount: decimal.NewFromFloat(90),
		Payers: []uuid.UUID{alex.Data.ID, self, uuid.New()},
	})

	// 20 owed by alex alone
	_ = suite.createTestBill(self, v1.BillEditable{
		Title:  "Takeout",
		Amount: decimal.NewFromFloat(20),
		Payers: []uuid.UUID{alex.Data.ID},
	})

	r := test.RequestAs(suite.T(), self, http.MethodGet, "http://example.com/v1/bills/owed-to-me", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OwedResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("counterparty", response.Data.GroupBy)
	suite.Require().Len(response.Data.Groups, 2)

	for _, group := range response.Data.Groups {
		suite.Require().NotNil(group.Counterparty)

		if group.Counterparty.ID == alex.Data.ID {
			suite.Assert().Equal("alex", group.Counterparty.Name)
			suite.Assert().Len(group.Bills, 2)
			suite.Assert().True(group.Total.Equal(decimal.NewFromFloat(50)), "total is %s", group.Total)
		} else {
			// The unknown third payer owes one share of the groceries
			suite.Assert().Equal("Unknown User", group.Counterparty.Name)
			suite.Assert().True(group.Total.Equal(decimal.NewFromFloat(30)), "total is %s", group.Total)
		}
	}

	// The grand total does not include the payee's own share
	suite.Assert().True(response.Data.Total.Equal(decimal.NewFromFloat(80)), "total is %s", response.Data.Total)
}

func (suite *TestSuiteStandard) TestOwedByMe() {
	self := uuid.New()
	payee := suite.createTestMember(v1.MemberEditable{Username: "sam"})

	_ = suite.createTestBill(payee.Data.ID, v1.BillEditable{
		Title:   "Rent",
		Amount:  decimal.NewFromFloat(60),
		PayeeID: payee.Data.ID,
		Payers:  []uuid.UUID{self, uuid.New()},
	})

	// Bills the member is the payee of are not owed by them
	_ = suite.createTestBill(self, v1.BillEditable{
		Title:  "Groceries",
		Payers: []uuid.UUID{self, uuid.New()},
	})

	r := test.RequestAs(suite.T(), self, http.MethodGet, "http://example.com/v1/bills/owed-by-me", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OwedResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Groups, 1)
	suite.Assert().Equal(payee.Data.ID, response.Data.Groups[0].Counterparty.ID)
	suite.Assert().Equal("sam", response.Data.Groups[0].Counterparty.Name)
	suite.Assert().True(response.Data.Total.Equal(decimal.NewFromFloat(30)), "total is %s", response.Data.Total)
}

func (suite *TestSuiteStandard) TestOwedGroupedByDate() {
	self := uuid.New()
	alex := uuid.New()

	_ = suite.createTestBill(self, v1.BillEditable{
		Amount: decimal.NewFromFloat(40),
		Payers: []uuid.UUID{alex},
	})

	r := test.RequestAs(suite.T(), self, http.MethodGet, "http://example.com/v1/bills/owed-to-me?groupBy=date", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OwedResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("date", response.Data.GroupBy)
	suite.Require().Len(response.Data.Groups, 1)
	suite.Require().NotNil(response.Data.Groups[0].Date)
	suite.Assert().True(response.Data.Groups[0].Total.Equal(decimal.NewFromFloat(40)))
}

func (suite *TestSuiteStandard) TestOwedInvalidGroupBy() {
	r := test.RequestAs(suite.T(), uuid.New(), http.MethodGet, "http://example.com/v1/bills/owed-to-me?groupBy=payee", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
