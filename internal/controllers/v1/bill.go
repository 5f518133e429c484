package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/notify"
	"golang.org/x/exp/slices"
)

// RegisterBillRoutes registers the routes for bills with
// the RouterGroup that is passed.
func RegisterBillRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBillList)
		r.GET("", GetBills)
		r.POST("", CreateBills)
	}

	// Aggregated views and bulk settlement. Registered before the ID
	// routes so gin does not treat the literal segments as IDs.
	{
		r.OPTIONS("/owed-to-me", OptionsOwed)
		r.GET("/owed-to-me", OwedToMe)
		r.OPTIONS("/owed-by-me", OptionsOwed)
		r.GET("/owed-by-me", OwedByMe)
		r.OPTIONS("/settlements", OptionsBillSettlements)
		r.POST("/settlements", SettleCounterparty)
	}

	// Bill with ID
	{
		r.OPTIONS("/:id", OptionsBillDetail)
		r.GET("/:id", GetBill)
		r.PATCH("/:id", UpdateBill)
		r.DELETE("/:id", DeleteBill)
	}

	// One payer's share on a bill
	{
		r.OPTIONS("/:id/payers/:memberId", OptionsPayerDetail)
		r.DELETE("/:id/payers/:memberId", RemovePayer)
		r.OPTIONS("/:id/payers/:memberId/settlement", OptionsPayerSettlement)
		r.POST("/:id/payers/:memberId/settlement", SettlePayer)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Router			/v1/bills [options]
func OptionsBillList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bills/{id} [options]
func OptionsBillDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Bill{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Router			/v1/bills/{id}/payers/{memberId} [options]
func OptionsPayerDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Router			/v1/bills/{id}/payers/{memberId}/settlement [options]
func OptionsPayerSettlement(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Router			/v1/bills/settlements [options]
func OptionsBillSettlements(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Router			/v1/bills/owed-to-me [options]
func OptionsOwed(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create bills
// @Description	Creates new bills. The authenticated member becomes the creator
// @Tags			Bills
// @Produce		json
// @Success		201		{object}	BillCreateResponse
// @Failure		400		{object}	BillCreateResponse
// @Failure		500		{object}	BillCreateResponse
// @Param			bills	body		[]BillEditable	true	"Bills"
// @Router			/v1/bills [post]
func CreateBills(c *gin.Context) {
	var editables []BillEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillCreateResponse{
			Error: &e,
		})
		return
	}

	actor := requestMember(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BillCreateResponse{}

	for _, editable := range editables {
		bill := editable.model(actor)

		err = models.DB.Create(&bill).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		notify.Publish(c.Request.Context(), notify.BillCreated, bill.ID, actor)

		data := newBill(c, bill)
		r.Data = append(r.Data, BillResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get bills
// @Description	Returns a list of bills
// @Tags			Bills
// @Produce		json
// @Success		200	{object}	BillListResponse
// @Failure		400	{object}	BillListResponse
// @Failure		500	{object}	BillListResponse
// @Router			/v1/bills [get]
// @Param			payee		query	string	false	"Filter by payee ID"
// @Param			createdBy	query	string	false	"Filter by creating member ID"
// @Param			dueDate		query	string	false	"Filter by due date in YYYY-MM-DD format"
// @Param			payer		query	string	false	"Filter by ID of a member owing a share"
// @Param			title		query	string	false	"Filter by title"
// @Param			notes		query	string	false	"Filter by notes"
// @Param			search		query	string	false	"Search for this text in title and notes"
// @Param			offset		query	uint	false	"The offset of the first Bill returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Bills to return. Defaults to 50."
func GetBills(c *gin.Context) {
	var filter BillQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Preload("Payers").
		Order("datetime(created_at) DESC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Title, filter.Notes, filter.Search)

	if slices.Contains(setFields, "Payer") {
		q = q.Where("bills.id IN (SELECT bill_id FROM bill_payers WHERE member_id = ?)", filter.Payer.UUID)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Bills and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var bills []models.Bill
	err = q.Find(&bills).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Bill, 0, len(bills))
	for _, bill := range bills {
		data = append(data, newBill(c, bill))
	}

	c.JSON(http.StatusOK, BillListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get bill
// @Description	Returns a specific bill
// @Tags			Bills
// @Produce		json
// @Success		200	{object}	BillResponse
// @Failure		400	{object}	BillResponse
// @Failure		404	{object}	BillResponse
// @Failure		500	{object}	BillResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bills/{id} [get]
func GetBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	bill, err := models.GetBill(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	data := newBill(c, bill)
	c.JSON(http.StatusOK, BillResponse{Data: &data})
}

// @Summary		Update bill
// @Description	Update an existing bill. Only values to be updated need to be specified. Only the creator may update a bill
// @Tags			Bills
// @Accept			json
// @Produce		json
// @Success		200		{object}	BillResponse
// @Failure		400		{object}	BillResponse
// @Failure		403		{object}	BillResponse
// @Failure		404		{object}	BillResponse
// @Failure		500		{object}	BillResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bill	body		BillEditable	true	"Bill"
// @Router			/v1/bills/{id} [patch]
func UpdateBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	actor := requestMember(c)

	bill, err := models.GetBill(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	if err := bill.AuthorizeCreator(actor); err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BillEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	var data BillEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	// The payer set is an association, not a column, and is replaced
	// explicitly below
	replacePayers := slices.Contains(updateFields, any("Payers"))
	updateFields = slices.DeleteFunc(updateFields, func(field any) bool {
		return field == any("Payers")
	})

	if len(updateFields) > 0 {
		err = bill.UpdateFields(actor, data.model(actor), updateFields)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BillResponse{
				Error: &s,
			})
			return
		}
	}

	if replacePayers {
		err = bill.ReplacePayers(actor, data.Payers)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BillResponse{
				Error: &s,
			})
			return
		}
	}

	bill, err = models.GetBill(bill.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	notify.Publish(c.Request.Context(), notify.BillUpdated, bill.ID, actor)

	r := newBill(c, bill)
	c.JSON(http.StatusOK, BillResponse{Data: &r})
}

// @Summary		Delete bill
// @Description	Deletes a bill with all its payer shares. Only the creator may delete a bill
// @Tags			Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bills/{id} [delete]
func DeleteBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	actor := requestMember(c)

	err = models.DeleteBill(actor, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	notify.Publish(c.Request.Context(), notify.BillDeleted, uri.ID.UUID, actor)
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Remove payer
// @Description	Removes one payer's share from a bill without archiving it. Removing the last payer deletes the bill
// @Tags			Bills
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string	true	"ID of the bill"
// @Param			memberId	path		string	true	"ID of the payer"
// @Router			/v1/bills/{id}/payers/{memberId} [delete]
func RemovePayer(c *gin.Context) {
	var uri URIPayer
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	actor := requestMember(c)

	bill, err := models.GetBill(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	deleted, err := bill.RemovePayer(actor, uri.MemberID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	kind := notify.BillUpdated
	if deleted {
		kind = notify.BillDeleted
	}
	notify.Publish(c.Request.Context(), kind, bill.ID, actor)

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Settle share
// @Description	Archives one payer's share into a settlement and removes the payer from the live bill. Settling the last payer deletes the bill
// @Tags			Bills
// @Produce		json
// @Success		201			{object}	SettlementResponse
// @Failure		400			{object}	SettlementResponse
// @Failure		403			{object}	SettlementResponse
// @Failure		404			{object}	SettlementResponse
// @Failure		500			{object}	SettlementResponse
// @Param			id			path		string	true	"ID of the bill"
// @Param			memberId	path		string	true	"ID of the payer"
// @Router			/v1/bills/{id}/payers/{memberId}/settlement [post]
func SettlePayer(c *gin.Context) {
	var uri URIPayer
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementResponse{
			Error: &s,
		})
		return
	}

	actor := requestMember(c)

	bill, err := models.GetBill(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementResponse{
			Error: &s,
		})
		return
	}

	settlement, err := bill.SettlePayer(actor, uri.MemberID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementResponse{
			Error: &s,
		})
		return
	}

	notify.Publish(c.Request.Context(), notify.PayerSettled, bill.ID, uri.MemberID.UUID)

	data := newSettlement(c, settlement)
	c.JSON(http.StatusCreated, SettlementResponse{Data: &data})
}

// @Summary		Settle counterparty
// @Description	Settles every share the counterparty owes on bills created by the authenticated member. Failures for single bills do not roll back prior settlements
// @Tags			Bills
// @Produce		json
// @Success		201				{object}	SettleAllResponse
// @Failure		400				{object}	SettleAllResponse
// @Failure		500				{object}	SettleAllResponse
// @Param			counterparty	query		string	true	"ID of the member whose shares are settled"
// @Router			/v1/bills/settlements [post]
func SettleCounterparty(c *gin.Context) {
	counterparty, err := httputil.UUIDFromString(c.Query("counterparty"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettleAllResponse{
			Error: &s,
		})
		return
	}

	if counterparty == uuid.Nil {
		s := errCounterpartyParameter.Error()
		c.JSON(http.StatusBadRequest, SettleAllResponse{
			Error: &s,
		})
		return
	}

	actor := requestMember(c)

	settlements, failures, err := models.SettleAllForCounterparty(actor, counterparty)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettleAllResponse{
			Error: &s,
		})
		return
	}

	r := SettleAllResponse{}
	for _, settlement := range settlements {
		notify.Publish(c.Request.Context(), notify.PayerSettled, settlement.OriginalBillID, counterparty)
		r.Data = append(r.Data, newSettlement(c, settlement))
	}

	for _, failure := range failures {
		r.Failures = append(r.Failures, SettleFailure{
			BillID: failure.BillID,
			Error:  failure.Err.Error(),
		})
	}

	c.JSON(http.StatusCreated, r)
}

// @Summary		Owed to me
// @Description	Returns the bills the authenticated member is owed money on, grouped by counterparty or by due date
// @Tags			Bills
// @Produce		json
// @Success		200		{object}	OwedResponse
// @Failure		400		{object}	OwedResponse
// @Failure		500		{object}	OwedResponse
// @Param			groupBy	query		string	false	"Group by 'counterparty' (default) or 'date'"
// @Router			/v1/bills/owed-to-me [get]
func OwedToMe(c *gin.Context) {
	owed(c, models.OwedToMe)
}

// @Summary		Owed by me
// @Description	Returns the bills the authenticated member owes a share on, grouped by counterparty or by due date
// @Tags			Bills
// @Produce		json
// @Success		200		{object}	OwedResponse
// @Failure		400		{object}	OwedResponse
// @Failure		500		{object}	OwedResponse
// @Param			groupBy	query		string	false	"Group by 'counterparty' (default) or 'date'"
// @Router			/v1/bills/owed-by-me [get]
func OwedByMe(c *gin.Context) {
	owed(c, models.OwedByMe)
}

func owed(c *gin.Context, direction models.Direction) {
	groupBy := c.DefaultQuery("groupBy", "counterparty")
	if groupBy != "counterparty" && groupBy != "date" {
		s := errGroupByInvalid.Error()
		c.JSON(http.StatusBadRequest, OwedResponse{
			Error: &s,
		})
		return
	}

	actor := requestMember(c)

	var bills []models.Bill
	var err error
	if direction == models.OwedToMe {
		bills, err = models.BillsForPayee(actor)
	} else {
		bills, err = models.BillsWithPayer(actor)
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OwedResponse{
			Error: &s,
		})
		return
	}

	// Bills that contribute nothing in this direction are left out,
	// for example the member's own share of their own bill
	bills = slices.DeleteFunc(bills, func(bill models.Bill) bool {
		return bill.OwedShare(actor, direction).IsZero()
	})

	view := OwedView{
		GroupBy: groupBy,
		Groups:  make([]OwedGroup, 0),
		Total:   models.OwedTotal(bills, actor, direction),
	}

	switch groupBy {
	case "counterparty":
		index, err := models.NewMemberIndex()
		if err != nil {
			s := err.Error()
			c.JSON(status(err), OwedResponse{
				Error: &s,
			})
			return
		}

		for _, group := range models.GroupBillsByCounterparty(bills, actor, direction) {
			counterparty := MemberName{
				ID:   group.CounterpartyID,
				Name: models.ResolveName(group.CounterpartyID, actor, index),
			}

			view.Groups = append(view.Groups, OwedGroup{
				Counterparty: &counterparty,
				Bills:        responseBills(c, group.Bills),
				Total:        group.Total,
			})
		}

	case "date":
		for _, group := range models.GroupBillsByDate(bills) {
			date := group.Date

			view.Groups = append(view.Groups, OwedGroup{
				Date:  &date,
				Bills: responseBills(c, group.Bills),
				Total: models.OwedTotal(group.Bills, actor, direction),
			})
		}
	}

	c.JSON(http.StatusOK, OwedResponse{Data: &view})
}

func responseBills(c *gin.Context, bills []models.Bill) []Bill {
	data := make([]Bill, 0, len(bills))
	for _, bill := range bills {
		data = append(data, newBill(c, bill))
	}

	return data
}
