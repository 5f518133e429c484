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

// RegisterSettlementRoutes registers the routes for settlements with
// the RouterGroup that is passed.
func RegisterSettlementRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSettlementList)
		r.GET("", GetSettlements)
		r.DELETE("", DeleteSettlements)
	}

	// Settlement with ID
	{
		r.OPTIONS("/:id", OptionsSettlementDetail)
		r.GET("/:id", GetSettlement)
		r.DELETE("/:id", DeleteSettlement)
		r.OPTIONS("/:id/restore", OptionsSettlementRestore)
		r.POST("/:id/restore", RestoreSettlement)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settlements
// @Success		204
// @Router			/v1/settlements [options]
func OptionsSettlementList(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settlements
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlements/{id} [options]
func OptionsSettlementDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Settlement{}, httputil.OptionsGetDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settlements
// @Success		204
// @Router			/v1/settlements/{id}/restore [options]
func OptionsSettlementRestore(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get settlements
// @Description	Returns the settlement archive, either as a flat list or grouped by archive date
// @Tags			Settlements
// @Produce		json
// @Success		200	{object}	SettlementListResponse
// @Failure		400	{object}	SettlementListResponse
// @Failure		500	{object}	SettlementListResponse
// @Router			/v1/settlements [get]
// @Param			originalBill	query	string	false	"Filter by ID of the original bill"
// @Param			payer			query	string	false	"Filter by ID of the settled payer"
// @Param			payee			query	string	false	"Filter by payee ID"
// @Param			createdBy		query	string	false	"Filter by creating member ID"
// @Param			title			query	string	false	"Filter by title"
// @Param			notes			query	string	false	"Filter by notes"
// @Param			search			query	string	false	"Search for this text in title and notes"
// @Param			groupBy			query	string	false	"Set to 'date' for the grouped archive view"
// @Param			offset			query	uint	false	"The offset of the first Settlement returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Settlements to return. Defaults to 50."
func GetSettlements(c *gin.Context) {
	groupBy := c.DefaultQuery("groupBy", "")
	if groupBy != "" && groupBy != "date" {
		s := errGroupByInvalid.Error()
		c.JSON(http.StatusBadRequest, SettlementListResponse{
			Error: &s,
		})
		return
	}

	var filter SettlementQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("datetime(archived_at) DESC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Title, filter.Notes, filter.Search)

	// The grouped view always covers the full archive, pagination only
	// applies to the flat list
	if groupBy == "date" {
		var settlements []models.Settlement
		err := q.Find(&settlements).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ArchiveResponse{
				Error: &s,
			})
			return
		}

		groups := models.GroupSettlementsByDate(settlements)

		view := ArchiveView{
			Groups: make([]ArchiveGroup, 0, len(groups)),
			Total:  models.GrandTotal(groups),
		}

		for _, group := range groups {
			data := make([]Settlement, 0, len(group.Settlements))
			for _, settlement := range group.Settlements {
				data = append(data, newSettlement(c, settlement))
			}

			view.Groups = append(view.Groups, ArchiveGroup{
				Date:        group.Date,
				Settlements: data,
				Total:       group.Total,
			})
		}

		c.JSON(http.StatusOK, ArchiveResponse{Data: &view})
		return
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Settlements and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var settlements []models.Settlement
	err := q.Find(&settlements).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettlementListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Settlement, 0, len(settlements))
	for _, settlement := range settlements {
		data = append(data, newSettlement(c, settlement))
	}

	c.JSON(http.StatusOK, SettlementListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get settlement
// @Description	Returns a specific settlement
// @Tags			Settlements
// @Produce		json
// @Success		200	{object}	SettlementResponse
// @Failure		400	{object}	SettlementResponse
// @Failure		404	{object}	SettlementResponse
// @Failure		500	{object}	SettlementResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlements/{id} [get]
func GetSettlement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementResponse{
			Error: &s,
		})
		return
	}

	settlement, err := models.GetSettlement(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementResponse{
			Error: &s,
		})
		return
	}

	data := newSettlement(c, settlement)
	c.JSON(http.StatusOK, SettlementResponse{Data: &data})
}

// @Summary		Restore settlement
// @Description	Moves the archived share back onto the live bill, recreating the bill from the snapshot when it no longer exists. The settlement record is deleted afterwards
// @Tags			Settlements
// @Produce		json
// @Success		201	{object}	BillResponse
// @Failure		400	{object}	BillResponse
// @Failure		403	{object}	BillResponse
// @Failure		404	{object}	BillResponse
// @Failure		500	{object}	BillResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlements/{id}/restore [post]
func RestoreSettlement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	settlement, err := models.GetSettlement(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	actor := requestMember(c)

	bill, err := settlement.Restore(actor)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &s,
		})
		return
	}

	notify.Publish(c.Request.Context(), notify.BillRestored, bill.ID, settlement.PayerID)

	data := newBill(c, bill)
	c.JSON(http.StatusCreated, BillResponse{Data: &data})
}

// @Summary		Delete settlement
// @Description	Permanently discards a settlement. The live ledger is not touched, the archived share is forgiven
// @Tags			Settlements
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/settlements/{id} [delete]
func DeleteSettlement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteSettlements([]uuid.UUID{uri.ID.UUID})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	notify.Publish(c.Request.Context(), notify.SettlementDeleted, uri.ID.UUID, requestMember(c))
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Delete settlements
// @Description	Permanently discards settlements, either the IDs in the body or the whole archive with the confirm parameter. The body form is all-or-nothing
// @Tags			Settlements
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string							false	"Confirmation to delete the whole archive. Must have the value 'yes-please-delete-everything'"
// @Param			ids		body		SettlementDeleteRequest	false	"IDs of the settlements to delete"
// @Router			/v1/settlements [delete]
func DeleteSettlements(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}
	_ = c.ShouldBindQuery(&params)

	if params.Confirm != "" {
		if params.Confirm != "yes-please-delete-everything" {
			c.JSON(http.StatusBadRequest, httpError{
				Error: errCleanupConfirmation.Error(),
			})
			return
		}

		if err := models.DeleteAllSettlements(); err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		c.JSON(http.StatusNoContent, nil)
		return
	}

	var request SettlementDeleteRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteSettlements(request.IDs)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	for _, id := range request.IDs {
		notify.Publish(c.Request.Context(), notify.SettlementDeleted, id, requestMember(c))
	}

	c.JSON(http.StatusNoContent, nil)
}
