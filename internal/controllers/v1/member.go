package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/httputil"
	"github.com/hearthshare/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterMemberRoutes registers the routes for members with
// the RouterGroup that is passed.
func RegisterMemberRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMemberList)
		r.GET("", GetMembers)
		r.POST("", CreateMembers)
	}

	// Member with ID
	{
		r.OPTIONS("/:id", OptionsMemberDetail)
		r.GET("/:id", GetMember)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Members
// @Success		204
// @Router			/v1/members [options]
func OptionsMemberList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Members
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id} [options]
func OptionsMemberDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Member{}, httputil.OptionsGet)
}

// @Summary		Create members
// @Description	Creates new member profiles
// @Tags			Members
// @Produce		json
// @Success		201		{object}	MemberCreateResponse
// @Failure		400		{object}	MemberCreateResponse
// @Failure		500		{object}	MemberCreateResponse
// @Param			members	body		[]MemberEditable	true	"Members"
// @Router			/v1/members [post]
func CreateMembers(c *gin.Context) {
	var editables []MemberEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemberCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := MemberCreateResponse{}

	for _, editable := range editables {
		member := editable.model()

		err = models.DB.Create(&member).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newMember(c, member)
		r.Data = append(r.Data, MemberResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get members
// @Description	Returns a list of members
// @Tags			Members
// @Produce		json
// @Success		200	{object}	MemberListResponse
// @Failure		400	{object}	MemberListResponse
// @Failure		500	{object}	MemberListResponse
// @Router			/v1/members [get]
// @Param			username	query	string	false	"Filter by username"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in username and note"
// @Param			offset		query	uint	false	"The offset of the first Member returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Members to return. Defaults to 50."
func GetMembers(c *gin.Context) {
	var filter MemberQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("username ASC")
	q = memberFilters(models.DB, q, setFields, filter.Username, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Members and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var members []models.Member
	err := q.Find(&members).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Member, 0, len(members))
	for _, member := range members {
		data = append(data, newMember(c, member))
	}

	c.JSON(http.StatusOK, MemberListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get member
// @Description	Returns a specific member
// @Tags			Members
// @Produce		json
// @Success		200	{object}	MemberResponse
// @Failure		400	{object}	MemberResponse
// @Failure		404	{object}	MemberResponse
// @Failure		500	{object}	MemberResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id} [get]
func GetMember(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	var member models.Member
	err = models.DB.First(&member, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	data := newMember(c, member)
	c.JSON(http.StatusOK, MemberResponse{Data: &data})
}
