package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/models"
)

// MemberEditable represents all user configurable parameters
type MemberEditable struct {
	Username string `json:"username" example:"alex" default:""`      // Display name of the member, unique in the household
	Note     string `json:"note" example:"Pays the rent" default:""` // Notes about the member
}

func (editable MemberEditable) model() models.Member {
	return models.Member{
		Username: editable.Username,
		Note:     editable.Note,
	}
}

type MemberLinks struct {
	Self  string `json:"self" example:"https://example.com/v1/members/d3c3273e-968b-4c24-a204-42ca45ed62e1"`      // The member itself
	Bills string `json:"bills" example:"https://example.com/v1/bills?payee=d3c3273e-968b-4c24-a204-42ca45ed62e1"` // Bills the member is the payee of
}

type Member struct {
	models.DefaultModel
	MemberEditable
	Links MemberLinks `json:"links"`
}

func newMember(c *gin.Context, model models.Member) Member {
	url := c.GetString(string(models.DBContextURL))

	return Member{
		DefaultModel: model.DefaultModel,
		MemberEditable: MemberEditable{
			Username: model.Username,
			Note:     model.Note,
		},
		Links: MemberLinks{
			Self:  fmt.Sprintf("%s/v1/members/%s", url, model.ID),
			Bills: fmt.Sprintf("%s/v1/bills?payee=%s", url, model.ID),
		},
	}
}

type MemberListResponse struct {
	Data       []Member    `json:"data"`                                                          // List of Members
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MemberCreateResponse struct {
	Data  []MemberResponse `json:"data"`                                                          // List of the created Members or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (m *MemberCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MemberResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MemberResponse struct {
	Data  *Member `json:"data"`                                                          // Data for the Member
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MemberQueryFilter struct {
	Username string `form:"username" filterField:"false"` // By username
	Note     string `form:"note" filterField:"false"`     // By note
	Search   string `form:"search" filterField:"false"`   // By string in username or note
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first Member returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of Members to return. Defaults to 50.
}
