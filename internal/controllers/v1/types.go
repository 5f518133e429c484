package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/auth"
	hs_uuid "github.com/hearthshare/backend/internal/uuid"
)

type URIID struct {
	ID hs_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// URIPayer addresses one payer's share on a bill.
type URIPayer struct {
	URIID
	MemberID hs_uuid.UUID `uri:"memberId" binding:"required" format:"UUID"` // ID of the payer
}

type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}

// requestMember returns the authenticated member the request acts as.
// The auth middleware guarantees the value is set on every /v1 route.
func requestMember(c *gin.Context) uuid.UUID {
	return c.MustGet(auth.ContextMember).(uuid.UUID)
}
