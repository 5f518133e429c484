package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/models"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Member | models.Bill | models.Settlement](c *gin.Context, resource R, options gin.HandlerFunc) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	options(c)
}
