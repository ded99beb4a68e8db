package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
	"github.com/noah-isme/syntaxscout-api/pkg/response"
)

const noResults = "No results found."

func bindListQuery(c *gin.Context) (models.QueryParameters, bool) {
	var params models.QueryParameters
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return params, false
	}
	return params, true
}

// respondPage writes a page with pagination metadata. An empty result carries
// a display message instead of failing.
func respondPage[T any](c *gin.Context, page service.Page[T], meta map[string]interface{}) {
	if meta == nil {
		meta = map[string]interface{}{}
	}
	if page.Empty {
		meta["message"] = noResults
	}
	items := page.Items
	if items == nil {
		items = []T{}
	}
	response.JSON(c, http.StatusOK, items, page.Pagination(), meta)
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid id"))
		return 0, false
	}
	return id, true
}

// confirmed reports whether a destructive request carries confirm=true.
func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}

func respondDestructive(c *gin.Context, result models.DestructiveResult) {
	response.JSON(c, http.StatusOK, result, nil)
}
