// Package handlers is the read-only JSON surface over stored person
// records; the HTML form boundary lives in the web package.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/sumkai16/E1PersonalRecord/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PersonAPI holds the injected database handle.
type PersonAPI struct {
	DB *gorm.DB
}

func NewPersonAPI(db *gorm.DB) *PersonAPI {
	return &PersonAPI{DB: db}
}

// List returns the summary projection for every person, newest first.
func (h *PersonAPI) List(c *gin.Context) {
	result, err := models.ListPersons(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns the full record for one person.
func (h *PersonAPI) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, BadIDResponse)
		return
	}
	rec, err := models.ReadPersonRecord(h.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	c.JSON(http.StatusOK, rec)
}
