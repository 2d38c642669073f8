// Package web is the HTML boundary of the E-1 form: rendering, submission,
// edit, delete and the stored-file views.
package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/sumkai16/E1PersonalRecord/config"
	"github.com/sumkai16/E1PersonalRecord/forms"
	"github.com/sumkai16/E1PersonalRecord/models"
	"github.com/sumkai16/E1PersonalRecord/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler carries the injected database handle and uploads bucket.
type Handler struct {
	DB    *gorm.DB
	Store storage.StorageAPI
}

func NewHandler(db *gorm.DB, store storage.StorageAPI) *Handler {
	return &Handler{DB: db, Store: store}
}

// FormView renders a blank registration form.
func (h *Handler) FormView(c *gin.Context) {
	c.HTML(http.StatusOK, "form.tmpl", gin.H{
		"Action": "/submit",
	})
}

// Submit validates and persists a new registration.
func (h *Handler) Submit(c *gin.Context) {
	fields, ok := h.parseForm(c)
	if !ok {
		return
	}
	result := forms.Validate(fields)
	if !result.OK {
		c.HTML(http.StatusBadRequest, "errors.tmpl", gin.H{
			"Errors":  result.Errors,
			"BackURL": "/",
		})
		return
	}
	rec := h.buildRecord(c, fields, result.Data)
	if err := models.CreatePersonRecord(h.DB, rec); err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "submitted.tmpl", gin.H{
		"PersonID":     rec.Person.ID,
		"PlaceOfBirth": result.Data.PlaceOfBirth,
		"HomeAddress":  result.Data.HomeAddress,
		"Email":        result.Data.Email,
	})
}

// PersonList renders the summary table with edit/delete actions.
func (h *Handler) PersonList(c *gin.Context) {
	persons, err := models.ListPersons(h.DB)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "persons.tmpl", gin.H{
		"Persons": persons,
		"Flash":   takeFlash(c),
	})
}

// EditForm renders the form pre-filled with one stored record.
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}
	rec, err := models.ReadPersonRecord(h.DB, id)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if rec == nil {
		c.HTML(http.StatusNotFound, "error.tmpl", gin.H{"Message": "Person not found."})
		return
	}
	spouse, children, others := splitDependents(rec.Dependents)
	c.HTML(http.StatusOK, "form.tmpl", gin.H{
		"Action":   "/persons/update",
		"Record":   rec,
		"Spouse":   spouse,
		"Children": children,
		"Others":   others,
	})
}

// Update validates and rewrites an existing registration.
func (h *Handler) Update(c *gin.Context) {
	fields, ok := h.parseForm(c)
	if !ok {
		return
	}
	id, ok := parseID(c, fields.Get("person_id"))
	if !ok {
		return
	}
	result := forms.Validate(fields)
	if !result.OK {
		c.HTML(http.StatusBadRequest, "errors.tmpl", gin.H{
			"Errors":  result.Errors,
			"BackURL": "/persons/" + strconv.FormatUint(id, 10) + "/edit",
		})
		return
	}
	rec := h.buildRecord(c, fields, result.Data)
	err := models.UpdatePersonRecord(h.DB, id, rec)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.HTML(http.StatusNotFound, "error.tmpl", gin.H{"Message": "Person not found."})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	setFlash(c, "Record updated.")
	c.Redirect(http.StatusSeeOther, "/persons")
}

// Delete removes a registration and all of its related rows.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c, c.PostForm("id"))
	if !ok {
		return
	}
	err := models.DeletePersonRecord(h.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.HTML(http.StatusNotFound, "error.tmpl", gin.H{"Message": "Person not found."})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	setFlash(c, "Record deleted.")
	c.Redirect(http.StatusSeeOther, "/persons")
}

// ServeUpload streams a stored signature file (or its thumbnail).
func (h *Handler) ServeUpload(c *gin.Context) {
	name := c.Param("name")
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		c.String(http.StatusBadRequest, "invalid file name")
		return
	}
	h.Store.Serve(name, c.Request, c.Writer)
}

// parseForm reads the (usually multipart) request body into a normalized
// field set.
func (h *Handler) parseForm(c *gin.Context) (forms.Fields, bool) {
	err := c.Request.ParseMultipartForm(32 << 20)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.HTML(http.StatusBadRequest, "error.tmpl", gin.H{"Message": "Could not read the submitted form."})
		return nil, false
	}
	return forms.Normalize(c.Request.PostForm), true
}

func parseID(c *gin.Context, raw string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		c.HTML(http.StatusBadRequest, "error.tmpl", gin.H{"Message": "Invalid person ID."})
		return 0, false
	}
	return id, true
}

// serverError rolls up storage failures into a generic page. The underlying
// error is logged; it is shown to the client only in debug mode or when the
// request comes from a local development host.
func (h *Handler) serverError(c *gin.Context, err error) {
	log.Printf("E1 form error: %v", err)
	detail := ""
	if config.DEBUG_MODE || isLocalClient(c) {
		detail = err.Error()
	}
	c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{
		"Message": "Unable to save your form. Please try again.",
		"Detail":  detail,
	})
}

func isLocalClient(c *gin.Context) bool {
	ip := c.ClientIP()
	return ip == "127.0.0.1" || ip == "::1"
}

func splitDependents(deps []models.Dependent) (spouse *models.Dependent, children, others []models.Dependent) {
	for i := range deps {
		switch deps[i].Kind {
		case models.DependentSpouse:
			if spouse == nil {
				spouse = &deps[i]
			}
		case models.DependentChild:
			children = append(children, deps[i])
		case models.DependentOther:
			others = append(others, deps[i])
		}
	}
	return
}

func setFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.Set("flash", message)
	_ = session.Save()
}

func takeFlash(c *gin.Context) string {
	session := sessions.Default(c)
	v := session.Get("flash")
	if v == nil {
		return ""
	}
	session.Delete("flash")
	_ = session.Save()
	message, _ := v.(string)
	return message
}
