package web

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saijayin/agenda/internal/agg"
	"github.com/saijayin/agenda/internal/importer"
	"github.com/saijayin/agenda/internal/store"
	"github.com/saijayin/agenda/internal/task"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// taskPayload is the JSON body of task create/update requests.
type taskPayload struct {
	DateISO  string `json:"dateISO"`
	DayIndex int    `json:"dayIndex"`
	Title    string `json:"title"`
	Dept     string `json:"dept"`
	Owner    string `json:"owner"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

func (p taskPayload) draft() store.Draft {
	return store.Draft{
		DateISO:  p.DateISO,
		DayIndex: p.DayIndex,
		Title:    p.Title,
		Dept:     p.Dept,
		Owner:    p.Owner,
		Progress: p.Progress,
		Status:   p.Status,
		Priority: p.Priority,
	}
}

func filterFromQuery(c *gin.Context) agg.Filter {
	return agg.Filter{
		Dept:   c.Query("dept"),
		Owner:  c.Query("owner"),
		Status: task.Status(c.Query("status")),
	}
}

// Web handlers

func (s *Server) handleBoard(c *gin.Context) {
	view, err := s.svc.Week(c.Query("start"), filterFromQuery(c))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": err.Error()})
		return
	}
	chart, err := s.svc.ChartData(view.Anchor)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "board.html", gin.H{
		"view":  view,
		"chart": chart,
	})
}

// API handlers

func (s *Server) handleAPIWeek(c *gin.Context) {
	view, err := s.svc.Week(c.Query("start"), filterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "week": view})
}

func (s *Server) handleAPIChart(c *gin.Context) {
	chart, err := s.svc.ChartData(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "chart": chart})
}

func (s *Server) handleAPICreate(c *gin.Context) {
	var payload taskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON: " + err.Error()})
		return
	}

	created, err := s.svc.CreateTask(payload.draft())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "task": created})
}

func (s *Server) handleAPIUpdate(c *gin.Context) {
	var payload taskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON: " + err.Error()})
		return
	}

	updated, err := s.svc.UpdateTask(c.Param("id"), payload.draft())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "task": updated})
}

func (s *Server) handleAPIDelete(c *gin.Context) {
	if err := s.svc.DeleteTask(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleAPISetWeek(c *gin.Context) {
	var payload struct {
		Start string `json:"start"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON: " + err.Error()})
		return
	}

	anchor, err := s.svc.SetWeek(payload.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "anchor": anchor})
}

func (s *Server) handleAPIImport(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file field required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	defer f.Close()

	count, err := s.svc.Import(f, c.Query("start"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "imported": count})
}

func (s *Server) handleAPIExport(c *gin.Context) {
	var buf bytes.Buffer
	name, err := s.svc.Export(&buf, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (s *Server) handleAPITemplate(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.svc.Template(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="plantilla_agenda_semanal.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, task.ErrMissingField), errors.Is(err, importer.ErrNoRows):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
