package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	bikeshare "github.com/theoremus-urban-solutions/bikeshare-explorer"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/filter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/paging"
)

// maxPageSize bounds raw page requests.
const maxPageSize = 500

// StatsHandler handles HTTP requests for trip statistics and raw rows
type StatsHandler struct {
	analyzer *bikeshare.Analyzer
	reports  *bikeshare.ReportCache
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(analyzer *bikeshare.Analyzer) *StatsHandler {
	return &StatsHandler{
		analyzer: analyzer,
		reports:  bikeshare.NewReportCache(analyzer),
	}
}

// RawPage is the payload of the raw rows endpoint.
type RawPage struct {
	City       string              `json:"city"`
	Rows       []map[string]string `json:"rows"`
	Pagination paging.Info         `json:"pagination"`
}

// GetCities handles GET /api/v1/cities
func (h *StatsHandler) GetCities(c *gin.Context) {
	respond(c, h.analyzer.Vocab.Cities)
}

// GetStats handles GET /api/v1/cities/:city/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	city, ok := h.city(c)
	if !ok {
		return
	}
	f, err := h.analyzer.Filter(c.DefaultQuery("month", filter.All), c.DefaultQuery("day", filter.All))
	if err != nil {
		fail(c, err)
		return
	}

	buf, contentType, err := h.reports.GetResponse(city, f, c.Query("format"))
	if err != nil {
		fail(c, err)
		return
	}
	if contentType == "application/json" {
		respond(c, json.RawMessage(buf))
		return
	}
	c.Data(http.StatusOK, contentType, buf)
}

// GetRaw handles GET /api/v1/cities/:city/raw
func (h *StatsHandler) GetRaw(c *gin.Context) {
	city, ok := h.city(c)
	if !ok {
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		reject(c, http.StatusBadRequest, CategoryInvalidInput, fmt.Errorf("page: %w", err))
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.analyzer.PageSize)))
	if err != nil {
		reject(c, http.StatusBadRequest, CategoryInvalidInput, fmt.Errorf("page_size: %w", err))
		return
	}
	if size > maxPageSize {
		reject(c, http.StatusBadRequest, CategoryInvalidInput, fmt.Errorf("page_size must be at most %d", maxPageSize))
		return
	}

	src, err := h.analyzer.Source(city)
	if err != nil {
		fail(c, err)
		return
	}
	records, info, err := paging.At(src, page, size)
	if err != nil {
		fail(c, err)
		return
	}
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		row := make(map[string]string, len(src.Header))
		for i, col := range src.Header {
			if i < len(r.Raw) {
				row[col] = r.Raw[i]
			}
		}
		rows = append(rows, row)
	}
	respond(c, RawPage{City: src.City, Rows: rows, Pagination: info})
}

func (h *StatsHandler) city(c *gin.Context) (string, bool) {
	city, err := h.analyzer.City(c.Param("city"))
	if err != nil {
		reject(c, http.StatusNotFound, CategoryUnknownCity, err)
		return "", false
	}
	return city, true
}
