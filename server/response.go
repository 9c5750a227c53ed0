package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bikeshare "github.com/theoremus-urban-solutions/bikeshare-explorer"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/filter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/paging"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/stats"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

// Error categories reported in the envelope's "error" field.
const (
	CategoryInvalidInput      = "invalid_input"
	CategoryUnknownCity       = "unknown_city"
	CategoryUnsupportedFormat = "unsupported_format"
	CategoryEmptyDataset      = "empty_dataset"
	CategoryDataSource        = "data_source"
	CategoryInternal          = "internal"
)

// categoryKey holds the failure category on the gin context for the logger.
const categoryKey = "bikeshare.category"

// Envelope wraps every JSON answer. Error is empty on success.
type Envelope struct {
	Status  int    `json:"status"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Status: http.StatusOK, Data: data})
}

func reject(c *gin.Context, status int, category string, err error) {
	_ = c.Error(err)
	c.Set(categoryKey, category)
	c.JSON(status, Envelope{Status: status, Error: category, Message: err.Error()})
}

// classify maps pipeline errors onto HTTP statuses and categories.
func classify(err error) (int, string) {
	var inErr *filter.InvalidInputError
	var dsErr *trips.DataSourceError
	switch {
	case errors.Is(err, bikeshare.ErrUnsupportedFormat):
		return http.StatusBadRequest, CategoryUnsupportedFormat
	case errors.Is(err, trips.ErrUnknownCity):
		return http.StatusNotFound, CategoryUnknownCity
	case errors.Is(err, stats.ErrEmptyDataset):
		return http.StatusUnprocessableEntity, CategoryEmptyDataset
	case errors.As(err, &inErr), errors.Is(err, paging.ErrPageSize), errors.Is(err, paging.ErrPage):
		return http.StatusBadRequest, CategoryInvalidInput
	case errors.As(err, &dsErr):
		return http.StatusInternalServerError, CategoryDataSource
	default:
		return http.StatusInternalServerError, CategoryInternal
	}
}

func fail(c *gin.Context, err error) {
	status, category := classify(err)
	reject(c, status, category, err)
}
