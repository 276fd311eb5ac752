// Package server exposes the HTTP API for uploading, querying and
// exporting reservation documents.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"

	"github.com/juhum/hotel-reservations/internal/document"
	"github.com/juhum/hotel-reservations/internal/export"
	"github.com/juhum/hotel-reservations/internal/store"
)

// Gateway is the slice of the store the HTTP layer depends on.
type Gateway interface {
	Replace(ctx context.Context, sections map[string][]interface{}) (store.Counts, error)
	FetchAll(ctx context.Context) (map[string]interface{}, error)
}

type Handler struct {
	store Gateway
}

func NewHandler(g Gateway) *Handler {
	return &Handler{store: g}
}

func (h *Handler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to Hotel Reservations API"})
}

// Health is a liveness endpoint for load balancers and monitoring.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

type uploadResponse struct {
	Message string `json:"message"`
	store.Counts
}

// UploadReservations ingests a YAML document: shallow check that the
// three record sets are present, date normalization, then a
// clear-and-replace into the store. Deeper shape validation is left to
// the offline tooling.
func (h *Handler) UploadReservations(c echo.Context) error {
	doc, err := readDocument(c)
	if err != nil {
		return err
	}

	sections := make(map[string][]interface{}, len(document.Sections))
	for _, name := range document.Sections {
		raw, ok := doc[name]
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing required section: "+name)
		}
		records, ok := document.NormalizeDates(raw).([]interface{})
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Section %s must be a list", name))
		}
		sections[name] = records
	}

	counts, err := h.store.Replace(c.Request().Context(), sections)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, uploadResponse{
		Message: "Data uploaded successfully",
		Counts:  counts,
	})
}

// GetData returns all three record sets as stored, minus internal
// identifiers.
func (h *Handler) GetData(c echo.Context) error {
	data, err := h.store.FetchAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, data)
}

// YAMLToCSV converts an uploaded document into a downloadable CSV
// attachment without touching the store.
func (h *Handler) YAMLToCSV(c echo.Context) error {
	doc, err := readDocument(c)
	if err != nil {
		return err
	}
	rows, err := document.Flatten(document.NormalizeDocument(doc))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	data, err := export.CSV(rows)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="hotel_data.csv"`)
	return c.Blob(http.StatusOK, export.ContentTypeCSV, data)
}

// YAMLToHTML converts an uploaded document into a downloadable HTML
// attachment without touching the store.
func (h *Handler) YAMLToHTML(c echo.Context) error {
	doc, err := readDocument(c)
	if err != nil {
		return err
	}
	data, err := export.HTML(document.NormalizeDocument(doc))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="hotel_data.html"`)
	return c.Blob(http.StatusOK, export.ContentTypeHTML, data)
}

// readDocument pulls the multipart "file" field and parses it as YAML.
// All failures here are client errors.
func readDocument(c echo.Context) (map[string]interface{}, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Missing file upload")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid YAML format: "+err.Error())
	}
	return doc, nil
}
