package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rooftroops/estimator/internal/catalog"
	"github.com/rooftroops/estimator/internal/config"
	"github.com/rooftroops/estimator/internal/estimate"
	"github.com/rooftroops/estimator/internal/export"
	"github.com/rooftroops/estimator/internal/geometry"
	"github.com/rooftroops/estimator/internal/model"
)

// Client-fault conditions on the upload, reported as HTTP 400.
var (
	ErrNoFilePart  = errors.New("no file part in the request")
	ErrNoFileName  = errors.New("no XML selected for uploading")
	ErrBadFileType = errors.New("allowed file types: .xml")
)

// EstimateHandler runs the upload-to-quote pipeline: store the XML,
// load the catalog, extract the geometry, price the materials, render
// the PDF.
type EstimateHandler struct {
	cfg     config.Config
	profile model.CompanyProfile
}

func NewEstimateHandler(cfg config.Config, profile model.CompanyProfile) *EstimateHandler {
	return &EstimateHandler{cfg: cfg, profile: profile}
}

// UploadForm serves the intake page.
func (h *EstimateHandler) UploadForm(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := uploadPage.Execute(c.Writer, map[string]string{"Company": h.profile.Name}); err != nil {
		log.Printf("upload form render failed: %v", err)
	}
}

// CreateEstimatePDF handles the browser form: it runs the pipeline and
// returns the rendered quote as a download.
func (h *EstimateHandler) CreateEstimatePDF(c *gin.Context) {
	_, pdfPath, err := h.runPipeline(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.FileAttachment(pdfPath, filepath.Base(pdfPath))
}

// CreateEstimateJSON handles API clients: same pipeline, itemized JSON
// body instead of the document.
func (h *EstimateHandler) CreateEstimateJSON(c *gin.Context) {
	est, pdfPath, err := h.runPipeline(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, FromEstimate(est, filepath.Base(pdfPath)))
}

// runPipeline executes the full synchronous flow for one request and
// returns the estimate plus the path of the rendered PDF.
func (h *EstimateHandler) runPipeline(c *gin.Context) (model.Estimate, string, error) {
	xmlPath, err := h.saveUpload(c)
	if err != nil {
		return model.Estimate{}, "", err
	}

	result, err := catalog.LoadFile(h.cfg.CatalogPath)
	if err != nil {
		return model.Estimate{}, "", fmt.Errorf("cannot load price catalog: %w", err)
	}
	for _, w := range result.Warnings {
		log.Printf("catalog: %s", w)
	}

	geom := geometry.Extract(xmlPath)
	est := estimate.Build(geom, result.Catalog, jobFromForm(c))

	pdfPath := filepath.Join(h.cfg.OutputDir, fmt.Sprintf("estimate_%s.pdf", est.Reference))
	if err := export.WriteEstimatePDF(est, h.profile, pdfPath); err != nil {
		return model.Estimate{}, "", fmt.Errorf("cannot render estimate PDF: %w", err)
	}
	return est, pdfPath, nil
}

// saveUpload validates the multipart file part and stores it in the
// uploads directory under a collision-free name.
func (h *EstimateHandler) saveUpload(c *gin.Context) (string, error) {
	file, err := c.FormFile("xmlfile")
	if err != nil {
		// An empty file input arrives as a blank text field, not a
		// file part.
		if _, ok := c.GetPostForm("xmlfile"); ok {
			return "", ErrNoFileName
		}
		return "", ErrNoFilePart
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".xml" {
		return "", ErrBadFileType
	}

	name := fmt.Sprintf("%s_%s", uuid.New().String()[:8], filepath.Base(file.Filename))
	path := filepath.Join(h.cfg.UploadDir, name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", fmt.Errorf("cannot store upload: %w", err)
	}
	return path, nil
}

// fail maps pipeline errors to HTTP statuses in one place: the upload
// sentinels are client faults, everything else is a server fault.
func (h *EstimateHandler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNoFilePart), errors.Is(err, ErrNoFileName), errors.Is(err, ErrBadFileType):
		status = http.StatusBadRequest
	default:
		log.Printf("estimate pipeline failed: %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// jobFromForm collects the optional free-text job fields. Missing
// fields stay empty strings.
func jobFromForm(c *gin.Context) model.JobInfo {
	return model.JobInfo{
		ClientName: c.PostForm("client_name"),
		JobID:      c.PostForm("job_id"),
		Location:   c.PostForm("job_location"),
		RoofType:   c.PostForm("roof_type"),
		PitchText:  c.PostForm("pitch_text"),
	}
}
