package server

import "github.com/rooftroops/estimator/internal/model"

// EstimateResponse is the JSON body returned by the API endpoint.
type EstimateResponse struct {
	Reference     string           `json:"reference"`
	Job           model.JobInfo    `json:"job"`
	CoreItems     []model.LineItem `json:"core_items"`
	OptionalItems []model.LineItem `json:"optional_items"`
	GrandTotal    float64          `json:"grand_total"`
	PDFFile       string           `json:"pdf_file"`
}

// FromEstimate shapes a computed estimate and its rendered document
// name into the response DTO.
func FromEstimate(e model.Estimate, pdfFile string) EstimateResponse {
	return EstimateResponse{
		Reference:     e.Reference,
		Job:           e.Job,
		CoreItems:     e.CoreItems,
		OptionalItems: e.OptionalItems,
		GrandTotal:    e.GrandTotal(),
		PDFFile:       pdfFile,
	}
}
