package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rooftroops/estimator/internal/model"
)

func sampleEstimate() model.Estimate {
	return model.Estimate{
		Reference: "a1b2c3d4",
		Job: model.JobInfo{
			ClientName: "Ada Lovelace",
			JobID:      "J-1001",
			Location:   "Louisville, KY",
			RoofType:   "Gable",
			PitchText:  "6/12",
		},
		CoreItems: []model.LineItem{
			{Material: "Dimensional Shingle", UnitType: "sq ft", UnitPrice: 150.00, Quantity: 1100.00, TotalCost: 165000.00},
			{Material: "Dumpster", UnitType: "ea", UnitPrice: 450.00, Quantity: 1.00, TotalCost: 450.00},
		},
		OptionalItems: []model.LineItem{
			{Material: "Ridge Vent", UnitType: "linear ft", UnitPrice: 3.00, Quantity: 50.00, TotalCost: 150.00},
		},
	}
}

func renderToTemp(t *testing.T, est model.Estimate, profile model.CompanyProfile) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "estimate.pdf")
	if err := WriteEstimatePDF(est, profile, path); err != nil {
		t.Fatalf("WriteEstimatePDF failed: %v", err)
	}
	return path
}

func TestWriteEstimatePDF_CreatesFile(t *testing.T) {
	path := renderToTemp(t, sampleEstimate(), model.DefaultCompanyProfile())

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("output file is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestWriteEstimatePDF_EmptyEstimate(t *testing.T) {
	est := model.Estimate{Reference: "empty001"}
	path := renderToTemp(t, est, model.DefaultCompanyProfile())

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("output file is empty")
	}
}

func TestWriteEstimatePDF_LongItemListSpansPages(t *testing.T) {
	est := sampleEstimate()
	for i := 0; i < 120; i++ {
		est.CoreItems = append(est.CoreItems, model.LineItem{
			Material:  fmt.Sprintf("Filler Material %d", i),
			UnitType:  "ea",
			UnitPrice: 1.00,
			Quantity:  1.00,
			TotalCost: 1.00,
		})
	}

	shortPath := renderToTemp(t, sampleEstimate(), model.DefaultCompanyProfile())
	longPath := renderToTemp(t, est, model.DefaultCompanyProfile())

	shortInfo, err := os.Stat(shortPath)
	if err != nil {
		t.Fatalf("short output missing: %v", err)
	}
	longInfo, err := os.Stat(longPath)
	if err != nil {
		t.Fatalf("long output missing: %v", err)
	}
	if longInfo.Size() <= shortInfo.Size() {
		t.Errorf("expected the long estimate to produce a larger document: %d <= %d",
			longInfo.Size(), shortInfo.Size())
	}
}

func TestWriteEstimatePDF_NoWebsiteSkipsQR(t *testing.T) {
	profile := model.DefaultCompanyProfile()
	profile.Website = ""

	path := renderToTemp(t, sampleEstimate(), profile)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestWriteEstimatePDF_BadOutputPath(t *testing.T) {
	err := WriteEstimatePDF(sampleEstimate(), model.DefaultCompanyProfile(), "/nonexistent/dir/estimate.pdf")
	if err == nil {
		t.Error("expected error for unwritable output path")
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{450, "$450.00"},
		{999.99, "$999.99"},
		{1234.5, "$1,234.50"},
		{165450.5, "$165,450.50"},
		{1000000, "$1,000,000.00"},
	}
	for _, tc := range cases {
		if got := formatMoney(tc.in); got != tc.want {
			t.Errorf("formatMoney(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{10.5, "10.5"},
		{67.55, "67.55"},
		{1100, "1100"},
	}
	for _, tc := range cases {
		if got := formatQuantity(tc.in); got != tc.want {
			t.Errorf("formatQuantity(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
