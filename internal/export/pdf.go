// Package export renders computed estimates as printable quote
// documents.
package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rooftroops/estimator/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// Page layout constants (US Letter portrait in mm).
const (
	pageWidth    = 215.9 // US Letter width in mm
	pageHeight   = 279.4 // US Letter height in mm
	marginLeft   = 25.4
	marginRight  = 25.4
	marginTop    = 25.4
	marginBottom = 25.4

	contentWidth = pageWidth - marginLeft - marginRight

	headerIndent = 56.4  // letterhead text offset from the left edge
	dateColumnX  = 105.8 // right column of the signature block

	lineStep   = 5.6 // labeled info line spacing
	itemStep   = 4.9 // material line spacing
	termStep   = 4.2 // terms body line spacing
	sectionGap = 8.5

	bulletIndent = 4.0

	totalBoxHeight = 10.6
	totalBoxY      = pageHeight - 31.8 // top edge of the total box
	footerY        = pageHeight - 10.6

	qrSize = 16.0
)

// flowBottom is the lowest y the flowing content may reach; the total
// box and footer own the band below it.
const flowBottom = totalBoxY - sectionGap

// WriteEstimatePDF renders one estimate to a quote PDF at outputPath.
// The company profile supplies the letterhead, the terms paragraphs,
// and the footer line. Long item lists continue on additional pages;
// the total box and footer always land on the last page.
func WriteEstimatePDF(est model.Estimate, profile model.CompanyProfile, outputPath string) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	y := renderLetterhead(pdf, profile)
	// The QR is drawn while the letterhead page is still current;
	// later sections may start fresh pages.
	if profile.Website != "" {
		if err := renderQR(pdf, profile, est.Reference); err != nil {
			return err
		}
	}
	y = renderJobInfo(pdf, y, est.Job)
	y = renderItemSection(pdf, y, "REQUIRED MATERIALS", est.CoreItems)
	y = renderItemSection(pdf, y, "OPTIONAL UPGRADES", est.OptionalItems)
	y = renderTerms(pdf, y, profile.Terms)
	renderSignature(pdf, y)
	renderTotalBox(pdf, est.GrandTotal())
	renderFooter(pdf, profile)

	return pdf.OutputFileAndClose(outputPath)
}

// ensureRoom starts a new page when fewer than need mm of flow area
// remain and returns the y cursor to continue from.
func ensureRoom(pdf *fpdf.Fpdf, y, need float64) float64 {
	if y+need <= flowBottom {
		return y
	}
	pdf.AddPage()
	return marginTop
}

// renderLetterhead draws the company header block and separator line,
// returning the y where the body starts.
func renderLetterhead(pdf *fpdf.Fpdf, profile model.CompanyProfile) float64 {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(headerIndent, marginTop-3)
	pdf.CellFormat(pageWidth-headerIndent-marginRight, 8, profile.Name, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(headerIndent, 30.3)
	pdf.CellFormat(pageWidth-headerIndent-marginRight, 4.5, profile.AddressLine, "", 0, "L", false, 0, "")
	pdf.SetXY(headerIndent, 35.2)
	contact := fmt.Sprintf("Phone: %s | Email: %s", profile.Phone, profile.Email)
	pdf.CellFormat(pageWidth-headerIndent-marginRight, 4.5, contact, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Line(marginLeft, 42.3, pageWidth-marginRight, 42.3)

	return 50.8
}

// renderJobInfo draws the labeled client and job lines.
func renderJobInfo(pdf *fpdf.Fpdf, y float64, job model.JobInfo) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentWidth, 6, "FILE INFORMATION", "", 0, "L", false, 0, "")
	y += lineStep + 0.7

	infoLines := []struct {
		label string
		value string
	}{
		{"Client", job.ClientName},
		{"Job ID", job.JobID},
		{"Location", job.Location},
		{"Roof Type", job.RoofType},
		{"Pitch", job.PitchText},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range infoLines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(contentWidth, 4.5, fmt.Sprintf("%s: %s", line.label, line.value), "", 0, "L", false, 0, "")
		y += lineStep
	}
	return y + sectionGap
}

// renderItemSection draws one titled list of priced materials.
func renderItemSection(pdf *fpdf.Fpdf, y float64, title string, items []model.LineItem) float64 {
	y = ensureRoom(pdf, y, lineStep+itemStep)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentWidth, 6, title, "", 0, "L", false, 0, "")
	y += lineStep

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		y = ensureRoom(pdf, y, itemStep)
		line := fmt.Sprintf("- %s: %s %s = $%.2f",
			item.Material, formatQuantity(item.Quantity), item.UnitType, item.TotalCost)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(contentWidth, 4.5, line, "", 0, "L", false, 0, "")
		y += itemStep
	}
	return y + sectionGap
}

// renderTerms draws the terms paragraphs as wrapped bullets.
func renderTerms(pdf *fpdf.Fpdf, y float64, terms []string) float64 {
	if len(terms) == 0 {
		return y
	}

	y = ensureRoom(pdf, y+4.2, lineStep+2*termStep)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentWidth, 6, "TERMS & CONDITIONS", "", 0, "L", false, 0, "")
	y += lineStep + 0.7

	pdf.SetFont("Helvetica", "", 10)
	for _, term := range terms {
		lines := pdf.SplitText(term, contentWidth-bulletIndent)
		y = ensureRoom(pdf, y, float64(len(lines)+1)*termStep)
		for i, line := range lines {
			if i == 0 {
				pdf.SetXY(marginLeft, y)
				pdf.CellFormat(bulletIndent, termStep, "\x95", "", 0, "L", false, 0, "") // cp1252 bullet
			}
			pdf.SetXY(marginLeft+bulletIndent, y)
			pdf.CellFormat(contentWidth-bulletIndent, termStep, line, "", 0, "L", false, 0, "")
			y += termStep
		}
		y += termStep
	}
	return y
}

// renderSignature draws the client signature and date rules.
func renderSignature(pdf *fpdf.Fpdf, y float64) {
	y = ensureRoom(pdf, y+2.8, 2*lineStep)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(70, 4.5, "_________________________", "", 0, "L", false, 0, "")
	pdf.SetXY(dateColumnX, y)
	pdf.CellFormat(70, 4.5, "_________________________", "", 0, "L", false, 0, "")
	y += lineStep

	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(70, 4.5, "CLIENT SIGNATURE", "", 0, "L", false, 0, "")
	pdf.SetXY(dateColumnX, y)
	pdf.CellFormat(70, 4.5, "DATE", "", 0, "L", false, 0, "")
}

// renderTotalBox draws the filled grand total band near the page
// bottom.
func renderTotalBox(pdf *fpdf.Fpdf, total float64) {
	pdf.SetFillColor(174, 209, 159)
	pdf.Rect(marginLeft, totalBoxY, contentWidth, totalBoxHeight, "F")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	textY := totalBoxY + (totalBoxHeight-5)/2
	pdf.SetXY(marginLeft+2.8, textY)
	pdf.CellFormat(contentWidth/2, 5, "TOTAL ESTIMATE", "", 0, "L", false, 0, "")
	pdf.SetXY(pageWidth/2, textY)
	pdf.CellFormat(pageWidth/2-marginRight-2.8, 5, formatMoney(total), "", 0, "R", false, 0, "")
}

// renderFooter draws the license line at the very bottom.
func renderFooter(pdf *fpdf.Fpdf, profile model.CompanyProfile) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, footerY)
	line := fmt.Sprintf("%s | License #%s | All rights reserved \xa9 %d", // cp1252 copyright sign
		profile.Website, profile.License, time.Now().Year())
	pdf.CellFormat(contentWidth, 4, line, "", 0, "L", false, 0, "")
}

// renderQR embeds a QR code in the letterhead's right corner linking
// the printed quote back to the company site.
func renderQR(pdf *fpdf.Fpdf, profile model.CompanyProfile, reference string) error {
	url := fmt.Sprintf("%s/estimate/%s", profile.Website, reference)
	qrPNG, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := "qr_" + reference
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, marginTop-3, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}

// formatQuantity prints a rounded quantity without trailing zeros.
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// formatMoney renders a dollar amount with comma-grouped thousands,
// e.g. 165450.5 becomes "$165,450.50".
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole := s[:len(s)-3]
	frac := s[len(s)-2:]

	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String() + "." + frac
}
