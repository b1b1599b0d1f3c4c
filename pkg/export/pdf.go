package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"tableflip.dev/tourdiary/pkg/entry"
)

const PDFTitle = "Tour Diary Entry"

// PDF writes a single-page A4 document for e. Offsets are millimetres from
// the top-left corner.
func PDF(w io.Writer, e entry.Entry, created time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(PDFTitle+": "+e.Topic, true)
	pdf.SetCreator("tourdiary", true)
	if !created.IsZero() {
		pdf.SetCreationDate(created)
		pdf.SetModificationDate(created)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(10, 10, PDFTitle)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(10, 20, tr("Topic: "+e.Topic))
	pdf.Text(10, 30, tr("Place: "+e.Place))
	pdf.Text(10, 40, tr("Purpose: "+e.Purpose))
	pdf.Text(10, 50, tr("Date & Time: "+e.DateTime.DateTime()))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: pdf: %w", err)
	}
	return nil
}
