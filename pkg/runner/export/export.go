package export

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/commands/options"
	"tableflip.dev/tourdiary/pkg/export"
	"tableflip.dev/tourdiary/pkg/printers"
)

type Kind string

const (
	KindCSV Kind = "csv"
	KindPDF Kind = "pdf"
	KindICS Kind = "ics"
)

type Export struct {
	Diary   *app.Diary
	Kind    Kind
	Index   int
	Options options.ExportOptions
	Printer *printers.PrettyPrint
}

// Do renders the document in memory first so nothing is written when the
// export is refused.
func (n *Export) Do(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		buf  bytes.Buffer
		name string
		err  error
	)
	switch n.Kind {
	case KindCSV:
		name, err = export.CSVFilename, n.Diary.ExportCSV(&buf)
	case KindICS:
		name, err = export.ICSFilename, n.Diary.ExportICS(&buf)
	case KindPDF:
		name, err = n.Diary.ExportPDF(&buf, n.Index)
	default:
		return fmt.Errorf("unknown export kind %q", n.Kind)
	}
	if err != nil {
		return refused(err)
	}

	w, out, err := n.Options.Create(name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, &buf); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	if out != "-" {
		pp := n.Printer
		if pp == nil {
			pp = &printers.PrettyPrint{}
		}
		pp.Message(fmt.Sprintf("Wrote %s", out))
	}
	return nil
}

// refusedError carries the message shown to the user when an export is
// aborted while keeping the sentinel for errors.Is.
type refusedError struct {
	msg string
	err error
}

func (e *refusedError) Error() string { return e.msg }

func (e *refusedError) Unwrap() error { return e.err }

func refused(err error) error {
	if msg := export.Message(err); msg != "" {
		return &refusedError{msg: msg, err: err}
	}
	return err
}
