package add

import (
	"context"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/printers"
)

type Add struct {
	Diary       *app.Diary
	Form        app.Form
	Interactive bool

	// Prompt fills the form when Interactive is set. Defaults to the
	// terminal prompts.
	Prompt func(app.Form) (app.Form, error)
	Printer *printers.PrettyPrint
}

func (n *Add) Do(ctx context.Context) error {
	form := n.Form
	if n.Interactive {
		prompt := n.Prompt
		if prompt == nil {
			prompt = PromptForm
		}
		var err error
		if form, err = prompt(form); err != nil {
			return err
		}
	}

	e, err := n.Diary.Submit(ctx, form)
	if err != nil {
		return err
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.Submitted()
	pp.Day(e.DateTime.Date(), e)
	return nil
}
