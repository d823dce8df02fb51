package cli

import (
	"context"
	"fmt"

	"github.com/forcreators/forcreators-cli/internal/client/models"
)

// contact collects and submits the contact form; the outcome text comes
// back from the service and is printed as-is.
func (a *App) contact(ctx context.Context) error {
	var form models.ContactForm
	var err error

	if form.Name, err = getSimpleText(a.reader, "Nome", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Subject, err = getSimpleText(a.reader, "Oggetto", a.out); err != nil {
		return err
	}
	if form.Message, err = getMultiline(a.reader, "Messaggio", a.out); err != nil {
		return err
	}

	msg, err := a.profile.SendContact(ctx, form)
	fmt.Fprintln(a.out, msg)
	return err
}
