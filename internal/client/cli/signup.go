package cli

import (
	"context"
	"fmt"

	"github.com/forcreators/forcreators-cli/internal/client/models"
)

// getSimpleText, getTextDefault and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText  = GetSimpleText
	getTextDefault = GetTextDefault
	getPassword    = GetPassword
	getMultiline   = GetMultiline
)

// signup collects the registration form and submits it. Validation and
// status handling live in the service; this method only gathers input and
// renders the outcome.
func (a *App) signup(ctx context.Context) error {
	form, err := a.readSignupForm()
	if err != nil {
		return err
	}

	err = a.profile.SubmitSignup(ctx, form)
	st := a.profile.State()
	fmt.Fprintln(a.out, st.SignupStatus)
	if err == nil {
		a.show()
	}
	return err
}

func (a *App) readSignupForm() (models.SignupForm, error) {
	var form models.SignupForm
	var err error

	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return form, err
	}
	if form.Password, err = getPassword(a.out); err != nil {
		return form, err
	}
	if form.Platform, err = getTextDefault(a.reader, "Piattaforma principale", "instagram", a.out); err != nil {
		return form, err
	}
	if form.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return form, err
	}
	if form.Followers, err = getSimpleText(a.reader, "Follower complessivi", a.out); err != nil {
		return form, err
	}
	if form.Profiles, err = getTextDefault(a.reader, "Profili che gestisci", "1", a.out); err != nil {
		return form, err
	}
	return form, nil
}
