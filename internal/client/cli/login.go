package cli

import (
	"context"
	"fmt"

	"github.com/forcreators/forcreators-cli/internal/client/models"
)

// login prompts for credentials and runs the authentication flow.
func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	err = a.profile.SubmitLogin(ctx, models.LoginForm{Email: email, Password: password})
	st := a.profile.State()
	fmt.Fprintln(a.out, st.LoginStatus)
	if err == nil {
		a.show()
	}
	return err
}
