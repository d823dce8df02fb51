package cli

import (
	"context"
	"fmt"
)

// mediaKit regenerates the media kit snapshot and renders the result.
func (a *App) mediaKit(ctx context.Context) error {
	err := a.profile.RegenerateMediaKit(ctx)
	st := a.profile.State()
	fmt.Fprintln(a.out, st.MediaKitStatus)
	if err == nil {
		a.show()
	}
	return err
}
