package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	st := a.profile.State()
	if st.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s · %s)", st.User.Username, st.User.Segment)
}

// Root runs the interactive command loop.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Benvenuto in ForCreators CLI (digita 'help' per i comandi)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "fc %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.profile.State().LoggedIn() {
				fmt.Fprintln(a.out, "Comandi disponibili: show, kit, login, signup, contact, exit")
			} else {
				fmt.Fprintln(a.out, "Comandi disponibili: signup, login, contact, exit")
			}
		case "signup":
			a.signup(ctx)
		case "login":
			a.login(ctx)
		case "kit":
			a.mediaKit(ctx)
		case "show":
			a.show()
		case "contact":
			a.contact(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Ciao!")
			return
		default:
			fmt.Fprintln(a.out, "Comando sconosciuto:", parts[0])
		}
	}
}
