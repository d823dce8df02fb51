package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/forcreators/forcreators-cli/internal/client/format"
	"github.com/forcreators/forcreators-cli/internal/client/services"
)

// show renders the dashboard from a fresh state snapshot.
func (a *App) show() {
	RenderDashboard(a.out, a.profile.State())
}

// RenderDashboard writes the textual dashboard for the given snapshot. It is
// a pure derivation: same snapshot in, same text out, no state touched.
func RenderDashboard(w io.Writer, st services.SessionState) {
	if st.User == nil {
		fmt.Fprintln(w, "Nessun account caricato. Usa 'signup' o 'login'.")
		return
	}

	user := st.User
	plan := user.Plan

	section(w, "La tua posizione nel mondo social")
	fmt.Fprintf(w, "  %s\n", format.SegmentLabel(user.Segment))

	section(w, "Segmento & piano consigliato")
	row(w, "Piano", plan.Label)
	row(w, "Segmento", strings.ToUpper(string(user.Segment)))
	if plan.Description != "" {
		row(w, "Descrizione", plan.Description)
	}
	row(w, "Al mese", format.PriceValue(plan.MonthlyPrice))
	row(w, "All'anno", format.Price(plan.YearlyPrice))
	if plan.BillingNote != "" {
		row(w, "Nota", plan.BillingNote)
	}

	section(w, "Dati di base profilo")
	row(w, "Email", user.Email)
	row(w, "Piattaforma", user.MainPlatform)
	row(w, "Username", user.Username)
	row(w, "Follower complessivi", format.Count(user.Followers))
	row(w, "Profili gestiti", fmt.Sprintf("%d", user.ProfilesCount))

	section(w, "Media kit & prezzi suggeriti")
	if st.MediaKit != nil {
		kit := st.MediaKit
		row(w, "Profilo", fmt.Sprintf("%s su %s", kit.Username, kit.MainPlatform))
		row(w, "Segmento", kit.SegmentLabel)
		row(w, "Follower", format.Count(kit.Followers))
		row(w, "Views post stimate", format.Count(kit.Estimated.PostAvgViews))
		row(w, "Views stories stimate", format.Count(kit.Estimated.StoryAvgViews))
		row(w, "Post singolo", format.PriceValue(kit.SuggestedRates.SinglePost))
		row(w, "Story singola", format.PriceValue(kit.SuggestedRates.SingleStory))
		row(w, "Pacchetto post + 3 stories", format.PriceValue(kit.SuggestedRates.BundlePost3Stories))
	} else {
		fmt.Fprintln(w, "  Nessun media kit generato. Usa 'kit' per generarlo.")
	}

	section(w, "Consigli per il tuo profilo")
	if st.Tips.State == services.TipsLoaded && st.Tips.Tips != nil {
		tips := st.Tips.Tips
		fmt.Fprintf(w, "  %s\n", tips.Level)
		if tips.Summary != "" {
			fmt.Fprintf(w, "  %s\n", tips.Summary)
		}
		for _, tip := range tips.Tips {
			fmt.Fprintf(w, "  • %s\n", tip)
		}
	} else {
		fmt.Fprintln(w, "  Suggerimenti non disponibili")
	}
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-28s %s\n", label, value)
}
