package services

import (
	"errors"

	"github.com/forcreators/forcreators-cli/internal/client/api"
)

// Status slot texts. These are user-facing and rendered verbatim.
const (
	StatusSignupInProgress = "Creo l'account e calcolo il segmento..."
	StatusSignupDone       = "Account creato. Segmento calcolato."
	fallbackSignup         = "Errore durante la registrazione."

	StatusLoginInProgress = "Verifico i dati di accesso..."
	StatusLoginDone       = "Accesso effettuato."
	fallbackLogin         = "Errore durante il login."

	StatusMediaKitInProgress   = "Genero il media kit con i prezzi suggeriti..."
	StatusMediaKitDone         = "Media kit aggiornato."
	StatusMediaKitNeedsAccount = "Crea o carica prima un account."
	fallbackMediaKit           = "Errore nel media kit."

	StatusContactDone = "Messaggio inviato, ti risponderemo via email."
	fallbackContact   = "Errore durante l'invio del messaggio."
)

var (
	// ErrBusy rejects a flow invocation while a previous one is in flight.
	ErrBusy = errors.New("Operazione già in corso, attendi.")
	// ErrNoAccount means a media kit was requested with no identity loaded.
	ErrNoAccount = errors.New(StatusMediaKitNeedsAccount)
)

// statusMessage picks the text for a failed call: the server-supplied detail
// when the gateway captured one, the flow's fallback otherwise.
func statusMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
