// Package services contains the orchestration layer of the client: the
// procedures bound to user actions, sequencing gateway calls and updating
// the session state they own. Rendering code only ever reads snapshots.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/forcreators/forcreators-cli/internal/client/api"
	"github.com/forcreators/forcreators-cli/internal/client/models"
	"github.com/forcreators/forcreators-cli/internal/logging"
)

// Options selects the dependent-fetch policy.
//
// EagerMediaKit controls what happens right after an identity load: when set,
// the media kit is fetched eagerly (the legacy single-screen behavior) and a
// failure there is absorbed like the tips fetch; when unset (the default,
// matching the dashboard screen), the kit stays absent until the user asks
// for it explicitly.
type Options struct {
	EagerMediaKit bool
}

type flow int

const (
	flowSignup flow = iota
	flowLogin
	flowMediaKit
	flowContact
	flowCount
)

// ProfileService owns the session state and runs the signup, login,
// media-kit and contact flows. Each flow carries its own in-flight guard, so
// unrelated flows may overlap but a flow never overlaps itself.
type ProfileService struct {
	client api.Client
	log    logging.Logger
	opts   Options

	mu       sync.Mutex
	state    SessionState
	inFlight [flowCount]bool
}

// NewProfileService builds the orchestrator over the given gateway.
func NewProfileService(client api.Client, log logging.Logger, opts Options) *ProfileService {
	return &ProfileService{client: client, log: log, opts: opts}
}

// State returns a copy of the current session state. The records are
// duplicated so callers cannot mutate what the service owns.
func (s *ProfileService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	if st.MediaKit != nil {
		k := *st.MediaKit
		st.MediaKit = &k
	}
	if st.Tips.Tips != nil {
		t := *st.Tips.Tips
		t.Tips = append([]string(nil), t.Tips...)
		st.Tips.Tips = &t
	}
	return st
}

func (s *ProfileService) update(fn func(st *SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// begin claims the in-flight guard for f, rejecting re-entry with ErrBusy.
func (s *ProfileService) begin(f flow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[f] {
		return ErrBusy
	}
	s.inFlight[f] = true
	return nil
}

func (s *ProfileService) end(f flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight[f] = false
}

// SubmitSignup runs the registration flow: local validation (no call on
// failure), sibling status reset, account creation, then the shared identity
// load. The signup slot ends up with the completion message, the validation
// message, or the server's error text.
func (s *ProfileService) SubmitSignup(ctx context.Context, form models.SignupForm) error {
	if err := s.begin(flowSignup); err != nil {
		return err
	}
	defer s.end(flowSignup)

	req, err := form.Normalize()
	if err != nil {
		s.update(func(st *SessionState) { st.SignupStatus = err.Error() })
		return err
	}

	s.update(func(st *SessionState) {
		st.SignupStatus = StatusSignupInProgress
		st.LoginStatus = ""
		st.MediaKitStatus = ""
	})
	s.log.Info(ctx, "submitting signup", "platform", req.MainPlatform, "followers", req.Followers)

	userID, err := s.client.Signup(ctx, req)
	if err != nil {
		s.log.Warn(ctx, "signup failed", "error", err)
		s.update(func(st *SessionState) { st.SignupStatus = statusMessage(err, fallbackSignup) })
		return fmt.Errorf("signup: %w", err)
	}

	if err := s.loadIdentity(ctx, userID); err != nil {
		s.update(func(st *SessionState) { st.SignupStatus = statusMessage(err, fallbackSignup) })
		return err
	}

	s.update(func(st *SessionState) { st.SignupStatus = StatusSignupDone })
	return nil
}

// SubmitLogin mirrors SubmitSignup with credential-presence validation only.
func (s *ProfileService) SubmitLogin(ctx context.Context, form models.LoginForm) error {
	if err := s.begin(flowLogin); err != nil {
		return err
	}
	defer s.end(flowLogin)

	req, err := form.Normalize()
	if err != nil {
		s.update(func(st *SessionState) { st.LoginStatus = err.Error() })
		return err
	}

	s.update(func(st *SessionState) {
		st.LoginStatus = StatusLoginInProgress
		st.SignupStatus = ""
		st.MediaKitStatus = ""
	})
	s.log.Info(ctx, "submitting login", "email", req.Email)

	userID, err := s.client.Login(ctx, req)
	if err != nil {
		s.log.Warn(ctx, "login failed", "error", err)
		s.update(func(st *SessionState) { st.LoginStatus = statusMessage(err, fallbackLogin) })
		return fmt.Errorf("login: %w", err)
	}

	if err := s.loadIdentity(ctx, userID); err != nil {
		s.update(func(st *SessionState) { st.LoginStatus = statusMessage(err, fallbackLogin) })
		return err
	}

	s.update(func(st *SessionState) { st.LoginStatus = StatusLoginDone })
	return nil
}

// loadIdentity is the sub-sequence shared by signup and login.
//
// The identity fetch is terminal for the parent flow: on failure the error
// propagates and any previously-loaded user stays in place (last-known-good
// beats empty). On success the user is replaced wholesale and the tips fetch
// runs best-effort: its failure clears the tips rather than keeping stale
// ones, and never flips the parent's outcome. With Options.EagerMediaKit the
// kit is refreshed here under the same best-effort rule.
func (s *ProfileService) loadIdentity(ctx context.Context, userID string) error {
	user, err := s.client.GetUser(ctx, userID)
	if err != nil {
		s.log.Warn(ctx, "identity fetch failed", "user_id", userID, "error", err)
		return fmt.Errorf("load identity: %w", err)
	}
	s.update(func(st *SessionState) { st.User = user })

	tips, err := s.client.GetProfileTips(ctx, userID)
	if err != nil {
		s.log.Warn(ctx, "profile tips fetch failed", "user_id", userID, "error", err)
		s.update(func(st *SessionState) { st.Tips = TipsResult{State: TipsFailed} })
	} else {
		s.update(func(st *SessionState) { st.Tips = TipsResult{State: TipsLoaded, Tips: tips} })
	}

	if s.opts.EagerMediaKit {
		kit, err := s.client.GetMediaKit(ctx, userID)
		if err != nil {
			s.log.Warn(ctx, "eager media kit fetch failed", "user_id", userID, "error", err)
		} else {
			s.update(func(st *SessionState) { st.MediaKit = kit })
		}
	}
	return nil
}

// RegenerateMediaKit fetches a fresh media kit for the loaded identity.
// Without one, it sets the instructive message and performs no call. On
// failure the previous kit stays displayed; on success the new snapshot
// replaces it wholesale.
func (s *ProfileService) RegenerateMediaKit(ctx context.Context) error {
	if err := s.begin(flowMediaKit); err != nil {
		return err
	}
	defer s.end(flowMediaKit)

	s.mu.Lock()
	user := s.state.User
	s.mu.Unlock()
	if user == nil {
		s.update(func(st *SessionState) { st.MediaKitStatus = StatusMediaKitNeedsAccount })
		return ErrNoAccount
	}

	s.update(func(st *SessionState) { st.MediaKitStatus = StatusMediaKitInProgress })
	s.log.Info(ctx, "regenerating media kit", "user_id", user.UserID)

	kit, err := s.client.GetMediaKit(ctx, user.UserID)
	if err != nil {
		s.log.Warn(ctx, "media kit fetch failed", "user_id", user.UserID, "error", err)
		s.update(func(st *SessionState) { st.MediaKitStatus = statusMessage(err, fallbackMediaKit) })
		return fmt.Errorf("media kit: %w", err)
	}

	s.update(func(st *SessionState) {
		st.MediaKit = kit
		st.MediaKitStatus = StatusMediaKitDone
	})
	return nil
}

// SendContact validates and submits the contact form. The contact page owns
// its own status line, so the outcome comes back as a string instead of
// touching the dashboard slots.
func (s *ProfileService) SendContact(ctx context.Context, form models.ContactForm) (string, error) {
	if err := s.begin(flowContact); err != nil {
		return err.Error(), err
	}
	defer s.end(flowContact)

	req, err := form.Normalize()
	if err != nil {
		return err.Error(), err
	}

	s.log.Info(ctx, "sending contact message", "subject", req.Subject)
	if err := s.client.SendContact(ctx, req); err != nil {
		s.log.Warn(ctx, "contact message failed", "error", err)
		return statusMessage(err, fallbackContact), fmt.Errorf("contact: %w", err)
	}
	return StatusContactDone, nil
}

// Close releases the underlying gateway resources.
func (s *ProfileService) Close() error {
	return s.client.Close()
}
