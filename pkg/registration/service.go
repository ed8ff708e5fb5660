package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/bizmandi/storefront/ent"
	entevent "github.com/bizmandi/storefront/ent/registrationevent"
	entprofile "github.com/bizmandi/storefront/ent/sellerprofile"
	"github.com/bizmandi/storefront/pkg/cache"
	"github.com/bizmandi/storefront/pkg/commerce"
	"github.com/bizmandi/storefront/pkg/domain"
	"github.com/bizmandi/storefront/pkg/logger"
	"github.com/bizmandi/storefront/pkg/otp"
	"github.com/bizmandi/storefront/pkg/phone"
	"github.com/bizmandi/storefront/pkg/sellerprofile"
	"github.com/bizmandi/storefront/pkg/session"
)

// Mailer sends the post-registration welcome mail
type Mailer interface {
	SendSellerWelcomeEmail(toEmail, toName, businessName string) error
}

// SubmitInput is the final wizard step: the full profile snapshot plus
// the credentials for the commerce account. Passwords pass through to
// the commerce backend and are never persisted here.
type SubmitInput struct {
	Profile         sellerprofile.ProfileInput
	Password        string
	PasswordConfirm string
	IsSubscribed    bool
}

// Service drives the seller signup flow: OTP verification, draft
// persistence, and the final submission sequence against the commerce
// backend.
type Service struct {
	db          *ent.Client
	cache       *cache.Client
	sessions    *session.Store
	otp         *otp.Service
	profiles    *sellerprofile.Service
	commerce    commerce.Client
	mailer      Mailer
	log         logger.Logger
	emailDomain string
	stateTTL    time.Duration
}

// NewService creates a new registration service
func NewService(
	db *ent.Client,
	cacheClient *cache.Client,
	sessions *session.Store,
	otpService *otp.Service,
	profiles *sellerprofile.Service,
	commerceClient commerce.Client,
	mailer Mailer,
	log logger.Logger,
	emailDomain string,
	stateTTL time.Duration,
) *Service {
	return &Service{
		db:          db,
		cache:       cacheClient,
		sessions:    sessions,
		otp:         otpService,
		profiles:    profiles,
		commerce:    commerceClient,
		mailer:      mailer,
		log:         log,
		emailDomain: emailDomain,
		stateTTL:    stateTTL,
	}
}

func stateKey(mobile string) string {
	return fmt.Sprintf("registration:state:%s", mobile)
}

// CurrentState returns where the mobile number is in the flow. A mobile
// the store has never seen is at the entry state.
func (s *Service) CurrentState(ctx context.Context, mobile string) State {
	raw, err := s.cache.Get(ctx, stateKey(mobile))
	if err != nil {
		return StateMobile
	}
	return ParseState(raw)
}

func (s *Service) setState(ctx context.Context, mobile string, st State) error {
	if err := s.cache.Set(ctx, stateKey(mobile), st.String(), s.stateTTL); err != nil {
		return fmt.Errorf("failed to persist registration state: %w", err)
	}
	return nil
}

// RequestCode validates the mobile number and issues a verification
// code. Resends go through the same path; the code service enforces the
// cooldown.
func (s *Service) RequestCode(ctx context.Context, mobile, ip string) error {
	if err := phone.ValidateMobile(mobile); err != nil {
		return err
	}

	cur := s.CurrentState(ctx, mobile)
	if err := ensureTransition(cur, StateOTPSent); err != nil {
		return err
	}

	if err := s.otp.Issue(ctx, mobile); err != nil {
		return err
	}

	if err := s.setState(ctx, mobile, StateOTPSent); err != nil {
		return err
	}
	s.recordEvent(ctx, mobile, entevent.EventOtpRequested, "", ip)
	return nil
}

// ResendAvailableIn reports how many seconds remain before another code
// can be requested. Zero means a resend is allowed now.
func (s *Service) ResendAvailableIn(ctx context.Context, mobile string) int {
	return s.otp.ResendAvailableIn(ctx, mobile)
}

// VerifyCode checks the submitted code and, on success, opens the
// signup gate for this session. The gate is monotonic: once a session
// is verified for a mobile number, later failed attempts cannot close
// it again, they just return the verification error.
func (s *Service) VerifyCode(ctx context.Context, sessionID, mobile, code, ip string) (*session.SignupGate, error) {
	if err := phone.ValidateMobile(mobile); err != nil {
		return nil, err
	}

	if gate, ok := s.sessions.SignupGate(ctx, sessionID); ok && gate.Mobile == mobile {
		return gate, nil
	}

	cur := s.CurrentState(ctx, mobile)
	if err := ensureTransition(cur, StateOTPVerified); err != nil {
		return nil, err
	}

	if err := s.otp.Verify(ctx, mobile, code); err != nil {
		return nil, err
	}

	gate := session.SignupGate{Mobile: mobile, VerifiedAt: time.Now()}
	if err := s.sessions.SaveSignupGate(ctx, sessionID, gate); err != nil {
		return nil, err
	}

	if err := s.setState(ctx, mobile, StateOTPVerified); err != nil {
		return nil, err
	}
	s.recordEvent(ctx, mobile, entevent.EventOtpVerified, "", ip)
	return &gate, nil
}

// SaveDraft persists the current form snapshot so the seller can leave
// and resume later. Only a verified mobile number may hold a draft.
func (s *Service) SaveDraft(ctx context.Context, mobile string, in sellerprofile.ProfileInput, ip string) (*ent.SellerProfile, error) {
	cur := s.CurrentState(ctx, mobile)
	if cur != StateOTPVerified && cur != StateFailed {
		return nil, domain.NewUnauthorizedError()
	}

	p, err := s.profiles.SaveDraft(ctx, mobile, in)
	if err != nil {
		return nil, err
	}
	s.recordEvent(ctx, mobile, entevent.EventDraftSaved, fmt.Sprintf("step %d", p.CurrentStep), ip)
	return p, nil
}

// Resume returns the stored draft in the wire shape the wizard
// pre-fills from
func (s *Service) Resume(ctx context.Context, mobile string) (sellerprofile.LegacyRecord, error) {
	p, err := s.profiles.GetByMobile(ctx, mobile)
	if err != nil {
		return sellerprofile.LegacyRecord{}, err
	}
	return sellerprofile.ToLegacy(p), nil
}

// Submit runs the final sequence: create the commerce account, sign in,
// push the business profile, then mark the local record final. The
// three network calls are not one transaction, so the furthest
// completed stage is persisted and a retry after a partial failure
// resumes instead of repeating.
func (s *Service) Submit(ctx context.Context, sessionID, mobile string, in SubmitInput, ip string) (*ent.SellerProfile, error) {
	if err := validateSubmit(in); err != nil {
		return nil, err
	}

	cur := s.CurrentState(ctx, mobile)
	if err := ensureTransition(cur, StateSubmitting); err != nil {
		return nil, err
	}
	if err := s.setState(ctx, mobile, StateSubmitting); err != nil {
		return nil, err
	}

	in.Profile.CurrentStep = 3
	p, err := s.profiles.SaveDraft(ctx, mobile, in.Profile)
	if err != nil {
		return nil, s.failSubmit(ctx, mobile, "draft save", err, ip)
	}
	s.recordEvent(ctx, mobile, entevent.EventDraftSaved, fmt.Sprintf("step %d", p.CurrentStep), ip)

	email := commerce.SynthesizeEmail(mobile, s.emailDomain)

	if p.SubmitStage == entprofile.SubmitStageNone {
		// the commerce account carries the mobile in its prefix field
		err := s.commerce.CreateCustomer(ctx, commerce.CustomerInput{
			Email:        email,
			Password:     in.Password,
			Prefix:       mobile,
			Firstname:    in.Profile.FirstName,
			Lastname:     in.Profile.LastName,
			IsSubscribed: in.IsSubscribed,
		})
		if err != nil {
			return nil, s.failSubmit(ctx, mobile, "account creation", err, ip)
		}
		if err := s.profiles.SetSubmitStage(ctx, mobile, entprofile.SubmitStageAccountCreated); err != nil {
			return nil, s.failSubmit(ctx, mobile, "account creation", err, ip)
		}
		s.recordEvent(ctx, mobile, entevent.EventAccountCreated, "", ip)
	}

	// The token is not persisted, so a resumed submission signs in again
	token, err := s.commerce.SignIn(ctx, email, in.Password)
	if err != nil {
		return nil, s.failSubmit(ctx, mobile, "sign-in", err, ip)
	}
	if err := s.profiles.SetSubmitStage(ctx, mobile, entprofile.SubmitStageSignedIn); err != nil {
		return nil, s.failSubmit(ctx, mobile, "sign-in", err, ip)
	}
	s.recordEvent(ctx, mobile, entevent.EventSignedIn, "", ip)

	storeID, err := s.commerce.SubmitSellerProfile(ctx, token, legacyInput(mobile, email, in.Profile))
	if err != nil {
		return nil, s.failSubmit(ctx, mobile, "profile save", err, ip)
	}
	s.recordEvent(ctx, mobile, entevent.EventProfileSaved, storeID, ip)

	final, err := s.profiles.Finalize(ctx, mobile, storeID)
	if err != nil {
		return nil, s.failSubmit(ctx, mobile, "finalize", err, ip)
	}

	if err := s.setState(ctx, mobile, StateDone); err != nil {
		return nil, err
	}
	s.recordEvent(ctx, mobile, entevent.EventCompleted, "", ip)

	// The gate is single-use: a completed registration does not keep the
	// wizard unlocked
	if err := s.sessions.ClearSignupGate(ctx, sessionID); err != nil {
		s.log.Warn("failed to clear signup gate", "mobile", mobile, "error", err)
	}

	if in.Profile.Email != "" && s.mailer != nil {
		go func(to, name, business string) {
			if err := s.mailer.SendSellerWelcomeEmail(to, name, business); err != nil {
				s.log.Warn("failed to send welcome email", "mobile", mobile, "error", err)
			}
		}(in.Profile.Email, in.Profile.FirstName, in.Profile.BusinessName)
	}

	return final, nil
}

func (s *Service) failSubmit(ctx context.Context, mobile, stage string, err error, ip string) error {
	if stErr := s.setState(ctx, mobile, StateFailed); stErr != nil {
		s.log.Error("failed to record failed state", "mobile", mobile, "error", stErr)
	}
	s.recordEvent(ctx, mobile, entevent.EventFailed, fmt.Sprintf("%s: %v", stage, err), ip)
	return err
}

func validateSubmit(in SubmitInput) error {
	if len(in.Password) < 8 {
		return domain.NewValidationError("Password must be at least 8 characters")
	}
	if in.Password != in.PasswordConfirm {
		return domain.NewValidationError("Passwords do not match")
	}
	if in.Profile.FirstName == "" || in.Profile.LastName == "" {
		return domain.NewValidationError("First and last name are required")
	}
	if in.Profile.BusinessName == "" {
		return domain.NewValidationError("Business name is required")
	}
	if in.Profile.Pincode == "" {
		return domain.NewValidationError("Pincode is required")
	}
	if len(in.Profile.Categories) == 0 {
		return domain.NewValidationError("Select at least one business category")
	}
	return nil
}

func legacyInput(mobile, email string, in sellerprofile.ProfileInput) commerce.SellerProfileInput {
	contact := in.Email
	if contact == "" {
		contact = email
	}
	return commerce.SellerProfileInput{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		BusinessName: in.BusinessName,
		Email:        contact,
		Mobile:       mobile,
		Whatsapp:     in.Whatsapp,
		Pincode:      in.Pincode,
		Address: sellerprofile.JoinAddress(sellerprofile.Address{
			PlotNumber:   in.PlotNumber,
			BuildingName: in.BuildingName,
			StreetName:   in.StreetName,
			Landmark:     in.Landmark,
		}),
		Area:             in.Area,
		City:             in.City,
		State:            in.State,
		BusinessCategory: sellerprofile.JoinCategories(in.Categories),
		CurrentStep:      3,
		Status:           string(entprofile.StatusFinal),
	}
}

// recordEvent appends to the registration audit trail. Audit failures
// are logged, never surfaced.
func (s *Service) recordEvent(ctx context.Context, mobile string, event entevent.Event, detail, ip string) {
	_, err := s.db.RegistrationEvent.Create().
		SetMobile(mobile).
		SetEvent(event).
		SetDetail(detail).
		SetIPAddress(ip).
		Save(ctx)
	if err != nil {
		s.log.Warn("failed to record registration event", "mobile", mobile, "event", event, "error", err)
	}
}
