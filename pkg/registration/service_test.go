package registration

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmandi/storefront/ent"
	"github.com/bizmandi/storefront/ent/enttest"
	entevent "github.com/bizmandi/storefront/ent/registrationevent"
	entprofile "github.com/bizmandi/storefront/ent/sellerprofile"
	"github.com/bizmandi/storefront/pkg/cache"
	"github.com/bizmandi/storefront/pkg/commerce"
	"github.com/bizmandi/storefront/pkg/domain"
	"github.com/bizmandi/storefront/pkg/logger"
	"github.com/bizmandi/storefront/pkg/otp"
	"github.com/bizmandi/storefront/pkg/sellerprofile"
	"github.com/bizmandi/storefront/pkg/session"
)

var bodyCodeRegex = regexp.MustCompile(`[0-9]{4,6}`)

// capturingProvider keeps the last sent code so tests can verify it
type capturingProvider struct {
	lastCode string
}

func (p *capturingProvider) SendSMS(ctx context.Context, to, from, body string) (*otp.SendResult, error) {
	p.lastCode = bodyCodeRegex.FindString(body)
	return &otp.SendResult{SID: "SM123", Status: "sent"}, nil
}

// stubCommerce scripts per-call failures to exercise partial-failure
// resume
type stubCommerce struct {
	mu             sync.Mutex
	createCalls    int
	signInCalls    int
	submitCalls    int
	failCreate     bool
	failSignIn     bool
	failSubmit     bool
	createdEmails  []string
	submittedInput commerce.SellerProfileInput
}

func (c *stubCommerce) CreateCustomer(ctx context.Context, in commerce.CustomerInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.createCalls++
	if c.failCreate {
		return domain.NewCollaboratorError("account creation unavailable", nil)
	}
	c.createdEmails = append(c.createdEmails, in.Email)
	return nil
}

func (c *stubCommerce) SignIn(ctx context.Context, email, password string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.signInCalls++
	if c.failSignIn {
		return "", domain.NewCollaboratorError("sign-in unavailable", nil)
	}
	return "tok-123", nil
}

func (c *stubCommerce) SubmitSellerProfile(ctx context.Context, token string, in commerce.SellerProfileInput) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitCalls++
	if c.failSubmit {
		return "", domain.NewCollaboratorError("profile save unavailable", nil)
	}
	c.submittedInput = in
	return "store-42", nil
}

var _ commerce.Client = (*stubCommerce)(nil)

type testEnv struct {
	svc      *Service
	provider *capturingProvider
	commerce *stubCommerce
	mr       *miniredis.Miniredis
	sessions *session.Store
}

func setupTestEnv(t *testing.T) *testEnv {
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { db.Close() })

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { cacheClient.Close() })

	provider := &capturingProvider{}
	otpService := otp.NewService(cacheClient, provider, otp.Config{
		Length:         4,
		TTL:            5 * time.Minute,
		ResendCooldown: time.Minute,
		MaxAttempts:    5,
	})

	sessions := session.NewStore(cacheClient, 24*time.Hour)
	profiles := sellerprofile.NewService(db)
	stub := &stubCommerce{}

	svc := NewService(
		db, cacheClient, sessions, otpService, profiles, stub,
		nil, logger.Default(), "sellers.bizmandi.in", 24*time.Hour,
	)
	return &testEnv{svc: svc, provider: provider, commerce: stub, mr: mr, sessions: sessions}
}

func profileInput() sellerprofile.ProfileInput {
	return sellerprofile.ProfileInput{
		FirstName:    "Asha",
		LastName:     "Patel",
		BusinessName: "Patel Traders",
		Pincode:      "400001",
		PlotNumber:   "12",
		BuildingName: "Tower A",
		StreetName:   "MG Road",
		Landmark:     "Near Park",
		Area:         "Fort",
		City:         "Mumbai",
		State:        "Maharashtra",
		Categories:   []string{"machinery", "tools"},
		CurrentStep:  2,
	}
}

func submitInput() SubmitInput {
	return SubmitInput{
		Profile:         profileInput(),
		Password:        "secret123",
		PasswordConfirm: "secret123",
	}
}

// verify walks a mobile through request + verify so later steps can run
func (e *testEnv) verify(t *testing.T, ctx context.Context, sessionID, mobile string) {
	require.NoError(t, e.svc.RequestCode(ctx, mobile, "1.2.3.4"))
	_, err := e.svc.VerifyCode(ctx, sessionID, mobile, e.provider.lastCode, "1.2.3.4")
	require.NoError(t, err)
}

func TestRequestCode(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	t.Run("Success - valid mobile gets a code", func(t *testing.T) {
		require.NoError(t, env.svc.RequestCode(ctx, "9876543210", "1.2.3.4"))
		assert.Len(t, env.provider.lastCode, 4)
		assert.Equal(t, StateOTPSent, env.svc.CurrentState(ctx, "9876543210"))
	})

	t.Run("Failure - resend inside the cooldown", func(t *testing.T) {
		err := env.svc.RequestCode(ctx, "9876543210", "1.2.3.4")
		require.Error(t, err)
		assert.True(t, domain.IsCooldownActive(err))
	})

	t.Run("Success - resend after the cooldown elapses", func(t *testing.T) {
		env.mr.FastForward(61 * time.Second)
		require.NoError(t, env.svc.RequestCode(ctx, "9876543210", "1.2.3.4"))
	})

	t.Run("Failure - invalid mobile", func(t *testing.T) {
		err := env.svc.RequestCode(ctx, "12345", "1.2.3.4")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - leading digit below 6", func(t *testing.T) {
		err := env.svc.RequestCode(ctx, "5876543210", "1.2.3.4")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestVerifyCode(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.svc.RequestCode(ctx, "9876543210", "1.2.3.4"))

	t.Run("Failure - wrong code keeps the gate closed", func(t *testing.T) {
		_, err := env.svc.VerifyCode(ctx, "sess-1", "9876543210", "0000", "1.2.3.4")
		require.Error(t, err)
		_, ok := env.sessions.SignupGate(ctx, "sess-1")
		assert.False(t, ok)
	})

	t.Run("Success - correct code opens the gate", func(t *testing.T) {
		gate, err := env.svc.VerifyCode(ctx, "sess-1", "9876543210", env.provider.lastCode, "1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, "9876543210", gate.Mobile)
		assert.Equal(t, StateOTPVerified, env.svc.CurrentState(ctx, "9876543210"))
	})

	t.Run("Success - verified gate is monotonic", func(t *testing.T) {
		// a later bad code must not close an already-open gate
		gate, err := env.svc.VerifyCode(ctx, "sess-1", "9876543210", "0000", "1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, "9876543210", gate.Mobile)

		stored, ok := env.sessions.SignupGate(ctx, "sess-1")
		require.True(t, ok)
		assert.Equal(t, "9876543210", stored.Mobile)
	})

	t.Run("Failure - verify without a requested code", func(t *testing.T) {
		_, err := env.svc.VerifyCode(ctx, "sess-2", "9123456780", "1234", "1.2.3.4")
		require.Error(t, err)
	})
}

func TestSaveDraftRequiresVerification(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.SaveDraft(ctx, "9876543210", profileInput(), "1.2.3.4")
	require.Error(t, err)
	assert.True(t, domain.IsUnauthorized(err))

	env.verify(t, ctx, "sess-1", "9876543210")

	p, err := env.svc.SaveDraft(ctx, "9876543210", profileInput(), "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, entprofile.StatusDraft, p.Status)
}

func TestResume(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	env.verify(t, ctx, "sess-1", "9876543210")
	_, err := env.svc.SaveDraft(ctx, "9876543210", profileInput(), "1.2.3.4")
	require.NoError(t, err)

	rec, err := env.svc.Resume(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "12,Tower A,MG Road,Near Park", rec.Address)
	assert.Equal(t, "machinery,tools", rec.Categories)
	assert.Equal(t, 2, rec.CurrentStep)

	_, err = env.svc.Resume(ctx, "9123456780")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestSubmit(t *testing.T) {
	t.Run("Success - full sequence completes", func(t *testing.T) {
		env := setupTestEnv(t)
		ctx := context.Background()
		env.verify(t, ctx, "sess-1", "9876543210")

		p, err := env.svc.Submit(ctx, "sess-1", "9876543210", submitInput(), "1.2.3.4")
		require.NoError(t, err)

		assert.Equal(t, entprofile.StatusFinal, p.Status)
		assert.Equal(t, "store-42", p.StoreID)
		assert.Equal(t, StateDone, env.svc.CurrentState(ctx, "9876543210"))
		assert.Equal(t, []string{"9876543210@sellers.bizmandi.in"}, env.commerce.createdEmails)
		assert.Equal(t, "12,Tower A,MG Road,Near Park", env.commerce.submittedInput.Address)
		assert.Equal(t, "final", env.commerce.submittedInput.Status)

		// completed registrations are locked out of the wizard
		_, ok := env.sessions.SignupGate(ctx, "sess-1")
		assert.False(t, ok)
	})

	t.Run("Failure - submit without verification", func(t *testing.T) {
		env := setupTestEnv(t)
		_, err := env.svc.Submit(context.Background(), "sess-1", "9876543210", submitInput(), "1.2.3.4")
		require.Error(t, err)
		assert.True(t, domain.IsInvalidTransition(err))
	})

	t.Run("Failure - password rules", func(t *testing.T) {
		env := setupTestEnv(t)
		ctx := context.Background()
		env.verify(t, ctx, "sess-1", "9876543210")

		in := submitInput()
		in.Password = "short"
		in.PasswordConfirm = "short"
		_, err := env.svc.Submit(ctx, "sess-1", "9876543210", in, "1.2.3.4")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))

		in = submitInput()
		in.PasswordConfirm = "different1"
		_, err = env.svc.Submit(ctx, "sess-1", "9876543210", in, "1.2.3.4")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))

		in = submitInput()
		in.Profile.Categories = nil
		_, err = env.svc.Submit(ctx, "sess-1", "9876543210", in, "1.2.3.4")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Success - retry resumes past the created account", func(t *testing.T) {
		env := setupTestEnv(t)
		ctx := context.Background()
		env.verify(t, ctx, "sess-1", "9876543210")

		env.commerce.failSignIn = true
		_, err := env.svc.Submit(ctx, "sess-1", "9876543210", submitInput(), "1.2.3.4")
		require.Error(t, err)
		assert.Equal(t, StateFailed, env.svc.CurrentState(ctx, "9876543210"))
		assert.Equal(t, 1, env.commerce.createCalls)

		env.commerce.failSignIn = false
		p, err := env.svc.Submit(ctx, "sess-1", "9876543210", submitInput(), "1.2.3.4")
		require.NoError(t, err)

		// the account was not created a second time
		assert.Equal(t, 1, env.commerce.createCalls)
		assert.Equal(t, entprofile.StatusFinal, p.Status)
		assert.Equal(t, StateDone, env.svc.CurrentState(ctx, "9876543210"))
	})

	t.Run("Failure - account creation failure keeps stage at none", func(t *testing.T) {
		env := setupTestEnv(t)
		ctx := context.Background()
		env.verify(t, ctx, "sess-1", "9876543210")

		env.commerce.failCreate = true
		_, err := env.svc.Submit(ctx, "sess-1", "9876543210", submitInput(), "1.2.3.4")
		require.Error(t, err)
		assert.True(t, domain.IsCollaborator(err))
		assert.Equal(t, 0, env.commerce.signInCalls)
	})
}

func TestRegistrationEventsRecorded(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	env.verify(t, ctx, "sess-1", "9876543210")

	_, err := env.svc.Submit(ctx, "sess-1", "9876543210", submitInput(), "1.2.3.4")
	require.NoError(t, err)

	events, err := env.svc.db.RegistrationEvent.Query().
		Where(entevent.MobileEQ("9876543210")).
		Order(ent.Asc(entevent.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)

	var kinds []entevent.Event
	for _, e := range events {
		kinds = append(kinds, e.Event)
	}
	assert.Equal(t, []entevent.Event{
		entevent.EventOtpRequested,
		entevent.EventOtpVerified,
		entevent.EventDraftSaved,
		entevent.EventAccountCreated,
		entevent.EventSignedIn,
		entevent.EventProfileSaved,
		entevent.EventCompleted,
	}, kinds)
}

func TestStateTransitions(t *testing.T) {
	cases := []struct {
		from, to State
		allowed  bool
	}{
		{StateMobile, StateOTPSent, true},
		{StateOTPSent, StateOTPSent, true},
		{StateOTPSent, StateOTPVerified, true},
		{StateOTPVerified, StateSubmitting, true},
		{StateOTPVerified, StateOTPSent, true},
		{StateSubmitting, StateDone, true},
		{StateSubmitting, StateFailed, true},
		{StateFailed, StateSubmitting, true},
		{StateMobile, StateOTPVerified, false},
		{StateMobile, StateSubmitting, false},
		{StateDone, StateOTPSent, false},
		{StateDone, StateSubmitting, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}

	assert.Equal(t, StateOTPVerified, ParseState("otp_verified"))
	assert.Equal(t, StateMobile, ParseState("garbage"))
}
