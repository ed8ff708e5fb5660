package otp

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmandi/storefront/pkg/cache"
	"github.com/bizmandi/storefront/pkg/domain"
)

// capturingProvider records sent messages and extracts the code from the
// message body so tests can verify it
type capturingProvider struct {
	sent     []string
	lastCode string
	err      error
}

var bodyCodeRegex = regexp.MustCompile(`[0-9]{4,6}`)

func (p *capturingProvider) SendSMS(ctx context.Context, to, from, body string) (*SendResult, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.sent = append(p.sent, to)
	p.lastCode = bodyCodeRegex.FindString(body)
	return &SendResult{SID: "SM123", Status: "sent"}, nil
}

func setupTestService(t *testing.T, cfg Config) (*Service, *capturingProvider, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })

	provider := &capturingProvider{}
	return NewService(client, provider, cfg), provider, mr
}

func TestService_IssueAndVerify(t *testing.T) {
	svc, provider, _ := setupTestService(t, Config{Length: 4, TTL: 5 * time.Minute, ResendCooldown: time.Minute})
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, "9876543210"))
	require.Len(t, provider.sent, 1)
	assert.Equal(t, "+919876543210", provider.sent[0])
	require.Len(t, provider.lastCode, 4)

	t.Run("wrong code stays retryable", func(t *testing.T) {
		err := svc.Verify(ctx, "9876543210", "0000")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("correct code verifies", func(t *testing.T) {
		require.NoError(t, svc.Verify(ctx, "9876543210", provider.lastCode))
	})

	t.Run("code is single use", func(t *testing.T) {
		err := svc.Verify(ctx, "9876543210", provider.lastCode)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestService_ResendCooldown(t *testing.T) {
	svc, provider, mr := setupTestService(t, Config{Length: 4, TTL: 5 * time.Minute, ResendCooldown: 60 * time.Second})
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, "9876543210"))

	t.Run("resend inside cooldown is rejected", func(t *testing.T) {
		err := svc.Issue(ctx, "9876543210")
		require.Error(t, err)
		assert.True(t, domain.IsCooldownActive(err))
		assert.Len(t, provider.sent, 1)
	})

	t.Run("countdown is visible to the caller", func(t *testing.T) {
		left := svc.ResendAvailableIn(ctx, "9876543210")
		assert.Greater(t, left, 0)
		assert.LessOrEqual(t, left, 60)
	})

	t.Run("resend re-enables exactly when the cooldown expires", func(t *testing.T) {
		mr.FastForward(60 * time.Second)

		assert.Equal(t, 0, svc.ResendAvailableIn(ctx, "9876543210"))
		require.NoError(t, svc.Issue(ctx, "9876543210"))
		assert.Len(t, provider.sent, 2)

		// the countdown restarted from the full cooldown
		assert.Greater(t, svc.ResendAvailableIn(ctx, "9876543210"), 0)
	})
}

func TestService_CodeExpiry(t *testing.T) {
	svc, provider, mr := setupTestService(t, Config{Length: 4, TTL: 5 * time.Minute, ResendCooldown: time.Minute})
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, "9876543210"))
	code := provider.lastCode

	mr.FastForward(6 * time.Minute)

	err := svc.Verify(ctx, "9876543210", code)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestService_MaxAttempts(t *testing.T) {
	svc, provider, _ := setupTestService(t, Config{Length: 4, TTL: 5 * time.Minute, ResendCooldown: time.Minute, MaxAttempts: 3})
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, "9876543210"))

	for i := 0; i < 3; i++ {
		err := svc.Verify(ctx, "9876543210", "0000")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	}

	// budget exhausted: even the right code is refused until reissue
	err := svc.Verify(ctx, "9876543210", provider.lastCode)
	require.Error(t, err)
	assert.True(t, domain.IsTooManyAttempts(err))
}

func TestService_UnlimitedAttemptsWhenDisabled(t *testing.T) {
	svc, provider, _ := setupTestService(t, Config{Length: 4, TTL: 5 * time.Minute, ResendCooldown: time.Minute, MaxAttempts: 0})
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, "9876543210"))

	for i := 0; i < 10; i++ {
		assert.Error(t, svc.Verify(ctx, "9876543210", "0000"))
	}
	assert.NoError(t, svc.Verify(ctx, "9876543210", provider.lastCode))
}

func TestService_ProviderFailure(t *testing.T) {
	svc, provider, _ := setupTestService(t, Config{Length: 4, TTL: 5 * time.Minute, ResendCooldown: time.Minute})
	ctx := context.Background()

	provider.err = errors.New("gateway timeout")

	err := svc.Issue(ctx, "9876543210")
	require.Error(t, err)
	assert.True(t, domain.IsCollaborator(err))

	// the failed send must not leave a verifiable code or start a cooldown
	provider.err = nil
	assert.Equal(t, 0, svc.ResendAvailableIn(ctx, "9876543210"))
	require.NoError(t, svc.Issue(ctx, "9876543210"))
}

func TestService_VerifyWithoutIssuedCode(t *testing.T) {
	svc, provider, _ := setupTestService(t, Config{Length: 4, TTL: 5 * time.Minute, ResendCooldown: time.Minute, MaxAttempts: 2})
	ctx := context.Background()

	// attempts against a mobile with no outstanding code report not-found
	// and never trip the attempt limit
	for i := 0; i < 3; i++ {
		err := svc.Verify(ctx, "9876543210", "0000")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err), "attempt %d", i+1)
	}

	require.NoError(t, svc.Issue(ctx, "9876543210"))
	assert.NoError(t, svc.Verify(ctx, "9876543210", provider.lastCode))
}

func TestService_InvalidCodeFormat(t *testing.T) {
	svc, _, _ := setupTestService(t, Config{Length: 4, TTL: 5 * time.Minute, ResendCooldown: time.Minute})
	ctx := context.Background()

	for _, code := range []string{"", "123", "1234567", "12ab"} {
		err := svc.Verify(ctx, "9876543210", code)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err), "code %q", code)
	}
}
