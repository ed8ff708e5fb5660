package otp

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/bizmandi/storefront/pkg/cache"
	"github.com/bizmandi/storefront/pkg/domain"
	"github.com/bizmandi/storefront/pkg/phone"
)

// Provider delivers one-time codes over SMS (Twilio, MSG91, etc.)
type Provider interface {
	SendSMS(ctx context.Context, to, from, body string) (*SendResult, error)
}

// SendResult holds the delivery receipt from the SMS provider
type SendResult struct {
	SID    string
	Status string
}

// Config holds OTP behavior knobs
type Config struct {
	// Length of the generated numeric code, clamped to 4-6
	Length int
	// TTL is how long an issued code stays verifiable
	TTL time.Duration
	// ResendCooldown is the minimum gap between sends for one mobile
	ResendCooldown time.Duration
	// MaxAttempts limits failed verifications per issued code; 0 means
	// unlimited (the provider may still rate-limit server-side)
	MaxAttempts int
	// FromNumber is the sender number passed to the provider
	FromNumber string
}

var codeRegex = regexp.MustCompile(`^[0-9]{4,6}$`)

// Service issues and verifies one-time codes. Codes are stored hashed in
// redis with a TTL; the cooldown and attempt counter are redis keys with
// matching lifetimes, so all state expires on its own.
type Service struct {
	cache    *cache.Client
	provider Provider
	cfg      Config
	group    singleflight.Group
}

// NewService creates a new OTP service
func NewService(cache *cache.Client, provider Provider, cfg Config) *Service {
	if cfg.Length < 4 {
		cfg.Length = 4
	}
	if cfg.Length > 6 {
		cfg.Length = 6
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.ResendCooldown <= 0 {
		cfg.ResendCooldown = 60 * time.Second
	}
	return &Service{cache: cache, provider: provider, cfg: cfg}
}

func codeKey(mobile string) string     { return fmt.Sprintf("otp:code:%s", mobile) }
func cooldownKey(mobile string) string { return fmt.Sprintf("otp:cooldown:%s", mobile) }
func attemptsKey(mobile string) string { return fmt.Sprintf("otp:attempts:%s", mobile) }

// Issue generates a fresh code for the mobile number, stores its hash and
// sends it via the provider. Concurrent duplicate requests for the same
// number collapse into one send (single-flight); requests inside the
// resend cooldown are rejected with a cooldown error carrying the seconds
// left.
func (s *Service) Issue(ctx context.Context, mobile string) error {
	_, err, _ := s.group.Do("issue:"+mobile, func() (interface{}, error) {
		return nil, s.issue(ctx, mobile)
	})
	return err
}

func (s *Service) issue(ctx context.Context, mobile string) error {
	// arming the cooldown key atomically doubles as the resend check:
	// a key that is already there means a send happened inside the window
	armed, err := s.cache.SetNX(ctx, cooldownKey(mobile), "1", s.cfg.ResendCooldown)
	if err != nil {
		return domain.NewInternalError(err)
	}
	if !armed {
		ttl, err := s.cache.TTL(ctx, cooldownKey(mobile))
		if err != nil || ttl <= 0 {
			ttl = s.cfg.ResendCooldown
		}
		return domain.NewCooldownActiveError(int(ttl.Round(time.Second).Seconds()))
	}

	code, err := generateCode(s.cfg.Length)
	if err != nil {
		_ = s.cache.Delete(ctx, cooldownKey(mobile))
		return domain.NewInternalError(err)
	}

	// the raw code never touches redis
	if err := s.cache.Set(ctx, codeKey(mobile), hashCode(code), s.cfg.TTL); err != nil {
		_ = s.cache.Delete(ctx, cooldownKey(mobile))
		return domain.NewInternalError(err)
	}
	// fresh code, fresh attempt budget
	_ = s.cache.Delete(ctx, attemptsKey(mobile))

	to, err := phone.ToE164(mobile)
	if err != nil {
		_ = s.cache.Delete(ctx, codeKey(mobile), cooldownKey(mobile))
		return domain.NewValidationError(err.Error())
	}

	body := fmt.Sprintf("Your BizMandi verification code is %s. It expires in %d minutes.",
		code, int(s.cfg.TTL.Minutes()))
	if _, err := s.provider.SendSMS(ctx, to, s.cfg.FromNumber, body); err != nil {
		// a code the user never received must not stay verifiable, and a
		// failed send should not burn the cooldown either
		_ = s.cache.Delete(ctx, codeKey(mobile), cooldownKey(mobile))
		return domain.NewCollaboratorError("Could not send the verification code. Please try again.", err)
	}
	return nil
}

// Verify checks a submitted code against the stored hash. A correct code
// is single use: it is deleted on success. Incorrect codes stay retryable
// until the attempt budget (when configured) or the code TTL runs out.
func (s *Service) Verify(ctx context.Context, mobile, code string) error {
	_, err, _ := s.group.Do("verify:"+mobile, func() (interface{}, error) {
		return nil, s.verify(ctx, mobile, code)
	})
	return err
}

func (s *Service) verify(ctx context.Context, mobile, code string) error {
	if !codeRegex.MatchString(code) {
		return domain.NewValidationError("Verification code must be 4-6 digits")
	}

	// an attempt against a mobile with no outstanding code should not
	// touch the attempt budget
	present, err := s.cache.Exists(ctx, codeKey(mobile))
	if err != nil {
		return domain.NewInternalError(err)
	}
	if !present {
		return domain.NewNotFoundError("verification code")
	}

	if s.cfg.MaxAttempts > 0 {
		attempts, err := s.cache.Incr(ctx, attemptsKey(mobile))
		if err != nil {
			return domain.NewInternalError(err)
		}
		if attempts == 1 {
			// counter lives exactly as long as a code can
			_ = s.cache.Expire(ctx, attemptsKey(mobile), s.cfg.TTL)
		}
		if attempts > int64(s.cfg.MaxAttempts) {
			return domain.NewTooManyAttemptsError()
		}
	}

	stored, err := s.cache.Get(ctx, codeKey(mobile))
	if err == redis.Nil {
		return domain.NewNotFoundError("verification code")
	}
	if err != nil {
		return domain.NewInternalError(err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(hashCode(code))) != 1 {
		return domain.NewValidationError("Incorrect verification code")
	}

	// single use
	_ = s.cache.Delete(ctx, codeKey(mobile), attemptsKey(mobile))
	return nil
}

// ResendAvailableIn returns how many seconds remain before a new code can
// be requested for the mobile number; 0 means resend is available now.
func (s *Service) ResendAvailableIn(ctx context.Context, mobile string) int {
	ttl, err := s.cache.TTL(ctx, cooldownKey(mobile))
	if err != nil || ttl <= 0 {
		return 0
	}
	return int(ttl.Round(time.Second).Seconds())
}

// generateCode produces a numeric code of the given length with a
// crypto-grade source. Leading zeros are allowed.
func generateCode(length int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", length, n), nil
}

func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
