package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bizmandi/storefront/pkg/cache"
)

// Session-scoped state keys. Every read and write of session state goes
// through this store so key ownership stays in one place.
const (
	keyNearbyLocation = "nearby_location"
	keySignupGate     = "seller-signup"
	keyReturnURL      = "auth:returnUrl"
)

// GeoPreference is the location a user picked from a suggestion list,
// merged into product-list filters when the route does not set one.
type GeoPreference struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Name     string  `json:"name"`
	Distance string  `json:"distance"`
}

// SignupGate marks a mobile number as OTP-verified for the current
// session. Its presence gates access to the profile wizard.
type SignupGate struct {
	Mobile     string    `json:"mobile"`
	VerifiedAt time.Time `json:"verifiedAt"`
}

// Store is the typed accessor for session-scoped state. Values live in
// redis under the session ID with a bounded TTL, mirroring the lifetime
// of a browser session.
type Store struct {
	cache *cache.Client
	ttl   time.Duration
}

// NewStore creates a session store with the given session lifetime
func NewStore(cache *cache.Client, ttl time.Duration) *Store {
	return &Store{cache: cache, ttl: ttl}
}

func sessionKey(sessionID, key string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, key)
}

// SaveNearbyLocation stores the user's picked location preference
func (s *Store) SaveNearbyLocation(ctx context.Context, sessionID string, pref GeoPreference) error {
	return s.setJSON(ctx, sessionKey(sessionID, keyNearbyLocation), pref)
}

// NearbyLocation returns the stored location preference. A missing or
// malformed value is treated as "no preference", never an error.
func (s *Store) NearbyLocation(ctx context.Context, sessionID string) (*GeoPreference, bool) {
	var pref GeoPreference
	if !s.getJSON(ctx, sessionKey(sessionID, keyNearbyLocation), &pref) {
		return nil, false
	}
	if pref.Distance == "" {
		return nil, false
	}
	return &pref, true
}

// ClearNearbyLocation removes the stored location preference
func (s *Store) ClearNearbyLocation(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKey(sessionID, keyNearbyLocation))
}

// SaveSignupGate marks the session's mobile number as verified
func (s *Store) SaveSignupGate(ctx context.Context, sessionID string, gate SignupGate) error {
	return s.setJSON(ctx, sessionKey(sessionID, keySignupGate), gate)
}

// SignupGate returns the verification gate for the session. Absent or
// malformed content means the caller must send the user back to the
// mobile-entry step.
func (s *Store) SignupGate(ctx context.Context, sessionID string) (*SignupGate, bool) {
	var gate SignupGate
	if !s.getJSON(ctx, sessionKey(sessionID, keySignupGate), &gate) {
		return nil, false
	}
	if gate.Mobile == "" || gate.VerifiedAt.IsZero() {
		return nil, false
	}
	return &gate, true
}

// ClearSignupGate removes the verification gate, ending the signup session
func (s *Store) ClearSignupGate(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKey(sessionID, keySignupGate))
}

// SaveReturnURL remembers where to send the user after an inline sign-in
func (s *Store) SaveReturnURL(ctx context.Context, sessionID, url string) error {
	return s.cache.Set(ctx, sessionKey(sessionID, keyReturnURL), url, s.ttl)
}

// ReturnURL returns and clears the stored return URL (one-shot read)
func (s *Store) ReturnURL(ctx context.Context, sessionID string) (string, bool) {
	key := sessionKey(sessionID, keyReturnURL)
	url, err := s.cache.Get(ctx, key)
	if err != nil || url == "" {
		return "", false
	}
	_ = s.cache.Delete(ctx, key)
	return url, true
}

func (s *Store) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode session value: %w", err)
	}
	return s.cache.Set(ctx, key, data, s.ttl)
}

// getJSON reads and decodes a session value. Malformed JSON is swallowed:
// session state is always an optional default, never a source of truth.
func (s *Store) getJSON(ctx context.Context, key string, v interface{}) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false
	}
	return true
}
