package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bizmandi/storefront/pkg/domain"
)

// Client is the commerce backend the registration flow talks to. The
// backend owns customer accounts and seller stores; this service never
// stores passwords, it only forwards them here.
type Client interface {
	CreateCustomer(ctx context.Context, in CustomerInput) error
	SignIn(ctx context.Context, email, password string) (string, error)
	SubmitSellerProfile(ctx context.Context, token string, in SellerProfileInput) (string, error)
}

// CustomerInput is the account-creation payload
type CustomerInput struct {
	Email        string
	Password     string
	Prefix       string
	Firstname    string
	Lastname     string
	IsSubscribed bool
}

// SellerProfileInput is the business-profile payload the backend
// expects: address and categories comma-joined, per its legacy schema.
type SellerProfileInput struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	BusinessName     string `json:"businessName"`
	Email            string `json:"email"`
	Mobile           string `json:"mobile"`
	Whatsapp         string `json:"whatsapp"`
	Pincode          string `json:"pincode"`
	Address          string `json:"address"`
	Area             string `json:"area"`
	City             string `json:"city"`
	State            string `json:"state"`
	BusinessCategory string `json:"businessCategory"`
	CurrentStep      int    `json:"currentStep"`
	Status           string `json:"status"`
}

// HTTPClient talks GraphQL-over-HTTP to the commerce backend
type HTTPClient struct {
	endpoint  string
	storeCode string
	client    *http.Client
}

// NewHTTPClient creates a commerce client for the given GraphQL endpoint
func NewHTTPClient(endpoint, storeCode string) *HTTPClient {
	return &HTTPClient{
		endpoint:  endpoint,
		storeCode: storeCode,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SynthesizeEmail builds the login identifier for mobile-only sellers
func SynthesizeEmail(mobile, domainName string) string {
	return fmt.Sprintf("%s@%s", mobile, domainName)
}

const createCustomerMutation = `mutation createCustomer($email: String!, $password: String!, $prefix: String, $firstname: String!, $lastname: String!, $isSubscribed: Boolean) {
  createCustomerV2(input: {email: $email, password: $password, prefix: $prefix, firstname: $firstname, lastname: $lastname, is_subscribed: $isSubscribed}) {
    customer { email }
  }
}`

const signInMutation = `mutation generateCustomerToken($email: String!, $password: String!) {
  generateCustomerToken(email: $email, password: $password) { token }
}`

const submitSellerProfileMutation = `mutation saveSellerProfile($input: SellerProfileInput!) {
  saveSellerProfile(input: $input) { success message store_id }
}`

// CreateCustomer creates the commerce account for the seller
func (c *HTTPClient) CreateCustomer(ctx context.Context, in CustomerInput) error {
	vars := map[string]interface{}{
		"email":        in.Email,
		"password":     in.Password,
		"prefix":       in.Prefix,
		"firstname":    in.Firstname,
		"lastname":     in.Lastname,
		"isSubscribed": in.IsSubscribed,
	}
	var resp struct {
		CreateCustomerV2 struct {
			Customer struct {
				Email string `json:"email"`
			} `json:"customer"`
		} `json:"createCustomerV2"`
	}
	return c.do(ctx, "", createCustomerMutation, vars, &resp)
}

// SignIn exchanges the credentials for a customer token
func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (string, error) {
	vars := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	var resp struct {
		GenerateCustomerToken struct {
			Token string `json:"token"`
		} `json:"generateCustomerToken"`
	}
	if err := c.do(ctx, "", signInMutation, vars, &resp); err != nil {
		return "", err
	}
	if resp.GenerateCustomerToken.Token == "" {
		return "", domain.NewCollaboratorError("commerce backend returned an empty token", nil)
	}
	return resp.GenerateCustomerToken.Token, nil
}

// SubmitSellerProfile upserts the business profile against the backend
// and returns the store ID it assigned. Upserts are matched by mobile
// number on the backend, so retrying is safe.
func (c *HTTPClient) SubmitSellerProfile(ctx context.Context, token string, in SellerProfileInput) (string, error) {
	vars := map[string]interface{}{"input": in}
	var resp struct {
		SaveSellerProfile struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			StoreID string `json:"store_id"`
		} `json:"saveSellerProfile"`
	}
	if err := c.do(ctx, token, submitSellerProfileMutation, vars, &resp); err != nil {
		return "", err
	}
	if !resp.SaveSellerProfile.Success {
		return "", domain.NewCollaboratorError(resp.SaveSellerProfile.Message, nil)
	}
	return resp.SaveSellerProfile.StoreID, nil
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

func (c *HTTPClient) do(ctx context.Context, token, query string, vars map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.storeCode != "" {
		req.Header.Set("Store", c.storeCode)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return domain.NewCollaboratorError("commerce backend unreachable", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return domain.NewCollaboratorError("failed to read commerce response", err)
	}
	if res.StatusCode != http.StatusOK {
		return domain.NewCollaboratorError(fmt.Sprintf("commerce backend returned status %d", res.StatusCode), nil)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return domain.NewCollaboratorError("commerce backend returned malformed JSON", err)
	}
	if len(envelope.Errors) > 0 {
		return domain.NewCollaboratorError(envelope.Errors[0].Message, nil)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return domain.NewCollaboratorError("commerce backend returned an unexpected shape", err)
		}
	}
	return nil
}
