package commerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmandi/storefront/pkg/domain"
)

func TestSynthesizeEmail(t *testing.T) {
	assert.Equal(t, "9876543210@sellers.bizmandi.in", SynthesizeEmail("9876543210", "sellers.bizmandi.in"))
}

func TestSignIn(t *testing.T) {
	t.Run("Success - returns the customer token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "bizmandi_in", r.Header.Get("Store"))

			var req graphqlRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "9876543210@sellers.bizmandi.in", req.Variables["email"])

			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{
					"generateCustomerToken": map[string]string{"token": "tok-123"},
				},
			})
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, "bizmandi_in")
		token, err := client.SignIn(context.Background(), "9876543210@sellers.bizmandi.in", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "tok-123", token)
	})

	t.Run("Failure - graphql errors surface as collaborator errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"errors": []map[string]string{{"message": "The account sign-in was incorrect"}},
			})
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, "bizmandi_in")
		_, err := client.SignIn(context.Background(), "a@b.c", "wrong")

		require.Error(t, err)
		assert.True(t, domain.IsCollaborator(err))
		assert.Contains(t, err.Error(), "sign-in was incorrect")
	})

	t.Run("Failure - non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, "bizmandi_in")
		_, err := client.SignIn(context.Background(), "a@b.c", "secret123")

		require.Error(t, err)
		assert.True(t, domain.IsCollaborator(err))
	})
}

func TestSubmitSellerProfile(t *testing.T) {
	t.Run("Success - returns the assigned store id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

			var req graphqlRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			input := req.Variables["input"].(map[string]interface{})
			assert.Equal(t, "12,Tower A,MG Road,Near Park", input["address"])
			assert.Equal(t, "machinery,tools", input["businessCategory"])

			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{
					"saveSellerProfile": map[string]interface{}{
						"success":  true,
						"message":  "ok",
						"store_id": "store-42",
					},
				},
			})
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, "bizmandi_in")
		storeID, err := client.SubmitSellerProfile(context.Background(), "tok-123", SellerProfileInput{
			FirstName:        "Asha",
			LastName:         "Patel",
			BusinessName:     "Patel Traders",
			Mobile:           "9876543210",
			Address:          "12,Tower A,MG Road,Near Park",
			BusinessCategory: "machinery,tools",
			Status:           "final",
		})

		require.NoError(t, err)
		assert.Equal(t, "store-42", storeID)
	})

	t.Run("Failure - backend rejection carries its message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{
					"saveSellerProfile": map[string]interface{}{
						"success": false,
						"message": "pincode not serviceable",
					},
				},
			})
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, "bizmandi_in")
		_, err := client.SubmitSellerProfile(context.Background(), "tok-123", SellerProfileInput{Mobile: "9876543210"})

		require.Error(t, err)
		assert.True(t, domain.IsCollaborator(err))
		assert.Contains(t, err.Error(), "pincode not serviceable")
	})
}

func TestCreateCustomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, true, req.Variables["isSubscribed"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"createCustomerV2": map[string]interface{}{
					"customer": map[string]string{"email": "9876543210@sellers.bizmandi.in"},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "bizmandi_in")
	err := client.CreateCustomer(context.Background(), CustomerInput{
		Email:        "9876543210@sellers.bizmandi.in",
		Password:     "secret123",
		Firstname:    "Asha",
		Lastname:     "Patel",
		IsSubscribed: true,
	})

	require.NoError(t, err)
}
