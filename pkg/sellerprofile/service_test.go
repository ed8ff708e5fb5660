package sellerprofile

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmandi/storefront/ent"
	"github.com/bizmandi/storefront/ent/enttest"
	entprofile "github.com/bizmandi/storefront/ent/sellerprofile"
	"github.com/bizmandi/storefront/pkg/domain"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func draftInput() ProfileInput {
	return ProfileInput{
		FirstName:    "Asha",
		LastName:     "Patel",
		BusinessName: "Patel Traders",
		Email:        "asha@example.com",
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

func TestSaveDraft(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	t.Run("Success - first save creates a draft", func(t *testing.T) {
		p, err := service.SaveDraft(ctx, "9876543210", draftInput())

		require.NoError(t, err)
		assert.Equal(t, "9876543210", p.Mobile)
		assert.Equal(t, entprofile.StatusDraft, p.Status)
		assert.Equal(t, []string{"machinery", "tools"}, p.Categories)
	})

	t.Run("Success - second save updates in place", func(t *testing.T) {
		in := draftInput()
		in.BusinessName = "Patel & Sons"

		p, err := service.SaveDraft(ctx, "9876543210", in)
		require.NoError(t, err)
		assert.Equal(t, "Patel & Sons", p.BusinessName)

		count, err := client.SellerProfile.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Success - current step never moves backwards", func(t *testing.T) {
		in := draftInput()
		in.CurrentStep = 1

		p, err := service.SaveDraft(ctx, "9876543210", in)
		require.NoError(t, err)
		assert.Equal(t, 2, p.CurrentStep)
	})

	t.Run("Failure - finalized profile rejects new drafts", func(t *testing.T) {
		_, err := service.Finalize(ctx, "9876543210", "store-42")
		require.NoError(t, err)

		_, err = service.SaveDraft(ctx, "9876543210", draftInput())
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
	})
}

func TestGetByMobile(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	t.Run("Success - resume pre-fills every field", func(t *testing.T) {
		_, err := service.SaveDraft(ctx, "9876543210", draftInput())
		require.NoError(t, err)

		p, err := service.GetByMobile(ctx, "9876543210")
		require.NoError(t, err)
		assert.Equal(t, "Asha", p.FirstName)
		assert.Equal(t, "Tower A", p.BuildingName)
		assert.Equal(t, "Near Park", p.Landmark)
	})

	t.Run("Failure - unknown mobile", func(t *testing.T) {
		_, err := service.GetByMobile(ctx, "9000000000")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestSubmitStage(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	_, err := service.SaveDraft(ctx, "9876543210", draftInput())
	require.NoError(t, err)

	require.NoError(t, service.SetSubmitStage(ctx, "9876543210", entprofile.SubmitStageAccountCreated))

	p, err := service.GetByMobile(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, entprofile.SubmitStageAccountCreated, p.SubmitStage)

	err = service.SetSubmitStage(ctx, "9000000000", entprofile.SubmitStageAccountCreated)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestFinalize(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	_, err := service.SaveDraft(ctx, "9876543210", draftInput())
	require.NoError(t, err)

	p, err := service.Finalize(ctx, "9876543210", "store-42")
	require.NoError(t, err)
	assert.Equal(t, entprofile.StatusFinal, p.Status)
	assert.Equal(t, entprofile.SubmitStageCompleted, p.SubmitStage)
	assert.Equal(t, "store-42", p.StoreID)
}

func TestPurgeStaleDrafts(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	_, err := service.SaveDraft(ctx, "9876543210", draftInput())
	require.NoError(t, err)
	_, err = service.SaveDraft(ctx, "9123456780", draftInput())
	require.NoError(t, err)

	// age one draft past the retention window
	_, err = client.SellerProfile.Update().
		Where(entprofile.MobileEQ("9123456780")).
		SetUpdatedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	n, err := service.PurgeStaleDrafts(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.GetByMobile(ctx, "9876543210")
	assert.NoError(t, err)
	_, err = service.GetByMobile(ctx, "9123456780")
	assert.Error(t, err)
}
