package sellerprofile

import (
	"context"
	"fmt"
	"time"

	"github.com/bizmandi/storefront/ent"
	entprofile "github.com/bizmandi/storefront/ent/sellerprofile"
	"github.com/bizmandi/storefront/pkg/domain"
)

// ProfileInput is a full snapshot of the registration form. Passwords are
// deliberately absent: they are never persisted here, only forwarded to
// the commerce backend at final submission.
type ProfileInput struct {
	FirstName    string
	LastName     string
	BusinessName string
	Email        string
	Whatsapp     string
	Pincode      string
	PlotNumber   string
	BuildingName string
	StreetName   string
	Landmark     string
	Area         string
	City         string
	State        string
	Categories   []string
	CurrentStep  int
}

// Service handles draft and final seller profiles, keyed by mobile number
type Service struct {
	db *ent.Client
}

// NewService creates a new seller profile service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// SaveDraft upserts the current form snapshot for the mobile number. The
// mobile number decides insert-vs-update, so saving twice is idempotent.
// A profile that already reached final status is not demoted back to
// draft.
func (s *Service) SaveDraft(ctx context.Context, mobile string, in ProfileInput) (*ent.SellerProfile, error) {
	existing, err := s.db.SellerProfile.Query().
		Where(entprofile.MobileEQ(mobile)).
		Only(ctx)

	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	if existing == nil {
		created, err := s.db.SellerProfile.Create().
			SetMobile(mobile).
			SetFirstName(in.FirstName).
			SetLastName(in.LastName).
			SetBusinessName(in.BusinessName).
			SetEmail(in.Email).
			SetWhatsapp(in.Whatsapp).
			SetPincode(in.Pincode).
			SetPlotNumber(in.PlotNumber).
			SetBuildingName(in.BuildingName).
			SetStreetName(in.StreetName).
			SetLandmark(in.Landmark).
			SetArea(in.Area).
			SetCity(in.City).
			SetState(in.State).
			SetCategories(in.Categories).
			SetCurrentStep(in.CurrentStep).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create draft: %w", err)
		}
		return created, nil
	}

	if existing.Status == entprofile.StatusFinal {
		return nil, domain.NewConflictError("Registration is already complete for this mobile number")
	}

	step := in.CurrentStep
	if existing.CurrentStep > step {
		step = existing.CurrentStep
	}

	updated, err := s.db.SellerProfile.UpdateOneID(existing.ID).
		SetFirstName(in.FirstName).
		SetLastName(in.LastName).
		SetBusinessName(in.BusinessName).
		SetEmail(in.Email).
		SetWhatsapp(in.Whatsapp).
		SetPincode(in.Pincode).
		SetPlotNumber(in.PlotNumber).
		SetBuildingName(in.BuildingName).
		SetStreetName(in.StreetName).
		SetLandmark(in.Landmark).
		SetArea(in.Area).
		SetCity(in.City).
		SetState(in.State).
		SetCategories(in.Categories).
		SetCurrentStep(step).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}
	return updated, nil
}

// GetByMobile fetches the stored profile so a returning seller resumes
// with every field pre-filled
func (s *Service) GetByMobile(ctx context.Context, mobile string) (*ent.SellerProfile, error) {
	p, err := s.db.SellerProfile.Query().
		Where(entprofile.MobileEQ(mobile)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("seller profile")
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return p, nil
}

// SetSubmitStage records the furthest completed stage of the final
// submission sequence. The sequence is not transactional, so this is what
// makes a retry resume instead of repeat.
func (s *Service) SetSubmitStage(ctx context.Context, mobile string, stage entprofile.SubmitStage) error {
	n, err := s.db.SellerProfile.Update().
		Where(entprofile.MobileEQ(mobile)).
		SetSubmitStage(stage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record submit stage: %w", err)
	}
	if n == 0 {
		return domain.NewNotFoundError("seller profile")
	}
	return nil
}

// Finalize marks the registration complete and records the store ID the
// commerce backend assigned
func (s *Service) Finalize(ctx context.Context, mobile, storeID string) (*ent.SellerProfile, error) {
	existing, err := s.GetByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}

	updated, err := s.db.SellerProfile.UpdateOneID(existing.ID).
		SetStatus(entprofile.StatusFinal).
		SetSubmitStage(entprofile.SubmitStageCompleted).
		SetStoreID(storeID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize profile: %w", err)
	}
	return updated, nil
}

// PurgeStaleDrafts deletes draft profiles untouched for longer than the
// retention window. Returns how many were removed.
func (s *Service) PurgeStaleDrafts(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	n, err := s.db.SellerProfile.Delete().
		Where(
			entprofile.StatusEQ(entprofile.StatusDraft),
			entprofile.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge stale drafts: %w", err)
	}
	return n, nil
}
