package graph

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"

	"github.com/bizmandi/storefront/graph/model"
	"github.com/bizmandi/storefront/pkg/auth"
	"github.com/bizmandi/storefront/pkg/catalog"
	"github.com/bizmandi/storefront/pkg/domain"
	"github.com/bizmandi/storefront/pkg/registration"
)

// RequestOtp is the resolver for the requestOtp field.
func (r *mutationResolver) RequestOtp(ctx context.Context, mobile string) (*model.OtpRequestResult, error) {
	if err := r.RegistrationService.RequestCode(ctx, mobile, ""); err != nil {
		return nil, err
	}
	return &model.OtpRequestResult{
		Success:                  true,
		ResendAvailableInSeconds: r.RegistrationService.ResendAvailableIn(ctx, mobile),
	}, nil
}

// VerifyOtp is the resolver for the verifyOtp field.
func (r *mutationResolver) VerifyOtp(ctx context.Context, sessionID string, mobile string, code string) (*model.VerifyOtpResult, error) {
	gate, err := r.RegistrationService.VerifyCode(ctx, sessionID, mobile, code, "")
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateSignupToken(gate.Mobile, gate.VerifiedAt, r.JWTSecret, r.JWTExpirationHours)
	if err != nil {
		return nil, err
	}
	return &model.VerifyOtpResult{Success: true, Token: token}, nil
}

// SaveSellerDraft is the resolver for the saveSellerDraft field.
func (r *mutationResolver) SaveSellerDraft(ctx context.Context, token string, input model.SellerProfileInput) (*model.DraftResult, error) {
	claims, err := auth.ValidateSignupToken(token, r.JWTSecret)
	if err != nil {
		return nil, domain.NewUnauthorizedError()
	}

	p, err := r.RegistrationService.SaveDraft(ctx, claims.Mobile, toProfileInput(input), "")
	if err != nil {
		return nil, err
	}
	return &model.DraftResult{
		Success:     true,
		Status:      string(p.Status),
		CurrentStep: p.CurrentStep,
	}, nil
}

// SubmitRegistration is the resolver for the submitRegistration field.
func (r *mutationResolver) SubmitRegistration(ctx context.Context, token string, sessionID string, input model.SellerProfileInput, password string, passwordConfirm string, isSubscribed *bool) (*model.SubmitResult, error) {
	claims, err := auth.ValidateSignupToken(token, r.JWTSecret)
	if err != nil {
		return nil, domain.NewUnauthorizedError()
	}

	p, err := r.RegistrationService.Submit(ctx, sessionID, claims.Mobile, registration.SubmitInput{
		Profile:         toProfileInput(input),
		Password:        password,
		PasswordConfirm: passwordConfirm,
		IsSubscribed:    isSubscribed != nil && *isSubscribed,
	}, "")
	if err != nil {
		return nil, err
	}
	return &model.SubmitResult{
		Success: true,
		StoreID: p.StoreID,
		Status:  string(p.Status),
	}, nil
}

// ResolveProductList is the resolver for the resolveProductList field.
func (r *queryResolver) ResolveProductList(ctx context.Context, segments []string, sessionID *string) (*model.FilterQuery, error) {
	search, rest := catalog.ExtractSearch(segments)
	url, query, ok := catalog.SplitRoute(rest)
	if !ok {
		return nil, domain.NewValidationError("The listing URL could not be resolved")
	}

	fq, ok := catalog.ResolveParams(url, query, r.FilterTypes, catalog.NormalizeSearchTerm(search))
	if !ok {
		return nil, domain.NewValidationError("The listing URL could not be resolved")
	}

	if sessionID != nil && *sessionID != "" {
		if pref, found := r.Sessions.NearbyLocation(ctx, *sessionID); found {
			fq.MergeNearbyLocation(catalog.GeoClause{
				Lat:      pref.Lat,
				Lon:      pref.Lon,
				Distance: pref.Distance,
			})
		}
	}

	return toModelFilterQuery(fq), nil
}

// SellerDraft is the resolver for the sellerDraft field.
func (r *queryResolver) SellerDraft(ctx context.Context, token string) (*model.SellerDraft, error) {
	claims, err := auth.ValidateSignupToken(token, r.JWTSecret)
	if err != nil {
		return nil, domain.NewUnauthorizedError()
	}

	rec, err := r.RegistrationService.Resume(ctx, claims.Mobile)
	if err != nil {
		return nil, err
	}
	return toModelSellerDraft(rec), nil
}

// RegistrationState is the resolver for the registrationState field.
func (r *queryResolver) RegistrationState(ctx context.Context, mobile string) (string, error) {
	return r.RegistrationService.CurrentState(ctx, mobile).String(), nil
}

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
