package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/gate"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/validation"
)

type ProfileService struct {
	api     ProfileAPI
	timeout time.Duration
}

func NewProfileService(api ProfileAPI, timeout time.Duration) *ProfileService {
	return &ProfileService{
		api:     api,
		timeout: timeout,
	}
}

// Resolve fetches the profile and classifies the outcome for the access
// gate. A fetch that outlives the profile timeout is still pending; the
// caller shows a loading state and asks again. The error is returned so
// callers can react to an expired backend token.
func (s *ProfileService) Resolve(ctx context.Context, sess *model.Session) (gate.ProfileStatus, *model.Profile, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	p, err := s.api.Profile(fetchCtx, sess)
	switch {
	case err == nil:
		return gate.ProfileFound, p, nil
	case errors.Is(err, apiclient.ErrProfileNotFound), errors.Is(err, apiclient.ErrNotFound):
		return gate.ProfileNotFound, nil, nil
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		return gate.ProfilePending, nil, nil
	default:
		return gate.ProfileFailed, nil, err
	}
}

// Current returns the stored profile, or nil when the user has none yet.
func (s *ProfileService) Current(ctx context.Context, sess *model.Session) (*model.Profile, error) {
	p, err := s.api.Profile(ctx, sess)
	if errors.Is(err, apiclient.ErrProfileNotFound) || errors.Is(err, apiclient.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) Save(ctx context.Context, sess *model.Session, p *model.Profile) (*model.Profile, error) {
	err := validation.ValidateProfile(p)
	if err != nil {
		return nil, err
	}

	saved, err := s.api.SaveProfile(ctx, sess, p)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return saved, nil
}
