package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/optifit/web/internal/apiclient"
	"github.com/optifit/web/internal/gate"
	"github.com/optifit/web/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Resolve(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name       string
		profile    func(ctx context.Context) (*model.Profile, error)
		wantStatus gate.ProfileStatus
		wantErr    error
	}{
		{
			name:       "found",
			profile:    func(context.Context) (*model.Profile, error) { return &model.Profile{Age: 30}, nil },
			wantStatus: gate.ProfileFound,
		},
		{
			name: "not found",
			profile: func(context.Context) (*model.Profile, error) {
				return nil, &apiclient.Error{Status: 404, Message: "Profile not found"}
			},
			wantStatus: gate.ProfileNotFound,
		},
		{
			name:       "null profile",
			profile:    func(context.Context) (*model.Profile, error) { return nil, apiclient.ErrProfileNotFound },
			wantStatus: gate.ProfileNotFound,
		},
		{
			name: "slow backend",
			profile: func(ctx context.Context) (*model.Profile, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
			wantStatus: gate.ProfilePending,
		},
		{
			name:       "failure",
			profile:    func(context.Context) (*model.Profile, error) { return nil, boom },
			wantStatus: gate.ProfileFailed,
			wantErr:    boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProfileService(&fakeAPI{profile: tt.profile}, 20*time.Millisecond)

			status, p, err := svc.Resolve(context.Background(), testSession)

			assert.Equal(t, tt.wantStatus, status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if status == gate.ProfileFound {
				assert.NotNil(t, p)
			} else {
				assert.Nil(t, p)
			}
		})
	}
}

func TestProfileService_ResolveFeedsGate(t *testing.T) {
	tests := []struct {
		name    string
		profile *model.Profile
		want    gate.Decision
	}{
		{"empty profile", &model.Profile{}, gate.DecisionRedirect},
		{"age only", &model.Profile{Age: 30}, gate.DecisionRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProfileService(&fakeAPI{profile: func(context.Context) (*model.Profile, error) {
				return tt.profile, nil
			}}, time.Second)

			status, p, err := svc.Resolve(context.Background(), testSession)
			require.NoError(t, err)

			got := gate.Evaluate(gate.Input{Session: gate.SessionPresent, ProfileStatus: status, Profile: p})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileService_Save(t *testing.T) {
	api := &fakeAPI{}
	svc := NewProfileService(api, time.Second)

	p := model.DefaultProfile()
	p.Age = 28
	saved, err := svc.Save(context.Background(), testSession, p)
	require.NoError(t, err)
	assert.Equal(t, model.Number(28), saved.Age)

	bad := model.DefaultProfile()
	bad.Gender = "robot"
	_, err = svc.Save(context.Background(), testSession, bad)
	assert.Error(t, err)
}

func TestProfileService_Current(t *testing.T) {
	svc := NewProfileService(&fakeAPI{profile: func(context.Context) (*model.Profile, error) {
		return nil, apiclient.ErrProfileNotFound
	}}, time.Second)

	p, err := svc.Current(context.Background(), testSession)
	require.NoError(t, err)
	assert.Nil(t, p)
}
