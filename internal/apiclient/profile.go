package apiclient

import (
	"context"
	"net/http"

	"github.com/optifit/web/internal/model"
)

// Profile fetches the user's profile. A missing or null profile is reported
// as ErrProfileNotFound.
func (c *Client) Profile(ctx context.Context, sess *model.Session) (*model.Profile, error) {
	data, err := c.authed(ctx, sess, http.MethodGet, "/profile", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeProfile(data)
}

func (c *Client) SaveProfile(ctx context.Context, sess *model.Session, p *model.Profile) (*model.Profile, error) {
	data, err := c.authed(ctx, sess, http.MethodPost, "/profile", nil, p)
	if err != nil {
		return nil, err
	}

	// The reply may be the profile or only a confirmation message.
	saved, err := decodeProfile(data)
	if err != nil || !saved.IsComplete() {
		return p, nil
	}
	return saved, nil
}

func decodeProfile(data []byte) (*model.Profile, error) {
	inner := envelope(data, "profile")
	if isNull(inner) {
		return nil, ErrProfileNotFound
	}

	var p model.Profile
	err := decode(inner, "", &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
