package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/plan"
)

// GeneratedPlan is the reply to a generation request. Plan is nil when the
// backend did not echo the new plan back.
type GeneratedPlan struct {
	Plan    json.RawMessage
	Message string
}

func planPath(kind plan.Kind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown plan kind %q", kind)
	}
	return "/" + string(kind), nil
}

// ActivePlan returns the current plan payload exactly as stored upstream,
// or nil when the user has none yet.
func (c *Client) ActivePlan(ctx context.Context, sess *model.Session, kind plan.Kind) (json.RawMessage, error) {
	path, err := planPath(kind)
	if err != nil {
		return nil, err
	}

	data, err := c.authed(ctx, sess, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	raw := envelope(data, kind.EnvelopeKey())
	if isNull(raw) {
		return nil, nil
	}
	return raw, nil
}

func (c *Client) GeneratePlan(ctx context.Context, sess *model.Session, kind plan.Kind) (*GeneratedPlan, error) {
	path, err := planPath(kind)
	if err != nil {
		return nil, err
	}

	data, err := c.authed(ctx, sess, http.MethodPost, path+"/generate", nil, nil)
	if err != nil {
		return nil, err
	}

	var body map[string]json.RawMessage
	_ = json.Unmarshal(data, &body)

	gen := &GeneratedPlan{}
	if raw, ok := body[kind.EnvelopeKey()]; ok && !isNull(raw) {
		gen.Plan = raw
	}
	if msg, ok := body["message"]; ok {
		_ = json.Unmarshal(msg, &gen.Message)
	}
	return gen, nil
}
