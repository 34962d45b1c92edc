package apiclient

import (
	"context"
	"net/http"

	"github.com/optifit/web/internal/model"
)

func (c *Client) Chat(ctx context.Context, sess *model.Session, req model.ChatRequest) (*model.ChatReply, error) {
	data, err := c.authed(ctx, sess, http.MethodPost, "/chat", nil, req)
	if err != nil {
		return nil, err
	}

	var reply model.ChatReply
	err = decode(data, "", &reply)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}
