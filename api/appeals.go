package api

import "context"

// AppealCreateRequest is the payload for opening an appeal against a
// moderation action. Only the author of the moderated content may appeal.
type AppealCreateRequest struct {
	ActionID string `json:"action_id"`
	Body     string `json:"body"`
}

// AppealResolveRequest is the payload for resolving an appeal. Requires an
// administrator session; Status must be accepted or rejected. Resolving an
// already-resolved appeal is a conflict.
type AppealResolveRequest struct {
	Status AppealStatus `json:"status"`
}

// AppealListParams are the search parameters for the appeal index.
type AppealListParams struct {
	PageParams
	Status AppealStatus
}

// CreateAppeal opens an appeal against a moderation action.
func (c *Client) CreateAppeal(ctx context.Context, sess *Session, req AppealCreateRequest) (Appeal, error) {
	var out Appeal
	err := c.do(ctx, "POST", "/appeals", sess, nil, req, &out)
	return out, err
}

// AppealAt fetches one appeal by ID.
func (c *Client) AppealAt(ctx context.Context, sess *Session, id string) (Appeal, error) {
	var out Appeal
	err := c.do(ctx, "GET", "/appeals/"+id, sess, nil, nil, &out)
	return out, err
}

// ResolveAppeal accepts or rejects a pending appeal.
func (c *Client) ResolveAppeal(ctx context.Context, sess *Session, id string, req AppealResolveRequest) (Appeal, error) {
	var out Appeal
	err := c.do(ctx, "PUT", "/appeals/"+id, sess, nil, req, &out)
	return out, err
}

// Appeals lists appeals, optionally restricted to one status.
func (c *Client) Appeals(ctx context.Context, sess *Session, params AppealListParams) (Page[Appeal], error) {
	query := params.queryValues()
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	var out Page[Appeal]
	err := c.do(ctx, "GET", "/appeals", sess, query, nil, &out)
	return out, err
}
