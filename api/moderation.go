package api

import "context"

// ModerationActionCreateRequest is the payload for a moderator intervening
// on a post or comment. Requires a moderator or administrator session.
type ModerationActionCreateRequest struct {
	TargetType TargetType           `json:"target_type"`
	TargetID   string               `json:"target_id"`
	Action     ModerationActionType `json:"action"`
	Reason     string               `json:"reason"`
}

// ModerationActionListParams are the search parameters for the moderation
// action index.
type ModerationActionListParams struct {
	PageParams
	TargetType TargetType
	TargetID   string
}

// CreateModerationAction records a moderation action against a target.
func (c *Client) CreateModerationAction(
	ctx context.Context,
	sess *Session,
	req ModerationActionCreateRequest,
) (ModerationAction, error) {
	var out ModerationAction
	err := c.do(ctx, "POST", "/moderation/actions", sess, nil, req, &out)
	return out, err
}

// ModerationActionAt fetches one moderation action by ID.
func (c *Client) ModerationActionAt(ctx context.Context, sess *Session, id string) (ModerationAction, error) {
	var out ModerationAction
	err := c.do(ctx, "GET", "/moderation/actions/"+id, sess, nil, nil, &out)
	return out, err
}

// ModerationActions lists moderation actions, optionally restricted to one
// target.
func (c *Client) ModerationActions(
	ctx context.Context,
	sess *Session,
	params ModerationActionListParams,
) (Page[ModerationAction], error) {
	query := params.queryValues()
	if params.TargetType != "" {
		query.Set("target_type", string(params.TargetType))
	}
	if params.TargetID != "" {
		query.Set("target_id", params.TargetID)
	}
	var out Page[ModerationAction]
	err := c.do(ctx, "GET", "/moderation/actions", sess, query, nil, &out)
	return out, err
}
