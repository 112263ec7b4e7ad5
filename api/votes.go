package api

import "context"

// VoteCreateRequest is the payload for casting a vote. Casting the same
// value twice on one target is a conflict; casting the opposite value
// switches the vote, if the service supports vote switching.
type VoteCreateRequest struct {
	TargetType TargetType `json:"target_type"`
	TargetID   string     `json:"target_id"`
	Value      VoteValue  `json:"value"`
}

// VoteListParams are the search parameters for the vote index.
type VoteListParams struct {
	PageParams
	TargetType TargetType
	TargetID   string
}

// CastVote casts the session member's vote on a post or comment.
func (c *Client) CastVote(ctx context.Context, sess *Session, req VoteCreateRequest) (Vote, error) {
	var out Vote
	err := c.do(ctx, "POST", "/votes", sess, nil, req, &out)
	return out, err
}

// VoteAt fetches one vote by ID.
func (c *Client) VoteAt(ctx context.Context, sess *Session, id string) (Vote, error) {
	var out Vote
	err := c.do(ctx, "GET", "/votes/"+id, sess, nil, nil, &out)
	return out, err
}

// RetractVote removes a vote entirely. Votes hard-delete: a retracted vote
// has no remaining record.
func (c *Client) RetractVote(ctx context.Context, sess *Session, id string) error {
	return c.do(ctx, "DELETE", "/votes/"+id, sess, nil, nil, nil)
}

// Votes lists votes, optionally restricted to one target.
func (c *Client) Votes(ctx context.Context, sess *Session, params VoteListParams) (Page[Vote], error) {
	query := params.queryValues()
	if params.TargetType != "" {
		query.Set("target_type", string(params.TargetType))
	}
	if params.TargetID != "" {
		query.Set("target_id", params.TargetID)
	}
	var out Page[Vote]
	err := c.do(ctx, "GET", "/votes", sess, query, nil, &out)
	return out, err
}
