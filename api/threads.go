package api

import "context"

// ThreadCreateRequest is the payload for creating a thread. Tags must be
// unique within the request; a duplicate is a validation error.
type ThreadCreateRequest struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`
}

// ThreadUpdateRequest is the payload for updating a thread. Zero-valued
// fields are left unchanged by the service.
type ThreadUpdateRequest struct {
	Title string   `json:"title,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// ThreadListParams are the search parameters for the thread index.
type ThreadListParams struct {
	PageParams
	Title string // substring match on title
	Tag   string // exact tag match
}

// CreateThread creates a thread owned by the session's member.
func (c *Client) CreateThread(ctx context.Context, sess *Session, req ThreadCreateRequest) (Thread, error) {
	var out Thread
	err := c.do(ctx, "POST", "/threads", sess, nil, req, &out)
	return out, err
}

// ThreadAt fetches one thread by ID.
func (c *Client) ThreadAt(ctx context.Context, sess *Session, id string) (Thread, error) {
	var out Thread
	err := c.do(ctx, "GET", "/threads/"+id, sess, nil, nil, &out)
	return out, err
}

// UpdateThread updates a thread. Only the owner may do this.
func (c *Client) UpdateThread(ctx context.Context, sess *Session, id string, req ThreadUpdateRequest) (Thread, error) {
	var out Thread
	err := c.do(ctx, "PUT", "/threads/"+id, sess, nil, req, &out)
	return out, err
}

// EraseThread soft-deletes a thread and returns its final state, with
// DeletedAt set and the content fields intact. Erasing an already-erased
// thread is a not-found error.
func (c *Client) EraseThread(ctx context.Context, sess *Session, id string) (Thread, error) {
	var out Thread
	err := c.do(ctx, "DELETE", "/threads/"+id, sess, nil, nil, &out)
	return out, err
}

// Threads lists threads matching the given parameters.
func (c *Client) Threads(ctx context.Context, sess *Session, params ThreadListParams) (Page[Thread], error) {
	query := params.queryValues()
	if params.Title != "" {
		query.Set("title", params.Title)
	}
	if params.Tag != "" {
		query.Set("tag", params.Tag)
	}
	var out Page[Thread]
	err := c.do(ctx, "GET", "/threads", sess, query, nil, &out)
	return out, err
}
