package api

import "context"

// PostCreateRequest is the payload for creating a post in a thread.
type PostCreateRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PostUpdateRequest is the payload for updating a post.
type PostUpdateRequest struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// PostListParams are the search parameters for the post index.
type PostListParams struct {
	PageParams
	ThreadID string
}

// CreatePost creates a post in a thread, owned by the session's member.
// The thread must exist and not be erased.
func (c *Client) CreatePost(ctx context.Context, sess *Session, threadID string, req PostCreateRequest) (Post, error) {
	var out Post
	err := c.do(ctx, "POST", "/threads/"+threadID+"/posts", sess, nil, req, &out)
	return out, err
}

// PostAt fetches one post by ID.
func (c *Client) PostAt(ctx context.Context, sess *Session, id string) (Post, error) {
	var out Post
	err := c.do(ctx, "GET", "/posts/"+id, sess, nil, nil, &out)
	return out, err
}

// UpdatePost updates a post. Only the owner may do this.
func (c *Client) UpdatePost(ctx context.Context, sess *Session, id string, req PostUpdateRequest) (Post, error) {
	var out Post
	err := c.do(ctx, "PUT", "/posts/"+id, sess, nil, req, &out)
	return out, err
}

// ErasePost soft-deletes a post and returns its final state, with DeletedAt
// set and the content fields intact. Erasing an already-erased post is a
// not-found error.
func (c *Client) ErasePost(ctx context.Context, sess *Session, id string) (Post, error) {
	var out Post
	err := c.do(ctx, "DELETE", "/posts/"+id, sess, nil, nil, &out)
	return out, err
}

// Posts lists posts, optionally restricted to one thread.
func (c *Client) Posts(ctx context.Context, sess *Session, params PostListParams) (Page[Post], error) {
	query := params.queryValues()
	if params.ThreadID != "" {
		query.Set("thread_id", params.ThreadID)
	}
	var out Page[Post]
	err := c.do(ctx, "GET", "/posts", sess, query, nil, &out)
	return out, err
}
