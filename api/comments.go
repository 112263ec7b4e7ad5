package api

import "context"

// CommentCreateRequest is the payload for commenting on a post. ParentID,
// if set, nests the comment under an existing comment on the same post.
type CommentCreateRequest struct {
	Body     string  `json:"body"`
	ParentID *string `json:"parent_id,omitempty"`
}

// CommentUpdateRequest is the payload for editing a comment.
type CommentUpdateRequest struct {
	Body string `json:"body"`
}

// CommentListParams are the search parameters for the comment index.
type CommentListParams struct {
	PageParams
	PostID string
}

// CreateComment creates a comment on a post, owned by the session's member.
func (c *Client) CreateComment(ctx context.Context, sess *Session, postID string, req CommentCreateRequest) (Comment, error) {
	var out Comment
	err := c.do(ctx, "POST", "/posts/"+postID+"/comments", sess, nil, req, &out)
	return out, err
}

// CommentAt fetches one comment by ID.
func (c *Client) CommentAt(ctx context.Context, sess *Session, id string) (Comment, error) {
	var out Comment
	err := c.do(ctx, "GET", "/comments/"+id, sess, nil, nil, &out)
	return out, err
}

// UpdateComment edits a comment. Only the owner may do this.
func (c *Client) UpdateComment(ctx context.Context, sess *Session, id string, req CommentUpdateRequest) (Comment, error) {
	var out Comment
	err := c.do(ctx, "PUT", "/comments/"+id, sess, nil, req, &out)
	return out, err
}

// EraseComment soft-deletes a comment and returns its final state.
func (c *Client) EraseComment(ctx context.Context, sess *Session, id string) (Comment, error) {
	var out Comment
	err := c.do(ctx, "DELETE", "/comments/"+id, sess, nil, nil, &out)
	return out, err
}

// Comments lists comments, optionally restricted to one post.
func (c *Client) Comments(ctx context.Context, sess *Session, params CommentListParams) (Page[Comment], error) {
	query := params.queryValues()
	if params.PostID != "" {
		query.Set("post_id", params.PostID)
	}
	var out Page[Comment]
	err := c.do(ctx, "GET", "/comments", sess, query, nil, &out)
	return out, err
}
