package api

import (
	"context"
	"fmt"
)

// JoinMember registers a new member identity and returns its session.
func (c *Client) JoinMember(ctx context.Context, creds Credentials) (*Session, error) {
	return c.join(ctx, RoleMember, creds)
}

// JoinModerator registers a new moderator identity and returns its session.
func (c *Client) JoinModerator(ctx context.Context, creds Credentials) (*Session, error) {
	return c.join(ctx, RoleModerator, creds)
}

// JoinAdministrator registers a new administrator identity and returns its
// session.
func (c *Client) JoinAdministrator(ctx context.Context, creds Credentials) (*Session, error) {
	return c.join(ctx, RoleAdministrator, creds)
}

// LoginMember authenticates an existing member.
func (c *Client) LoginMember(ctx context.Context, creds Credentials) (*Session, error) {
	return c.login(ctx, RoleMember, creds)
}

// LoginModerator authenticates an existing moderator.
func (c *Client) LoginModerator(ctx context.Context, creds Credentials) (*Session, error) {
	return c.login(ctx, RoleModerator, creds)
}

// LoginAdministrator authenticates an existing administrator.
func (c *Client) LoginAdministrator(ctx context.Context, creds Credentials) (*Session, error) {
	return c.login(ctx, RoleAdministrator, creds)
}

// Login authenticates an existing identity of any non-guest role.
func (c *Client) Login(ctx context.Context, role Role, creds Credentials) (*Session, error) {
	return c.login(ctx, role, creds)
}

func (c *Client) join(ctx context.Context, role Role, creds Credentials) (*Session, error) {
	var sess Session
	if err := c.do(ctx, "POST", fmt.Sprintf("/auth/%s/join", role), nil, nil, creds, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (c *Client) login(ctx context.Context, role Role, creds Credentials) (*Session, error) {
	var sess Session
	if err := c.do(ctx, "POST", fmt.Sprintf("/auth/%s/login", role), nil, nil, creds, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}
