package xrel

import "context"

// UserInfo fetches the account behind the current token. The result is
// returned as a plain value; nothing is cached on the client.
func (c *Client) UserInfo(ctx context.Context) (*User, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var user User
	if err := c.get(ctx, "user/info", nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
