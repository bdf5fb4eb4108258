package sdk

import (
	"context"
	"fmt"
)

// ListUsers returns all portal accounts (admin only, enforced server-side).
func (c *Client) ListUsers(ctx context.Context) ([]Principal, error) {
	var users []Principal
	if err := c.get(ctx, "/auth/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole changes another account's role. The change is server-side
// only: an affected live session keeps its old principal snapshot until that
// user logs in again.
func (c *Client) UpdateUserRole(ctx context.Context, userID int64, role Role) (*Principal, error) {
	if !role.Known() {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	body := map[string]Role{"role": role}
	var user Principal
	if err := c.patch(ctx, fmt.Sprintf("/auth/users/%d/", userID), body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
