package orchid

import (
	"context"
	"fmt"
)

// User roles.
const (
	RoleAdministrator = "Administrator"
	RoleManager       = "Manager"
	RoleLiveViewer    = "Live Viewer"
	RoleViewer        = "Viewer"
)

// GetUsers retrieves all users.
func (c *Client) GetUsers(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/users")
}

// CreateUser creates a new user. role is one of the Role constants and
// defaults to Manager when empty.
func (c *Client) CreateUser(ctx context.Context, username, password, role string) (*Response, error) {
	if role == "" {
		role = RoleManager
	}
	body := map[string]any{
		"username": username,
		"password": password,
		"role":     role,
	}
	return c.post(ctx, "/users", body)
}

// GetUser retrieves a user by ID.
func (c *Client) GetUser(ctx context.Context, userID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/users/%d", userID))
}

// UpdateUser fully updates a user.
func (c *Client) UpdateUser(ctx context.Context, userID int, body any) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/users/%d", userID), body)
}

// PatchUser partially updates a user.
func (c *Client) PatchUser(ctx context.Context, userID int, body any) (*Response, error) {
	return c.patch(ctx, fmt.Sprintf("/users/%d", userID), body)
}

// DeleteUser deletes a user.
func (c *Client) DeleteUser(ctx context.Context, userID int) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/users/%d", userID))
}
