package orchid

import "context"

// GetEndpoints retrieves all REST API endpoints exposed by the server.
func (c *Client) GetEndpoints(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/endpoints")
}
