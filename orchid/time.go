package orchid

import "context"

// GetServerTime retrieves the server time in epoch milliseconds, UTC. When
// extended is true the response includes timezone information; otherwise it
// is the epoch timestamp only.
func (c *Client) GetServerTime(ctx context.Context, extended bool) (*Response, error) {
	if extended {
		return c.get(ctx, "/time-extended")
	}
	return c.get(ctx, "/time")
}
