package orchid

import "context"

// GetVersion retrieves version information for the VMS install.
func (c *Client) GetVersion(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/version")
}
