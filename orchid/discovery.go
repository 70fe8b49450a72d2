package orchid

import (
	"context"
	"fmt"
)

// GetDiscoveredCameras retrieves all cameras found via ONVIF autodiscovery.
func (c *Client) GetDiscoveredCameras(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/discoverable/cameras")
}

// GetOrchids retrieves all discovered Orchid Core VMS servers.
func (c *Client) GetOrchids(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/discoverable/orchids")
}

// GetOrchid retrieves a discovered Orchid Core VMS server by ID.
func (c *Client) GetOrchid(ctx context.Context, orchidID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/discoverable/orchids/%d", orchidID))
}
