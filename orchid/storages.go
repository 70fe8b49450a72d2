package orchid

import (
	"context"
	"fmt"
)

// GetStorages lists all archive storage locations.
func (c *Client) GetStorages(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/storages")
}

// GetStorage retrieves an archive storage location by ID.
func (c *Client) GetStorage(ctx context.Context, storageID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/storages/%d", storageID))
}
