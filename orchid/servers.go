package orchid

import (
	"context"
	"fmt"
)

// GetServers lists all servers.
func (c *Client) GetServers(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/servers")
}

// GetServer retrieves a server by ID.
func (c *Client) GetServer(ctx context.Context, serverID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/servers/%d", serverID))
}

// GenerateServerReport generates a server report for the window between
// start and stop (server time in epoch milliseconds).
func (c *Client) GenerateServerReport(ctx context.Context, start, stop int64) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/server/report?start=%d&stop=%d", start, stop))
}

// GetServerDiskUtilization retrieves the server's disk utilization.
func (c *Client) GetServerDiskUtilization(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/server/utilization/disk")
}

// GetServerDatabaseFaults retrieves the server's database errors after
// start. A zero stop retrieves all faults after the start time.
func (c *Client) GetServerDatabaseFaults(ctx context.Context, start, stop int64) (*Response, error) {
	params := fmt.Sprintf("start=%d", start)
	if stop != 0 {
		params += fmt.Sprintf("&stop=%d", stop)
	}
	return c.get(ctx, "/server/database-faults?"+params)
}
