package orchid

import (
	"context"
	"fmt"
)

// ArchiveQuery filters and pages GetArchives results.
type ArchiveQuery struct {
	// Start is server time in epoch milliseconds. 0 means the server's
	// current time.
	Start int64
	// Take is the number of archives to return.
	Take int
	// Offset is the number of archives to skip.
	Offset int
	// StreamID restricts results to a single stream when non-zero.
	StreamID int
}

// GetArchives lists existing archives. A Take of 0 defaults to 100.
func (c *Client) GetArchives(ctx context.Context, q ArchiveQuery) (*Response, error) {
	take := q.Take
	if take == 0 {
		take = 100
	}
	path := fmt.Sprintf("/archives?start=%d&take=%d&offset=%d", q.Start, take, q.Offset)
	if q.StreamID != 0 {
		path += fmt.Sprintf("&streamId=%d", q.StreamID)
	}
	return c.get(ctx, path)
}

// GetArchive retrieves an archive by ID.
func (c *Client) GetArchive(ctx context.Context, archiveID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/archives/%d", archiveID))
}

// DownloadArchive downloads an archive's media by ID.
func (c *Client) DownloadArchive(ctx context.Context, archiveID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/archives/%d/download", archiveID))
}

// GetArchivesPerDay retrieves the count of archives generated per day.
func (c *Client) GetArchivesPerDay(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/archives/per-day")
}
