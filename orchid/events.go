package orchid

import (
	"context"
	"fmt"
)

// EventQuery selects a window of server or stream events. Start and Stop
// are server time in epoch milliseconds; a zero Stop means the time of the
// latest available event, a zero Count means all events. IDs and
// EventTypes are comma separated lists and filter when non-empty.
type EventQuery struct {
	Start      int64
	Stop       int64
	Count      int
	IDs        string
	EventTypes string
}

func (q EventQuery) encode() string {
	params := fmt.Sprintf("start=%d", q.Start)
	if q.Stop != 0 {
		params += fmt.Sprintf("&stop=%d", q.Stop)
	}
	if q.Count != 0 {
		params += fmt.Sprintf("&count=%d", q.Count)
	}
	if q.IDs != "" {
		params += fmt.Sprintf("&id=%s", q.IDs)
	}
	if q.EventTypes != "" {
		params += fmt.Sprintf("&eventType=%s", q.EventTypes)
	}
	return params
}

// GetServerEvents retrieves server events matching the query. IDs filters
// by server ID.
func (c *Client) GetServerEvents(ctx context.Context, q EventQuery) (*Response, error) {
	return c.get(ctx, "/events/server?"+q.encode())
}

// GetStreamEvents retrieves camera stream events matching the query. IDs
// filters by stream ID.
func (c *Client) GetStreamEvents(ctx context.Context, q EventQuery) (*Response, error) {
	return c.get(ctx, "/events/camera-stream?"+q.encode())
}

// GetStreamEventHistogram retrieves camera stream events binned into
// segments of minSegment milliseconds between start and stop. streamIDs
// and eventTypes are comma separated lists and filter when non-empty.
func (c *Client) GetStreamEventHistogram(ctx context.Context, start, stop, minSegment int64, streamIDs, eventTypes string) (*Response, error) {
	params := fmt.Sprintf("start=%d&stop=%d&minSegment=%d", start, stop, minSegment)
	if streamIDs != "" {
		params += fmt.Sprintf("&id=%s", streamIDs)
	}
	if eventTypes != "" {
		params += fmt.Sprintf("&type=%s", eventTypes)
	}
	return c.get(ctx, "/events/camera-stream/histogram?"+params)
}
