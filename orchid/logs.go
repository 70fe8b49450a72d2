package orchid

import (
	"context"
	"fmt"
)

// Server log formats.
const (
	LogFormatGzip = "gzip"
	LogFormatText = "text"
)

// GetServerLogs downloads server logs. format is gzip or text; empty
// defaults to gzip. from and to are server time in epoch milliseconds and
// default to the earliest and latest log file when zero.
func (c *Client) GetServerLogs(ctx context.Context, format string, from, to int64) (*Response, error) {
	if format == "" {
		format = LogFormatGzip
	}
	params := fmt.Sprintf("format=%s", format)
	if from != 0 {
		params += fmt.Sprintf("&from=%d", from)
	}
	if to != 0 {
		params += fmt.Sprintf("&to=%d", to)
	}
	return c.get(ctx, "/log?"+params)
}
