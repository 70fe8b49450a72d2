package orchid

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// LBM transport modes.
const (
	LBMTransportHTTP            = "http"
	LBMTransportWebSocketBase64 = "websocket-base64"
)

// LBMStreamOptions configures CreateLBMStream beyond the required stream
// and resolution. The zero value requests a live stream at normal rate
// over websocket-base64 transport.
type LBMStreamOptions struct {
	// StartTime is server time in epoch milliseconds. 0 means live.
	StartTime int64
	// Sync applies a time offset to playback video to account for
	// request latency.
	Sync bool
	// Rate is the playback rate. 0 defaults to 1.0.
	Rate float64
	// WaitThreshold is the max time in milliseconds to wait for media
	// to start playing or to bridge a media gap. 0 defaults to 2000.
	WaitThreshold int
	// Transport is the frame transmission mode. Empty defaults to
	// websocket-base64.
	Transport string
}

// GetLBMStreams lists all currently active low-bandwidth streams.
func (c *Client) GetLBMStreams(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/low-bandwidth/streams")
}

// CreateLBMStream creates a new low-bandwidth mode stream session for the
// given stream at the requested resolution.
func (c *Client) CreateLBMStream(ctx context.Context, streamID, height, width int, opts *LBMStreamOptions) (*Response, error) {
	if opts == nil {
		opts = &LBMStreamOptions{}
	}
	rate := opts.Rate
	if rate == 0 {
		rate = 1.0
	}
	waitThres := opts.WaitThreshold
	if waitThres == 0 {
		waitThres = 2000
	}
	transport := opts.Transport
	if transport == "" {
		transport = LBMTransportWebSocketBase64
	}
	body := map[string]any{
		"streamId": streamID,
		"resolution": map[string]any{
			"height": height,
			"width":  width,
		},
		"startTime": opts.StartTime,
		"sync":      opts.Sync,
		"rate":      rate,
		"waitThres": waitThres,
		"transport": transport,
	}
	return c.post(ctx, "/low-bandwidth/streams", body)
}

// GetLBMStream retrieves a low-bandwidth mode stream by its session ID.
func (c *Client) GetLBMStream(ctx context.Context, streamUUID uuid.UUID) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/low-bandwidth/streams/%s", streamUUID))
}

// DeleteLBMStream deletes a low-bandwidth mode stream session.
func (c *Client) DeleteLBMStream(ctx context.Context, streamUUID uuid.UUID) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/low-bandwidth/streams/%s", streamUUID))
}

// GetLBMFrame retrieves a JPEG frame from a session created with the http
// transport mode.
func (c *Client) GetLBMFrame(ctx context.Context, streamUUID uuid.UUID) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/low-bandwidth/streams/%s/frame", streamUUID))
}
