package orchid

import (
	"context"
	"fmt"
	"strconv"
)

// GetCameraStreams lists all streams registered for a camera.
func (c *Client) GetCameraStreams(ctx context.Context, cameraID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/streams", cameraID))
}

// RegisterStream registers a new stream for a camera.
func (c *Client) RegisterStream(ctx context.Context, cameraID int, body any) (*Response, error) {
	return c.post(ctx, fmt.Sprintf("/cameras/%d/streams", cameraID), body)
}

// GetCameraStream retrieves one of a camera's streams.
func (c *Client) GetCameraStream(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/streams/%d", cameraID, streamID))
}

// PatchStream partially updates a camera's stream.
func (c *Client) PatchStream(ctx context.Context, cameraID, streamID int, body any) (*Response, error) {
	return c.patch(ctx, fmt.Sprintf("/cameras/%d/streams/%d", cameraID, streamID), body)
}

// UpdateStream fully updates a camera's stream.
func (c *Client) UpdateStream(ctx context.Context, cameraID, streamID int, body any) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/cameras/%d/streams/%d", cameraID, streamID), body)
}

// DeleteStream deletes a camera's stream.
func (c *Client) DeleteStream(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/cameras/%d/streams/%d", cameraID, streamID))
}

// RestartStream restarts a camera stream.
func (c *Client) RestartStream(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.patch(ctx, fmt.Sprintf("/cameras/%d/streams/%d/restart", cameraID, streamID), nil)
}

// GetMotionMask retrieves a stream's motion mask.
func (c *Client) GetMotionMask(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/streams/%d/motion/mask", cameraID, streamID))
}

// UploadMotionMask uploads a stream's motion mask. mask is a PNG image of
// a stream frame containing the motion mask.
func (c *Client) UploadMotionMask(ctx context.Context, cameraID, streamID int, mask []byte) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/cameras/%d/streams/%d/motion/mask", cameraID, streamID), mask)
}

// DeleteMotionMask deletes a stream's motion mask.
func (c *Client) DeleteMotionMask(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/cameras/%d/streams/%d/motion/mask", cameraID, streamID))
}

// GetStreams lists all registered streams.
func (c *Client) GetStreams(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/streams")
}

// GetStreamStatuses lists the status of all registered streams.
func (c *Client) GetStreamStatuses(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/streams/status")
}

// GetStream retrieves a stream by ID.
func (c *Client) GetStream(ctx context.Context, streamID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/streams/%d", streamID))
}

// GetStreamFrame retrieves a JPEG frame from a stream. frameTime is server
// time in epoch milliseconds, where 0 means the first frame of the latest
// archive. width and height of 0 use the stream's native resolution. With
// fallback set, errors produce a black GIF instead of an error status.
func (c *Client) GetStreamFrame(ctx context.Context, streamID int, frameTime int64, width, height int, fallback bool) (*Response, error) {
	path := fmt.Sprintf("/streams/%d/frame?time=%d&width=%d&height=%d&fallback=%s",
		streamID, frameTime, width, height, strconv.FormatBool(fallback))
	return c.get(ctx, path)
}

// ExportStream exports media from a stream between start and stop (server
// time in epoch milliseconds). container is one of mkv, mov, mp4, dewarp
// or dewarp-parent; empty defaults to mkv.
func (c *Client) ExportStream(ctx context.Context, streamID int, start, stop int64, container string) (*Response, error) {
	if container == "" {
		container = "mkv"
	}
	path := fmt.Sprintf("/streams/%d/export?start=%d&stop=%d&format=%s", streamID, start, stop, container)
	return c.get(ctx, path)
}

// GetStreamMetadata retrieves a camera stream's metadata.
func (c *Client) GetStreamMetadata(ctx context.Context, cameraID, streamID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/streams/%d/metadata", cameraID, streamID))
}

// GetStreamStatus retrieves the status of a stream.
func (c *Client) GetStreamStatus(ctx context.Context, streamID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/streams/%d/status", streamID))
}
