package orchid

import (
	"context"
	"fmt"
)

// GetCameras retrieves all registered cameras.
func (c *Client) GetCameras(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/cameras")
}

// RegisterONVIFCamera registers an ONVIF compatible camera at the given IP
// address. name defaults to the address; https switches the device service
// URI scheme.
func (c *Client) RegisterONVIFCamera(ctx context.Context, address, cameraUser, password, name string, https bool) (*Response, error) {
	if name == "" {
		name = address
	}
	scheme := "http"
	if https {
		scheme = "https"
	}
	uri := fmt.Sprintf("%s://%s/onvif/device_service", scheme, address)
	return c.post(ctx, "/cameras", cameraRegistrationBody(uri, cameraUser, password, name, "ONVIF"))
}

// RegisterRTSPCamera registers a generic RTSP camera reachable at uri.
// name defaults to the URI.
func (c *Client) RegisterRTSPCamera(ctx context.Context, uri, cameraUser, password, name string) (*Response, error) {
	if name == "" {
		name = uri
	}
	return c.post(ctx, "/cameras", cameraRegistrationBody(uri, cameraUser, password, name, "Generic RTSP"))
}

// GetCamera retrieves a camera by ID.
func (c *Client) GetCamera(ctx context.Context, cameraID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d", cameraID))
}

// PatchCamera partially updates a camera.
func (c *Client) PatchCamera(ctx context.Context, cameraID int, body any) (*Response, error) {
	return c.patch(ctx, fmt.Sprintf("/cameras/%d", cameraID), body)
}

// DeleteCamera deletes a camera.
func (c *Client) DeleteCamera(ctx context.Context, cameraID int) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/cameras/%d", cameraID))
}

// VerifyCamera checks that a camera is pingable.
func (c *Client) VerifyCamera(ctx context.Context, cameraID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/verify", cameraID))
}

// GetCamerasDiskUsage retrieves the archive disk usage of all cameras.
func (c *Client) GetCamerasDiskUsage(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/cameras/disk-usage")
}

// GetTimezoneList retrieves the IANA to POSIX timezone mappings.
func (c *Client) GetTimezoneList(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/cameras/tz-list")
}

// GetPTZPosition retrieves a camera's current PTZ position.
func (c *Client) GetPTZPosition(ctx context.Context, cameraID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/position", cameraID))
}

// SetPTZPosition moves a camera to the PTZ position described by body.
func (c *Client) SetPTZPosition(ctx context.Context, cameraID int, body any) (*Response, error) {
	return c.post(ctx, fmt.Sprintf("/cameras/%d/position", cameraID), body)
}

// GetPTZPresets retrieves a camera's PTZ presets.
func (c *Client) GetPTZPresets(ctx context.Context, cameraID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/cameras/%d/position/presets", cameraID))
}

// SetPTZPreset stores the camera's current PTZ position as a named preset.
func (c *Client) SetPTZPreset(ctx context.Context, cameraID int, presetName string) (*Response, error) {
	body := map[string]any{"name": presetName}
	return c.post(ctx, fmt.Sprintf("/cameras/%d/position/presets", cameraID), body)
}

// DeletePTZPreset deletes a PTZ preset by its token.
func (c *Client) DeletePTZPreset(ctx context.Context, cameraID int, presetToken string) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/cameras/%d/position/presets/%s", cameraID, presetToken))
}

// cameraRegistrationBody builds the connection body shared by both camera
// registration drivers.
func cameraRegistrationBody(uri, username, password, name, driver string) map[string]any {
	return map[string]any{
		"driver": driver,
		"name":   name,
		"connection": map[string]any{
			"uri":      uri,
			"username": username,
			"password": password,
		},
	}
}
