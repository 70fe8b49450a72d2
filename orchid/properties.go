package orchid

import "context"

// GetServerPropertiesInfo retrieves information on the configurable server
// properties.
func (c *Client) GetServerPropertiesInfo(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/server/properties/info")
}

// GetServerProperties retrieves the properties the server is currently
// configured with.
func (c *Client) GetServerProperties(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/server/properties")
}

// UpdateServerProperties updates the server properties file.
func (c *Client) UpdateServerProperties(ctx context.Context, body any) (*Response, error) {
	return c.put(ctx, "/server/properties", body)
}

// CheckPropertiesConfirmation checks whether changes made to the
// properties file still need confirmation.
func (c *Client) CheckPropertiesConfirmation(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/server/properties/confirmed")
}

// ConfirmProperties confirms changes made to the properties file. Passing
// false makes the server revert to the previously configured settings.
func (c *Client) ConfirmProperties(ctx context.Context, confirmed bool) (*Response, error) {
	body := map[string]any{"propertiesConfirmed": confirmed}
	return c.post(ctx, "/server/properties/confirmed", body)
}
