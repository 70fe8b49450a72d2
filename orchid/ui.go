package orchid

import "context"

// UploadUIPackage uploads a signed user-interface update package. pkg is
// the raw ZIP bytes; the package must be signed by IPConfigure.
func (c *Client) UploadUIPackage(ctx context.Context, pkg []byte) (*Response, error) {
	return c.post(ctx, "/ui", pkg)
}
