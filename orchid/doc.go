// Package orchid is a client for the Orchid Core VMS REST API
// (https://orchid.ipconfigure.com/api/).
//
// Every method maps to exactly one endpoint: it substitutes identifiers
// into the documented path, serializes the body if there is one, and
// returns the server's response as-is. The client never interprets status
// codes; a 404 is a Response with StatusCode 404, not an error. Errors are
// reserved for transport failures.
//
// # Usage
//
//	client, err := orchid.New("http://vms.example.com",
//	    orchid.WithBasicAuth("admin", "secret"))
//	if err != nil {
//	    return err
//	}
//
//	resp, err := client.GetCamera(ctx, 1)
//	if err != nil {
//	    return err
//	}
//	if resp.IsSuccess() {
//	    var cam map[string]any
//	    _ = resp.JSON(&cam)
//	}
//
// # Session Tokens
//
// Token-based flows create a session, extract its token, and install it as
// the active credential for subsequent calls:
//
//	resp, err := client.CreateUserSession(ctx, "admin", "secret", nil)
//	// ... extract token from resp ...
//	client.SetBearerToken(token)
package orchid
