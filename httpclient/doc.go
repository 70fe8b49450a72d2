// Package httpclient provides the HTTP dispatcher used by the Orchid Core
// VMS client: base-URL resolution, request body encoding, authentication,
// TLS, and a connect/read timeout pair.
//
// The dispatcher is deliberately thin. It delivers the request faithfully
// and returns whatever comes back: non-2xx responses are ordinary Response
// values, never errors. Only transport-level failures (connection refused,
// timeout, TLS, DNS) surface as errors.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://vms.example.com",
//	    Auth:    httpclient.BasicAuth("admin", "secret"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/service/cameras/1",
//	})
//
// # Credential Swapping
//
// The active credential can be replaced after construction, which is the
// documented path for session-token flows:
//
//	resp, _ := client.Do(ctx, loginRequest)
//	client.SetBearerToken(tokenFrom(resp))
//
// Swapping a credential concurrently with in-flight requests is not
// synchronized; callers needing that must serialize the mutation or use one
// client per logical session.
package httpclient
