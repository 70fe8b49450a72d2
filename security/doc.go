// Package security holds TLS settings shared by the transport layers of the
// Orchid client. Orchid Core VMS installs commonly run with self-signed or
// site-CA certificates, so the client needs a way to trust a custom CA or
// present a client certificate without touching crypto/tls directly.
//
//	cfg := security.TLSConfig{
//	    CAFile: "/etc/orchid/ca.pem",
//	}
//	tlsConfig, err := cfg.Build()
package security
