// ABOUTME: Visitor identity and session metadata for the guide service
// ABOUTME: Visitor ids are truncated IP hashes, never raw addresses
package guide

import (
	"crypto/md5" // #nosec G501 -- non-cryptographic visitor bucketing
	"encoding/hex"
)

// SessionMetadata carries per-request context from the transport layer
type SessionMetadata struct {
	SessionID  string
	IP         string
	DeviceType string
	Location   string
	Language   string
}

// VisitorID derives a stable pseudonymous visitor id from an IP address.
// The raw address is never stored.
func VisitorID(ip string) string {
	sum := md5.Sum([]byte(ip)) // #nosec G401
	return hex.EncodeToString(sum[:])[:8]
}
