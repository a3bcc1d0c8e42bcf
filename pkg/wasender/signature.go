package wasender

import "net/http"

// SignatureHeader carries the webhook secret on every delivery.
const SignatureHeader = "x-webhook-signature"

// VerifySignature compares the received signature with the configured secret.
//
// Wasender documents a direct comparison of the header value with the webhook
// secret rather than an HMAC of the body. Confirm the scheme with the provider
// before relying on it for security.
func VerifySignature(signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}
	return signature == secret
}

// VerifyRequest checks the signature header of r against secret.
func VerifyRequest(r *http.Request, secret string) bool {
	return VerifySignature(r.Header.Get(SignatureHeader), secret)
}
