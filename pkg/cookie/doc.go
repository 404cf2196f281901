// Package cookie is the HTTP cookie manager used by the session host to carry
// session ids.
//
// A Manager is created with one or more secrets (at least 32 characters each)
// and default Options. It offers:
//
//   • Set(), Get(), Delete() – plain cookies
//   • SetSigned(), GetSigned() – HMAC-SHA256 signed cookies (integrity only)
//   • SetEncrypted(), GetEncrypted() – AES-256-GCM cookies (integrity + privacy)
//   • Defaults() – the options applied to every cookie, reported to the
//     session host as framework cookie defaults
//
// The first secret writes; all secrets are tried on read so that secrets can be
// rotated without invalidating live sessions. The AES key is the SHA-256 digest
// of the secret.
//
// # Usage
//
//	import "github.com/dmitrymomot/kvsession/pkg/cookie"
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil { log.Fatal(err) }
//
//	_ = man.SetEncrypted(w, "_SESS", sessionID)
//	id, err := man.GetEncrypted(r, "_SESS")
//
// # Configuration
//
// Config is populated from COOKIE_* environment variables (comma separated
// COOKIE_SECRETS). NewFromConfig applies only non-zero fields.
//
// # Error Handling
//
// ErrCookieNotFound, ErrInvalidFormat, ErrInvalidSignature and
// ErrDecryptionFailed can be matched with errors.Is.
package cookie
