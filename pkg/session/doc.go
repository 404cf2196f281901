// Package session stores web-session attributes in a remote key-value store
// instead of local files.
//
// A Storage translates attribute reads, writes and deletes into single store
// commands under a namespaced key:
//
//	prefix:sessionID:attribute   (prefix configured, default "session")
//	sessionID:attribute          (prefix disabled with WithoutPrefix)
//
// Values pass through a Codec (JSON by default) before reaching the store.
// Nothing is cached locally: every Read, Write and Remove is one round trip.
//
// # Architecture
//
// Storage depends on two narrow collaborators:
//
//   - Client: the key-value store commands Get, Set and Delete. The redis, pg
//     and mongo packages provide implementations, MemoryClient covers tests.
//   - Host: the web framework side of a session. It establishes the session,
//     owns its id, reports cookie defaults and accepts the session name.
//     HTTPHost implements it for net/http on top of a Transport (cookie,
//     header or composite).
//
//	┌────────┐  id   ┌──────────┐  Start/ID  ┌─────────┐
//	│ Client │ ────► │ HTTPHost │ ◄───────── │ Storage │
//	└────────┘       └──────────┘            └─────────┘
//	                                              │ GET / SET / DEL
//	                                              ▼
//	                                         ┌────────┐
//	                                         │ Client │ (redis, pg, mongo, memory)
//	                                         └────────┘
//
// # Usage
//
//	cookieMgr, _ := cookie.New([]string{"secret-key-of-at-least-32-characters"})
//	transport := session.NewCookieTransport(cookieMgr)
//
//	r := chi.NewRouter()
//	r.Use(session.Middleware(redis.NewClient(rdb), transport,
//	    session.WithStorageOptions(session.WithPrefix("app"))))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    s := session.MustFromContext(r.Context())
//	    if err := s.Write(r.Context(), "cart", []int{1, 2, 3}); err != nil {
//	        // handle store failure
//	    }
//	    cart, err := session.Get(r.Context(), s, "cart", []int{})
//	}
//
// # Configuration
//
// New builds the configuration from DefaultConfig (name "_SESS", prefix
// "session"), overlays the host cookie defaults and then applies the Option
// values. NewFromConfig does the same from an env-populated Config.
//
// # Error Handling
//
//   - ErrNotStarted     – id or attribute access before Start
//   - ErrInvalidKey     – empty attribute key or one containing ":"
//   - ErrInvalidSessionID / ErrEmptySessionID – unusable id from the host
//   - ErrStore          – store client failure (joined with the cause)
//   - ErrEncode / ErrDecode – codec failure
//   - ErrUnsupported    – Destroy on a client without PrefixDeleter
//
// All operations report failures through their error result, including Write.
package session
