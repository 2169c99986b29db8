// Package fluidinfo provides a thin Go client for the Fluidinfo RESTful API.
//
// Fluidinfo stores tag-values on objects. The client takes care of the
// Authorization header, URL construction and the content-type rules the API
// uses to tell structured, primitive and opaque values apart. Everything else
// is a single HTTP round trip: the caller inspects status codes itself.
//
// # Quick Start
//
// Create a client and fetch a user:
//
//	c := fluidinfo.New()
//	resp, err := c.Get(ctx, fluidinfo.StringPath("/users/test"))
//	if err != nil {
//	    return err
//	}
//	if resp.OK() {
//	    user := resp.Body.(map[string]any)
//	}
//
// Use the sandbox instance and a custom HTTP client:
//
//	c := fluidinfo.New(
//	    fluidinfo.WithInstance(fluidinfo.SandboxInstance),
//	    fluidinfo.WithTransport(fluidinfo.NewRestyTransport(httpClient)),
//	)
//	c.Login("test", "test")
//
// # Paths
//
// A path is either a string, used as the full path, or a list of segments.
// Segments are escaped individually so a tag name or about value containing
// a slash stays one segment:
//
//	fluidinfo.StringPath("/namespaces/test")
//	fluidinfo.Segments("about", "an/- object", "test", "foo")
//	// -> /about/an%2F-%20object/test/foo
//
// # Tag-values
//
// Maps and structs are always sent as application/json. A PUT to an
// /objects/ or /about path stores a tag-value: primitives (nil, bool,
// numbers, strings and string lists) are sent as
// application/vnd.fluiddb.value+json, and anything else needs an explicit
// mime type:
//
//	c.Put(ctx, path, fluidinfo.WithBody(3.5))
//	c.Put(ctx, path, fluidinfo.WithBody(page), fluidinfo.WithMime("text/html"))
//
// # Errors
//
// Only failures of the request mechanism are errors: *EncodingError (raised
// before any I/O), *TransportError and *DecodingError. A 4xx or 5xx reply is
// an ordinary *Response.
package fluidinfo
