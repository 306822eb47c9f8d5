// Package logview resolves and fetches node logs through the dashboard log
// proxy.
//
// A log reference is either the index sentinel [IndexPath] or an absolute
// http(s) URL of a file or directory served by a node. [ResolveRequestPath]
// turns a reference into the path the dashboard is asked for, and a [Fetcher]
// issues the request and interprets the response.
//
// # Worker Scoping
//
// When the page the reference was taken from sits below a worker-scoped
// segment (a path segment containing a colon, e.g. "10.0.0.4:52365"), the
// reference is re-anchored under the segments that precede it so the request
// stays routed through that worker:
//
//	page:   /node/10.0.0.4:52365/logs
//	raw:    http://10.0.0.7:52365/logs/raylet.out
//	scoped: /node/10.0.0.7:52365/logs/raylet.out
//
// # Listings
//
// HTML responses are directory listings. Every <li> element becomes an
// [Entry] in document order. The entry name is the element text as a browser
// displays it, with whitespace runs collapsed.
// The link comes from the first <a> child and has its scheme and host removed,
// except on the index page and for entries whose text is itself a full URL.
// List items without an anchor are skipped.
//
// Any other content type is returned verbatim as text.
//
// # Log Prefixes
//
// Skipped entries are logged at the [logview] prefix.
package logview
