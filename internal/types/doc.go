/*
Package types defines the request and response objects the UI edits and
displays.

# Request

Request is one entry of a collection: name, method, URL, ordered headers,
ordered query parameters and a raw body. Headers and Params keep the order
in which they were loaded or added; keys are not deduplicated because HTTP
allows repeated headers.

# Response

Response holds what the executor observed. Transport failures are stored
in Error rather than returned, so the UI can render them in place of a
body.
*/
package types
