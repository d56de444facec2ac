/*
Package executor performs the HTTP request assembled in the UI.

# Overview

Execute builds a net/http request from a types.Request (method, URL with
query params, ordered headers, body), sends it with a per-call timeout
carried by the context, and returns a types.Response.

Transport failures (DNS, refused connection, timeout) are not returned as
errors: they are recorded in Response.Error together with the elapsed
time, so the response pane can show them. Only a request that cannot be
built at all (invalid URL, invalid method) returns an error.

# TLS

Options.Insecure disables certificate verification; CAFile adds a custom
root. There is no client certificate support.

# Formatting

FormatDuration, FormatSize and the status helpers are used by the status
line of the response pane.
*/
package executor
