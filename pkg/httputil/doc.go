// Package httputil provides the HTTP plumbing for the PyPI metadata client.
//
// Two pieces live here:
//
//   - [Cache]: file-based caching of JSON API responses with a TTL, so
//     repeated outdated checks don't hammer the registry
//   - [Retry]: exponential backoff for transient failures (network errors
//     and 5xx responses wrapped in [RetryableError])
//
// Responses are cached under ~/.cache/pipkit/ by default; `pipkit cache
// clear` removes them. Only registry metadata is cached through this
// package — package installation itself never touches it.
package httputil
