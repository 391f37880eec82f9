// Package pypi is a minimal client for the PyPI JSON API.
//
// pipkit only needs to know the latest released version of a package to
// decide whether an installed distribution is outdated, so the client
// fetches https://pypi.org/pypi/<name>/json and keeps the name, version,
// and summary. Responses are cached through [httputil.Cache] and transient
// failures are retried with backoff.
//
// Package names are normalized following PEP 503 (lowercase, underscores
// replaced with hyphens) before every lookup.
package pypi
