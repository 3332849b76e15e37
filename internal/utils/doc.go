// Package utils provides general-purpose helpers shared by the client:
// a resty-based HTTP client wrapper and a UUID generator for request
// trace identifiers.
package utils
