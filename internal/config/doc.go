// Package config provides configuration loading, merging, and validation
// facilities for the massage-link client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file in the working directory (optional)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Zero fields left after merging are filled from documented defaults. The
// main entry point is [GetClientConfig].
package config
