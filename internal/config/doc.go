// Package config loads and merges hoteldesk configuration from environment
// variables, command-line flags, and an optional JSON file.
//
// The merge order gives environment variables the highest priority, then
// flags, then the JSON file; defaults fill whatever remains unset. The final
// configuration is validated before use and passed by reference into each
// component — there is no ambient global configuration state.
package config
