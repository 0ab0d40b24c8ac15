// Package source holds the transports that serve summary documents.
//
// Each subpackage implements driven.Fetcher:
//   - filesystem: a local directory via afero, with directory listing and
//     fsnotify-based change watching
//   - httpsource: resources relative to a base URL via resty, rate limited
package source
