// Package version reports build information for the codeninjas binary.
//
// Release builds inject the version and VCS details:
//
//	go build -ldflags "-X github.com/felsokning/codeninjas/version.Version=1.4.0" ./cmd/codeninjas
//
// ClientVersion is separate: it is the fixed product version every API
// client announces in its User-Agent and does not follow the binary version.
package version
