// Package version exposes build metadata for the workforce binary.
//
// The variables are set at build time with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/workforce/version.Version=1.2.3 \
//	  -X github.com/ncobase/workforce/version.Branch=main \
//	  -X github.com/ncobase/workforce/version.Revision=abc123 \
//	  -X 'github.com/ncobase/workforce/version.BuiltAt=$(date -u +%FT%TZ)'" \
//	  ./cmd/workforce
//
// When they are left unset, the VCS stamp embedded by the Go toolchain fills
// in the revision and build time.
package version
