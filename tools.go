//go:build tools

package apnum

// Pinned so `go mod tidy` keeps the stringer generator available for
// //go:generate directives without affecting the regular build.
import _ "golang.org/x/tools/cmd/stringer"
