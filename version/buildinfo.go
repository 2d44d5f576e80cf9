package version

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrNoBuildInfo indicates the binary was built without module support and
// carries no embedded build information.
var ErrNoBuildInfo = errors.New("build information unavailable")

// BuildInfo returns the build information embedded in the running binary.
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return nil, fmt.Errorf("%w: reading failed", ErrNoBuildInfo)
	}

	return bi, nil
}

// Modules returns the paths of the main module and every dependency module
// recorded in the build information.
func Modules() ([]string, error) {
	bi, err := BuildInfo()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(bi.Deps)+1)
	paths = append(paths, bi.Main.Path)
	for _, dep := range bi.Deps {
		paths = append(paths, dep.Path)
	}

	return paths, nil
}
