//go:build !amd64 && !arm64

package cpu

import "runtime"

func probe() Features {
	return Features{Architecture: runtime.GOARCH}
}
