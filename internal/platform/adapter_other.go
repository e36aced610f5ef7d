//go:build !darwin && !linux && !windows

package platform

// NewAdapter falls back to the Linux behavior on other unix-likes
func NewAdapter() Adapter {
	return NewLinuxAPI()
}
