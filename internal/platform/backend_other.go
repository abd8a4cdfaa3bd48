//go:build !linux

package platform

// OpenNative reports ErrUnsupported; callers fall back to glfw monitor queries.
func OpenNative() (Native, error) {
	return nil, ErrUnsupported
}
