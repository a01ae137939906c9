package validation

import "testing"

// The registry is compiled in, so this is the gate that keeps a bad table
// edit (wrong range, zero scale, duplicate name) out of a release.
func TestCheck(t *testing.T) {
	if err := Check(); err != nil {
		t.Errorf("registry failed consistency check: %v", err)
	}
}
