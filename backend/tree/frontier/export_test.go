package frontier

// SetLeafCount overrides the leaf counter to fabricate capacity scenarios.
// Only available in test builds.
func (t *Tree) SetLeafCount(count uint64) {
	t.count = count
}
