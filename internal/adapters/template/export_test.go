package template

// SetRename replaces the function that moves resolved files over their targets.
// The returned func puts the previous one back.
func SetRename(fn func(oldpath, newpath string) error) func() {
	prev := rename
	rename = fn
	return func() { rename = prev }
}
