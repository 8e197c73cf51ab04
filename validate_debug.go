//go:build debug_freetrim

package freetrim

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_freetrim build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}
