package common

// UnknownStr is printed for enum values outside their defined range.
const UnknownStr = "unknown"

// Prefixed prepends prefix and a dot to name, unless prefix is empty.
func Prefixed(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
