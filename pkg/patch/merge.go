package patch

// MergeRequired applies a patch value to a required string. Unset, Null and
// the empty string leave dst untouched, so a required value is never erased.
func MergeRequired(dst *string, f Field[string]) bool {
	v, ok := f.Get()
	if !ok || v == "" || v == *dst {
		return false
	}
	*dst = v
	return true
}

// MergeValue copies a set value into dst. Unset and Null are no-ops.
func MergeValue[T comparable](dst *T, f Field[T]) bool {
	v, ok := f.Get()
	if !ok || v == *dst {
		return false
	}
	*dst = v
	return true
}

// MergeOptional applies a patch to an optional string. Null clears it; an
// empty string is ignored like it is for required strings.
func MergeOptional(dst *string, f Field[string]) bool {
	if f.IsNull() {
		if *dst == "" {
			return false
		}
		*dst = ""
		return true
	}
	return MergeRequired(dst, f)
}
