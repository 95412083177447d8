package assert

import "slices"

// Equal checks whether expected and actual are actually equal and fails the test
// if they are not.
func Equal[V comparable](t TestingErrf, expected, actual V, msgAndArgs ...any) {
	t.Helper()

	if expected == actual {
		return
	}

	t.Errorf("not equal: expected `%#v` but got `%#v`%s",
		expected, actual, fromMsgAndArgs(msgAndArgs...),
	)
}

// Contains checks that `needle` is one of the values in `haystack`.
func Contains[V comparable](t TestingErrf, haystack []V, needle V, msgAndArgs ...any) {
	t.Helper()

	if slices.Contains(haystack, needle) {
		return
	}

	t.Errorf("`%#v` not found in `%#v`%s",
		needle, haystack, fromMsgAndArgs(msgAndArgs...),
	)
}

// NotContains checks that `needle` is not among the values in `haystack`.
func NotContains[V comparable](t TestingErrf, haystack []V, needle V, msgAndArgs ...any) {
	t.Helper()

	if !slices.Contains(haystack, needle) {
		return
	}

	t.Errorf("unexpected `%#v` found in `%#v`%s",
		needle, haystack, fromMsgAndArgs(msgAndArgs...),
	)
}
