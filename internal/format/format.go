/*
* Utility functions for formatting output.
 */
package format

// Print string with max length, truncating with ellipsis.
func Abbrev(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-1] + "…"
}
