package mint

import "strings"

// Validate gates a submission. It returns the first failing check's
// user-facing message, or "" when the submission may proceed. The checks
// short-circuit in a fixed order: files, copies, price, title.
func Validate(m Metadata, audioSelected, imageSelected bool) string {
	switch {
	case !audioSelected || !imageSelected:
		return "Select an audio file and a cover image first."
	case m.Copies < 1:
		return "Number of copies must be at least 1."
	case m.Price <= 0:
		return "Price must be greater than zero."
	case strings.TrimSpace(m.Title) == "":
		return "Title is required."
	}
	return ""
}
