package crm

import (
	"regexp"
	"strings"
)

// UnknownClientName stands in for sessions recorded without a customer name.
const UnknownClientName = "Unknown Client"

var slugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the stable client identifier from a free-text customer
// name: lowercase, with every maximal run of characters outside [a-z0-9]
// collapsed to a single hyphen. Leading and trailing hyphens are kept, so
// a name ending in punctuation yields a trailing hyphen. Total and
// deterministic; applying it twice gives the same result as applying it
// once.
func Slugify(name string) string {
	return slugRuns.ReplaceAllString(strings.ToLower(name), "-")
}

// clientName returns the display name for a session's customer, falling
// back to UnknownClientName when the backend recorded none.
func clientName(customerName *string) string {
	if customerName == nil || *customerName == "" {
		return UnknownClientName
	}
	return *customerName
}
