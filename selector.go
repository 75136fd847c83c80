package webstring

// FragmentSelector pulls HTML fragments out of a larger document.
type FragmentSelector interface {
	// Select returns the outer HTML of every element in document matching
	// selector, in document order. Returns ENOTFOUND if nothing matches.
	Select(document, selector string) ([]string, error)
}
