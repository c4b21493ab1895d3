package scrape

import (
	"golang.org/x/net/html"

	"gedcard/internal/textutil"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"

	// MaleMarkerStyle is the inline style of the avatar swatch drawn for men.
	MaleMarkerStyle = "background: var(--blue30);"
)

var (
	genderAttrSelector = mustSelector(`[data-gender]`)
	maleMarkerSelector = mustSelector(`[style="` + MaleMarkerStyle + `"]`)
)

// ResolveGender prefers an explicit data-gender attribute. Without one it
// falls back to FemaleByDefault.
func ResolveGender(src *html.Node) string {
	if src == nil {
		return ""
	}
	if el := genderAttrSelector.MatchFirst(src); el != nil {
		if value := textutil.SentenceCase(attr(el, "data-gender")); value != "" {
			return value
		}
	}
	return FemaleByDefault(src)
}

// FemaleByDefault reports "Male" when the male marker swatch is present and
// "Female" otherwise. Anything unmarked, including unknown gender, comes back
// as "Female".
func FemaleByDefault(src *html.Node) string {
	if maleMarkerSelector.MatchFirst(src) != nil {
		return GenderMale
	}
	return GenderFemale
}
