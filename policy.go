package wcwidth

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Languages whose legacy encodings gave rise to the ambiguous-width class.
// The first entry doubles as the matcher's fallback.
var eastAsianLanguages = language.NewMatcher([]language.Tag{
	language.Chinese,
	language.Japanese,
	language.Korean,
})

// PolicyFromEnvironment inspects the user's locale and returns the EastAsian
// policy for CJK locales, Default otherwise. If the locale cannot be
// detected, Default is returned.
func PolicyFromEnvironment() Policy {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		T().Infof("wcwidth falls back to default width policy")
		return Default
	}
	T().Infof("wcwidth detected user locale %v", userLocale)
	lang := language.Make(userLocale)
	if _, _, confidence := eastAsianLanguages.Match(lang); confidence == language.No {
		return Default
	}
	return EastAsian
}
