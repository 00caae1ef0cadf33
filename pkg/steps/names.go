package steps

import "strings"

// Canonical step names in the pay-and-verify flow. The bootstrap's
// data-display-steps attribute and the flow's factory table both use these.
const (
	Intro               = "intro-step"
	MakePayment         = "make-payment-step"
	PaymentConfirmation = "payment-confirmation-step"
	ReviewPhotos        = "review-photos-step"
)

var defaultTitles = map[string]string{
	Intro:               "Intro",
	MakePayment:         "Make Payment",
	PaymentConfirmation: "Payment Confirmation",
	ReviewPhotos:        "Review Photos",
}

// Title returns the display title for a step name, deriving one from the
// name itself when the step is not a built-in.
func Title(name string) string {
	if title, ok := defaultTitles[name]; ok {
		return title
	}

	trimmed := strings.TrimSuffix(name, "-step")
	words := strings.Split(trimmed, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
