package bootstrap

import (
	"strings"

	"github.com/goliatone/go-payflow/pkg/steps"
)

// stepAttribute maps one container attribute to the camelCase key it takes in
// the step's configuration slice.
type stepAttribute struct {
	attr  string
	key   string
	split bool
}

// stepAttributes enumerates the fixed attribute surface per step. This is the
// entire contract between the server-rendered markup and the client
// bootstrap.
var stepAttributes = map[string][]stepAttribute{
	steps.Intro: {
		{attr: "data-intro-title", key: "introTitle"},
		{attr: "data-platform-name", key: "platformName"},
	},
	steps.MakePayment: {
		{attr: "data-course-key", key: "courseKey"},
		{attr: "data-min-price", key: "minPrice"},
		{attr: "data-suggested-prices", key: "suggestedPrices", split: true},
		{attr: "data-currency", key: "currency"},
		{attr: "data-purchase-endpoint", key: "purchaseEndpoint"},
	},
	steps.PaymentConfirmation: {
		{attr: "data-course-key", key: "courseKey"},
		{attr: "data-course-name", key: "courseName"},
		{attr: "data-platform-name", key: "platformName"},
	},
	steps.ReviewPhotos: {
		{attr: "data-full-name", key: "fullName"},
		{attr: "data-platform-name", key: "platformName"},
	},
}

// SplitPrices splits the raw comma-separated price attribute into an ordered
// list. An absent attribute arrives as the empty string and splits into a
// single empty-string element; downstream consumers rely on that exact shape,
// so it is preserved rather than special-cased away.
func SplitPrices(raw string) []string {
	return strings.Split(raw, ",")
}
