package gemini

import "github.com/google/generative-ai-go/genai"

// siteContentSchema is the structured-output schema for site content. The
// shape must stay in sync with models.SiteContent.
func siteContentSchema() *genai.Schema {
	cardSchema := obj(map[string]*genai.Schema{
		"icon":        str(),
		"title":       str(),
		"description": str(),
	}, "title", "description")

	return obj(map[string]*genai.Schema{
		"companyName": str(),
		"brandColor":  str(),
		"industry":    str(),
		"location":    str(),
		"phone":       str(),
		"hero": obj(map[string]*genai.Schema{
			"badge": str(),
			"headline": obj(map[string]*genai.Schema{
				"line1": str(),
				"line2": str(),
				"line3": str(),
			}, "line1", "line2", "line3"),
			"subtext": str(),
			"trustIndicators": arr(obj(map[string]*genai.Schema{
				"icon":     str(),
				"label":    str(),
				"sublabel": str(),
			}, "icon", "label", "sublabel")),
		}, "badge", "headline", "subtext", "trustIndicators"),
		"services": obj(map[string]*genai.Schema{
			"badge":    str(),
			"title":    str(),
			"subtitle": str(),
			"cards":    arr(cardSchema),
		}, "badge", "title", "subtitle", "cards"),
		"featureHighlight": obj(map[string]*genai.Schema{
			"badge":       str(),
			"headline":    str(),
			"description": str(),
			"features":    arr(str()),
			"quote":       str(),
		}, "badge", "headline", "description", "features", "quote"),
		"processSteps": obj(map[string]*genai.Schema{
			"badge":    str(),
			"title":    str(),
			"subtitle": str(),
			"steps":    arr(cardSchema),
		}, "badge", "title", "subtitle", "steps"),
		"emergencyCTA": obj(map[string]*genai.Schema{
			"headline":   str(),
			"subtext":    str(),
			"buttonText": str(),
		}, "headline", "subtext", "buttonText"),
		"credentials": obj(map[string]*genai.Schema{
			"badge":             str(),
			"headline":          str(),
			"description":       str(),
			"items":             arr(str()),
			"ratingScore":       str(),
			"reviewCount":       str(),
			"certificationText": str(),
		}, "badge", "headline", "description", "items", "ratingScore", "reviewCount", "certificationText"),
		"contactForm": obj(map[string]*genai.Schema{
			"sidebarTitle":       str(),
			"sidebarDescription": str(),
			"contactMethods": arr(obj(map[string]*genai.Schema{
				"icon":     str(),
				"title":    str(),
				"subtitle": str(),
			}, "icon", "title", "subtitle")),
			"formTitle": str(),
		}, "sidebarTitle", "sidebarDescription", "contactMethods", "formTitle"),
	}, "companyName", "brandColor", "industry", "location", "phone",
		"hero", "services", "featureHighlight", "processSteps",
		"emergencyCTA", "credentials", "contactForm")
}

func obj(props map[string]*genai.Schema, required ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
}

func str() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func arr(item *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: item}
}
