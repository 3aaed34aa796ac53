package models

import "time"

// SiteRequest is the business profile submitted by the user.
type SiteRequest struct {
	Industry    string `json:"industry"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	BrandColor  string `json:"brand_color"`
}

// SiteContent is the structured content object produced by the text-content
// generation call. The shape mirrors the response schema sent to the model.
type SiteContent struct {
	CompanyName string `json:"companyName"`
	BrandColor  string `json:"brandColor"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Hero        struct {
		Badge    string `json:"badge"`
		Headline struct {
			Line1 string `json:"line1"`
			Line2 string `json:"line2"`
			Line3 string `json:"line3"`
		} `json:"headline"`
		Subtext         string           `json:"subtext"`
		TrustIndicators []TrustIndicator `json:"trustIndicators"`
	} `json:"hero"`
	Services struct {
		Badge    string        `json:"badge"`
		Title    string        `json:"title"`
		Subtitle string        `json:"subtitle"`
		Cards    []ContentCard `json:"cards"`
	} `json:"services"`
	FeatureHighlight struct {
		Badge       string   `json:"badge"`
		Headline    string   `json:"headline"`
		Description string   `json:"description"`
		Features    []string `json:"features"`
		Quote       string   `json:"quote"`
	} `json:"featureHighlight"`
	ProcessSteps struct {
		Badge    string        `json:"badge"`
		Title    string        `json:"title"`
		Subtitle string        `json:"subtitle"`
		Steps    []ContentCard `json:"steps"`
	} `json:"processSteps"`
	EmergencyCTA struct {
		Headline   string `json:"headline"`
		Subtext    string `json:"subtext"`
		ButtonText string `json:"buttonText"`
	} `json:"emergencyCTA"`
	Credentials struct {
		Badge             string   `json:"badge"`
		Headline          string   `json:"headline"`
		Description       string   `json:"description"`
		Items             []string `json:"items"`
		RatingScore       string   `json:"ratingScore"`
		ReviewCount       string   `json:"reviewCount"`
		CertificationText string   `json:"certificationText"`
	} `json:"credentials"`
	ContactForm struct {
		SidebarTitle       string        `json:"sidebarTitle"`
		SidebarDescription string        `json:"sidebarDescription"`
		ContactMethods     []ContentCard `json:"contactMethods"`
		FormTitle          string        `json:"formTitle"`
	} `json:"contactForm"`
}

// TrustIndicator is a small icon/label pair shown under the hero headline.
type TrustIndicator struct {
	Icon     string `json:"icon"`
	Label    string `json:"label"`
	Sublabel string `json:"sublabel"`
}

// ContentCard is the icon/title/description triple used by several sections.
type ContentCard struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Subtitle    string `json:"subtitle,omitempty"`
}

// GenerationProgress is the user-visible progress snapshot for a run.
type GenerationProgress struct {
	Percent float64 `json:"percent"`
	Message string  `json:"message"`
}

// Run status values for a pending site.
const (
	StatusGenerating = "generating"
	StatusReady      = "ready"
	StatusFailed     = "failed"
	StatusDeployed   = "deployed"
)

// PendingSite is one site-generation session awaiting preview, payment and
// deployment.
type PendingSite struct {
	ID        string             `json:"id"`
	Request   SiteRequest        `json:"request"`
	Status    string             `json:"status"`
	Error     string             `json:"error,omitempty"`
	Content   *SiteContent       `json:"content,omitempty"`
	Images    map[string]string  `json:"images,omitempty"`
	HTML      string             `json:"-"`
	Progress  GenerationProgress `json:"progress"`
	DeployURL string             `json:"deploy_url,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}
