// Package render emits the static one-page site consumed by the preview and
// the deployment payload.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/wrightlabs/sitewright/internal/models"
)

type pageData struct {
	Content *models.SiteContent
	Images  map[string]string
}

var pageTemplate = template.Must(template.New("site").Funcs(template.FuncMap{
	"img": func(images map[string]string, slot string) template.URL {
		return template.URL(images[slot])
	},
}).Parse(pageHTML))

// Site renders the content object and resolved slot images to a standalone
// HTML document.
func Site(content *models.SiteContent, images map[string]string) (string, error) {
	if content == nil {
		return "", fmt.Errorf("no content to render")
	}
	var sb strings.Builder
	data := pageData{Content: content, Images: images}
	if err := pageTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render site: %w", err)
	}
	return sb.String(), nil
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Content.CompanyName}} | {{.Content.Industry}} in {{.Content.Location}}</title>
<style>
  :root { --brand: {{.Content.BrandColor}}; }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: 'Inter', system-ui, sans-serif; color: #111; }
  section { padding: 64px 24px; max-width: 1100px; margin: 0 auto; }
  .badge { display: inline-block; color: var(--brand); font-weight: 700; text-transform: uppercase; font-size: 12px; letter-spacing: 2px; margin-bottom: 12px; }
  .hero { position: relative; color: #fff; text-align: center; padding: 140px 24px; background: linear-gradient(rgba(0,0,0,.55), rgba(0,0,0,.55)), url('{{img .Images "hero"}}') center/cover; }
  .hero h1 { font-size: 44px; line-height: 1.15; }
  .hero .accent { color: var(--brand); }
  .hero p { margin: 16px auto 0; max-width: 560px; font-size: 18px; }
  .trust { display: flex; gap: 32px; justify-content: center; margin-top: 40px; flex-wrap: wrap; }
  .trust div { font-size: 14px; }
  .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 20px; margin-top: 32px; }
  .card { border: 1px solid #e5e5e5; border-radius: 12px; padding: 24px; }
  .card h3 { margin-bottom: 8px; }
  .split { display: grid; grid-template-columns: 1fr 1fr; gap: 40px; align-items: center; }
  .split img { width: 100%; border-radius: 12px; }
  .cta { background: var(--brand); color: #fff; text-align: center; border-radius: 16px; }
  .cta a { display: inline-block; margin-top: 20px; background: #fff; color: var(--brand); padding: 14px 32px; border-radius: 999px; font-weight: 700; text-decoration: none; }
  .gallery { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 16px; margin-top: 24px; }
  .gallery img { width: 100%; height: 180px; object-fit: cover; border-radius: 8px; }
  footer { text-align: center; padding: 32px; color: #777; font-size: 14px; }
</style>
</head>
<body>

<header class="hero">
  <span class="badge">{{.Content.Hero.Badge}}</span>
  <h1>{{.Content.Hero.Headline.Line1}}<br><span class="accent">{{.Content.Hero.Headline.Line2}}</span><br>{{.Content.Hero.Headline.Line3}}</h1>
  <p>{{.Content.Hero.Subtext}}</p>
  <div class="trust">
    {{range .Content.Hero.TrustIndicators}}<div><strong>{{.Label}}</strong><br>{{.Sublabel}}</div>{{end}}
  </div>
</header>

<section>
  <span class="badge">{{.Content.Services.Badge}}</span>
  <h2>{{.Content.Services.Title}}</h2>
  <p>{{.Content.Services.Subtitle}}</p>
  <div class="cards">
    {{range .Content.Services.Cards}}<div class="card"><h3>{{.Title}}</h3><p>{{.Description}}</p></div>{{end}}
  </div>
</section>

<section class="split">
  <div>
    <span class="badge">{{.Content.FeatureHighlight.Badge}}</span>
    <h2>{{.Content.FeatureHighlight.Headline}}</h2>
    <p>{{.Content.FeatureHighlight.Description}}</p>
    <ul>
      {{range .Content.FeatureHighlight.Features}}<li>{{.}}</li>{{end}}
    </ul>
    <blockquote>{{.Content.FeatureHighlight.Quote}}</blockquote>
  </div>
  <img src="{{img .Images "value"}}" alt="{{.Content.Industry}} equipment">
</section>

<section>
  <span class="badge">{{.Content.ProcessSteps.Badge}}</span>
  <h2>{{.Content.ProcessSteps.Title}}</h2>
  <p>{{.Content.ProcessSteps.Subtitle}}</p>
  <div class="cards">
    {{range .Content.ProcessSteps.Steps}}<div class="card"><h3>{{.Title}}</h3><p>{{.Description}}</p></div>{{end}}
  </div>
</section>

<section>
  <h2>Our Work</h2>
  <div class="gallery">
    <img src="{{img .Images "gallery_0"}}" alt="Completed project">
    <img src="{{img .Images "gallery_1"}}" alt="Completed project">
    <img src="{{img .Images "gallery_2"}}" alt="Completed project">
    <img src="{{img .Images "gallery_3"}}" alt="Completed project">
  </div>
</section>

<section class="cta">
  <h2>{{.Content.EmergencyCTA.Headline}}</h2>
  <p>{{.Content.EmergencyCTA.Subtext}}</p>
  <a href="tel:{{.Content.Phone}}">{{.Content.EmergencyCTA.ButtonText}}</a>
</section>

<section class="split">
  <img src="{{img .Images "credentials"}}" alt="{{.Content.CompanyName}} team">
  <div>
    <span class="badge">{{.Content.Credentials.Badge}}</span>
    <h2>{{.Content.Credentials.Headline}}</h2>
    <p>{{.Content.Credentials.Description}}</p>
    <ul>
      {{range .Content.Credentials.Items}}<li>{{.}}</li>{{end}}
    </ul>
    <p><strong>{{.Content.Credentials.RatingScore}}</strong> ({{.Content.Credentials.ReviewCount}} reviews) &middot; {{.Content.Credentials.CertificationText}}</p>
  </div>
</section>

<section>
  <span class="badge">{{.Content.ContactForm.SidebarTitle}}</span>
  <h2>{{.Content.ContactForm.FormTitle}}</h2>
  <p>{{.Content.ContactForm.SidebarDescription}}</p>
  <div class="cards">
    {{range .Content.ContactForm.ContactMethods}}<div class="card"><h3>{{.Title}}</h3><p>{{.Subtitle}}</p></div>{{end}}
  </div>
</section>

<footer>
  &copy; {{.Content.CompanyName}} &middot; {{.Content.Location}} &middot; <a href="tel:{{.Content.Phone}}">{{.Content.Phone}}</a>
</footer>

</body>
</html>
`
