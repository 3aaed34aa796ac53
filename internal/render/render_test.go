package render

import (
	"strings"
	"testing"

	"github.com/wrightlabs/sitewright/internal/models"
)

func sampleContent() *models.SiteContent {
	c := &models.SiteContent{}
	c.CompanyName = "Smith Plumbing"
	c.BrandColor = "#2563eb"
	c.Industry = "plumbing"
	c.Location = "Dallas, TX"
	c.Phone = "(555) 010-2030"
	c.Hero.Badge = "24/7 Emergency Service"
	c.Hero.Headline.Line1 = "Dallas Plumbing"
	c.Hero.Headline.Line2 = "Done Right"
	c.Hero.Headline.Line3 = "The First Time"
	c.Hero.Subtext = "Licensed plumbers serving Dallas homes."
	c.Services.Title = "Our Services"
	c.Services.Cards = []models.ContentCard{{Title: "Drain Cleaning", Description: "Fast drain clearing."}}
	c.EmergencyCTA.Headline = "Burst pipe?"
	c.EmergencyCTA.ButtonText = "Call Now"
	c.Credentials.Headline = "Licensed & Insured"
	return c
}

func sampleImages() map[string]string {
	return map[string]string{
		"hero":        "https://photos.example.com/hero.jpg",
		"value":       "https://photos.example.com/value.jpg",
		"credentials": "https://photos.example.com/credentials.jpg",
		"gallery_0":   "https://photos.example.com/g0.jpg",
		"gallery_1":   "https://photos.example.com/g1.jpg",
		"gallery_2":   "https://photos.example.com/g2.jpg",
		"gallery_3":   "https://photos.example.com/g3.jpg",
	}
}

func TestSiteRendersContentAndImages(t *testing.T) {
	html, err := Site(sampleContent(), sampleImages())
	if err != nil {
		t.Fatalf("Site failed: %v", err)
	}

	for _, want := range []string{
		"Smith Plumbing",
		"Dallas Plumbing",
		"Drain Cleaning",
		"https://photos.example.com/hero.jpg",
		"https://photos.example.com/value.jpg",
		"https://photos.example.com/g3.jpg",
		"(555) 010-2030",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered site missing %q", want)
		}
	}
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("expected standalone HTML document")
	}
}

func TestSiteEscapesContent(t *testing.T) {
	content := sampleContent()
	content.Hero.Subtext = `<script>alert("x")</script>`

	html, err := Site(content, sampleImages())
	if err != nil {
		t.Fatalf("Site failed: %v", err)
	}
	if strings.Contains(html, `<script>alert`) {
		t.Error("model-supplied content must be HTML-escaped")
	}
}

func TestSiteRequiresContent(t *testing.T) {
	if _, err := Site(nil, sampleImages()); err == nil {
		t.Error("expected error for nil content")
	}
}
