// Package generation coordinates one end-to-end site generation run: the
// text-content call and all image-slot resolutions fan out concurrently and
// feed the progress tracker as they land.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wrightlabs/sitewright/internal/config"
	"github.com/wrightlabs/sitewright/internal/gemini"
	"github.com/wrightlabs/sitewright/internal/models"
	"github.com/wrightlabs/sitewright/internal/ollama"
	"github.com/wrightlabs/sitewright/internal/openai"
	"github.com/wrightlabs/sitewright/internal/pexels"
	"github.com/wrightlabs/sitewright/internal/pixabay"
	"github.com/wrightlabs/sitewright/internal/progress"
	"github.com/wrightlabs/sitewright/internal/providers"
	"github.com/wrightlabs/sitewright/internal/resolver"
	"github.com/wrightlabs/sitewright/internal/selection"
	"github.com/wrightlabs/sitewright/internal/websearch"
)

// ContentGenerator produces the structured site content object. Its failure
// is the only run-fatal condition.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req models.SiteRequest) (*models.SiteContent, error)
}

// Service runs site generations against a fixed provider chain.
type Service struct {
	content     ContentGenerator
	steps       []resolver.Step
	searchCount int
}

func NewService(content ContentGenerator, steps []resolver.Step, searchCount int) *Service {
	return &Service{content: content, steps: steps, searchCount: searchCount}
}

// FromConfig wires the real provider adapters in the configured priority
// order.
func FromConfig(cfg config.Config) (*Service, error) {
	gem := gemini.New()

	var content ContentGenerator = gem
	if cfg.ContentProvider == "ollama" {
		content = ollama.New()
	}

	steps := make([]resolver.Step, 0, len(cfg.Providers))
	for _, name := range cfg.Providers {
		switch name {
		case "gemini":
			steps = append(steps, resolver.Step{Generator: gem})
		case "openai":
			steps = append(steps, resolver.Step{Generator: openai.New()})
		case "pexels":
			steps = append(steps, resolver.Step{Searcher: pexels.New()})
		case "pixabay":
			steps = append(steps, resolver.Step{Searcher: pixabay.New()})
		case "websearch":
			steps = append(steps, resolver.Step{Searcher: websearch.New()})
		default:
			return nil, fmt.Errorf("unknown image provider: %s", name)
		}
	}
	return NewService(content, steps, cfg.SearchCount), nil
}

// Result is the assembled output of a successful run.
type Result struct {
	Content *models.SiteContent
	Images  map[string]string
}

// SlotsFor derives the image slots for one run from the industry and
// location terms.
func SlotsFor(industry, location string) []resolver.Slot {
	slots := []resolver.Slot{
		{
			Name:        "hero",
			Category:    "hero",
			Query:       fmt.Sprintf("%s contractor working", industry),
			Prompt:      fmt.Sprintf("Ultra-realistic commercial photography of a %s professional at work in %s, cinematic wide-angle shot, dramatic natural lighting, high-end corporate aesthetic, professional workspace visible, depth of field, no text overlays, clean composition", industry, location),
			Orientation: providers.OrientationLandscape,
			AspectRatio: "16:9",
		},
		{
			Name:        "value",
			Category:    "value",
			Query:       fmt.Sprintf("%s tools equipment", industry),
			Prompt:      fmt.Sprintf("Professional %s equipment or specialized tools close-up photography, ultra-realistic commercial quality, dramatic lighting, high-end product photography aesthetic, sharp focus, no text, clean background", industry),
			Orientation: providers.OrientationLandscape,
			AspectRatio: "4:3",
		},
		{
			Name:        "credentials",
			Category:    "credentials",
			Query:       fmt.Sprintf("%s crew service truck", industry),
			Prompt:      fmt.Sprintf("Professional %s company team with service vehicle, or completed high-end %s project, ultra-realistic commercial photography, professional uniforms, corporate aesthetic, natural daylight, no visible text", industry, industry),
			Orientation: providers.OrientationLandscape,
			AspectRatio: "16:9",
		},
	}

	galleryQueries := []string{
		fmt.Sprintf("%s repair project", industry),
		fmt.Sprintf("%s installation work", industry),
		fmt.Sprintf("%s service job site", industry),
		fmt.Sprintf("%s finished project", industry),
	}
	for i, query := range galleryQueries {
		slots = append(slots, resolver.Slot{
			Name:        fmt.Sprintf("gallery_%d", i),
			Category:    "gallery",
			Query:       query,
			Prompt:      fmt.Sprintf("Candid photograph of a completed %s job, ultra-realistic commercial photography, natural lighting, real job site, no text", industry),
			Orientation: providers.OrientationLandscape,
			AspectRatio: "4:3",
		})
	}
	return slots
}

// Run executes one generation. Slot failures degrade to static fallbacks and
// never fail the run; only a content-generation failure is fatal, in which
// case in-flight slot resolutions are allowed to finish and their results
// are discarded.
func (s *Service) Run(ctx context.Context, req models.SiteRequest, tracker *progress.Tracker) (*Result, error) {
	tracker.SetTarget(5, "Analyzing your business profile...")

	used := selection.NewUsedAssets()
	res := resolver.New(s.steps, used, s.searchCount)
	slots := SlotsFor(req.Industry, req.Location)

	var (
		mu      sync.Mutex
		images  = make(map[string]string, len(slots))
		content *models.SiteContent
	)

	var g errgroup.Group
	g.Go(func() error {
		c, err := s.content.GenerateContent(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to generate site content: %w", err)
		}
		content = c
		tracker.SetTarget(25, "Designing your custom layout...")
		return nil
	})

	total := len(slots)
	for _, slot := range slots {
		slot := slot
		g.Go(func() error {
			url := res.Resolve(ctx, slot)
			mu.Lock()
			images[slot.Name] = url
			done := len(images)
			mu.Unlock()
			tracker.SetTarget(25+float64(65*done)/float64(total), "Capturing professional photography...")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("Site generation failed", "company", req.CompanyName, "error", err)
		return nil, err
	}

	tracker.Complete("Building your custom website...")
	slog.Info("Site generation complete", "company", req.CompanyName, "slots", len(images), "unique_assets", used.Len())
	return &Result{Content: content, Images: images}, nil
}

// ResolveImagesForSite resolves every image slot for the given terms without
// a content call. A fresh used-asset set scopes uniqueness to this call.
func (s *Service) ResolveImagesForSite(ctx context.Context, industry, location string) map[string]string {
	used := selection.NewUsedAssets()
	res := resolver.New(s.steps, used, s.searchCount)
	slots := SlotsFor(industry, location)

	var (
		mu     sync.Mutex
		images = make(map[string]string, len(slots))
		wg     sync.WaitGroup
	)
	for _, slot := range slots {
		slot := slot
		wg.Add(1)
		go func() {
			defer wg.Done()
			url := res.Resolve(ctx, slot)
			mu.Lock()
			images[slot.Name] = url
			mu.Unlock()
		}()
	}
	wg.Wait()
	return images
}
