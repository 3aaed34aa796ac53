package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/wrightlabs/sitewright/internal/providers"
	"github.com/wrightlabs/sitewright/internal/selection"
)

type fakeSearcher struct {
	name    string
	batches map[string][]providers.Candidate
	err     error
	calls   int
}

func (f *fakeSearcher) Name() string { return f.name }

func (f *fakeSearcher) Search(ctx context.Context, query, orientation string, count int) ([]providers.Candidate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.batches[query], nil
}

type fakeGenerator struct {
	name  string
	cand  *providers.Candidate
	err   error
	calls int32
}

func (f *fakeGenerator) Name() string { return f.name }

func (f *fakeGenerator) Generate(ctx context.Context, prompt, aspectRatio string) (*providers.Candidate, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.cand, nil
}

func goodBatch(prefix string, n int) []providers.Candidate {
	batch := make([]providers.Candidate, n)
	for i := range batch {
		batch[i] = providers.Candidate{
			URL:      fmt.Sprintf("https://photos.example.com/%s-%d.jpg", prefix, i),
			ID:       fmt.Sprintf("%s-%d", prefix, i),
			Metadata: "plumbing technician at work with tools",
			Provider: "pexels",
		}
	}
	return batch
}

func testSlot() Slot {
	return Slot{
		Name:        "hero",
		Category:    "hero",
		Query:       "plumbing contractor working",
		Prompt:      "a plumbing professional at work",
		Orientation: providers.OrientationLandscape,
		AspectRatio: "16:9",
	}
}

func TestResolveUsesFirstProviderWhenItDelivers(t *testing.T) {
	gen := &fakeGenerator{name: "gemini", cand: &providers.Candidate{URL: "data:image/png;base64,xyz", ID: "gen-1", Provider: "gemini"}}
	search := &fakeSearcher{name: "pexels", batches: map[string][]providers.Candidate{
		"plumbing contractor working": goodBatch("px", 3),
	}}

	used := selection.NewUsedAssets()
	r := New([]Step{{Generator: gen}, {Searcher: search}}, used, 10)

	url := r.Resolve(context.Background(), testSlot())
	if url != "data:image/png;base64,xyz" {
		t.Errorf("expected generator result, got %s", url)
	}
	if search.calls != 0 {
		t.Errorf("secondary provider should not be tried after a primary hit, calls=%d", search.calls)
	}
	if !used.Contains("gen-1") {
		t.Error("generated asset was not registered as used")
	}
}

func TestResolveAdvancesPastProviderError(t *testing.T) {
	gen := &fakeGenerator{name: "gemini", err: errors.New("auth failure")}
	search := &fakeSearcher{name: "pexels", batches: map[string][]providers.Candidate{
		"plumbing contractor working": goodBatch("px", 3),
	}}

	r := New([]Step{{Generator: gen}, {Searcher: search}}, selection.NewUsedAssets(), 10)

	url := r.Resolve(context.Background(), testSlot())
	if url == "" || url == FallbackURL("hero") {
		t.Errorf("expected search result after primary error, got %s", url)
	}
	if gen.calls != 1 || search.calls != 1 {
		t.Errorf("expected both providers tried once, got %d and %d", gen.calls, search.calls)
	}
}

func TestResolveAdvancesPastEmptyBatch(t *testing.T) {
	empty := &fakeSearcher{name: "pexels"}
	full := &fakeSearcher{name: "pixabay", batches: map[string][]providers.Candidate{
		"plumbing contractor working": goodBatch("pb", 2),
	}}

	r := New([]Step{{Searcher: empty}, {Searcher: full}}, selection.NewUsedAssets(), 10)

	url := r.Resolve(context.Background(), testSlot())
	if url != "https://photos.example.com/pb-0.jpg" {
		t.Errorf("expected pixabay result, got %s", url)
	}
}

func TestResolveFallsBackToStaticWhenAllProvidersFail(t *testing.T) {
	gen := &fakeGenerator{name: "gemini", err: errors.New("unavailable")}
	empty := &fakeSearcher{name: "pexels"}
	broken := &fakeSearcher{name: "websearch", err: errors.New("quota exceeded")}

	r := New([]Step{{Generator: gen}, {Searcher: empty}, {Searcher: broken}}, selection.NewUsedAssets(), 10)

	slot := testSlot()
	url := r.Resolve(context.Background(), slot)
	if url != FallbackURL("hero") {
		t.Errorf("expected static fallback, got %s", url)
	}
}

func TestResolveSkipsDuplicateGeneratedAsset(t *testing.T) {
	dup := &providers.Candidate{URL: "data:image/png;base64,same", ID: "gen-same", Provider: "gemini"}
	gen := &fakeGenerator{name: "gemini", cand: dup}
	search := &fakeSearcher{name: "pexels", batches: map[string][]providers.Candidate{
		"plumbing contractor working": goodBatch("px", 2),
	}}

	used := selection.NewUsedAssets()
	used.Register("gen-same")
	r := New([]Step{{Generator: gen}, {Searcher: search}}, used, 10)

	url := r.Resolve(context.Background(), testSlot())
	if url == dup.URL {
		t.Error("resolver reused an already-bound generated asset")
	}
	if url == FallbackURL("hero") {
		t.Error("resolver fell through to fallback despite usable search batch")
	}
}

func TestResolveNeverBindsOneAssetToTwoSlots(t *testing.T) {
	search := &fakeSearcher{name: "pexels", batches: map[string][]providers.Candidate{
		"plumbing contractor working": goodBatch("px", 1),
	}}

	used := selection.NewUsedAssets()
	r := New([]Step{{Searcher: search}}, used, 10)

	first := r.Resolve(context.Background(), testSlot())
	second := r.Resolve(context.Background(), testSlot())
	if first == second {
		t.Errorf("two slots received the same asset: %s", first)
	}
	if second != FallbackURL("hero") {
		t.Errorf("exhausted slot should degrade to fallback, got %s", second)
	}
}

func TestResolveConcurrentSlotsSameGeneratedAssetHasOneWinner(t *testing.T) {
	same := &providers.Candidate{URL: "data:image/png;base64,identical", ID: "gen-identical", Provider: "gemini"}
	gen := &fakeGenerator{name: "gemini", cand: same}

	used := selection.NewUsedAssets()
	r := New([]Step{{Generator: gen}}, used, 10)

	const slots = 8
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		urls = make(map[string]int)
	)
	for i := 0; i < slots; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			url := r.Resolve(context.Background(), testSlot())
			mu.Lock()
			urls[url]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	if urls[same.URL] != 1 {
		t.Errorf("generated asset bound to %d slots, want 1", urls[same.URL])
	}
	if urls[FallbackURL("hero")] != slots-1 {
		t.Errorf("expected %d slots to degrade to fallback, got %d", slots-1, urls[FallbackURL("hero")])
	}
}

func TestFallbackURLCoversAllCategories(t *testing.T) {
	for _, category := range []string{"hero", "value", "credentials", "gallery"} {
		if FallbackURL(category) == "" {
			t.Errorf("no fallback for category %s", category)
		}
	}
	if FallbackURL("unknown") == "" {
		t.Error("unknown category must still yield a fallback")
	}
}
