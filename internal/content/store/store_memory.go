package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"bizform/internal/content"
)

// MemoryStore serves items from process memory. Seeded with the built-in
// knowledge base so the site has content before Postgres is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[content.Kind][]content.Item
}

// NewMemory constructs an empty in-memory content store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		items: make(map[content.Kind][]content.Item),
	}
}

// NewMemorySeeded constructs a store preloaded with the built-in articles.
func NewMemorySeeded() *MemoryStore {
	s := NewMemory()
	for _, item := range seedItems() {
		s.Put(item)
	}
	return s
}

// Put adds or replaces an item by kind and slug.
func (s *MemoryStore) Put(item content.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.items[item.Kind]
	for i := range list {
		if list[i].Slug == item.Slug {
			list[i] = item
			return
		}
	}
	s.items[item.Kind] = append(list, item)
}

func (s *MemoryStore) ListByKind(_ context.Context, kind content.Kind) ([]content.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := append([]content.Item(nil), s.items[kind]...)
	sort.Slice(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	return items, nil
}

func (s *MemoryStore) GetBySlug(_ context.Context, kind content.Kind, slug string) (*content.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items[kind] {
		if item.Slug == slug {
			copied := item
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func seedItems() []content.Item {
	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 10, 0, 0, 0, time.UTC)
	}
	return []content.Item{
		{
			ID:          uuid.MustParse("0b51f1e1-9ffe-4a3a-8f0f-2b1c6c1f0a01"),
			Kind:        content.KindNews,
			Slug:        "npd-regime-extended",
			Title:       "NPD regime extended through 2028",
			Summary:     "The professional income tax experiment keeps its 4-6% rates.",
			Body:        "The self-employment regime introduced as an experiment continues with unchanged rates: 4% on income from individuals and 6% on income from companies. The annual cap stays at 2.4 million rubles.",
			Tags:        []string{"npd", "tax"},
			PublishedAt: day(2025, time.December, 12),
		},
		{
			ID:          uuid.MustParse("0b51f1e1-9ffe-4a3a-8f0f-2b1c6c1f0a02"),
			Kind:        content.KindNews,
			Slug:        "usn-vat-thresholds",
			Title:       "VAT arrives for large USN businesses",
			Summary:     "Simplified-regime companies above 60 million rubles now charge VAT.",
			Body:        "Businesses on the simplified tax system with yearly income above 60 million rubles became VAT payers. Reduced rates of 5% and 7% are available instead of the general 20% rate.",
			Tags:        []string{"usn", "vat"},
			PublishedAt: day(2025, time.November, 3),
		},
		{
			ID:          uuid.MustParse("0b51f1e1-9ffe-4a3a-8f0f-2b1c6c1f0a03"),
			Kind:        content.KindArticle,
			Slug:        "npd-vs-ip",
			Title:       "NPD or IP: choosing your first business form",
			Summary:     "When self-employment is enough and when you need to register as an entrepreneur.",
			Body:        "NPD fits solo work for individuals within the 2.4 million ruble cap: no reporting, no contributions, registration in an app. Register as an IP when you plan to hire, need a licensed activity, or expect to outgrow the cap.",
			Tags:        []string{"npd", "ip", "guide"},
			PublishedAt: day(2025, time.October, 20),
		},
		{
			ID:          uuid.MustParse("0b51f1e1-9ffe-4a3a-8f0f-2b1c6c1f0a04"),
			Kind:        content.KindArticle,
			Slug:        "usn-6-or-15",
			Title:       "USN 6% or 15%: picking the cheaper variant",
			Summary:     "A rule of thumb for choosing between income and income-minus-expenses.",
			Body:        "Compare 6% of income against 15% of profit. With expenses below roughly 60% of revenue the income variant wins; above that the profit variant is cheaper. Recalculate yearly, the regime can be switched.",
			Tags:        []string{"usn", "tax", "guide"},
			PublishedAt: day(2025, time.September, 8),
		},
		{
			ID:          uuid.MustParse("0b51f1e1-9ffe-4a3a-8f0f-2b1c6c1f0a05"),
			Kind:        content.KindCaseStudy,
			Slug:        "designer-goes-npd",
			Title:       "A freelance designer moves to NPD",
			Summary:     "From undeclared income to a 4% rate in one afternoon.",
			Body:        "A designer earning 120 thousand rubles a month from individual clients registered through the Moy Nalog app. Taxes dropped to 4% with zero paperwork, and corporate clients followed once receipts became available.",
			Tags:        []string{"npd", "freelance"},
			PublishedAt: day(2025, time.August, 15),
		},
		{
			ID:          uuid.MustParse("0b51f1e1-9ffe-4a3a-8f0f-2b1c6c1f0a06"),
			Kind:        content.KindCaseStudy,
			Slug:        "studio-becomes-ooo",
			Title:       "Two partners turn a studio into an OOO",
			Summary:     "Shared ownership forced the move from IP to a company.",
			Body:        "A web studio run informally by two partners incorporated as an OOO with equal shares. Limited liability and a proper shareholder agreement cost them heavier accounting, handled by an outsourced bookkeeper.",
			Tags:        []string{"ooo", "partners"},
			PublishedAt: day(2025, time.July, 2),
		},
		{
			ID:          uuid.MustParse("0b51f1e1-9ffe-4a3a-8f0f-2b1c6c1f0a07"),
			Kind:        content.KindFAQ,
			Slug:        "can-npd-hire",
			Title:       "Can a self-employed person hire employees?",
			Summary:     "No. NPD is strictly a solo regime.",
			Body:        "NPD does not allow employment contracts. Subcontracting to other self-employed people is possible, but hiring staff requires registering as an IP or founding an OOO.",
			Tags:        []string{"npd", "faq"},
			PublishedAt: day(2025, time.June, 10),
		},
		{
			ID:          uuid.MustParse("0b51f1e1-9ffe-4a3a-8f0f-2b1c6c1f0a08"),
			Kind:        content.KindFAQ,
			Slug:        "combine-npd-and-job",
			Title:       "Can I combine NPD with regular employment?",
			Summary:     "Yes, salary and professional income are taxed separately.",
			Body:        "An employment contract and self-employment coexist: the employer withholds income tax from salary as usual, while side income is declared under NPD. Working for your own employer as self-employed is restricted for two years after leaving.",
			Tags:        []string{"npd", "faq"},
			PublishedAt: day(2025, time.May, 28),
		},
	}
}
