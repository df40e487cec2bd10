package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/server/config"
	"github.com/dmitrijs2005/electro/internal/server/models"
	"github.com/dmitrijs2005/electro/internal/server/repositories/products"
	"github.com/dmitrijs2005/electro/internal/server/repositories/repomanager"
)

// ResolutionMode tells how a search result was obtained.
type ResolutionMode string

const (
	ModeExact    ResolutionMode = "exact"
	ModeFallback ResolutionMode = "fallback"
	ModeEmpty    ResolutionMode = "empty"
)

const (
	MessageFallback = "No exact matches found. Here are some similar products:"
	MessageEmpty    = "No products found matching your criteria."
)

// fallbackPriceMargin widens each supplied price bound in the relaxed query.
const fallbackPriceMargin = 100

// ProductFilter is a structured product search. Zero values mean "not given".
type ProductFilter struct {
	Category     string
	Brand        string
	Availability string
	Warranty     string
	MinPrice     *float64
	MaxPrice     *float64
	Tags         []string
}

// ParseProductFilter reads category, brand, minPrice, maxPrice, availability,
// tags (comma separated) and warranty from q. Empty values are ignored; a
// price that is not a number is common.ErrInvalidInput.
func ParseProductFilter(q url.Values) (ProductFilter, error) {
	f := ProductFilter{
		Category:     q.Get("category"),
		Brand:        q.Get("brand"),
		Availability: q.Get("availability"),
		Warranty:     q.Get("warranty"),
	}

	var err error
	if f.MinPrice, err = parsePrice(q, "minPrice"); err != nil {
		return ProductFilter{}, err
	}
	if f.MaxPrice, err = parsePrice(q, "maxPrice"); err != nil {
		return ProductFilter{}, err
	}

	if raw := q.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		}
	}
	return f, nil
}

func parsePrice(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", common.ErrInvalidInput, key)
	}
	return &v, nil
}

// Exact is the primary query: every supplied field must match.
func (f ProductFilter) Exact() docstore.Filter {
	var conds []docstore.Condition
	if f.Category != "" {
		conds = append(conds, docstore.Eq(models.FieldCategory, f.Category))
	}
	if f.Brand != "" {
		conds = append(conds, docstore.Eq(models.FieldBrand, f.Brand))
	}
	if f.Availability != "" {
		conds = append(conds, docstore.Eq(models.FieldAvailability, f.Availability))
	}
	if f.Warranty != "" {
		conds = append(conds, docstore.Eq(models.FieldWarranty, f.Warranty))
	}
	if f.MinPrice != nil {
		conds = append(conds, docstore.Gte(models.FieldPrice, *f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, docstore.Lte(models.FieldPrice, *f.MaxPrice))
	}
	if len(f.Tags) > 0 {
		conds = append(conds, docstore.AnyOf(models.FieldTags, f.Tags...))
	}
	return docstore.Where(conds...)
}

// Relaxed is the fallback query. It keeps category, or brand when no
// category was given, and availability. Each price bound flips direction and
// moves outward by the margin: minPrice becomes price <= minPrice+100 and
// maxPrice becomes price >= maxPrice-100. Tags and warranty are dropped.
func (f ProductFilter) Relaxed() docstore.Filter {
	var conds []docstore.Condition
	switch {
	case f.Category != "":
		conds = append(conds, docstore.Eq(models.FieldCategory, f.Category))
	case f.Brand != "":
		conds = append(conds, docstore.Eq(models.FieldBrand, f.Brand))
	}
	if f.Availability != "" {
		conds = append(conds, docstore.Eq(models.FieldAvailability, f.Availability))
	}
	if f.MinPrice != nil {
		conds = append(conds, docstore.Lte(models.FieldPrice, *f.MinPrice+fallbackPriceMargin))
	}
	if f.MaxPrice != nil {
		conds = append(conds, docstore.Gte(models.FieldPrice, *f.MaxPrice-fallbackPriceMargin))
	}
	return docstore.Where(conds...)
}

// Resolution is the outcome of a search.
type Resolution struct {
	Mode     ResolutionMode    `json:"mode"`
	Message  string            `json:"message,omitempty"`
	Products []*models.Product `json:"products"`
}

// Resolver runs product searches against the canonical partition.
type Resolver struct {
	catalog products.Partition
}

func NewResolver(m repomanager.RepositoryManager, cfg *config.Config) (*Resolver, error) {
	canonical, err := canonicalPartition(m, cfg)
	if err != nil {
		return nil, err
	}
	return &Resolver{catalog: canonical}, nil
}

// Resolve runs the exact query and, only when it matches nothing, the relaxed
// one.
func (r *Resolver) Resolve(ctx context.Context, f ProductFilter) (*Resolution, error) {
	matched, err := r.catalog.Find(ctx, f.Exact())
	if err != nil {
		return nil, common.Internal("Resolver.Resolve", err)
	}
	if len(matched) > 0 {
		return &Resolution{Mode: ModeExact, Products: matched}, nil
	}

	similar, err := r.catalog.Find(ctx, f.Relaxed())
	if err != nil {
		return nil, common.Internal("Resolver.Resolve", err)
	}
	if len(similar) > 0 {
		return &Resolution{Mode: ModeFallback, Message: MessageFallback, Products: similar}, nil
	}

	return &Resolution{Mode: ModeEmpty, Message: MessageEmpty, Products: []*models.Product{}}, nil
}
