package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pricing/internal/delivery"
)

const (
	keyDeliveryMethods = "pricing:catalog:delivery-methods"
	keyTaxRate         = "pricing:catalog:tax-rate"
)

// ErrNotFound indicates the requested delivery method does not exist.
var ErrNotFound = errors.New("delivery method not found")

// Source supplies catalog data when the cache misses.
type Source interface {
	DeliveryMethods(ctx context.Context) ([]delivery.Method, error)
	TaxRatePercent(ctx context.Context) (decimal.Decimal, error)
}

// StaticSource serves a snapshot loaded at startup: delivery methods from the
// bootstrap file and the tax rate from configuration.
type StaticSource struct {
	Methods    []delivery.Method
	TaxPercent decimal.Decimal
}

// DeliveryMethods returns the configured method list.
func (s StaticSource) DeliveryMethods(_ context.Context) ([]delivery.Method, error) {
	return s.Methods, nil
}

// TaxRatePercent returns the configured store tax rate.
func (s StaticSource) TaxRatePercent(_ context.Context) (decimal.Decimal, error) {
	return s.TaxPercent, nil
}

// LoadMethodsFile parses a JSON array of delivery methods from disk.
func LoadMethodsFile(path string) ([]delivery.Method, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read delivery methods file: %w", err)
	}
	var methods []delivery.Method
	if err := json.Unmarshal(data, &methods); err != nil {
		return nil, fmt.Errorf("parse delivery methods file: %w", err)
	}
	return methods, nil
}

// Service resolves catalog reads through the Redis cache.
type Service struct {
	src   Source
	cache *Cache
}

// NewService constructs a catalog service. The cache may be nil.
func NewService(src Source, cache *Cache) (*Service, error) {
	if src == nil {
		return nil, errors.New("catalog source is required")
	}
	return &Service{src: src, cache: cache}, nil
}

// DeliveryMethods lists the delivery-method catalog, serving from cache when
// warm.
func (s *Service) DeliveryMethods(ctx context.Context) ([]delivery.Method, error) {
	var cached []delivery.Method
	if ok, err := s.cache.GetJSON(ctx, keyDeliveryMethods, &cached); err == nil && ok {
		return cached, nil
	}
	methods, err := s.src.DeliveryMethods(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, keyDeliveryMethods, methods)
	return methods, nil
}

// DeliveryMethod resolves one method by id. ErrNotFound when absent.
func (s *Service) DeliveryMethod(ctx context.Context, id string) (delivery.Method, error) {
	methods, err := s.DeliveryMethods(ctx)
	if err != nil {
		return delivery.Method{}, err
	}
	for _, m := range methods {
		if m.ID == id {
			return m, nil
		}
	}
	return delivery.Method{}, ErrNotFound
}

type taxPayload struct {
	Percent decimal.Decimal `json:"percent"`
}

// TaxRatePercent returns the store-wide tax rate setting.
func (s *Service) TaxRatePercent(ctx context.Context) (decimal.Decimal, error) {
	var cached taxPayload
	if ok, err := s.cache.GetJSON(ctx, keyTaxRate, &cached); err == nil && ok {
		return cached.Percent, nil
	}
	percent, err := s.src.TaxRatePercent(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	_ = s.cache.SetJSON(ctx, keyTaxRate, taxPayload{Percent: percent})
	return percent, nil
}

// Invalidate drops the cached catalog entries.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, keyDeliveryMethods, keyTaxRate)
}
