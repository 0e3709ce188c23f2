// Package menu fetches the restaurant menu and falls back to a built-in one.
package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"aroma-storefront/internal/domain"
	"aroma-storefront/internal/upstream"

	"go.uber.org/zap"
)

var ErrInvalidMenuShape = errors.New("invalid menu data structure")

// HTTPStatusError is returned when the menu endpoint answers with a non-2xx status.
type HTTPStatusError struct {
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Loader struct {
	baseURL string
	client  HTTPClient
	logger  *zap.Logger
	now     func() time.Time
}

func NewLoader(baseURL string, client HTTPClient, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  client,
		logger:  logger,
		now:     time.Now,
	}
}

type menuPayload struct {
	Categories *[]domain.Category `json:"categories"`
	Items      *[]domain.MenuItem `json:"items"`
}

// Fetch requests the menu once with the diner's cookies and keeps any cookies
// the API sets in return. The t query parameter busts caches between the
// storefront and the restaurant API.
func (l *Loader) Fetch(ctx context.Context, cookies domain.UpstreamCookies) (domain.Menu, error) {
	url := l.baseURL + "/api/menu?t=" + strconv.FormatInt(l.now().UnixMilli(), 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("build menu request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	upstream.Attach(req, cookies)

	resp, err := l.client.Do(req)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("fetch menu: %w", err)
	}
	defer resp.Body.Close()
	upstream.Capture(resp, cookies)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Menu{}, &HTTPStatusError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	var payload menuPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Menu{}, fmt.Errorf("%w: %v", ErrInvalidMenuShape, err)
	}
	if payload.Categories == nil || payload.Items == nil {
		return domain.Menu{}, ErrInvalidMenuShape
	}

	return domain.Menu{Categories: *payload.Categories, Items: *payload.Items}, nil
}

// LoadOrDefault fetches the menu and, on any failure, returns fallback together
// with the error that caused it. Inactive entries are always filtered out.
func (l *Loader) LoadOrDefault(ctx context.Context, fallback domain.Menu, cookies domain.UpstreamCookies) (domain.Menu, error) {
	m, err := l.Fetch(ctx, cookies)
	if err != nil {
		l.logger.Warn("menu unavailable, using fallback", zap.String("base_url", l.baseURL), zap.Error(err))
		return FilterActive(fallback), err
	}
	active := FilterActive(m)
	l.logger.Info("menu loaded",
		zap.Int("categories", len(active.Categories)),
		zap.Int("items", len(active.Items)),
	)
	return active, nil
}

func FilterActive(m domain.Menu) domain.Menu {
	out := domain.Menu{
		Categories: make([]domain.Category, 0, len(m.Categories)),
		Items:      make([]domain.MenuItem, 0, len(m.Items)),
	}
	for _, category := range m.Categories {
		if category.Active {
			out.Categories = append(out.Categories, category)
		}
	}
	for _, item := range m.Items {
		if item.Active {
			out.Items = append(out.Items, item)
		}
	}
	return out
}

// SortedCategories orders categories by sort_order, then id.
func SortedCategories(categories []domain.Category) []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out
}
