package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"shopassist/internal/catalog"
	"shopassist/internal/metrics"
	"shopassist/internal/model"
	"shopassist/internal/utils"
)

// AlertPrompt is returned when the request names no item
const AlertPrompt = "Type something like: **Notify me when Black Sneakers size 8 is back**."

var (
	alertSizePattern   = regexp.MustCompile(`size\s+([a-z0-9]+)`)
	alertFillerPattern = regexp.MustCompile(`notify me when|let me know when|is back|are back`)
)

// AlertService turns back-in-stock requests into session alerts
type AlertService struct {
	index   *catalog.Index
	matcher *ProductMatcher
}

// NewAlertService creates a new alert service
func NewAlertService(index *catalog.Index, matcher *ProductMatcher) *AlertService {
	return &AlertService{index: index, matcher: matcher}
}

// Request parses text into an alert. The alert is nil when the text names no
// item, or when the catalog already has the item (and size) in stock.
func (s *AlertService) Request(text string) (*model.StockAlert, bool, string) {
	low := normalizeText(text)
	if low == "" {
		metrics.AlertsTotal.WithLabelValues("prompt").Inc()
		return nil, false, AlertPrompt
	}

	var size string
	if m := alertSizePattern.FindStringSubmatch(low); m != nil {
		size = strings.ToUpper(m[1])
	}

	row := s.matcher.FindOne(low)
	item := ""
	if row != nil {
		item = row.Item
	} else {
		// Not in the catalog: keep whatever the user called it
		rest := alertSizePattern.ReplaceAllString(low, " ")
		rest = alertFillerPattern.ReplaceAllString(rest, " ")
		item = utils.TitleCase(strings.Join(strings.Fields(rest), " "))
	}
	if item == "" {
		metrics.AlertsTotal.WithLabelValues("prompt").Inc()
		return nil, false, AlertPrompt
	}

	label := "**" + item + "**"
	if size != "" {
		label += " (size " + size + ")"
	}

	if row != nil && s.inStock(item, size) {
		metrics.AlertsTotal.WithLabelValues("in_stock").Inc()
		return nil, true, fmt.Sprintf("🎉 Good news! %s is in stock right now.", label)
	}

	metrics.AlertsTotal.WithLabelValues("created").Inc()
	return &model.StockAlert{
		Item:      item,
		Size:      size,
		CreatedAt: time.Now(),
	}, false, fmt.Sprintf("✅ Alert created for %s. I'll notify you when it's restocked.", label)
}

// inStock reports whether any catalog row of item (and size, when the catalog
// has sizes) has stock. Catalogs without a stock column never report stock.
func (s *AlertService) inStock(item, size string) bool {
	if !s.index.HasRole(model.RoleStock) {
		return false
	}
	bySize := size != "" && s.index.HasRole(model.RoleSize)
	for _, row := range s.index.Rows() {
		if !utils.ContainsFold(row.Item, item) {
			continue
		}
		if bySize && !strings.EqualFold(row.Size, size) {
			continue
		}
		if InStock(row.Stock) {
			return true
		}
	}
	return false
}

// InStock interprets a stock cell: a positive count, or a phrase such as
// "In Stock" or "available". Empty, zero and "out of stock" mean no stock.
func InStock(value string) bool {
	v := normalizeText(value)
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n > 0
	}
	switch {
	case v == "", strings.HasPrefix(v, "no"), strings.Contains(v, "out"),
		strings.Contains(v, "sold"), strings.Contains(v, "unavailable"):
		return false
	}
	return strings.Contains(v, "in stock") || strings.Contains(v, "available") || v == "yes" || v == "true" || v == "y"
}
