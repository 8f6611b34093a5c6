package client

import (
	"net/url"
	"strconv"
	"time"

	"github.com/cardwise/cardwise_backend/internal/dto"
)

// Sentinel display values in the category and card dropdowns.
const (
	AllCategories = "All Categories"
	Uncategorized = "Uncategorized"
	AllCards      = "All Cards"
)

const defaultPerPage = 20

// TransactionFilter captures the transaction view's filter selections.
// Category and card are tracked by display name and resolved to ids at
// encode time against the fetched lists.
type TransactionFilter struct {
	Search          string
	CategoryName    string
	CardName        string
	TransactionType string
	Bucket          DateBucket
	CustomStart     string // YYYY-MM-DD, used when Bucket is BucketCustom
	CustomEnd       string
	Page            int
	PerPage         int
}

// NewTransactionFilter returns a filter with the view's initial selections.
func NewTransactionFilter() TransactionFilter {
	return TransactionFilter{
		CategoryName: AllCategories,
		CardName:     AllCards,
		Bucket:       BucketAll,
		Page:         1,
		PerPage:      defaultPerPage,
	}
}

// SetPage moves to another page without touching the other selections.
func (f *TransactionFilter) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	f.Page = page
}

// SetPerPage changes the page size and resets to the first page. Other
// filter setters deliberately leave the page index alone.
func (f *TransactionFilter) SetPerPage(perPage int) {
	if perPage < 1 {
		perPage = defaultPerPage
	}
	f.PerPage = perPage
	f.Page = 1
}

// SetSearch updates the search text.
func (f *TransactionFilter) SetSearch(search string) {
	f.Search = search
}

// SetCategory selects a category by display name.
func (f *TransactionFilter) SetCategory(name string) {
	f.CategoryName = name
}

// SetCard selects a card by display name.
func (f *TransactionFilter) SetCard(name string) {
	f.CardName = name
}

// SetBucket selects a date bucket.
func (f *TransactionFilter) SetBucket(bucket DateBucket) {
	f.Bucket = bucket
}

// categoryIDByName resolves a category display name to its id with a linear
// scan over the fetched list. Empty when not found.
func categoryIDByName(categories []dto.CategoryResponse, name string) string {
	for _, c := range categories {
		if c.Name == name {
			return c.ID
		}
	}
	return ""
}

func cardIDByName(cards []dto.CreditCardResponse, name string) string {
	for _, c := range cards {
		if c.Name == name {
			return c.ID
		}
	}
	return ""
}

// QueryValues encodes the filter as the transactions list query string.
// "All Categories" and "All Cards" omit their parameters; "Uncategorized"
// sends the literal category_id=null. Date buckets resolve against now.
func (f TransactionFilter) QueryValues(categories []dto.CategoryResponse, cards []dto.CreditCardResponse, now time.Time) url.Values {
	values := url.Values{}

	page := f.Page
	if page < 1 {
		page = 1
	}
	perPage := f.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	values.Set("page", strconv.Itoa(page))
	values.Set("per_page", strconv.Itoa(perPage))

	if f.Search != "" {
		values.Set("search", f.Search)
	}

	switch f.CategoryName {
	case "", AllCategories:
	case Uncategorized:
		values.Set("category_id", dto.NullCategorySentinel)
	default:
		if id := categoryIDByName(categories, f.CategoryName); id != "" {
			values.Set("category_id", id)
		}
	}

	if f.CardName != "" && f.CardName != AllCards {
		if id := cardIDByName(cards, f.CardName); id != "" {
			values.Set("credit_card_id", id)
		}
	}

	if f.TransactionType != "" {
		values.Set("transaction_type", f.TransactionType)
	}

	switch f.Bucket {
	case BucketCustom:
		if f.CustomStart != "" {
			values.Set("start_date", f.CustomStart)
		}
		if f.CustomEnd != "" {
			values.Set("end_date", f.CustomEnd)
		}
	default:
		if from, to, ok := BucketRange(f.Bucket, now); ok {
			values.Set("start_date", from.Format("2006-01-02"))
			values.Set("end_date", to.Format("2006-01-02"))
		}
	}

	return values
}

// FilterFromQueryValues restores filter state from a query string, mapping
// ids back to display names. Unknown ids fall back to the catch-all options.
// Date parameters always restore as a custom range; the bucket that produced
// them is not recoverable from the encoded dates.
func FilterFromQueryValues(values url.Values, categories []dto.CategoryResponse, cards []dto.CreditCardResponse) TransactionFilter {
	f := NewTransactionFilter()

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		f.Page = page
	}
	if perPage, err := strconv.Atoi(values.Get("per_page")); err == nil && perPage >= 1 {
		f.PerPage = perPage
	}
	f.Search = values.Get("search")
	f.TransactionType = values.Get("transaction_type")

	switch catID := values.Get("category_id"); catID {
	case "":
	case dto.NullCategorySentinel:
		f.CategoryName = Uncategorized
	default:
		for _, c := range categories {
			if c.ID == catID {
				f.CategoryName = c.Name
				break
			}
		}
	}

	if cardID := values.Get("credit_card_id"); cardID != "" {
		for _, c := range cards {
			if c.ID == cardID {
				f.CardName = c.Name
				break
			}
		}
	}

	start, end := values.Get("start_date"), values.Get("end_date")
	if start != "" || end != "" {
		f.Bucket = BucketCustom
		f.CustomStart = start
		f.CustomEnd = end
	}

	return f
}
