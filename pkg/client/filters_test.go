package client

import (
	"net/url"
	"testing"
	"time"

	"github.com/cardwise/cardwise_backend/internal/dto"
	"github.com/stretchr/testify/assert"
)

var (
	testCategories = []dto.CategoryResponse{
		{ID: "cat-groceries", Name: "Groceries"},
		{ID: "cat-dining", Name: "Dining"},
	}
	testCards = []dto.CreditCardResponse{
		{ID: "card-gold", Name: "BAC Gold"},
		{ID: "card-blue", Name: "Amex Blue"},
	}
)

func TestNewTransactionFilter_Defaults(t *testing.T) {
	f := NewTransactionFilter()

	assert.Equal(t, AllCategories, f.CategoryName)
	assert.Equal(t, AllCards, f.CardName)
	assert.Equal(t, BucketAll, f.Bucket)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.PerPage)
}

func TestSetPerPage_ResetsPage(t *testing.T) {
	f := NewTransactionFilter()
	f.SetPage(4)

	f.SetPerPage(50)

	assert.Equal(t, 50, f.PerPage)
	assert.Equal(t, 1, f.Page)
}

func TestOtherSetters_KeepPage(t *testing.T) {
	f := NewTransactionFilter()
	f.SetPage(4)

	f.SetSearch("uber")
	f.SetCategory("Dining")
	f.SetCard("BAC Gold")
	f.SetBucket(BucketThisMonth)

	assert.Equal(t, 4, f.Page)
}

func TestQueryValues_Defaults(t *testing.T) {
	f := NewTransactionFilter()

	values := f.QueryValues(testCategories, testCards, time.Now())

	assert.Equal(t, "1", values.Get("page"))
	assert.Equal(t, "20", values.Get("per_page"))
	assert.Empty(t, values.Get("category_id"))
	assert.Empty(t, values.Get("credit_card_id"))
	assert.Empty(t, values.Get("start_date"))
}

func TestQueryValues_ResolvesNamesToIDs(t *testing.T) {
	f := NewTransactionFilter()
	f.SetCategory("Dining")
	f.SetCard("Amex Blue")
	f.SetSearch("pizza")

	values := f.QueryValues(testCategories, testCards, time.Now())

	assert.Equal(t, "cat-dining", values.Get("category_id"))
	assert.Equal(t, "card-blue", values.Get("credit_card_id"))
	assert.Equal(t, "pizza", values.Get("search"))
}

func TestQueryValues_UncategorizedSendsNullSentinel(t *testing.T) {
	f := NewTransactionFilter()
	f.SetCategory(Uncategorized)

	values := f.QueryValues(testCategories, testCards, time.Now())

	assert.Equal(t, "null", values.Get("category_id"))
}

func TestQueryValues_UnknownNamesOmitted(t *testing.T) {
	f := NewTransactionFilter()
	f.SetCategory("No Such Category")
	f.SetCard("No Such Card")

	values := f.QueryValues(testCategories, testCards, time.Now())

	assert.Empty(t, values.Get("category_id"))
	assert.Empty(t, values.Get("credit_card_id"))
}

func TestQueryValues_BucketDates(t *testing.T) {
	// A Wednesday; the week starts on the preceding Sunday.
	now := time.Date(2026, 3, 18, 15, 30, 0, 0, time.Local)
	f := NewTransactionFilter()
	f.SetBucket(BucketThisWeek)

	values := f.QueryValues(testCategories, testCards, now)

	assert.Equal(t, "2026-03-15", values.Get("start_date"))
	assert.Equal(t, "2026-03-18", values.Get("end_date"))
}

func TestQueryValues_CustomRange(t *testing.T) {
	f := NewTransactionFilter()
	f.SetBucket(BucketCustom)
	f.CustomStart = "2026-01-01"
	f.CustomEnd = "2026-01-31"

	values := f.QueryValues(testCategories, testCards, time.Now())

	assert.Equal(t, "2026-01-01", values.Get("start_date"))
	assert.Equal(t, "2026-01-31", values.Get("end_date"))
}

func TestFilterFromQueryValues_RoundTrip(t *testing.T) {
	f := NewTransactionFilter()
	f.SetCategory("Groceries")
	f.SetCard("BAC Gold")
	f.SetSearch("mercado")
	f.SetPage(2)
	f.TransactionType = "EXPENSE"

	values := f.QueryValues(testCategories, testCards, time.Now())
	restored := FilterFromQueryValues(values, testCategories, testCards)

	assert.Equal(t, "Groceries", restored.CategoryName)
	assert.Equal(t, "BAC Gold", restored.CardName)
	assert.Equal(t, "mercado", restored.Search)
	assert.Equal(t, 2, restored.Page)
	assert.Equal(t, "EXPENSE", restored.TransactionType)
}

func TestFilterFromQueryValues_NullSentinel(t *testing.T) {
	values := url.Values{"category_id": {"null"}}

	restored := FilterFromQueryValues(values, testCategories, testCards)

	assert.Equal(t, Uncategorized, restored.CategoryName)
}

func TestFilterFromQueryValues_UnknownIDFallsBack(t *testing.T) {
	values := url.Values{"category_id": {"deleted-id"}, "credit_card_id": {"gone-id"}}

	restored := FilterFromQueryValues(values, testCategories, testCards)

	assert.Equal(t, AllCategories, restored.CategoryName)
	assert.Equal(t, AllCards, restored.CardName)
}

func TestFilterFromQueryValues_DatesRestoreAsCustom(t *testing.T) {
	values := url.Values{"start_date": {"2026-02-01"}, "end_date": {"2026-02-28"}}

	restored := FilterFromQueryValues(values, testCategories, testCards)

	assert.Equal(t, BucketCustom, restored.Bucket)
	assert.Equal(t, "2026-02-01", restored.CustomStart)
	assert.Equal(t, "2026-02-28", restored.CustomEnd)
}
