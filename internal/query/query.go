// Package query builds the document-store filters that scope what a request
// can see: search filters, ownership filters and pagination windows.
package query

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PetSearch builds the pet listing filter. With neither a search text nor a
// category the filter is empty and every pet is visible. Otherwise pet_name is
// matched against the search text as a case-insensitive substring and
// pet_category.value against the category as a substring.
func PetSearch(search, category string) bson.M {
	if search == "" && category == "" {
		return bson.M{}
	}
	return bson.M{
		"pet_name":           primitive.Regex{Pattern: search, Options: "i"},
		"pet_category.value": primitive.Regex{Pattern: category},
	}
}

// Owner scopes a filter to the documents owned by value, by strict equality on
// field. An empty value leaves the filter empty so the whole collection is
// returned; callers rely on that fallback.
func Owner(field, value string) bson.M {
	if value == "" {
		return bson.M{}
	}
	return bson.M{field: value}
}

// Page converts a 1-based page number and a page size into skip and limit
// values. Missing or non-numeric parameters yield a zero limit, which callers
// treat as an empty page; callers must always supply both.
func Page(pageStr, sizeStr string) (skip, limit int64) {
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return 0, 0
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		return 0, 0
	}
	skip = int64(page-1) * int64(size)
	if skip < 0 {
		skip = 0
	}
	return skip, int64(size)
}
