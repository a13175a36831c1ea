package validate

import (
	"strings"

	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/types"
)

// DefaultPredicate requires at least one GraphQL model, counting both the
// "gql" and "graphql" categories.
func DefaultPredicate(listing types.DirectoryListing) error {
	if listing.Count("gql", "graphql") == 0 {
		return errors.Newf(errors.ErrComponentInvalid, "no gql or graphql models found in path: %s", listing.Path).
			WithDetail("path", listing.Path)
	}
	return nil
}

// AcceptAll passes every listing
func AcceptAll(types.DirectoryListing) error {
	return nil
}

// RequireAnyCategory passes when the given categories hold at least one
// entry between them
func RequireAnyCategory(keys ...string) types.Predicate {
	return func(listing types.DirectoryListing) error {
		if listing.Count(keys...) == 0 {
			return errors.Newf(errors.ErrComponentInvalid, "no %s files found in path: %s",
				strings.Join(keys, " or "), listing.Path).
				WithDetail("path", listing.Path).
				WithDetail("categories", keys)
		}
		return nil
	}
}

// RequireCategories passes when every given category holds at least one entry
func RequireCategories(keys ...string) types.Predicate {
	return func(listing types.DirectoryListing) error {
		var missing []string
		for _, key := range keys {
			if listing.Count(key) == 0 {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return errors.Newf(errors.ErrComponentInvalid, "missing %s files in path: %s",
				strings.Join(missing, ", "), listing.Path).
				WithDetail("path", listing.Path).
				WithDetail("categories", missing)
		}
		return nil
	}
}

// All passes when every predicate passes, returning the first failure
func All(predicates ...types.Predicate) types.Predicate {
	return func(listing types.DirectoryListing) error {
		for _, p := range predicates {
			if err := p(listing); err != nil {
				return err
			}
		}
		return nil
	}
}
