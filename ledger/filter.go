package ledger

import (
	"fmt"
	"slices"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

type FilterActionTypeString = string
type FilterKeyString = string
type FilterValString = string

/***** Filter *****/

// Filter selects journaled actions. An empty Filter matches every action.
// Multiple FilterItem(s) are OR-ed.
type Filter struct {
	items []FilterItem
}

func (f Filter) Items() []FilterItem {
	return f.items
}

// Matches reports whether the given StorableAction is selected by the Filter.
func (f Filter) Matches(storableAction StorableAction) (bool, error) {
	if len(f.items) == 0 {
		return true, nil
	}

	var payload map[string]any

	for _, item := range f.items {
		if !item.matchesActionType(storableAction.ActionType) {
			continue
		}

		if len(item.predicates) == 0 {
			return true, nil
		}

		if payload == nil {
			if err := jsonAPI.Unmarshal(storableAction.PayloadJSON, &payload); err != nil {
				return false, ErrInvalidPayloadJSON
			}
		}

		if item.matchesPayload(payload) {
			return true, nil
		}
	}

	return false, nil
}

/***** FilterItem *****/

type FilterItem struct {
	actionTypes            []FilterActionTypeString
	predicates             []FilterPredicate
	allPredicatesMustMatch bool
}

func (fi FilterItem) ActionTypes() []FilterActionTypeString {
	return fi.actionTypes
}

func (fi FilterItem) Predicates() []FilterPredicate {
	return fi.predicates
}

func (fi FilterItem) AllPredicatesMustMatch() bool {
	return fi.allPredicatesMustMatch
}

func (fi FilterItem) matchesActionType(actionType string) bool {
	return len(fi.actionTypes) == 0 || slices.Contains(fi.actionTypes, actionType)
}

func (fi FilterItem) matchesPayload(payload map[string]any) bool {
	matches := func(p FilterPredicate) bool {
		val, ok := payload[p.key]
		if !ok {
			return false
		}

		if s, isString := val.(string); isString {
			return s == p.val
		}

		return fmt.Sprint(val) == p.val
	}

	if fi.allPredicatesMustMatch {
		return !slices.ContainsFunc(fi.predicates, func(p FilterPredicate) bool { return !matches(p) })
	}

	return slices.ContainsFunc(fi.predicates, matches)
}

/***** FilterPredicate *****/

type FilterPredicate struct {
	key FilterKeyString
	val FilterValString
}

// P builds a predicate over a top-level payload field, e.g. P("CustomerName", "Ana").
func P(key FilterKeyString, val FilterValString) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

func (fp FilterPredicate) Key() FilterKeyString {
	return fp.key
}

func (fp FilterPredicate) Val() FilterValString {
	return fp.val
}

// CustomerPredicates returns the predicates that select every action concerning the customer,
// whether the name is stored as CustomerName or as BuyerName.
func CustomerPredicates(customerName core.CustomerNameString) (FilterPredicate, FilterPredicate) {
	return P("CustomerName", customerName), P("BuyerName", customerName)
}

/***** FilterBuilder *****/

// FilterBuilder builds an action filter for the journal.
// It is designed to only allow "useful" filter combinations:
//
//   - empty filter
//   - (actionType OR actionType...)
//   - (predicate OR predicate...)
//   - (predicate AND predicate...)
//   - ((actionType OR actionType...) AND (predicate OR predicate...))
//   - ((actionType OR actionType...) AND (predicate AND predicate...))
//   - ((actionType AND predicate) OR (actionType AND predicate)...) -> multiple FilterItem(s)
type FilterBuilder interface {
	// Matching starts a new FilterItem.
	Matching() EmptyFilterItemBuilder

	// MatchingAnyAction directly creates an empty Filter.
	MatchingAnyAction() Filter
}

type EmptyFilterItemBuilder interface {
	// AnyActionTypeOf adds one or multiple ActionTypes to the current FilterItem.
	//
	// It sanitizes the input:
	//	- removing empty ActionTypes ("")
	//	- sorting the ActionTypes
	//	- removing duplicate ActionTypes
	AnyActionTypeOf(actionType FilterActionTypeString, actionTypes ...FilterActionTypeString) FilterItemBuilderLackingPredicates

	// AnyPredicateOf adds one or multiple FilterPredicate(s) to the current FilterItem.
	//
	// It sanitizes the input:
	//	- removing empty/partial FilterPredicate(s) (key or val is "")
	//	- sorting the FilterPredicate(s)
	//	- removing duplicate FilterPredicate(s)
	AnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingActionTypes

	AllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingActionTypes
}

type FilterItemBuilderLackingPredicates interface {
	AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder

	AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder

	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize returns the Filter.
	Finalize() Filter
}

type FilterItemBuilderLackingActionTypes interface {
	AndAnyActionTypeOf(actionType FilterActionTypeString, actionTypes ...FilterActionTypeString) CompletedFilterItemBuilder

	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize returns the Filter.
	Finalize() Filter
}

type CompletedFilterItemBuilder interface {
	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize returns the Filter.
	Finalize() Filter
}

// filterBuilder implements all the interfaces of FilterBuilder
type filterBuilder struct {
	filter            Filter
	currentFilterItem FilterItem
}

// BuildActionFilter creates a FilterBuilder which must eventually be finalized with Finalize() or MatchingAnyAction().
func BuildActionFilter() FilterBuilder {
	return filterBuilder{}
}

// Matching starts a new FilterItem.
func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.currentFilterItem = FilterItem{}

	return fb
}

// AnyActionTypeOf adds one or multiple ActionTypes to the current FilterItem expecting ANY ActionType to match.
func (fb filterBuilder) AnyActionTypeOf(
	actionType FilterActionTypeString,
	actionTypes ...FilterActionTypeString,
) FilterItemBuilderLackingPredicates {

	fb.currentFilterItem.actionTypes = append(
		slices.Clone(fb.currentFilterItem.actionTypes),
		fb.sanitizeActionTypes(actionType, actionTypes...)...,
	)

	return fb
}

// AndAnyActionTypeOf adds one or multiple ActionTypes to the current FilterItem expecting ANY ActionType to match.
func (fb filterBuilder) AndAnyActionTypeOf(
	actionType FilterActionTypeString,
	actionTypes ...FilterActionTypeString,
) CompletedFilterItemBuilder {

	return fb.AnyActionTypeOf(actionType, actionTypes...)
}

func (fb filterBuilder) sanitizeActionTypes(
	actionType FilterActionTypeString,
	actionTypes ...FilterActionTypeString,
) []FilterActionTypeString {

	allActionTypes := append([]FilterActionTypeString{actionType}, actionTypes...)
	allActionTypes = slices.DeleteFunc(
		allActionTypes,
		func(a FilterActionTypeString) bool {
			return a == ""
		})
	slices.Sort(allActionTypes)
	allActionTypes = slices.Compact(allActionTypes)
	allActionTypes = slices.Clip(allActionTypes)

	return allActionTypes
}

// AnyPredicateOf adds one or multiple FilterPredicate(s) to the current FilterItem expecting ANY predicate to match.
func (fb filterBuilder) AnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingActionTypes {

	fb.currentFilterItem.predicates = append(
		slices.Clone(fb.currentFilterItem.predicates),
		fb.sanitizePredicates(predicate, predicates...)...,
	)

	return fb
}

// AndAnyPredicateOf adds one or multiple FilterPredicate(s) to the current FilterItem expecting ANY predicate to match.
func (fb filterBuilder) AndAnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AnyPredicateOf(predicate, predicates...)
}

// AllPredicatesOf adds one or multiple FilterPredicate(s) to the current FilterItem expecting ALL predicates to match.
func (fb filterBuilder) AllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingActionTypes {

	fb.currentFilterItem.allPredicatesMustMatch = true

	fb.currentFilterItem.predicates = append(
		slices.Clone(fb.currentFilterItem.predicates),
		fb.sanitizePredicates(predicate, predicates...)...,
	)

	return fb
}

// AndAllPredicatesOf adds one or multiple FilterPredicate(s) to the current FilterItem expecting ALL predicates to match.
func (fb filterBuilder) AndAllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AllPredicatesOf(predicate, predicates...)
}

func (fb filterBuilder) sanitizePredicates(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) []FilterPredicate {

	allPredicates := append([]FilterPredicate{predicate}, predicates...)
	allPredicates = slices.DeleteFunc(allPredicates, func(p FilterPredicate) bool { return len(p.key) == 0 || len(p.val) == 0 })
	slices.SortFunc(
		allPredicates,
		func(a, b FilterPredicate) int {
			if a.key != b.key {
				if a.key > b.key {
					return 1
				}

				return -1
			}

			if a.val > b.val {
				return 1
			}

			if a.val < b.val {
				return -1
			}

			return 0
		})

	allPredicates = slices.Compact(allPredicates)
	allPredicates = slices.Clip(allPredicates)

	return allPredicates
}

// OrMatching finalizes the current FilterItem and starts a new one.
func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentFilterItem)
	fb.currentFilterItem = FilterItem{}

	return fb
}

// MatchingAnyAction directly creates an empty filter.
func (fb filterBuilder) MatchingAnyAction() Filter {
	return fb.filter
}

// Finalize returns the Filter with the current FilterItem appended.
func (fb filterBuilder) Finalize() Filter {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentFilterItem)

	return fb.filter
}
