package survey

import "fmt"

// SubscriptionType selects users by their subscription role on a fact sheet.
type SubscriptionType string

const (
	SubscriptionResponsible SubscriptionType = "RESPONSIBLE"
	SubscriptionObserver    SubscriptionType = "OBSERVER"
	SubscriptionAccountable SubscriptionType = "ACCOUNTABLE"
	SubscriptionAll         SubscriptionType = "ALL"
)

// AllowedPermissionStatus controls which workspace members may participate.
type AllowedPermissionStatus string

const (
	PermissionActiveOnly                 AllowedPermissionStatus = "ACTIVE_ONLY"
	PermissionActiveAndInvited           AllowedPermissionStatus = "ACTIVE_AND_INVITED"
	PermissionActiveInvitedAndContacts   AllowedPermissionStatus = "ACTIVE_AND_INVITED_AND_CONTACTS"
)

// DateFilterType names the supported date predicate kinds in fact sheet queries.
type DateFilterType string

const (
	DateFilterPoint       DateFilterType = "POINT"
	DateFilterRange       DateFilterType = "RANGE"
	DateFilterToday       DateFilterType = "TODAY"
	DateFilterEndOfMonth  DateFilterType = "END_OF_MONTH"
	DateFilterEndOfYear   DateFilterType = "END_OF_YEAR"
	DateFilterRangeStarts DateFilterType = "RANGE_STARTS"
	DateFilterRangeEnds   DateFilterType = "RANGE_ENDS"
)

// FacetFilterOperator combines sibling facet filters.
type FacetFilterOperator string

const (
	FacetOperatorAnd FacetFilterOperator = "AND"
	FacetOperatorOr  FacetFilterOperator = "OR"
	FacetOperatorNor FacetFilterOperator = "NOR"
)

var (
	subscriptionTypes = []SubscriptionType{
		SubscriptionResponsible,
		SubscriptionObserver,
		SubscriptionAccountable,
		SubscriptionAll,
	}
	allowedPermissionStatuses = []AllowedPermissionStatus{
		PermissionActiveOnly,
		PermissionActiveAndInvited,
		PermissionActiveInvitedAndContacts,
	}
	dateFilterTypes = []DateFilterType{
		DateFilterPoint,
		DateFilterRange,
		DateFilterToday,
		DateFilterEndOfMonth,
		DateFilterEndOfYear,
		DateFilterRangeStarts,
		DateFilterRangeEnds,
	}
	facetFilterOperators = []FacetFilterOperator{
		FacetOperatorAnd,
		FacetOperatorOr,
		FacetOperatorNor,
	}
)

func ParseSubscriptionType(value string) (SubscriptionType, error) {
	for _, candidate := range subscriptionTypes {
		if value == string(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("must be one of %v", subscriptionTypes)
}

func ParseAllowedPermissionStatus(value string) (AllowedPermissionStatus, error) {
	for _, candidate := range allowedPermissionStatuses {
		if value == string(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("must be one of %v", allowedPermissionStatuses)
}

func ParseDateFilterType(value string) (DateFilterType, error) {
	for _, candidate := range dateFilterTypes {
		if value == string(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("must be one of %v", dateFilterTypes)
}

func ParseFacetFilterOperator(value string) (FacetFilterOperator, error) {
	for _, candidate := range facetFilterOperators {
		if value == string(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("must be one of %v", facetFilterOperators)
}

// Well-known question types. The type field stays an open string because
// LeanIX may introduce new question types without a schema update; only the
// choice kinds carry a structural rule.
const (
	QuestionTypeText           = "text"
	QuestionTypeTextarea       = "textarea"
	QuestionTypeSingleChoice   = "singlechoice"
	QuestionTypeMultipleChoice = "multiplechoice"
	QuestionTypeNumber         = "number"
	QuestionTypeDate           = "date"
	QuestionTypeFactSheet      = "factsheet"
)
