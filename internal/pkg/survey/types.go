package survey

// ElementProperty is a property reference on a fact sheet element.
type ElementProperty struct {
	Name string `json:"name"`
}

// FactSheetElement maps a question onto a fact sheet field so answers can
// read from or write back to the inventory.
type FactSheetElement struct {
	Type                   *string                `json:"type,omitempty"`
	TagGroupID             *string                `json:"tagGroupId,omitempty"`
	Subscription           map[string]interface{} `json:"subscription,omitempty"`
	FactSheetFieldName     *string                `json:"factSheetFieldName,omitempty"`
	FactSheetFieldType     *string                `json:"factSheetFieldType,omitempty"`
	TagGroupMode           *string                `json:"tagGroupMode,omitempty"`
	FactSheetFieldViewType *string                `json:"factSheetFieldViewType,omitempty"`
	Properties             []ElementProperty      `json:"properties,omitempty"`
}

// DependencySettings makes a question conditional on an answer to another
// question. ParentID is not checked against sibling question ids; LeanIX
// accepts a dangling reference, so we do too.
type DependencySettings struct {
	ParentID  string                 `json:"parentId"`
	Condition map[string]interface{} `json:"condition"`
}

// QuestionSettings is the optional bag of advanced question configuration.
type QuestionSettings struct {
	Metrics       map[string]string      `json:"metrics,omitempty"`
	Version       *int                   `json:"version,omitempty"`
	HideInResults *bool                  `json:"hideInResults,omitempty"`
	IsConditional *bool                  `json:"isConditional,omitempty"`
	FsSections    map[string]interface{} `json:"fsSections,omitempty"`
	Formula       *string                `json:"formula,omitempty"`
	Dependency    *DependencySettings    `json:"dependency,omitempty"`
	IsMandatory   *bool                  `json:"isMandatory,omitempty"`
}

// QuestionOption is one selectable answer of a choice question. LeanIX does
// not require option ids to be unique within a question, so neither do we.
type QuestionOption struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Comment *string `json:"comment,omitempty"`
}

// Question is a node of the questionnaire tree. Children allow unbounded
// nesting; the tree is always built bottom-up from parsed data, so cycles
// cannot occur. Questions of type singlechoice or multiplechoice must carry
// at least one option.
type Question struct {
	ID               string            `json:"id"`
	Label            string            `json:"label"`
	DescriptiveText  *string           `json:"descriptiveText,omitempty"`
	Type             string            `json:"type"`
	Element          *string           `json:"element,omitempty"`
	Options          []QuestionOption  `json:"options,omitempty"`
	AnswerOptions    *string           `json:"answerOptions,omitempty"`
	Children         []Question        `json:"children,omitempty"`
	Powerfeature     *bool             `json:"powerfeature,omitempty"`
	Disabled         *bool             `json:"disabled,omitempty"`
	FactSheetElement *FactSheetElement `json:"factSheetElement,omitempty"`
	Settings         *QuestionSettings `json:"settings,omitempty"`
}

// Questionnaire holds the ordered question list. An empty list is
// structurally legal.
type Questionnaire struct {
	Questions []Question `json:"questions"`
}

// DateFilter narrows a facet by date.
type DateFilter struct {
	From *Date          `json:"from,omitempty"`
	To   *Date          `json:"to,omitempty"`
	Type DateFilterType `json:"type"`
}

// SubscriptionFilter narrows a facet by subscription role.
type SubscriptionFilter struct {
	Type   SubscriptionType `json:"type"`
	RoleID *string          `json:"roleId,omitempty"`
}

// FacetFilter is a predicate node in the fact sheet selection tree. SubFilter
// allows unbounded nesting under a logical operator.
type FacetFilter struct {
	FacetKey           *string              `json:"facetKey,omitempty"`
	Keys               []string             `json:"keys,omitempty"`
	Operator           *FacetFilterOperator `json:"operator,omitempty"`
	DateFilter         *DateFilter          `json:"dateFilter,omitempty"`
	SubscriptionFilter *SubscriptionFilter  `json:"subscriptionFilter,omitempty"`
	SubFilter          []FacetFilter        `json:"subFilter,omitempty"`
}

// QueryFilter configures filter-based fact sheet selection.
type QueryFilter struct {
	FsType             *string       `json:"fsType,omitempty"`
	FacetFilter        []FacetFilter `json:"facetFilter,omitempty"`
	FullTextSearchTerm *string       `json:"fullTextSearchTerm,omitempty"`
}

// FactSheetQuery selects the fact sheets a survey targets, either through a
// filter or through an explicit id list. Both may be present at once; the
// Poll API defines no precedence rule between them.
type FactSheetQuery struct {
	Filter *QueryFilter `json:"filter,omitempty"`
	IDs    []string     `json:"ids,omitempty"`
}

// UserRoleDetails identifies one concrete subscription role.
type UserRoleDetails struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// UserRole selects recipients by subscription type, optionally narrowed to
// specific roles.
type UserRole struct {
	SubscriptionType SubscriptionType  `json:"subscriptionType"`
	RoleDetails      []UserRoleDetails `json:"roleDetails,omitempty"`
}

// UserQuery selects survey recipients. Roles is required but may be empty.
type UserQuery struct {
	Roles []UserRole `json:"roles"`
}

// SurveyInput is the validated survey definition as supplied by the user.
// Instances are produced by ParseSurveyInput / DecodeSurveyInput only and
// are not mutated afterwards; the assembler consumes them as-is.
type SurveyInput struct {
	Title                          string                   `json:"title"`
	Questionnaire                  Questionnaire            `json:"questionnaire"`
	IntroductionText               *string                  `json:"introductionText,omitempty"`
	IntroductionSubject            *string                  `json:"introductionSubject,omitempty"`
	AdditionalFactSheetSubject     *string                  `json:"additionalFactSheetSubject,omitempty"`
	AdditionalFactSheetText        *string                  `json:"additionalFactSheetText,omitempty"`
	AdditionalFactSheetCheckEnabled *bool                   `json:"additionalFactSheetCheckEnabled,omitempty"`
	RepeatInterval                 *int                     `json:"repeatInterval,omitempty"`
	TimeFrame                      *int                     `json:"timeFrame,omitempty"`
	SendChangeNotifications        *bool                    `json:"sendChangeNotifications,omitempty"`
	AllowedPermissionStatus        *AllowedPermissionStatus `json:"allowedPermissionStatus,omitempty"`
	DynamicScopeCheckEnabled       *bool                    `json:"dynamicScopeCheckEnabled,omitempty"`
	FactSheetQuery                 *FactSheetQuery          `json:"factSheetQuery,omitempty"`
	UserQuery                      *UserQuery               `json:"userQuery,omitempty"`
}
