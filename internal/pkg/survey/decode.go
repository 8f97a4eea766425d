package survey

import (
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-json"
)

// MaxNestingDepth bounds recursion into question children and facet
// sub-filters. The Poll API schema leaves depth unbounded; 32 levels is far
// beyond any real questionnaire and keeps worst-case stack usage fixed.
const MaxNestingDepth = 32

// ParseSurveyInput parses raw JSON text and validates it against the survey
// schema. It returns *SyntaxError for text that is not well-formed JSON and
// *ValidationError for documents that violate the schema; no partial
// document is ever returned.
func ParseSurveyInput(data []byte) (*SurveyInput, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &SyntaxError{Cause: err}
	}
	return DecodeSurveyInput(raw)
}

// DecodeSurveyInput validates already-parsed generic JSON. Unknown fields
// are ignored; every field is accepted under its wire (camelCase) name and
// under its internal snake_case alias.
func DecodeSurveyInput(raw interface{}) (*SurveyInput, error) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &ValidationError{Fields: []FieldError{{Message: "document must be a JSON object"}}}
	}
	d := &decoder{}
	input := d.decodeSurveyInput(obj)
	if len(d.errs) > 0 {
		return nil, &ValidationError{Fields: d.errs}
	}
	return input, nil
}

type decoder struct {
	errs []FieldError
}

func (d *decoder) fail(path, format string, args ...interface{}) {
	d.errs = append(d.errs, FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
}

// lookup resolves a field by its internal name, trying the wire spelling
// first. Both spellings address the same attribute.
func lookup(obj map[string]interface{}, internal string) (interface{}, bool) {
	wire := WireName(internal)
	if value, ok := obj[wire]; ok {
		return value, true
	}
	if wire != internal {
		if value, ok := obj[internal]; ok {
			return value, true
		}
	}
	return nil, false
}

func joinPath(parent, field string) string {
	if parent == "" {
		return field
	}
	return parent + "." + field
}

func indexPath(parent string, index int) string {
	return fmt.Sprintf("%s[%d]", parent, index)
}

// ---------------------------------------------------------------------------
// Field coercion helpers. Each records at most one error for its field.
// ---------------------------------------------------------------------------

func (d *decoder) requiredString(obj map[string]interface{}, parent, name string) (string, bool) {
	path := joinPath(parent, WireName(name))
	raw, ok := lookup(obj, name)
	if !ok {
		d.fail(path, "is required")
		return "", false
	}
	value, ok := raw.(string)
	if !ok {
		d.fail(path, "must be a string")
		return "", false
	}
	return value, true
}

func (d *decoder) optionalString(obj map[string]interface{}, parent, name string) *string {
	raw, ok := lookup(obj, name)
	if !ok {
		return nil
	}
	value, ok := raw.(string)
	if !ok {
		d.fail(joinPath(parent, WireName(name)), "must be a string")
		return nil
	}
	return &value
}

func (d *decoder) optionalBool(obj map[string]interface{}, parent, name string) *bool {
	raw, ok := lookup(obj, name)
	if !ok {
		return nil
	}
	value, ok := raw.(bool)
	if !ok {
		d.fail(joinPath(parent, WireName(name)), "must be a boolean")
		return nil
	}
	return &value
}

func (d *decoder) optionalInt(obj map[string]interface{}, parent, name string) *int {
	raw, ok := lookup(obj, name)
	if !ok {
		return nil
	}
	number, ok := raw.(float64)
	if !ok || number != math.Trunc(number) {
		d.fail(joinPath(parent, WireName(name)), "must be an integer")
		return nil
	}
	value := int(number)
	return &value
}

func (d *decoder) optionalStringList(obj map[string]interface{}, parent, name string) []string {
	raw, ok := lookup(obj, name)
	if !ok {
		return nil
	}
	path := joinPath(parent, WireName(name))
	list, ok := raw.([]interface{})
	if !ok {
		d.fail(path, "must be a list of strings")
		return nil
	}
	values := make([]string, len(list))
	for i, element := range list {
		value, ok := element.(string)
		if !ok {
			d.fail(indexPath(path, i), "must be a string")
			return nil
		}
		values[i] = value
	}
	return values
}

func (d *decoder) optionalStringMap(obj map[string]interface{}, parent, name string) map[string]string {
	raw, ok := lookup(obj, name)
	if !ok {
		return nil
	}
	path := joinPath(parent, WireName(name))
	generic, ok := raw.(map[string]interface{})
	if !ok {
		d.fail(path, "must be an object")
		return nil
	}
	values := make(map[string]string, len(generic))
	for key, element := range generic {
		value, ok := element.(string)
		if !ok {
			d.fail(joinPath(path, key), "must be a string")
			return nil
		}
		values[key] = value
	}
	return values
}

func (d *decoder) optionalAnyMap(obj map[string]interface{}, parent, name string) map[string]interface{} {
	raw, ok := lookup(obj, name)
	if !ok {
		return nil
	}
	value, ok := raw.(map[string]interface{})
	if !ok {
		d.fail(joinPath(parent, WireName(name)), "must be an object")
		return nil
	}
	return value
}

func (d *decoder) optionalDate(obj map[string]interface{}, parent, name string) *Date {
	raw, ok := lookup(obj, name)
	if !ok {
		return nil
	}
	path := joinPath(parent, WireName(name))
	value, ok := raw.(string)
	if !ok {
		d.fail(path, "must be a date string")
		return nil
	}
	date, err := ParseDate(value)
	if err != nil {
		d.fail(path, err.Error())
		return nil
	}
	return &date
}

func (d *decoder) asObject(raw interface{}, path string) (map[string]interface{}, bool) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		d.fail(path, "must be an object")
		return nil, false
	}
	return obj, true
}

func (d *decoder) asList(raw interface{}, path string) ([]interface{}, bool) {
	list, ok := raw.([]interface{})
	if !ok {
		d.fail(path, "must be a list")
		return nil, false
	}
	return list, true
}

// ---------------------------------------------------------------------------
// Document decoding. Top-level fields are checked independently so every
// violation in the document surfaces in a single pass.
// ---------------------------------------------------------------------------

func (d *decoder) decodeSurveyInput(obj map[string]interface{}) *SurveyInput {
	input := &SurveyInput{}

	if title, ok := d.requiredString(obj, "", "title"); ok {
		trimmed := strings.TrimSpace(title)
		if trimmed == "" {
			d.fail("title", "cannot be empty or whitespace only")
		} else {
			input.Title = trimmed
		}
	}

	if raw, ok := lookup(obj, "questionnaire"); ok {
		if questionnaire, ok := d.decodeQuestionnaire(raw, "questionnaire"); ok {
			input.Questionnaire = questionnaire
		}
	} else {
		d.fail("questionnaire", "is required")
	}

	input.IntroductionText = d.optionalString(obj, "", "introduction_text")
	input.IntroductionSubject = d.optionalString(obj, "", "introduction_subject")
	input.AdditionalFactSheetSubject = d.optionalString(obj, "", "additional_fact_sheet_subject")
	input.AdditionalFactSheetText = d.optionalString(obj, "", "additional_fact_sheet_text")
	input.AdditionalFactSheetCheckEnabled = d.optionalBool(obj, "", "additional_fact_sheet_check_enabled")
	input.RepeatInterval = d.optionalInt(obj, "", "repeat_interval")
	input.TimeFrame = d.optionalInt(obj, "", "time_frame")
	input.SendChangeNotifications = d.optionalBool(obj, "", "send_change_notifications")
	input.DynamicScopeCheckEnabled = d.optionalBool(obj, "", "dynamic_scope_check_enabled")

	if raw, ok := lookup(obj, "allowed_permission_status"); ok {
		path := WireName("allowed_permission_status")
		if value, ok := raw.(string); ok {
			status, err := ParseAllowedPermissionStatus(value)
			if err != nil {
				d.fail(path, err.Error())
			} else {
				input.AllowedPermissionStatus = &status
			}
		} else {
			d.fail(path, "must be a string")
		}
	}

	if raw, ok := lookup(obj, "fact_sheet_query"); ok {
		if query, ok := d.decodeFactSheetQuery(raw, WireName("fact_sheet_query")); ok {
			input.FactSheetQuery = query
		}
	}

	if raw, ok := lookup(obj, "user_query"); ok {
		if query, ok := d.decodeUserQuery(raw, WireName("user_query")); ok {
			input.UserQuery = query
		}
	}

	return input
}

func (d *decoder) decodeQuestionnaire(raw interface{}, path string) (Questionnaire, bool) {
	obj, ok := d.asObject(raw, path)
	if !ok {
		return Questionnaire{}, false
	}
	questionsPath := joinPath(path, "questions")
	rawQuestions, ok := lookup(obj, "questions")
	if !ok {
		d.fail(questionsPath, "is required")
		return Questionnaire{}, false
	}
	list, ok := d.asList(rawQuestions, questionsPath)
	if !ok {
		return Questionnaire{}, false
	}
	questions := make([]Question, 0, len(list))
	for i, element := range list {
		question, ok := d.decodeQuestion(element, indexPath(questionsPath, i), 1)
		if !ok {
			return Questionnaire{}, false
		}
		questions = append(questions, question)
	}
	return Questionnaire{Questions: questions}, true
}

// decodeQuestion builds one question node bottom-up: leaf fields first, then
// nested structures, then the choice-questions-need-options rule. It stops
// at the first failing descendant so no partial tree escapes.
func (d *decoder) decodeQuestion(raw interface{}, path string, depth int) (Question, bool) {
	if depth > MaxNestingDepth {
		d.fail(path, "exceeds the maximum question nesting depth of %d", MaxNestingDepth)
		return Question{}, false
	}
	obj, ok := d.asObject(raw, path)
	if !ok {
		return Question{}, false
	}

	mark := len(d.errs)
	question := Question{}
	question.ID, _ = d.requiredString(obj, path, "id")
	question.Label, _ = d.requiredString(obj, path, "label")
	question.Type, _ = d.requiredString(obj, path, "type")
	question.DescriptiveText = d.optionalString(obj, path, "descriptive_text")
	question.Element = d.optionalString(obj, path, "element")
	question.AnswerOptions = d.optionalString(obj, path, "answer_options")
	question.Powerfeature = d.optionalBool(obj, path, "powerfeature")
	question.Disabled = d.optionalBool(obj, path, "disabled")
	if len(d.errs) > mark {
		return Question{}, false
	}

	if raw, ok := lookup(obj, "options"); ok {
		optionsPath := joinPath(path, "options")
		list, ok := d.asList(raw, optionsPath)
		if !ok {
			return Question{}, false
		}
		options := make([]QuestionOption, 0, len(list))
		for i, element := range list {
			option, ok := d.decodeQuestionOption(element, indexPath(optionsPath, i))
			if !ok {
				return Question{}, false
			}
			options = append(options, option)
		}
		question.Options = options
	}

	if raw, ok := lookup(obj, "fact_sheet_element"); ok {
		element, ok := d.decodeFactSheetElement(raw, joinPath(path, WireName("fact_sheet_element")))
		if !ok {
			return Question{}, false
		}
		question.FactSheetElement = element
	}

	if raw, ok := lookup(obj, "settings"); ok {
		settings, ok := d.decodeQuestionSettings(raw, joinPath(path, "settings"))
		if !ok {
			return Question{}, false
		}
		question.Settings = settings
	}

	if raw, ok := lookup(obj, "children"); ok {
		childrenPath := joinPath(path, "children")
		list, ok := d.asList(raw, childrenPath)
		if !ok {
			return Question{}, false
		}
		children := make([]Question, 0, len(list))
		for i, element := range list {
			child, ok := d.decodeQuestion(element, indexPath(childrenPath, i), depth+1)
			if !ok {
				return Question{}, false
			}
			children = append(children, child)
		}
		question.Children = children
	}

	if question.Type == QuestionTypeSingleChoice || question.Type == QuestionTypeMultipleChoice {
		if len(question.Options) == 0 {
			d.fail(joinPath(path, "options"), "questions of type '%s' must have at least one option", question.Type)
			return Question{}, false
		}
	}

	return question, true
}

func (d *decoder) decodeQuestionOption(raw interface{}, path string) (QuestionOption, bool) {
	obj, ok := d.asObject(raw, path)
	if !ok {
		return QuestionOption{}, false
	}
	mark := len(d.errs)
	option := QuestionOption{}
	if id, ok := d.requiredString(obj, path, "id"); ok {
		if id == "" {
			d.fail(joinPath(path, "id"), "cannot be empty")
		} else {
			option.ID = id
		}
	}
	if label, ok := d.requiredString(obj, path, "label"); ok {
		if label == "" {
			d.fail(joinPath(path, "label"), "cannot be empty")
		} else {
			option.Label = label
		}
	}
	option.Comment = d.optionalString(obj, path, "comment")
	return option, len(d.errs) == mark
}

func (d *decoder) decodeFactSheetElement(raw interface{}, path string) (*FactSheetElement, bool) {
	obj, ok := d.asObject(raw, path)
	if !ok {
		return nil, false
	}
	mark := len(d.errs)
	element := &FactSheetElement{}
	element.Type = d.optionalString(obj, path, "type")
	element.TagGroupID = d.optionalString(obj, path, "tag_group_id")
	element.Subscription = d.optionalAnyMap(obj, path, "subscription")
	element.FactSheetFieldName = d.optionalString(obj, path, "fact_sheet_field_name")
	element.FactSheetFieldType = d.optionalString(obj, path, "fact_sheet_field_type")
	element.TagGroupMode = d.optionalString(obj, path, "tag_group_mode")
	element.FactSheetFieldViewType = d.optionalString(obj, path, "fact_sheet_field_view_type")

	if raw, ok := lookup(obj, "properties"); ok {
		propertiesPath := joinPath(path, "properties")
		list, ok := d.asList(raw, propertiesPath)
		if !ok {
			return nil, false
		}
		properties := make([]ElementProperty, 0, len(list))
		for i, entry := range list {
			entryPath := indexPath(propertiesPath, i)
			entryObj, ok := d.asObject(entry, entryPath)
			if !ok {
				return nil, false
			}
			name, ok := d.requiredString(entryObj, entryPath, "name")
			if !ok {
				return nil, false
			}
			properties = append(properties, ElementProperty{Name: name})
		}
		element.Properties = properties
	}
	return element, len(d.errs) == mark
}

func (d *decoder) decodeQuestionSettings(raw interface{}, path string) (*QuestionSettings, bool) {
	obj, ok := d.asObject(raw, path)
	if !ok {
		return nil, false
	}
	mark := len(d.errs)
	settings := &QuestionSettings{}
	settings.Metrics = d.optionalStringMap(obj, path, "metrics")
	settings.Version = d.optionalInt(obj, path, "version")
	settings.HideInResults = d.optionalBool(obj, path, "hide_in_results")
	settings.IsConditional = d.optionalBool(obj, path, "is_conditional")
	settings.FsSections = d.optionalAnyMap(obj, path, "fs_sections")
	settings.Formula = d.optionalString(obj, path, "formula")
	settings.IsMandatory = d.optionalBool(obj, path, "is_mandatory")

	if raw, ok := lookup(obj, "dependency"); ok {
		dependencyPath := joinPath(path, "dependency")
		dependencyObj, ok := d.asObject(raw, dependencyPath)
		if !ok {
			return nil, false
		}
		dependency := &DependencySettings{}
		dependency.ParentID, _ = d.requiredString(dependencyObj, dependencyPath, "parent_id")
		conditionPath := joinPath(dependencyPath, "condition")
		if raw, ok := lookup(dependencyObj, "condition"); ok {
			dependency.Condition, _ = d.asObject(raw, conditionPath)
		} else {
			d.fail(conditionPath, "is required")
		}
		settings.Dependency = dependency
	}
	return settings, len(d.errs) == mark
}

func (d *decoder) decodeFacetFilter(raw interface{}, path string, depth int) (FacetFilter, bool) {
	if depth > MaxNestingDepth {
		d.fail(path, "exceeds the maximum filter nesting depth of %d", MaxNestingDepth)
		return FacetFilter{}, false
	}
	obj, ok := d.asObject(raw, path)
	if !ok {
		return FacetFilter{}, false
	}
	mark := len(d.errs)
	filter := FacetFilter{}
	filter.FacetKey = d.optionalString(obj, path, "facet_key")
	filter.Keys = d.optionalStringList(obj, path, "keys")

	if raw, ok := lookup(obj, "operator"); ok {
		operatorPath := joinPath(path, "operator")
		if value, ok := raw.(string); ok {
			operator, err := ParseFacetFilterOperator(value)
			if err != nil {
				d.fail(operatorPath, err.Error())
			} else {
				filter.Operator = &operator
			}
		} else {
			d.fail(operatorPath, "must be a string")
		}
	}

	if raw, ok := lookup(obj, "date_filter"); ok {
		dateFilter, ok := d.decodeDateFilter(raw, joinPath(path, WireName("date_filter")))
		if !ok {
			return FacetFilter{}, false
		}
		filter.DateFilter = dateFilter
	}

	if raw, ok := lookup(obj, "subscription_filter"); ok {
		subscriptionFilter, ok := d.decodeSubscriptionFilter(raw, joinPath(path, WireName("subscription_filter")))
		if !ok {
			return FacetFilter{}, false
		}
		filter.SubscriptionFilter = subscriptionFilter
	}

	if raw, ok := lookup(obj, "sub_filter"); ok {
		subFilterPath := joinPath(path, WireName("sub_filter"))
		list, ok := d.asList(raw, subFilterPath)
		if !ok {
			return FacetFilter{}, false
		}
		subFilters := make([]FacetFilter, 0, len(list))
		for i, element := range list {
			subFilter, ok := d.decodeFacetFilter(element, indexPath(subFilterPath, i), depth+1)
			if !ok {
				return FacetFilter{}, false
			}
			subFilters = append(subFilters, subFilter)
		}
		filter.SubFilter = subFilters
	}
	return filter, len(d.errs) == mark
}

func (d *decoder) decodeDateFilter(raw interface{}, path string) (*DateFilter, bool) {
	obj, ok := d.asObject(raw, path)
	if !ok {
		return nil, false
	}
	mark := len(d.errs)
	dateFilter := &DateFilter{}
	dateFilter.From = d.optionalDate(obj, path, "from")
	dateFilter.To = d.optionalDate(obj, path, "to")
	if value, ok := d.requiredString(obj, path, "type"); ok {
		filterType, err := ParseDateFilterType(value)
		if err != nil {
			d.fail(joinPath(path, "type"), err.Error())
		} else {
			dateFilter.Type = filterType
		}
	}
	return dateFilter, len(d.errs) == mark
}

func (d *decoder) decodeSubscriptionFilter(raw interface{}, path string) (*SubscriptionFilter, bool) {
	obj, ok := d.asObject(raw, path)
	if !ok {
		return nil, false
	}
	mark := len(d.errs)
	filter := &SubscriptionFilter{}
	if value, ok := d.requiredString(obj, path, "type"); ok {
		subscriptionType, err := ParseSubscriptionType(value)
		if err != nil {
			d.fail(joinPath(path, "type"), err.Error())
		} else {
			filter.Type = subscriptionType
		}
	}
	filter.RoleID = d.optionalString(obj, path, "role_id")
	return filter, len(d.errs) == mark
}

func (d *decoder) decodeFactSheetQuery(raw interface{}, path string) (*FactSheetQuery, bool) {
	obj, ok := d.asObject(raw, path)
	if !ok {
		return nil, false
	}
	mark := len(d.errs)
	query := &FactSheetQuery{}
	if raw, ok := lookup(obj, "filter"); ok {
		filter, ok := d.decodeQueryFilter(raw, joinPath(path, "filter"))
		if !ok {
			return nil, false
		}
		query.Filter = filter
	}
	query.IDs = d.optionalStringList(obj, path, "ids")
	return query, len(d.errs) == mark
}

func (d *decoder) decodeQueryFilter(raw interface{}, path string) (*QueryFilter, bool) {
	obj, ok := d.asObject(raw, path)
	if !ok {
		return nil, false
	}
	mark := len(d.errs)
	filter := &QueryFilter{}
	filter.FsType = d.optionalString(obj, path, "fs_type")
	filter.FullTextSearchTerm = d.optionalString(obj, path, "full_text_search_term")

	if raw, ok := lookup(obj, "facet_filter"); ok {
		facetFilterPath := joinPath(path, WireName("facet_filter"))
		list, ok := d.asList(raw, facetFilterPath)
		if !ok {
			return nil, false
		}
		facetFilters := make([]FacetFilter, 0, len(list))
		for i, element := range list {
			facetFilter, ok := d.decodeFacetFilter(element, indexPath(facetFilterPath, i), 1)
			if !ok {
				return nil, false
			}
			facetFilters = append(facetFilters, facetFilter)
		}
		filter.FacetFilter = facetFilters
	}
	return filter, len(d.errs) == mark
}

func (d *decoder) decodeUserQuery(raw interface{}, path string) (*UserQuery, bool) {
	obj, ok := d.asObject(raw, path)
	if !ok {
		return nil, false
	}
	rolesPath := joinPath(path, "roles")
	rawRoles, ok := lookup(obj, "roles")
	if !ok {
		d.fail(rolesPath, "is required")
		return nil, false
	}
	list, ok := d.asList(rawRoles, rolesPath)
	if !ok {
		return nil, false
	}
	roles := make([]UserRole, 0, len(list))
	for i, element := range list {
		role, ok := d.decodeUserRole(element, indexPath(rolesPath, i))
		if !ok {
			return nil, false
		}
		roles = append(roles, role)
	}
	return &UserQuery{Roles: roles}, true
}

func (d *decoder) decodeUserRole(raw interface{}, path string) (UserRole, bool) {
	obj, ok := d.asObject(raw, path)
	if !ok {
		return UserRole{}, false
	}
	mark := len(d.errs)
	role := UserRole{}
	if value, ok := d.requiredString(obj, path, "subscription_type"); ok {
		subscriptionType, err := ParseSubscriptionType(value)
		if err != nil {
			d.fail(joinPath(path, WireName("subscription_type")), err.Error())
		} else {
			role.SubscriptionType = subscriptionType
		}
	}

	if raw, ok := lookup(obj, "role_details"); ok {
		detailsPath := joinPath(path, WireName("role_details"))
		list, ok := d.asList(raw, detailsPath)
		if !ok {
			return UserRole{}, false
		}
		details := make([]UserRoleDetails, 0, len(list))
		for i, element := range list {
			entryPath := indexPath(detailsPath, i)
			entryObj, ok := d.asObject(element, entryPath)
			if !ok {
				return UserRole{}, false
			}
			entry := UserRoleDetails{}
			entry.Name, _ = d.requiredString(entryObj, entryPath, "name")
			entry.ID, _ = d.requiredString(entryObj, entryPath, "id")
			details = append(details, entry)
		}
		role.RoleDetails = details
	}
	return role, len(d.errs) == mark
}
