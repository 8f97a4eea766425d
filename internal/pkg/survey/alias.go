package survey

// fieldAliases maps internal snake_case field names to the camelCase names
// the LeanIX Poll API expects on the wire. The decoder consults this table
// when reading input and the struct json tags carry the same wire names on
// output, so the mapping used for both directions cannot drift apart.
// Fields whose two spellings coincide (title, options, keys, ...) are not
// listed; WireName falls back to the internal name.
var fieldAliases = map[string]string{
	"descriptive_text":                    "descriptiveText",
	"answer_options":                      "answerOptions",
	"fact_sheet_element":                  "factSheetElement",
	"tag_group_id":                        "tagGroupId",
	"fact_sheet_field_name":               "factSheetFieldName",
	"fact_sheet_field_type":               "factSheetFieldType",
	"tag_group_mode":                      "tagGroupMode",
	"fact_sheet_field_view_type":          "factSheetFieldViewType",
	"parent_id":                           "parentId",
	"hide_in_results":                     "hideInResults",
	"is_conditional":                      "isConditional",
	"fs_sections":                         "fsSections",
	"is_mandatory":                        "isMandatory",
	"facet_key":                           "facetKey",
	"date_filter":                         "dateFilter",
	"subscription_filter":                 "subscriptionFilter",
	"sub_filter":                          "subFilter",
	"role_id":                             "roleId",
	"fs_type":                             "fsType",
	"facet_filter":                        "facetFilter",
	"full_text_search_term":               "fullTextSearchTerm",
	"subscription_type":                   "subscriptionType",
	"role_details":                        "roleDetails",
	"introduction_text":                   "introductionText",
	"introduction_subject":                "introductionSubject",
	"additional_fact_sheet_subject":       "additionalFactSheetSubject",
	"additional_fact_sheet_text":          "additionalFactSheetText",
	"additional_fact_sheet_check_enabled": "additionalFactSheetCheckEnabled",
	"repeat_interval":                     "repeatInterval",
	"time_frame":                          "timeFrame",
	"send_change_notifications":           "sendChangeNotifications",
	"allowed_permission_status":           "allowedPermissionStatus",
	"dynamic_scope_check_enabled":         "dynamicScopeCheckEnabled",
	"fact_sheet_query":                    "factSheetQuery",
	"user_query":                          "userQuery",
	"fact_sheet_type":                     "factSheetType",
	"due_date":                            "dueDate",
}

// WireName returns the external field name for an internal identifier.
func WireName(internal string) string {
	if wire, ok := fieldAliases[internal]; ok {
		return wire
	}
	return internal
}
