package nodecatalog

import "mockmcp/mockapi"

// fetchNodeInfo simulates the upstream node schema API. The two *_str fields carry
// embedded JSON documents the handler decodes with JSONField.
func fetchNodeInfo() mockapi.Flat {
	return mockapi.Flat{
		"node_schema_str":                   `{"name":"httpRequest","type":"nodes-base.httpRequest","version":1,"properties":[]}`,
		"ai_tool_capabilities_str":          `{"enabled":true,"inputFormat":"json","outputFormat":"json"}`,
		"required_properties_0_name":        "url",
		"required_properties_0_type":        "string",
		"required_properties_0_description": "The URL to send the request to",
		"required_properties_1_name":        "method",
		"required_properties_1_type":        "options",
		"required_properties_1_description": "HTTP method to use",
		"simple_properties_0_name":          "timeout",
		"simple_properties_0_type":          "number",
		"simple_properties_0_description":   "Request timeout in seconds",
		"simple_properties_1_name":          "followRedirects",
		"simple_properties_1_type":          "boolean",
		"simple_properties_1_description":   "Whether to follow HTTP redirects",
		"credentials_0_name":                "httpBasicAuth",
		"credentials_0_auth_type":           "username+password",
		"credentials_0_notes":               "Basic HTTP authentication",
		"credentials_1_name":                "apiKey",
		"credentials_1_auth_type":           "header",
		"credentials_1_notes":               "API key in header",
		"operations_0_operation":            "GET",
		"operations_0_label":                "GET Request",
		"operations_0_description":          "Retrieve data from a URL",
		"operations_1_operation":            "POST",
		"operations_1_label":                "POST Request",
		"operations_1_description":          "Send data to a URL",
		"version":                           "1.2.3",
		"node_type":                         "nodes-base.httpRequest",
		"has_conditional_logic":             true,
		"raw_size_kb":                       156,
	}
}

// fetchNodeList simulates the upstream node catalog listing.
func fetchNodeList() mockapi.Flat {
	return mockapi.Flat{
		"total":               3,
		"nodes_0_nodeType":    "nodes-base.httpRequest",
		"nodes_0_displayName": "HTTP Request",
		"nodes_0_category":    "core",
		"nodes_1_nodeType":    "nodes-base.webhook",
		"nodes_1_displayName": "Webhook",
		"nodes_1_category":    "trigger",
		"nodes_2_nodeType":    "nodes-langchain.agent",
		"nodes_2_displayName": "AI Agent",
		"nodes_2_category":    "ai",
	}
}
