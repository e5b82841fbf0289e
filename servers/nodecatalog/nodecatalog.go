// Package nodecatalog simulates a workflow-node catalog MCP server (technical node
// schemas, credential and operation listings). Its tools are stateful: calls carrying
// file-verb commands are routed through the heuristic dispatcher.
package nodecatalog

import (
	"context"
	"fmt"
	"strings"

	"mockmcp"
	"mockmcp/mockapi"
)

// InfoArgs are the inputs for get_node_info.
type InfoArgs struct {
	NodeType string `json:"nodeType" jsonschema:"required" description:"Full node type with prefix, e.g. 'nodes-base.httpRequest'. Case sensitive."`
	Command  string `json:"command,omitempty" description:"Optional file command hint, e.g. 'view'"`
	Path     string `json:"path,omitempty" description:"Optional state path the command applies to"`
}

// Validate requires a prefixed node type.
func (a InfoArgs) Validate() error {
	if a.NodeType == "" {
		return fmt.Errorf("nodeType is required")
	}
	if !strings.HasPrefix(a.NodeType, "nodes-base.") && !strings.HasPrefix(a.NodeType, "nodes-langchain.") {
		return fmt.Errorf("nodeType must start with 'nodes-base.' or 'nodes-langchain.' prefix")
	}
	return nil
}

// PropertySummary describes one node property.
type PropertySummary struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Credential describes one supported credential type.
type Credential struct {
	Name     string `json:"name"`
	AuthType string `json:"authType"`
	Notes    string `json:"notes"`
}

// Operation describes one node operation.
type Operation struct {
	Operation   string `json:"operation"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// NodeInfo is the documented response for get_node_info. NodeSchema and
// AIToolCapabilities are decoded from embedded JSON documents; on a malformed
// document they carry the parse-error placeholder object instead.
type NodeInfo struct {
	NodeSchema          any               `json:"nodeSchema"`
	AIToolCapabilities  any               `json:"aiToolCapabilities"`
	RequiredProperties  []PropertySummary `json:"requiredProperties"`
	SimpleProperties    []PropertySummary `json:"simpleProperties"`
	Credentials         []Credential      `json:"credentials"`
	Operations          []Operation       `json:"operations"`
	Version             string            `json:"version"`
	NodeType            string            `json:"nodeType"`
	HasConditionalLogic bool              `json:"hasConditionalLogic"`
	RawSizeKB           int               `json:"rawSizeKB"`
}

// ListArgs are the inputs for list_nodes.
type ListArgs struct {
	Category string `json:"category,omitempty" description:"Filter by node category" enum:"core,trigger,ai"`
	Path     string `json:"path,omitempty" description:"Optional state path to list against"`
}

// NodeList is the documented response for list_nodes.
type NodeList struct {
	Total int              `json:"total"`
	Nodes []map[string]any `json:"nodes"`
}

// Tools builds the package's mock tools.
func Tools() ([]mockmcp.Tool, error) {
	getNodeInfo, err := mockmcp.NewTool(
		"get_node_info",
		"Get the complete technical schema for a node: properties, operations, credentials, and AI tool capabilities.",
		func(_ context.Context, a InfoArgs) (NodeInfo, error) {
			return reshapeNodeInfo(fetchNodeInfo()), nil
		},
		mockmcp.WithTags("nodecatalog"),
		mockmcp.WithStateful(),
	)
	if err != nil {
		return nil, err
	}

	listNodes, err := mockmcp.NewTool(
		"list_nodes",
		"List available workflow nodes with display names and categories.",
		func(_ context.Context, a ListArgs) (NodeList, error) {
			nodes := fetchNodeList().Rows("nodes")
			if a.Category != "" {
				filtered := nodes[:0]
				for _, n := range nodes {
					if n["category"] == a.Category {
						filtered = append(filtered, n)
					}
				}
				nodes = filtered
			}
			// Total reflects the filtered listing, not the catalog size.
			return NodeList{Total: len(nodes), Nodes: nodes}, nil
		},
		mockmcp.WithTags("nodecatalog"),
		mockmcp.WithStateful(),
	)
	if err != nil {
		return nil, err
	}

	return []mockmcp.Tool{getNodeInfo, listNodes}, nil
}

// reshapeNodeInfo lifts the flat payload into the documented nested schema.
func reshapeNodeInfo(flat mockapi.Flat) NodeInfo {
	return NodeInfo{
		NodeSchema:         flat.JSONField("node_schema_str", "node schema"),
		AIToolCapabilities: flat.JSONField("ai_tool_capabilities_str", "AI tool capabilities"),
		RequiredProperties: []PropertySummary{
			{
				Name:        flat.Str("required_properties_0_name"),
				Type:        flat.Str("required_properties_0_type"),
				Description: flat.Str("required_properties_0_description"),
			},
			{
				Name:        flat.Str("required_properties_1_name"),
				Type:        flat.Str("required_properties_1_type"),
				Description: flat.Str("required_properties_1_description"),
			},
		},
		SimpleProperties: []PropertySummary{
			{
				Name:        flat.Str("simple_properties_0_name"),
				Type:        flat.Str("simple_properties_0_type"),
				Description: flat.Str("simple_properties_0_description"),
			},
			{
				Name:        flat.Str("simple_properties_1_name"),
				Type:        flat.Str("simple_properties_1_type"),
				Description: flat.Str("simple_properties_1_description"),
			},
		},
		Credentials: []Credential{
			{
				Name:     flat.Str("credentials_0_name"),
				AuthType: flat.Str("credentials_0_auth_type"),
				Notes:    flat.Str("credentials_0_notes"),
			},
			{
				Name:     flat.Str("credentials_1_name"),
				AuthType: flat.Str("credentials_1_auth_type"),
				Notes:    flat.Str("credentials_1_notes"),
			},
		},
		Operations: []Operation{
			{
				Operation:   flat.Str("operations_0_operation"),
				Label:       flat.Str("operations_0_label"),
				Description: flat.Str("operations_0_description"),
			},
			{
				Operation:   flat.Str("operations_1_operation"),
				Label:       flat.Str("operations_1_label"),
				Description: flat.Str("operations_1_description"),
			},
		},
		Version:             flat.Str("version"),
		NodeType:            flat.Str("node_type"),
		HasConditionalLogic: flat.Bool("has_conditional_logic"),
		RawSizeKB:           flat.Int("raw_size_kb"),
	}
}
