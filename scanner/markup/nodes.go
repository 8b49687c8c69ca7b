package markup

// Tree-sitter HTML node kinds used by the markup scanners.
const (
	nodeElement        = "element"
	nodeStartTag       = "start_tag"
	nodeSelfClosing    = "self_closing_tag"
	nodeTagName        = "tag_name"
	nodeScriptElement  = "script_element"
	nodeStyleElement   = "style_element"
	nodeRawText        = "raw_text"
	nodeAttribute      = "attribute"
	nodeAttributeName  = "attribute_name"
	nodeAttributeValue = "attribute_value"
	nodeQuotedValue    = "quoted_attribute_value"
)
