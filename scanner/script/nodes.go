package script

// Tree-sitter JavaScript node kinds used by the script scanners. The
// anonymous function expression kind appears under both its old and new
// grammar names; matchers accept either.
const (
	nodeProgram             = "program"
	nodeComment             = "comment"
	nodeExportStatement     = "export_statement"
	nodeImportStatement     = "import_statement"
	nodeExpressionStatement = "expression_statement"
	nodeLexicalDeclaration  = "lexical_declaration"
	nodeVariableDeclaration = "variable_declaration"
	nodeVariableDeclarator  = "variable_declarator"
	nodeAssignment          = "assignment_expression"
	nodeCallExpression      = "call_expression"
	nodeMemberExpression    = "member_expression"
	nodeIdentifier          = "identifier"
	nodePropertyIdentifier  = "property_identifier"
	nodeClassDeclaration    = "class_declaration"
	nodeClassExpression     = "class"
	nodeClassHeritage       = "class_heritage"
	nodeClassBody           = "class_body"
	nodeMethodDefinition    = "method_definition"
	nodeFieldDefinition     = "field_definition"
	nodeFunctionDeclaration = "function_declaration"
	nodeFunctionExprOld     = "function"
	nodeFunctionExprNew     = "function_expression"
	nodeArrowFunction       = "arrow_function"
	nodeFormalParameters    = "formal_parameters"
	nodeStatementBlock      = "statement_block"
	nodeReturnStatement     = "return_statement"
	nodeObject              = "object"
	nodePair                = "pair"
	nodeArray               = "array"
	nodeString              = "string"
	nodeStringFragment      = "string_fragment"
	nodeNumber              = "number"
	nodeTrue                = "true"
	nodeFalse               = "false"
	nodeArguments           = "arguments"
)

// isClassNode reports whether a node is a class declaration or expression.
func isClassNode(kind string) bool {
	return kind == nodeClassDeclaration || kind == nodeClassExpression
}

// isFunctionNode reports whether a node is any function-like expression or
// declaration.
func isFunctionNode(kind string) bool {
	switch kind {
	case nodeFunctionDeclaration, nodeFunctionExprOld, nodeFunctionExprNew, nodeArrowFunction:
		return true
	}
	return false
}
