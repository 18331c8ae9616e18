package estree

// Node kinds referenced by the engine. Frontends may emit kinds beyond these;
// they are handled generically.
const (
	KindProgram                  = "Program"
	KindIdentifier               = "Identifier"
	KindPrivateIdentifier        = "PrivateIdentifier"
	KindLiteral                  = "Literal"
	KindTemplateLiteral          = "TemplateLiteral"
	KindTemplateElement          = "TemplateElement"
	KindTaggedTemplateExpression = "TaggedTemplateExpression"

	KindExpressionStatement = "ExpressionStatement"
	KindBlockStatement      = "BlockStatement"
	KindStaticBlock         = "StaticBlock"
	KindEmptyStatement      = "EmptyStatement"
	KindReturnStatement     = "ReturnStatement"
	KindThrowStatement      = "ThrowStatement"
	KindIfStatement         = "IfStatement"
	KindTryStatement        = "TryStatement"
	KindCatchClause         = "CatchClause"
	KindLabeledStatement    = "LabeledStatement"
	KindBreakStatement      = "BreakStatement"
	KindContinueStatement   = "ContinueStatement"

	KindFunctionDeclaration     = "FunctionDeclaration"
	KindFunctionExpression      = "FunctionExpression"
	KindArrowFunctionExpression = "ArrowFunctionExpression"
	KindClassDeclaration        = "ClassDeclaration"
	KindClassExpression         = "ClassExpression"
	KindMethodDefinition        = "MethodDefinition"
	KindPropertyDefinition      = "PropertyDefinition"
	KindVariableDeclaration     = "VariableDeclaration"
	KindVariableDeclarator      = "VariableDeclarator"

	KindCallExpression          = "CallExpression"
	KindNewExpression           = "NewExpression"
	KindMemberExpression        = "MemberExpression"
	KindChainExpression         = "ChainExpression"
	KindAwaitExpression         = "AwaitExpression"
	KindParenthesizedExpression = "ParenthesizedExpression"
	KindUnaryExpression         = "UnaryExpression"
	KindConditionalExpression   = "ConditionalExpression"
	KindSpreadElement           = "SpreadElement"
	KindObjectExpression        = "ObjectExpression"
	KindProperty                = "Property"

	KindObjectPattern     = "ObjectPattern"
	KindArrayPattern      = "ArrayPattern"
	KindAssignmentPattern = "AssignmentPattern"
	KindRestElement       = "RestElement"

	KindImportDeclaration        = "ImportDeclaration"
	KindImportSpecifier          = "ImportSpecifier"
	KindImportDefaultSpecifier   = "ImportDefaultSpecifier"
	KindImportNamespaceSpecifier = "ImportNamespaceSpecifier"
	KindExportNamedDeclaration   = "ExportNamedDeclaration"
	KindExportDefaultDeclaration = "ExportDefaultDeclaration"
	KindExportAllDeclaration     = "ExportAllDeclaration"
	KindExportSpecifier          = "ExportSpecifier"

	KindJSXIdentifier = "JSXIdentifier"

	KindTSTypeAnnotation              = "TSTypeAnnotation"
	KindTSTypeReference               = "TSTypeReference"
	KindTSTypeQuery                   = "TSTypeQuery"
	KindTSQualifiedName               = "TSQualifiedName"
	KindTSTypeLiteral                 = "TSTypeLiteral"
	KindTSTypeParameter               = "TSTypeParameter"
	KindTSTypeParameterDeclaration    = "TSTypeParameterDeclaration"
	KindTSTypeParameterInstantiation  = "TSTypeParameterInstantiation"
	KindTSInterfaceDeclaration        = "TSInterfaceDeclaration"
	KindTSInterfaceHeritage           = "TSInterfaceHeritage"
	KindTSClassImplements             = "TSClassImplements"
	KindTSExpressionWithTypeArguments = "TSExpressionWithTypeArguments" // heritage entry in older typescript-estree
	KindTSTypeAliasDeclaration        = "TSTypeAliasDeclaration"
	KindTSDeclareFunction             = "TSDeclareFunction"
	KindTSEmptyBodyFunctionExpression = "TSEmptyBodyFunctionExpression"
	KindTSNonNullExpression           = "TSNonNullExpression"
	KindTSAsExpression                = "TSAsExpression"
	KindTSSatisfiesExpression         = "TSSatisfiesExpression"
	KindTSParameterProperty           = "TSParameterProperty"
	KindTSExportAssignment            = "TSExportAssignment"
	KindTSEnumDeclaration             = "TSEnumDeclaration"
	KindTSModuleDeclaration           = "TSModuleDeclaration"
)

// KindFields declares the leading child fields of well-known kinds, in
// evaluation order. Node-valued fields a kind does not list are still visited
// after these, and kinds missing from the table fall back to generic field
// enumeration.
var KindFields = map[string][]string{
	KindProgram:             {"body"},
	KindExpressionStatement: {"expression"},
	KindBlockStatement:      {"body"},
	KindStaticBlock:         {"body"},
	KindReturnStatement:     {"argument"},
	KindThrowStatement:      {"argument"},
	KindIfStatement:         {"test", "consequent", "alternate"},
	KindTryStatement:        {"block", "handler", "finalizer"},
	KindCatchClause:         {"param", "body"},
	KindLabeledStatement:    {"label", "body"},
	KindBreakStatement:      {"label"},
	KindContinueStatement:   {"label"},
	"WhileStatement":        {"test", "body"},
	"DoWhileStatement":      {"body", "test"},
	"ForStatement":          {"init", "test", "update", "body"},
	"ForInStatement":        {"left", "right", "body"},
	"ForOfStatement":        {"left", "right", "body"},
	"SwitchStatement":       {"discriminant", "cases"},
	"SwitchCase":            {"test", "consequent"},
	"WithStatement":         {"object", "body"},

	KindFunctionDeclaration:     {"id", "typeParameters", "params", "returnType", "body"},
	KindFunctionExpression:      {"id", "typeParameters", "params", "returnType", "body"},
	KindArrowFunctionExpression: {"typeParameters", "params", "returnType", "body"},
	KindClassDeclaration:        {"decorators", "id", "typeParameters", "superClass", "superTypeArguments", "implements", "body"},
	KindClassExpression:         {"decorators", "id", "typeParameters", "superClass", "superTypeArguments", "implements", "body"},
	"ClassBody":                 {"body"},
	KindMethodDefinition:        {"decorators", "key", "value"},
	KindPropertyDefinition:      {"decorators", "key", "typeAnnotation", "value"},
	KindVariableDeclaration:     {"declarations"},
	KindVariableDeclarator:      {"id", "init"},

	KindCallExpression:           {"callee", "typeArguments", "arguments"},
	KindNewExpression:            {"callee", "typeArguments", "arguments"},
	KindMemberExpression:         {"object", "property"},
	KindChainExpression:          {"expression"},
	KindAwaitExpression:          {"argument"},
	KindParenthesizedExpression:  {"expression"},
	KindUnaryExpression:          {"argument"},
	"UpdateExpression":           {"argument"},
	"BinaryExpression":           {"left", "right"},
	"LogicalExpression":          {"left", "right"},
	"AssignmentExpression":       {"left", "right"},
	"SequenceExpression":         {"expressions"},
	KindConditionalExpression:    {"test", "consequent", "alternate"},
	"YieldExpression":            {"argument"},
	KindSpreadElement:            {"argument"},
	"ArrayExpression":            {"elements"},
	KindObjectExpression:         {"properties"},
	KindProperty:                 {"key", "value"},
	KindTemplateLiteral:          {"quasis", "expressions"},
	KindTaggedTemplateExpression: {"tag", "typeArguments", "quasi"},
	"ImportExpression":           {"source", "options"},
	"MetaProperty":               {"meta", "property"},

	KindObjectPattern:     {"properties", "typeAnnotation"},
	KindArrayPattern:      {"elements", "typeAnnotation"},
	KindAssignmentPattern: {"left", "right"},
	KindRestElement:       {"argument", "typeAnnotation"},
	KindIdentifier:        {"typeAnnotation"},

	KindImportDeclaration:        {"specifiers", "source", "attributes"},
	KindImportSpecifier:          {"imported", "local"},
	KindImportDefaultSpecifier:   {"local"},
	KindImportNamespaceSpecifier: {"local"},
	KindExportNamedDeclaration:   {"declaration", "specifiers", "source", "attributes"},
	KindExportDefaultDeclaration: {"declaration"},
	KindExportAllDeclaration:     {"exported", "source", "attributes"},
	KindExportSpecifier:          {"local", "exported"},

	KindLiteral:         {},
	KindTemplateElement: {},
	"ThisExpression":    {},
	"Super":             {},
	"DebuggerStatement": {},
	KindEmptyStatement:  {},
}
