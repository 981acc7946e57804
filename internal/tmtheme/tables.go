package tmtheme

import "github.com/opencode-ai/themegen/internal/mapping"

// Globals maps editor-wide plist settings to Helix UI scopes.
var Globals = mapping.MustTable(
	mapping.Entry{Target: "background", Source: "ui.background", Channel: mapping.ChannelBackground},
	mapping.Entry{Target: "foreground", Source: "ui.text", Channel: mapping.ChannelForeground},
	mapping.Entry{Target: "caret", Source: "ui.cursor", Channel: mapping.ChannelBackground},
	mapping.Entry{Target: "selection", Source: "ui.selection", Channel: mapping.ChannelBackground},
	mapping.Entry{Target: "lineHighlight", Source: "ui.cursorline", Channel: mapping.ChannelBackground},
	mapping.Entry{Target: "gutterForeground", Source: "ui.linenr", Channel: mapping.ChannelForeground},
)

// Rules maps TextMate scopes to the Helix scopes that style them.
var Rules = mapping.MustTable(
	// Same name in both vocabularies.
	rule("comment", "comment", "Comments"),
	rule("comment.line", "comment.line", "Line Comments"),
	rule("comment.block", "comment.block", "Block Comments"),
	rule("comment.block.documentation", "comment.block.documentation", "Documentation Comments"),
	rule("string", "string", "Strings"),
	rule("string.regexp", "string.regexp", "Regular Expressions"),
	rule("constant", "constant", "Constants"),
	rule("constant.numeric", "constant.numeric", "Numbers"),
	rule("constant.character", "constant.character", "Characters"),
	rule("constant.character.escape", "constant.character.escape", "Escape Characters"),
	rule("variable", "variable", "Variables"),
	rule("variable.parameter", "variable.parameter", "Parameters"),
	rule("keyword", "keyword", "Keywords"),
	rule("keyword.control", "keyword.control", "Control Keywords"),
	rule("keyword.operator", "keyword.operator", "Operator Keywords"),
	rule("operator", "operator", "Operators"),
	rule("punctuation", "punctuation", "Punctuation"),
	rule("markup.heading", "markup.heading", "Headings"),
	rule("markup.bold", "markup.bold", "Bold"),
	rule("markup.italic", "markup.italic", "Italic"),
	rule("markup.strikethrough", "markup.strikethrough", "Strikethrough"),
	rule("markup.quote", "markup.quote", "Quotes"),
	rule("markup.raw", "markup.raw", "Raw/Code"),
	rule("markup.list", "markup.list", "Lists"),

	// Functions
	rule("entity.name.function", "function", "Functions"),
	rule("entity.name.function.method", "function.method", "Methods"),
	rule("entity.name.function.macro", "function.macro", "Macros"),
	rule("support.function", "function.builtin", "Built-in Functions"),
	rule("entity.name.function.constructor", "constructor", "Constructors"),

	// Types
	rule("entity.name.type", "type", "Types"),
	rule("support.type", "type.builtin", "Built-in Types"),
	rule("entity.name.type.enum", "type.enum.variant", "Enum Variants"),

	// Tags, attributes, namespaces
	rule("entity.name.tag", "tag", "Tags"),
	rule("entity.other.attribute-name", "attribute", "Attributes"),
	rule("entity.name.namespace", "namespace", "Namespaces"),
	rule("entity.name.module", "module", "Modules"),
	rule("entity.name.label", "label", "Labels"),

	// Variables
	rule("variable.language", "variable.builtin", "Built-in Variables"),
	rule("variable.other.member", "variable.other.member", "Member Variables"),
	rule("variable.function", "variable.function", "Function References"),

	// Constants and special strings
	rule("constant.language", "constant.builtin", "Built-in Constants"),
	rule("constant.other.symbol", "string.special.symbol", "Symbols"),
	rule("string.other", "string.special", "Special Strings"),
	rule("string.other.link", "string.special.url", "URLs"),

	// Keywords
	rule("storage.type.function", "keyword.function", "Function Keywords"),
	rule("keyword.other.directive", "keyword.directive", "Directives"),
	rule("keyword.control.loop", "keyword.control.repeat", "Loop Keywords"),
	rule("keyword.control.import", "keyword.control.import", "Import Keywords"),
	rule("keyword.control.return", "keyword.control.return", "Return Keywords"),
	rule("keyword.control.exception", "keyword.control.exception", "Exception Keywords"),
	rule("keyword.other", "special", "Special Keywords"),

	// Punctuation
	rule("punctuation.separator", "punctuation.delimiter", "Separators"),
	rule("punctuation.bracket", "punctuation.bracket", "Brackets"),

	// Markup
	rule("markup.heading.1", "markup.heading.1", "Heading 1"),
	rule("markup.heading.2", "markup.heading.2", "Heading 2"),
	rule("markup.heading.3", "markup.heading.3", "Heading 3"),
	rule("markup.heading.4", "markup.heading.4", "Heading 4"),
	rule("markup.heading.5", "markup.heading.5", "Heading 5"),
	rule("markup.heading.6", "markup.heading.6", "Heading 6"),
	rule("markup.link", "markup.link", "Links"),
	rule("markup.link.url", "markup.link.url", "Link URLs"),
	rule("markup.list.numbered", "markup.list.numbered", "Numbered Lists"),
	rule("markup.list.unnumbered", "markup.list.unnumbered", "Bullet Lists"),
	rule("markup.raw.inline", "markup.raw.inline", "Inline Code"),
	rule("markup.raw.block", "markup.raw.block", "Code Blocks"),

	// Diff
	rule("markup.inserted", "diff.plus", "Inserted (Diff)"),
	rule("markup.deleted", "diff.minus", "Deleted (Diff)"),
	rule("markup.changed", "diff.delta", "Changed (Diff)"),
)

func rule(scope, source, label string) mapping.Entry {
	return mapping.Entry{
		Target:  scope,
		Source:  source,
		Channel: mapping.ChannelStyle,
		Label:   label,
	}
}
