package opencode

import "github.com/opencode-ai/themegen/internal/mapping"

// Table maps opencode theme fields to Helix scopes. Fields without a source
// always render as Unset.
var Table = mapping.MustTable(
	// UI semantic
	bg("accent", "ui.cursor"),
	fg("error", "error"),
	fg("info", "info"),
	bg("primary", "ui.selection"),
	unset("secondary"),
	unset("success"),
	fg("warning", "warning"),

	// Text
	bg("selectedListItemText", "ui.background"),
	fg("text", "ui.text"),
	fg("textMuted", "comment"),

	// Background
	bg("background", "ui.background"),
	bg("backgroundElement", "ui.cursorline"),
	bg("backgroundMenu", "ui.help"),
	bg("backgroundPanel", "ui.window"),

	// Border
	fg("border", "ui.window"),
	bg("borderActive", "ui.selection"),
	fg("borderSubtle", "ui.virtual"),

	// Diff
	fg("diffAdded", "diff.plus"),
	unset("diffAddedBg"),
	unset("diffAddedLineNumberBg"),
	fg("diffContext", "diff.delta"),
	bg("diffContextBg", "ui.background"),
	fg("diffHighlightAdded", "diff.plus"),
	fg("diffHighlightRemoved", "diff.minus"),
	fg("diffHunkHeader", "diff.delta"),
	fg("diffLineNumber", "ui.linenr"),
	fg("diffRemoved", "diff.minus"),
	unset("diffRemovedBg"),
	unset("diffRemovedLineNumberBg"),

	// Markdown
	fg("markdownBlockQuote", "markup.quote"),
	fg("markdownCode", "markup.raw.inline"),
	fg("markdownCodeBlock", "markup.raw.block"),
	unset("markdownEmph"),
	fg("markdownHeading", "markup.heading"),
	fg("markdownHorizontalRule", "ui.virtual"),
	fg("markdownImage", "markup.link"),
	fg("markdownImageText", "markup.link.text"),
	fg("markdownLink", "markup.link"),
	fg("markdownLinkText", "markup.link.text"),
	fg("markdownListEnumeration", "markup.list"),
	fg("markdownListItem", "markup.list"),
	unset("markdownStrong"),
	fg("markdownText", "ui.text"),

	// Syntax
	fg("syntaxComment", "comment"),
	fg("syntaxFunction", "function"),
	fg("syntaxKeyword", "keyword"),
	fg("syntaxNumber", "constant.numeric"),
	fg("syntaxOperator", "operator"),
	fg("syntaxPunctuation", "punctuation"),
	fg("syntaxString", "string"),
	fg("syntaxType", "type"),
	fg("syntaxVariable", "variable"),
)

func fg(field, scope string) mapping.Entry {
	return mapping.Entry{Target: field, Source: scope, Channel: mapping.ChannelForeground}
}

func bg(field, scope string) mapping.Entry {
	return mapping.Entry{Target: field, Source: scope, Channel: mapping.ChannelBackground}
}

func unset(field string) mapping.Entry {
	return mapping.Entry{Target: field}
}
