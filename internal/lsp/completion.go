package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

type directiveCompletion struct {
	label  string
	detail string
}

// first words of a directive
var directiveStarts = []directiveCompletion{
	{"event", "event discriminator NAME | event declaration"},
	{"struct", "struct discriminator NAME | struct declaration"},
	{"instruction", "instruction discriminator|declaration|accounts|data NAME"},
	{"reference", "reference ACCOUNTS_STRUCT"},
	{"string", "trailing string field"},
	{"strings", "strings FIELD..."},
	{"writable", "writable account"},
	{"signer", "signer account"},
	{"readonly", "readonly account"},
}

var directiveRoles = map[string][]directiveCompletion{
	"event": {
		{"discriminator", "constant holding the event discriminator"},
		{"declaration", "struct declaring the event"},
	},
	"struct": {
		{"discriminator", "constant holding the account discriminator"},
		{"declaration", "struct declaring the account"},
	},
	"instruction": {
		{"discriminator", "constant holding the instruction discriminator"},
		{"declaration", "function implementing the instruction"},
		{"accounts", "struct listing the instruction accounts"},
		{"data", "struct holding the instruction arguments"},
	},
}

var accountModifiers = []directiveCompletion{
	{"writable", "writable account"},
	{"signer", "signer account"},
	{"readonly", "readonly account"},
}

// completeDirective returns the keywords that may follow the text of a line
// up to the cursor. Lines without an "#idl" comment get nothing.
func completeDirective(line string) []protocol.CompletionItem {
	i := strings.Index(line, "#idl")
	if i < 0 {
		return []protocol.CompletionItem{}
	}
	rest := line[i+len("#idl"):]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return []protocol.CompletionItem{}
	}

	words := strings.Fields(rest)
	// the word under the cursor is still being typed
	if !strings.HasSuffix(rest, " ") && !strings.HasSuffix(rest, "\t") && len(words) > 0 {
		words = words[:len(words)-1]
	}

	var candidates []directiveCompletion
	switch {
	case len(words) == 0:
		candidates = directiveStarts
	case len(words) == 1 && directiveRoles[words[0]] != nil:
		candidates = directiveRoles[words[0]]
	case isModifier(words[len(words)-1]):
		for _, m := range accountModifiers {
			if !contains(words, m.label) {
				candidates = append(candidates, m)
			}
		}
	}

	items := make([]protocol.CompletionItem, 0, len(candidates))
	kind := protocol.CompletionItemKindKeyword
	for _, c := range candidates {
		detail := c.detail
		items = append(items, protocol.CompletionItem{
			Label:  c.label,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return items
}

func isModifier(word string) bool {
	for _, m := range accountModifiers {
		if m.label == word {
			return true
		}
	}
	return false
}

func contains(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
