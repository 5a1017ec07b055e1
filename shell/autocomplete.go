package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/tilesmith/tilesmith/config"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-threads")
	Args    []string // Possible argument values (for non-option arguments)
}

var commandMetadata = map[string]CommandMetadata{
	"gen": {
		Options: []string{"-threads"},
	},
	"sheet": {
		Args: []string{"save", "load", "insert", "remove", "set"},
	},
	"help": {
		Args: []string{"gen", "play", "rack", "sheet"},
	},
}

// Common command names for command completion
var commandNames = []string{
	"help", "board", "rack", "draw", "gen", "play", "preview", "score",
	"bag", "lexicon", "check", "replay", "sheet", "new", "exit",
}

// lexiconNames lists the word lists found in the lexicon directory.
func (c *ShellCompleter) lexiconNames() []string {
	dir := c.sc.config.GetString(config.ConfigLexiconPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	return lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			return "", false
		}
		return strings.TrimSuffix(e.Name(), ".txt"), true
	})
}

// Do implements the readline.AutoComplete interface
// It provides context-aware autocomplete based on what's been typed
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	// Parse the line using shellquote to handle quoted strings properly
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		switch {
		case cmdName == "lexicon":
			completions = c.lexiconNames()
		default:
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
