package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/lexicon"
	"github.com/tilesmith/tilesmith/move"
	"github.com/tilesmith/tilesmith/solver"
)

const defaultGenPlays = 15

type Response struct {
	message string
}

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) Int(key string) (int, error) {
	v, ok := c[key]
	if !ok {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v)
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v, ok := c[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

func (c CmdOptions) Bool(key string) bool {
	return strings.ToLower(c[key]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

func moveTableHeader() string {
	return "     Move                   Tiles    Score"
}

func MoveTableRow(idx int, m *move.Move) string {
	return fmt.Sprintf("%3d: %-23s%-9s%5d", idx+1,
		m.ShortDescription(), m.Tiles().String(), m.Score())
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage("standard")), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) board(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	return msg(sc.solver.ToDisplayText()), nil
}

func (sc *ShellController) rack(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("please provide the rack letters, e.g. `rack AEINST?`")
	}
	if err := sc.solver.Change(strings.ToUpper(cmd.args[0])); err != nil {
		return nil, err
	}
	sc.curPlayList = nil
	return msg(sc.solver.ToDisplayText()), nil
}

func (sc *ShellController) draw(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	drawn := sc.solver.Draw()
	sc.curPlayList = nil
	return msg(fmt.Sprintf("Drew %s\n%s", drawn, sc.solver.ToDisplayText())), nil
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	numPlays := defaultGenPlays
	if len(cmd.args) > 0 {
		var err error
		numPlays, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, errors.New("wrong format for `gen` command")
		}
	}
	threads, err := cmd.options.IntDefault("threads", sc.solver.Generator().Threads())
	if err != nil {
		return nil, err
	}
	sc.solver.SetThreads(threads)

	plays, err := sc.solver.BestMoves(context.Background(), numPlays)
	if err != nil {
		return nil, err
	}
	sc.curPlayList = plays
	if len(plays) == 0 {
		return msg("No moves found for rack " + sc.solver.Rack().String()), nil
	}
	lines := []string{moveTableHeader()}
	for i, p := range plays {
		lines = append(lines, MoveTableRow(i, p))
	}
	return msg(strings.Join(lines, "\n")), nil
}

// wordArgs reads the `<ref> <word>` arguments shared by several commands.
func wordArgs(cmd *shellcmd) (string, string, error) {
	if len(cmd.args) != 2 {
		return "", "", fmt.Errorf("`%s` takes a reference and a word, e.g. `%s H8 FOOD`",
			cmd.cmd, cmd.cmd)
	}
	return cmd.args[0], cmd.args[1], nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	var m *move.Move
	if len(cmd.args) == 1 && strings.HasPrefix(cmd.args[0], "#") {
		// a play from the last `gen`
		playID, err := strconv.Atoi(cmd.args[0][1:])
		if err != nil {
			return nil, err
		}
		idx := playID - 1
		if idx < 0 || idx > len(sc.curPlayList)-1 {
			return nil, errors.New("play outside range")
		}
		m = sc.curPlayList[idx]
		if err := sc.solver.Commit(m); err != nil {
			return nil, err
		}
	} else {
		ref, word, err := wordArgs(cmd)
		if err != nil {
			return nil, err
		}
		m, err = sc.solver.PlayWord(ref, word)
		if err != nil {
			return nil, err
		}
	}
	sc.curPlayList = nil
	return msg(fmt.Sprintf("Played %s for %d\n%s",
		m.ShortDescription(), m.Score(), sc.solver.ToDisplayText())), nil
}

func (sc *ShellController) preview(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	ref, word, err := wordArgs(cmd)
	if err != nil {
		return nil, err
	}
	b, m, err := sc.solver.Preview(ref, word)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%s\n%s would score %d", b.ToDisplayText(),
		m.ShortDescription(), m.Score())), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	ref, word, err := wordArgs(cmd)
	if err != nil {
		return nil, err
	}
	m, err := sc.solver.Score(ref, word)
	if err != nil {
		return nil, err
	}
	invalid := sc.solver.InvalidWords(m)
	out := fmt.Sprintf("%s scores %d", m.ShortDescription(), m.Score())
	if len(invalid) > 0 {
		out += fmt.Sprintf(" (not in %s: %s)", sc.solver.Lexicon().Name(),
			strings.Join(invalid, ", "))
	}
	return msg(out), nil
}

func (sc *ShellController) bag(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	tiles := sc.solver.Bag().Tiles()
	counts := lo.CountValuesBy(tiles, alphabet.Tile.Rune)
	letters := lo.Keys(counts)
	slices.Sort(letters)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d tiles in the bag\n", len(tiles))
	for i, r := range letters {
		fmt.Fprintf(&sb, "%c: %-3d", r, counts[r])
		if (i+1)%9 == 0 {
			sb.WriteString("\n")
		}
	}
	return msg(strings.TrimRight(sb.String(), "\n ")), nil
}

func (sc *ShellController) lexicon(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		if err := sc.ensureSolver(); err != nil {
			return nil, err
		}
		d := sc.solver.Dictionary()
		return msg(fmt.Sprintf("%s: %d words (checksum %x)", d.Name(), d.WordCount(), d.Checksum())), nil
	}
	name := cmd.args[0]
	if sc.solver == nil {
		if err := sc.initSolver(name); err != nil {
			return nil, err
		}
	} else {
		d, err := lexicon.Get(sc.config, name)
		if err != nil {
			return nil, err
		}
		sc.solver.SetDictionary(d)
		sc.curPlayList = nil
	}
	log.Info().Str("lexicon", name).Msg("lexicon loaded")
	return msg("Lexicon set to " + sc.solver.Dictionary().Name()), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	if len(cmd.args) == 0 {
		return nil, errors.New("please provide one or more words to check")
	}
	lines := lo.Map(cmd.args, func(w string, _ int) string {
		if sc.solver.Check(w) {
			return strings.ToUpper(w) + " is valid"
		}
		return strings.ToUpper(w) + " is not valid"
	})
	return msg(strings.Join(lines, "\n")), nil
}

func (sc *ShellController) replay(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	if err := sc.solver.Replay(); err != nil {
		return nil, err
	}
	sc.curPlayList = nil
	return msg(sc.solver.ToDisplayText() + "\n" + sc.solver.Sheet().String()), nil
}

const sheetUsage = "usage: `sheet [save|load <file>]`, `sheet insert|remove <n>` or `sheet set <n> <ref> <word>`"

func (sc *ShellController) sheet(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	if len(cmd.args) == 0 {
		return msg(sc.solver.Sheet().String()), nil
	}
	switch cmd.args[0] {
	case "save", "load":
		if len(cmd.args) != 2 {
			return nil, errors.New(sheetUsage)
		}
		if cmd.args[0] == "save" {
			return sc.saveSheet(cmd.args[1])
		}
		return sc.loadSheet(cmd.args[1])
	case "insert", "remove", "set":
		return sc.editSheet(cmd.args)
	}
	return nil, fmt.Errorf("unknown sheet action %q", cmd.args[0])
}

func (sc *ShellController) saveSheet(filename string) (*Response, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if err := sc.solver.Sheet().Save(f); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return msg("Saved sheet to " + filename), nil
}

func (sc *ShellController) loadSheet(filename string) (*Response, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheet, err := solver.LoadSheet(f)
	if err != nil {
		return nil, err
	}
	sc.solver.SetLexicon(sc.solver.Dictionary())
	var notice string
	if sheet.Lexicon != "" && sheet.Lexicon != sc.solver.Dictionary().Name() {
		d, err := lexicon.Get(sc.config, sheet.Lexicon)
		if err != nil {
			log.Warn().Err(err).Str("sheet", sheet.Lexicon).
				Str("current", sc.solver.Dictionary().Name()).
				Msg("sheet lexicon not available, words will not be checked")
			notice = fmt.Sprintf("\nLexicon %s is not available; words are not checked.", sheet.Lexicon)
		} else {
			sc.solver.SetDictionary(d)
		}
	}
	if err := sc.solver.LoadSheet(sheet); err != nil {
		return nil, err
	}
	if notice != "" {
		sc.solver.SetLexicon(lexicon.AcceptAll{})
	}
	sc.curPlayList = nil
	return msg(sc.solver.ToDisplayText() + "\n" + sheet.String() + notice), nil
}

// editSheet changes one entry and replays the sheet. Entries are numbered
// from 1, as the sheet shows them.
func (sc *ShellController) editSheet(args []string) (*Response, error) {
	if len(args) < 2 {
		return nil, errors.New(sheetUsage)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, errors.New(sheetUsage)
	}
	sheet := sc.solver.Sheet()
	switch args[0] {
	case "insert":
		err = sheet.Insert(n - 1)
	case "remove":
		err = sheet.Remove(n - 1)
	case "set":
		if len(args) != 4 {
			return nil, errors.New(sheetUsage)
		}
		if n < 1 || n > sheet.Len() {
			return nil, fmt.Errorf("no entry %d in a sheet of %d", n, sheet.Len())
		}
		e := sheet.Entries[n-1]
		e.Key, e.Word = strings.ToUpper(args[2]), args[3]
	}
	if err != nil {
		return nil, err
	}
	sc.curPlayList = nil
	if err := sc.solver.Replay(); err != nil {
		return nil, err
	}
	return msg(sc.solver.ToDisplayText() + "\n" + sheet.String()), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSolver(); err != nil {
		return nil, err
	}
	sc.solver.Reset()
	sc.curPlayList = nil
	return msg(sc.solver.ToDisplayText()), nil
}
