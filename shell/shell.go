package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/config"
	"github.com/tilesmith/tilesmith/lexicon"
	"github.com/tilesmith/tilesmith/move"
	"github.com/tilesmith/tilesmith/movegen"
	"github.com/tilesmith/tilesmith/solver"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoSolver          = errors.New("please load a lexicon first with the `lexicon` command")
)

type ShellController struct {
	l        *readline.Instance
	config   *config.Config
	execPath string

	gitVersion string

	solver      *solver.Solver
	curPlayList []*move.Move
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// NewShellController creates the controller and its readline instance, and
// tries to load the default lexicon.
func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	prompt := "tilesmith>"
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m" + prompt + "\033[0m ",
		HistoryFile:     "/tmp/tilesmith_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newController(cfg, execPath, gitVersion)
	sc.l = l
	l.Config.AutoComplete = NewShellCompleter(sc)

	if err := sc.initSolver(cfg.GetString(config.ConfigDefaultLexicon)); err != nil {
		log.Warn().Err(err).Msg("could not load default lexicon")
	}
	return sc
}

func newController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	return &ShellController{
		config:     cfg,
		execPath:   execPath,
		gitVersion: gitVersion,
	}
}

// initSolver starts a new session with the named lexicon and the configured
// letter distribution.
func (sc *ShellController) initSolver(lexName string) error {
	ld, err := alphabet.Get(sc.config, sc.config.GetString(config.ConfigDefaultLetterDistribution))
	if err != nil {
		return err
	}
	d, err := lexicon.Get(sc.config, lexName)
	if err != nil {
		return err
	}
	sc.solver = solver.NewSolver(ld, d, movegen.WithThreads(sc.config.GetInt(config.ConfigThreads)))
	sc.curPlayList = nil
	return nil
}

func (sc *ShellController) ensureSolver() error {
	if sc.solver == nil {
		return errNoSolver
	}
	return nil
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	// handle options
	lastWasOption := false
	lastOption := ""
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			// option
			lastWasOption = true
			lastOption = fields[idx][1:]
			continue
		}
		if lastWasOption {
			lastWasOption = false
			options[lastOption] = fields[idx]
		} else {
			args = append(args, fields[idx])
		}
	}
	if lastWasOption {
		// all options are non-boolean, cannot have a naked option.
		return nil, errWrongOptionSyntax
	}
	return &shellcmd{
		cmd:     cmd,
		args:    args,
		options: options,
	}, nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit":
		sig <- syscall.SIGINT
		return nil, errors.New("sending quit signal")
	case "help":
		return sc.help(cmd)
	case "board":
		return sc.board(cmd)
	case "rack":
		return sc.rack(cmd)
	case "draw":
		return sc.draw(cmd)
	case "gen":
		return sc.generate(cmd)
	case "play":
		return sc.play(cmd)
	case "preview":
		return sc.preview(cmd)
	case "score":
		return sc.score(cmd)
	case "bag":
		return sc.bag(cmd)
	case "lexicon":
		return sc.lexicon(cmd)
	case "check":
		return sc.check(cmd)
	case "replay":
		return sc.replay(cmd)
	case "sheet":
		return sc.sheet(cmd)
	case "new":
		return sc.newGame(cmd)
	default:
		log.Debug().Msgf("you said: %v", line)
		return nil, fmt.Errorf("command %q not found; try `help`", cmd.cmd)
	}
}

// Execute runs a single command, as given on the command line.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line, sig)
	if err != nil {
		sc.showError(err)
		return
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	if sc.solver != nil {
		sc.showMessage(sc.solver.ToDisplayText())
	}
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.standardModeSwitch(line, sig)
		if err != nil {
			if strings.HasPrefix(line, "exit") {
				break
			}
			sc.showError(err)
			continue
		}
		if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup is called once the loop is over.
func (sc *ShellController) Cleanup() {
	log.Debug().Msg("cleaning up")
	if sc.l != nil {
		sc.l.Close()
	}
}
