// Package shell is an interactive console for loading puzzles and filling
// them, so that one structure can be tried against several word lists
// without restarting.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/pmarks/gridfill/crossword"
	"github.com/pmarks/gridfill/render"
	"github.com/pmarks/gridfill/solver"
)

var errExit = errors.New("exit")
var errNoData = errors.New("no data in this line")

type shellcmd struct {
	cmd  string
	args []string
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	return &shellcmd{cmd: fields[0], args: fields[1:]}, nil
}

type ShellController struct {
	l *readline.Instance

	cw       *crossword.Crossword
	solution crossword.Assignment
	elapsed  time.Duration
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController() *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mgridfill>\033[0m ",
		HistoryFile:     "/tmp/gridfill_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l}
}

func usage(w io.Writer) {
	showMessage(`commands:
  load <structure> <words>  load a grid structure and a word list
  solve                     fill the loaded grid
  show                      print the last solution
  save <path>               write the last solution as a PNG
  stats                     show puzzle and solve statistics
  help                      show this message
  exit                      leave the shell`, w)
}

func (sc *ShellController) load(structurePath, wordsPath string) error {
	cw, err := crossword.LoadFiles(structurePath, wordsPath)
	if err != nil {
		return err
	}
	sc.cw = cw
	sc.solution = nil
	sc.elapsed = 0
	showMessage(fmt.Sprintf("loaded %dx%d grid, %d slots, %d words",
		cw.Height, cw.Width, len(cw.Variables), len(cw.Words)), sc.l.Stderr())
	return nil
}

func (sc *ShellController) solve() error {
	if sc.cw == nil {
		return errors.New("load a puzzle first")
	}
	start := time.Now()
	asg, err := solver.NewFiller(sc.cw).Solve()
	sc.elapsed = time.Since(start)
	if errors.Is(err, solver.ErrNoSolution) {
		showMessage("No solution.", sc.l.Stderr())
		return nil
	} else if err != nil {
		return err
	}
	sc.solution = asg
	log.Info().Dur("elapsed", sc.elapsed).Msg("solved")
	showMessage(render.Text(sc.cw, asg), sc.l.Stderr())
	return nil
}

func (sc *ShellController) show() error {
	if sc.solution == nil {
		return errors.New("no solution yet; run solve")
	}
	showMessage(render.Text(sc.cw, sc.solution), sc.l.Stderr())
	return nil
}

func (sc *ShellController) save(path string) error {
	if sc.solution == nil {
		return errors.New("no solution yet; run solve")
	}
	if err := render.SaveImage(sc.cw, sc.solution, path); err != nil {
		return err
	}
	showMessage("wrote "+path, sc.l.Stderr())
	return nil
}

func (sc *ShellController) stats() error {
	if sc.cw == nil {
		return errors.New("load a puzzle first")
	}
	arcs := 0
	for _, v := range sc.cw.Variables {
		arcs += len(sc.cw.Neighbors(v))
	}
	showMessage(fmt.Sprintf("grid: %dx%d  slots: %d  arcs: %d  words: %d",
		sc.cw.Height, sc.cw.Width, len(sc.cw.Variables), arcs, len(sc.cw.Words)),
		sc.l.Stderr())
	if sc.solution != nil {
		showMessage(fmt.Sprintf("last solve: %v", sc.elapsed), sc.l.Stderr())
	}
	return nil
}

func (sc *ShellController) executeLine(line string) error {
	c, err := extractFields(line)
	if errors.Is(err, errNoData) {
		return nil
	} else if err != nil {
		return err
	}
	switch c.cmd {
	case "load":
		if len(c.args) != 2 {
			return errors.New("usage: load <structure> <words>")
		}
		return sc.load(c.args[0], c.args[1])
	case "solve":
		return sc.solve()
	case "show":
		return sc.show()
	case "save":
		if len(c.args) != 1 {
			return errors.New("usage: save <path>")
		}
		return sc.save(c.args[0])
	case "stats":
		return sc.stats()
	case "help":
		usage(sc.l.Stderr())
		return nil
	case "exit", "quit":
		return errExit
	default:
		return fmt.Errorf("command %v not found", strings.TrimSpace(c.cmd))
	}
}

func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		switch err {
		case readline.ErrInterrupt:
			if len(line) == 0 {
				return
			}
			continue
		case io.EOF:
			return
		}
		if err := sc.executeLine(line); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	}
}
