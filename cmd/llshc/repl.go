package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gogpu/llshader"
	"github.com/gogpu/llshader/llsl"
	"github.com/peterh/liner"
)

const (
	banner     = "llshc interactive. Type :help for commands."
	promptMain = "llsl> "
	promptCont = "  ... "
)

// session accumulates accepted statements. Every entry is checked together
// with everything accepted before it, so declarations carry over.
type session struct {
	source  strings.Builder
	recover bool
}

// eval checks entry in the context of the session and keeps it on success.
func (s *session) eval(entry string) (string, error) {
	candidate := s.source.String() + entry + "\n"

	opts := llshader.DefaultOptions()
	opts.BufferName = "<repl>"
	opts.Recover = s.recover
	prog, err := llshader.FrontendWithOptions(candidate, opts)
	if err != nil {
		return "", err
	}

	s.source.WriteString(entry)
	s.source.WriteByte('\n')
	return fmt.Sprintf("ok (%d bindings)", prog.Info.Bindings), nil
}

func (s *session) reset() {
	s.source.Reset()
}

func runREPL(cfg config, stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.history); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.history); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	s := &session{recover: cfg.recover}
	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if quit := replCommand(s, trimmed, stdout); quit {
				return 0
			}
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		msg, err := s.eval(code)
		if err != nil {
			printError(stderr, err, cfg.color)
			continue
		}
		if cfg.color {
			msg = green(msg)
		}
		fmt.Fprintln(stdout, msg)
	}
}

func replCommand(s *session, cmd string, w io.Writer) (quit bool) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":reset":
		s.reset()
		fmt.Fprintln(w, "session cleared")
	case ":source":
		fmt.Fprint(w, s.source.String())
	case ":help":
		fmt.Fprintln(w, ":source  print accepted statements")
		fmt.Fprintln(w, ":reset   forget all declarations")
		fmt.Fprintln(w, ":quit    leave")
	default:
		fmt.Fprintln(w, "unknown command. Type :help for commands.")
	}
	return false
}

// readByParseProbe reads lines until they form something the parser does
// not reject for running out of input.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if needsMoreInput(src) {
			continue
		}
		return src, true
	}
}

func needsMoreInput(src string) bool {
	_, err := llshader.Parse(src)
	return err != nil && llsl.IsIncomplete(err)
}
