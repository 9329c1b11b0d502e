// Package shell implements the interactive practice shell. It is a teaching
// sandbox, not a complete POSIX shell: each line is parsed with mvdan.cc/sh
// and supports word and parameter expansion, && and ||, pipes, output
// redirection onto the sandbox filesystem, environment assignments and the
// registered drills as commands.
package shell

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/abiosoft/readline"
	"mvdan.cc/sh/v3/syntax"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

const (
	EnvHome            = "HOME"
	EnvPWD             = "PWD"
	EnvPath            = "PATH"
	EnvPrompt          = "PS1"
	EnvHostname        = "HOSTNAME"
	EnvUser            = "USER"
	DefaultColorPrompt = `\033[01;32m\u@\h\033[00m:\033[01;34m\w\033[00m\$ `
	DefaultPrompt      = `\u@\h:\w\$ `
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-8][0-8]?[0-8]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n",
		`\r`, "\r",
		`\t`, "\t",
		`\\`, `\`,
		`\a`, "\a",
		`\e`, "\033",
	)
)

func unescapePrompt(s string) string {
	s = unescapeReplace.Replace(s)
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 8, 16)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return s
}

// Shell is one interactive practice session.
type Shell struct {
	Proc     sandbox.Proc
	Readline *readline.Instance

	lastRet int
	history []string

	// Set to true to quit the shell.
	Quit bool
}

// Run starts a shell over the given process and blocks until it exits.
func Run(p sandbox.Proc) int {
	s, err := New(p)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "sh: %s\n", err)
		return 1
	}
	return s.RunInteractive()
}

// New builds a Shell with readline attached to the process streams.
func New(p sandbox.Proc) (*Shell, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(p.Stdin()),
		Stdout: p.Stdout(),
		Stderr: p.Stderr(),
		FuncGetWidth: func() int {
			return p.GetPTY().Width
		},
		FuncIsTerminal: func() bool {
			return p.GetPTY().IsPTY
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	shell := &Shell{
		Proc:     p,
		Readline: rl,
	}
	shell.initEnv()

	return shell, nil
}

// initEnv sets up the environment like login + sourcing ~/.bashrc would.
func (s *Shell) initEnv() {
	p := s.Proc

	homedir := "/home/" + p.User()
	if _, err := p.Stat(homedir); err != nil {
		homedir = "/"
	}
	p.Setenv(EnvHome, homedir)
	_ = p.Chdir(homedir)

	p.Setenv(EnvHostname, p.Hostname())
	if _, ok := p.LookupEnv(EnvPrompt); !ok {
		if p.GetPTY().IsPTY {
			p.Setenv(EnvPrompt, DefaultColorPrompt)
		} else {
			p.Setenv(EnvPrompt, DefaultPrompt)
		}
	}
	p.Setenv(EnvPWD, p.Getwd())
	p.Setenv(EnvUser, p.User())
}

func (s *Shell) prompt() string {
	p := s.Proc

	prompt := p.Getenv(EnvPrompt)
	if prompt == "" {
		prompt = DefaultPrompt
	}
	prompt = strings.ReplaceAll(prompt, `\u`, p.Getenv(EnvUser))
	prompt = strings.ReplaceAll(prompt, `\h`, p.Getenv(EnvHostname))

	pwd := p.Getwd()
	home := p.Getenv(EnvHome)
	if home != "/" && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}
	prompt = strings.ReplaceAll(prompt, `\w`, pwd)
	prompt = strings.ReplaceAll(prompt, `\$`, "$")

	return unescapePrompt(prompt)
}

func (s *Shell) syntaxError(node syntax.Node) error {
	return fmt.Errorf("syntax error near column %d", node.Pos().Col())
}

func (s *Shell) executeFile(file *syntax.File) error {
	for _, stmt := range file.Stmts {
		ec := execContext{
			stdin:  s.Proc.Stdin(),
			stdout: s.Proc.Stdout(),
			stderr: s.Proc.Stderr(),
			env:    s.cmdEnv().Environ(),
		}
		if err := s.executeStatement(ec, stmt); err != nil {
			return err
		}
	}
	return nil
}

type execContext struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// env contains the shell environment in the execution context,
	// including pseudo-variables like $? that aren't suitable to write
	// back to the process env.
	env []string

	// assignments contains command-scoped variable assignments.
	assignments []string

	// args contains the evaluated argv for the command.
	args []string
}

func (s *Shell) executeStatement(ec execContext, stmt *syntax.Stmt) error {
	for _, redirect := range stmt.Redirs {
		// Only output redirection (> and >&) is supported.
		if redirect.Op != syntax.RdrOut && redirect.Op != syntax.DplOut {
			return s.syntaxError(redirect)
		}

		from := ""
		if redirect.N != nil {
			from = redirect.N.Value
		}

		var fromWriter *io.Writer
		switch from {
		case "", "1": // stdout
			fromWriter = &ec.stdout
		case "2": // stderr
			fromWriter = &ec.stderr
		default:
			return s.syntaxError(redirect)
		}

		if redirect.Word == nil {
			return s.syntaxError(redirect)
		}
		to, err := s.evalWord(ec, redirect.Word)
		if err != nil {
			return err
		}
		switch {
		case to == "":
			return s.syntaxError(redirect)
		case redirect.Op == syntax.DplOut && to == "1":
			*fromWriter = ec.stdout
		case redirect.Op == syntax.DplOut && to == "2":
			*fromWriter = ec.stderr
		default:
			fd, err := s.Proc.Create(to)
			if err != nil {
				return err
			}
			defer fd.Close()
			*fromWriter = fd
		}
	}

	switch cmd := stmt.Cmd.(type) {
	case *syntax.CallExpr:
		var err error
		ec.assignments, err = s.evalAssign(ec, cmd.Assigns)
		if err != nil {
			return err
		}

		for _, word := range cmd.Args {
			argStr, err := s.evalWord(ec, word)
			if err != nil {
				return err
			}
			ec.args = append(ec.args, argStr)
		}
		s.executeCommand(ec)

	case *syntax.BinaryCmd:
		switch cmd.Op {
		case syntax.AndStmt:
			if err := s.executeStatement(ec, cmd.X); err != nil {
				return err
			}
			if s.lastRet == 0 {
				return s.executeStatement(ec, cmd.Y)
			}
		case syntax.OrStmt:
			if err := s.executeStatement(ec, cmd.X); err != nil {
				return err
			}
			if s.lastRet != 0 {
				return s.executeStatement(ec, cmd.Y)
			}
		case syntax.Pipe:
			buf := &bytes.Buffer{}
			xEc := ec
			xEc.stdout = buf
			if err := s.executeStatement(xEc, cmd.X); err != nil {
				return err
			}

			yEc := ec
			yEc.stdin = buf
			if err := s.executeStatement(yEc, cmd.Y); err != nil {
				return err
			}
		default:
			return s.syntaxError(stmt)
		}

	default:
		// Compound statements (loops, functions) belong in real script
		// files; the runner handles those.
		return s.syntaxError(stmt)
	}

	return nil
}

func (s *Shell) evalAssign(ec execContext, assignments []*syntax.Assign) ([]string, error) {
	out := sandbox.NewMapEnv()
	tmpEnv := sandbox.NewMapEnvFromList(ec.env)

	for _, assmt := range assignments {
		if assmt.Name == nil {
			continue
		}
		key := assmt.Name.Value
		var value string
		if word := assmt.Value; word != nil {
			for _, part := range word.Parts {
				switch part := part.(type) {
				case *syntax.Lit:
					value += part.Value
				case *syntax.ParamExp:
					if part.Param == nil {
						return nil, s.syntaxError(word)
					}
					value += tmpEnv.Getenv(part.Param.Value)
				default:
					return nil, s.syntaxError(word)
				}
			}
		}

		tmpEnv.Setenv(key, value)
		out.Setenv(key, value)
	}

	return out.Environ(), nil
}

func (s *Shell) evalWord(ec execContext, word *syntax.Word) (string, error) {
	if word == nil {
		return "", nil
	}
	var out []string

	for _, part := range word.Parts {
		subEval, err := s.evalWordPart(ec, part)
		if err != nil {
			return "", err
		}
		out = append(out, subEval)
	}
	return strings.Join(out, ""), nil
}

func (s *Shell) evalWordPart(ec execContext, part syntax.WordPart) (string, error) {
	switch part := part.(type) {
	case *syntax.Lit:
		return part.Value, nil

	case *syntax.SglQuoted:
		return part.Value, nil

	case *syntax.DblQuoted:
		var out []string
		for _, subPart := range part.Parts {
			subEval, err := s.evalWordPart(ec, subPart)
			if err != nil {
				return "", err
			}
			out = append(out, subEval)
		}
		return strings.Join(out, ""), nil

	case *syntax.ParamExp:
		if part.Param == nil {
			return "", s.syntaxError(part)
		}
		tmpEnv := sandbox.NewMapEnvFromList(ec.env)
		return tmpEnv.Getenv(part.Param.Value), nil

	default:
		return "", s.syntaxError(part)
	}
}

// RunInteractive reads lines until EOF or the exit builtin.
func (s *Shell) RunInteractive() int {
	for !s.Quit {
		s.Readline.SetPrompt(s.prompt())
		line, err := s.Readline.Readline()

		s.history = append(s.history, line)

		switch {
		case err == io.EOF:
			return s.lastRet // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		case len(strings.TrimSpace(line)) == 0:
			continue

		default:
			s.RunCommand(line)
		}
	}
	return s.lastRet
}

// RunCommand parses and executes a single command line.
func (s *Shell) RunCommand(line string) int {
	prog, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		fmt.Fprintf(s.Proc.Stderr(), "sh: syntax error: %v\n", err)
		s.lastRet = 2
		return s.lastRet
	}
	if err := s.executeFile(prog); err != nil {
		fmt.Fprintf(s.Proc.Stderr(), "sh: %v\n", err)
		s.lastRet = 2
	}
	return s.lastRet
}

// LastStatus returns the exit status of the most recent command.
func (s *Shell) LastStatus() int { return s.lastRet }

// cmdEnv returns a copy of the process environment with the shell's
// pseudo-variables added for expansion.
func (s *Shell) cmdEnv() sandbox.Env {
	mapEnv := sandbox.NewMapEnvFromList(s.Proc.Environ())

	mapEnv.Setenv("$", fmt.Sprintf("%d", s.Proc.Getpid()))
	mapEnv.Setenv("?", fmt.Sprintf("%d", uint8(s.lastRet)))
	mapEnv.Setenv("WIDTH", fmt.Sprintf("%d", s.Proc.GetPTY().Width))
	mapEnv.Setenv("HEIGHT", fmt.Sprintf("%d", s.Proc.GetPTY().Height))

	return mapEnv
}

func (s *Shell) executeCommand(ec execContext) {
	if len(ec.args) == 0 {
		// A bare assignment persists into the shell environment.
		sandbox.CopyEnv(s.Proc, ec.assignments)
		return
	}

	if builtin, ok := AllBuiltins[ec.args[0]]; ok {
		s.lastRet = builtin.Main(s, ec.args)
		return
	}

	proc, err := s.Proc.StartProcess(ec.args[0], ec.args, &sandbox.ProcAttr{
		Env:   append(s.Proc.Environ(), ec.assignments...),
		Files: sandbox.NewStreamIO(ec.stdin, ec.stdout, ec.stderr),
	})
	if err != nil {
		fmt.Fprintf(ec.stderr, "sh: %s\n", err)
		s.lastRet = 127
		return
	}

	s.lastRet = proc.Run()
}
