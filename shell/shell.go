// Package shell implements the command interpreter over a virtual
// filesystem tree. One Shell owns one tree and one working-directory
// reference; every line of input goes through [Shell.Run].
package shell

import (
	"strings"

	"github.com/google/shlex"
	"github.com/google/uuid"

	"vfsh/internal/util"
	"vfsh/vfs"
)

// Result is the outcome of executing one input line.
type Result struct {
	Output string // rendered output, without the echoed command
	Ok     bool   // false halts a running script
	Exit   bool   // the session should end
}

// Shell interprets command lines against a single tree. It is owned by
// exactly one session and must be driven sequentially.
type Shell struct {
	tree     *vfs.Tree
	cwd      *vfs.Node
	username string
	hostname string
	prompt   string
	logger   util.Logger
}

// DefaultPromptTemplate renders the classic bracketed prompt. {user} and
// {host} expand to the session identity.
const DefaultPromptTemplate = "[{user}@{host}]$ "

// New creates a shell session over tree, starting at the root.
func New(tree *vfs.Tree, username, hostname string) *Shell {
	session := uuid.NewString()
	return &Shell{
		tree:     tree,
		cwd:      tree.Root(),
		username: username,
		hostname: hostname,
		prompt:   DefaultPromptTemplate,
		logger:   util.GetLogger("shell").With().Str("session", session).Logger(),
	}
}

// SetPromptTemplate replaces the prompt template. An empty template keeps
// the current one.
func (s *Shell) SetPromptTemplate(template string) {
	if template != "" {
		s.prompt = template
	}
}

// Prompt renders the input prompt for this session.
func (s *Shell) Prompt() string {
	p := strings.ReplaceAll(s.prompt, "{user}", s.username)
	return strings.ReplaceAll(p, "{host}", s.hostname)
}

// Cwd returns the current working directory node.
func (s *Shell) Cwd() *vfs.Node {
	return s.cwd
}

// Tree returns the tree this session operates on.
func (s *Shell) Tree() *vfs.Tree {
	return s.tree
}

// Run executes one input line. A blank line succeeds with no output; an
// unknown command fails, which matters for script execution.
func (s *Shell) Run(line string) Result {
	argv, err := shlex.Split(line)
	if err != nil {
		return Result{Output: "parse error: " + err.Error()}
	}
	if len(argv) == 0 {
		return Result{Ok: true}
	}

	cmd, args := argv[0], argv[1:]
	s.logger.Debug().Str("cmd", cmd).Strs("args", args).Msg("Executing command")

	var out strings.Builder
	res := s.dispatch(&out, cmd, args)
	res.Output = strings.TrimRight(out.String(), "\n")
	if !res.Ok {
		s.logger.Debug().Str("cmd", cmd).Msg("Command failed")
	}
	return res
}

func (s *Shell) dispatch(out *strings.Builder, cmd string, args []string) Result {
	switch cmd {
	case "exit":
		writeln(out, "exit")
		return Result{Ok: true, Exit: true}
	case "help":
		return Result{Ok: s.cmdHelp(out)}
	case "pwd":
		return Result{Ok: s.cmdPwd(out)}
	case "echo":
		return Result{Ok: s.cmdEcho(out, args)}
	case "uname":
		return Result{Ok: s.cmdUname(out, args)}
	case "ls":
		return Result{Ok: s.cmdLs(out, args)}
	case "cd":
		return Result{Ok: s.cmdCd(out, args)}
	case "touch":
		return Result{Ok: s.cmdTouch(out, args)}
	case "cp":
		return Result{Ok: s.cmdCp(out, args)}
	case "find":
		return Result{Ok: s.cmdFind(out, args)}
	}
	writeln(out, cmd+": command not found")
	return Result{}
}

func writeln(out *strings.Builder, text string) {
	out.WriteString(text)
	out.WriteByte('\n')
}
