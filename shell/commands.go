package shell

import (
	"fmt"
	"path"
	"runtime"
	"strconv"
	"strings"

	"vfsh/vfs"
)

// Emulated system identity reported by uname.
const (
	sysName    = "vfsh"
	sysRelease = "0.1"
)

func (s *Shell) cmdHelp(out *strings.Builder) bool {
	writeln(out, "Available commands: help, ls [path], cd [path], pwd, echo ..., "+
		"find [path] [-name PATTERN] [-type f|d] [-maxdepth N], "+
		"uname [-asnrmpo], touch FILE..., cp [-r] SRC DST, exit")
	return true
}

func (s *Shell) cmdPwd(out *strings.Builder) bool {
	writeln(out, s.cwd.AbsPath())
	return true
}

func (s *Shell) cmdEcho(out *strings.Builder, args []string) bool {
	writeln(out, strings.Join(args, " "))
	return true
}

func (s *Shell) cmdUname(out *strings.Builder, args []string) bool {
	var flags []string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			flags = append(flags, a)
		}
	}
	if len(flags) == 0 {
		writeln(out, sysName)
		return true
	}
	for _, fl := range flags {
		if fl == "-a" {
			writeln(out, fmt.Sprintf("%s %s %s %s %s", sysName, s.hostname, sysRelease, runtime.GOARCH, runtime.GOOS))
			return true
		}
	}

	var fields []string
	for _, fl := range flags {
		switch fl {
		case "-s":
			fields = append(fields, sysName)
		case "-n":
			fields = append(fields, s.hostname)
		case "-r":
			fields = append(fields, sysRelease)
		case "-m", "-p":
			fields = append(fields, runtime.GOARCH)
		case "-o":
			fields = append(fields, runtime.GOOS)
		default:
			writeln(out, "uname: unknown option "+fl)
			return false
		}
	}
	writeln(out, strings.Join(fields, " "))
	return true
}

func (s *Shell) cmdLs(out *strings.Builder, args []string) bool {
	p := "."
	if len(args) > 0 {
		p = args[0]
	}
	target, err := vfs.Resolve(s.cwd, s.tree.Root(), p)
	if err != nil {
		writeln(out, "ls: "+err.Error())
		return false
	}

	if !target.IsDir() {
		writeln(out, target.Name())
		return true
	}
	names, err := target.ListNames()
	if err != nil {
		writeln(out, "ls: "+err.Error())
		return false
	}
	writeln(out, strings.Join(names, "  "))
	return true
}

func (s *Shell) cmdCd(out *strings.Builder, args []string) bool {
	p := "/"
	if len(args) > 0 {
		p = args[0]
	}
	target, err := vfs.Resolve(s.cwd, s.tree.Root(), p)
	if err != nil {
		writeln(out, "cd: "+err.Error())
		return false
	}
	if !target.IsDir() {
		writeln(out, "cd: not a directory: "+p)
		return false
	}
	s.cwd = target
	return true
}

func (s *Shell) cmdTouch(out *strings.Builder, args []string) bool {
	if len(args) == 0 {
		writeln(out, "usage: touch FILE...")
		return false
	}
	okAll := true
	for _, p := range args {
		node, err := vfs.Resolve(s.cwd, s.tree.Root(), p)
		if err == nil {
			if node.IsDir() {
				writeln(out, "touch: cannot touch a directory: "+p)
				okAll = false
			}
			// existing file is left as is
			continue
		}

		parent, name, err := vfs.ResolveParent(s.cwd, s.tree.Root(), p)
		if err != nil {
			writeln(out, "touch: "+err.Error())
			okAll = false
			continue
		}
		if _, err := parent.AddFile(name, nil); err != nil {
			writeln(out, "touch: "+err.Error())
			okAll = false
		}
	}
	return okAll
}

func (s *Shell) cmdCp(out *strings.Builder, args []string) bool {
	recursive := false
	var rest []string
	for _, a := range args {
		if a == "-r" {
			recursive = true
		} else {
			rest = append(rest, a)
		}
	}
	if len(rest) != 2 {
		writeln(out, "usage: cp [-r] SRC DST")
		return false
	}
	srcPath, dstPath := rest[0], rest[1]

	src, err := vfs.Resolve(s.cwd, s.tree.Root(), srcPath)
	if err != nil {
		writeln(out, "cp: source not found: "+err.Error())
		return false
	}
	if src.IsDir() && !recursive {
		writeln(out, "cp: use -r to copy directories")
		return false
	}

	if dst, err := vfs.Resolve(s.cwd, s.tree.Root(), dstPath); err == nil {
		// Destination exists: a directory receives the copy under the
		// source's own name, a file gets overwritten (files only)
		dstParent, name := dst, src.Name()
		if !dst.IsDir() {
			if src.IsDir() {
				writeln(out, "cp: cannot copy a directory over a file")
				return false
			}
			dstParent, name = dst.Parent(), dst.Name()
		}
		if err := vfs.Copy(src, dstParent, name); err != nil {
			writeln(out, "cp: "+err.Error())
			return false
		}
		return true
	}

	// Destination absent: create it at the given path
	parent, name, err := vfs.ResolveParent(s.cwd, s.tree.Root(), dstPath)
	if err != nil {
		writeln(out, "cp: "+err.Error())
		return false
	}
	if err := vfs.Copy(src, parent, name); err != nil {
		writeln(out, "cp: "+err.Error())
		return false
	}
	return true
}

func (s *Shell) cmdFind(out *strings.Builder, args []string) bool {
	startPath := "."
	var namePat string
	hasNamePat := false
	var typeFilter string
	maxDepth := vfs.WalkAll

	i := 0
	for i < len(args) {
		a := args[i]
		if !strings.HasPrefix(a, "-") && startPath == "." {
			startPath = a
			i++
			continue
		}
		switch {
		case a == "-name" && i+1 < len(args):
			namePat = args[i+1]
			hasNamePat = true
			i += 2
		case a == "-type" && i+1 < len(args):
			val := args[i+1]
			if val != "f" && val != "d" {
				writeln(out, "find: -type expects f or d")
				return false
			}
			typeFilter = val
			i += 2
		case a == "-maxdepth" && i+1 < len(args):
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 0 {
				writeln(out, "find: -maxdepth expects a non-negative integer")
				return false
			}
			maxDepth = n
			i += 2
		default:
			writeln(out, "find: unknown option or argument '"+a+"'")
			return false
		}
	}

	if hasNamePat {
		if _, err := path.Match(namePat, ""); err != nil {
			writeln(out, "find: bad pattern '"+namePat+"'")
			return false
		}
	}

	start, err := vfs.Resolve(s.cwd, s.tree.Root(), startPath)
	if err != nil {
		writeln(out, "find: "+err.Error())
		return false
	}

	match := func(n *vfs.Node) bool {
		if typeFilter == "f" && n.IsDir() {
			return false
		}
		if typeFilter == "d" && !n.IsDir() {
			return false
		}
		if hasNamePat {
			// pattern validity was checked up front
			if ok, _ := path.Match(namePat, n.Name()); !ok {
				return false
			}
		}
		return true
	}

	for node := range vfs.Walk(start, maxDepth) {
		if match(node) {
			writeln(out, node.AbsPath())
		}
	}
	return true
}
