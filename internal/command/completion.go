// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsops/internal/meta"
)

const bashCompletionHeader = `# bash completion for awsops
_awsops()
{
    local cur prev svc
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%s --help --version" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml raw" -- "$cur") )
        return 0
    fi

    svc=${COMP_WORDS[1]}
`

const zshCompletionHeader = `#compdef awsops

_awsops() {
  if (( CURRENT == 2 )); then
    compadd -- %s
    return
  fi

  if [[ $words[CURRENT-1] == "--output" || $words[CURRENT-1] == "-o" ]]; then
    compadd -- text json yaml raw
    return
  fi

`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		writeBashCompletion(m.Stdout, cmd.Root())
	case "zsh":
		writeZshCompletion(m.Stdout, cmd.Root())
	default:
		fmt.Fprintln(m.Stderr, "usage: awsops completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "awsops completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}

// commandWords returns the names and aliases of cmds.
func commandWords(cmds []*cli.Command) string {
	var words []string
	for _, c := range cmds {
		words = append(words, c.Name)
		words = append(words, c.Aliases...)
	}
	return strings.Join(words, " ")
}

// flagWords returns every flag spelling of cmd, e.g. "--output -o".
func flagWords(cmd *cli.Command) string {
	var words []string
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			if len(n) == 1 {
				words = append(words, "-"+n)
			} else {
				words = append(words, "--"+n)
			}
		}
	}
	return strings.Join(words, " ")
}

// casePattern is the shell case pattern matching a command by any name.
func casePattern(cmd *cli.Command) string {
	return strings.Join(append([]string{cmd.Name}, cmd.Aliases...), "|")
}

func writeBashCompletion(w io.Writer, root *cli.Command) {
	fmt.Fprintf(w, bashCompletionHeader, commandWords(root.Commands))

	fmt.Fprintln(w, `    if [[ ${COMP_CWORD} -eq 2 ]]; then`)
	fmt.Fprintln(w, `        case "$svc" in`)
	for _, svc := range root.Commands {
		words := commandWords(svc.Commands)
		if svc.Name == "completion" {
			words = "bash zsh"
		}
		fmt.Fprintf(w, "        %s) COMPREPLY=( $(compgen -W %q -- \"$cur\") ) ;;\n", casePattern(svc), words)
	}
	fmt.Fprintln(w, `        esac`)
	fmt.Fprintln(w, `        return 0`)
	fmt.Fprintln(w, `    fi`)
	fmt.Fprintln(w)

	fmt.Fprintln(w, `    local opts=""`)
	fmt.Fprintln(w, `    case "$svc" in`)
	for _, svc := range root.Commands {
		if len(svc.Commands) == 0 {
			continue
		}
		fmt.Fprintf(w, "    %s)\n", casePattern(svc))
		fmt.Fprintln(w, `        case "${COMP_WORDS[2]}" in`)
		for _, op := range svc.Commands {
			fmt.Fprintf(w, "        %s) opts=%q ;;\n", op.Name, flagWords(op))
		}
		fmt.Fprintln(w, `        esac`)
		fmt.Fprintln(w, `        ;;`)
	}
	fmt.Fprintln(w, `    esac`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, `    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )`)
	fmt.Fprintln(w, `    return 0`)
	fmt.Fprintln(w, `}`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, `complete -F _awsops awsops`)
}

func writeZshCompletion(w io.Writer, root *cli.Command) {
	fmt.Fprintf(w, zshCompletionHeader, commandWords(root.Commands))

	fmt.Fprintln(w, `  if (( CURRENT == 3 )); then`)
	fmt.Fprintln(w, `    case $words[2] in`)
	for _, svc := range root.Commands {
		words := commandWords(svc.Commands)
		if svc.Name == "completion" {
			words = "bash zsh"
		}
		fmt.Fprintf(w, "      %s) compadd -- %s ;;\n", casePattern(svc), words)
	}
	fmt.Fprintln(w, `    esac`)
	fmt.Fprintln(w, `    return`)
	fmt.Fprintln(w, `  fi`)
	fmt.Fprintln(w)

	fmt.Fprintln(w, `  case $words[2] in`)
	for _, svc := range root.Commands {
		if len(svc.Commands) == 0 {
			continue
		}
		fmt.Fprintf(w, "    %s)\n", casePattern(svc))
		fmt.Fprintln(w, `      case $words[3] in`)
		for _, op := range svc.Commands {
			fmt.Fprintf(w, "        %s) compadd -- %s ;;\n", op.Name, flagWords(op))
		}
		fmt.Fprintln(w, `      esac`)
		fmt.Fprintln(w, `      ;;`)
	}
	fmt.Fprintln(w, `  esac`)
	fmt.Fprintln(w, `}`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, `# If this file is sourced directly (not autoloaded via fpath), ensure compsys`)
	fmt.Fprintln(w, `# is initialized and register the completion`)
	fmt.Fprintln(w, `if ! typeset -f compdef >/dev/null 2>&1; then`)
	fmt.Fprintln(w, `  autoload -Uz compinit && compinit -i`)
	fmt.Fprintln(w, `fi`)
	fmt.Fprintln(w, `compdef _awsops awsops`)
}
