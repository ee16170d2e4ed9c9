package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsops/internal/command"
	"github.com/tfctl/awsops/internal/meta"
)

type Flag struct {
	ID          string
	Syntax      string
	Description string
	Default     string
}

type TemplateData struct {
	ID      string
	Service string
	Short   string
	Usage   string
	Flags   []Flag
	Date    string
	Version string
}

const markdownTemplate = `# awsops {{ .Service }} {{ .ID }}

{{ .Short }}

## Usage

` + "```" + `
{{ .Usage }}
` + "```" + `

## Flags

| flag | description | default |
|------|-------------|---------|
{{- range .Flags }}
| ` + "`{{ .Syntax }}`" + ` | {{ .Description }} | {{ .Default }} |
{{- end }}

_awsops {{ .Version }}, {{ .Date }}_
`

const manTemplate = `% AWSOPS-{{ .Service | upper }}-{{ .ID | upper }}(1) awsops {{ .Version }}
% awsops
% {{ .Date }}

# NAME

awsops-{{ .Service }}-{{ .ID }} - {{ .Short }}

# SYNOPSIS

{{ .Usage }}

# OPTIONS
{{ range .Flags }}
**{{ .Syntax }}**
:   {{ .Description }}{{ if .Default }} (default {{ .Default }}){{ end }}
{{ end }}
`

type Outputs struct {
	Template *template.Template
	Folder   string
	Prefix   string
	Suffix   string
	Man      bool
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	funcs := template.FuncMap{"upper": strings.ToUpper}
	types := []Outputs{
		{Template: template.Must(template.New("md").Parse(markdownTemplate)), Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: template.Must(template.New("man").Funcs(funcs).Parse(manTemplate)), Folder: filepath.Join(docs, "man", "share", "man1"), Prefix: "awsops-", Suffix: ".1", Man: true},
	}

	app := command.NewApp(meta.Meta{})
	date := time.Now().Format("January 2, 2006")
	version := getVersion()

	for _, svc := range app.Commands {
		for _, op := range svc.Commands {
			metadata := TemplateData{
				ID:      op.Name,
				Service: svc.Name,
				Short:   op.Usage,
				Usage:   op.UsageText,
				Flags:   flags(op),
				Date:    date,
				Version: version,
			}

			for _, t := range types {
				if err := os.MkdirAll(t.Folder, 0o755); err != nil {
					panic(err)
				}

				var buf bytes.Buffer
				if err := t.Template.Execute(&buf, metadata); err != nil {
					panic(err)
				}

				out := buf.Bytes()
				if t.Man {
					out = md2man.Render(out)
				}

				path := filepath.Join(t.Folder, t.Prefix+svc.Name+"-"+op.Name+t.Suffix)
				fmt.Println("Generating", path)
				if err := os.WriteFile(path, out, 0o644); err != nil {
					panic(err)
				}
			}
		}
	}
}

// flags describes the flags of cmd in the order the help text shows them.
func flags(cmd *cli.Command) []Flag {
	var result []Flag
	for _, f := range cmd.Flags {
		names := f.Names()
		var spellings []string
		for _, n := range names {
			if len(n) == 1 {
				spellings = append(spellings, "-"+n)
			} else {
				spellings = append(spellings, "--"+n)
			}
		}

		fl := Flag{ID: names[0], Syntax: strings.Join(spellings, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			fl.Description = df.GetUsage()
			if df.TakesValue() {
				fl.Syntax += " " + strings.ToUpper(strings.ReplaceAll(names[0], "-", "_"))
			}
			fl.Default = strings.Trim(df.GetValue(), `"`)
		}
		result = append(result, fl)
	}
	return result
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
