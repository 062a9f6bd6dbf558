// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

// Command teditcli applies YAML edit scripts to files and emits the matching
// undo scripts.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"
	"github.com/tigerwill90/tedit"
	"github.com/tigerwill90/tedit/internal/editscript"
)

// CLI is the root command structure for kong.
type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Apply ApplyCmd `cmd:"" help:"Apply an edit script to a file."`
	Undo  UndoCmd  `cmd:"" help:"Apply an undo script produced by apply."`
}

// ApplyCmd applies an edit script to a file.
type ApplyCmd struct {
	Script  string `arg:"" help:"Path to the YAML edit script."`
	File    string `arg:"" help:"Path to the file to edit."`
	UndoOut string `help:"Write the undo script to this path." placeholder:"PATH"`
	DryRun  bool   `help:"Report the outcome without writing the file."`
}

// UndoCmd applies an undo script produced by a previous apply.
type UndoCmd struct {
	Script string `arg:"" help:"Path to the YAML undo script."`
	File   string `arg:"" help:"Path to the file to restore."`
}

// appEnv carries the command dependencies, letting tests run commands against
// an in-memory filesystem.
type appEnv struct {
	fs  afero.Fs
	log *slog.Logger
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("teditcli"),
		kong.Description("Apply tree-structured text edits to files"),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	env := &appEnv{
		fs:  afero.NewOsFs(),
		log: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}

	ctx.FatalIfErrorf(ctx.Run(env))
}

// Run applies the script and writes the edited file, plus the undo script when
// requested.
func (c *ApplyCmd) Run(env *appEnv) error {
	script, err := readScript(env.fs, c.Script)
	if err != nil {
		return err
	}
	root, err := script.Build()
	if err != nil {
		return fmt.Errorf("build edit tree from %s: %w", c.Script, err)
	}

	content, err := afero.ReadFile(env.fs, c.File)
	if err != nil {
		return err
	}
	doc := tedit.NewBuffer(string(content))

	undo, err := root.Apply(doc)
	if err != nil {
		return fmt.Errorf("apply %s to %s: %w", c.Script, c.File, err)
	}
	env.log.Debug("script applied", "file", c.File, "edits", root.ChildCount(), "changes", undo.ChildCount())

	if c.DryRun {
		env.log.Info("dry run, file not written", "file", c.File, "size", doc.Length())
		return nil
	}
	if err := writeFile(env.fs, c.File, doc.String()); err != nil {
		return err
	}
	env.log.Info("file edited", "file", c.File, "size", doc.Length())

	if c.UndoOut != "" {
		buf := new(bytes.Buffer)
		if err := editscript.Encode(buf, editscript.FromUndo(undo)); err != nil {
			return err
		}
		if err := writeFile(env.fs, c.UndoOut, buf.String()); err != nil {
			return err
		}
		env.log.Info("undo script written", "path", c.UndoOut)
	}
	return nil
}

// Run replays the undo script's replace operations in order against the file.
func (c *UndoCmd) Run(env *appEnv) error {
	script, err := readScript(env.fs, c.Script)
	if err != nil {
		return err
	}
	content, err := afero.ReadFile(env.fs, c.File)
	if err != nil {
		return err
	}
	doc := tedit.NewBuffer(string(content))

	// Undo operations are recorded against successive document states and must
	// run one at a time, not as one tree.
	for _, n := range script.Edits {
		if n.Op != editscript.OpReplace {
			return fmt.Errorf("%w: undo scripts may only contain %q operations", editscript.ErrInvalidScript, editscript.OpReplace)
		}
		edit := tedit.NewReplaceEdit(n.Offset, n.Length, n.Text)
		if _, err := edit.ApplyWithStyle(doc, tedit.None); err != nil {
			return fmt.Errorf("undo %s on %s: %w", c.Script, c.File, err)
		}
	}

	if err := writeFile(env.fs, c.File, doc.String()); err != nil {
		return err
	}
	env.log.Info("file restored", "file", c.File, "size", doc.Length())
	return nil
}

func readScript(fsys afero.Fs, path string) (*editscript.Script, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	script, err := editscript.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return script, nil
}

func writeFile(fsys afero.Fs, path, content string) error {
	return afero.WriteFile(fsys, path, []byte(content), 0o644)
}
