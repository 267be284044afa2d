package app

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"

	"github.com/rehabtrack/rehab/internal/config"
	"github.com/rehabtrack/rehab/internal/osutil"
	"github.com/rehabtrack/rehab/internal/pathutil"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editorCommand splits an editor setting such as "code --wait" and appends
// the file to open.
func editorCommand(editor, file string) ([]string, error) {
	args, err := shellquote.Split(editor)
	if err != nil {
		return nil, errOpenEditor.Fmt(editor).Wrap(err)
	}

	if len(args) == 0 {
		return nil, errOpenEditor.Fmt(editor)
	}

	return append(args, file), nil
}

// editConfigAction handles the edit-config command which opens the rehab
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// write the defaults first so there is something to edit
	_, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	args, err := editorCommand(editor, pathutil.ConfigFilePath())
	if err != nil {
		return err
	}

	//nolint:gosec // the editor is chosen by the user
	cmd := exec.Command(args[0], args[1:]...)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	if err := cmd.Run(); err != nil {
		return errOpenEditor.Fmt(editor).Wrap(err)
	}

	return nil
}
