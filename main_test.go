package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func callMain(args ...string) (int, string) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = append([]string{"boardapp"}, args...)

	exitCode := -1
	oldExit := exit
	defer func() { exit = oldExit }()
	exit = func(code int) {
		exitCode = code
		panic("exit")
	}

	// Capture output
	var buf bytes.Buffer
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outputDone := make(chan struct{})
	go func() {
		_, _ = io.Copy(&buf, r)
		close(outputDone)
	}()

	func() {
		defer func() {
			if r := recover(); r != nil && r != "exit" {
				panic(r)
			}
		}()
		RealMain()
	}()

	w.Close()
	os.Stdout = oldStdout
	<-outputDone

	return exitCode, buf.String()
}

func TestRealMain(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedExit   int
		expectedOutput string
	}{
		{
			name:           "help command",
			args:           []string{"help"},
			expectedExit:   0,
			expectedOutput: "Usage: boardapp <command> [options]",
		},
		{
			name:           "version command",
			args:           []string{"version"},
			expectedExit:   0,
			expectedOutput: "boardapp version " + CliVersion,
		},
		{
			name:           "unknown command",
			args:           []string{"unknown"},
			expectedExit:   1,
			expectedOutput: "Unknown command: unknown",
		},
		{
			name:           "restore without file",
			args:           []string{"restore"},
			expectedExit:   1,
			expectedOutput: "Error: backup file path required for restore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, output := callMain(tt.args...)

			assert.Contains(t, output, tt.expectedOutput)
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestInvalidConfiguration(t *testing.T) {
	t.Setenv("BOARD_BCRYPT_COST", "100")

	exitCode, output := callMain("init")

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, output, "Invalid configuration")
}

func TestHelpListsCommands(t *testing.T) {
	_, output := callMain("--help")

	for _, cmd := range []string{"serve", "clean", "init", "backup", "restore", "version", "help"} {
		assert.Contains(t, output, cmd)
	}
}
