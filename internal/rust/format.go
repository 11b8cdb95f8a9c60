package rust

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

const DefaultEdition = "2021"

// Format pipes src through rustfmt.
func Format(ctx context.Context, src []byte, edition string) ([]byte, error) {
	if edition == "" {
		edition = DefaultEdition
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "rustfmt", "--edition", edition, "--emit", "stdout")
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running rustfmt: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

// Available reports whether rustfmt can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("rustfmt")
	return err == nil
}
