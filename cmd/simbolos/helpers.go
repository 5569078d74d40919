// Shared helpers for simbolos CLI commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/meumundo/simbolos/pkg/types"
)

// activeProfileID resolves the profile a command acts on: --profile flag,
// then active_profile from config.yaml.
func activeProfileID() (string, error) {
	if flagProfile != "" {
		return flagProfile, nil
	}
	if configProfile != "" {
		return configProfile, nil
	}
	return "", errors.New(`no active profile; run "simbolos profile use <id>" or pass --profile`)
}

// fail prints err to stderr and exits. Recoverable, user-facing conditions
// exit with the user-error code; everything else is a system failure.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrForbidden),
		errors.Is(err, types.ErrInsufficientFunds),
		errors.Is(err, types.ErrInvalidBackup),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrInvalidPIN),
		errors.Is(err, types.ErrDuplicateKey):
		os.Exit(exitUserError)
	default:
		os.Exit(exitSysError)
	}
}

// boolMark renders a completion flag for list output.
func boolMark(b bool) string {
	if b {
		return "x"
	}
	return " "
}
