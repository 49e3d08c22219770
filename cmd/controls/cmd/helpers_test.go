package cmd

import (
	"io"
	"testing"

	"github.com/go-drift/uicontrols/pkg/errors"
)

func quiet(t *testing.T) {
	t.Helper()
	errors.SetHandler(&errors.LogHandler{Out: io.Discard})
	t.Cleanup(func() { errors.SetHandler(nil) })
}
