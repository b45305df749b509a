package browser

import (
	"context"
	"fmt"
	"net/url"
	"runtime"

	"github.com/Taichi-iskw/cheta/internal/errors"
	"github.com/Taichi-iskw/cheta/internal/service/common"
)

// Opener opens a URL in the user's default web browser
type Opener interface {
	Open(ctx context.Context, rawURL string) error
}

// systemOpener implements Opener with the platform's URL launcher
type systemOpener struct {
	cmdRunner common.CmdRunner
	goos      string
}

// NewOpener creates an Opener for the running platform
func NewOpener() Opener {
	return NewOpenerWithCmdRunner(common.NewCmdRunner(), runtime.GOOS)
}

// NewOpenerWithCmdRunner creates an Opener with custom CmdRunner and target OS (for testing)
func NewOpenerWithCmdRunner(cmdRunner common.CmdRunner, goos string) Opener {
	return &systemOpener{
		cmdRunner: cmdRunner,
		goos:      goos,
	}
}

// Open launches the default browser on rawURL. Only http(s) links are accepted.
func (o *systemOpener) Open(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidArg, "invalid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.CodeInvalidArg, fmt.Sprintf("refusing to open non-web URL %q", rawURL))
	}

	name, args := launcher(o.goos, u.String())
	if _, err := o.cmdRunner.Run(ctx, name, args...); err != nil {
		return errors.Wrap(err, errors.CodeExternal, "failed to open browser")
	}
	return nil
}

// launcher returns the command that hands a URL to the desktop's default browser
func launcher(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}
