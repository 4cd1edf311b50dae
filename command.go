package pstoedit

import "strings"

// programName is the conventional argv[0] placeholder the native call
// expects; it is otherwise unused by pstoedit.
const programName = "pstoedit"

// GsTest is the pstoedit argument requesting an internal ghostscript
// self-check without any file conversion.
const GsTest = "-gstest"

// Command builds and runs one pstoedit invocation.
//
// Arguments are added with Arg or Args and passed to the native library
// in insertion order. Gs overrides pstoedit's platform-specific
// ghostscript auto-detection (which otherwise also consults the GS
// environment variable). A Command may be Run any number of times; each
// Run is an independent native call.
type Command struct {
	args  []string
	gs    string
	hasGs bool
}

// NewCommand returns a command with the program-name placeholder already
// in place. Do not add it again via Arg or Args.
func NewCommand() *Command {
	return &Command{args: []string{programName}}
}

// Arg appends a single argument. Fails with ArgumentError if the text
// contains an embedded NUL byte, in which case nothing is appended.
func (c *Command) Arg(arg string) error {
	if strings.IndexByte(arg, 0) >= 0 {
		return ArgumentError{Arg: arg}
	}
	c.args = append(c.args, arg)
	return nil
}

// Args appends arguments in order, stopping at the first invalid one.
// Arguments before the failure stay appended; the caller decides whether
// to continue with the partial command.
func (c *Command) Args(args ...string) error {
	for _, arg := range args {
		if err := c.Arg(arg); err != nil {
			return err
		}
	}
	return nil
}

// Gs sets the path of the ghostscript executable to use, bypassing
// pstoedit's auto-detection. Fails with ArgumentError on an embedded NUL
// byte, leaving any previous override in place.
func (c *Command) Gs(path string) error {
	if strings.IndexByte(path, 0) >= 0 {
		return ArgumentError{Arg: path}
	}
	c.gs = path
	c.hasGs = true
	return nil
}

// Argv returns a copy of the argument list as it will be passed to the
// native call, including the program-name placeholder.
func (c *Command) Argv() []string {
	return append([]string(nil), c.args...)
}

// Run executes the command. Returns ErrNotInitialized if Init has not
// succeeded, or a ConversionError carrying pstoedit's status code on any
// other native failure. The call blocks until pstoedit (and the
// interpreter process it may spawn) finishes; there is no cancellation
// at this layer.
func (c *Command) Run() error {
	return runNative(c.args, c.gs, c.hasGs)
}
