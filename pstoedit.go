// Package pstoedit provides Go bindings to pstoedit, the PostScript and
// PDF to vector-format translator.
//
// Init must be called once before anything else. Conversions run through
// Command; driver metadata is read through Drivers and NativeDrivers.
// All parsing and output emission happens inside the native library —
// this package only manages the boundary: argument marshalling, catalog
// ownership, and the mapping of native status codes onto Go errors.
//
//	if err := pstoedit.Init(); err != nil {
//		return err
//	}
//	return pstoedit.Convert("svg", "input.ps", "output.svg")
package pstoedit

// Convert translates input to output using the named driver, the
// equivalent of `pstoedit -f driver input output`. Extra pstoedit
// options can be passed through extraArgs.
func Convert(driver, input, output string, extraArgs ...string) error {
	cmd := NewCommand()
	if err := cmd.Args("-f", driver); err != nil {
		return err
	}
	if err := cmd.Args(extraArgs...); err != nil {
		return err
	}
	if err := cmd.Args(input, output); err != nil {
		return err
	}
	return cmd.Run()
}
