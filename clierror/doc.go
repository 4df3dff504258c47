// Package clierror provides a closed set of common command-line failure
// categories.
//
// Each category carries a fixed display message and a fixed sysexits.h
// exit code. Values are immutable once constructed and are meant to be
// wrapped into an error chain at the point a CLI-level failure is
// recognized:
//
//	f, err := os.Create(path)
//	if err != nil {
//	    return error.WrapErr(err, clierror.CreateFile(path))
//	}
package clierror
