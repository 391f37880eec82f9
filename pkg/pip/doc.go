// Package pip installs Python packages by driving pip as a subprocess.
//
// The package reconciles a requirements listing against the interpreter's
// installed distributions: it queries pip for what is present, filters the
// listing down to unsatisfied entries, and invokes pip once to install the
// remainder. Single modules can be installed with an exact version pin or a
// version-range expression.
//
// All pip interactions go through the [Runner] interface, so installer logic
// can be tested with a fake instead of a real interpreter. Failures map onto
// three sentinel errors: [ErrMissingRequirements] when the listing is absent,
// [ErrInstall] when pip reports a failure (the message carries pip's stderr),
// and [ErrEnvironment] when the interpreter cannot be spawned at all.
//
// # Example
//
//	report, err := pip.InstallRequirements(ctx, "requirements.txt", pip.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("installed %d packages\n", len(report.Missing))
package pip
