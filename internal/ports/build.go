package ports

import "context"

// BuildExecutor installs dependencies and runs the production bundle build
type BuildExecutor interface {
	// Cleanup removes the given artifacts and restores the working tree for the next push
	Cleanup(ctx context.Context, artifacts ...string) error

	// InstallDependencies restores the dependency graph of the checked-out revision
	InstallDependencies(ctx context.Context) error

	// RunProductionBuild writes the raw stats artifact to outputPath
	RunProductionBuild(ctx context.Context, outputPath string) error
}
