package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-algorithm/pkg/errors"
)

const developmentVersion = "main"

// CheckVersionCompatibility reports whether an engine at engineVersion can run an
// algorithm that requires requiredVersion.
//
// requiredVersion is either a plain version or a semver constraint such as
// ">= 0.3, < 0.5". A plain version is compatible when major and minor match;
// patch may differ. "main" on either side skips the check.
func CheckVersionCompatibility(engineVersion, requiredVersion string) error {
	engineVersion = strings.TrimPrefix(strings.TrimSpace(engineVersion), "v")
	requiredVersion = strings.TrimSpace(requiredVersion)

	if engineVersion == developmentVersion || strings.TrimPrefix(requiredVersion, "v") == developmentVersion {
		return nil
	}

	engine, err := semver.NewVersion(engineVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid engine version '%s'", engineVersion)
	}

	if isConstraint(requiredVersion) {
		constraint, err := semver.NewConstraint(requiredVersion)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid version constraint '%s'", requiredVersion)
		}

		if !constraint.Check(engine) {
			return errors.Newf(errors.ErrCodeVersionMismatch, "engine %s does not satisfy '%s'", engine, requiredVersion)
		}

		return nil
	}

	required, err := semver.NewVersion(strings.TrimPrefix(requiredVersion, "v"))
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid required version '%s'", requiredVersion)
	}

	if engine.Major() != required.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "major version mismatch: engine is %d.x.x but algorithm requires %d.x.x",
			engine.Major(), required.Major())
	}

	if engine.Minor() != required.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "minor version mismatch: engine is %d.%d.x but algorithm requires %d.%d.x",
			engine.Major(), engine.Minor(), required.Major(), required.Minor())
	}

	return nil
}

func isConstraint(value string) bool {
	return strings.ContainsAny(value, "<>=~^*, |")
}
