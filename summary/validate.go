package summary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
)

var validate = validator.New()

// Validate checks a summary against the surface schema and the version
// gate. The returned error enumerates every violation.
func Validate(s *Summary) error {
	if !CompatibleVersion(s.SchemaVersion) {
		return fmt.Errorf("unsupported schema_version %q: expected a 1.x.x version", s.SchemaVersion)
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}
	violations := make([]string, 0, len(invalid))
	for _, v := range invalid {
		violations = append(violations, fmt.Sprintf("%v: failed %v", v.Namespace(), v.Tag()))
	}
	return fmt.Errorf("summary failed schema validation:\n%v", strings.Join(violations, "\n"))
}

// CompatibleVersion reports whether a schema version is a valid semver in
// the supported major line.
func CompatibleVersion(version string) bool {
	v := "v" + version
	return semver.IsValid(v) && semver.Major(v) == "v1"
}
