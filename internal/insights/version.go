package insights

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SDKVersionName is sent as sdk-version-name.
const SDKVersionName = "2.4.1"

// SDKVersionCode is sent as sdk-version-code. It is derived from
// SDKVersionName by VersionCode.
var SDKVersionCode = mustVersionCode(SDKVersionName)

// VersionCode maps a semantic version to its numeric code,
// major*10000 + minor*100 + patch. Minor and patch must stay below 100.
func VersionCode(name string) (int, error) {
	v, err := semver.StrictNewVersion(name)
	if err != nil {
		return 0, fmt.Errorf("sdk version %q: %w", name, err)
	}
	if v.Minor() > 99 || v.Patch() > 99 {
		return 0, fmt.Errorf("sdk version %q: minor and patch must be below 100", name)
	}
	return int(v.Major()*10000 + v.Minor()*100 + v.Patch()), nil
}

func mustVersionCode(name string) int {
	code, err := VersionCode(name)
	if err != nil {
		panic(err)
	}
	return code
}
