package device

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/devicelab-dev/uiscribe/pkg/core"
)

// componentRe matches a package/activity component inside a dumpsys
// activity record, e.g. com.example.app/.MainActivity.
var componentRe = regexp.MustCompile(`([A-Za-z][A-Za-z0-9_.]*)/(\.?[A-Za-z0-9_.$]+)`)

// resumedMarkers identify the dumpsys lines that carry the foreground
// activity record. Names vary across Android releases.
var resumedMarkers = []string{"mResumedActivity", "topResumedActivity", "mFocusedActivity"}

// CurrentApp returns the foreground package and activity.
func (d *AndroidDevice) CurrentApp() (core.AppInfo, error) {
	out, err := d.Shell("dumpsys activity activities")
	if err != nil {
		return core.AppInfo{}, fmt.Errorf("dumpsys failed: %w", err)
	}

	info, ok := parseForegroundActivity(out)
	if !ok {
		return core.AppInfo{}, fmt.Errorf("no resumed activity in dumpsys output")
	}
	return info, nil
}

// parseForegroundActivity scans dumpsys output for the resumed
// activity record. A leading dot in the activity name is shorthand for
// the package prefix and gets expanded.
func parseForegroundActivity(out string) (core.AppInfo, bool) {
	for _, line := range strings.Split(out, "\n") {
		marked := false
		for _, marker := range resumedMarkers {
			if strings.Contains(line, marker) {
				marked = true
				break
			}
		}
		if !marked {
			continue
		}

		m := componentRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		pkg, activity := m[1], m[2]
		if strings.HasPrefix(activity, ".") {
			activity = pkg + activity
		}
		return core.AppInfo{Package: pkg, Activity: activity}, true
	}
	return core.AppInfo{}, false
}
