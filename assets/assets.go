// Package assets embeds the course files shipped with the demo.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/strider/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelDir is the embedded directory holding the TMX courses.
const LevelDir = "levels"

// FS exposes the embedded assets.
func FS() fs.FS {
	return assetFS
}

// LoadCourses loads every embedded course, sorted by name.
func LoadCourses() (map[string]*leveldata.CourseData, []string, error) {
	courses, names, err := leveldata.LoadAllCourses(assetFS, LevelDir)
	if err != nil {
		return nil, nil, err
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("no courses in %s", LevelDir)
	}
	return courses, names, nil
}
