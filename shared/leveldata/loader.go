package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// LoadCourse parses a TMX file into platforms and a spawn point. It takes an
// fs.FS so callers can pass embed.FS (demo) or os.DirFS (simulator).
func LoadCourse(fsys fs.FS, tmxPath string) (*CourseData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	data := &CourseData{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				top := o.Properties.GetFloat(PropTop)
				thickness := o.Properties.GetFloat(PropHeight)
				if thickness <= 0 {
					thickness = DefaultThickness
				}

				p := Platform{
					ID:   int(o.ID),
					Name: o.Name,
					Min:  mgl64.Vec3{o.X / tileW, top - thickness, o.Y / tileH},
					Max:  mgl64.Vec3{(o.X + o.Width) / tileW, top, (o.Y + o.Height) / tileH},
				}

				move := mgl64.Vec3{
					o.Properties.GetFloat(PropMoveX),
					o.Properties.GetFloat(PropMoveY),
					o.Properties.GetFloat(PropMoveZ),
				}
				duration := o.Properties.GetFloat(PropDuration)
				if move.Len() > 0 && duration > 0 {
					p.Motion = &Motion{Offset: move, Duration: duration}
				}

				data.Platforms = append(data.Platforms, p)
			}

		case GroupSpawn:
			// First spawn wins
			if data.HasSpawn || len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			data.Spawn = mgl64.Vec3{o.X / tileW, o.Properties.GetFloat(PropElevation), o.Y / tileH}
			data.HasSpawn = true
		}
	}

	// Stable order for deterministic surface ids
	sort.Slice(data.Platforms, func(i, j int) bool {
		return data.Platforms[i].ID < data.Platforms[j].ID
	})

	return data, nil
}

// LoadAllCourses discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllCourses(fsys fs.FS, dir string) (map[string]*CourseData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	courses := make(map[string]*CourseData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCourse(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		courses[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return courses, names, nil
}
