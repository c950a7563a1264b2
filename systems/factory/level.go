package factory

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	"github.com/automoto/strider/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex stores the loaded courses and selects names[index].
// An out-of-range index falls back to the first course.
func CreateLevelAtIndex(ecs *ecs.ECS, courses map[string]*leveldata.CourseData, names []string, index int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	if len(names) == 0 {
		panic("no courses loaded")
	}
	if index < 0 || index >= len(names) {
		index = 0
	}

	components.Level.Set(level, &components.LevelData{
		Courses:       courses,
		Names:         names,
		CourseIndex:   index,
		CurrentCourse: courses[names[index]],
	})
	return level
}
