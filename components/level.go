package components

import (
	"github.com/automoto/strider/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentCourse *leveldata.CourseData
	CourseIndex   int
	Courses       map[string]*leveldata.CourseData
	Names         []string // Sorted course names, indexed by CourseIndex
}

var Level = donburi.NewComponentType[LevelData]()
