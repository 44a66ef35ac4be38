package progress

import "encoding/json"

// ModuleRef is the slice of a module the sequencer needs.
type ModuleRef struct {
	ID   uint
	Name string
}

// NextModule is either the first unfinished module of a course or, when
// Completed is set, the marker that every module is done.
type NextModule struct {
	ModuleID      uint
	ModuleName    string
	IsFirstModule bool
	Completed     bool
}

func (n NextModule) MarshalJSON() ([]byte, error) {
	if n.Completed {
		return json.Marshal(struct {
			Completed bool `json:"completed"`
		}{true})
	}
	return json.Marshal(struct {
		ModuleID      uint   `json:"module_id"`
		ModuleName    string `json:"module_name"`
		IsFirstModule bool   `json:"is_first_module"`
	}{n.ModuleID, n.ModuleName, n.IsFirstModule})
}

// NextIncomplete walks modules in the given order and returns the first one
// missing from done. modules must be non-empty and sorted by id.
func NextIncomplete(modules []ModuleRef, done map[uint]bool) NextModule {
	for i, m := range modules {
		if !done[m.ID] {
			return NextModule{
				ModuleID:      m.ID,
				ModuleName:    m.Name,
				IsFirstModule: i == 0,
			}
		}
	}
	return NextModule{Completed: true}
}
