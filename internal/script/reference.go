package script

// Syntax documents one command or expectation.
type Syntax struct {
	Usage   string
	Summary string
	// Example is a line that parses as written.
	Example string
}

var commandOrder = []CommandType{
	CommandAdd, CommandRemove, CommandFocus,
	CommandLeft, CommandRight, CommandUp, CommandDown, CommandNext, CommandPrevious,
	CommandToggleSplit,
	CommandShuffleLeft, CommandShuffleRight, CommandShuffleUp, CommandShuffleDown,
	CommandAddColumn,
	CommandScreen,
	CommandExpect,
}

var commandDocs = map[CommandType]Syntax{
	CommandAdd:          {"add ID...", "Open windows and manage them in the focused column.", "add term editor"},
	CommandRemove:       {"remove ID...", "Stop managing windows and close them.", "remove term"},
	CommandFocus:        {"focus ID", "Focus a managed window.", "focus editor"},
	CommandLeft:         {"left", "Focus the first row of the previous column.", "left"},
	CommandRight:        {"right", "Focus the first row of the next column.", "right"},
	CommandUp:           {"up", "Focus the row above; wraps in stacked columns.", "up"},
	CommandDown:         {"down", "Focus the row below; wraps in stacked columns.", "down"},
	CommandNext:         {"next", "Same as down.", "next"},
	CommandPrevious:     {"previous", "Same as up.", "previous"},
	CommandToggleSplit:  {"toggle_split", "Switch the focused column between split and stacked.", "toggle_split"},
	CommandShuffleLeft:  {"shuffle_left", "Move the focused window one column left, creating a column at the edge.", "shuffle_left"},
	CommandShuffleRight: {"shuffle_right", "Move the focused window one column right, creating a column at the edge.", "shuffle_right"},
	CommandShuffleUp:    {"shuffle_up", "Swap the focused window with the row above.", "shuffle_up"},
	CommandShuffleDown:  {"shuffle_down", "Swap the focused window with the row below.", "shuffle_down"},
	CommandAddColumn:    {"add_column prepend|append ID", "Insert a column holding ID and shrink the others.", "add_column append term"},
	CommandScreen:       {"screen X Y W H", "Set the screen rectangle and place every window again.", "screen 0 0 1920 1080"},
	CommandExpect:       {"expect KIND ARGS...", "Fail the scenario unless the layout matches.", "expect columns 2"},
}

var expectOrder = []string{
	ExpectFocus, ExpectColumns, ExpectRows, ExpectWidth, ExpectMode,
	ExpectClients, ExpectPlacement, ExpectHidden, ExpectVisible,
}

var expectDocs = map[string]Syntax{
	ExpectFocus:     {"expect focus ID|none", "The focused window, or none.", "expect focus none"},
	ExpectColumns:   {"expect columns N", "The number of columns.", "expect columns 1"},
	ExpectRows:      {"expect rows COL ID...", "The windows of column COL, top to bottom.", "expect rows 0 term editor"},
	ExpectWidth:     {"expect width COL N", "The width of column COL in percent.", "expect width 1 50"},
	ExpectMode:      {"expect mode COL split|stacked", "The mode of column COL.", "expect mode 0 stacked"},
	ExpectClients:   {"expect clients ID...", "Every managed window in the order it was added.", "expect clients term editor"},
	ExpectPlacement: {"expect placement ID X Y W H", "The rectangle given to a window, borders excluded.", "expect placement term 0 0 958 1078"},
	ExpectHidden:    {"expect hidden ID", "The window is unmapped.", "expect hidden term"},
	ExpectVisible:   {"expect visible ID", "The window is mapped.", "expect visible editor"},
}

// Commands lists every command in reference order.
func Commands() []Syntax {
	out := make([]Syntax, 0, len(commandOrder))
	for _, t := range commandOrder {
		out = append(out, commandDocs[t])
	}
	return out
}

// Expectations lists every expect kind in reference order.
func Expectations() []Syntax {
	out := make([]Syntax, 0, len(expectOrder))
	for _, k := range expectOrder {
		out = append(out, expectDocs[k])
	}
	return out
}
