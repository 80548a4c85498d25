package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" //  tag
	IconGitBranch = "\ue725" //  git branch
	IconCalendar  = "\uf073" //  calendar
	IconGithub    = "\uf09b" //  github
	IconHeart     = "\uf004" //  heart
	IconGo        = "\ue627" //  go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconConfig  = "\ue615" // config
	IconWindow  = "\uf2d2" // window
	IconStack   = "\uf24d" // clone/stack
	IconColumns = "\uf0db" // columns
)
