package view

const (
	textHeading      = "Launch search 🚀"
	textSearchButton = "Search"
	textLoading      = "Fetching data..."
	textSearchError  = "Search error for %s"
	textNoResults    = "No results for %s"
	textStatusPrefix = "Mission status: "
	textWindowOpen   = "Window opened: "
	textWindowClose  = "Window closed: "
	textImageAlt     = "Picture of the launch"
	textBack         = "Back"
)

// Class names double as state markers; other packages locate views by them.
const (
	ClassLoading = "loading"
	ClassResults = "results"
	ClassResult  = "result"
)
