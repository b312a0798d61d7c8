package logger

// Output categories select which diagnostic sections the query commands
// print to stderr at each verbosity. Log levels filter by severity; these
// pick what kind of information is shown.
//
//	0 (default) - Matches, predicates, errors with hints
//	1 (-v)      - + Info logs (catalog loads, reloads)
//	2 (-vv)     - + Token stream of each query
//	3 (-vvv)    - + Raw registry result for each search pattern

// OutputCategory is a diagnostic section a command may print
type OutputCategory int

const (
	OutputTokens        OutputCategory = iota // Token stream of each query
	OutputSearchResults                       // Raw registry search results
)

var categoryLevels = map[OutputCategory]int{
	OutputTokens:        VerbosityDebug,
	OutputSearchResults: VerbosityTrace,
}

// ShouldOutput reports whether category is shown at verbosity.
// Unknown categories need trace verbosity.
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputTokens:        "tokens",
	OutputSearchResults: "search-results",
}

// CategoryName returns the section heading for a category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
