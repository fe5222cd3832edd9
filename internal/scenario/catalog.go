package scenario

// Builtin returns the hand-authored scenario catalog. Content is static;
// only the selection order varies between sessions.
func Builtin() []*Scenario {
	var all []*Scenario
	all = append(all, easyCatalog...)
	all = append(all, mediumCatalog...)
	all = append(all, hardCatalog...)
	return all
}
