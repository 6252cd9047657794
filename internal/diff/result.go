package diff

// normalize maps git's output to the Diff return contract. Identical inputs
// never produce a result, whatever flags were in play.
func normalize(raw string, identical bool) (string, bool) {
	if identical || raw == "" {
		return "", false
	}
	return raw, true
}
