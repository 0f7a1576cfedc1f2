package sqlite

// DSN builds the driver connection string for the given database file.
// journal_mode stays DELETE so the whole dataset lives in a single file,
// which the dataset export reads verbatim.
func DSN(path string) string {
	return path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(DELETE)&_pragma=synchronous(NORMAL)"
}
