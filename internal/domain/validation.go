package domain

// The predicates below gate every create/update. Numeric identifiers are
// valid when non-negative (0 included); string fields must be non-empty.

func IsUserValid(id int64, name, password string) bool {
	return id >= 0 && name != "" && password != ""
}

func IsAddProjectValid(id int64, title, desc, tag string, userID int64) bool {
	return id >= 0 && title != "" && desc != "" && tag != "" && userID >= 0
}

func IsUpdateProjectValid(id int64, newTitle, newDesc, newTag string) bool {
	return id >= 0 && newTitle != "" && newDesc != "" && newTag != ""
}

func IsTagValid(id int64, name string) bool {
	return id >= 0 && name != ""
}

func IsAddStoryboardValid(id, projectID, categoryID int64, description string) bool {
	return id >= 0 && projectID >= 0 && categoryID >= 0 && description != ""
}

func IsUpdateStoryboardValid(id, categoryID int64, description string) bool {
	return id >= 0 && categoryID >= 0 && description != ""
}

func IsAddTaskLogValid(id int64, issue string, projectID int64) bool {
	return id >= 0 && issue != "" && projectID >= 0
}

// IsUpdateTaskLogValid accepts any resolved flag.
func IsUpdateTaskLogValid(id int64, issue string, _ bool) bool {
	return id >= 0 && issue != ""
}
