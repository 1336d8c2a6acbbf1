package directory

import "regexp"

var ouPattern = regexp.MustCompile(`OU=([^,]+)`)

// DepartmentOU extracts the department organizational unit from a
// distinguished name. Directory DNs look like
// "CN=Jane Doe,OU=Users,OU=IT_Department,DC=corp,DC=example": the first
// OU is the account container, the second is the department. Returns ""
// when the DN carries fewer than two OU components.
func DepartmentOU(dn string) string {
	matches := ouPattern.FindAllStringSubmatch(dn, -1)
	if len(matches) < 2 {
		return ""
	}
	return matches[1][1]
}
